package models

import "gorm.io/gorm"

// Activity log actions
const (
	ActionLogin  = "LOGIN"
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// ActivityLog records admin logins and every mutation of the registry.
type ActivityLog struct {
	gorm.Model
	Actor     string `json:"actor"`
	Action    string `json:"action"`
	TargetNIK string `json:"target_nik" gorm:"column:target_nik;type:varchar(16)"`
	Detail    string `json:"detail"`
	IPAddress string `json:"ip_address"`
}

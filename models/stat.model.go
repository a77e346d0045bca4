package models

import "gorm.io/gorm"

// RegistryStat is a snapshot of registry-wide counts, written nightly by the
// stat scheduler and on demand when no snapshot exists yet.
type RegistryStat struct {
	gorm.Model
	Total      int64 `json:"total"`
	LakiLaki   int64 `json:"laki_laki" gorm:"column:laki_laki"`
	Perempuan  int64 `json:"perempuan"`
	Households int64 `json:"households"`
}

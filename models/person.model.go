package models

import "time"

// Gender values as stored on the KTP record
const (
	GenderMale   = "LAKI-LAKI"
	GenderFemale = "PEREMPUAN"
)

// Person is one citizen record in the ktp table. NIK is the 16-digit national
// identity number and primary key; NoKK groups members of one household.
// Birth dates are kept as YYYY-MM-DD text so month/year filters match on the
// string form, the same way the upstream store filtered them.
type Person struct {
	NIK               string  `json:"nik" gorm:"column:nik;primaryKey;type:varchar(16)"`
	NoKK              string  `json:"no_kk" gorm:"column:no_kk;type:varchar(16);index"`
	NamaLengkap       string  `json:"nama_lengkap" gorm:"not null"`
	JenisKelamin      string  `json:"jenis_kelamin" gorm:"type:varchar(12)"`
	TmptLhr           string  `json:"tmpt_lhr"`
	TglLhr            string  `json:"tgl_lhr" gorm:"type:varchar(10)"`
	Ibu               *string `json:"ibu"`
	Ayah              *string `json:"ayah"`
	StatusHubKeluarga *string `json:"status_hub_keluarga"`
	JenisPekerjaan    *string `json:"jenis_pekerjaan"`
	Alamat            *string `json:"alamat"`
	NamaKec           *string `json:"nama_kec"`
	NamaKel           *string `json:"nama_kel"`
	IDFoto            *string `json:"id_foto" gorm:"column:id_foto"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Person) TableName() string {
	return "ktp"
}

// FamilyMember is the narrow projection returned for household lookups.
type FamilyMember struct {
	NIK               string  `json:"nik" gorm:"column:nik"`
	NamaLengkap       string  `json:"nama_lengkap"`
	JenisKelamin      string  `json:"jenis_kelamin"`
	TglLhr            string  `json:"tgl_lhr"`
	StatusHubKeluarga *string `json:"status_hub_keluarga"`
	IDFoto            *string `json:"id_foto" gorm:"column:id_foto"`
}

// PhotoRef returns the raw photo reference or "" when the record has none.
func (p *Person) PhotoRef() string {
	if p.IDFoto == nil {
		return ""
	}
	return *p.IDFoto
}

// PhotoRef returns the raw photo reference or "" when the member has none.
func (m *FamilyMember) PhotoRef() string {
	if m.IDFoto == nil {
		return ""
	}
	return *m.IDFoto
}

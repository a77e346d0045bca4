package repository

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"siktp/models"

	"gorm.io/gorm"
)

// Search types accepted by the public search endpoint
const (
	SearchByName      = "nama_lengkap"
	SearchByNIK       = "nik"
	SearchByKK        = "no_kk"
	SearchByBirthMon  = "bulan_lahir"
	SearchByBirthYear = "tahun_lahir"
	SearchByDistrict  = "nama_kec"
)

// Page sizes: 12 cards on the public grid, 10 rows on the admin table
const (
	PublicPageSize       = 12
	AdminDefaultPageSize = 10
)

var ErrNIKExists = errors.New("nik already exists")

// ValidSearchType reports whether t is one of the accepted search fields.
// Unknown fields are rejected up front instead of degenerating to an
// unfiltered scan of the whole table.
func ValidSearchType(t string) bool {
	switch t {
	case SearchByName, SearchByNIK, SearchByKK, SearchByBirthMon, SearchByBirthYear, SearchByDistrict:
		return true
	}
	return false
}

// PersonRepository wraps the registry table with the narrow store surface the
// controllers consume: filtered pages with counts, single-record lookups, the
// family projection, and admin CRUD.
type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// applySearchFilter translates a (searchType, term) pair into a WHERE clause.
// Name and district are case-insensitive substring matches, NIK and KK exact,
// birth month/year match on the textual YYYY-MM-DD form.
func applySearchFilter(query *gorm.DB, searchType, term string) *gorm.DB {
	switch searchType {
	case SearchByName:
		return query.Where("LOWER(nama_lengkap) LIKE ?", "%"+strings.ToLower(term)+"%")
	case SearchByNIK:
		return query.Where("nik = ?", term)
	case SearchByKK:
		return query.Where("no_kk = ?", term)
	case SearchByBirthMon:
		month := term
		if len(month) == 1 {
			month = "0" + month
		}
		return query.Where("tgl_lhr LIKE ?", "%-"+month+"-%")
	case SearchByBirthYear:
		return query.Where("tgl_lhr LIKE ?", term+"-%")
	case SearchByDistrict:
		return query.Where("LOWER(nama_kec) LIKE ?", "%"+strings.ToLower(term)+"%")
	}
	return query
}

// Search returns one page of matches plus the total match count and the
// resulting page count. Requesting a page past the end yields an empty slice
// without error.
func (r *PersonRepository) Search(searchType, term string, page, limit int) ([]models.Person, int64, int, error) {
	offset := (page - 1) * limit

	var persons []models.Person
	query := applySearchFilter(r.db.Model(&models.Person{}), searchType, term)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Find(&persons).Error; err != nil {
		return nil, 0, 0, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return persons, total, totalPages, nil
}

// AdminSearch powers the dashboard list: substring match on NIK or full name,
// paginated. searchBy must be "nik" or "nama_lengkap".
func (r *PersonRepository) AdminSearch(searchBy, term string, page, limit int) ([]models.Person, int64, int, error) {
	offset := (page - 1) * limit

	column := "nama_lengkap"
	if searchBy == SearchByNIK {
		column = "nik"
	}

	query := r.db.Model(&models.Person{}).
		Where(fmt.Sprintf("LOWER(%s) LIKE ?", column), "%"+strings.ToLower(term)+"%")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	var persons []models.Person
	if err := query.Offset(offset).Limit(limit).Find(&persons).Error; err != nil {
		return nil, 0, 0, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return persons, total, totalPages, nil
}

// FindByNIK returns the record or gorm.ErrRecordNotFound.
func (r *PersonRepository) FindByNIK(nik string) (*models.Person, error) {
	var person models.Person
	if err := r.db.Where("nik = ?", nik).First(&person).Error; err != nil {
		return nil, err
	}
	return &person, nil
}

// Family returns the projection of every household member except excludeNIK.
// Rows come back in store order; no ordering is promised.
func (r *PersonRepository) Family(noKK, excludeNIK string) ([]models.FamilyMember, error) {
	query := r.db.Model(&models.Person{}).
		Select("nik", "nama_lengkap", "jenis_kelamin", "tgl_lhr", "status_hub_keluarga", "id_foto").
		Where("no_kk = ?", noKK)

	if excludeNIK != "" {
		query = query.Where("nik <> ?", excludeNIK)
	}

	members := []models.FamilyMember{}
	if err := query.Scan(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Create inserts a new record. A record with the same NIK already present is
// reported as ErrNIKExists and nothing is written.
func (r *PersonRepository) Create(person *models.Person) error {
	err := r.db.Where("nik = ?", person.NIK).First(&models.Person{}).Error
	if err == nil {
		return ErrNIKExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return r.db.Create(person).Error
}

// Update applies a partial field update targeted by NIK and reports how many
// rows were touched.
func (r *PersonRepository) Update(nik string, fields map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Person{}).Where("nik = ?", nik).Updates(fields)
	return result.RowsAffected, result.Error
}

// Delete removes the record. Household members are untouched; there is no
// soft delete.
func (r *PersonRepository) Delete(nik string) (int64, error) {
	result := r.db.Where("nik = ?", nik).Delete(&models.Person{})
	return result.RowsAffected, result.Error
}

// Stats computes registry-wide counts for a snapshot.
func (r *PersonRepository) Stats() (*models.RegistryStat, error) {
	stat := &models.RegistryStat{}

	if err := r.db.Model(&models.Person{}).Count(&stat.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Person{}).
		Where("jenis_kelamin = ?", models.GenderMale).
		Count(&stat.LakiLaki).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Person{}).
		Where("jenis_kelamin = ?", models.GenderFemale).
		Count(&stat.Perempuan).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Person{}).
		Distinct("no_kk").
		Count(&stat.Households).Error; err != nil {
		return nil, err
	}

	return stat, nil
}

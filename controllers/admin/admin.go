package adminController

import (
	"errors"
	"fmt"
	"log"

	"siktp/database"
	"siktp/middleware"
	"siktp/models"
	"siktp/repository"
	personValidator "siktp/validators/person"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func repo(c *fiber.Ctx) *repository.PersonRepository {
	return repository.NewPersonRepository(database.Database.Db.WithContext(c.UserContext()))
}

func actor(c *fiber.Ctx) string {
	subject, _ := c.Locals("subject").(string)
	return subject
}

func recordActivity(c *fiber.Ctx, action, targetNIK, detail string) {
	entry := models.ActivityLog{
		Actor:     actor(c),
		Action:    action,
		TargetNIK: targetNIK,
		Detail:    detail,
		IPAddress: c.IP(),
	}
	if err := database.Database.Db.Create(&entry).Error; err != nil {
		log.Printf("Error recording activity: %v", err)
	}
}

// optional converts an empty form value to NULL
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nullable converts an empty form value to a NULL update value
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// PersonList serves the dashboard table: substring search on NIK or name,
// paginated
func PersonList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("list").(*personValidator.ListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	persons, total, totalPages, err := repo(c).AdminSearch(
		reqData.SearchBy, reqData.Query, reqData.Page, reqData.Limit,
	)
	if err != nil {
		log.Printf("Error fetching person list: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch person list!", nil)
	}

	response := fiber.Map{
		"persons": persons,
		"pagination": fiber.Map{
			"total":      total,
			"page":       reqData.Page,
			"limit":      reqData.Limit,
			"totalPages": totalPages,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Person list.", response)
}

// CreatePerson inserts a new record. A duplicate NIK is rejected with 409 and
// nothing is written.
func CreatePerson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("createPerson").(*personValidator.CreatePersonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	person := models.Person{
		NIK:               reqData.NIK,
		NoKK:              reqData.NoKK,
		NamaLengkap:       reqData.NamaLengkap,
		JenisKelamin:      reqData.JenisKelamin,
		TmptLhr:           reqData.TmptLhr,
		TglLhr:            reqData.TglLhr,
		Ibu:               optional(reqData.Ibu),
		Ayah:              optional(reqData.Ayah),
		StatusHubKeluarga: optional(reqData.StatusHubKeluarga),
		JenisPekerjaan:    optional(reqData.JenisPekerjaan),
		Alamat:            optional(reqData.Alamat),
		NamaKec:           optional(reqData.NamaKec),
		NamaKel:           optional(reqData.NamaKel),
		IDFoto:            optional(reqData.IDFoto),
	}

	if err := repo(c).Create(&person); err != nil {
		if errors.Is(err, repository.ErrNIKExists) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "NIK already exists in database!", nil)
		}
		log.Printf("Error saving person to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create person!", nil)
	}

	recordActivity(c, models.ActionCreate, person.NIK, "Created "+person.NamaLengkap)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Person created successfully.", person)
}

// UpdatePerson applies a partial update targeted by NIK. Submitted empty
// optional fields are cleared to NULL, matching the edit form behavior.
func UpdatePerson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("updatePerson").(*personValidator.UpdatePersonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	nik := c.Params("nik")

	fields := map[string]interface{}{}
	if reqData.NoKK != nil {
		fields["no_kk"] = *reqData.NoKK
	}
	if reqData.NamaLengkap != nil {
		fields["nama_lengkap"] = *reqData.NamaLengkap
	}
	if reqData.JenisKelamin != nil {
		fields["jenis_kelamin"] = *reqData.JenisKelamin
	}
	if reqData.TmptLhr != nil {
		fields["tmpt_lhr"] = *reqData.TmptLhr
	}
	if reqData.TglLhr != nil {
		fields["tgl_lhr"] = *reqData.TglLhr
	}
	if reqData.Ibu != nil {
		fields["ibu"] = nullable(*reqData.Ibu)
	}
	if reqData.Ayah != nil {
		fields["ayah"] = nullable(*reqData.Ayah)
	}
	if reqData.StatusHubKeluarga != nil {
		fields["status_hub_keluarga"] = nullable(*reqData.StatusHubKeluarga)
	}
	if reqData.JenisPekerjaan != nil {
		fields["jenis_pekerjaan"] = nullable(*reqData.JenisPekerjaan)
	}
	if reqData.Alamat != nil {
		fields["alamat"] = nullable(*reqData.Alamat)
	}
	if reqData.NamaKec != nil {
		fields["nama_kec"] = nullable(*reqData.NamaKec)
	}
	if reqData.NamaKel != nil {
		fields["nama_kel"] = nullable(*reqData.NamaKel)
	}
	if reqData.IDFoto != nil {
		fields["id_foto"] = nullable(*reqData.IDFoto)
	}

	if len(fields) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No fields to update!", nil)
	}

	rows, err := repo(c).Update(nik, fields)
	if err != nil {
		log.Printf("Error updating person %s: %v", nik, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update person!", nil)
	}
	if rows == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Person not found!", nil)
	}

	recordActivity(c, models.ActionUpdate, nik, fmt.Sprintf("Updated %d fields", len(fields)))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Person updated successfully.", nil)
}

// DeletePerson removes one record by NIK. Household members are untouched.
func DeletePerson(c *fiber.Ctx) error {
	nik := c.Params("nik")

	rows, err := repo(c).Delete(nik)
	if err != nil {
		log.Printf("Error deleting person %s: %v", nik, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete person!", nil)
	}
	if rows == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Person not found!", nil)
	}

	recordActivity(c, models.ActionDelete, nik, "Deleted record")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Person deleted successfully.", nil)
}

// Stats returns the latest registry snapshot, computing one on the fly when
// the scheduler has not run yet.
func Stats(c *fiber.Ctx) error {
	db := database.Database.Db.WithContext(c.UserContext())

	var stat models.RegistryStat
	err := db.Order("created_at DESC").First(&stat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fresh, statErr := repo(c).Stats()
		if statErr != nil {
			log.Printf("Error computing registry stats: %v", statErr)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute stats!", nil)
		}
		if err := db.Create(fresh).Error; err != nil {
			log.Printf("Error saving registry stat snapshot: %v", err)
		}
		stat = *fresh
	} else if err != nil {
		log.Printf("Error fetching registry stats: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Registry stats.", stat)
}

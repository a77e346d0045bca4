package adminController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"siktp/config"
	"siktp/database"
	"siktp/middleware"
	"siktp/models"
	adminRoutes "siktp/routers/adminRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:       "test-secret",
		PhotoBaseURL: "https://lh3.googleusercontent.com",
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Person{}, &models.ActivityLog{}, &models.RegistryStat{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	adminRoutes.SetupAdminRoutes(app)

	return app, db
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.GenerateJWT("admin", middleware.RoleAdmin)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}

	return resp, decoded
}

func validCreatePayload() fiber.Map {
	return fiber.Map{
		"nik":                 "3173010101950001",
		"no_kk":               "3173010101950001",
		"nama_lengkap":        "Rina Wijaya",
		"jenis_kelamin":       "PEREMPUAN",
		"tmpt_lhr":            "Bandung",
		"tgl_lhr":             "1995-01-01",
		"ibu":                 "Sri Wahyuni",
		"ayah":                "Bambang Wijaya",
		"status_hub_keluarga": "KEPALA KELUARGA",
		"jenis_pekerjaan":     "Karyawan Swasta",
		"alamat":              "Jl. Merdeka No. 1",
		"nama_kec":            "Coblong",
		"nama_kel":            "Dago",
	}
}

func TestAdminRoutesRejectViewerToken(t *testing.T) {
	app, _ := setupApp(t)

	viewer, err := middleware.GenerateJWT("public", middleware.RoleViewer)
	require.NoError(t, err)

	resp, _ := doJSON(t, app, "GET", "/api/admin/persons?q=", viewer, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCreatePerson(t *testing.T) {
	app, db := setupApp(t)

	resp, body := doJSON(t, app, "POST", "/api/admin/persons", adminToken(t), validCreatePayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["status"])

	var count int64
	require.NoError(t, db.Model(&models.Person{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// The mutation landed in the activity log
	var logCount int64
	require.NoError(t, db.Model(&models.ActivityLog{}).
		Where("action = ?", models.ActionCreate).Count(&logCount).Error)
	assert.Equal(t, int64(1), logCount)

	// Unset optional photo reference is stored as NULL
	var person models.Person
	require.NoError(t, db.Where("nik = ?", "3173010101950001").First(&person).Error)
	assert.Nil(t, person.IDFoto)
}

func TestCreateRejectsShortNIK(t *testing.T) {
	app, db := setupApp(t)

	payload := validCreatePayload()
	payload["nik"] = "12345"

	resp, _ := doJSON(t, app, "POST", "/api/admin/persons", adminToken(t), payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// Rejected before any store write
	var count int64
	require.NoError(t, db.Model(&models.Person{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateRejectsDuplicateNIK(t *testing.T) {
	app, db := setupApp(t)

	resp, _ := doJSON(t, app, "POST", "/api/admin/persons", adminToken(t), validCreatePayload())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/admin/persons", adminToken(t), validCreatePayload())
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Person{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdatePerson(t *testing.T) {
	app, db := setupApp(t)

	_, _ = doJSON(t, app, "POST", "/api/admin/persons", adminToken(t), validCreatePayload())

	resp, _ := doJSON(t, app, "PUT", "/api/admin/persons/3173010101950001", adminToken(t), fiber.Map{
		"jenis_pekerjaan": "Guru",
		"nama_kel":        "",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var person models.Person
	require.NoError(t, db.Where("nik = ?", "3173010101950001").First(&person).Error)
	require.NotNil(t, person.JenisPekerjaan)
	assert.Equal(t, "Guru", *person.JenisPekerjaan)
	// Empty optional field cleared to NULL
	assert.Nil(t, person.NamaKel)
	// Untouched fields survive
	assert.Equal(t, "Rina Wijaya", person.NamaLengkap)
}

func TestUpdateUnknownPerson(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := doJSON(t, app, "PUT", "/api/admin/persons/9999999999999999", adminToken(t), fiber.Map{
		"jenis_pekerjaan": "Guru",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeletePerson(t *testing.T) {
	app, db := setupApp(t)

	_, _ = doJSON(t, app, "POST", "/api/admin/persons", adminToken(t), validCreatePayload())

	resp, _ := doJSON(t, app, "DELETE", "/api/admin/persons/3173010101950001", adminToken(t), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Person{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// Deleting again reports not found
	resp, _ = doJSON(t, app, "DELETE", "/api/admin/persons/3173010101950001", adminToken(t), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPersonList(t *testing.T) {
	app, _ := setupApp(t)

	_, _ = doJSON(t, app, "POST", "/api/admin/persons", adminToken(t), validCreatePayload())

	resp, body := doJSON(t, app, "GET", "/api/admin/persons?searchBy=nik&q=317301&page=1&limit=10", adminToken(t), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	pagination := data["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), pagination["total"])
	assert.Equal(t, float64(1), pagination["totalPages"])

	persons := data["persons"].([]interface{})
	assert.Len(t, persons, 1)
}

func TestPersonListRejectsBadSearchBy(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := doJSON(t, app, "GET", "/api/admin/persons?searchBy=alamat", adminToken(t), nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestStats(t *testing.T) {
	app, _ := setupApp(t)

	_, _ = doJSON(t, app, "POST", "/api/admin/persons", adminToken(t), validCreatePayload())

	resp, body := doJSON(t, app, "GET", "/api/admin/stats", adminToken(t), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])
	assert.Equal(t, float64(1), data["perempuan"])
	assert.Equal(t, float64(0), data["laki_laki"])
	assert.Equal(t, float64(1), data["households"])
}

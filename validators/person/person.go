package personValidator

import (
	"reflect"
	"regexp"
	"strings"

	"siktp/middleware"
	"siktp/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

var nikPattern = regexp.MustCompile(`^\d{16}$`)

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the json field name, not the struct field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CreatePersonRequest mirrors the admin create form: everything except the
// photo reference is mandatory.
type CreatePersonRequest struct {
	NIK               string `json:"nik" validate:"required,len=16,numeric"`
	NoKK              string `json:"no_kk" validate:"required,len=16,numeric"`
	NamaLengkap       string `json:"nama_lengkap" validate:"required"`
	JenisKelamin      string `json:"jenis_kelamin" validate:"required,oneof=LAKI-LAKI PEREMPUAN"`
	TmptLhr           string `json:"tmpt_lhr" validate:"required"`
	TglLhr            string `json:"tgl_lhr" validate:"required,datetime=2006-01-02"`
	Ibu               string `json:"ibu" validate:"required"`
	Ayah              string `json:"ayah" validate:"required"`
	StatusHubKeluarga string `json:"status_hub_keluarga" validate:"required"`
	JenisPekerjaan    string `json:"jenis_pekerjaan" validate:"required"`
	Alamat            string `json:"alamat" validate:"required"`
	NamaKec           string `json:"nama_kec" validate:"required"`
	NamaKel           string `json:"nama_kel" validate:"required"`
	IDFoto            string `json:"id_foto"`
}

// UpdatePersonRequest is a partial update; absent fields stay untouched,
// empty optional fields are cleared to NULL by the controller.
type UpdatePersonRequest struct {
	NoKK              *string `json:"no_kk" validate:"omitempty,len=16,numeric"`
	NamaLengkap       *string `json:"nama_lengkap" validate:"omitempty,min=1"`
	JenisKelamin      *string `json:"jenis_kelamin" validate:"omitempty,oneof=LAKI-LAKI PEREMPUAN"`
	TmptLhr           *string `json:"tmpt_lhr"`
	TglLhr            *string `json:"tgl_lhr" validate:"omitempty,datetime=2006-01-02"`
	Ibu               *string `json:"ibu"`
	Ayah              *string `json:"ayah"`
	StatusHubKeluarga *string `json:"status_hub_keluarga"`
	JenisPekerjaan    *string `json:"jenis_pekerjaan"`
	Alamat            *string `json:"alamat"`
	NamaKec           *string `json:"nama_kec"`
	NamaKel           *string `json:"nama_kel"`
	IDFoto            *string `json:"id_foto"`
}

// ListRequest carries the validated admin list query.
type ListRequest struct {
	SearchBy string
	Query    string
	Page     int
	Limit    int
}

func validationMessages(err error) map[string]string {
	errors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}

	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			errors[e.Field()] = "This field is required!"
		case "len", "numeric":
			errors[e.Field()] = "Must be exactly 16 digits!"
		case "oneof":
			errors[e.Field()] = "Must be LAKI-LAKI or PEREMPUAN!"
		case "datetime":
			errors[e.Field()] = "Must be a date in YYYY-MM-DD format!"
		default:
			errors[e.Field()] = "Invalid value!"
		}
	}

	return errors
}

func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreatePersonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationMessages(err))
		}

		c.Locals("createPerson", reqData)
		return c.Next()
	}
}

func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !nikPattern.MatchString(c.Params("nik")) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"nik": "Must be exactly 16 digits!",
			})
		}

		reqData := new(UpdatePersonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validationMessages(err))
		}

		c.Locals("updatePerson", reqData)
		return c.Next()
	}
}

func NIKParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !nikPattern.MatchString(c.Params("nik")) {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"nik": "Must be exactly 16 digits!",
			})
		}
		return c.Next()
	}
}

func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &ListRequest{
			SearchBy: c.Query("searchBy", "nama_lengkap"),
			Query:    strings.TrimSpace(c.Query("q")),
			Page:     c.QueryInt("page", 1),
			Limit:    c.QueryInt("limit", repository.AdminDefaultPageSize),
		}

		errors := make(map[string]string)

		if reqData.SearchBy != repository.SearchByNIK && reqData.SearchBy != repository.SearchByName {
			errors["searchBy"] = "Must be nik or nama_lengkap!"
		}
		if reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit < 1 || reqData.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("list", reqData)
		return c.Next()
	}
}

package searchController

import (
	"errors"
	"log"
	"time"

	"siktp/database"
	"siktp/models"
	"siktp/repository"
	"siktp/utils"
	searchValidator "siktp/validators/search"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// personCard is a search result item with its resolved thumbnail.
type personCard struct {
	models.Person
	PhotoURL string `json:"photo_url"`
}

// personDetail is the full record plus presentation fields the detail panel
// shows: the full-size photo URL and both date renderings.
type personDetail struct {
	models.Person
	PhotoURL      string `json:"photo_url"`
	TglLhrPendek  string `json:"tgl_lhr_pendek"`
	TglLhrPanjang string `json:"tgl_lhr_panjang"`
}

type familyCard struct {
	models.FamilyMember
	PhotoURL string `json:"photo_url"`
}

// Search returns one page of matches in the original response shape:
// {success, data, total, page, totalPages}
func Search(c *fiber.Ctx) error {
	reqData, ok := c.Locals("search").(*searchValidator.SearchRequest)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request data!",
		})
	}

	repo := repository.NewPersonRepository(database.Database.Db.WithContext(c.UserContext()))

	persons, total, totalPages, err := repo.Search(
		reqData.SearchType, reqData.SearchTerm, reqData.Page, repository.PublicPageSize,
	)
	if err != nil {
		log.Printf("Search error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Terjadi kesalahan saat mencari data",
		})
	}

	cards := make([]personCard, 0, len(persons))
	for _, p := range persons {
		cards = append(cards, personCard{
			Person:   p,
			PhotoURL: utils.PhotoURL(p.PhotoRef(), p.JenisKelamin, utils.PhotoThumb),
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       cards,
		"total":      total,
		"page":       reqData.Page,
		"totalPages": totalPages,
	})
}

// Person returns the full record for one NIK, or a 404 empty-state
func Person(c *fiber.Ctx) error {
	repo := repository.NewPersonRepository(database.Database.Db.WithContext(c.UserContext()))

	person, err := repo.FindByNIK(c.Params("nik"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Data tidak ditemukan",
			})
		}
		log.Printf("Person detail error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Terjadi kesalahan saat mengambil detail",
		})
	}

	return c.JSON(personDetail{
		Person:        *person,
		PhotoURL:      utils.PhotoURL(person.PhotoRef(), person.JenisKelamin, utils.PhotoFull),
		TglLhrPendek:  utils.FormatShortDate(person.TglLhr),
		TglLhrPanjang: utils.FormatLongDate(person.TglLhr),
	})
}

// Family returns the household projection, excluding the NIK given in the
// exclude query param. Store errors propagate as 500 just like search and
// detail do.
func Family(c *fiber.Ctx) error {
	repo := repository.NewPersonRepository(database.Database.Db.WithContext(c.UserContext()))

	members, err := repo.Family(c.Params("no_kk"), c.Query("exclude"))
	if err != nil {
		log.Printf("Family data error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Terjadi kesalahan saat mengambil data keluarga",
		})
	}

	cards := make([]familyCard, 0, len(members))
	for _, m := range members {
		cards = append(cards, familyCard{
			FamilyMember: m,
			PhotoURL:     utils.PhotoURL(m.PhotoRef(), m.JenisKelamin, utils.PhotoThumb),
		})
	}

	return c.JSON(cards)
}

// Photo proxies the citizen photo from the external image host. Records
// without a photo redirect to the bundled placeholder asset.
func Photo(c *fiber.Ctx) error {
	size := c.Query("size", utils.PhotoThumb)
	if size != utils.PhotoThumb && size != utils.PhotoFull {
		size = utils.PhotoThumb
	}

	repo := repository.NewPersonRepository(database.Database.Db.WithContext(c.UserContext()))

	person, err := repo.FindByNIK(c.Params("nik"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Data tidak ditemukan",
			})
		}
		log.Printf("Photo lookup error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Terjadi kesalahan saat mengambil foto",
		})
	}

	url := utils.PhotoURL(person.PhotoRef(), person.JenisKelamin, size)
	if utils.IsPlaceholder(url) {
		return c.Redirect(url, fiber.StatusFound)
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().Get(url)
	if err != nil {
		log.Printf("Photo fetch error: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"message": "Foto tidak dapat diambil",
		})
	}
	if resp.StatusCode() != fiber.StatusOK {
		log.Printf("Photo fetch failed with status %d", resp.StatusCode())
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"message": "Foto tidak dapat diambil",
		})
	}

	c.Set(fiber.HeaderContentType, resp.Header().Get(fiber.HeaderContentType))
	return c.Send(resp.Body())
}

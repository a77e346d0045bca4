package utils

import (
	"strings"

	"siktp/config"
	"siktp/models"
)

// Photo size hints
const (
	PhotoThumb = "thumb"
	PhotoFull  = "full"
)

// Placeholder assets served from the public dir for records without a photo
const (
	MalePlaceholder   = "/assets/male-placeholder.jpg"
	FemalePlaceholder = "/assets/female-placeholder.jpg"
)

// PhotoURL resolves a photo reference to a displayable URL. An empty
// reference falls back to the gender-keyed placeholder, a full URL is passed
// through untouched, anything else is treated as an image-host object id.
// The size hint selects the host's thumbnail or full-size rendering.
func PhotoURL(ref, jenisKelamin, size string) string {
	if ref == "" {
		if jenisKelamin == models.GenderMale {
			return MalePlaceholder
		}
		return FemalePlaceholder
	}

	if strings.HasPrefix(ref, "http") {
		return ref
	}

	base := config.AppConfig.PhotoBaseURL
	if size == PhotoThumb {
		return base + "/d/" + ref + "=s100-c"
	}
	return base + "/d/" + ref + "=w800"
}

// IsPlaceholder reports whether url points at a bundled placeholder asset
// rather than the external image host.
func IsPlaceholder(url string) bool {
	return url == MalePlaceholder || url == FemalePlaceholder
}

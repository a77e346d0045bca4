package utils

import (
	"fmt"
	"strings"
	"time"
)

var hari = []string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var bulan = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatShortDate turns YYYY-MM-DD into DD/MM/YYYY. Anything that does not
// split into three parts is returned unchanged.
func FormatShortDate(dateString string) string {
	if dateString == "" {
		return ""
	}
	parts := strings.Split(dateString, "-")
	if len(parts) != 3 {
		return dateString
	}
	return fmt.Sprintf("%s/%s/%s", parts[2], parts[1], parts[0])
}

// FormatLongDate renders a date as "Senin, 12 Januari 1978". Dates that fail
// to parse fall back to the short form.
func FormatLongDate(dateString string) string {
	if dateString == "" {
		return ""
	}

	date, err := time.Parse("2006-01-02", dateString)
	if err != nil {
		return FormatShortDate(dateString)
	}

	return fmt.Sprintf("%s, %d %s %d",
		hari[int(date.Weekday())],
		date.Day(),
		bulan[int(date.Month())-1],
		date.Year(),
	)
}

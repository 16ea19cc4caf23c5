package matching

import (
	"strings"

	"github.com/shadowbane/phoenix-aid/pkg/models"
)

// ProvinceAliases maps abbreviations users commonly type to the
// canonical full province name. Keys and values are upper-case;
// lookups go through ResolveAlias.
var ProvinceAliases = map[string]string{
	"PEI":  "PRINCE EDWARD ISLAND",
	"NWT":  "NORTHWEST TERRITORIES",
	"NFLD": "NEWFOUNDLAND AND LABRADOR",
	"NL":   "NEWFOUNDLAND AND LABRADOR",
}

// Normalize lower-cases a value and strips surrounding whitespace.
// Locations are compared in this form.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeMessage lower-cases a message and collapses internal
// whitespace runs to single spaces, so reformatted copies of the same
// message still compare equal.
func NormalizeMessage(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// NormalizeRadius returns the trimmed radius when it is composed
// entirely of digits, and the RadiusNA sentinel otherwise.
func NormalizeRadius(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.RadiusNA
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return models.RadiusNA
		}
	}
	return s
}

// ResolveAlias upper-cases and trims a query, then substitutes a known
// province abbreviation for its canonical full name. Queries that are
// not aliases come back unchanged (upper-cased).
func ResolveAlias(q string) string {
	q = strings.ToUpper(strings.TrimSpace(q))
	if full, ok := ProvinceAliases[q]; ok {
		return full
	}
	return q
}

// TitleCase renders a value in title case for user-facing notices.
func TitleCase(s string) string {
	// simple title-case: "some area" -> "Some Area"
	return strings.Title(strings.ToLower(s)) //nolint:staticcheck // ASCII place names only
}

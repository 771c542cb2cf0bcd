package entity

import (
	"strings"
	"unicode"
)

// Category groups products for the storefront grid. The slug doubles as the
// identifier; Gradient is a purely presentational CSS class string.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Gradient    string `json:"gradient,omitempty"`
	ItemCount   int    `json:"itemCount"`
}

// Slugify derives a category identifier from its display name.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

package util

import (
	"fmt"
	"strings"
	"unicode"
)

// Slugify lowers a title into a URL slug: letters and digits kept, everything
// else collapsed into single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// UniqueSlug disambiguates a base slug with a numeric suffix until the exists
// probe reports it free: "go-basics", "go-basics-2", "go-basics-3", ...
func UniqueSlug(base string, exists func(string) (bool, error)) (string, error) {
	slug := base
	for i := 2; ; i++ {
		taken, err := exists(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

package common

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrEmptySlug = errors.New("slug cannot be empty")
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify turns a project name into a URL-safe slug, falling back to the
// given value when the name contains no usable characters.
func Slugify(input, fallback string) (string, error) {
	slug := slugify(input)
	if slug == "" {
		slug = slugify(fallback)
	}
	if slug == "" {
		return "", ErrEmptySlug
	}
	return slug, nil
}

// SlugWithSuffix appends a numeric suffix for collision probing, e.g.
// "url-shortener-2".
func SlugWithSuffix(slug string, n int) string {
	return fmt.Sprintf("%s-%d", slug, n)
}

func slugify(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	slug := nonSlugChars.ReplaceAllString(lower, "-")
	return strings.Trim(slug, "-")
}

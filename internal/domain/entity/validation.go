package entity

import (
	"fmt"
	"regexp"
)

// maxSlugLength bounds slug size; slugs appear in URLs and database indexes.
const maxSlugLength = 128

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidateSlug validates that a slug is a lowercase, hyphen-separated,
// URL-safe identifier. Returns a ValidationError if it is not.
func ValidateSlug(slug string) error {
	if slug == "" {
		return &ValidationError{Field: "slug", Message: "is required"}
	}
	if len(slug) > maxSlugLength {
		return &ValidationError{
			Field:   "slug",
			Message: fmt.Sprintf("must not exceed %d characters", maxSlugLength),
		}
	}
	if !slugPattern.MatchString(slug) {
		return &ValidationError{
			Field:   "slug",
			Message: "must contain only lowercase letters, digits and hyphens",
		}
	}
	return nil
}

// Package pathutil provides helpers for extracting identifiers from URL
// paths and for normalizing dynamic paths for metrics labels.
package pathutil

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ErrInvalidSlug is returned when the slug segment of the URL path is
// empty or contains further path segments.
var ErrInvalidSlug = errors.New("invalid slug")

// ExtractID extracts and parses an integer ID from a URL path.
// It removes the specified prefix and attempts to parse the remaining
// string as an int64. Returns ErrInvalidID if the remainder is not a
// positive integer.
func ExtractID(path, prefix string) (int64, error) {
	idStr := strings.TrimPrefix(path, prefix)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ExtractSlug extracts a single slug segment from a URL path after
// removing the specified prefix. Returns ErrInvalidSlug if the
// remainder is empty or spans multiple segments.
func ExtractSlug(path, prefix string) (string, error) {
	slug := strings.TrimPrefix(path, prefix)
	slug = strings.TrimSuffix(slug, "/")
	if slug == "" || strings.Contains(slug, "/") {
		return "", ErrInvalidSlug
	}
	return slug, nil
}

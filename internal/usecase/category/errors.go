// Package category provides use cases for listing and managing
// article categories.
package category

import "errors"

// ErrCategoryNotFound indicates that the requested category was not found.
var ErrCategoryNotFound = errors.New("category not found")

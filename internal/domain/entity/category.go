// Package entity defines the core domain entities for the application:
// categories, articles, solutions, and users, along with their
// validation rules and domain-specific errors.
package entity

// Category represents a legal practice area used to group articles.
type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description *string
	IconName    *string
	ImageURL    *string
}

// UnknownCategory returns the sentinel category substituted whenever an
// article's category reference cannot be resolved. It is the single
// definition of the sentinel; callers must not construct their own.
func UnknownCategory() *Category {
	return &Category{
		ID:   0,
		Name: "Unknown Category",
		Slug: "unknown",
	}
}

package entity

import "time"

// Article represents a long-form legal information article.
// CategoryID references a Category but is not required to resolve;
// reads substitute the unknown-category sentinel when it dangles.
// Featured is tri-state: 0, 1, or nil.
type Article struct {
	ID          int64
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	ImageURL    *string
	PublishDate time.Time
	CategoryID  int64
	Featured    *int64
}

// IsFeatured reports whether the tri-state featured flag is set to 1.
func (a *Article) IsFeatured() bool {
	return a.Featured != nil && *a.Featured == 1
}

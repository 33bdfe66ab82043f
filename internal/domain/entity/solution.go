package entity

// Solution represents a service offering shown on the site, with a
// call-to-action link into the relevant section.
type Solution struct {
	ID          int64
	Title       string
	Description string
	ImageURL    *string
	Link        string
	LinkText    string
}

// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for listing, fetching, searching, creating, and
// deleting articles.
package article

import (
	"time"

	"lawportal/internal/domain/entity"
	"lawportal/internal/repository"
)

// CategoryDTO represents the category embedded in article responses.
type CategoryDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	IconName    *string `json:"iconName,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// DTO represents the JSON structure for article data transfer.
// Category is populated on reads and omitted on create responses.
type DTO struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Slug        string       `json:"slug"`
	Excerpt     string       `json:"excerpt"`
	Content     string       `json:"content"`
	ImageURL    *string      `json:"imageUrl,omitempty"`
	PublishDate time.Time    `json:"publishDate"`
	CategoryID  int64        `json:"categoryId"`
	Featured    *int64       `json:"featured,omitempty"`
	Category    *CategoryDTO `json:"category,omitempty"`
}

func toCategoryDTO(c *entity.Category) *CategoryDTO {
	if c == nil {
		return nil
	}
	return &CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IconName:    c.IconName,
		ImageURL:    c.ImageURL,
	}
}

func toDTO(a *entity.Article, c *entity.Category) DTO {
	return DTO{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		ImageURL:    a.ImageURL,
		PublishDate: a.PublishDate,
		CategoryID:  a.CategoryID,
		Featured:    a.Featured,
		Category:    toCategoryDTO(c),
	}
}

func toDTOs(articles []repository.ArticleWithCategory) []DTO {
	out := make([]DTO, 0, len(articles))
	for _, awc := range articles {
		out = append(out, toDTO(awc.Article, awc.Category))
	}
	return out
}

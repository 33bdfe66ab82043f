package category

import (
	"context"
	"fmt"

	"lawportal/internal/domain/entity"
	"lawportal/internal/repository"
)

// CreateInput represents the input parameters for creating a category.
type CreateInput struct {
	Name        string
	Slug        string
	Description *string
	IconName    *string
	ImageURL    *string
}

// Service provides category use cases.
type Service struct {
	Store repository.Storage
}

// List retrieves all categories.
func (s *Service) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.Store.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// GetBySlug retrieves a single category by its slug.
// Returns ErrCategoryNotFound if no category has that slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	c, err := s.Store.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

// Create creates a new category with the provided input.
// Returns a ValidationError if any input field is invalid and
// entity.ErrDuplicateSlug if the slug is already taken.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Category, error) {
	if in.Name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if err := entity.ValidateSlug(in.Slug); err != nil {
		return nil, err
	}

	c := &entity.Category{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		IconName:    in.IconName,
		ImageURL:    in.ImageURL,
	}

	created, err := s.Store.CreateCategory(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return created, nil
}

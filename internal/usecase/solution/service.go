// Package solution provides use cases for the site's service offerings.
package solution

import (
	"context"
	"fmt"

	"lawportal/internal/domain/entity"
	"lawportal/internal/repository"
)

// CreateInput represents the input parameters for creating a solution.
type CreateInput struct {
	Title       string
	Description string
	ImageURL    *string
	Link        string
	LinkText    string
}

// Service provides solution use cases.
type Service struct {
	Store repository.Storage
}

// List retrieves all solutions.
func (s *Service) List(ctx context.Context) ([]*entity.Solution, error) {
	solutions, err := s.Store.GetSolutions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list solutions: %w", err)
	}
	return solutions, nil
}

// Create creates a new solution with the provided input.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Solution, error) {
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if in.Description == "" {
		return nil, &entity.ValidationError{Field: "description", Message: "is required"}
	}
	if in.Link == "" {
		return nil, &entity.ValidationError{Field: "link", Message: "is required"}
	}
	if in.LinkText == "" {
		return nil, &entity.ValidationError{Field: "linkText", Message: "is required"}
	}

	sol := &entity.Solution{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Link:        in.Link,
		LinkText:    in.LinkText,
	}

	created, err := s.Store.CreateSolution(ctx, sol)
	if err != nil {
		return nil, fmt.Errorf("create solution: %w", err)
	}
	return created, nil
}

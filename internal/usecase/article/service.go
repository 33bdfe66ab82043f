package article

import (
	"context"
	"fmt"
	"time"

	"lawportal/internal/domain/entity"
	"lawportal/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
// The category reference is not checked for existence: an article may
// point at a category that was never created and will render with the
// unknown-category fallback.
type CreateInput struct {
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	ImageURL    *string
	PublishDate time.Time
	CategoryID  int64
	Featured    *int64
}

// Service provides article use cases. It delegates persistence to the
// configured storage backend.
type Service struct {
	Store repository.Storage
}

// List retrieves all articles with their categories resolved.
func (s *Service) List(ctx context.Context) ([]repository.ArticleWithCategory, error) {
	articles, err := s.Store.GetArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// GetBySlug retrieves a single article by its slug.
// Returns ErrArticleNotFound if no article has that slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*repository.ArticleWithCategory, error) {
	awc, err := s.Store.GetArticleBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	if awc == nil {
		return nil, ErrArticleNotFound
	}
	return awc, nil
}

// GetByID retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) GetByID(ctx context.Context, id int64) (*repository.ArticleWithCategory, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	awc, err := s.Store.GetArticleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if awc == nil {
		return nil, ErrArticleNotFound
	}
	return awc, nil
}

// ListByCategory retrieves the articles belonging to the category with
// the given slug. An unknown slug yields an empty list, not an error.
func (s *Service) ListByCategory(ctx context.Context, categorySlug string) ([]repository.ArticleWithCategory, error) {
	articles, err := s.Store.GetArticlesByCategory(ctx, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("list articles by category: %w", err)
	}
	return articles, nil
}

// Featured retrieves the articles whose featured flag equals 1, newest
// publish date first.
func (s *Service) Featured(ctx context.Context) ([]repository.ArticleWithCategory, error) {
	articles, err := s.Store.GetFeaturedArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list featured articles: %w", err)
	}
	return articles, nil
}

// Recent retrieves at most limit articles, newest publish date first.
func (s *Service) Recent(ctx context.Context, limit int) ([]repository.ArticleWithCategory, error) {
	if limit <= 0 {
		return nil, &entity.ValidationError{Field: "limit", Message: "must be positive"}
	}

	articles, err := s.Store.GetRecentArticles(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent articles: %w", err)
	}
	return articles, nil
}

// Search finds articles whose title, excerpt or content contains the
// query, matched case-insensitively.
func (s *Service) Search(ctx context.Context, query string) ([]repository.ArticleWithCategory, error) {
	if query == "" {
		return nil, &entity.ValidationError{Field: "q", Message: "is required"}
	}

	articles, err := s.Store.SearchArticles(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return articles, nil
}

// Create creates a new article with the provided input.
// Returns a ValidationError if any input field is invalid and
// entity.ErrDuplicateSlug if the slug is already taken.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}
	if err := entity.ValidateSlug(in.Slug); err != nil {
		return nil, err
	}
	if in.Excerpt == "" {
		return nil, &entity.ValidationError{Field: "excerpt", Message: "is required"}
	}
	if in.Content == "" {
		return nil, &entity.ValidationError{Field: "content", Message: "is required"}
	}
	if in.CategoryID <= 0 {
		return nil, &entity.ValidationError{Field: "categoryId", Message: "must be positive"}
	}
	if in.Featured != nil && *in.Featured != 0 && *in.Featured != 1 {
		return nil, &entity.ValidationError{Field: "featured", Message: "must be 0 or 1"}
	}

	publishDate := in.PublishDate
	if publishDate.IsZero() {
		publishDate = time.Now()
	}

	art := &entity.Article{
		Title:       in.Title,
		Slug:        in.Slug,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		ImageURL:    in.ImageURL,
		PublishDate: publishDate,
		CategoryID:  in.CategoryID,
		Featured:    in.Featured,
	}

	created, err := s.Store.CreateArticle(ctx, art)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return created, nil
}

// Remove deletes an article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive and
// ErrArticleNotFound if no article with that ID exists; backend
// failures propagate as distinct errors.
func (s *Service) Remove(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}

	removed, err := s.Store.RemoveArticle(ctx, id)
	if err != nil {
		return fmt.Errorf("remove article: %w", err)
	}
	if !removed {
		return ErrArticleNotFound
	}
	return nil
}

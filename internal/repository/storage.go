// Package repository defines the storage contract shared by all
// persistence backends. Exactly one backend is selected at startup;
// callers depend only on the Storage interface.
package repository

import (
	"context"

	"lawportal/internal/domain/entity"
)

// ArticleWithCategory pairs an article with its resolved category.
// Category is never nil: when the article's category reference does not
// resolve, backends substitute entity.UnknownCategory().
type ArticleWithCategory struct {
	Article  *entity.Article
	Category *entity.Category
}

// Storage is the capability contract implemented by every persistence
// backend. Single-entity lookups return (nil, nil) when no match
// exists; errors are reserved for backend failures. Creates assign the
// entity ID and return the stored record; they never accept a
// client-supplied ID.
type Storage interface {
	GetUser(ctx context.Context, id int64) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	// CreateUser stores a new user. Returns entity.ErrDuplicateUsername
	// if the username is already taken.
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)

	GetCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*entity.Category, error)
	// CreateCategory stores a new category. Returns
	// entity.ErrDuplicateSlug if the slug is already taken.
	CreateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error)

	// GetArticles returns every article with its category resolved,
	// falling back to the unknown-category sentinel.
	GetArticles(ctx context.Context) ([]ArticleWithCategory, error)
	GetArticleBySlug(ctx context.Context, slug string) (*ArticleWithCategory, error)
	GetArticleByID(ctx context.Context, id int64) (*ArticleWithCategory, error)
	// GetArticlesByCategory returns the articles belonging to the
	// category with the given slug, or an empty slice if no such
	// category exists.
	GetArticlesByCategory(ctx context.Context, categorySlug string) ([]ArticleWithCategory, error)
	// GetFeaturedArticles returns articles whose featured flag equals 1,
	// newest publish date first.
	GetFeaturedArticles(ctx context.Context) ([]ArticleWithCategory, error)
	// GetRecentArticles returns at most limit articles, newest publish
	// date first.
	GetRecentArticles(ctx context.Context, limit int) ([]ArticleWithCategory, error)
	// SearchArticles returns articles whose title, excerpt or content
	// contains the query, matched case-insensitively.
	SearchArticles(ctx context.Context, query string) ([]ArticleWithCategory, error)
	// CreateArticle stores a new article. The category reference is not
	// checked; dangling references resolve to the sentinel on read.
	// Returns entity.ErrDuplicateSlug if the slug is already taken.
	CreateArticle(ctx context.Context, article *entity.Article) (*entity.Article, error)
	// RemoveArticle deletes the article with the given ID. The boolean
	// reports whether a row was actually removed; backend failures are
	// returned as errors, never folded into a false result.
	RemoveArticle(ctx context.Context, id int64) (bool, error)

	GetSolutions(ctx context.Context) ([]*entity.Solution, error)
	CreateSolution(ctx context.Context, solution *entity.Solution) (*entity.Solution, error)
}

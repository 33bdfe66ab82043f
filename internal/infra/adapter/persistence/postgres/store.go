// Package postgres provides the PostgreSQL implementation of the
// storage contract. Category resolution is pushed into the query
// engine: every article-returning read LEFT JOINs categories and
// substitutes the unknown-category sentinel when the join misses.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"lawportal/internal/domain/entity"
	"lawportal/internal/repository"
)

// Store implements repository.Storage against a PostgreSQL database.
type Store struct {
	db *sql.DB
}

// NewStore creates a PostgreSQL-backed store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// articleColumns is the join projection shared by every
// article-returning query. The category columns are nullable so a
// dangling category reference still yields the article row.
const articleColumns = `
a.id, a.title, a.slug, a.excerpt, a.content, a.image_url, a.publish_date, a.category_id, a.featured,
c.id, c.name, c.slug, c.description, c.icon_name, c.image_url`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanArticleWithCategory scans one joined row, falling back to the
// sentinel category when the join produced no category columns.
func scanArticleWithCategory(row rowScanner) (repository.ArticleWithCategory, error) {
	var (
		article entity.Article

		catID          sql.NullInt64
		catName        sql.NullString
		catSlug        sql.NullString
		catDescription sql.NullString
		catIconName    sql.NullString
		catImageURL    sql.NullString
	)

	err := row.Scan(
		&article.ID, &article.Title, &article.Slug, &article.Excerpt,
		&article.Content, &article.ImageURL, &article.PublishDate,
		&article.CategoryID, &article.Featured,
		&catID, &catName, &catSlug, &catDescription, &catIconName, &catImageURL,
	)
	if err != nil {
		return repository.ArticleWithCategory{}, err
	}

	category := entity.UnknownCategory()
	if catID.Valid {
		category = &entity.Category{
			ID:          catID.Int64,
			Name:        catName.String,
			Slug:        catSlug.String,
			Description: nullableString(catDescription),
			IconName:    nullableString(catIconName),
			ImageURL:    nullableString(catImageURL),
		}
	}

	return repository.ArticleWithCategory{Article: &article, Category: category}, nil
}

func (s *Store) queryArticles(ctx context.Context, op, query string, args ...any) ([]repository.ArticleWithCategory, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]repository.ArticleWithCategory, 0, 32)
	for rows.Next() {
		awc, err := scanArticleWithCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		out = append(out, awc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows.Err: %w", op, err)
	}
	return out, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT id, username, password
FROM users
WHERE id = $1
LIMIT 1`
	var u entity.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetUser: %w", err)
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	const query = `
SELECT id, username, password
FROM users
WHERE username = $1
LIMIT 1`
	var u entity.User
	err := s.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetUserByUsername: %w", err)
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	const query = `
INSERT INTO users (username, password)
VALUES ($1, $2)
RETURNING id`
	created := *user
	err := s.db.QueryRowContext(ctx, query, user.Username, user.Password).Scan(&created.ID)
	if isUniqueViolation(err) {
		return nil, entity.ErrDuplicateUsername
	}
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return &created, nil
}

func (s *Store) GetCategories(ctx context.Context) ([]*entity.Category, error) {
	const query = `
SELECT id, name, slug, description, icon_name, image_url
FROM categories
ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("GetCategories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]*entity.Category, 0, 16)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IconName, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("GetCategories: Scan: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (s *Store) GetCategoryBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	const query = `
SELECT id, name, slug, description, icon_name, image_url
FROM categories
WHERE slug = $1
LIMIT 1`
	var c entity.Category
	err := s.db.QueryRowContext(ctx, query, slug).
		Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IconName, &c.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetCategoryBySlug: %w", err)
	}
	return &c, nil
}

func (s *Store) GetCategoryByID(ctx context.Context, id int64) (*entity.Category, error) {
	const query = `
SELECT id, name, slug, description, icon_name, image_url
FROM categories
WHERE id = $1
LIMIT 1`
	var c entity.Category
	err := s.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IconName, &c.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetCategoryByID: %w", err)
	}
	return &c, nil
}

func (s *Store) CreateCategory(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	const query = `
INSERT INTO categories (name, slug, description, icon_name, image_url)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	created := *category
	err := s.db.QueryRowContext(ctx, query,
		category.Name, category.Slug, category.Description,
		category.IconName, category.ImageURL,
	).Scan(&created.ID)
	if isUniqueViolation(err) {
		return nil, entity.ErrDuplicateSlug
	}
	if err != nil {
		return nil, fmt.Errorf("CreateCategory: %w", err)
	}
	return &created, nil
}

func (s *Store) GetArticles(ctx context.Context) ([]repository.ArticleWithCategory, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles a
LEFT JOIN categories c ON a.category_id = c.id
ORDER BY a.publish_date DESC`
	return s.queryArticles(ctx, "GetArticles", query)
}

func (s *Store) GetArticleBySlug(ctx context.Context, slug string) (*repository.ArticleWithCategory, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles a
LEFT JOIN categories c ON a.category_id = c.id
WHERE a.slug = $1
LIMIT 1`
	awc, err := scanArticleWithCategory(s.db.QueryRowContext(ctx, query, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetArticleBySlug: %w", err)
	}
	return &awc, nil
}

func (s *Store) GetArticleByID(ctx context.Context, id int64) (*repository.ArticleWithCategory, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles a
LEFT JOIN categories c ON a.category_id = c.id
WHERE a.id = $1
LIMIT 1`
	awc, err := scanArticleWithCategory(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetArticleByID: %w", err)
	}
	return &awc, nil
}

func (s *Store) GetArticlesByCategory(ctx context.Context, categorySlug string) ([]repository.ArticleWithCategory, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles a
LEFT JOIN categories c ON a.category_id = c.id
WHERE c.slug = $1
ORDER BY a.publish_date DESC`
	return s.queryArticles(ctx, "GetArticlesByCategory", query, categorySlug)
}

func (s *Store) GetFeaturedArticles(ctx context.Context) ([]repository.ArticleWithCategory, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles a
LEFT JOIN categories c ON a.category_id = c.id
WHERE a.featured = 1
ORDER BY a.publish_date DESC`
	return s.queryArticles(ctx, "GetFeaturedArticles", query)
}

func (s *Store) GetRecentArticles(ctx context.Context, limit int) ([]repository.ArticleWithCategory, error) {
	query := `
SELECT ` + articleColumns + `
FROM articles a
LEFT JOIN categories c ON a.category_id = c.id
ORDER BY a.publish_date DESC
LIMIT $1`
	return s.queryArticles(ctx, "GetRecentArticles", query, limit)
}

func (s *Store) SearchArticles(ctx context.Context, query string) ([]repository.ArticleWithCategory, error) {
	sqlQuery := `
SELECT ` + articleColumns + `
FROM articles a
LEFT JOIN categories c ON a.category_id = c.id
WHERE a.title   ILIKE $1
   OR a.excerpt ILIKE $1
   OR a.content ILIKE $1
ORDER BY a.publish_date DESC`
	pattern := "%" + query + "%"
	return s.queryArticles(ctx, "SearchArticles", sqlQuery, pattern)
}

func (s *Store) CreateArticle(ctx context.Context, article *entity.Article) (*entity.Article, error) {
	const query = `
INSERT INTO articles (title, slug, excerpt, content, image_url, publish_date, category_id, featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`
	created := *article
	err := s.db.QueryRowContext(ctx, query,
		article.Title, article.Slug, article.Excerpt, article.Content,
		article.ImageURL, article.PublishDate, article.CategoryID, article.Featured,
	).Scan(&created.ID)
	if isUniqueViolation(err) {
		return nil, entity.ErrDuplicateSlug
	}
	if err != nil {
		return nil, fmt.Errorf("CreateArticle: %w", err)
	}
	return &created, nil
}

// RemoveArticle deletes the article with the given ID. A false result
// means no row matched; backend failures are returned as errors and
// never collapsed into the not-found signal.
func (s *Store) RemoveArticle(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("RemoveArticle: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("RemoveArticle: RowsAffected: %w", err)
	}
	return n > 0, nil
}

func (s *Store) GetSolutions(ctx context.Context) ([]*entity.Solution, error) {
	const query = `
SELECT id, title, description, image_url, link, link_text
FROM solutions
ORDER BY id`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("GetSolutions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]*entity.Solution, 0, 16)
	for rows.Next() {
		var sol entity.Solution
		if err := rows.Scan(&sol.ID, &sol.Title, &sol.Description, &sol.ImageURL, &sol.Link, &sol.LinkText); err != nil {
			return nil, fmt.Errorf("GetSolutions: Scan: %w", err)
		}
		out = append(out, &sol)
	}
	return out, rows.Err()
}

func (s *Store) CreateSolution(ctx context.Context, solution *entity.Solution) (*entity.Solution, error) {
	const query = `
INSERT INTO solutions (title, description, image_url, link, link_text)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`
	created := *solution
	err := s.db.QueryRowContext(ctx, query,
		solution.Title, solution.Description, solution.ImageURL,
		solution.Link, solution.LinkText,
	).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("CreateSolution: %w", err)
	}
	return &created, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

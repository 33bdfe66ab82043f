// Package memory provides an in-memory implementation of the storage
// contract. It is the default backend for local development and tests:
// state lives in per-entity maps guarded by a read-write mutex and is
// lost when the process exits.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"lawportal/internal/domain/entity"
	"lawportal/internal/repository"
)

// Store implements repository.Storage with in-process maps. IDs are
// assigned from per-entity counters that start at 1 and are never
// reused, even after deletion. All returned records are copies; callers
// never receive a handle into the maps.
type Store struct {
	mu sync.RWMutex

	users      map[int64]entity.User
	categories map[int64]entity.Category
	articles   map[int64]entity.Article
	solutions  map[int64]entity.Solution

	userID     int64
	categoryID int64
	articleID  int64
	solutionID int64
}

// NewStore creates a store pre-populated with the site's fixture
// categories, articles and solutions.
func NewStore() *Store {
	s := NewEmptyStore()
	s.seed()
	return s
}

// NewEmptyStore creates a store with no records. Used by tests that
// need full control over the data set.
func NewEmptyStore() *Store {
	return &Store{
		users:      make(map[int64]entity.User),
		categories: make(map[int64]entity.Category),
		articles:   make(map[int64]entity.Article),
		solutions:  make(map[int64]entity.Solution),
	}
}

func (s *Store) GetUser(_ context.Context, id int64) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return nil, entity.ErrDuplicateUsername
		}
	}

	s.userID++
	created := *user
	created.ID = s.userID
	s.users[created.ID] = created

	out := created
	return &out, nil
}

func (s *Store) GetCategories(_ context.Context) ([]*entity.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, cloneCategory(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetCategoryBySlug(_ context.Context, slug string) (*entity.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			return cloneCategory(c), nil
		}
	}
	return nil, nil
}

func (s *Store) GetCategoryByID(_ context.Context, id int64) (*entity.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	return cloneCategory(c), nil
}

func (s *Store) CreateCategory(_ context.Context, category *entity.Category) (*entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Slug == category.Slug {
			return nil, entity.ErrDuplicateSlug
		}
	}

	s.categoryID++
	created := *category
	created.ID = s.categoryID
	s.categories[created.ID] = created

	return cloneCategory(created), nil
}

func (s *Store) GetArticles(_ context.Context) ([]repository.ArticleWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.collectArticles(func(entity.Article) bool { return true })
	sortByPublishDateDesc(out)
	return out, nil
}

func (s *Store) GetArticleBySlug(_ context.Context, slug string) (*repository.ArticleWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.articles {
		if a.Slug == slug {
			awc := s.withCategory(a)
			return &awc, nil
		}
	}
	return nil, nil
}

func (s *Store) GetArticleByID(_ context.Context, id int64) (*repository.ArticleWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.articles[id]
	if !ok {
		return nil, nil
	}
	awc := s.withCategory(a)
	return &awc, nil
}

func (s *Store) GetArticlesByCategory(_ context.Context, categorySlug string) ([]repository.ArticleWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var category *entity.Category
	for _, c := range s.categories {
		if c.Slug == categorySlug {
			c := c
			category = &c
			break
		}
	}
	if category == nil {
		return []repository.ArticleWithCategory{}, nil
	}

	out := s.collectArticles(func(a entity.Article) bool { return a.CategoryID == category.ID })
	sortByPublishDateDesc(out)
	return out, nil
}

func (s *Store) GetFeaturedArticles(_ context.Context) ([]repository.ArticleWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.collectArticles(func(a entity.Article) bool { return a.IsFeatured() })
	sortByPublishDateDesc(out)
	return out, nil
}

func (s *Store) GetRecentArticles(_ context.Context, limit int) ([]repository.ArticleWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.collectArticles(func(entity.Article) bool { return true })
	sortByPublishDateDesc(out)
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) SearchArticles(_ context.Context, query string) ([]repository.ArticleWithCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	out := s.collectArticles(func(a entity.Article) bool {
		return strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Excerpt), q) ||
			strings.Contains(strings.ToLower(a.Content), q)
	})
	sortByPublishDateDesc(out)
	return out, nil
}

func (s *Store) CreateArticle(_ context.Context, article *entity.Article) (*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.articles {
		if a.Slug == article.Slug {
			return nil, entity.ErrDuplicateSlug
		}
	}

	s.articleID++
	created := *article
	created.ID = s.articleID
	s.articles[created.ID] = created

	return cloneArticle(created), nil
}

func (s *Store) RemoveArticle(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.articles[id]; !ok {
		return false, nil
	}
	delete(s.articles, id)
	return true, nil
}

func (s *Store) GetSolutions(_ context.Context) ([]*entity.Solution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Solution, 0, len(s.solutions))
	for _, sol := range s.solutions {
		out = append(out, cloneSolution(sol))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CreateSolution(_ context.Context, solution *entity.Solution) (*entity.Solution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.solutionID++
	created := *solution
	created.ID = s.solutionID
	s.solutions[created.ID] = created

	return cloneSolution(created), nil
}

// collectArticles gathers articles matching the predicate with their
// categories resolved. Callers must hold at least the read lock.
func (s *Store) collectArticles(match func(entity.Article) bool) []repository.ArticleWithCategory {
	out := make([]repository.ArticleWithCategory, 0, len(s.articles))
	for _, a := range s.articles {
		if match(a) {
			out = append(out, s.withCategory(a))
		}
	}
	return out
}

// withCategory resolves the article's category by ID, substituting the
// unknown-category sentinel when the reference dangles. Callers must
// hold at least the read lock.
func (s *Store) withCategory(a entity.Article) repository.ArticleWithCategory {
	category := entity.UnknownCategory()
	if c, ok := s.categories[a.CategoryID]; ok {
		category = cloneCategory(c)
	}
	return repository.ArticleWithCategory{
		Article:  cloneArticle(a),
		Category: category,
	}
}

func sortByPublishDateDesc(list []repository.ArticleWithCategory) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Article.PublishDate.After(list[j].Article.PublishDate)
	})
}

func cloneArticle(a entity.Article) *entity.Article {
	a.ImageURL = cloneStringPtr(a.ImageURL)
	a.Featured = cloneInt64Ptr(a.Featured)
	return &a
}

func cloneCategory(c entity.Category) *entity.Category {
	c.Description = cloneStringPtr(c.Description)
	c.IconName = cloneStringPtr(c.IconName)
	c.ImageURL = cloneStringPtr(c.ImageURL)
	return &c
}

func cloneSolution(sol entity.Solution) *entity.Solution {
	sol.ImageURL = cloneStringPtr(sol.ImageURL)
	return &sol
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt64Ptr(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

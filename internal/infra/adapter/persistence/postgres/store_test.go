package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"lawportal/internal/domain/entity"
	pg "lawportal/internal/infra/adapter/persistence/postgres"
)

var articleCols = []string{
	"id", "title", "slug", "excerpt", "content", "image_url", "publish_date", "category_id", "featured",
	"c_id", "c_name", "c_slug", "c_description", "c_icon_name", "c_image_url",
}

func joinedRow(a *entity.Article, c *entity.Category) *sqlmock.Rows {
	rows := sqlmock.NewRows(articleCols)
	if c != nil {
		rows.AddRow(
			a.ID, a.Title, a.Slug, a.Excerpt, a.Content, a.ImageURL, a.PublishDate, a.CategoryID, a.Featured,
			c.ID, c.Name, c.Slug, c.Description, c.IconName, c.ImageURL,
		)
	} else {
		rows.AddRow(
			a.ID, a.Title, a.Slug, a.Excerpt, a.Content, a.ImageURL, a.PublishDate, a.CategoryID, a.Featured,
			nil, nil, nil, nil, nil, nil,
		)
	}
	return rows
}

func seedArticle() *entity.Article {
	return &entity.Article{
		ID:          1,
		Title:       "What to Do After an Unfair Dismissal",
		Slug:        "unfair-dismissal-first-steps",
		Excerpt:     "The deadlines that matter.",
		Content:     "Start by requesting the dismissal letter.",
		PublishDate: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		CategoryID:  1,
	}
}

func seedCategory() *entity.Category {
	return &entity.Category{ID: 1, Name: "Labor Law", Slug: "labor-law"}
}

func TestGetArticleBySlug(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	wantArt := seedArticle()
	wantCat := seedCategory()

	mock.ExpectQuery("FROM articles a").
		WithArgs("unfair-dismissal-first-steps").
		WillReturnRows(joinedRow(wantArt, wantCat))

	store := pg.NewStore(db)
	got, err := store.GetArticleBySlug(context.Background(), "unfair-dismissal-first-steps")
	if err != nil {
		t.Fatalf("GetArticleBySlug err=%v", err)
	}
	if got == nil {
		t.Fatal("GetArticleBySlug returned nil for existing row")
	}
	if diff := cmp.Diff(wantArt, got.Article); diff != "" {
		t.Fatalf("article mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantCat, got.Category); diff != "" {
		t.Fatalf("category mismatch (-want +got):\n%s", diff)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestGetArticleBySlug_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM articles a").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(articleCols))

	store := pg.NewStore(db)
	got, err := store.GetArticleBySlug(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetArticleBySlug err=%v", err)
	}
	if got != nil {
		t.Fatalf("want nil for missing row, got %+v", got)
	}
}

func TestGetArticleByID_DanglingCategory(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	art := seedArticle()
	art.CategoryID = 999

	mock.ExpectQuery("FROM articles a").
		WithArgs(int64(1)).
		WillReturnRows(joinedRow(art, nil))

	store := pg.NewStore(db)
	got, err := store.GetArticleByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetArticleByID err=%v", err)
	}
	if diff := cmp.Diff(entity.UnknownCategory(), got.Category); diff != "" {
		t.Fatalf("want unknown-category sentinel (-want +got):\n%s", diff)
	}
}

func TestGetArticles(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("ORDER BY a.publish_date DESC").
		WillReturnRows(joinedRow(seedArticle(), seedCategory()))

	store := pg.NewStore(db)
	got, err := store.GetArticles(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("GetArticles err=%v len=%d", err, len(got))
	}
}

func TestSearchArticles_PatternArg(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("ILIKE").
		WithArgs("%custody%").
		WillReturnRows(sqlmock.NewRows(articleCols))

	store := pg.NewStore(db)
	got, err := store.SearchArticles(context.Background(), "custody")
	if err != nil {
		t.Fatalf("SearchArticles err=%v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want empty result, got %d", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestGetRecentArticles_LimitArg(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1")).
		WithArgs(3).
		WillReturnRows(joinedRow(seedArticle(), seedCategory()))

	store := pg.NewStore(db)
	if _, err := store.GetRecentArticles(context.Background(), 3); err != nil {
		t.Fatalf("GetRecentArticles err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestCreateArticle(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("INSERT INTO articles").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	store := pg.NewStore(db)
	created, err := store.CreateArticle(context.Background(), seedArticle())
	if err != nil {
		t.Fatalf("CreateArticle err=%v", err)
	}
	if created.ID != 7 {
		t.Fatalf("created.ID = %d, want 7", created.ID)
	}
}

func TestCreateArticle_DuplicateSlug(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("INSERT INTO articles").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_articles_slug"})

	store := pg.NewStore(db)
	_, err := store.CreateArticle(context.Background(), seedArticle())
	if !errors.Is(err, entity.ErrDuplicateSlug) {
		t.Fatalf("err = %v, want ErrDuplicateSlug", err)
	}
}

func TestRemoveArticle(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("DELETE FROM articles").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := pg.NewStore(db)
	removed, err := store.RemoveArticle(context.Background(), 1)
	if err != nil || !removed {
		t.Fatalf("RemoveArticle = (%v, %v), want (true, nil)", removed, err)
	}
}

func TestRemoveArticle_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("DELETE FROM articles").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	store := pg.NewStore(db)
	removed, err := store.RemoveArticle(context.Background(), 42)
	if err != nil {
		t.Fatalf("RemoveArticle err=%v", err)
	}
	if removed {
		t.Fatal("want removed=false for missing row")
	}
}

func TestRemoveArticle_BackendFailure(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("DELETE FROM articles").
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection reset"))

	store := pg.NewStore(db)
	removed, err := store.RemoveArticle(context.Background(), 1)
	if err == nil {
		t.Fatal("want error for backend failure")
	}
	if removed {
		t.Fatal("backend failure must not report removal")
	}
}

func TestGetCategories(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	rows := sqlmock.NewRows([]string{"id", "name", "slug", "description", "icon_name", "image_url"}).
		AddRow(int64(1), "Labor Law", "labor-law", nil, nil, nil).
		AddRow(int64(2), "Family Law", "family-law", "Divorce and custody.", nil, nil)

	mock.ExpectQuery("FROM categories").WillReturnRows(rows)

	store := pg.NewStore(db)
	got, err := store.GetCategories(context.Background())
	if err != nil || len(got) != 2 {
		t.Fatalf("GetCategories err=%v len=%d", err, len(got))
	}
	if got[0].Description != nil {
		t.Fatal("nil description must stay nil")
	}
	if got[1].Description == nil || *got[1].Description != "Divorce and custody." {
		t.Fatalf("description = %v", got[1].Description)
	}
}

func TestCreateCategory_DuplicateSlug(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("INSERT INTO categories").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_categories_slug"})

	store := pg.NewStore(db)
	_, err := store.CreateCategory(context.Background(), seedCategory())
	if !errors.Is(err, entity.ErrDuplicateSlug) {
		t.Fatalf("err = %v, want ErrDuplicateSlug", err)
	}
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"})

	store := pg.NewStore(db)
	_, err := store.CreateUser(context.Background(), &entity.User{Username: "admin", Password: "x"})
	if !errors.Is(err, entity.ErrDuplicateUsername) {
		t.Fatalf("err = %v, want ErrDuplicateUsername", err)
	}
}

func TestGetSolutions(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	rows := sqlmock.NewRows([]string{"id", "title", "description", "image_url", "link", "link_text"}).
		AddRow(int64(1), "Document Review", "Written assessment.", nil, "/services/document-review", "Request a review")

	mock.ExpectQuery("FROM solutions").WillReturnRows(rows)

	store := pg.NewStore(db)
	got, err := store.GetSolutions(context.Background())
	if err != nil || len(got) != 1 {
		t.Fatalf("GetSolutions err=%v len=%d", err, len(got))
	}
	if got[0].LinkText != "Request a review" {
		t.Fatalf("LinkText = %q", got[0].LinkText)
	}
}

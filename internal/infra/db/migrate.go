package db

import "database/sql"

// MigrateUp creates the schema if it does not exist. Slugs and
// usernames carry unique indexes so duplicate creates fail at the
// database rather than resolving ambiguously on lookup. The article
// category reference is deliberately NOT a foreign key: articles may
// reference a category that no longer exists and still render with the
// unknown-category fallback.
func MigrateUp(database *sql.DB) error {
	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS users (
    id       SERIAL PRIMARY KEY,
    username TEXT NOT NULL,
    password TEXT NOT NULL
)`); err != nil {
		return err
	}

	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS categories (
    id          SERIAL PRIMARY KEY,
    name        TEXT NOT NULL,
    slug        TEXT NOT NULL,
    description TEXT,
    icon_name   TEXT,
    image_url   TEXT
)`); err != nil {
		return err
	}

	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id           SERIAL PRIMARY KEY,
    title        TEXT NOT NULL,
    slug         TEXT NOT NULL,
    excerpt      TEXT NOT NULL,
    content      TEXT NOT NULL,
    image_url    TEXT,
    publish_date TIMESTAMPTZ NOT NULL,
    category_id  INTEGER NOT NULL,
    featured     INTEGER
)`); err != nil {
		return err
	}

	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS solutions (
    id          SERIAL PRIMARY KEY,
    title       TEXT NOT NULL,
    description TEXT NOT NULL,
    image_url   TEXT,
    link        TEXT NOT NULL,
    link_text   TEXT NOT NULL
)`); err != nil {
		return err
	}

	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(username)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_slug ON categories(slug)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_articles_slug ON articles(slug)`,
		// ORDER BY publish_date DESC is used by list, featured and recent queries.
		`CREATE INDEX IF NOT EXISTS idx_articles_publish_date ON articles(publish_date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_category_id ON articles(category_id)`,
	}
	for _, idx := range indexes {
		if _, err := database.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown drops the schema in reverse order of creation.
// Use with caution: this deletes all data.
func MigrateDown(database *sql.DB) error {
	drops := []string{
		`DROP TABLE IF EXISTS solutions`,
		`DROP TABLE IF EXISTS articles`,
		`DROP TABLE IF EXISTS categories`,
		`DROP TABLE IF EXISTS users`,
	}
	for _, stmt := range drops {
		if _, err := database.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

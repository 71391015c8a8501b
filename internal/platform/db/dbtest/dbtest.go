// Package dbtest opens throwaway SQLite stores carrying the library schema.
package dbtest

import (
	"database/sql"
	"path/filepath"
	"testing"

	"library-backend/internal/platform/config"
	"library-backend/internal/platform/db"
)

const schema = `
CREATE TABLE Books (
	book_id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title            TEXT    NOT NULL,
	author           TEXT    NOT NULL,
	isbn             TEXT    NOT NULL UNIQUE,
	publication_year INTEGER,
	available_copies INTEGER NOT NULL
);
CREATE TABLE Members (
	member_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name      TEXT NOT NULL
);
CREATE TABLE Staff (
	staff_id INTEGER PRIMARY KEY AUTOINCREMENT,
	name     TEXT NOT NULL
);
CREATE TABLE Borrowing (
	borrow_id   INTEGER PRIMARY KEY AUTOINCREMENT,
	book_id     INTEGER NOT NULL,
	member_id   INTEGER NOT NULL,
	staff_id    INTEGER NOT NULL,
	borrow_date DATE    NOT NULL,
	return_date DATE
);
`

// Open returns a pool on a fresh SQLite file under t.TempDir().
func Open(t testing.TB) *sql.DB {
	t.Helper()
	pool, err := db.Connect(config.DatabaseConfig{
		Driver: db.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "library.db"),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	if _, err := pool.Exec(schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return pool
}

// Insert runs stmt and returns the new row id.
func Insert(t testing.TB, pool *sql.DB, stmt string, args ...any) int64 {
	t.Helper()
	res, err := pool.Exec(stmt, args...)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("last insert id: %v", err)
	}
	return id
}

func AddMember(t testing.TB, pool *sql.DB, name string) int64 {
	t.Helper()
	return Insert(t, pool, `INSERT INTO Members (name) VALUES (?)`, name)
}

func AddStaff(t testing.TB, pool *sql.DB, name string) int64 {
	t.Helper()
	return Insert(t, pool, `INSERT INTO Staff (name) VALUES (?)`, name)
}

func AddBook(t testing.TB, pool *sql.DB, title, isbn string) int64 {
	t.Helper()
	return Insert(t, pool,
		`INSERT INTO Books (title, author, isbn, publication_year, available_copies) VALUES (?, ?, ?, NULL, 1)`,
		title, "Anonymous", isbn)
}

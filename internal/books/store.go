package books

import (
	"context"

	"library-backend/internal/platform/db"
	"library-backend/internal/schema"
)

type Store struct{ q db.DBTX }

func NewStore(q db.DBTX) *Store { return &Store{q: q} }

func (s *Store) Insert(ctx context.Context, b schema.Book) (int64, error) {
	const q = `
	INSERT INTO Books (title, author, isbn, publication_year, available_copies)
	VALUES (?, ?, ?, ?, ?)`
	res, err := s.q.ExecContext(ctx, q, b.Title, b.Author, b.ISBN, b.PublicationYear, b.AvailableCopies)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// List returns every book in store order.
func (s *Store) List(ctx context.Context) ([]schema.Book, error) {
	const q = `SELECT title, author, isbn, publication_year, available_copies FROM Books`
	rows, err := s.q.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]schema.Book, 0, 16)
	for rows.Next() {
		var b schema.Book
		if err := rows.Scan(&b.Title, &b.Author, &b.ISBN, &b.PublicationYear, &b.AvailableCopies); err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Update replaces every column of the row and returns the matched row count.
func (s *Store) Update(ctx context.Context, id int64, b schema.Book) (int64, error) {
	const q = `
	UPDATE Books
	SET title = ?, author = ?, isbn = ?, publication_year = ?, available_copies = ?
	WHERE book_id = ?`
	res, err := s.q.ExecContext(ctx, q, b.Title, b.Author, b.ISBN, b.PublicationYear, b.AvailableCopies, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM Books WHERE book_id = ?`
	res, err := s.q.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

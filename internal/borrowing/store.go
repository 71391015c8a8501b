package borrowing

import (
	"context"

	"library-backend/internal/platform/db"
	"library-backend/internal/schema"
)

type Store struct{ q db.DBTX }

func NewStore(q db.DBTX) *Store { return &Store{q: q} }

func (s *Store) Insert(ctx context.Context, b schema.Borrowing) (int64, error) {
	const q = `
	INSERT INTO Borrowing (book_id, member_id, staff_id, borrow_date, return_date)
	VALUES (?, ?, ?, ?, ?)`
	res, err := s.q.ExecContext(ctx, q, b.BookID, b.MemberID, b.StaffID, b.BorrowDate, b.ReturnDate)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) List(ctx context.Context) ([]schema.Borrowing, error) {
	const q = `SELECT book_id, member_id, staff_id, borrow_date, return_date FROM Borrowing`
	rows, err := s.q.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]schema.Borrowing, 0, 16)
	for rows.Next() {
		var b schema.Borrowing
		if err := rows.Scan(&b.BookID, &b.MemberID, &b.StaffID, &b.BorrowDate, &b.ReturnDate); err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Store) Update(ctx context.Context, id int64, b schema.Borrowing) (int64, error) {
	const q = `
	UPDATE Borrowing
	SET book_id = ?, member_id = ?, staff_id = ?, borrow_date = ?, return_date = ?
	WHERE borrow_id = ?`
	res, err := s.q.ExecContext(ctx, q, b.BookID, b.MemberID, b.StaffID, b.BorrowDate, b.ReturnDate, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM Borrowing WHERE borrow_id = ?`
	res, err := s.q.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Package refs checks that rows referenced by a write exist.
//
// Tables and columns come from a closed set defined here; callers pick a Ref,
// never a table name, so no identifier ever reaches SQL from request input.
package refs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"library-backend/internal/platform/db"
)

type Ref int

const (
	None Ref = iota
	Book
	Member
	Staff
)

type lookup struct {
	entity string
	query  string
}

var lookups = map[Ref]lookup{
	Book:   {entity: "Book", query: `SELECT 1 FROM Books WHERE book_id = ? LIMIT 1`},
	Member: {entity: "Member", query: `SELECT 1 FROM Members WHERE member_id = ? LIMIT 1`},
	Staff:  {entity: "Staff", query: `SELECT 1 FROM Staff WHERE staff_id = ? LIMIT 1`},
}

func (r Ref) String() string {
	if l, ok := lookups[r]; ok {
		return l.entity
	}
	return "None"
}

// Exists reports whether a row with the given id exists for r.
func Exists(ctx context.Context, q db.DBTX, r Ref, id int64) (bool, error) {
	l, ok := lookups[r]
	if !ok {
		return false, fmt.Errorf("refs: unknown reference %d", int(r))
	}
	var one int
	err := q.QueryRowContext(ctx, l.query, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

type Check struct {
	Ref Ref
	ID  int64
}

// FirstMissing runs checks in order and stops at the first reference that
// does not resolve. It returns None when every check passes.
func FirstMissing(ctx context.Context, q db.DBTX, checks ...Check) (Ref, error) {
	for _, c := range checks {
		ok, err := Exists(ctx, q, c.Ref, c.ID)
		if err != nil {
			return None, err
		}
		if !ok {
			return c.Ref, nil
		}
	}
	return None, nil
}

package borrowing

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"library-backend/internal/platform/apierr"
	"library-backend/internal/platform/db"
	"library-backend/internal/refs"
	"library-backend/internal/schema"
)

type Service struct {
	conns *db.Provider
}

func NewService(pool *sql.DB) *Service {
	return &Service{conns: db.NewProvider(pool)}
}

// verifyRefs checks book, member and staff in that order on q.
// The checks and the following write are not one transaction; a referenced
// row deleted in between surfaces as a store error or an orphaned id.
func verifyRefs(ctx context.Context, q db.DBTX, b schema.Borrowing) error {
	missing, err := refs.FirstMissing(ctx, q,
		refs.Check{Ref: refs.Book, ID: b.BookID},
		refs.Check{Ref: refs.Member, ID: b.MemberID},
		refs.Check{Ref: refs.Staff, ID: b.StaffID},
	)
	if err != nil {
		return err
	}
	if missing != refs.None {
		return apierr.ErrReference(missing.String() + " does not exist")
	}
	return nil
}

func (s *Service) CreateBorrowing(ctx context.Context, b schema.Borrowing) (schema.Borrowing, int64, error) {
	if err := schema.Validate(b); err != nil {
		return schema.Borrowing{}, 0, apierr.FromValidation(err)
	}

	var id int64
	err := s.conns.WithConn(ctx, func(ctx context.Context, q db.DBTX) error {
		if err := verifyRefs(ctx, q, b); err != nil {
			return err
		}
		var err error
		id, err = NewStore(q).Insert(ctx, b)
		return err
	})
	if err != nil {
		return schema.Borrowing{}, 0, writeErr(ctx, "create borrowing", err)
	}
	return b, id, nil
}

func (s *Service) ListBorrowings(ctx context.Context) ([]schema.Borrowing, error) {
	var out []schema.Borrowing
	err := s.conns.WithConn(ctx, func(ctx context.Context, q db.DBTX) error {
		var err error
		out, err = NewStore(q).List(ctx)
		return err
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("list borrowings")
		return nil, apierr.ErrInternal(err)
	}
	return out, nil
}

// UpdateBorrowing re-checks the references of the new payload, then fully
// replaces the record identified by id.
func (s *Service) UpdateBorrowing(ctx context.Context, id int64, b schema.Borrowing) (schema.Borrowing, error) {
	if err := schema.Validate(b); err != nil {
		return schema.Borrowing{}, apierr.FromValidation(err)
	}

	var n int64
	err := s.conns.WithConn(ctx, func(ctx context.Context, q db.DBTX) error {
		if err := verifyRefs(ctx, q, b); err != nil {
			return err
		}
		var err error
		n, err = NewStore(q).Update(ctx, id, b)
		return err
	})
	if err != nil {
		return schema.Borrowing{}, writeErr(ctx, "update borrowing", err)
	}
	if n == 0 {
		return schema.Borrowing{}, apierr.ErrNotFound("Borrowing record not found")
	}
	return b, nil
}

func (s *Service) DeleteBorrowing(ctx context.Context, id int64) error {
	var n int64
	err := s.conns.WithConn(ctx, func(ctx context.Context, q db.DBTX) error {
		var err error
		n, err = NewStore(q).Delete(ctx, id)
		return err
	})
	if err != nil {
		return writeErr(ctx, "delete borrowing", err)
	}
	if n == 0 {
		return apierr.ErrNotFound("Borrowing record not found")
	}
	return nil
}

func writeErr(ctx context.Context, op string, err error) error {
	if apierr.CodeOf(err) == apierr.CodeInvalidReference {
		return err
	}
	zerolog.Ctx(ctx).Error().Err(err).Msg(op)
	return apierr.ErrStore(err)
}

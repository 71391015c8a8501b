package books

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"library-backend/internal/platform/apierr"
	"library-backend/internal/platform/db"
	"library-backend/internal/schema"
)

type Service struct {
	conns *db.Provider
}

func NewService(pool *sql.DB) *Service {
	return &Service{conns: db.NewProvider(pool)}
}

// CreateBook inserts b and returns it with the store assigned book_id.
func (s *Service) CreateBook(ctx context.Context, b schema.Book) (schema.Book, int64, error) {
	if err := schema.Validate(b); err != nil {
		return schema.Book{}, 0, apierr.FromValidation(err)
	}

	var id int64
	err := s.conns.WithConn(ctx, func(ctx context.Context, q db.DBTX) error {
		var err error
		id, err = NewStore(q).Insert(ctx, b)
		return err
	})
	if err != nil {
		return schema.Book{}, 0, writeErr(ctx, "create book", err)
	}
	return b, id, nil
}

func (s *Service) ListBooks(ctx context.Context) ([]schema.Book, error) {
	var out []schema.Book
	err := s.conns.WithConn(ctx, func(ctx context.Context, q db.DBTX) error {
		var err error
		out, err = NewStore(q).List(ctx)
		return err
	})
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("list books")
		return nil, apierr.ErrInternal(err)
	}
	return out, nil
}

// UpdateBook fully replaces the book identified by id.
func (s *Service) UpdateBook(ctx context.Context, id int64, b schema.Book) (schema.Book, error) {
	if err := schema.Validate(b); err != nil {
		return schema.Book{}, apierr.FromValidation(err)
	}

	var n int64
	err := s.conns.WithConn(ctx, func(ctx context.Context, q db.DBTX) error {
		var err error
		n, err = NewStore(q).Update(ctx, id, b)
		return err
	})
	if err != nil {
		return schema.Book{}, writeErr(ctx, "update book", err)
	}
	if n == 0 {
		return schema.Book{}, apierr.ErrNotFound("Book not found")
	}
	return b, nil
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	var n int64
	err := s.conns.WithConn(ctx, func(ctx context.Context, q db.DBTX) error {
		var err error
		n, err = NewStore(q).Delete(ctx, id)
		return err
	})
	if err != nil {
		return writeErr(ctx, "delete book", err)
	}
	if n == 0 {
		return apierr.ErrNotFound("Book not found")
	}
	return nil
}

func writeErr(ctx context.Context, op string, err error) error {
	if db.IsDuplicateKey(err) {
		return apierr.ErrDuplicate("ISBN already exists")
	}
	zerolog.Ctx(ctx).Error().Err(err).Msg(op)
	return apierr.ErrStore(err)
}

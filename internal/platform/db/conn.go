package db

import (
	"context"
	"database/sql"
)

// DBTX is the query surface shared by *sql.DB, *sql.Conn and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Provider hands out one dedicated connection per unit of work.
type Provider struct {
	pool *sql.DB
}

func NewProvider(pool *sql.DB) *Provider { return &Provider{pool: pool} }

// WithConn acquires a single connection, runs fn on it and releases the
// connection exactly once on every return path, including panics in fn.
func (p *Provider) WithConn(ctx context.Context, fn func(ctx context.Context, q DBTX) error) error {
	conn, err := p.pool.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(ctx, conn)
}

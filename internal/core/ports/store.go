package ports

import (
	"context"
	"database/sql"
)

// Store is the relational persistence contract consumed by the core.
// It is a thin SQL surface over a single pre-established connection handle;
// lifecycle, pooling and reconnection belong to the caller, not to this port.
// Implementations translate `?` placeholders to their dialect's bind syntax.
type Store interface {
	// Query runs a SELECT and returns the resulting rows.
	// The caller owns the rows and must close them.
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)

	// Execute runs a mutating statement and returns the affected row count.
	Execute(ctx context.Context, query string, args ...any) (int64, error)

	// ExecuteReturningID runs an INSERT carrying a RETURNING clause and
	// returns the newly assigned identifier.
	ExecuteReturningID(ctx context.Context, query string, args ...any) (int64, error)

	// IsLive reports whether the underlying connection currently answers.
	IsLive(ctx context.Context) bool
}

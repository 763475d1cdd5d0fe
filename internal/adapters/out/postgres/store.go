// Package postgres implements the Store port on top of a GORM-managed
// PostgreSQL connection. The adapter owns no lifecycle: it wraps a handle
// opened by the caller and fails operations when that handle is gone, without
// attempting reconnection.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"shipping/internal/core/ports"

	"gorm.io/gorm"
)

// GormStore adapts *gorm.DB to the ports.Store contract. GORM translates
// the core's `?` placeholders into PostgreSQL bind variables.
type GormStore struct {
	db *gorm.DB
}

var _ ports.Store = (*GormStore)(nil)

// NewGormStore creates a Store over an already-opened GORM connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Query runs a SELECT and hands the raw rows to the caller.
func (s *GormStore) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.db.WithContext(ctx).Raw(query, args...).Rows()
}

// Execute runs a mutating statement and returns the affected row count.
func (s *GormStore) Execute(ctx context.Context, query string, args ...any) (int64, error) {
	result := s.db.WithContext(ctx).Exec(query, args...)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// ExecuteReturningID runs an INSERT with a RETURNING clause and scans the
// assigned identifier.
func (s *GormStore) ExecuteReturningID(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	result := s.db.WithContext(ctx).Raw(query, args...).Scan(&id)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, fmt.Errorf("statement returned no identifier")
	}

	return id, nil
}

// IsLive reports whether the underlying connection answers a ping.
func (s *GormStore) IsLive(ctx context.Context) bool {
	sqlDB, err := s.db.DB()
	if err != nil {
		return false
	}

	return sqlDB.PingContext(ctx) == nil
}

// Package database provides the MySQL/MariaDB connection pool and the
// post-load verification queries used by the load command.
package database

import (
	"context"
	"fmt"
	"time"
)

// Queries provides read-back operations against the loaded tables
type Queries struct {
	pool *Pool
}

// NewQueries creates a new Queries instance
func NewQueries(pool *Pool) *Queries {
	return &Queries{pool: pool}
}

// TableCount returns the number of rows in a table. The table name is
// interpolated, so only call this with the fixed table constants.
func (q *Queries) TableCount(ctx context.Context, table string) (int64, error) {
	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", table)
	if err := q.pool.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}

// DateRange returns the earliest and latest values of a table's date
// column, for sanity-checking the loaded horizon.
func (q *Queries) DateRange(ctx context.Context, table, column string) (time.Time, time.Time, error) {
	var min, max time.Time
	query := fmt.Sprintf("SELECT MIN(%s), MAX(%s) FROM %s", column, column, table)
	if err := q.pool.QueryRowContext(ctx, query).Scan(&min, &max); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("date range %s: %w", table, err)
	}
	return min, max, nil
}

// LocationCount returns how many distinct locations a table covers.
func (q *Queries) LocationCount(ctx context.Context, table string) (int64, error) {
	var count int64
	query := fmt.Sprintf("SELECT COUNT(DISTINCT location_id) FROM %s", table)
	if err := q.pool.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("location count %s: %w", table, err)
	}
	return count, nil
}

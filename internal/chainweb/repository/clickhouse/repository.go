// Package clickhouse stores ingestion progress and block data in ClickHouse.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

type Repository struct {
	conn    conn
	metrics Metrics
	now     func() time.Time
}

func NewRepository(ctx context.Context, dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	c, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}
	if err := c.Ping(ctx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("ping clickhouse: %w", err)
	}

	return &Repository{conn: c, metrics: metrics, now: time.Now}, nil
}

// Close releases the connection pool.
func (r *Repository) Close() error {
	return r.conn.Close()
}

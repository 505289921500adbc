package clickhouse

import (
	"context"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
//go:generate mockgen -destination=driver_mocks_test.go -package=$GOPACKAGE github.com/ClickHouse/clickhouse-go/v2/lib/driver Rows,Batch

type (
	// Metrics observes repository operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// conn is the part of driver.Conn the repository uses.
	conn interface {
		Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
		Exec(ctx context.Context, query string, args ...any) error
		PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error)
		Ping(ctx context.Context) error
		Close() error
	}
)

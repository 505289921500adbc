package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
)

// Checkpoints returns the latest checkpoint of every chain that has one.
func (r *Repository) Checkpoints(ctx context.Context) (checkpoints []model.Checkpoint, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("checkpoints", err, start)
	}()

	const query = `
SELECT chain_id, argMax(height, updated_at) AS height
FROM chainweb_checkpoints
GROUP BY chain_id
ORDER BY chain_id`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query checkpoints: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			chainID uint16
			height  uint64
		)
		if err = rows.Scan(&chainID, &height); err != nil {
			return nil, fmt.Errorf("scan checkpoint: %w", err)
		}
		checkpoints = append(checkpoints, model.Checkpoint{ChainID: model.ChainID(chainID), Height: height})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checkpoints: %w", err)
	}

	return checkpoints, nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
	"github.com/goodnatureofminers/chainweb-ingester/pkg/safe"
)

// Checkpoints returns the checkpoint of every chain that has one.
func (r *Repository) Checkpoints(ctx context.Context) (checkpoints []model.Checkpoint, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("checkpoints", err, start)
	}()

	const query = `
SELECT chain_id, height
FROM chainweb_checkpoints
ORDER BY chain_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query checkpoints: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			chainID int16
			height  int64
		)
		if err = rows.Scan(&chainID, &height); err != nil {
			return nil, fmt.Errorf("scan checkpoint: %w", err)
		}
		id, convErr := safe.Uint16(chainID)
		if convErr != nil {
			return nil, fmt.Errorf("checkpoint chain id: %w", convErr)
		}
		h, convErr := safe.Uint64(height)
		if convErr != nil {
			return nil, fmt.Errorf("checkpoint height for chain %d: %w", id, convErr)
		}
		checkpoints = append(checkpoints, model.Checkpoint{ChainID: model.ChainID(id), Height: h})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checkpoints: %w", err)
	}

	return checkpoints, nil
}

package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
)

// UpsertCheckpoint records a new checkpoint height. The table keeps the row
// with the latest updated_at per chain, so the last write wins.
func (r *Repository) UpsertCheckpoint(ctx context.Context, checkpoint model.Checkpoint) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("upsert_checkpoint", err, start)
	}()

	const query = `
INSERT INTO chainweb_checkpoints (chain_id, height, updated_at) VALUES (?, ?, ?)`

	if err = r.conn.Exec(ctx, query, uint16(checkpoint.ChainID), checkpoint.Height, r.now().UTC()); err != nil {
		return fmt.Errorf("upsert checkpoint for chain %d: %w", checkpoint.ChainID, err)
	}
	return nil
}

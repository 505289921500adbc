package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
	"github.com/goodnatureofminers/chainweb-ingester/pkg/safe"
)

const upsertCheckpointQuery = `
INSERT INTO chainweb_checkpoints (chain_id, height, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (chain_id) DO UPDATE SET height = EXCLUDED.height, updated_at = EXCLUDED.updated_at`

// UpsertCheckpoint stores the checkpoint of one chain.
func (r *Repository) UpsertCheckpoint(ctx context.Context, checkpoint model.Checkpoint) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("upsert_checkpoint", err, start)
	}()

	args, err := checkpointArgs(checkpoint)
	if err != nil {
		return err
	}
	if _, err = r.pool.Exec(ctx, upsertCheckpointQuery, args...); err != nil {
		return fmt.Errorf("upsert checkpoint for chain %d: %w", checkpoint.ChainID, err)
	}
	return nil
}

func queueCheckpoint(b *pgx.Batch, checkpoint model.Checkpoint) error {
	args, err := checkpointArgs(checkpoint)
	if err != nil {
		return err
	}
	b.Queue(upsertCheckpointQuery, args...)
	return nil
}

func checkpointArgs(checkpoint model.Checkpoint) ([]any, error) {
	chainID, err := safe.Int16(checkpoint.ChainID)
	if err != nil {
		return nil, fmt.Errorf("checkpoint chain id: %w", err)
	}
	height, err := safe.Int64(checkpoint.Height)
	if err != nil {
		return nil, fmt.Errorf("checkpoint height: %w", err)
	}
	return []any{chainID, height}, nil
}

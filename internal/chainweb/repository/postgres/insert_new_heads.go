package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
	"github.com/goodnatureofminers/chainweb-ingester/pkg/safe"
)

const insertNewHeadQuery = `
INSERT INTO chainweb_new_heads (chain_id, height, hash, pow_hash, target, tx_count, received_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// InsertNewHeads stores heads received from the updates stream in one batch.
func (r *Repository) InsertNewHeads(ctx context.Context, heads []model.NewHeadRecord) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_new_heads", err, start)
	}()

	b := &pgx.Batch{}
	for _, head := range heads {
		chainID, convErr := safe.Int16(head.ChainID)
		if convErr != nil {
			return fmt.Errorf("new head chain id: %w", convErr)
		}
		height, convErr := safe.Int64(head.Height)
		if convErr != nil {
			return fmt.Errorf("new head height: %w", convErr)
		}
		txCount, convErr := safe.Int64(head.TxCount)
		if convErr != nil {
			return fmt.Errorf("new head tx count: %w", convErr)
		}

		b.Queue(insertNewHeadQuery,
			chainID,
			height,
			head.Hash,
			head.PowHash,
			head.Target,
			txCount,
			head.ReceivedAt,
		)
	}

	if err = sendBatch(ctx, r.pool, b); err != nil {
		return fmt.Errorf("insert %d new heads: %w", len(heads), err)
	}
	return nil
}

package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
)

// InsertNewHeads stores heads received from the updates stream.
func (r *Repository) InsertNewHeads(ctx context.Context, heads []model.NewHeadRecord) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_new_heads", err, start)
	}()

	if len(heads) == 0 {
		return nil
	}

	const query = `
INSERT INTO chainweb_new_heads (
	chain_id,
	height,
	hash,
	pow_hash,
	target,
	tx_count,
	received_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare new heads batch: %w", err)
	}

	for _, head := range heads {
		if err = batch.Append(
			uint16(head.ChainID),
			head.Height,
			head.Hash,
			head.PowHash,
			head.Target,
			head.TxCount,
			head.ReceivedAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append new head: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert new heads: %w", err)
	}
	return nil
}

package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
)

// InsertBlockRecords appends block records.
func (r *Repository) InsertBlockRecords(ctx context.Context, records []model.BlockRecord) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_block_records", err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	const query = `
INSERT INTO chainweb_blocks (
	id,
	chain_id,
	height,
	hash,
	payload_hash,
	creation_time,
	tx_count
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare block records batch: %w", err)
	}

	for _, rec := range records {
		if err = batch.Append(
			rec.ID,
			uint16(rec.ChainID),
			rec.Height,
			rec.Hash,
			rec.PayloadHash,
			rec.CreationTime,
			rec.TxCount,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append block record: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block records: %w", err)
	}
	return nil
}

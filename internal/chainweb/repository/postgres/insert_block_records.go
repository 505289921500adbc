package postgres

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
	"github.com/goodnatureofminers/chainweb-ingester/pkg/safe"
)

const insertBlockRecordQuery = `
INSERT INTO chainweb_blocks (id, chain_id, height, hash, payload_hash, creation_time, tx_count)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (chain_id, height, hash) DO NOTHING`

func queueBlockRecords(b *pgx.Batch, records []model.BlockRecord) error {
	for _, rec := range records {
		chainID, err := safe.Int16(rec.ChainID)
		if err != nil {
			return fmt.Errorf("block record chain id: %w", err)
		}
		height, err := safe.Int64(rec.Height)
		if err != nil {
			return fmt.Errorf("block record height: %w", err)
		}

		b.Queue(insertBlockRecordQuery,
			rec.ID.String(),
			chainID,
			height,
			rec.Hash,
			rec.PayloadHash,
			rec.CreationTime,
			int64(rec.TxCount),
		)
	}
	return nil
}

package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
)

// InsertTransactions stores decoded transaction rows.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.TransactionRecord) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_transactions", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO chainweb_transactions (
	chain_id,
	height,
	block_hash,
	request_key,
	sender,
	kind,
	pact_id,
	gas,
	gas_limit,
	gas_price,
	status,
	creation_time,
	tx_id,
	event_count
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			uint16(tx.ChainID),
			tx.Height,
			tx.BlockHash,
			tx.RequestKey,
			tx.Sender,
			tx.Kind,
			tx.PactID,
			tx.Gas,
			tx.GasLimit,
			tx.GasPrice,
			tx.Status,
			tx.CreationTime,
			tx.TxID,
			tx.EventCount,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}

package clickhouse

import (
	"context"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
)

// SaveRound persists a round without a transaction: block records first, then
// transactions, then the checkpoint. A failure leaves the checkpoint behind
// the data, never ahead of it.
func (r *Repository) SaveRound(ctx context.Context, round model.Round) error {
	if err := r.InsertBlockRecords(ctx, round.Blocks); err != nil {
		return err
	}
	if err := r.InsertTransactions(ctx, round.Transactions); err != nil {
		return err
	}
	return r.UpsertCheckpoint(ctx, round.Checkpoint)
}

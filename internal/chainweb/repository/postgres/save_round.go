package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/multierr"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
)

// SaveRound writes block records, transactions and the checkpoint as one
// batch inside a single transaction.
func (r *Repository) SaveRound(ctx context.Context, round model.Round) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("save_round", err, start)
	}()

	b := &pgx.Batch{}
	if err = queueRound(b, round); err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin round transaction: %w", err)
	}

	if err = sendBatch(ctx, tx, b); err != nil {
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			err = multierr.Append(err, fmt.Errorf("rollback round transaction: %w", rbErr))
		}
		return fmt.Errorf("write round of chain %d: %w", round.ChainID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit round transaction: %w", err)
	}
	return nil
}

func queueRound(b *pgx.Batch, round model.Round) error {
	if err := queueBlockRecords(b, round.Blocks); err != nil {
		return err
	}
	if err := queueTransactions(b, round.Transactions); err != nil {
		return err
	}
	return queueCheckpoint(b, round.Checkpoint)
}

// sendBatch runs every queued statement and reports the first failure.
func sendBatch(ctx context.Context, db batchSender, b *pgx.Batch) error {
	if b.Len() == 0 {
		return nil
	}
	if err := db.SendBatch(ctx, b).Close(); err != nil {
		return fmt.Errorf("send batch of %d statements: %w", b.Len(), err)
	}
	return nil
}

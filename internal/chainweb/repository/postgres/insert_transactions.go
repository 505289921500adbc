package postgres

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
	"github.com/goodnatureofminers/chainweb-ingester/pkg/safe"
)

const insertTransactionQuery = `
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
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
ON CONFLICT (chain_id, request_key, height) DO NOTHING`

func queueTransactions(b *pgx.Batch, txs []model.TransactionRecord) error {
	for _, tx := range txs {
		args, err := transactionArgs(tx)
		if err != nil {
			return fmt.Errorf("transaction %s: %w", tx.RequestKey, err)
		}
		b.Queue(insertTransactionQuery, args...)
	}
	return nil
}

func transactionArgs(tx model.TransactionRecord) ([]any, error) {
	chainID, err := safe.Int16(tx.ChainID)
	if err != nil {
		return nil, fmt.Errorf("chain id: %w", err)
	}
	height, err := safe.Int64(tx.Height)
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	gas, err := safe.Int64(tx.Gas)
	if err != nil {
		return nil, fmt.Errorf("gas: %w", err)
	}
	gasLimit, err := safe.Int64(tx.GasLimit)
	if err != nil {
		return nil, fmt.Errorf("gas limit: %w", err)
	}

	var txID *int64
	if tx.TxID != nil {
		v, err := safe.Int64(*tx.TxID)
		if err != nil {
			return nil, fmt.Errorf("tx id: %w", err)
		}
		txID = &v
	}

	return []any{
		chainID,
		height,
		tx.BlockHash,
		tx.RequestKey,
		tx.Sender,
		tx.Kind,
		tx.PactID,
		gas,
		gasLimit,
		tx.GasPrice,
		tx.Status,
		tx.CreationTime,
		txID,
		int64(tx.EventCount),
	}, nil
}

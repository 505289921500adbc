package ingester

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
	"github.com/goodnatureofminers/chainweb-ingester/pkg/safe"
)

func blockRecord(id uuid.UUID, chainID model.ChainID, header model.BlockHeader, payload model.BlockPayload) (model.BlockRecord, error) {
	txCount, err := safe.Uint32(len(payload.Transactions))
	if err != nil {
		return model.BlockRecord{}, fmt.Errorf("block %s tx count: %w", header.Hash, err)
	}
	return model.BlockRecord{
		ID:           id,
		ChainID:      chainID,
		Height:       header.Height,
		Hash:         header.Hash,
		PayloadHash:  header.PayloadHash,
		CreationTime: header.CreatedAt(),
		TxCount:      txCount,
	}, nil
}

func transactionRecord(chainID model.ChainID, header model.BlockHeader, tx model.DecodedTransaction) (model.TransactionRecord, error) {
	created, err := safe.Int64(tx.Transaction.Meta.CreationTime)
	if err != nil {
		return model.TransactionRecord{}, fmt.Errorf("creation time: %w", err)
	}
	events, err := safe.Uint32(len(tx.Output.Events))
	if err != nil {
		return model.TransactionRecord{}, fmt.Errorf("event count: %w", err)
	}

	var pactID string
	if cont := tx.Transaction.Payload.Cont; cont != nil {
		pactID = cont.PactID
	}

	return model.TransactionRecord{
		ChainID:      chainID,
		Height:       header.Height,
		BlockHash:    header.Hash,
		RequestKey:   tx.Output.ReqKey,
		Sender:       tx.Transaction.Meta.Sender,
		Kind:         tx.Transaction.Payload.Kind(),
		PactID:       pactID,
		Gas:          tx.Output.Gas,
		GasLimit:     tx.Transaction.Meta.GasLimit,
		GasPrice:     tx.Transaction.Meta.GasPrice,
		Status:       tx.Output.Result.Status,
		CreationTime: time.Unix(created, 0).UTC(),
		TxID:         tx.Output.TxID,
		EventCount:   events,
	}, nil
}

// payloadHashes returns the distinct payload hashes of headers in first-seen order.
func payloadHashes(headers []model.BlockHeader) []string {
	seen := make(map[string]struct{}, len(headers))
	hashes := make([]string, 0, len(headers))
	for _, h := range headers {
		if _, ok := seen[h.PayloadHash]; ok {
			continue
		}
		seen[h.PayloadHash] = struct{}{}
		hashes = append(hashes, h.PayloadHash)
	}
	return hashes
}

func topHeight(headers []model.BlockHeader) uint64 {
	var top uint64
	for _, h := range headers {
		top = max(top, h.Height)
	}
	return top
}

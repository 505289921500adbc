package model

import (
	"time"

	"github.com/google/uuid"
)

// Checkpoint is the highest fully ingested height of a chain.
type Checkpoint struct {
	ChainID ChainID
	Height  uint64
}

// BlockRecord is an append-only trace of an observed block.
type BlockRecord struct {
	ID           uuid.UUID
	ChainID      ChainID
	Height       uint64
	Hash         string
	PayloadHash  string
	CreationTime time.Time
	TxCount      uint32
}

// TransactionRecord is the persisted projection of a decoded transaction.
type TransactionRecord struct {
	ChainID      ChainID
	Height       uint64
	BlockHash    string
	RequestKey   string
	Sender       string
	Kind         string
	PactID       string
	Gas          uint64
	GasLimit     uint64
	GasPrice     float64
	Status       string
	CreationTime time.Time
	TxID         *uint64
	EventCount   uint32
}

// NewHeadRecord is a head observed on the updates stream.
type NewHeadRecord struct {
	ChainID    ChainID
	Height     uint64
	Hash       string
	PowHash    string
	Target     string
	TxCount    uint64
	ReceivedAt time.Time
}

// Round is everything one successful ingestion round persists.
type Round struct {
	ChainID      ChainID
	Blocks       []BlockRecord
	Transactions []TransactionRecord
	Checkpoint   Checkpoint
}

// Package model defines domain models for chainweb ingestion.
package model

import "time"

// ChainID identifies one chain partition of the braided network.
type ChainID uint16

// HashHeight pins a block by hash and height.
type HashHeight struct {
	Hash   string `json:"hash"`
	Height uint64 `json:"height"`
}

// Cut is the consensus frontier reported by the node at one instant.
type Cut struct {
	Hashes   map[ChainID]HashHeight `json:"hashes"`
	Height   uint64                 `json:"height"`
	Weight   string                 `json:"weight"`
	Instance string                 `json:"instance"`
	ID       string                 `json:"id"`
}

// Head returns the tip of a chain and whether the cut carries it.
func (c Cut) Head(chainID ChainID) (HashHeight, bool) {
	head, ok := c.Hashes[chainID]
	return head, ok
}

// ChainStatus is a point-in-time snapshot of a chain worker's progress.
type ChainStatus struct {
	ChainID    ChainID   `json:"chain_id"`
	MinHeight  uint64    `json:"min_height"`
	MaxHeight  uint64    `json:"max_height"`
	Checkpoint *uint64   `json:"checkpoint,omitempty"`
	Rounds     uint64    `json:"rounds"`
	HeadHeight uint64    `json:"head_height"`
	LastError  string    `json:"last_error,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

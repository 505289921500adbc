package model

import "time"

// BlockHeader is a chainweb block header in object encoding.
type BlockHeader struct {
	ChainID         ChainID            `json:"chainId"`
	Height          uint64             `json:"height"`
	Hash            string             `json:"hash"`
	Parent          string             `json:"parent"`
	PayloadHash     string             `json:"payloadHash"`
	Target          string             `json:"target"`
	Weight          string             `json:"weight"`
	CreationTime    int64              `json:"creationTime"`
	EpochStart      int64              `json:"epochStart"`
	FeatureFlags    uint64             `json:"featureFlags"`
	Nonce           string             `json:"nonce"`
	ChainwebVersion string             `json:"chainwebVersion"`
	Adjacents       map[ChainID]string `json:"adjacents"`
}

// CreatedAt converts the microsecond creation timestamp.
func (h BlockHeader) CreatedAt() time.Time {
	return time.UnixMicro(h.CreationTime).UTC()
}

// HeaderPage is one page of the branch header endpoint.
type HeaderPage struct {
	Items []BlockHeader `json:"items"`
	Limit uint64        `json:"limit"`
	Next  *string       `json:"next"`
}

// NewHead is an event of the header updates stream.
type NewHead struct {
	Header  BlockHeader `json:"header"`
	PowHash string      `json:"powHash"`
	Target  string      `json:"target"`
	TxCount uint64      `json:"txCount"`
}

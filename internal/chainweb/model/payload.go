package model

// EncodedPair is a (command, output) pair, both base64url encoded.
type EncodedPair []string

// BlockPayload is a payload together with its transaction outputs.
type BlockPayload struct {
	PayloadHash      string        `json:"payloadHash"`
	Coinbase         string        `json:"coinbase"`
	MinerData        string        `json:"minerData"`
	OutputsHash      string        `json:"outputsHash"`
	TransactionsHash string        `json:"transactionsHash"`
	Transactions     []EncodedPair `json:"transactions,omitempty"`
}

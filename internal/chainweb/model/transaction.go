package model

import "encoding/json"

// Document is an untyped JSON value kept verbatim.
type Document = json.RawMessage

// SignedCommand is the outer envelope of a transaction. Cmd holds the
// transaction itself as a JSON encoded string.
type SignedCommand struct {
	Hash string      `json:"hash,omitempty"`
	Sigs []Signature `json:"sigs"`
	Cmd  string      `json:"cmd"`
}

// Signature is a single command signature.
type Signature struct {
	Sig string `json:"sig"`
}

// Transaction is the decoded command.
type Transaction struct {
	NetworkID string   `json:"networkId"`
	Nonce     string   `json:"nonce"`
	Meta      Meta     `json:"meta"`
	Signers   []Signer `json:"signers"`
	Payload   Payload  `json:"payload"`
}

// Meta carries the public metadata of a transaction.
type Meta struct {
	CreationTime uint64  `json:"creationTime"`
	TTL          float64 `json:"ttl"`
	GasLimit     uint64  `json:"gasLimit"`
	GasPrice     float64 `json:"gasPrice"`
	ChainID      string  `json:"chainId"`
	Sender       string  `json:"sender"`
}

// Signer is a public key with its optional capability list.
type Signer struct {
	PubKey string       `json:"pubKey"`
	Clist  []Capability `json:"clist,omitempty"`
}

// Capability scopes a signature.
type Capability struct {
	Name string     `json:"name"`
	Args []Document `json:"args"`
}

// Payload holds exactly one of Exec or Cont.
type Payload struct {
	Exec *ExecPayload `json:"exec,omitempty"`
	Cont *ContPayload `json:"cont,omitempty"`
}

// ExecPayload runs code.
type ExecPayload struct {
	Code string   `json:"code"`
	Data Document `json:"data"`
}

// ContPayload continues a multi-step pact.
type ContPayload struct {
	PactID   string   `json:"pactId"`
	Step     uint64   `json:"step"`
	Rollback bool     `json:"rollback"`
	Proof    *string  `json:"proof"`
	Data     Document `json:"data,omitempty"`
}

// Kind names the payload variant.
func (p Payload) Kind() string {
	switch {
	case p.Exec != nil:
		return "exec"
	case p.Cont != nil:
		return "cont"
	default:
		return ""
	}
}

package model

// Output is the decoded result of a transaction.
type Output struct {
	ReqKey       string   `json:"reqKey"`
	Gas          uint64   `json:"gas"`
	Logs         *string  `json:"logs"`
	Events       []Event  `json:"events,omitempty"`
	Result       Result   `json:"result"`
	Continuation Document `json:"continuation"`
	TxID         *uint64  `json:"txId"`
	MetaData     Document `json:"metaData,omitempty"`
}

// Event is emitted by a module during execution.
type Event struct {
	Module     ModuleRef  `json:"module"`
	ModuleHash string     `json:"moduleHash"`
	Name       string     `json:"name"`
	Params     []Document `json:"params"`
}

// ModuleRef names a module and its optional namespace.
type ModuleRef struct {
	Name      string  `json:"name"`
	Namespace *string `json:"namespace"`
}

// Result is either a success carrying Data or a failure carrying Error.
type Result struct {
	Status string       `json:"status"`
	Data   Document     `json:"data,omitempty"`
	Error  *ResultError `json:"error,omitempty"`
}

// ResultError describes a failed execution.
type ResultError struct {
	CallStack []string `json:"callStack"`
	Info      string   `json:"info"`
	Message   string   `json:"message"`
	Type      string   `json:"type"`
}

// DecodedTransaction is a command and its output after decoding.
type DecodedTransaction struct {
	Index       int
	Hash        string
	Signatures  []Signature
	Transaction Transaction
	Output      Output
}

package decoder

import "fmt"

// Stage names the decode step that failed.
type Stage string

const (
	StagePair    Stage = "pair"
	StageBase64  Stage = "base64url"
	StageJSON    Stage = "json"
	StageShape   Stage = "shape"
	StageCommand Stage = "command"
)

// Part names which half of the pair failed.
type Part string

const (
	PartCommand Part = "command"
	PartOutput  Part = "output"
)

// DecodeError reports a transaction that could not be decoded.
type DecodeError struct {
	Index int
	Part  Part
	Stage Stage
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode transaction %d %s (%s): %v", e.Index, e.Part, e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

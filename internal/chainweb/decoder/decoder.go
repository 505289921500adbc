// Package decoder turns the base64url encoded (command, output) pairs of a
// block payload into typed transactions.
//
// A command is base64url encoded JSON whose "cmd" field is itself a JSON
// document serialised as a string, so it is parsed twice.
package decoder

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
)

var (
	errEmptyCmd       = errors.New("cmd is empty")
	errPayloadVariant = errors.New("payload must carry exactly one of exec or cont")
	errEmptyReqKey    = errors.New("reqKey is empty")
	errEmptyStatus    = errors.New("result status is empty")
)

// DecodeBatch decodes every pair independently. Pairs that fail are reported
// in failures and left out of decoded.
func DecodeBatch(pairs []model.EncodedPair) (decoded []model.DecodedTransaction, failures []*DecodeError) {
	decoded = make([]model.DecodedTransaction, 0, len(pairs))
	for i, pair := range pairs {
		tx, err := decode(i, pair)
		if err != nil {
			var decodeErr *DecodeError
			if errors.As(err, &decodeErr) {
				failures = append(failures, decodeErr)
				continue
			}
			failures = append(failures, &DecodeError{Index: i, Part: PartCommand, Stage: StageShape, Err: err})
			continue
		}
		decoded = append(decoded, tx)
	}
	return decoded, failures
}

func decode(index int, pair model.EncodedPair) (model.DecodedTransaction, error) {
	if len(pair) != 2 {
		return model.DecodedTransaction{}, &DecodeError{
			Index: index,
			Part:  PartCommand,
			Stage: StagePair,
			Err:   fmt.Errorf("expected 2 elements, got %d", len(pair)),
		}
	}

	var envelope model.SignedCommand
	if err := decodeDocument(pair[0], &envelope); err != nil {
		return model.DecodedTransaction{}, wrap(index, PartCommand, err)
	}
	if envelope.Cmd == "" {
		return model.DecodedTransaction{}, &DecodeError{Index: index, Part: PartCommand, Stage: StageShape, Err: errEmptyCmd}
	}

	var tx model.Transaction
	if err := json.Unmarshal([]byte(envelope.Cmd), &tx); err != nil {
		return model.DecodedTransaction{}, &DecodeError{Index: index, Part: PartCommand, Stage: StageCommand, Err: err}
	}
	if (tx.Payload.Exec == nil) == (tx.Payload.Cont == nil) {
		return model.DecodedTransaction{}, &DecodeError{Index: index, Part: PartCommand, Stage: StageCommand, Err: errPayloadVariant}
	}

	var out model.Output
	if err := decodeDocument(pair[1], &out); err != nil {
		return model.DecodedTransaction{}, wrap(index, PartOutput, err)
	}
	if out.ReqKey == "" {
		return model.DecodedTransaction{}, &DecodeError{Index: index, Part: PartOutput, Stage: StageShape, Err: errEmptyReqKey}
	}
	if out.Result.Status == "" {
		return model.DecodedTransaction{}, &DecodeError{Index: index, Part: PartOutput, Stage: StageShape, Err: errEmptyStatus}
	}

	return model.DecodedTransaction{
		Index:       index,
		Hash:        envelope.Hash,
		Signatures:  envelope.Sigs,
		Transaction: tx,
		Output:      out,
	}, nil
}

type stageError struct {
	stage Stage
	err   error
}

func (e *stageError) Error() string { return e.err.Error() }

func decodeDocument(encoded string, v any) error {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(encoded, "="))
	if err != nil {
		return &stageError{stage: StageBase64, err: err}
	}
	if err := json.Unmarshal(raw, v); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) || !json.Valid(raw) {
			return &stageError{stage: StageJSON, err: err}
		}
		return &stageError{stage: StageShape, err: err}
	}
	return nil
}

func wrap(index int, part Part, err error) error {
	var se *stageError
	if errors.As(err, &se) {
		return &DecodeError{Index: index, Part: part, Stage: se.stage, Err: se.err}
	}
	return &DecodeError{Index: index, Part: part, Stage: StageShape, Err: err}
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/window"
)

const (
	opCut           = "cut"
	opBranchHeaders = "branch_headers"
	opPayloadBatch  = "payload_outputs_batch"
	opHeaderUpdates = "header_updates"

	contentTypeJSON  = "application/json"
	acceptHeaderJSON = "application/json;blockheader-encoding=object"
)

type branchBounds struct {
	Upper []string `json:"upper"`
	Lower []string `json:"lower"`
}

func decodeBody(operation string, resp Response, v any) error {
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return &DecodeError{Operation: operation, Err: err}
	}
	return nil
}

// Cut fetches the current consensus cut.
func (c *Client) Cut(ctx context.Context) (model.Cut, error) {
	header := http.Header{"Accept": []string{contentTypeJSON}}
	resp, err := c.Call(ctx, opCut, http.MethodGet, c.endpoint("/cut"), nil, header)
	if err != nil {
		return model.Cut{}, fmt.Errorf("fetch cut: %w", err)
	}

	var cut model.Cut
	if err := decodeBody(opCut, resp, &cut); err != nil {
		return model.Cut{}, err
	}
	return cut, nil
}

// BranchHeaders fetches the headers of the branch ending at upper whose
// heights fall in [w.Min, w.Ceiling()], highest first.
func (c *Client) BranchHeaders(ctx context.Context, chainID model.ChainID, upper string, w window.Window) ([]model.BlockHeader, error) {
	query := url.Values{}
	query.Set("limit", strconv.FormatUint(w.Limit, 10))
	query.Set("minheight", strconv.FormatUint(w.Min, 10))
	query.Set("maxheight", strconv.FormatUint(w.Ceiling(), 10))
	endpoint := c.endpoint("/chain/%d/header/branch?%s", chainID, query.Encode())

	body, err := json.Marshal(branchBounds{Upper: []string{upper}, Lower: []string{}})
	if err != nil {
		return nil, fmt.Errorf("encode branch bounds: %w", err)
	}
	header := http.Header{
		"Content-Type": []string{contentTypeJSON},
		"Accept":       []string{acceptHeaderJSON},
	}

	resp, err := c.Call(ctx, opBranchHeaders, http.MethodPost, endpoint, body, header)
	if err != nil {
		return nil, fmt.Errorf("fetch chain %d headers %s: %w", chainID, w, err)
	}

	var page model.HeaderPage
	if err := decodeBody(opBranchHeaders, resp, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// PayloadOutputsBatch fetches payloads with outputs for the given hashes.
func (c *Client) PayloadOutputsBatch(ctx context.Context, chainID model.ChainID, hashes []string) ([]model.BlockPayload, error) {
	if len(hashes) == 0 {
		return nil, nil
	}
	body, err := json.Marshal(hashes)
	if err != nil {
		return nil, fmt.Errorf("encode payload hashes: %w", err)
	}
	header := http.Header{
		"Content-Type": []string{contentTypeJSON},
		"Accept":       []string{contentTypeJSON},
	}

	endpoint := c.endpoint("/chain/%d/payload/outputs/batch", chainID)
	resp, err := c.Call(ctx, opPayloadBatch, http.MethodPost, endpoint, body, header)
	if err != nil {
		return nil, fmt.Errorf("fetch chain %d payloads: %w", chainID, err)
	}

	var payloads []model.BlockPayload
	if err := decodeBody(opPayloadBatch, resp, &payloads); err != nil {
		return nil, err
	}
	return payloads, nil
}

package api

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/window"
)

// frontierConcurrency bounds the head requests in flight during one probe.
const frontierConcurrency = 8

// FrontierHead is the head header of one chain, or why it could not be read.
type FrontierHead struct {
	ChainID model.ChainID
	Header  model.BlockHeader
	Err     error
}

// Frontier reads the cut once and then fetches the head header of every
// chain, at most frontierConcurrency at a time. A failing chain is reported in
// its FrontierHead and does not affect the others. Only a failed cut fetch or
// a canceled context fails the call.
func (c *Client) Frontier(ctx context.Context, chains []model.ChainID) ([]FrontierHead, error) {
	cut, err := c.Cut(ctx)
	if err != nil {
		return nil, err
	}

	heads := make([]FrontierHead, len(chains))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(frontierConcurrency)
	for i, chainID := range chains {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			heads[i] = c.frontierHead(gctx, cut, chainID)
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("probe frontier: %w", err)
	}

	return heads, nil
}

func (c *Client) frontierHead(ctx context.Context, cut model.Cut, chainID model.ChainID) FrontierHead {
	head, ok := cut.Head(chainID)
	if !ok {
		return FrontierHead{ChainID: chainID, Err: fmt.Errorf("chain %d: %w", chainID, ErrChainNotInCut)}
	}

	headers, err := c.BranchHeaders(ctx, chainID, head.Hash, window.Window{Min: head.Height, Max: head.Height, Limit: 1})
	if err != nil {
		return FrontierHead{ChainID: chainID, Err: err}
	}
	if len(headers) == 0 {
		return FrontierHead{ChainID: chainID, Err: fmt.Errorf("chain %d: head %s at height %d not found", chainID, head.Hash, head.Height)}
	}
	return FrontierHead{ChainID: chainID, Header: headers[0]}
}

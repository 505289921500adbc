package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/api"
	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/window"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	APIClient interface {
		Cut(ctx context.Context) (model.Cut, error)
		BranchHeaders(ctx context.Context, chainID model.ChainID, upper string, w window.Window) ([]model.BlockHeader, error)
		PayloadOutputsBatch(ctx context.Context, chainID model.ChainID, hashes []string) ([]model.BlockPayload, error)
	}
	Repository interface {
		Checkpoints(ctx context.Context) ([]model.Checkpoint, error)
		SaveRound(ctx context.Context, round model.Round) error
	}
	HeadRepository interface {
		InsertNewHeads(ctx context.Context, heads []model.NewHeadRecord) error
	}
	HeadStream interface {
		HeaderUpdates(ctx context.Context, handle func(model.NewHead), invalid func(error)) error
	}
	FrontierSource interface {
		Frontier(ctx context.Context, chains []model.ChainID) ([]api.FrontierHead, error)
	}
	PayloadFetcher interface {
		Fetch(ctx context.Context, chainID model.ChainID, hashes []string) (map[string]model.BlockPayload, error)
	}
	StatusPublisher interface {
		Publish(status model.ChainStatus)
	}

	ChainIngesterMetrics interface {
		ObserveRound(chainID model.ChainID, err error, headers, transactions int, started time.Time)
		ObserveWindow(chainID model.ChainID, minHeight, maxHeight uint64)
		ObserveCheckpoint(chainID model.ChainID, height uint64)
		ObserveDecodeFailure(chainID model.ChainID)
		ObserveIdle(chainID model.ChainID)
		ObservePayloadCache(hits, misses int)
	}
	HeadFollowerMetrics interface {
		ObserveHead(chainID model.ChainID)
		ObserveSession(err error)
		ObserveParseFailure()
	}
	FrontierMonitorMetrics interface {
		ObserveHead(chainID model.ChainID, height uint64, createdAt time.Time)
		ObserveProbeFailure(chainID model.ChainID)
	}
)

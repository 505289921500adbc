package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/api"
	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/decoder"
	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/window"
	"github.com/goodnatureofminers/chainweb-ingester/internal/clock"
)

// ErrHeaderOutsideWindow is returned when the branch endpoint answers with a
// header the round did not ask for.
var ErrHeaderOutsideWindow = errors.New("header outside window")

// ChainWorkerConfig is the starting state of one chain worker.
type ChainWorkerConfig struct {
	ChainID    model.ChainID
	Window     window.Window
	Checkpoint *uint64
	// Rounds stops the worker after this many persisted rounds; zero runs
	// until the context is canceled.
	Rounds       uint64
	IdleDelay    time.Duration
	FailureDelay time.Duration
	// HeadSignal ends an idle wait early; nil waits the full IdleDelay.
	HeadSignal <-chan struct{}
}

// ChainWorker ingests a single chain: it fetches headers for its window,
// fetches and decodes their payloads, persists the round and advances.
// Its cursor is owned by the worker and never shared.
type ChainWorker struct {
	chainID      model.ChainID
	api          APIClient
	repo         Repository
	payloads     PayloadFetcher
	metrics      ChainIngesterMetrics
	status       StatusPublisher
	logger       *zap.Logger
	sleep        func(context.Context, time.Duration, <-chan struct{}) (bool, error)
	newID        func() uuid.UUID
	now          func() time.Time
	idleDelay    time.Duration
	failureDelay time.Duration
	headSignal   <-chan struct{}
	roundLimit   uint64

	window     window.Window
	checkpoint *uint64
	head       model.HashHeight
	needCut    bool
	rounds     uint64
}

// NewChainWorker builds a worker positioned at cfg.Window.
func NewChainWorker(
	cfg ChainWorkerConfig,
	client APIClient,
	repo Repository,
	payloads PayloadFetcher,
	metrics ChainIngesterMetrics,
	status StatusPublisher,
	logger *zap.Logger,
) (*ChainWorker, error) {
	if client == nil || repo == nil || payloads == nil {
		return nil, errors.New("chain worker requires api, repository and payload fetcher")
	}
	if metrics == nil {
		return nil, errors.New("chain worker metrics is required")
	}
	if cfg.Window.Limit == 0 {
		return nil, errors.New("chain worker window limit must be positive")
	}
	if cfg.IdleDelay <= 0 {
		cfg.IdleDelay = defaultIdleDelay
	}
	if cfg.FailureDelay <= 0 {
		cfg.FailureDelay = defaultFailureDelay
	}

	return &ChainWorker{
		chainID:      cfg.ChainID,
		api:          client,
		repo:         repo,
		payloads:     payloads,
		metrics:      metrics,
		status:       status,
		logger:       logger.With(zap.Uint16("chain_id", uint16(cfg.ChainID))),
		sleep:        clock.SleepOrSignal,
		newID:        uuid.New,
		now:          time.Now,
		idleDelay:    cfg.IdleDelay,
		failureDelay: cfg.FailureDelay,
		headSignal:   cfg.HeadSignal,
		roundLimit:   cfg.Rounds,
		window:       cfg.Window,
		checkpoint:   cfg.Checkpoint,
		needCut:      true,
	}, nil
}

// ChainID returns the chain this worker ingests.
func (w *ChainWorker) ChainID() model.ChainID {
	return w.chainID
}

// Run executes rounds until the round limit is reached, the context is
// canceled, or the chain turns out to be missing from the cut. Failed rounds
// are logged and retried from the same window.
func (w *ChainWorker) Run(ctx context.Context) error {
	w.logger.Info("chain worker started",
		zap.Uint64("min_height", w.window.Min),
		zap.Uint64("max_height", w.window.Max),
		zap.Uint64("limit", w.window.Limit),
	)

	for w.roundLimit == 0 || w.rounds < w.roundLimit {
		if err := ctx.Err(); err != nil {
			return err
		}

		progressed, err := w.round(ctx)
		w.publish(err)

		switch {
		case err == nil && progressed:
			continue
		case err == nil:
			w.metrics.ObserveIdle(w.chainID)
			w.logger.Debug("frontier has not reached the window yet",
				zap.Stringer("window", w.window),
				zap.Duration("sleep", w.idleDelay),
			)
			if _, err := w.sleep(ctx, w.idleDelay, w.headSignal); err != nil {
				return err
			}
		case errors.Is(err, api.ErrChainNotInCut):
			w.logger.Error("chain missing from cut", zap.Error(err))
			return err
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			w.logger.Warn("round failed, retrying the same window",
				zap.Uint64("min_height", w.window.Min),
				zap.Uint64("max_height", w.window.Max),
				zap.Duration("sleep", w.failureDelay),
				zap.Error(err),
			)
			if _, err := w.sleep(ctx, w.failureDelay, nil); err != nil {
				return err
			}
		}
	}

	w.logger.Info("chain worker finished", zap.Uint64("rounds", w.rounds))
	return nil
}

// round runs one fetch, decode and persist pass. It reports false with a nil
// error when the frontier has not produced any header inside the window. The
// cursor only moves after the round is persisted.
func (w *ChainWorker) round(ctx context.Context) (bool, error) {
	started := time.Now()

	if w.needCut {
		if err := w.refreshHead(ctx); err != nil {
			w.metrics.ObserveRound(w.chainID, err, 0, 0, started)
			return false, err
		}
	}

	headers, err := w.api.BranchHeaders(ctx, w.chainID, w.head.Hash, w.window)
	if err != nil {
		err = fmt.Errorf("fetch headers %s: %w", w.window, err)
		w.metrics.ObserveRound(w.chainID, err, 0, 0, started)
		return false, err
	}
	if len(headers) == 0 {
		w.needCut = true
		return false, nil
	}
	for _, h := range headers {
		if !w.window.Contains(h.Height) {
			err = fmt.Errorf("header %s at height %d, window %s: %w", h.Hash, h.Height, w.window, ErrHeaderOutsideWindow)
			w.metrics.ObserveRound(w.chainID, err, 0, 0, started)
			return false, err
		}
	}

	top := topHeight(headers)
	next := w.window.Next(top)

	payloads, err := w.payloads.Fetch(ctx, w.chainID, payloadHashes(headers))
	if err != nil {
		w.metrics.ObserveRound(w.chainID, err, 0, 0, started)
		return false, err
	}

	round, err := w.buildRound(headers, payloads, top)
	if err != nil {
		w.metrics.ObserveRound(w.chainID, err, 0, 0, started)
		return false, err
	}

	if err := w.repo.SaveRound(ctx, round); err != nil {
		err = fmt.Errorf("save round %s: %w", w.window, err)
		w.metrics.ObserveRound(w.chainID, err, 0, 0, started)
		return false, err
	}

	checkpoint := round.Checkpoint.Height
	w.window = next
	w.checkpoint = &checkpoint
	w.rounds++

	w.metrics.ObserveRound(w.chainID, nil, len(headers), len(round.Transactions), started)
	w.metrics.ObserveWindow(w.chainID, w.window.Min, w.window.Max)
	w.metrics.ObserveCheckpoint(w.chainID, checkpoint)
	w.logger.Debug("round persisted",
		zap.Int("headers", len(headers)),
		zap.Int("transactions", len(round.Transactions)),
		zap.Uint64("checkpoint", checkpoint),
		zap.Stringer("next_window", w.window),
	)
	return true, nil
}

func (w *ChainWorker) refreshHead(ctx context.Context) error {
	cut, err := w.api.Cut(ctx)
	if err != nil {
		return fmt.Errorf("fetch cut: %w", err)
	}
	head, ok := cut.Head(w.chainID)
	if !ok {
		return fmt.Errorf("chain %d: %w", w.chainID, api.ErrChainNotInCut)
	}
	w.head = head
	w.needCut = false
	return nil
}

// buildRound turns fetched headers and their payloads into the records of a
// round. Transactions that fail to decode are logged and skipped.
func (w *ChainWorker) buildRound(headers []model.BlockHeader, payloads map[string]model.BlockPayload, top uint64) (model.Round, error) {
	round := model.Round{
		ChainID:    w.chainID,
		Blocks:     make([]model.BlockRecord, 0, len(headers)),
		Checkpoint: model.Checkpoint{ChainID: w.chainID, Height: top},
	}
	if w.checkpoint != nil && *w.checkpoint > top {
		round.Checkpoint.Height = *w.checkpoint
	}

	for _, header := range headers {
		payload, ok := payloads[header.PayloadHash]
		if !ok {
			return model.Round{}, fmt.Errorf("payload %s of block %s: %w", header.PayloadHash, header.Hash, ErrPayloadMissing)
		}

		rec, err := blockRecord(w.newID(), w.chainID, header, payload)
		if err != nil {
			return model.Round{}, err
		}
		round.Blocks = append(round.Blocks, rec)

		if len(payload.Transactions) == 0 {
			continue
		}
		decoded, failures := decoder.DecodeBatch(payload.Transactions)
		for _, failure := range failures {
			w.skipTransaction(header, failure.Index, failure)
		}
		for _, tx := range decoded {
			txRec, err := transactionRecord(w.chainID, header, tx)
			if err != nil {
				w.skipTransaction(header, tx.Index, err)
				continue
			}
			round.Transactions = append(round.Transactions, txRec)
		}
	}

	return round, nil
}

func (w *ChainWorker) skipTransaction(header model.BlockHeader, index int, err error) {
	w.metrics.ObserveDecodeFailure(w.chainID)
	w.logger.Warn("skipping undecodable transaction",
		zap.Uint64("height", header.Height),
		zap.String("block_hash", header.Hash),
		zap.Int("index", index),
		zap.Error(err),
	)
}

func (w *ChainWorker) publish(err error) {
	if w.status == nil {
		return
	}
	status := model.ChainStatus{
		ChainID:    w.chainID,
		MinHeight:  w.window.Min,
		MaxHeight:  w.window.Max,
		Checkpoint: w.checkpoint,
		Rounds:     w.rounds,
		HeadHeight: w.head.Height,
		UpdatedAt:  w.now().UTC(),
	}
	if err != nil {
		status.LastError = err.Error()
	}
	w.status.Publish(status)
}

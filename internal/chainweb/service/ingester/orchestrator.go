package ingester

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/window"
)

// Config drives how many chains are ingested and from where.
type Config struct {
	NumberOfChains  uint64
	ChainForkHeight uint64
	Limit           uint64
	MinHeight       uint64
	MaxHeight       uint64
	Rounds          uint64
	FallbackWorkers uint64
	IdleDelay       time.Duration
	FailureDelay    time.Duration

	PayloadBatchSize int
	PayloadWorkers   int
	PayloadCacheSize int

	FollowHeads      bool
	FrontierInterval time.Duration
}

// Dependencies are the collaborators an Orchestrator wires into its workers.
// Stream and Heads are only needed with FollowHeads, Frontier only with a
// positive FrontierInterval.
type Dependencies struct {
	API             APIClient
	Repository      Repository
	Heads           HeadRepository
	Stream          HeadStream
	Frontier        FrontierSource
	Metrics         ChainIngesterMetrics
	HeadMetrics     HeadFollowerMetrics
	FrontierMetrics FrontierMonitorMetrics
	Status          StatusPublisher
	BackOff         func(context.Context) backoff.BackOff
}

type component struct {
	name string
	run  func(context.Context) error
}

// Orchestrator runs one worker per chain plus the optional head follower and
// frontier monitor.
type Orchestrator struct {
	workers    []*ChainWorker
	components []component
	logger     *zap.Logger
}

// Build reads the persisted checkpoints and prepares a worker for every chain.
func Build(ctx context.Context, cfg Config, deps Dependencies, logger *zap.Logger) (*Orchestrator, error) {
	if deps.Repository == nil {
		return nil, errors.New("orchestrator requires a repository")
	}
	logger = logger.With(zap.String("component", "orchestrator"))

	checkpoints, err := deps.Repository.Checkpoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("load checkpoints: %w", err)
	}
	byChain := make(map[model.ChainID]uint64, len(checkpoints))
	for _, cp := range checkpoints {
		byChain[cp.ChainID] = cp.Height
	}

	count := WorkerCount(cfg)
	if count == 0 {
		return nil, errors.New("no chains to ingest")
	}
	if count > uint64(^model.ChainID(0))+1 {
		return nil, fmt.Errorf("too many chains: %d", count)
	}
	chains := make([]model.ChainID, 0, count)
	for i := uint64(0); i < count; i++ {
		chains = append(chains, model.ChainID(i))
	}

	payloads, err := newPayloadFetcher(deps.API, deps.Metrics, cfg.PayloadBatchSize, cfg.PayloadWorkers, cfg.PayloadCacheSize)
	if err != nil {
		return nil, err
	}

	o := &Orchestrator{logger: logger}

	var follower *HeadFollower
	if cfg.FollowHeads {
		follower, err = NewHeadFollower(deps.Stream, deps.Heads, deps.HeadMetrics, chains, deps.BackOff, logger)
		if err != nil {
			return nil, err
		}
		o.components = append(o.components, component{name: "head_follower", run: follower.Run})
	}
	if cfg.FrontierInterval > 0 {
		monitor, err := NewFrontierMonitor(deps.Frontier, deps.FrontierMetrics, chains, cfg.FrontierInterval, logger)
		if err != nil {
			return nil, err
		}
		o.components = append(o.components, component{name: "frontier_monitor", run: monitor.Run})
	}

	for _, chainID := range chains {
		var checkpoint *uint64
		if h, ok := byChain[chainID]; ok {
			checkpoint = &h
		}
		resume := ResumeHeight(cfg, chainID, checkpoint)
		w, err := window.New(resume, cfg.Limit)
		if err != nil {
			return nil, fmt.Errorf("chain %d window: %w", chainID, err)
		}

		workerCfg := ChainWorkerConfig{
			ChainID:      chainID,
			Window:       w,
			Checkpoint:   checkpoint,
			Rounds:       cfg.Rounds,
			IdleDelay:    cfg.IdleDelay,
			FailureDelay: cfg.FailureDelay,
		}
		if follower != nil {
			workerCfg.HeadSignal = follower.Signal(chainID)
		}

		worker, err := NewChainWorker(workerCfg, deps.API, deps.Repository, payloads, deps.Metrics, deps.Status, logger)
		if err != nil {
			return nil, fmt.Errorf("chain %d worker: %w", chainID, err)
		}
		o.workers = append(o.workers, worker)
	}

	logger.Info("orchestrator built",
		zap.Int("workers", len(o.workers)),
		zap.Int("checkpoints", len(checkpoints)),
		zap.Int("components", len(o.components)),
	)
	return o, nil
}

// Run starts every worker and waits for all of them. A failing worker does
// not stop its siblings; all worker errors are returned together once every
// worker has finished. Auxiliary components stop with the workers and their
// errors are only logged.
func (o *Orchestrator) Run(ctx context.Context) error {
	componentCtx, stopComponents := context.WithCancel(ctx)
	defer stopComponents()

	var components sync.WaitGroup
	for _, c := range o.components {
		components.Add(1)
		go func() {
			defer components.Done()
			if err := c.run(componentCtx); err != nil && !errors.Is(err, context.Canceled) {
				o.logger.Error("component stopped", zap.String("name", c.name), zap.Error(err))
			}
		}()
	}

	errs := make([]error, len(o.workers))
	var workers sync.WaitGroup
	for i, w := range o.workers {
		workers.Add(1)
		go func() {
			defer workers.Done()
			if err := w.Run(ctx); err != nil {
				errs[i] = fmt.Errorf("chain %d: %w", w.ChainID(), err)
				if ctx.Err() == nil {
					o.logger.Error("chain worker stopped", zap.Uint16("chain_id", uint16(w.ChainID())), zap.Error(err))
				}
			}
		}()
	}
	workers.Wait()

	stopComponents()
	components.Wait()

	return multierr.Combine(errs...)
}

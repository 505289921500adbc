package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
	"github.com/goodnatureofminers/chainweb-ingester/internal/clock"
	"github.com/goodnatureofminers/chainweb-ingester/pkg/batcher"
)

var errStreamClosed = errors.New("header updates stream closed")

// HeadFollower consumes the header updates stream, stores every head and
// wakes the idle worker of the head's chain.
type HeadFollower struct {
	stream  HeadStream
	repo    HeadRepository
	metrics HeadFollowerMetrics
	backOff func(context.Context) backoff.BackOff
	signals map[model.ChainID]chan struct{}
	batch   batcher.Config
	sleep   func(context.Context, time.Duration) error
	now     func() time.Time
	logger  *zap.Logger
}

func NewHeadFollower(
	stream HeadStream,
	repo HeadRepository,
	metrics HeadFollowerMetrics,
	chains []model.ChainID,
	backOff func(context.Context) backoff.BackOff,
	logger *zap.Logger,
) (*HeadFollower, error) {
	if stream == nil || repo == nil {
		return nil, errors.New("head follower requires a stream and a repository")
	}
	if metrics == nil {
		return nil, errors.New("head follower metrics is required")
	}
	if backOff == nil {
		return nil, errors.New("head follower backoff is required")
	}

	signals := make(map[model.ChainID]chan struct{}, len(chains))
	for _, id := range chains {
		signals[id] = make(chan struct{}, 1)
	}

	return &HeadFollower{
		stream:  stream,
		repo:    repo,
		metrics: metrics,
		backOff: backOff,
		signals: signals,
		batch: batcher.Config{
			Size:         headBatchSize,
			Interval:     headFlushInterval,
			RPS:          headFlushRPS,
			DrainTimeout: headBatchDrainTimeout,
		},
		sleep:  clock.SleepWithContext,
		now:    time.Now,
		logger: logger.With(zap.String("component", "head_follower")),
	}, nil
}

// Signal returns the channel that receives a value when a new head arrives
// on chainID. Unknown chains get nil, which never fires.
func (f *HeadFollower) Signal(chainID model.ChainID) <-chan struct{} {
	ch, ok := f.signals[chainID]
	if !ok {
		return nil
	}
	return ch
}

// Run follows the stream until ctx is canceled, reconnecting with backoff
// whenever the stream ends.
func (f *HeadFollower) Run(ctx context.Context) error {
	heads := batcher.New(f.logger, f.repo.InsertNewHeads, f.batch)
	heads.Start(ctx)
	defer heads.Stop()

	bo := f.backOff(ctx)
	for {
		received := 0
		err := f.stream.HeaderUpdates(ctx,
			func(head model.NewHead) {
				received++
				f.handle(ctx, heads, head)
			},
			func(err error) {
				f.metrics.ObserveParseFailure()
				f.logger.Debug("skipping malformed header update", zap.Error(err))
			},
		)
		f.metrics.ObserveSession(err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err == nil {
			err = errStreamClosed
		}
		if received > 0 {
			bo.Reset()
		}
		delay := bo.NextBackOff()
		if delay == backoff.Stop {
			return fmt.Errorf("header updates: reconnect attempts exhausted: %w", err)
		}
		f.logger.Warn("header updates stream ended, reconnecting",
			zap.Int("received", received),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		if err := f.sleep(ctx, delay); err != nil {
			return err
		}
	}
}

func (f *HeadFollower) handle(ctx context.Context, heads *batcher.Batcher[model.NewHeadRecord], head model.NewHead) {
	chainID := head.Header.ChainID
	f.metrics.ObserveHead(chainID)

	record := model.NewHeadRecord{
		ChainID:    chainID,
		Height:     head.Header.Height,
		Hash:       head.Header.Hash,
		PowHash:    head.PowHash,
		Target:     head.Target,
		TxCount:    head.TxCount,
		ReceivedAt: f.now().UTC(),
	}
	if err := heads.Add(ctx, record); err != nil {
		f.logger.Debug("dropping head record", zap.Uint16("chain_id", uint16(chainID)), zap.Error(err))
	}

	if ch, ok := f.signals[chainID]; ok {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Config controls when a Batcher flushes.
type Config struct {
	// Size flushes as soon as this many items are buffered.
	Size int
	// Interval flushes whatever is buffered on every tick.
	Interval time.Duration
	// RPS caps flushes per second; zero or negative disables the cap.
	RPS int
	// DrainTimeout bounds the final flush after shutdown.
	DrainTimeout time.Duration
}

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flush  func(context.Context, []T) error
	cfg    Config
	items  chan T
	rl     ratelimit.Limiter
	logger *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, cfg Config) *Batcher[T] {
	cfg.Size = max(cfg.Size, 1)
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	if cfg.DrainTimeout <= 0 {
		cfg.DrainTimeout = 5 * time.Second
	}

	rl := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		rl = ratelimit.New(cfg.RPS)
	}

	return &Batcher[T]{
		logger: logger,
		flush:  flush,
		cfg:    cfg,
		items:  make(chan T, cfg.Size*2),
		rl:     rl,
		stop:   make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is buffered and waits for the loop to exit. It is safe to
// call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return context.Canceled
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.Size)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	drain := func() {
		for {
			select {
			case item := <-b.items:
				buf = append(buf, item)
			default:
				drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.cfg.DrainTimeout)
				defer cancel()
				flush(drainCtx)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.cfg.Size {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}

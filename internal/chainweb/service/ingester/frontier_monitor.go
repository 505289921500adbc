package ingester

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
)

// FrontierMonitor periodically reads the head header of every chain and
// exports its height and age.
type FrontierMonitor struct {
	source   FrontierSource
	chains   []model.ChainID
	interval time.Duration
	metrics  FrontierMonitorMetrics
	logger   *zap.Logger
}

func NewFrontierMonitor(source FrontierSource, metrics FrontierMonitorMetrics, chains []model.ChainID, interval time.Duration, logger *zap.Logger) (*FrontierMonitor, error) {
	if source == nil || metrics == nil {
		return nil, errors.New("frontier monitor requires a source and metrics")
	}
	if interval <= 0 {
		return nil, errors.New("frontier monitor interval must be positive")
	}
	return &FrontierMonitor{
		source:   source,
		chains:   chains,
		interval: interval,
		metrics:  metrics,
		logger:   logger.With(zap.String("component", "frontier_monitor")),
	}, nil
}

// Run probes immediately and then on every interval until ctx is canceled.
func (m *FrontierMonitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		m.probe(ctx)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (m *FrontierMonitor) probe(ctx context.Context) {
	heads, err := m.source.Frontier(ctx, m.chains)
	if err != nil {
		if ctx.Err() == nil {
			m.logger.Warn("frontier probe failed", zap.Error(err))
		}
		return
	}

	for _, head := range heads {
		if head.Err != nil {
			m.metrics.ObserveProbeFailure(head.ChainID)
			m.logger.Warn("chain head probe failed", zap.Uint16("chain_id", uint16(head.ChainID)), zap.Error(head.Err))
			continue
		}
		m.metrics.ObserveHead(head.ChainID, head.Header.Height, head.Header.CreatedAt())
	}
}

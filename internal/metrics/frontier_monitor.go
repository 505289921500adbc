package metrics

import (
	"time"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	frontierHeadHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "frontier",
		Name:      "head_height",
		Help:      "Height of the chain head reported by the node.",
	}, []string{"chain"})

	frontierHeadAge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "frontier",
		Name:      "head_age_seconds",
		Help:      "Age of the chain head at probe time.",
	}, []string{"chain"})

	frontierProbesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "frontier",
		Name:      "probes_total",
		Help:      "Count of per-chain head probes.",
	}, []string{"chain", "status"})
)

// FrontierMonitor tracks chain heads observed by periodic probes.
type FrontierMonitor struct {
	now func() time.Time
}

// NewFrontierMonitor creates a FrontierMonitor metrics collector.
func NewFrontierMonitor() *FrontierMonitor {
	return &FrontierMonitor{now: time.Now}
}

func (m FrontierMonitor) ObserveHead(chainID model.ChainID, height uint64, createdAt time.Time) {
	chain := chainLabel(chainID)
	frontierHeadHeight.WithLabelValues(chain).Set(float64(height))
	frontierHeadAge.WithLabelValues(chain).Set(m.now().Sub(createdAt).Seconds())
	frontierProbesTotal.WithLabelValues(chain, "success").Inc()
}

func (m FrontierMonitor) ObserveProbeFailure(chainID model.ChainID) {
	frontierProbesTotal.WithLabelValues(chainLabel(chainID), "error").Inc()
}

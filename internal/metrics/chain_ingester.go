package metrics

import (
	"time"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	roundsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_ingester",
		Name:      "rounds_total",
		Help:      "Count of ingestion rounds.",
	}, []string{"chain", "status"})

	roundDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "chain_ingester",
		Name:      "round_duration_seconds",
		Help:      "Duration of ingestion rounds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})

	headersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_ingester",
		Name:      "headers_total",
		Help:      "Count of persisted block headers.",
	}, []string{"chain"})

	transactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_ingester",
		Name:      "transactions_total",
		Help:      "Count of persisted decoded transactions.",
	}, []string{"chain"})

	decodeFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_ingester",
		Name:      "decode_failures_total",
		Help:      "Count of transactions skipped because they could not be decoded.",
	}, []string{"chain"})

	idleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_ingester",
		Name:      "idle_total",
		Help:      "Count of rounds that found no new headers.",
	}, []string{"chain"})

	windowMinHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "chain_ingester",
		Name:      "window_min_height",
		Help:      "Lower bound of the current fetch window.",
	}, []string{"chain"})

	windowMaxHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "chain_ingester",
		Name:      "window_max_height",
		Help:      "Upper bound of the current fetch window.",
	}, []string{"chain"})

	checkpointHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "chain_ingester",
		Name:      "checkpoint_height",
		Help:      "Last persisted checkpoint height.",
	}, []string{"chain"})

	payloadCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "chain_ingester",
		Name:      "payload_cache_total",
		Help:      "Payload cache lookups by result.",
	}, []string{"result"})
)

// ChainIngester tracks per-chain worker progress.
type ChainIngester struct{}

// NewChainIngester creates a ChainIngester metrics collector.
func NewChainIngester() *ChainIngester {
	return &ChainIngester{}
}

func (m ChainIngester) ObserveRound(chainID model.ChainID, err error, headers, transactions int, started time.Time) {
	chain := chainLabel(chainID)
	s := status(err)
	roundsTotal.WithLabelValues(chain, s).Inc()
	roundDuration.WithLabelValues(chain, s).Observe(time.Since(started).Seconds())
	if err == nil {
		headersTotal.WithLabelValues(chain).Add(float64(headers))
		transactionsTotal.WithLabelValues(chain).Add(float64(transactions))
	}
}

func (m ChainIngester) ObserveWindow(chainID model.ChainID, minHeight, maxHeight uint64) {
	chain := chainLabel(chainID)
	windowMinHeight.WithLabelValues(chain).Set(float64(minHeight))
	windowMaxHeight.WithLabelValues(chain).Set(float64(maxHeight))
}

func (m ChainIngester) ObserveCheckpoint(chainID model.ChainID, height uint64) {
	checkpointHeight.WithLabelValues(chainLabel(chainID)).Set(float64(height))
}

func (m ChainIngester) ObserveDecodeFailure(chainID model.ChainID) {
	decodeFailuresTotal.WithLabelValues(chainLabel(chainID)).Inc()
}

func (m ChainIngester) ObserveIdle(chainID model.ChainID) {
	idleTotal.WithLabelValues(chainLabel(chainID)).Inc()
}

func (m ChainIngester) ObservePayloadCache(hits, misses int) {
	payloadCacheTotal.WithLabelValues("hit").Add(float64(hits))
	payloadCacheTotal.WithLabelValues("miss").Add(float64(misses))
}

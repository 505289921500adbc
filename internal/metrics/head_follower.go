package metrics

import (
	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	headsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "head_follower",
		Name:      "heads_total",
		Help:      "Count of heads received on the updates stream.",
	}, []string{"chain"})

	streamSessionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "head_follower",
		Name:      "stream_sessions_total",
		Help:      "Count of ended updates stream sessions.",
	}, []string{"status"})

	streamParseFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "head_follower",
		Name:      "parse_failures_total",
		Help:      "Count of stream events that could not be parsed.",
	})
)

// HeadFollower tracks the header updates stream.
type HeadFollower struct{}

// NewHeadFollower creates a HeadFollower metrics collector.
func NewHeadFollower() *HeadFollower {
	return &HeadFollower{}
}

func (m HeadFollower) ObserveHead(chainID model.ChainID) {
	headsTotal.WithLabelValues(chainLabel(chainID)).Inc()
}

func (m HeadFollower) ObserveSession(err error) {
	streamSessionsTotal.WithLabelValues(status(err)).Inc()
}

func (m HeadFollower) ObserveParseFailure() {
	streamParseFailuresTotal.Inc()
}

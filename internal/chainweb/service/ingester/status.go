package ingester

import (
	"sort"
	"sync"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
)

// StatusRegistry keeps the latest status of every chain worker.
type StatusRegistry struct {
	mu     sync.RWMutex
	chains map[model.ChainID]model.ChainStatus
}

func NewStatusRegistry() *StatusRegistry {
	return &StatusRegistry{chains: make(map[model.ChainID]model.ChainStatus)}
}

// Publish replaces the status of status.ChainID.
func (r *StatusRegistry) Publish(status model.ChainStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chains[status.ChainID] = status
}

// Snapshot returns all statuses ordered by chain id.
func (r *StatusRegistry) Snapshot() []model.ChainStatus {
	r.mu.RLock()
	out := make([]model.ChainStatus, 0, len(r.chains))
	for _, s := range r.chains {
		out = append(out, s)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ChainID < out[j].ChainID })
	return out
}

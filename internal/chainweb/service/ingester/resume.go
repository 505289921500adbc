package ingester

import "github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"

// WorkerCount is the number of chains to ingest. Ranges that end at or before
// the fork height predate the chain count change and use the fallback count.
func WorkerCount(cfg Config) uint64 {
	if cfg.MaxHeight <= cfg.ChainForkHeight {
		if cfg.FallbackWorkers == 0 {
			return defaultFallbackWorkers
		}
		return cfg.FallbackWorkers
	}
	return cfg.NumberOfChains
}

// ResumeHeight is the first height a chain worker fetches: one past the
// checkpoint when there is one, the fork height for chains created at the
// fork, and the configured minimum otherwise.
func ResumeHeight(cfg Config, chainID model.ChainID, checkpoint *uint64) uint64 {
	if checkpoint != nil {
		return *checkpoint + 1
	}
	if chainID > lastPreForkChain && cfg.MinHeight < cfg.ChainForkHeight {
		return cfg.ChainForkHeight
	}
	return cfg.MinHeight
}

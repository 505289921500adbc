package ingester

import "time"

const (
	defaultFallbackWorkers = 10
	defaultIdleDelay       = 10 * time.Second
	defaultFailureDelay    = 5 * time.Second

	defaultPayloadBatchSize = 50
	defaultPayloadWorkers   = 4
	defaultPayloadCacheSize = 1024

	// chains with a higher id only exist from the fork height onward
	lastPreForkChain = 9

	headBatchSize         = 500
	headFlushInterval     = 2 * time.Second
	headFlushRPS          = 10
	headBatchDrainTimeout = 10 * time.Second
)

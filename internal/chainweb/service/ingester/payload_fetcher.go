package ingester

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/goodnatureofminers/chainweb-ingester/internal/chainweb/model"
	"github.com/goodnatureofminers/chainweb-ingester/pkg/workerpool"
)

// ErrPayloadMissing means the batch response lacked a requested payload.
var ErrPayloadMissing = errors.New("payload missing from batch response")

type payloadKey struct {
	chainID model.ChainID
	hash    string
}

// cachedPayloadFetcher fetches payload batches concurrently and keeps recent
// payloads for retried windows.
type cachedPayloadFetcher struct {
	api       APIClient
	cache     *lru.Cache[payloadKey, model.BlockPayload]
	batchSize int
	workers   int
	metrics   ChainIngesterMetrics
}

func newPayloadFetcher(client APIClient, metrics ChainIngesterMetrics, batchSize, workers, cacheSize int) (*cachedPayloadFetcher, error) {
	if batchSize <= 0 {
		batchSize = defaultPayloadBatchSize
	}
	if workers <= 0 {
		workers = defaultPayloadWorkers
	}
	if cacheSize <= 0 {
		cacheSize = defaultPayloadCacheSize
	}
	cache, err := lru.New[payloadKey, model.BlockPayload](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create payload cache: %w", err)
	}
	return &cachedPayloadFetcher{
		api:       client,
		cache:     cache,
		batchSize: batchSize,
		workers:   workers,
		metrics:   metrics,
	}, nil
}

// Fetch returns the payload of every hash keyed by payload hash. Payloads are
// matched by hash, never by response position.
func (f *cachedPayloadFetcher) Fetch(ctx context.Context, chainID model.ChainID, hashes []string) (map[string]model.BlockPayload, error) {
	found := make(map[string]model.BlockPayload, len(hashes))
	missing := make([]string, 0, len(hashes))
	for _, hash := range hashes {
		if payload, ok := f.cache.Get(payloadKey{chainID: chainID, hash: hash}); ok {
			found[hash] = payload
			continue
		}
		missing = append(missing, hash)
	}
	f.metrics.ObservePayloadCache(len(found), len(missing))

	batches, err := workerpool.Map(ctx, f.workers, workerpool.Chunk(missing, f.batchSize),
		func(ctx context.Context, chunk []string) ([]model.BlockPayload, error) {
			return f.api.PayloadOutputsBatch(ctx, chainID, chunk)
		})
	if err != nil {
		return nil, fmt.Errorf("fetch payloads: %w", err)
	}

	for _, batch := range batches {
		for _, payload := range batch {
			found[payload.PayloadHash] = payload
			f.cache.Add(payloadKey{chainID: chainID, hash: payload.PayloadHash}, payload)
		}
	}

	for _, hash := range hashes {
		if _, ok := found[hash]; !ok {
			return nil, fmt.Errorf("payload %s on chain %d: %w", hash, chainID, ErrPayloadMissing)
		}
	}
	return found, nil
}

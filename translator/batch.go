package translator

import (
	"context"
	"sync"
	"time"
)

// Defaults for the batch scheduler. One group of calls is issued
// concurrently; between groups the scheduler pauses to stay under the
// backend's rate limits. The delay is static, not adaptive.
const (
	DefaultBatchSize  = 5
	DefaultBatchDelay = 1000 * time.Millisecond
)

// ItemResult is the outcome of one backend call. On failure Text holds the
// original input unchanged and Err records what went wrong.
type ItemResult struct {
	Text    string
	Err     error
	Elapsed time.Duration
}

// Batcher fans translation calls out in fixed-size groups.
type Batcher struct {
	Backend Backend
	Size    int
	Delay   time.Duration
}

func NewBatcher(backend Backend, size int, delay time.Duration) *Batcher {
	if size <= 0 {
		size = DefaultBatchSize
	}
	if delay <= 0 {
		delay = DefaultBatchDelay
	}
	return &Batcher{Backend: backend, Size: size, Delay: delay}
}

// TranslateAll translates texts in consecutive groups of Size. Calls within
// a group run concurrently and the group waits for the slowest one. Output
// order always matches input order. A failed call is recorded per item and
// does not abort the group; the only whole-run error is context
// cancellation, checked before each group and during the inter-group delay.
func (b *Batcher) TranslateAll(ctx context.Context, texts []string, sourceLang, targetLang string) ([]ItemResult, error) {
	results := make([]ItemResult, len(texts))
	for start := 0; start < len(texts); start += b.Size {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := start + b.Size
		if end > len(texts) {
			end = len(texts)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				began := time.Now()
				out, err := b.Backend.Translate(ctx, texts[i], sourceLang, targetLang)
				elapsed := time.Since(began)
				if err != nil {
					results[i] = ItemResult{Text: texts[i], Err: err, Elapsed: elapsed}
					return
				}
				results[i] = ItemResult{Text: out, Elapsed: elapsed}
			}(i)
		}
		wg.Wait()

		if end < len(texts) {
			select {
			case <-time.After(b.Delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return results, nil
}

package translator

import (
	"context"
	"fmt"
	"time"

	"github.com/germannapsix/Json-translate-app/jsontree"
)

// Detail statuses persisted per extracted leaf.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// Hard and soft limits of a single run. MaxKeys rejects the document
// outright before any backend call; MaxTranslate bounds how many leaves are
// actually submitted, the rest pass through untranslated as "skipped".
const (
	DefaultMaxKeys      = 50
	DefaultMaxTranslate = 20
	DefaultRunTimeout   = 25 * time.Second
)

// SizeLimitError rejects documents over the hard cap.
type SizeLimitError struct {
	Count int
	Limit int
}

func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("JSON contains %d translatable strings, exceeding the limit of %d", e.Count, e.Limit)
}

// TimeoutError reports that a run exceeded its wall-clock deadline. No
// partial output is returned.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("translation timed out after %s", e.Timeout)
}

// Detail is the per-leaf outcome of a run.
type Detail struct {
	Path           string  `json:"path"`
	OriginalText   string  `json:"originalText"`
	TranslatedText *string `json:"translatedText"`
	Status         string  `json:"status"`
	ErrorMessage   string  `json:"errorMessage,omitempty"`
	ElapsedMs      int64   `json:"elapsedMs"`
}

// Stats aggregates a run.
type Stats struct {
	TotalKeys       int     `json:"totalKeys"`
	TranslatedKeys  int     `json:"translatedKeys"`
	FailedKeys      int     `json:"failedKeys"`
	SkippedKeys     int     `json:"skippedKeys"`
	TotalTimeMs     int64   `json:"totalTimeMs"`
	AvgTimePerKeyMs float64 `json:"averageTimePerKey"`
}

// Result is what a completed run hands back to the caller. Persistence is
// the caller's responsibility; the pipeline itself has no side effects.
type Result struct {
	Root    *jsontree.Node
	Stats   Stats
	Details []Detail
	Warning string
}

// Limits are the per-run policy knobs, all defaulted when zero.
type Limits struct {
	MaxKeys      int
	MaxTranslate int
	BatchSize    int
	BatchDelay   time.Duration
	Timeout      time.Duration
}

func (l Limits) withDefaults() Limits {
	if l.MaxKeys <= 0 {
		l.MaxKeys = DefaultMaxKeys
	}
	if l.MaxTranslate <= 0 {
		l.MaxTranslate = DefaultMaxTranslate
	}
	if l.BatchSize <= 0 {
		l.BatchSize = DefaultBatchSize
	}
	if l.BatchDelay <= 0 {
		l.BatchDelay = DefaultBatchDelay
	}
	if l.Timeout <= 0 {
		l.Timeout = DefaultRunTimeout
	}
	return l
}

// Pipeline ties extraction, batch translation and reconstruction together.
type Pipeline struct {
	Backend Backend
	Limits  Limits
	// Progress, when set, is called after the counting phase and after
	// each completed leaf. It is advisory only; the returned Result is
	// the completion signal.
	Progress func(done, total int)
}

func NewPipeline(backend Backend, limits Limits) *Pipeline {
	return &Pipeline{Backend: backend, Limits: limits.withDefaults()}
}

// Run executes one end-to-end translation over root. The whole
// translate-and-rebuild phase races a wall-clock timeout; when the deadline
// wins, in-flight backend calls are abandoned and their results discarded.
func (p *Pipeline) Run(ctx context.Context, root *jsontree.Node, sourceLang, targetLang string) (*Result, error) {
	limits := p.Limits.withDefaults()
	began := time.Now()

	leaves := Extract(root)
	if len(leaves) > limits.MaxKeys {
		return nil, &SizeLimitError{Count: len(leaves), Limit: limits.MaxKeys}
	}
	p.report(0, len(leaves))

	if len(leaves) == 0 {
		return &Result{
			Root:    root.Clone(),
			Stats:   computeStats(nil, time.Since(began)),
			Details: []Detail{},
		}, nil
	}

	translate := leaves
	var skipped []Leaf
	if len(leaves) > limits.MaxTranslate {
		translate = leaves[:limits.MaxTranslate]
		skipped = leaves[limits.MaxTranslate:]
	}

	tctx, cancel := context.WithTimeout(ctx, limits.Timeout)
	defer cancel()

	type phaseOut struct {
		results []ItemResult
		err     error
	}
	done := make(chan phaseOut, 1)
	go func() {
		texts := make([]string, len(translate))
		for i, lf := range translate {
			texts[i] = lf.Text
		}
		batcher := NewBatcher(p.Backend, limits.BatchSize, limits.BatchDelay)
		res, err := batcher.TranslateAll(tctx, texts, sourceLang, targetLang)
		done <- phaseOut{results: res, err: err}
	}()

	var results []ItemResult
	select {
	case out := <-done:
		if out.err != nil {
			if tctx.Err() == context.DeadlineExceeded {
				return nil, &TimeoutError{Timeout: limits.Timeout}
			}
			return nil, out.err
		}
		// The deadline can expire while the final batch is in flight; the
		// batcher then hands back results whose items all failed on the
		// dead context. That is a timeout, not a partial result.
		if tctx.Err() != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, &TimeoutError{Timeout: limits.Timeout}
		}
		results = out.results
	case <-tctx.Done():
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &TimeoutError{Timeout: limits.Timeout}
	}

	details := make([]Detail, 0, len(leaves))
	translations := make(map[string]string, len(translate))
	for i, lf := range translate {
		r := results[i]
		d := Detail{
			Path:         lf.Path,
			OriginalText: lf.Text,
			ElapsedMs:    r.Elapsed.Milliseconds(),
		}
		if r.Err != nil {
			d.Status = StatusFailed
			d.ErrorMessage = r.Err.Error()
		} else {
			d.Status = StatusSuccess
			text := r.Text
			d.TranslatedText = &text
			translations[lf.Path] = text
		}
		details = append(details, d)
		p.report(i+1, len(leaves))
	}
	for _, lf := range skipped {
		details = append(details, Detail{
			Path:         lf.Path,
			OriginalText: lf.Text,
			Status:       StatusSkipped,
		})
	}
	p.report(len(leaves), len(leaves))

	rebuilt := Rebuild(root, translations)

	res := &Result{
		Root:    rebuilt,
		Stats:   computeStats(details, time.Since(began)),
		Details: details,
	}
	if len(skipped) > 0 {
		res.Warning = fmt.Sprintf("Only the first %d strings were translated; %d remaining strings were skipped", limits.MaxTranslate, len(skipped))
	}
	return res, nil
}

func (p *Pipeline) report(done, total int) {
	if p.Progress != nil {
		p.Progress(done, total)
	}
}

func computeStats(details []Detail, elapsed time.Duration) Stats {
	s := Stats{TotalKeys: len(details), TotalTimeMs: elapsed.Milliseconds()}
	for _, d := range details {
		switch d.Status {
		case StatusSuccess:
			s.TranslatedKeys++
		case StatusFailed:
			s.FailedKeys++
		case StatusSkipped:
			s.SkippedKeys++
		}
	}
	// Guard the average against an empty document.
	if s.TotalKeys > 0 {
		s.AvgTimePerKeyMs = float64(s.TotalTimeMs) / float64(s.TotalKeys)
	}
	return s
}

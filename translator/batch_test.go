package translator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeBackend records call order and timing, and fails texts listed in
// failTexts. An optional perCallDelay simulates backend latency.
type fakeBackend struct {
	mu           sync.Mutex
	calls        []string
	callTimes    []time.Time
	failTexts    map[string]bool
	perCallDelay time.Duration
}

func (f *fakeBackend) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, text)
	f.callTimes = append(f.callTimes, time.Now())
	f.mu.Unlock()
	if f.perCallDelay > 0 {
		select {
		case <-time.After(f.perCallDelay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if f.failTexts[text] {
		return "", errors.New("backend unavailable")
	}
	return "[" + targetLang + "]" + text, nil
}

func (f *fakeBackend) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func texts(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("text-%d", i)
	}
	return out
}

func TestTranslateAll_PreservesOrder(t *testing.T) {
	backend := &fakeBackend{}
	b := NewBatcher(backend, 5, time.Millisecond)

	in := texts(7)
	results, err := b.TranslateAll(context.Background(), in, "en", "es")
	if err != nil {
		t.Fatalf("TranslateAll error: %v", err)
	}
	if len(results) != len(in) {
		t.Fatalf("got %d results, want %d", len(results), len(in))
	}
	for i, r := range results {
		want := "[es]" + in[i]
		if r.Err != nil || r.Text != want {
			t.Errorf("result %d = %q (err=%v), want %q", i, r.Text, r.Err, want)
		}
	}
}

func TestTranslateAll_GroupsAndDelays(t *testing.T) {
	const delay = 120 * time.Millisecond
	backend := &fakeBackend{}
	b := NewBatcher(backend, 5, delay)

	began := time.Now()
	results, err := b.TranslateAll(context.Background(), texts(12), "en", "fr")
	elapsed := time.Since(began)
	if err != nil {
		t.Fatalf("TranslateAll error: %v", err)
	}
	if len(results) != 12 {
		t.Fatalf("got %d results, want 12", len(results))
	}
	// 12 texts with batch size 5 → groups of 5,5,2 and exactly two
	// inter-group delays (none after the last group).
	if elapsed < 2*delay {
		t.Fatalf("elapsed %s, want at least two delays (%s)", elapsed, 2*delay)
	}
	if elapsed >= 3*delay {
		t.Fatalf("elapsed %s suggests a delay after the final group", elapsed)
	}

	backend.mu.Lock()
	defer backend.mu.Unlock()
	gap1 := backend.callTimes[5].Sub(backend.callTimes[0])
	gap2 := backend.callTimes[10].Sub(backend.callTimes[5])
	if gap1 < delay || gap2 < delay {
		t.Errorf("inter-group gaps too small: %s, %s", gap1, gap2)
	}
}

func TestTranslateAll_PerItemFailureDoesNotAbortGroup(t *testing.T) {
	backend := &fakeBackend{failTexts: map[string]bool{"text-1": true}}
	b := NewBatcher(backend, 5, time.Millisecond)

	results, err := b.TranslateAll(context.Background(), texts(3), "en", "de")
	if err != nil {
		t.Fatalf("TranslateAll error: %v", err)
	}
	if results[1].Err == nil {
		t.Fatal("expected error recorded for failed item")
	}
	if results[1].Text != "text-1" {
		t.Errorf("failed item text = %q, want original text", results[1].Text)
	}
	for _, i := range []int{0, 2} {
		if results[i].Err != nil {
			t.Errorf("item %d should have succeeded: %v", i, results[i].Err)
		}
		if !strings.HasPrefix(results[i].Text, "[de]") {
			t.Errorf("item %d text = %q", i, results[i].Text)
		}
	}
}

func TestTranslateAll_CancelledBetweenGroups(t *testing.T) {
	backend := &fakeBackend{}
	b := NewBatcher(backend, 2, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := b.TranslateAll(ctx, texts(6), "en", "it")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if n := backend.callCount(); n != 2 {
		t.Errorf("backend calls = %d, want first group only (2)", n)
	}
}

func TestTranslateAll_Empty(t *testing.T) {
	b := NewBatcher(&fakeBackend{}, 5, time.Millisecond)
	results, err := b.TranslateAll(context.Background(), nil, "en", "ja")
	if err != nil {
		t.Fatalf("TranslateAll error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("got %d results for empty input", len(results))
	}
}

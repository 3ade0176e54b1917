package insights

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonathan/career-pulse/internal/catalog"
	"github.com/jonathan/career-pulse/internal/llm"
)

// scriptedSource makes fallback output fully predictable: IntN always picks
// the lower bound, jitter is zero and shuffles keep the catalog order.
type scriptedSource struct{}

func (scriptedSource) IntN(int) int { return 0 }
func (scriptedSource) Float64() float64 { return 0.5 }
func (scriptedSource) Shuffle(int, func(i, j int)) {}

type fakeCompleter struct {
	response string
	err      error
	block    bool
	panicMsg string

	calls      atomic.Int32
	mu         sync.Mutex
	lastPrompt string
	lastTier   llm.ModelTier
}

func (f *fakeCompleter) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return f.generate(ctx, prompt, tier)
}

func (f *fakeCompleter) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return f.generate(ctx, prompt, tier)
}

func (f *fakeCompleter) generate(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.lastPrompt = prompt
	f.lastTier = tier
	f.mu.Unlock()

	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.response, f.err
}

func (f *fakeCompleter) prompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastPrompt
}

type recordedInsight struct {
	topic, source, reason string
}

type fakeRecorder struct {
	mu          sync.Mutex
	insights    []recordedInsight
	completions int
}

func (r *fakeRecorder) RecordInsight(topic, source, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insights = append(r.insights, recordedInsight{topic, source, reason})
}

func (r *fakeRecorder) RecordCompletion(string, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completions++
}

var fixedNow = func() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func newScriptedGenerator() *FallbackGenerator {
	gen := NewFallbackGenerator(catalog.MustDefault(), scriptedSource{})
	gen.now = fixedNow
	return gen
}

func jsonString(v any) (string, error) {
	data, err := json.Marshal(v)
	return string(data), err
}

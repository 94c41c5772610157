package turn

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/toolscope/toolscope/core/selection"
	"github.com/toolscope/toolscope/core/session"
	"github.com/toolscope/toolscope/providers/embedding"
	"github.com/toolscope/toolscope/providers/index"
	"github.com/toolscope/toolscope/providers/index/memindex"
	"github.com/toolscope/toolscope/providers/tool"
)

// stubEmbedder assigns one vector dimension per vocab term present in the
// lowercased text, giving deterministic similarities for tests.
type stubEmbedder struct {
	vocab   map[string]int
	dims    int
	failErr error
}

func (s *stubEmbedder) Initialize(context.Context) error { return nil }

func (s *stubEmbedder) Dimensions() int { return s.dims }

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	vector := make([]float32, s.dims)
	lower := strings.ToLower(text)
	for term, dim := range s.vocab {
		if strings.Contains(lower, term) {
			vector[dim] = 1
		}
	}
	return vector, nil
}

func (s *stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vector, err := s.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vector
	}
	return vectors, nil
}

type noopInput struct{}

type noopOutput struct {
	OK bool `json:"ok"`
}

func noop(_ context.Context, _ noopInput) (noopOutput, error) {
	return noopOutput{OK: true}, nil
}

// newTestRunner wires a catalog with two disjoint-keyword tools, a stub
// embedder, and an in-memory index into a Runner.
func newTestRunner(t *testing.T) (*Runner, *stubEmbedder) {
	t.Helper()

	catalog := tool.NewCatalogWithTools(
		tool.NewTool("get_weather", noop,
			tool.WithKeywords("weather", "forecast", "temperature")),
		tool.NewTool("send_email", noop,
			tool.WithKeywords("email", "mail", "message")),
	)

	embedder := &stubEmbedder{
		dims: 4,
		vocab: map[string]int{
			"weather": 0,
			"email":   1,
		},
	}

	idx := memindex.New(4)
	engine := selection.NewEngine(embedder, idx)
	if err := engine.IndexCatalog(context.Background(), catalog); err != nil {
		t.Fatalf("index catalog: %v", err)
	}

	return NewRunner(catalog, engine, session.NewStore(), WithTopK(3), WithThreshold(0.6)), embedder
}

func names(tools []tool.GenericTool) []string {
	out := make([]string, len(tools))
	for i, t := range tools {
		out[i] = t.ToolInfo().Name
	}
	return out
}

// TestRunner_EndToEnd runs the two-turn scenario: a weather query selects
// get_weather, an email query selects send_email, and after turn two the
// session holds both in first-appearance order.
func TestRunner_EndToEnd(t *testing.T) {
	ctx := context.Background()
	runner, _ := newTestRunner(t)

	first, err := runner.Run(ctx, "user-1", "what's the weather in Boston")
	if err != nil {
		t.Fatalf("turn 1: %v", err)
	}
	if len(first) != 1 || first[0].ToolInfo().Name != "get_weather" {
		t.Fatalf("turn 1: expected [get_weather], got %v", names(first))
	}

	second, err := runner.Run(ctx, "user-1", "email john about the meeting")
	if err != nil {
		t.Fatalf("turn 2: %v", err)
	}
	want := []string{"get_weather", "send_email"}
	if len(second) != 2 || second[0].ToolInfo().Name != want[0] || second[1].ToolInfo().Name != want[1] {
		t.Fatalf("turn 2: expected %v, got %v", want, names(second))
	}

	if active := runner.Session("user-1").ActiveTools(); len(active) != 2 {
		t.Fatalf("expected persisted set %v, got %v", want, names(active))
	}
}

// TestRunner_RepeatQueryDoesNotDuplicate verifies re-selecting an already
// active tool keeps one entry.
func TestRunner_RepeatQueryDoesNotDuplicate(t *testing.T) {
	ctx := context.Background()
	runner, _ := newTestRunner(t)

	for i := 0; i < 3; i++ {
		got, err := runner.Run(ctx, "user-1", "weather please")
		if err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
		if len(got) != 1 {
			t.Fatalf("turn %d: expected 1 active tool, got %v", i, names(got))
		}
	}
}

// TestRunner_FailedTurnLeavesSessionIntact verifies an embedding failure
// reports an error without touching the accumulated set, and the session
// remains usable afterwards.
func TestRunner_FailedTurnLeavesSessionIntact(t *testing.T) {
	ctx := context.Background()
	runner, embedder := newTestRunner(t)

	if _, err := runner.Run(ctx, "user-1", "what's the weather"); err != nil {
		t.Fatalf("seed turn: %v", err)
	}

	embedder.failErr = embedding.ErrEmptyEmbedding
	if _, err := runner.Run(ctx, "user-1", "email someone"); !errors.Is(err, embedding.ErrEmptyEmbedding) {
		t.Fatalf("expected embedding error, got %v", err)
	}
	if active := runner.Session("user-1").ActiveTools(); len(active) != 1 {
		t.Fatalf("failed turn mutated session: %v", names(active))
	}

	embedder.failErr = nil
	got, err := runner.Run(ctx, "user-1", "email someone")
	if err != nil {
		t.Fatalf("recovery turn: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected recovery to accumulate, got %v", names(got))
	}
}

// TestRunner_IndexedButUnregisteredToolIsDropped verifies candidates the
// catalog no longer knows are silently filtered out of the merged set.
func TestRunner_IndexedButUnregisteredToolIsDropped(t *testing.T) {
	ctx := context.Background()

	// Index an entry with no catalog counterpart, as if its tool had been
	// unregistered after indexing.
	idx := memindex.New(4)
	embedder := &stubEmbedder{dims: 4, vocab: map[string]int{"ghost": 2}}
	engine := selection.NewEngine(embedder, idx)
	if err := idx.Upsert(ctx, index.Record{ToolID: "vanished_tool", ToolName: "vanished_tool", Vector: []float32{0, 0, 1, 0}}); err != nil {
		t.Fatalf("upsert ghost record: %v", err)
	}
	runner := NewRunner(tool.NewCatalog(), engine, session.NewStore())

	got, err := runner.Run(ctx, "user-1", "ghost query")
	if err != nil {
		t.Fatalf("turn: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected unresolved candidates to be dropped, got %v", names(got))
	}
}

// TestRunner_SessionsAreIndependent verifies different users accumulate
// independently.
func TestRunner_SessionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	runner, _ := newTestRunner(t)

	if _, err := runner.Run(ctx, "alice", "weather today"); err != nil {
		t.Fatalf("alice turn: %v", err)
	}
	if _, err := runner.Run(ctx, "bob", "send an email"); err != nil {
		t.Fatalf("bob turn: %v", err)
	}

	aliceTools := runner.Session("alice").ActiveTools()
	bobTools := runner.Session("bob").ActiveTools()
	if len(aliceTools) != 1 || aliceTools[0].ToolInfo().Name != "get_weather" {
		t.Fatalf("alice: unexpected set %v", names(aliceTools))
	}
	if len(bobTools) != 1 || bobTools[0].ToolInfo().Name != "send_email" {
		t.Fatalf("bob: unexpected set %v", names(bobTools))
	}
}

// TestRunner_SessionReset verifies an explicit reset empties the set.
func TestRunner_SessionReset(t *testing.T) {
	ctx := context.Background()
	runner, _ := newTestRunner(t)

	if _, err := runner.Run(ctx, "user-1", "weather today"); err != nil {
		t.Fatalf("turn: %v", err)
	}
	runner.Session("user-1").Reset()
	if active := runner.Session("user-1").ActiveTools(); len(active) != 0 {
		t.Fatalf("expected empty set after reset, got %v", names(active))
	}
}

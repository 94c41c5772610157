package tool

import (
	"context"
	"sync"
	"testing"
)

// mockTool is a simple GenericTool implementation for catalog tests.
type mockTool struct {
	name   string
	result string
}

func (m *mockTool) ToolInfo() Descriptor {
	return Descriptor{
		Name:        m.name,
		Description: "Mock tool for testing",
	}
}

func (m *mockTool) Call(ctx context.Context, inputJSON string) (string, error) {
	return m.result, nil
}

func TestNewCatalog(t *testing.T) {
	catalog := NewCatalog()
	if catalog == nil {
		t.Fatal("NewCatalog returned nil")
	}
	if catalog.Size() != 0 {
		t.Errorf("new catalog should be empty, got size %d", catalog.Size())
	}
}

func TestNewCatalogWithTools(t *testing.T) {
	catalog := NewCatalogWithTools(
		&mockTool{name: "tool_a", result: "a"},
		&mockTool{name: "tool_b", result: "b"},
	)

	if catalog.Size() != 2 {
		t.Errorf("expected catalog size 2, got %d", catalog.Size())
	}
	if !catalog.Has("tool_a") || !catalog.Has("tool_b") {
		t.Error("catalog should contain both registered tools")
	}
}

// TestCatalog_RegisterOverwrites verifies re-registering the same name
// replaces the entry while keeping exactly one tool under that key.
func TestCatalog_RegisterOverwrites(t *testing.T) {
	catalog := NewCatalog()
	first := &mockTool{name: "dup", result: "first"}
	second := &mockTool{name: "dup", result: "second"}

	catalog.Register(first)
	catalog.Register(second)

	if catalog.Size() != 1 {
		t.Fatalf("expected size 1 after overwrite, got %d", catalog.Size())
	}
	got, ok := catalog.Get("dup")
	if !ok {
		t.Fatal("tool should exist after overwrite")
	}
	if got != GenericTool(second) {
		t.Error("expected the later registration to win")
	}
}

func TestCatalog_Get(t *testing.T) {
	catalog := NewCatalog()
	registered := &mockTool{name: "present", result: "ok"}
	catalog.Register(registered)

	got, ok := catalog.Get("present")
	if !ok {
		t.Fatal("registered tool should be found")
	}
	if got != GenericTool(registered) {
		t.Error("retrieved tool is not the registered tool")
	}

	if _, ok := catalog.Get("absent"); ok {
		t.Error("unregistered name should not be found")
	}
}

// TestCatalog_GetMultiple_OrderAndOmission verifies the ordered partial
// lookup: missing names are silently dropped and the relative order of found
// names is preserved.
func TestCatalog_GetMultiple_OrderAndOmission(t *testing.T) {
	a := &mockTool{name: "a", result: "a"}
	b := &mockTool{name: "b", result: "b"}
	catalog := NewCatalogWithTools(a, b)

	got := catalog.GetMultiple([]string{"a", "missing", "b"})

	if len(got) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(got))
	}
	if got[0] != GenericTool(a) || got[1] != GenericTool(b) {
		t.Errorf("expected [a b] in order, got [%s %s]",
			got[0].ToolInfo().Name, got[1].ToolInfo().Name)
	}
}

// TestCatalog_GetMultiple_AllMissing verifies an all-miss lookup returns an
// empty, non-nil slice rather than an error.
func TestCatalog_GetMultiple_AllMissing(t *testing.T) {
	catalog := NewCatalog()
	got := catalog.GetMultiple([]string{"x", "y"})
	if got == nil {
		t.Fatal("expected non-nil slice")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(got))
	}
}

func TestCatalog_All_ReturnsCopy(t *testing.T) {
	catalog := NewCatalogWithTools(&mockTool{name: "only", result: "x"})

	tools := catalog.All()
	delete(tools, "only")

	if !catalog.Has("only") {
		t.Error("mutating the returned map must not affect the catalog")
	}
}

// TestCatalog_ConcurrentReads exercises parallel lookups against a populated
// catalog; the race detector flags unsynchronized access.
func TestCatalog_ConcurrentReads(t *testing.T) {
	catalog := NewCatalogWithTools(
		&mockTool{name: "a", result: "a"},
		&mockTool{name: "b", result: "b"},
	)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				catalog.Get("a")
				catalog.GetMultiple([]string{"a", "missing", "b"})
				catalog.Size()
			}
		}()
	}
	wg.Wait()
}

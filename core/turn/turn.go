package turn

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/toolscope/toolscope/core/selection"
	"github.com/toolscope/toolscope/core/session"
	"github.com/toolscope/toolscope/providers/tool"
)

const (
	// DefaultTopK caps how many candidates a query may add per turn.
	DefaultTopK = 5
	// DefaultThreshold is the minimum (exclusive) cosine similarity for a
	// tool to be considered relevant to a query.
	DefaultThreshold = 0.6
)

// Runner orchestrates one conversational turn: select candidate tools for
// the query, resolve them against the catalog, merge them into the session's
// accumulated set, and persist the result. The merged set is what the caller
// exposes to the agent for this turn.
type Runner struct {
	catalog   *tool.Catalog
	engine    *selection.Engine
	sessions  *session.Store
	topK      int
	threshold float64
}

// Option configures optional Runner behavior.
type Option func(*Runner)

// WithTopK overrides the per-turn candidate cap (default 5).
func WithTopK(topK int) Option {
	return func(r *Runner) {
		if topK > 0 {
			r.topK = topK
		}
	}
}

// WithThreshold overrides the similarity threshold (default 0.6). Candidates
// scoring exactly the threshold are excluded.
func WithThreshold(threshold float64) Option {
	return func(r *Runner) {
		if threshold >= 0 && threshold <= 1 {
			r.threshold = threshold
		}
	}
}

// NewRunner creates a turn runner over an already populated catalog, a
// selection engine whose index covers that catalog, and a session store.
func NewRunner(catalog *tool.Catalog, engine *selection.Engine, sessions *session.Store, opts ...Option) *Runner {
	runner := &Runner{
		catalog:   catalog,
		engine:    engine,
		sessions:  sessions,
		topK:      DefaultTopK,
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(runner)
	}
	return runner
}

// Run processes one turn for userID and returns the session's merged active
// tool set. Turns within a session are serialized; a failed turn (embedding
// or index error) leaves the session's active set untouched and the session
// usable for the next turn.
//
// Similarity scores are used only to rank and filter candidates; past the
// selection step membership is all that matters, so they are discarded when
// resolving candidates against the catalog. Candidates without a catalog
// entry are silently dropped there as well.
func (r *Runner) Run(ctx context.Context, userID, queryText string) ([]tool.GenericTool, error) {
	state := r.sessions.Get(userID)

	return state.Update(func(active []tool.GenericTool) ([]tool.GenericTool, error) {
		matches, err := r.engine.SelectTools(ctx, queryText, r.topK, r.threshold)
		if err != nil {
			return nil, fmt.Errorf("turn: select tools: %w", err)
		}

		names := make([]string, len(matches))
		for i, match := range matches {
			names[i] = match.ToolID
		}
		incoming := r.catalog.GetMultiple(names)

		merged := session.MergeAccumulate(active, incoming)

		slog.Debug("turn completed",
			"user_id", userID,
			"candidates", len(matches),
			"resolved", len(incoming),
			"active_tools", len(merged),
		)
		return merged, nil
	})
}

// Session exposes the session state for userID, creating it on first use.
// Useful for inspecting or resetting a conversation's accumulated tools.
func (r *Runner) Session(userID string) *session.State {
	return r.sessions.Get(userID)
}

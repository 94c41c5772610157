package selection

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/toolscope/toolscope/providers/embedding"
	"github.com/toolscope/toolscope/providers/index"
	"github.com/toolscope/toolscope/providers/tool"
)

// Engine narrows a tool catalog to the entries semantically closest to a
// query. It owns both directions of index traffic: the startup write path
// ([Engine.IndexCatalog]) and the per-turn read path ([Engine.SelectTools]).
//
// The engine never touches the catalog contents or any session state; given
// the same index contents, SelectTools is a pure function of its inputs.
type Engine struct {
	embedder embedding.Provider
	idx      index.Index
}

// NewEngine creates a selection engine over the given embedding provider and
// similarity index. Both are constructed once at startup and shared; the
// engine holds references, not ownership.
func NewEngine(embedder embedding.Provider, idx index.Index) *Engine {
	return &Engine{
		embedder: embedder,
		idx:      idx,
	}
}

// IndexCatalog embeds the search text of every registered tool and upserts
// one record per tool into the similarity index. Upserts are idempotent, so
// re-indexing an unchanged catalog is safe. Tools are processed in name
// order to keep registration deterministic.
func (e *Engine) IndexCatalog(ctx context.Context, catalog *tool.Catalog) error {
	tools := catalog.All()

	names := make([]string, 0, len(tools))
	for name := range tools {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil
	}

	sourceTexts := make([]string, len(names))
	for i, name := range names {
		sourceTexts[i] = tools[name].ToolInfo().SearchText()
	}

	vectors, err := e.embedder.EmbedBatch(ctx, sourceTexts)
	if err != nil {
		return fmt.Errorf("selection: embed catalog: %w", err)
	}

	for i, name := range names {
		info := tools[name].ToolInfo()

		rec := index.Record{
			ToolID:      info.Name,
			ToolName:    info.Name,
			Description: info.Description,
			Keywords:    info.Keywords,
			SourceText:  sourceTexts[i],
			Vector:      vectors[i],
		}
		if info.Parameters != nil {
			if rec.Parameters, err = json.Marshal(info.Parameters); err != nil {
				return fmt.Errorf("selection: marshal parameters for %s: %w", info.Name, err)
			}
		}
		if rec.Definition, err = json.Marshal(info); err != nil {
			return fmt.Errorf("selection: marshal definition for %s: %w", info.Name, err)
		}

		if err := e.idx.Upsert(ctx, rec); err != nil {
			return fmt.Errorf("selection: index %s: %w", info.Name, err)
		}
	}

	slog.Info("tool catalog indexed", "tools", len(names))
	return nil
}

// SelectTools embeds the query text and returns the tool ids whose stored
// vectors score strictly above threshold, capped at topK, highest similarity
// first. Embedding failures (including a provider that cannot lazily
// initialize) propagate as typed errors from the embedding package.
func (e *Engine) SelectTools(ctx context.Context, queryText string, topK int, threshold float64) ([]index.Match, error) {
	vector, err := e.embedder.Embed(ctx, queryText)
	if err != nil {
		return nil, fmt.Errorf("selection: embed query: %w", err)
	}

	matches, err := e.idx.Query(ctx, vector, topK, threshold)
	if err != nil {
		return nil, fmt.Errorf("selection: query index: %w", err)
	}
	return matches, nil
}

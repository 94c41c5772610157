// Command toolscope runs an interactive loop over the semantic tool
// selection engine: each line of input is treated as one conversational
// turn, and the accumulated tool set for the session is printed after it.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"

	"github.com/toolscope/toolscope/core/config"
	"github.com/toolscope/toolscope/core/selection"
	"github.com/toolscope/toolscope/core/session"
	"github.com/toolscope/toolscope/core/turn"
	"github.com/toolscope/toolscope/providers/embedding/openaiembed"
	"github.com/toolscope/toolscope/providers/index"
	"github.com/toolscope/toolscope/providers/index/memindex"
	"github.com/toolscope/toolscope/providers/index/pgindex"
	"github.com/toolscope/toolscope/providers/tool"
	"github.com/toolscope/toolscope/providers/tool/calculator"
	"github.com/toolscope/toolscope/providers/tool/demo"
	"github.com/toolscope/toolscope/providers/tool/webfetch"
)

const sessionID = "cli"

func main() {
	ctx := context.Background()

	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	catalog := tool.NewCatalogWithTools(demo.Tools()...)
	catalog.Register(calculator.New())
	catalog.Register(webfetch.New())

	embedder := openaiembed.New(cfg.EmbeddingModel,
		openaiembed.WithBaseURL(cfg.EmbeddingBaseURL),
		openaiembed.WithAPIKey(cfg.EmbeddingAPIKey),
		openaiembed.WithDimensions(cfg.EmbeddingDimensions),
	)

	idx, cleanup, err := buildIndex(ctx, cfg)
	if err != nil {
		slog.Error("index setup failed", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	engine := selection.NewEngine(embedder, idx)
	if err := engine.IndexCatalog(ctx, catalog); err != nil {
		slog.Error("catalog indexing failed", "error", err)
		os.Exit(1)
	}

	runner := turn.NewRunner(catalog, engine, session.NewStore(),
		turn.WithTopK(cfg.TopK),
		turn.WithThreshold(cfg.Threshold),
	)

	fmt.Printf("toolscope: %d tools indexed. Type a query, or 'exit' to quit.\n", catalog.Size())
	repl(ctx, runner)
}

// buildIndex returns a pgvector-backed index when DATABASE_URL is set, and
// an in-memory index otherwise. The cleanup closes the pool when one exists.
func buildIndex(ctx context.Context, cfg config.Config) (index.Index, func(), error) {
	if cfg.DatabaseURL == "" {
		slog.Info("no DATABASE_URL set, using in-memory index")
		return memindex.New(cfg.EmbeddingDimensions), func() {}, nil
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	if cfg.PoolMaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.PoolMaxConns)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}

	pg := pgindex.New(pool, pgindex.WithDimensions(cfg.EmbeddingDimensions))
	if err := pg.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ensure schema: %w", err)
	}
	return pg, pool.Close, nil
}

// repl reads one query per line. Blank lines re-prompt, "exit" quits, and a
// failed turn reports its error without ending the session.
func repl(ctx context.Context, runner *turn.Runner) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			fmt.Println("bye")
			return
		}

		active, err := runner.Run(ctx, sessionID, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "turn failed: %v\n", err)
			continue
		}

		fmt.Printf("active tools (%d):\n", len(active))
		for _, tl := range active {
			info := tl.ToolInfo()
			fmt.Printf("  - %s: %s\n", info.Name, info.Description)
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Error("reading input", "error", err)
		os.Exit(1)
	}
}

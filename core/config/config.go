package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds everything the CLI needs to assemble a running engine.
// Values come from environment variables; load a .env file beforehand if
// desired (the CLI does).
type Config struct {
	// DatabaseURL is a PostgreSQL connection string. Empty selects the
	// in-memory index instead of pgvector.
	DatabaseURL string

	// EmbeddingBaseURL is the base URL of an OpenAI-compatible embeddings
	// API, without the /v1/embeddings suffix.
	EmbeddingBaseURL string
	EmbeddingAPIKey  string
	EmbeddingModel   string
	// EmbeddingDimensions must match the index's vector width.
	EmbeddingDimensions int

	// TopK caps candidates per turn; Threshold is the exclusive minimum
	// similarity.
	TopK      int
	Threshold float64

	// PoolMaxConns bounds the pgx pool size. Zero keeps the pgx default.
	PoolMaxConns int

	// AgentModel is passed through to whatever agent consumes the selected
	// tools; the engine itself never calls a language model.
	AgentModel string
}

const (
	defaultDimensions = 384
	defaultTopK       = 5
	defaultThreshold  = 0.6
)

// FromEnv reads configuration from the process environment, applying
// defaults and validating ranges. Any malformed value is an error; callers
// are expected to treat that as fatal before serving turns.
func FromEnv() (Config, error) {
	cfg := Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		EmbeddingBaseURL: os.Getenv("EMBEDDING_BASE_URL"),
		EmbeddingAPIKey:  os.Getenv("EMBEDDING_API_KEY"),
		EmbeddingModel:   os.Getenv("EMBEDDING_MODEL"),
		AgentModel:       os.Getenv("AGENT_MODEL"),
		Threshold:        defaultThreshold,
	}

	if cfg.EmbeddingBaseURL == "" {
		return Config{}, fmt.Errorf("config: EMBEDDING_BASE_URL is required")
	}
	if cfg.EmbeddingModel == "" {
		return Config{}, fmt.Errorf("config: EMBEDDING_MODEL is required")
	}

	var err error
	if cfg.EmbeddingDimensions, err = intVar("EMBEDDING_DIMENSIONS", defaultDimensions); err != nil {
		return Config{}, err
	}
	if cfg.EmbeddingDimensions <= 0 {
		return Config{}, fmt.Errorf("config: EMBEDDING_DIMENSIONS must be positive, got %d", cfg.EmbeddingDimensions)
	}

	if cfg.TopK, err = intVar("TOOLS_TOP_K", defaultTopK); err != nil {
		return Config{}, err
	}
	if cfg.TopK <= 0 {
		return Config{}, fmt.Errorf("config: TOOLS_TOP_K must be positive, got %d", cfg.TopK)
	}

	if raw := os.Getenv("TOOLS_THRESHOLD"); raw != "" {
		cfg.Threshold, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse TOOLS_THRESHOLD %q: %w", raw, err)
		}
		if cfg.Threshold < 0 || cfg.Threshold > 1 {
			return Config{}, fmt.Errorf("config: TOOLS_THRESHOLD must be in [0, 1], got %g", cfg.Threshold)
		}
	}

	if cfg.PoolMaxConns, err = intVar("PG_POOL_MAX_CONNS", 0); err != nil {
		return Config{}, err
	}
	if cfg.PoolMaxConns < 0 {
		return Config{}, fmt.Errorf("config: PG_POOL_MAX_CONNS must not be negative, got %d", cfg.PoolMaxConns)
	}

	return cfg, nil
}

func intVar(name string, fallback int) (int, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s %q: %w", name, raw, err)
	}
	return value, nil
}

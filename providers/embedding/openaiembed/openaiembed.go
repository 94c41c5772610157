package openaiembed

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sort"
	"sync"

	"github.com/toolscope/toolscope/internal/utils"
	"github.com/toolscope/toolscope/providers/embedding"
)

const (
	defaultBaseURL     = "https://api.openai.com/v1"
	embeddingsEndpoint = "/embeddings"

	// initProbeText is embedded once during Initialize to verify the
	// endpoint and model are reachable before any turn is served.
	initProbeText = "ping"
)

// Client implements [embedding.Provider] against any OpenAI-compatible
// /v1/embeddings endpoint: the hosted OpenAI API, or a local server fronting
// a sentence-embedding model (the 384-dimension default matches MiniLM-class
// models commonly served locally).
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	dimensions int
	httpClient *http.Client

	mu          sync.Mutex
	initialized bool
}

// Compile-time check: Client must implement embedding.Provider.
var _ embedding.Provider = (*Client)(nil)

// Option configures optional Client behavior.
type Option func(*Client)

// WithBaseURL overrides the API base URL (default https://api.openai.com/v1).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithAPIKey sets the bearer token sent with each request. Local embedding
// servers typically need none.
func WithAPIKey(apiKey string) Option {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// WithDimensions overrides the expected vector length (default 384). The
// value is also forwarded to models that support server-side dimension
// reduction.
func WithDimensions(dimensions int) Option {
	return func(c *Client) {
		if dimensions > 0 {
			c.dimensions = dimensions
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// New creates a Client for the given embedding model. The API key defaults to
// the OPENAI_API_KEY environment variable and the base URL to
// OPENAI_API_BASE_URL when set.
func New(model string, opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     os.Getenv("OPENAI_API_KEY"),
		model:      model,
		dimensions: embedding.DefaultDimensions,
		httpClient: &http.Client{},
	}
	if envBase := os.Getenv("OPENAI_API_BASE_URL"); envBase != "" {
		client.baseURL = envBase
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Dimensions returns the fixed vector length this client produces.
func (c *Client) Dimensions() int {
	return c.dimensions
}

// Initialize verifies the endpoint serves the configured model by embedding
// a short probe text. It is idempotent and safe to call concurrently; after
// the first success subsequent calls return immediately.
func (c *Client) Initialize(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return nil
	}

	vectors, err := c.request(ctx, []string{initProbeText})
	if err != nil {
		return fmt.Errorf("openaiembed: initialize: %w", err)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return fmt.Errorf("openaiembed: initialize: %w", embedding.ErrEmptyEmbedding)
	}

	c.initialized = true
	return nil
}

// ensureInitialized lazily initializes the client, mapping a failed
// initialization to ErrModelNotInitialized for the caller.
func (c *Client) ensureInitialized(ctx context.Context) error {
	c.mu.Lock()
	ready := c.initialized
	c.mu.Unlock()
	if ready {
		return nil
	}
	if err := c.Initialize(ctx); err != nil {
		return fmt.Errorf("%w: %v", embedding.ErrModelNotInitialized, err)
	}
	return nil
}

// Embed converts a single text into a vector.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch converts each text into a vector, one per input in input order.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if err := c.ensureInitialized(ctx); err != nil {
		return nil, err
	}

	vectors, err := c.request(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("openaiembed: embed batch: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("openaiembed: expected %d embeddings, got %d", len(texts), len(vectors))
	}
	for i, vector := range vectors {
		if len(vector) == 0 {
			return nil, fmt.Errorf("openaiembed: input %d: %w", i, embedding.ErrEmptyEmbedding)
		}
	}
	return vectors, nil
}

// request performs one embeddings API round trip and returns the vectors in
// input order. The API may return data entries out of order, so they are
// re-sorted by index before extraction.
func (c *Client) request(ctx context.Context, texts []string) ([][]float32, error) {
	req := embeddingsRequest{
		Model: c.model,
		Input: texts,
	}

	_, resp, err := utils.DoPostSync[embeddingsResponse](ctx, c.httpClient, c.baseURL+embeddingsEndpoint, c.apiKey, req)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("empty response from embeddings API")
	}

	sort.Slice(resp.Data, func(i, j int) bool {
		return resp.Data[i].Index < resp.Data[j].Index
	})

	vectors := make([][]float32, 0, len(resp.Data))
	for _, item := range resp.Data {
		vectors = append(vectors, item.Embedding)
	}
	return vectors, nil
}

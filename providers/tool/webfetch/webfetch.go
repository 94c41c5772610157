package webfetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/toolscope/toolscope/internal/utils"
	"github.com/toolscope/toolscope/providers/tool"
)

const (
	// DefaultTimeout bounds a whole fetch unless the input overrides it.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent identifies the tool to origin servers.
	DefaultUserAgent = "toolscope-webfetch/1.0"
	// MaxBodySize caps the response body at 10MB.
	MaxBodySize = 10 * 1024 * 1024
	// maxRedirects bounds the redirect chain.
	maxRedirects = 10
)

// httpClient is shared across fetches. Per-phase timeouts keep a stalled
// server from holding a request open until the overall deadline.
var httpClient = &http.Client{
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConnsPerHost:   10,
		ForceAttemptHTTP2:     true,
	},
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return fmt.Errorf("too many redirects (>%d)", maxRedirects)
		}
		return nil
	},
}

// New returns a [tool.Tool] that fetches a web page and converts its HTML to
// Markdown.
func New() *tool.Tool[Input, Output] {
	return tool.NewTool[Input, Output](
		"web_fetch",
		Fetch,
		tool.WithDescription("Fetch a web page over HTTP or HTTPS and convert its HTML content to Markdown. Partial URLs get an https:// prefix; redirects are followed and the final URL is returned."),
		tool.WithKeywords("web", "fetch", "url", "http", "page", "website", "markdown"),
	)
}

// Fetch retrieves the page at req.URL and returns its content as Markdown.
// The final URL after redirects is reported in [Output.URL]. Bodies larger
// than [MaxBodySize] and non-200 statuses are errors.
func Fetch(ctx context.Context, req Input) (Output, error) {
	url := strings.TrimSpace(req.URL)
	if url == "" {
		return Output{}, fmt.Errorf("webfetch: URL cannot be empty")
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	timeout := DefaultTimeout
	if req.TimeoutSeconds > 0 {
		timeout = time.Duration(req.TimeoutSeconds) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Output{}, fmt.Errorf("webfetch: create request: %w", err)
	}
	userAgent := DefaultUserAgent
	if req.UserAgent != "" {
		userAgent = req.UserAgent
	}
	httpReq.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return Output{}, fmt.Errorf("webfetch: request timed out or canceled: %w", err)
		}
		return Output{}, fmt.Errorf("webfetch: fetch %s: %w", url, err)
	}
	defer utils.CloseWithLog(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return Output{}, fmt.Errorf("webfetch: unexpected status %d %s", resp.StatusCode, resp.Status)
	}

	// Read one byte past the cap so an exactly-at-limit body is
	// distinguishable from an oversized one.
	htmlBytes, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		if ctx.Err() != nil {
			return Output{}, fmt.Errorf("webfetch: timed out reading body: %w", ctx.Err())
		}
		return Output{}, fmt.Errorf("webfetch: read body: %w", err)
	}
	if len(htmlBytes) > MaxBodySize {
		return Output{}, fmt.Errorf("webfetch: response body exceeds %d bytes", MaxBodySize)
	}

	markdown, err := htmltomarkdown.ConvertString(string(htmlBytes))
	if err != nil {
		return Output{}, fmt.Errorf("webfetch: convert HTML to Markdown: %w", err)
	}

	output := Output{
		URL:      resp.Request.URL.String(),
		Markdown: markdown,
	}
	if req.IncludeHTML {
		output.HTML = string(htmlBytes)
	}
	return output, nil
}

// Input holds the fetch parameters. URL is the only required field.
type Input struct {
	URL string `json:"url" jsonschema:"description=The URL of the web page to fetch (partial URLs like 'example.com' are allowed),required"`

	// TimeoutSeconds overrides the default 30s request timeout.
	TimeoutSeconds int `json:"timeout_seconds,omitempty" jsonschema:"description=Request timeout in seconds (default 30)"`

	UserAgent string `json:"user_agent,omitempty" jsonschema:"description=Custom User-Agent header for the HTTP request"`

	// IncludeHTML also returns the raw HTML alongside the Markdown.
	IncludeHTML bool `json:"include_html,omitempty" jsonschema:"description=When true the raw HTML content is included in the output"`
}

// Output holds the fetched page. URL reflects the final destination after
// redirects; HTML is populated only when requested.
type Output struct {
	URL      string `json:"url" jsonschema:"description=The final URL after following redirects"`
	Markdown string `json:"markdown" jsonschema:"description=The page content converted to Markdown"`
	HTML     string `json:"html,omitempty" jsonschema:"description=The raw HTML content when include_html was set"`
}

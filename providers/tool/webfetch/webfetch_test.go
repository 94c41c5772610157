package webfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestFetch_ConvertsHTMLToMarkdown verifies a successful fetch returns the
// page as Markdown.
func TestFetch_ConvertsHTMLToMarkdown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><h1>Title</h1><p>Hello <strong>world</strong></p></body></html>"))
	}))
	defer server.Close()

	output, err := Fetch(context.Background(), Input{URL: server.URL})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !strings.Contains(output.Markdown, "# Title") {
		t.Errorf("expected heading in markdown, got %q", output.Markdown)
	}
	if !strings.Contains(output.Markdown, "**world**") {
		t.Errorf("expected bold text in markdown, got %q", output.Markdown)
	}
	if output.HTML != "" {
		t.Error("HTML should be empty unless requested")
	}
}

// TestFetch_IncludeHTML verifies the raw HTML is returned on request.
func TestFetch_IncludeHTML(t *testing.T) {
	const page = "<html><body><p>raw</p></body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	output, err := Fetch(context.Background(), Input{URL: server.URL, IncludeHTML: true})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if output.HTML != page {
		t.Errorf("expected raw HTML %q, got %q", page, output.HTML)
	}
}

// TestFetch_FollowsRedirects verifies the final URL is reported.
func TestFetch_FollowsRedirects(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<p>landed</p>"))
	}))
	defer target.Close()

	redirecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL, http.StatusFound)
	}))
	defer redirecting.Close()

	output, err := Fetch(context.Background(), Input{URL: redirecting.URL})
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if output.URL != target.URL {
		t.Errorf("expected final URL %q, got %q", target.URL, output.URL)
	}
}

// TestFetch_EmptyURL verifies an empty URL is rejected before any request.
func TestFetch_EmptyURL(t *testing.T) {
	if _, err := Fetch(context.Background(), Input{URL: "  "}); err == nil {
		t.Fatal("expected error for empty URL")
	}
}

// TestFetch_NonOKStatus verifies non-200 responses are errors.
func TestFetch_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := Fetch(context.Background(), Input{URL: server.URL}); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

// TestFetch_ContextCanceled verifies cancellation aborts the fetch.
func TestFetch_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<p>never read</p>"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Fetch(ctx, Input{URL: server.URL}); err == nil {
		t.Fatal("expected error for canceled context")
	}
}

// TestNew_Descriptor verifies the catalog-facing metadata.
func TestNew_Descriptor(t *testing.T) {
	info := New().ToolInfo()

	if info.Name != "web_fetch" {
		t.Errorf("expected tool name %q, got %q", "web_fetch", info.Name)
	}
	if len(info.Keywords) == 0 {
		t.Error("expected keywords for semantic retrieval")
	}
	if info.Parameters == nil {
		t.Error("expected a generated parameter schema")
	}
}

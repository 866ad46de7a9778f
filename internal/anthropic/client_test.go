package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// rewriteTransport rewrites all request URLs to point at the test server.
type rewriteTransport struct {
	base    http.RoundTripper
	baseURL string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.URL.Scheme = "http"
	req.URL.Host = t.baseURL[len("http://"):]
	if t.base != nil {
		return t.base.RoundTrip(req)
	}
	return http.DefaultTransport.RoundTrip(req)
}

func testClient(serverURL string) *Client {
	c := New("test-key", "claude-sonnet-4-5-20250929")
	c.client = &http.Client{
		Transport: &rewriteTransport{baseURL: serverURL},
	}
	return c
}

func TestComplete(t *testing.T) {
	var captured messagesRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			t.Error("missing API key header")
		}
		if r.Header.Get("anthropic-version") != apiVersion {
			t.Error("missing anthropic-version header")
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decoding request body: %v", err)
		}

		resp := messagesResponse{
			Model: "claude-sonnet-4-5-20250929",
			Content: []contentBlock{
				{Type: "text", Text: "OK"},
			},
			Usage: usage{InputTokens: 10, OutputTokens: 5},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := testClient(server.URL)
	resp, err := c.Complete(context.Background(), CompletionRequest{
		System:      "be brief",
		Prompt:      "review this",
		MaxTokens:   2000,
		Temperature: 0,
	})
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}

	if resp.Text != "OK" {
		t.Errorf("Text = %q, want %q", resp.Text, "OK")
	}
	if resp.Model != "claude-sonnet-4-5-20250929" {
		t.Errorf("Model = %q", resp.Model)
	}
	if resp.InputTokens != 10 || resp.OutputTokens != 5 {
		t.Errorf("tokens = %d/%d, want 10/5", resp.InputTokens, resp.OutputTokens)
	}

	if captured.Model != "claude-sonnet-4-5-20250929" {
		t.Errorf("request model = %q", captured.Model)
	}
	if captured.MaxTokens != 2000 {
		t.Errorf("request max_tokens = %d, want 2000", captured.MaxTokens)
	}
	if captured.Temperature != 0 {
		t.Errorf("request temperature = %v, want 0", captured.Temperature)
	}
	if captured.System != "be brief" {
		t.Errorf("request system = %q", captured.System)
	}
	if len(captured.Messages) != 1 || captured.Messages[0].Role != "user" || captured.Messages[0].Content != "review this" {
		t.Errorf("request messages = %+v", captured.Messages)
	}
}

func TestComplete_DefaultMaxTokens(t *testing.T) {
	var captured messagesRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(messagesResponse{})
	}))
	defer server.Close()

	c := testClient(server.URL)
	if _, err := c.Complete(context.Background(), CompletionRequest{Prompt: "hi"}); err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if captured.MaxTokens != defaultMaxTokens {
		t.Errorf("max_tokens = %d, want default %d", captured.MaxTokens, defaultMaxTokens)
	}
}

func TestComplete_FirstTextBlockOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(messagesResponse{
			Content: []contentBlock{
				{Type: "thinking", Text: "hmm"},
				{Type: "text", Text: "first"},
				{Type: "text", Text: "second"},
			},
		})
	}))
	defer server.Close()

	resp, err := testClient(server.URL).Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if resp.Text != "first" {
		t.Errorf("Text = %q, want first text block only", resp.Text)
	}
}

func TestComplete_NoContentBlocks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(messagesResponse{
			Model: "claude-sonnet-4-5-20250929",
			Usage: usage{InputTokens: 3},
		})
	}))
	defer server.Close()

	resp, err := testClient(server.URL).Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if resp.Text != "" {
		t.Errorf("Text = %q, want empty for responses with no text blocks", resp.Text)
	}
}

func TestComplete_AuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
		w.Write([]byte(`{"error":"unauthorized"}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected auth error")
	}
	if !IsAuthError(err) {
		t.Errorf("IsAuthError = false for %v", err)
	}
}

func TestComplete_ServiceFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(429)
		w.Write([]byte(`{"error":{"type":"rate_limit_error"}}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected error")
	}
	if IsAuthError(err) {
		t.Error("rate limit should not classify as auth error")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry the status, got: %v", err)
	}
	if !strings.Contains(err.Error(), "rate_limit_error") {
		t.Errorf("error should pass the service message through, got: %v", err)
	}
}

func TestComplete_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	_, err := testClient(server.URL).Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parsing response") {
		t.Errorf("error = %v", err)
	}
}

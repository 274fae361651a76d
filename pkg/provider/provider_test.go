package provider_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/JaimeStill/taxonomist/pkg/provider"
)

const chatCompletionBody = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "test-model",
  "choices": [
    {
      "index": 0,
      "finish_reason": "stop",
      "message": {"role": "assistant", "content": "{\"main\": \"B2C\"}"}
    }
  ],
  "usage": {"prompt_tokens": 12, "completion_tokens": 4, "total_tokens": 16}
}`

const messagesBody = `{
  "id": "msg_1",
  "type": "message",
  "role": "assistant",
  "model": "claude-test",
  "content": [{"type": "text", "text": "{\"main\": \"Pipe\"}"}],
  "stop_reason": "end_turn",
  "usage": {"input_tokens": 9, "output_tokens": 3}
}`

func finalized(t *testing.T, cfg provider.Config) *provider.Config {
	t.Helper()
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	return &cfg
}

func TestOpenAICompatibleComplete(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("path = %s, want suffix /chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		json.NewDecoder(r.Body).Decode(&captured)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatCompletionBody))
	}))
	defer srv.Close()

	cfg := finalized(t, provider.Config{
		Name:    provider.Groq,
		APIKey:  "test-key",
		BaseURL: srv.URL,
	})

	p, err := provider.New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	resp, err := p.Complete(context.Background(), provider.Request{
		System: "system text",
		Prompt: "prompt text",
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	if resp.Content != `{"main": "B2C"}` {
		t.Errorf("content = %q", resp.Content)
	}
	if resp.Usage.InputTokens != 12 {
		t.Errorf("input tokens = %d, want 12", resp.Usage.InputTokens)
	}

	if captured["model"] != "meta-llama/llama-4-maverick-17b-128e-instruct" {
		t.Errorf("model = %v", captured["model"])
	}
	if captured["temperature"] != 0.2 {
		t.Errorf("temperature = %v, want 0.2", captured["temperature"])
	}
	msgs, _ := captured["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("messages = %d, want 2", len(msgs))
	}
	if first, _ := msgs[0].(map[string]any); first["role"] != "system" {
		t.Errorf("first message role = %v, want system", first["role"])
	}
}

func TestOpenAICompatibleErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantKind provider.Kind
		sentinel error
	}{
		{"unauthorized", http.StatusUnauthorized, provider.KindAuthMissing, provider.ErrAuthMissing},
		{"forbidden", http.StatusForbidden, provider.KindAuthMissing, provider.ErrAuthMissing},
		{"rate limited", http.StatusTooManyRequests, provider.KindRateLimited, provider.ErrRateLimited},
		{"server error", http.StatusBadGateway, provider.KindNetworkFailure, provider.ErrNetworkFailure},
		{"bad request", http.StatusBadRequest, provider.KindMalformedUpstream, provider.ErrMalformedUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"error": {"message": "upstream said no: sk-secret"}}`))
			}))
			defer srv.Close()

			cfg := finalized(t, provider.Config{
				Name:    provider.OpenRouter,
				APIKey:  "sk-secret",
				BaseURL: srv.URL,
			})
			p, _ := provider.New(cfg)

			_, err := p.Complete(context.Background(), provider.Request{Prompt: "x"})
			if err == nil {
				t.Fatal("expected error")
			}

			kind, ok := provider.KindOf(err)
			if !ok {
				t.Fatalf("not a provider error: %v", err)
			}
			if kind != tt.wantKind {
				t.Errorf("kind = %s, want %s", kind, tt.wantKind)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v) = false", tt.sentinel)
			}
			if strings.Contains(err.Error(), "sk-secret") {
				t.Errorf("error message leaks credential: %s", err)
			}
			if got := calls.Load(); got != 1 {
				t.Errorf("upstream calls = %d, want 1 (sdk retries must be disabled)", got)
			}
		})
	}
}

func TestMissingCredentialFailsWithoutRequest(t *testing.T) {
	for _, name := range []string{provider.Groq, provider.OpenRouter, provider.Anthropic} {
		t.Run(name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
			}))
			defer srv.Close()

			cfg := finalized(t, provider.Config{Name: name, BaseURL: srv.URL, APIKey: ""})
			cfg.APIKey = ""
			p, err := provider.New(cfg)
			if err != nil {
				t.Fatalf("new: %v", err)
			}

			_, err = p.Complete(context.Background(), provider.Request{Prompt: "x"})
			if !errors.Is(err, provider.ErrAuthMissing) {
				t.Errorf("err = %v, want ErrAuthMissing", err)
			}
			if calls.Load() != 0 {
				t.Error("request should not be sent without credentials")
			}
		})
	}
}

func TestAnthropicComplete(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/v1/messages") {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("X-Api-Key"); got != "ant-key" {
			t.Errorf("x-api-key = %q", got)
		}
		json.NewDecoder(r.Body).Decode(&captured)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(messagesBody))
	}))
	defer srv.Close()

	cfg := finalized(t, provider.Config{
		Name:    provider.Anthropic,
		APIKey:  "ant-key",
		BaseURL: srv.URL,
		Model:   "claude-test",
	})
	p, err := provider.New(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	resp, err := p.Complete(context.Background(), provider.Request{System: "sys", Prompt: "p"})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if resp.Content != `{"main": "Pipe"}` {
		t.Errorf("content = %q", resp.Content)
	}
	if p.Name() != provider.Anthropic || p.Model() != "claude-test" {
		t.Errorf("identity = %s/%s", p.Name(), p.Model())
	}
	if _, ok := captured["system"]; !ok {
		t.Error("system prompt not sent")
	}
}

func TestAnthropicRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer srv.Close()

	cfg := finalized(t, provider.Config{Name: provider.Anthropic, APIKey: "k", BaseURL: srv.URL})
	p, _ := provider.New(cfg)

	_, err := p.Complete(context.Background(), provider.Request{Prompt: "p"})
	if !errors.Is(err, provider.ErrRateLimited) {
		t.Errorf("err = %v, want ErrRateLimited", err)
	}
}

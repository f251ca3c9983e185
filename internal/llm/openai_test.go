package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
)

func TestNewOpenAIProvider_RequiresAPIKey(t *testing.T) {
	if _, err := NewOpenAIProvider(Config{}); err == nil {
		t.Errorf("Expected error when API key is missing")
	}
}

func TestOpenAIProvider_Summarize(t *testing.T) {
	var gotReq openai.ChatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("Decode request: %v", err)
		}
		resp := openai.ChatCompletionResponse{
			Model: "gpt-4o-mini",
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleAssistant,
					Content: "The team agreed on FR001; US001 covers the export flow.",
				}},
			},
			Usage: openai.Usage{TotalTokens: 42},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	provider, err := NewOpenAIProvider(Config{
		APIKey:  "test-key",
		BaseURL: server.URL + "/v1",
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}

	resp, err := provider.Summarize(context.Background(), SummarizeRequest{
		Document:   testDocument(),
		AllowedIDs: []string{"FR001", "NFR001", "US001"},
		MaxTokens:  300,
	})
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if !strings.Contains(resp.Summary, "FR001") {
		t.Errorf("Summary = %q", resp.Summary)
	}
	if len(resp.CitedIDs) != 2 {
		t.Errorf("CitedIDs = %v, want FR001 and US001", resp.CitedIDs)
	}
	if resp.TokensUsed != 42 {
		t.Errorf("TokensUsed = %d, want 42", resp.TokensUsed)
	}

	if gotReq.MaxTokens != 300 {
		t.Errorf("MaxTokens = %d, want 300", gotReq.MaxTokens)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("Expected system + user messages, got %+v", gotReq.Messages)
	}
	if !strings.Contains(gotReq.Messages[1].Content, "FR001, NFR001, US001") {
		t.Errorf("Prompt missing ID allowlist")
	}
}

func TestOpenAIProvider_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{Model: "gpt-4o-mini"})
	}))
	defer server.Close()

	provider, err := NewOpenAIProvider(Config{APIKey: "test-key", BaseURL: server.URL + "/v1", Timeout: 5})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}

	if _, err := provider.Summarize(context.Background(), SummarizeRequest{Document: testDocument()}); err == nil {
		t.Errorf("Expected error for empty choices")
	}
}

func TestNewProvider_Factory(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		wantName string
		wantErr  bool
		wantNil  bool
	}{
		{"disabled", Config{}, "", false, true},
		{"openai", Config{Provider: "openai", APIKey: "k"}, "openai", false, false},
		{"openai without key", Config{Provider: "openai"}, "", true, false},
		{"ollama", Config{Provider: "ollama"}, "ollama", false, false},
		{"unknown", Config{Provider: "grok"}, "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider: %v", err)
			}
			if tt.wantNil {
				if provider != nil {
					t.Errorf("Expected nil provider for disabled config")
				}
				return
			}
			if provider.Name() != tt.wantName {
				t.Errorf("Name = %q, want %q", provider.Name(), tt.wantName)
			}
		})
	}
}

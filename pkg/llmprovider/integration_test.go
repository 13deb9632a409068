package llmprovider_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"invoice-assistant/config"
	"invoice-assistant/pkg/llmprovider"
	"invoice-assistant/pkg/log"
)

// TestIntegration_ConfigToManagerFlow wires config, factory and manager against a fake Ollama daemon
func TestIntegration_ConfigToManagerFlow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["stream"] != false {
			t.Errorf("expected stream=false, got %v", body["stream"])
		}
		w.Write([]byte(`{"response":" Invoice F123 is paid. ","done":true}`))
	}))
	defer srv.Close()

	cfg := &config.LLMConfig{
		Timeout: time.Second,
		Providers: []config.ProviderConfig{
			{Name: "ollama", Enabled: true, Priority: 1, BaseURL: srv.URL, Model: "llama3.2"},
		},
	}

	provider, err := llmprovider.InitializePrimary(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize provider: %v", err)
	}

	manager := llmprovider.NewManager(provider, log.Init(log.ZapConfig{Level: "error"}))
	text, err := manager.Generate(context.Background(), "prompt", cfg.Timeout)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "Invoice F123 is paid." {
		t.Errorf("Expected trimmed answer, got %q", text)
	}
}

func TestIntegration_ConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr bool
	}{
		{
			name: "ollama needs no key",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "ollama", Enabled: true, Priority: 1, Model: "llama3.2"},
			}},
		},
		{
			name: "openai with key",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1, APIKey: "sk-test", Model: "gpt-4o-mini"},
			}},
		},
		{
			name:    "nil config",
			wantErr: true,
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{},
			wantErr: true,
		},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "ollama", Enabled: false, Priority: 1, Model: "llama3.2"},
			}},
			wantErr: true,
		},
		{
			name: "openai missing API key",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1, Model: "gpt-4o-mini"},
			}},
			wantErr: true,
		},
		{
			name: "unknown provider",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "mystery", Enabled: true, Priority: 1, Model: "x"},
			}},
			wantErr: true,
		},
		{
			name: "invalid ollama base URL",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "ollama", Enabled: true, Priority: 1, BaseURL: "localhost", Model: "llama3.2"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := llmprovider.InitializeProviders(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("InitializeProviders() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestIntegration_PrimaryByPriority verifies the lowest priority number wins and broken providers are skipped
func TestIntegration_PrimaryByPriority(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "ollama", Enabled: true, Priority: 10, Model: "llama3.2"},
			{Name: "openai", Enabled: true, Priority: 1, APIKey: "sk-test", Model: "gpt-4o-mini"},
			{Name: "openai", Enabled: true, Priority: 0, Model: "gpt-4o-mini"}, // no key, skipped
		},
	}

	providers, err := llmprovider.InitializeProviders(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "openai" || providers[1].Name() != "ollama" {
		t.Errorf("Unexpected order: %s, %s", providers[0].Name(), providers[1].Name())
	}

	primary, err := llmprovider.InitializePrimary(cfg)
	if err != nil {
		t.Fatalf("InitializePrimary: %v", err)
	}
	if primary.Name() != "openai" {
		t.Errorf("Expected openai as primary, got %s", primary.Name())
	}
}

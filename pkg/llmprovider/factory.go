package llmprovider

import (
	"fmt"
	"sort"
	"strings"

	"invoice-assistant/config"
	"invoice-assistant/pkg/ollama"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	// Stable so equal priorities keep their config order
	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("%s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// InitializePrimary returns the first provider that initializes, in priority order.
// Answers make a single attempt, so lower priority providers are never called.
func InitializePrimary(cfg *config.LLMConfig) (Provider, error) {
	providers, err := InitializeProviders(cfg)
	if err != nil {
		return nil, err
	}
	return providers[0], nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	switch cfg.Name {
	case "ollama":
		client, err := ollama.New(ollama.Config{
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return NewOllamaAdapter(client), nil

	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
		}
		return NewOpenAIAdapter(cfg.APIKey, cfg.BaseURL, cfg.Model), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

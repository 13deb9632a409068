package llmprovider

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"invoice-assistant/pkg/ollama"
)

// OllamaAdapter adapts pkg/ollama to llmprovider.Provider interface
type OllamaAdapter struct {
	client ollama.IOllama
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client ollama.IOllama) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OllamaAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.Generate(ctx, &ollama.GenerateRequest{
		Model:  a.client.Model(),
		Prompt: req.Prompt,
		Stream: false,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Content:      resp.Response,
		ProviderName: "ollama",
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}, nil
}

// Name returns provider name
func (a *OllamaAdapter) Name() string {
	return "ollama"
}

// Model returns model name
func (a *OllamaAdapter) Model() string {
	return a.client.Model()
}

// chatCompleter is the subset of *openai.Client used by OpenAIAdapter
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIAdapter adapts any OpenAI-compatible chat endpoint to llmprovider.Provider interface
type OpenAIAdapter struct {
	client chatCompleter
	model  string
}

// NewOpenAIAdapter creates a new OpenAI adapter. An empty baseURL targets api.openai.com.
func NewOpenAIAdapter(apiKey, baseURL, model string) *OpenAIAdapter {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIAdapter{client: openai.NewClientWithConfig(cfg), model: model}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	return &Response{
		Content:      resp.Choices[0].Message.Content,
		ProviderName: "openai",
		ModelName:    a.model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.model
}

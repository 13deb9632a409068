package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newOllamaImpl creates a new Ollama implementation
func newOllamaImpl(cfg Config) *ollamaImpl {
	return &ollamaImpl{
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Generate sends a request to POST /api/generate. Streaming is always disabled.
func (o *ollamaImpl) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	payload := GenerateRequest{Model: req.Model, Prompt: req.Prompt, Stream: false}
	if payload.Model == "" {
		payload.Model = o.model
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ollama: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ollama: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ollama: API call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ollama: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, truncate(respBody, 256))
	}

	var raw generateBody
	if err := json.Unmarshal(respBody, &raw); err != nil {
		return nil, fmt.Errorf("ollama: failed to decode response: %w", err)
	}

	return raw.decode()
}

// Model returns the model being used
func (o *ollamaImpl) Model() string {
	return o.model
}

func (b generateBody) decode() (*GenerateResponse, error) {
	if len(b.Response) == 0 || string(b.Response) == "null" {
		if b.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingResponse, b.Error)
		}
		return nil, ErrMissingResponse
	}

	var text string
	if err := json.Unmarshal(b.Response, &text); err != nil {
		return nil, ErrInvalidResponse
	}

	return &GenerateResponse{Model: b.Model, Response: text, Done: b.Done}, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

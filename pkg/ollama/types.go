package ollama

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Config holds Ollama client configuration
type Config struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// Validate fills defaults and checks the base URL
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("ollama: invalid base URL %q", c.BaseURL)
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// GenerateRequest is the body of POST /api/generate
type GenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// GenerateResponse is the decoded answer of a non-streaming generate call
type GenerateResponse struct {
	Model    string
	Response string
	Done     bool
}

// ollamaImpl is the internal implementation of IOllama
type ollamaImpl struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// generateBody keeps "response" raw so that a missing field and a non-string
// field can be told apart from an empty string.
type generateBody struct {
	Model    string          `json:"model"`
	Response json.RawMessage `json:"response"`
	Done     bool            `json:"done"`
	Error    string          `json:"error,omitempty"`
}

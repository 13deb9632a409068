package ollama

import "time"

const (
	// DefaultBaseURL is the local Ollama daemon
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the default Ollama model
	DefaultModel = "llama3.2"

	// DefaultTimeout caps the HTTP client; callers usually pass a shorter deadline through ctx
	DefaultTimeout = 60 * time.Second

	generatePath = "/api/generate"
)

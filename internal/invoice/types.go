package invoice

import (
	"invoice-assistant/internal/model"
	"invoice-assistant/internal/nlu"
)

// Source tells where the final answer came from.
type Source string

const (
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

// --- AnswerContext ---

// AnswerContext is built once per message and shared by the fallback composer
// and the prompt builder. Invoice is nil when Found is false.
type AnswerContext struct {
	Found      bool
	Identifier string
	Invoice    *model.Invoice
	Intent     nlu.Intent
}

// --- UseCase Inputs ---

type AnswerInput struct {
	Message string
}

// --- UseCase Outputs ---

type AnswerOutput struct {
	Response   string
	Language   nlu.Language
	Intent     nlu.Intent
	Identifier string
	Found      bool
	Source     Source
}

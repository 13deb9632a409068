package http

import (
	"invoice-assistant/internal/invoice"
	"invoice-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc invoice.UseCase
}

// New creates a new HTTP handler for the chatbot query endpoint.
func New(l log.Logger, uc invoice.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

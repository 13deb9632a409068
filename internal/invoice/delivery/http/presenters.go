package http

import (
	"strings"

	"invoice-assistant/internal/invoice"
)

// --- Request DTOs ---

type queryReq struct {
	Message string `json:"message" binding:"required"`
}

func (r queryReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errBlankMessage
	}
	return nil
}

func (r queryReq) toInput() invoice.AnswerInput {
	return invoice.AnswerInput{Message: r.Message}
}

// --- Response DTOs ---

type queryResp struct {
	Response string `json:"response"`
}

func (h *handler) newQueryResp(out invoice.AnswerOutput) queryResp {
	return queryResp{Response: out.Response}
}

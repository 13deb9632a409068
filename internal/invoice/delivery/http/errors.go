package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"invoice-assistant/internal/invoice"
	"invoice-assistant/pkg/response"
)

var (
	errInvalidBody  = errors.New("body must be a JSON object with a message field")
	errBlankMessage = errors.New("message must not be blank")
)

// mapError writes the HTTP error for a use case error.
// Validation failures are 400; anything unexpected is a 500 without details.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, invoice.ErrMessageTooShort):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}

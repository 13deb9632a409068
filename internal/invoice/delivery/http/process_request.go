package http

import (
	"github.com/gin-gonic/gin"
)

// processQueryReq binds and validates the chatbot query body.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, req.validate()
}

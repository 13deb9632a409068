package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invoice-assistant/pkg/response"
)

// Query godoc
// @Summary     Ask the invoice assistant
// @Description Answers a free-text question about an invoice (status, due date, amount, payment) in the language of the question.
// @Tags        Chatbot
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "User message"
// @Success     200  {object} queryResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chatbot/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processQueryReq: %v", err)
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Answer(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Answer: %v", err)
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newQueryResp(output))
}

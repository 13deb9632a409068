package httpserver

import (
	"context"

	invoiceHTTP "invoice-assistant/internal/invoice/delivery/http"
	"invoice-assistant/internal/middleware"
)

// setupInvoiceDomain registers the chatbot query endpoint under the versioned API and
// under /chatbot, the path the dashboard widget posts to.
func (srv HTTPServer) setupInvoiceDomain(ctx context.Context, mw middleware.Middleware) error {
	h := invoiceHTTP.New(srv.l, srv.invoiceUC)

	api := srv.gin.Group("/api/v1")
	invoiceHTTP.RegisterRoutes(api.Group("/chatbot"), h, mw)
	invoiceHTTP.RegisterRoutes(srv.gin.Group("/chatbot"), h, mw)

	srv.l.Infof(ctx, "Invoice domain registered at POST /api/v1/chatbot/query and POST /chatbot/query")
	return nil
}

package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"invoice-assistant/internal/invoice"
	"invoice-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Invoice domain
	invoiceUC       invoice.UseCase
	rateLimitPerMin int

	readyCheck func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Invoice domain
	InvoiceUseCase  invoice.UseCase
	RateLimitPerMin int

	// ReadyCheck backs /ready, e.g. a database ping. Optional.
	ReadyCheck func(ctx context.Context) error
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		invoiceUC:       cfg.InvoiceUseCase,
		rateLimitPerMin: cfg.RateLimitPerMin,
		readyCheck:      cfg.ReadyCheck,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.invoiceUC == nil {
		return errors.New("invoice use case is required")
	}
	return nil
}

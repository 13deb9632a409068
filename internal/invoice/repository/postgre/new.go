package postgre

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"invoice-assistant/internal/invoice/repository"
	"invoice-assistant/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed invoice Repository over the factures table.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("invoice/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("invoice/repository/postgre.%s", method)
}

package postgre

import (
	"fmt"
	"strings"

	repo "invoice-assistant/internal/invoice/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneInvoice.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneInvoiceOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf(`"idFacture" = $%d`, idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Number != "" {
		conditions = append(conditions, fmt.Sprintf(`"NumeroFacture" = $%d`, idx))
		args = append(args, opt.Number)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildNumberLikeQuery builds WHERE + ORDER + LIMIT for a case-insensitive substring match on the number.
// LIKE wildcards inside fragment are escaped so they match literally.
func (r *implRepository) buildNumberLikeQuery(fragment string) (string, []any) {
	pattern := "%" + likeEscaper.Replace(fragment) + "%"
	return `"NumeroFacture" ILIKE $1 ESCAPE '\' ORDER BY "idFacture" LIMIT 1`, []any{pattern}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

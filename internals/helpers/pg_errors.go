package helper

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// --- PG error mapping (pgx/libpq) ---
func MapPGError(err error) (int, string, bool) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		status, msg := mapPGCode(pgxErr.Code, pgxErr.Message)
		return status, msg, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		status, msg := mapPGCode(string(pqErr.Code), pqErr.Message)
		return status, msg, true
	}
	return 0, "", false
}

func mapPGCode(code, message string) (int, string) {
	switch code {
	case "23505":
		return http.StatusConflict, "Duplicate data (unique violation)."
	case "23503":
		return http.StatusUnprocessableEntity, "Referenced record does not exist (FK violation)."
	case "23514":
		return http.StatusUnprocessableEntity, "Value rejected by a check constraint."
	case "57014":
		return http.StatusServiceUnavailable, "Query timed out."
	default:
		return http.StatusInternalServerError, message
	}
}

func IsUniqueViolation(err error) bool {
	status, _, ok := MapPGError(err)
	return ok && status == http.StatusConflict
}

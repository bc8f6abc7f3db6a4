package sqlutil

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/models"
)

// Postgres SQLSTATE classes the repositories translate.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

// MapError translates driver errors into model sentinels so callers above
// the repository never inspect driver types. what names the entity, e.g. "team".
func MapError(err error, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %w", what, models.ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation, pqForeignKeyViolation:
			return fmt.Errorf("%w: %s: %s", models.ErrConflict, what, pqErr.Message)
		case pqCheckViolation:
			return fmt.Errorf("%w: %s: %s", models.ErrValidation, what, pqErr.Message)
		}
	}
	return err
}

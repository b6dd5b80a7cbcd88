package persistence

import (
	"errors"

	"github.com/Blawness/pkp-studio/internal/domain/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

type uniqueField struct {
	field string
	value string
}

// translateUnique maps a Postgres unique-violation on a known constraint to a
// ConflictError naming the offending field. The pre-checks in the usecases
// catch most conflicts; this covers the insert race two concurrent writers
// can still lose.
func translateUnique(err error, constraints map[string]uniqueField) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		if uf, ok := constraints[pgErr.ConstraintName]; ok {
			return repository.Conflict(uf.field, uf.value)
		}
	}
	return err
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return err
}

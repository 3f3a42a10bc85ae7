package postgres

import (
	"strings"

	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// translateDBError maps driver errors onto the repository sentinels. Unknown
// errors become a DatabaseExecuteError described by op.
func translateDBError(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errors.Wrap(repository.ErrNotFound, op)
	case isUniqueConstraintViolation(err):
		return errors.Wrapf(repository.ErrDuplicate, "%s: %s", op, constraintName(err))
	case isForeignKeyConstraintViolation(err):
		return errors.Wrapf(repository.ErrReferenced, "%s: %s", op, constraintName(err))
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrRequiredFieldsMissing.WrapMessage(op)
	default:
		return domainerrors.NewDatabaseExecuteError(err, op)
	}
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgCode(err) == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgCode(err) == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	if pgCode(err) == pgNotNullViolation {
		return true
	}
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") || strings.Contains(errMsg, "not null")
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || pgCode(err) == pgCheckViolation
}

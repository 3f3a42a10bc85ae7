package postgres

import (
	"testing"

	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateDBError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "record not found", err: gorm.ErrRecordNotFound, want: repository.ErrNotFound},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: repository.ErrDuplicate},
		{name: "pg unique violation", err: &pgconn.PgError{Code: "23505", ConstraintName: "idx_products_name"}, want: repository.ErrDuplicate},
		{name: "pg foreign key violation", err: errors.WithStack(&pgconn.PgError{Code: "23503"}), want: repository.ErrReferenced},
		{name: "pg not null violation", err: &pgconn.PgError{Code: "23502"}, want: domainerrors.ErrRequiredFieldsMissing},
		{name: "pg check violation", err: &pgconn.PgError{Code: "23514"}, want: domainerrors.ErrRequiredFieldsMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateDBError(tt.err, "op"), tt.want)
		})
	}
}

func TestTranslateDBError_Unknown(t *testing.T) {
	cause := errors.New("connection refused")

	err := translateDBError(cause, "failed to list orders")

	appErr, ok := domainerrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Equal(t, "failed to list orders", appErr.Details())
	assert.ErrorIs(t, err, cause)
}

func TestTranslateDBError_Nil(t *testing.T) {
	assert.NoError(t, translateDBError(nil, "op"))
}

func TestTranslateDBError_KeepsConstraintName(t *testing.T) {
	err := translateDBError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}, "failed to create user")

	assert.Contains(t, err.Error(), "idx_users_email")
}

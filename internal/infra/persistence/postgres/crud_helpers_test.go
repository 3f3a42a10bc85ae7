package postgres

import (
	"context"
	"testing"

	"bakery/internal/domain/entity"
	"bakery/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	updateProductSQL = `UPDATE "products" SET .+ WHERE id = \$\d+ AND version = \$\d+`
	countProductSQL  = `SELECT count\(\*\) FROM "products" WHERE id = \$1`
)

// newMockDB opens a postgres gorm session backed by sqlmock.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestVersionedUpdate(t *testing.T) {
	tests := []struct {
		name        string
		affected    int64
		stored      int64
		wantVersion int
		wantErr     error
	}{
		{name: "current version", affected: 1, wantVersion: 4},
		{name: "stale version", affected: 0, stored: 1, wantErr: repository.ErrVersionConflict},
		{name: "missing row", affected: 0, stored: 0, wantErr: repository.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)

			mock.ExpectExec(updateProductSQL).
				WithArgs("Rye", 450, 9, 3).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			if tt.affected == 0 {
				mock.ExpectQuery(countProductSQL).
					WithArgs(9).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.stored))
			}

			version, err := versionedUpdate(context.Background(), db, "products", 9, 3, map[string]any{
				"name":  "Rye",
				"price": 450,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, version)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantVersion, version)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVersionedUpdate_DatabaseError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(updateProductSQL).WillReturnError(assert.AnError)

	_, err := versionedUpdate(context.Background(), db, "products", 9, 3, map[string]any{"name": "Rye"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrVersionConflict)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_SaveRefreshesVersion(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectExec(updateProductSQL).
		WithArgs("Rye", 450, 9, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	product := &entity.Product{ID: 9, Version: 3, Name: "Rye", Price: 450}
	require.NoError(t, repo.Save(context.Background(), product))

	assert.Equal(t, 4, product.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

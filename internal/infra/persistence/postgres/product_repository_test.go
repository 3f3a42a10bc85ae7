package postgres

import (
	"context"
	"testing"

	"bakery/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_FindAnyMatching(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE LOWER\(.*name.*\) LIKE \$1`).
		WithArgs(`%r\_e%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .+ FROM "products" WHERE LOWER\(.*name.*\) LIKE \$1 ORDER BY .*price.* DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "version", "name", "price"}).AddRow(2, 1, "Rye", 450))

	page, err := repo.FindAnyMatching(context.Background(), "R_e", repository.PageRequest{
		Size: 10,
		Sort: []repository.SortOrder{{Field: "unknown"}, {Field: "price", Descending: true}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Rye", page.Items[0].Name)
	assert.Equal(t, 450, page.Items[0].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM "products" WHERE .*id.* = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "version", "name", "price"}))

	_, err := repo.FindByID(context.Background(), 9)

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPickupLocationRepository_Count(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPickupLocationRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "pickup_locations"$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FilterMatchesNameOrEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE .*email.* LIKE .+ OR .*first_name.* LIKE .+ OR .*last_name.* LIKE`).
		WithArgs("%ann%", "%ann%", "%ann%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT .+ FROM "users" WHERE .+ ORDER BY .*last_name.*first_name.*id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "version", "email"}))

	page, err := repo.FindAnyMatching(context.Background(), "Ann", repository.PageRequest{Size: 5})

	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

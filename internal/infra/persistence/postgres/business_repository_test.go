package postgres

import (
	"context"
	"testing"

	"localia/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, dbMock
}

func TestBusinessRepository_FindBusinesses_LoadsOwner(t *testing.T) {
	db, dbMock := newMockGorm(t)
	repo := NewBusinessRepository(db)

	businessID := uuid.New()
	ownerID := uuid.New()

	dbMock.ExpectQuery(`SELECT count\(\*\) FROM "businesses"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	dbMock.ExpectQuery(`SELECT \* FROM "businesses"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "name", "category", "longitude", "latitude", "is_active",
		}).AddRow(
			businessID, ownerID, "Panadería La Espiga", "bakery", -99.16, 19.42, true,
		))

	// Owner preload fires a second query against the profile table.
	dbMock.ExpectQuery(`SELECT \* FROM "client_profiles"`).
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "first_name", "last_name", "email",
		}).AddRow(
			ownerID, "María", "García", "maria@example.com",
		))

	businesses, total, err := repo.FindBusinesses(context.Background(), repository.BusinessFilter{
		Page:  1,
		Limit: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, businesses, 1)

	assert.Equal(t, businessID, businesses[0].ID)
	require.NotNil(t, businesses[0].Owner, "listing must carry the owner profile")
	assert.Equal(t, ownerID, businesses[0].Owner.ID)
	assert.Equal(t, "María", businesses[0].Owner.FirstName)
	assert.Equal(t, "García", businesses[0].Owner.LastName)

	require.NoError(t, dbMock.ExpectationsWereMet())
}

func TestBusinessRepository_FindBusinesses_EmptyPage(t *testing.T) {
	db, dbMock := newMockGorm(t)
	repo := NewBusinessRepository(db)

	dbMock.ExpectQuery(`SELECT count\(\*\) FROM "businesses"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	dbMock.ExpectQuery(`SELECT \* FROM "businesses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	businesses, total, err := repo.FindBusinesses(context.Background(), repository.BusinessFilter{
		Page:  1,
		Limit: 20,
	})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, businesses)

	require.NoError(t, dbMock.ExpectationsWereMet())
}

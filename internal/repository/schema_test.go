package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlite3")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

func TestMigratorCreatesThreeTables(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS courses").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS expenses").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS weekly_goals").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, NewMigrator(db).Init(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigratorIdempotent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	for i := 0; i < 2; i++ {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS courses").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS expenses").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS weekly_goals").
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	migrator := NewMigrator(db)
	require.NoError(t, migrator.Init(context.Background()))
	require.NoError(t, migrator.Init(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

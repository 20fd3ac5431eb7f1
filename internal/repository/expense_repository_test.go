package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursetrack/coursetrack/internal/models"
)

func TestExpenseRepositoryInsertAssignsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewExpenseRepository(db)

	mock.ExpectExec("INSERT INTO expenses").
		WithArgs(sqlmock.AnyArg(), "Go Basics", 49.99, "2024-01-15").
		WillReturnResult(sqlmock.NewResult(1, 1))

	expense := &models.Expense{CourseName: "Go Basics", Price: 49.99, PurchaseDate: "2024-01-15"}
	require.NoError(t, repo.Insert(context.Background(), expense))
	assert.NotEmpty(t, expense.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewExpenseRepository(db)

	rows := sqlmock.NewRows([]string{"id", "course_name", "price", "purchase_date"}).
		AddRow("b", "Other", 10.01, "2024-01-16").
		AddRow("a", "Go Basics", 49.99, "2024-01-15")
	mock.ExpectQuery("SELECT id, course_name").WillReturnRows(rows)

	expenses, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "2024-01-16", expenses[0].PurchaseDate)
	assert.Equal(t, "Go Basics", expenses[1].CourseName)
}

func TestExpenseRepositoryTotalSpent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewExpenseRepository(db)

	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(60.0))

	total, err := repo.TotalSpent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 60.0, total)
}

func TestExpenseRepositoryTotalSpentEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewExpenseRepository(db)

	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(0.0))

	total, err := repo.TotalSpent(context.Background())
	require.NoError(t, err)
	assert.Zero(t, total)
}

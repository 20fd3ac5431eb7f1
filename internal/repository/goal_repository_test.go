package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursetrack/coursetrack/internal/models"
)

func TestGoalRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGoalRepository(db)

	mock.ExpectExec("INSERT INTO weekly_goals").
		WithArgs("2024-01-15", 12.5).
		WillReturnResult(sqlmock.NewResult(1, 1))

	goal := models.WeeklyGoal{WeekStart: "2024-01-15", GoalHours: 12.5}
	require.NoError(t, repo.Upsert(context.Background(), goal))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGoalRepositoryGet(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGoalRepository(db)

	rows := sqlmock.NewRows([]string{"week_start", "goal_hours"}).
		AddRow("2024-01-15", 12.5)
	mock.ExpectQuery("SELECT week_start, goal_hours").
		WithArgs("2024-01-15").
		WillReturnRows(rows)

	goal, err := repo.Get(context.Background(), "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, 12.5, goal.GoalHours)
}

func TestGoalRepositoryGetAbsent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGoalRepository(db)

	mock.ExpectQuery("SELECT week_start, goal_hours").
		WithArgs("2024-02-05").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "2024-02-05")
	require.Error(t, err)
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}

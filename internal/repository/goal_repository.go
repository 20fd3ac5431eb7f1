package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coursetrack/coursetrack/internal/models"
)

// GoalRepository persists weekly study-hour goals.
type GoalRepository struct {
	db *sqlx.DB
}

// NewGoalRepository constructs the repository.
func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// Upsert stores the goal for its week, last write wins.
func (r *GoalRepository) Upsert(ctx context.Context, goal models.WeeklyGoal) error {
	const query = `INSERT INTO weekly_goals (week_start, goal_hours)
VALUES (:week_start, :goal_hours)
ON CONFLICT(week_start)
DO UPDATE SET goal_hours = excluded.goal_hours`
	if _, err := r.db.NamedExecContext(ctx, query, goal); err != nil {
		return fmt.Errorf("upsert weekly goal: %w", err)
	}
	return nil
}

// Get fetches the goal keyed by week start. Absence surfaces as
// sql.ErrNoRows for the caller to distinguish from a zero-hours goal.
func (r *GoalRepository) Get(ctx context.Context, weekStart string) (*models.WeeklyGoal, error) {
	const query = `SELECT week_start, goal_hours FROM weekly_goals WHERE week_start = ?`
	var goal models.WeeklyGoal
	if err := r.db.GetContext(ctx, &goal, query, weekStart); err != nil {
		return nil, err
	}
	return &goal, nil
}

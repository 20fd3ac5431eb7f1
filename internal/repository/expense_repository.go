package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/coursetrack/coursetrack/internal/models"
)

// ExpenseRepository persists purchase records. Rows are append-only.
type ExpenseRepository struct {
	db *sqlx.DB
}

// NewExpenseRepository constructs the repository.
func NewExpenseRepository(db *sqlx.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Insert appends one expense, assigning it an ID when missing.
func (r *ExpenseRepository) Insert(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.NewString()
	}
	const query = `INSERT INTO expenses (id, course_name, price, purchase_date)
VALUES (:id, :course_name, :price, :purchase_date)`
	if _, err := r.db.NamedExecContext(ctx, query, expense); err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// List returns all expenses, newest purchase date first. Ordering among
// equal dates follows insertion order, newest first.
func (r *ExpenseRepository) List(ctx context.Context) ([]models.Expense, error) {
	const query = `SELECT id, course_name, price, purchase_date
FROM expenses ORDER BY purchase_date DESC, rowid DESC`
	var expenses []models.Expense
	if err := r.db.SelectContext(ctx, &expenses, query); err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// TotalSpent sums all recorded prices; an empty table sums to zero.
func (r *ExpenseRepository) TotalSpent(ctx context.Context) (float64, error) {
	var total float64
	if err := r.db.GetContext(ctx, &total, `SELECT COALESCE(SUM(price), 0) FROM expenses`); err != nil {
		return 0, fmt.Errorf("total spent: %w", err)
	}
	return total, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/coursetrack/coursetrack/internal/models"
)

// CourseRepository persists the course collection.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs the repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseUpsertQuery = `INSERT INTO courses (name, category, length, link, status, progress, due_date, priority, last_progress_update)
VALUES (:name, :category, :length, :link, :status, :progress, :due_date, :priority, :last_progress_update)
ON CONFLICT(name)
DO UPDATE SET category = excluded.category, length = excluded.length, link = excluded.link,
              status = excluded.status, progress = excluded.progress, due_date = excluded.due_date,
              priority = excluded.priority, last_progress_update = excluded.last_progress_update`

// UpsertAll persists the whole collection keyed by name within one
// transaction. Rows absent from the collection are left in place; callers
// own deletion semantics. An empty collection is a no-op, deliberately
// distinct from "delete everything".
func (r *CourseRepository) UpsertAll(ctx context.Context, courses []*models.Course) error {
	if len(courses) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin course upsert tx: %w", err)
	}
	for _, course := range courses {
		if _, err := tx.NamedExecContext(ctx, courseUpsertQuery, course); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("upsert course %q: %w", course.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit course upsert tx: %w", err)
	}
	return nil
}

// ListAll returns every stored course. Status and progress are restored as
// persisted; priority falls back to Medium and status to Pending when a row
// carries an unrecognized value.
func (r *CourseRepository) ListAll(ctx context.Context) ([]*models.Course, error) {
	const query = `SELECT name, category, length, link, status, progress, due_date, priority, last_progress_update
FROM courses ORDER BY name ASC`
	var courses []*models.Course
	if err := r.db.SelectContext(ctx, &courses, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	for _, course := range courses {
		if !course.Priority.Valid() {
			course.Priority = models.PriorityMedium
		}
		if !course.Status.Valid() {
			course.Status = models.StatusPending
		}
	}
	return courses, nil
}

// Count returns the number of stored courses.
func (r *CourseRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM courses`); err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return count, nil
}

// InsertIgnore inserts the given courses, skipping names that already
// exist, so a duplicate seed run cannot violate name uniqueness.
func (r *CourseRepository) InsertIgnore(ctx context.Context, courses []*models.Course) error {
	if len(courses) == 0 {
		return nil
	}
	const query = `INSERT OR IGNORE INTO courses (name, category, length, link, status, progress, due_date, priority, last_progress_update)
VALUES (:name, :category, :length, :link, :status, :progress, :due_date, :priority, :last_progress_update)`
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin course insert tx: %w", err)
	}
	for _, course := range courses {
		if _, err := tx.NamedExecContext(ctx, query, course); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert course %q: %w", course.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit course insert tx: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/coursetrack/coursetrack/internal/dto"
	"github.com/coursetrack/coursetrack/internal/models"
	"github.com/coursetrack/coursetrack/internal/seed"
	appErrors "github.com/coursetrack/coursetrack/pkg/errors"
)

type courseStore interface {
	UpsertAll(ctx context.Context, courses []*models.Course) error
	ListAll(ctx context.Context) ([]*models.Course, error)
	Count(ctx context.Context) (int, error)
	InsertIgnore(ctx context.Context, courses []*models.Course) error
}

type expenseStore interface {
	Insert(ctx context.Context, expense *models.Expense) error
	List(ctx context.Context) ([]models.Expense, error)
	TotalSpent(ctx context.Context) (float64, error)
}

type goalStore interface {
	Upsert(ctx context.Context, goal models.WeeklyGoal) error
	Get(ctx context.Context, weekStart string) (*models.WeeklyGoal, error)
}

type schemaInitializer interface {
	Init(ctx context.Context) error
}

// TrackerService is the persistence contract exposed to the presentation
// layer. Storage errors never cross this boundary: every operation logs the
// failure and returns a safe default, since the caller has no recovery path
// for partial storage failures.
type TrackerService struct {
	schema   schemaInitializer
	courses  courseStore
	expenses expenseStore
	goals    goalStore
	validate *validator.Validate
	logger   *zap.Logger
}

// NewTrackerService constructs a TrackerService.
func NewTrackerService(schema schemaInitializer, courses courseStore, expenses expenseStore, goals goalStore, validate *validator.Validate, logger *zap.Logger) *TrackerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TrackerService{
		schema:   schema,
		courses:  courses,
		expenses: expenses,
		goals:    goals,
		validate: validate,
		logger:   logger,
	}
}

// Init creates the schema when absent. Callers must tolerate a store that
// failed to initialize and treat subsequent operations as best-effort.
func (s *TrackerService) Init(ctx context.Context) {
	if err := s.schema.Init(ctx); err != nil {
		s.logger.Error("storage initialization failed", zap.Error(err))
	}
}

// BuildCourse validates user input and constructs a course entity with the
// lifecycle defaults applied.
func (s *TrackerService) BuildCourse(input dto.CourseInput) (*models.Course, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid course input")
	}
	course := models.NewCourse(input.Name, input.Category, input.Length, input.Link)
	if input.DueDate != "" {
		due := input.DueDate
		course.DueDate = &due
	}
	if input.Priority != "" {
		course.Priority = models.Priority(input.Priority)
	}
	return course, nil
}

// SaveCourses upserts the entire collection keyed by name. An empty
// collection is a deliberate no-op; rows absent from the collection are not
// deleted.
func (s *TrackerService) SaveCourses(ctx context.Context, courses []*models.Course) {
	if len(courses) == 0 {
		return
	}
	if err := s.courses.UpsertAll(ctx, courses); err != nil {
		s.logger.Error("saving courses failed", zap.Int("count", len(courses)), zap.Error(err))
	}
}

// LoadCourses returns every stored course, or an empty collection when
// storage is unavailable.
func (s *TrackerService) LoadCourses(ctx context.Context) []*models.Course {
	courses, err := s.courses.ListAll(ctx)
	if err != nil {
		s.logger.Error("loading courses failed", zap.Error(err))
		return []*models.Course{}
	}
	return courses
}

// PopulateFromSeedIfEmpty imports the roadmap document at path once, only
// while the course table is empty. A missing or malformed seed file is
// logged and skipped.
func (s *TrackerService) PopulateFromSeedIfEmpty(ctx context.Context, path string) {
	doc, err := seed.Load(path)
	if err != nil {
		s.logger.Warn("seed document unavailable", zap.String("path", path), zap.Error(err))
		return
	}

	count, err := s.courses.Count(ctx)
	if err != nil {
		s.logger.Error("counting courses failed", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	var courses []*models.Course
	for _, section := range doc.Sections {
		for _, entry := range section.Courses {
			name := strings.TrimSpace(entry.Name)
			if name == "" {
				continue
			}
			courses = append(courses, models.NewCourse(name, section.Title, seed.ParseHours(entry.Hours), ""))
		}
	}
	if len(courses) == 0 {
		return
	}

	if err := s.courses.InsertIgnore(ctx, courses); err != nil {
		s.logger.Error("seed import failed", zap.String("path", path), zap.Error(err))
		return
	}
	s.logger.Info("seeded course table", zap.Int("count", len(courses)), zap.String("path", path))
}

// AddExpense appends a purchase record. Invalid input is logged and
// dropped.
func (s *TrackerService) AddExpense(ctx context.Context, courseName string, price float64, purchaseDate string) {
	input := dto.ExpenseInput{CourseName: courseName, Price: price, PurchaseDate: purchaseDate}
	if err := s.validate.Struct(input); err != nil {
		s.logger.Warn("invalid expense input", zap.String("course", courseName), zap.Error(err))
		return
	}
	expense := &models.Expense{CourseName: courseName, Price: price, PurchaseDate: purchaseDate}
	if err := s.expenses.Insert(ctx, expense); err != nil {
		s.logger.Error("adding expense failed", zap.String("course", courseName), zap.Error(err))
	}
}

// LoadExpenses returns all purchases, newest first, or an empty collection
// when storage is unavailable.
func (s *TrackerService) LoadExpenses(ctx context.Context) []models.Expense {
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		s.logger.Error("loading expenses failed", zap.Error(err))
		return []models.Expense{}
	}
	return expenses
}

// TotalSpent returns the sum of all recorded purchases; zero when no rows
// exist or storage is unavailable.
func (s *TrackerService) TotalSpent(ctx context.Context) float64 {
	total, err := s.expenses.TotalSpent(ctx)
	if err != nil {
		s.logger.Error("totalling expenses failed", zap.Error(err))
		return 0
	}
	return total
}

// SaveWeeklyGoal upserts the study target for the given week. Invalid
// input is logged and dropped.
func (s *TrackerService) SaveWeeklyGoal(ctx context.Context, weekStart string, hours float64) {
	input := dto.WeeklyGoalInput{WeekStart: weekStart, GoalHours: hours}
	if err := s.validate.Struct(input); err != nil {
		s.logger.Warn("invalid weekly goal input", zap.String("week_start", weekStart), zap.Error(err))
		return
	}
	goal := models.WeeklyGoal{WeekStart: weekStart, GoalHours: hours}
	if err := s.goals.Upsert(ctx, goal); err != nil {
		s.logger.Error("saving weekly goal failed", zap.String("week_start", weekStart), zap.Error(err))
	}
}

// LoadWeeklyGoal returns the goal for the given week and whether one is
// set, distinguishing "not set" from a legitimately zero goal.
func (s *TrackerService) LoadWeeklyGoal(ctx context.Context, weekStart string) (float64, bool) {
	goal, err := s.goals.Get(ctx, weekStart)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Error("loading weekly goal failed", zap.String("week_start", weekStart), zap.Error(err))
		}
		return 0, false
	}
	return goal.GoalHours, true
}

package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/coursetrack/coursetrack/internal/models"
)

type trackerReader interface {
	LoadCourses(ctx context.Context) []*models.Course
	TotalSpent(ctx context.Context) float64
	LoadWeeklyGoal(ctx context.Context, weekStart string) (float64, bool)
}

// CategorySummary aggregates the courses of one category.
type CategorySummary struct {
	Category       string
	Courses        int
	Completed      int
	TotalHours     float64
	CompletedHours float64
	RemainingHours float64
}

// RoadmapSummary is the aggregate view shown on the roadmap dashboard.
type RoadmapSummary struct {
	TotalCourses int
	Pending      int
	InProgress   int
	Completed    int

	TotalHours     float64
	CompletedHours float64
	RemainingHours float64

	Categories []CategorySummary

	TotalSpent float64

	WeekStart       string
	GoalHours       float64
	GoalSet         bool
	UpdatedThisWeek int
}

// SummaryService derives roadmap statistics from the stored collection.
type SummaryService struct {
	tracker trackerReader
	logger  *zap.Logger
}

// NewSummaryService constructs a SummaryService.
func NewSummaryService(tracker trackerReader, logger *zap.Logger) *SummaryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SummaryService{tracker: tracker, logger: logger}
}

// Summarize aggregates the roadmap as of now. It inherits the store's
// fail-open behaviour: on storage failure the summary is simply empty.
func (s *SummaryService) Summarize(ctx context.Context, now time.Time) RoadmapSummary {
	weekStart := models.WeekStart(now)
	summary := RoadmapSummary{WeekStart: weekStart}

	byCategory := make(map[string]*CategorySummary)
	for _, course := range s.tracker.LoadCourses(ctx) {
		summary.TotalCourses++
		switch course.Status {
		case models.StatusCompleted:
			summary.Completed++
		case models.StatusInProgress:
			summary.InProgress++
		default:
			summary.Pending++
		}
		summary.TotalHours += course.Length
		summary.CompletedHours += course.CompletedHours()
		summary.RemainingHours += course.RemainingHours()

		cat, ok := byCategory[course.Category]
		if !ok {
			cat = &CategorySummary{Category: course.Category}
			byCategory[course.Category] = cat
		}
		cat.Courses++
		if course.Status == models.StatusCompleted {
			cat.Completed++
		}
		cat.TotalHours += course.Length
		cat.CompletedHours += course.CompletedHours()
		cat.RemainingHours += course.RemainingHours()

		if course.LastProgressUpdate != nil && *course.LastProgressUpdate >= weekStart {
			summary.UpdatedThisWeek++
		}
	}

	for _, cat := range byCategory {
		summary.Categories = append(summary.Categories, *cat)
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].Category < summary.Categories[j].Category
	})

	summary.TotalSpent = s.tracker.TotalSpent(ctx)
	summary.GoalHours, summary.GoalSet = s.tracker.LoadWeeklyGoal(ctx, weekStart)

	return summary
}

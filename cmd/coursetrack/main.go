package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/coursetrack/coursetrack/internal/dto"
	"github.com/coursetrack/coursetrack/internal/models"
	"github.com/coursetrack/coursetrack/internal/repository"
	"github.com/coursetrack/coursetrack/internal/service"
	"github.com/coursetrack/coursetrack/pkg/config"
	"github.com/coursetrack/coursetrack/pkg/database"
	"github.com/coursetrack/coursetrack/pkg/logger"
)

const usage = `usage: coursetrack <command> [flags]

commands:
  list       show all tracked courses
  add        register a course
  status     change a course status
  progress   change a course progress
  expense    log a purchase
  expenses   show all purchases
  spent      show the total spent
  goal       set or show the weekly study goal
  summary    show roadmap statistics
  export     write the roadmap as csv or pdf
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewSQLite(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("opening database failed", "path", cfg.Database.Path, "error", err)
	}
	defer db.Close()

	tracker := service.NewTrackerService(
		repository.NewMigrator(db),
		repository.NewCourseRepository(db),
		repository.NewExpenseRepository(db),
		repository.NewGoalRepository(db),
		nil,
		logr,
	)
	summary := service.NewSummaryService(tracker, logr)
	exporter := service.NewExportService(tracker, summary, cfg.Export.Dir, logr, nil, nil)

	ctx := context.Background()
	tracker.Init(ctx)
	tracker.PopulateFromSeedIfEmpty(ctx, cfg.Seed.Path)

	args := os.Args[1:]
	command := "summary"
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "list":
		runList(ctx, tracker)
	case "add":
		runAdd(ctx, tracker, args)
	case "status":
		runStatus(ctx, tracker, args)
	case "progress":
		runProgress(ctx, tracker, args)
	case "expense":
		runExpense(ctx, tracker, args)
	case "expenses":
		runExpenses(ctx, tracker)
	case "spent":
		fmt.Printf("total spent: %.2f\n", tracker.TotalSpent(ctx))
	case "goal":
		runGoal(ctx, tracker, args)
	case "summary":
		runSummary(ctx, summary)
	case "export":
		runExport(ctx, exporter, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runList(ctx context.Context, tracker *service.TrackerService) {
	courses := tracker.LoadCourses(ctx)
	if len(courses) == 0 {
		fmt.Println("no courses tracked yet")
		return
	}
	for _, c := range courses {
		due := "-"
		if c.DueDate != nil {
			due = *c.DueDate
		}
		fmt.Printf("%-30s %-15s %-11s %-8s %5.1f%%  %5.1fh left  due %s\n",
			c.Name, c.Category, c.Status, c.Priority, c.Progress, c.RemainingHours(), due)
	}
}

func runAdd(ctx context.Context, tracker *service.TrackerService, args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	name := fs.String("name", "", "course name (required)")
	category := fs.String("category", "", "course category (required)")
	length := fs.Float64("length", 0, "estimated length in hours")
	link := fs.String("link", "", "course link")
	due := fs.String("due", "", "due date, YYYY-MM-DD")
	priority := fs.String("priority", "", "Low, Medium or High")
	fs.Parse(args) //nolint:errcheck

	course, err := tracker.BuildCourse(dto.CourseInput{
		Name:     *name,
		Category: *category,
		Length:   *length,
		Link:     *link,
		DueDate:  *due,
		Priority: *priority,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid course: %v\n", err)
		os.Exit(1)
	}

	courses := append(tracker.LoadCourses(ctx), course)
	tracker.SaveCourses(ctx, courses)
	fmt.Printf("added %q\n", course.Name)
}

func mutateCourse(ctx context.Context, tracker *service.TrackerService, name string, mutate func(*models.Course)) {
	courses := tracker.LoadCourses(ctx)
	for _, c := range courses {
		if c.Name == name {
			mutate(c)
			tracker.SaveCourses(ctx, courses)
			fmt.Printf("%-30s %-11s %5.1f%%\n", c.Name, c.Status, c.Progress)
			return
		}
	}
	fmt.Fprintf(os.Stderr, "no course named %q\n", name)
	os.Exit(1)
}

func runStatus(ctx context.Context, tracker *service.TrackerService, args []string) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	name := fs.String("name", "", "course name (required)")
	status := fs.String("status", "", "Pending, In Progress or Completed")
	fs.Parse(args) //nolint:errcheck

	mutateCourse(ctx, tracker, *name, func(c *models.Course) {
		c.UpdateStatus(models.Status(*status))
	})
}

func runProgress(ctx context.Context, tracker *service.TrackerService, args []string) {
	fs := flag.NewFlagSet("progress", flag.ExitOnError)
	name := fs.String("name", "", "course name (required)")
	value := fs.Float64("value", 0, "progress percentage, 0-100")
	fs.Parse(args) //nolint:errcheck

	mutateCourse(ctx, tracker, *name, func(c *models.Course) {
		c.UpdateProgress(*value)
	})
}

func runExpense(ctx context.Context, tracker *service.TrackerService, args []string) {
	fs := flag.NewFlagSet("expense", flag.ExitOnError)
	course := fs.String("course", "", "course name")
	price := fs.Float64("price", 0, "purchase price")
	date := fs.String("date", time.Now().Format(models.DateLayout), "purchase date, YYYY-MM-DD")
	fs.Parse(args) //nolint:errcheck

	tracker.AddExpense(ctx, *course, *price, *date)
	fmt.Printf("total spent: %.2f\n", tracker.TotalSpent(ctx))
}

func runExpenses(ctx context.Context, tracker *service.TrackerService) {
	expenses := tracker.LoadExpenses(ctx)
	if len(expenses) == 0 {
		fmt.Println("no expenses recorded")
		return
	}
	for _, e := range expenses {
		fmt.Printf("%s  %8.2f  %s\n", e.PurchaseDate, e.Price, e.CourseName)
	}
}

func runGoal(ctx context.Context, tracker *service.TrackerService, args []string) {
	fs := flag.NewFlagSet("goal", flag.ExitOnError)
	week := fs.String("week", models.WeekStart(time.Now()), "week start (Monday), YYYY-MM-DD")
	hours := fs.Float64("hours", -1, "study hours target; omit to show the current goal")
	fs.Parse(args) //nolint:errcheck

	if *hours >= 0 {
		tracker.SaveWeeklyGoal(ctx, *week, *hours)
	}
	if goal, ok := tracker.LoadWeeklyGoal(ctx, *week); ok {
		fmt.Printf("goal for week of %s: %.1fh\n", *week, goal)
	} else {
		fmt.Printf("no goal set for week of %s\n", *week)
	}
}

func runSummary(ctx context.Context, svc *service.SummaryService) {
	s := svc.Summarize(ctx, time.Now())
	fmt.Printf("courses: %d (%d completed, %d in progress, %d pending)\n",
		s.TotalCourses, s.Completed, s.InProgress, s.Pending)
	fmt.Printf("hours:   %.1f done / %.1f total (%.1f remaining)\n",
		s.CompletedHours, s.TotalHours, s.RemainingHours)
	for _, cat := range s.Categories {
		fmt.Printf("  %-20s %d courses, %.1f/%.1fh\n",
			cat.Category, cat.Courses, cat.CompletedHours, cat.TotalHours)
	}
	fmt.Printf("spent:   %.2f\n", s.TotalSpent)
	if s.GoalSet {
		fmt.Printf("week of %s: goal %.1fh, %d course(s) updated\n", s.WeekStart, s.GoalHours, s.UpdatedThisWeek)
	} else {
		fmt.Printf("week of %s: no goal set\n", s.WeekStart)
	}
}

func runExport(ctx context.Context, exporter *service.ExportService, args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	format := fs.String("format", "csv", "csv or pdf")
	fs.Parse(args) //nolint:errcheck

	var (
		path string
		err  error
	)
	switch strings.ToLower(*format) {
	case "csv":
		path, err = exporter.ExportRoadmapCSV(ctx)
	case "pdf":
		path, err = exporter.ExportRoadmapPDF(ctx)
	default:
		fmt.Fprintf(os.Stderr, "unsupported format %q\n", *format)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", path)
}

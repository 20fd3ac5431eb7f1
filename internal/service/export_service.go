package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/coursetrack/coursetrack/pkg/export"
)

type csvRenderer interface {
	Render(table export.Table) ([]byte, error)
}

type pdfRenderer interface {
	Render(tables ...export.Table) ([]byte, error)
}

type summaryBuilder interface {
	Summarize(ctx context.Context, now time.Time) RoadmapSummary
}

// ExportService renders the roadmap and its summary into report files.
type ExportService struct {
	tracker trackerReader
	summary summaryBuilder
	csv     csvRenderer
	pdf     pdfRenderer
	dir     string
	logger  *zap.Logger
}

// NewExportService constructs an ExportService writing into dir.
func NewExportService(tracker trackerReader, summary summaryBuilder, dir string, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		tracker: tracker,
		summary: summary,
		csv:     csv,
		pdf:     pdf,
		dir:     dir,
		logger:  logger,
	}
}

// ExportRoadmapCSV writes the course roadmap as CSV and returns the path.
func (s *ExportService) ExportRoadmapCSV(ctx context.Context) (string, error) {
	data, err := s.csv.Render(s.roadmapTable(ctx))
	if err != nil {
		return "", fmt.Errorf("render roadmap csv: %w", err)
	}
	return s.write("roadmap", "csv", data)
}

// ExportRoadmapPDF writes the course roadmap plus its summary as PDF and
// returns the path.
func (s *ExportService) ExportRoadmapPDF(ctx context.Context) (string, error) {
	summary := s.summary.Summarize(ctx, time.Now())
	data, err := s.pdf.Render(s.roadmapTable(ctx), summaryTable(summary))
	if err != nil {
		return "", fmt.Errorf("render roadmap pdf: %w", err)
	}
	return s.write("roadmap", "pdf", data)
}

func (s *ExportService) roadmapTable(ctx context.Context) export.Table {
	table := export.Table{
		Title:   "Course Roadmap",
		Columns: []string{"Course", "Category", "Priority", "Status", "Progress", "Length (h)", "Remaining (h)", "Due"},
	}
	for _, course := range s.tracker.LoadCourses(ctx) {
		due := ""
		if course.DueDate != nil {
			due = *course.DueDate
		}
		table.Rows = append(table.Rows, []string{
			course.Name,
			course.Category,
			string(course.Priority),
			string(course.Status),
			strconv.FormatFloat(course.Progress, 'f', 1, 64) + "%",
			strconv.FormatFloat(course.Length, 'f', 1, 64),
			strconv.FormatFloat(course.RemainingHours(), 'f', 1, 64),
			due,
		})
	}
	return table
}

func summaryTable(summary RoadmapSummary) export.Table {
	goal := "not set"
	if summary.GoalSet {
		goal = strconv.FormatFloat(summary.GoalHours, 'f', 1, 64) + "h"
	}
	return export.Table{
		Title:   "Summary",
		Columns: []string{"Courses", "Completed", "In Progress", "Pending", "Hours Done", "Hours Left", "Spent", "Week Goal"},
		Rows: [][]string{{
			strconv.Itoa(summary.TotalCourses),
			strconv.Itoa(summary.Completed),
			strconv.Itoa(summary.InProgress),
			strconv.Itoa(summary.Pending),
			strconv.FormatFloat(summary.CompletedHours, 'f', 1, 64),
			strconv.FormatFloat(summary.RemainingHours, 'f', 1, 64),
			strconv.FormatFloat(summary.TotalSpent, 'f', 2, 64),
			goal,
		}},
	}
}

func (s *ExportService) write(name, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(s.dir, fmt.Sprintf("%s-%s.%s", name, time.Now().Format("20060102-150405"), ext))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	s.logger.Info("export written", zap.String("path", path))
	return path, nil
}

package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursetrack/coursetrack/internal/models"
)

func TestExportRoadmapCSV(t *testing.T) {
	dir := t.TempDir()
	due := "2024-06-01"
	course := summaryCourse("Go Basics", "Programming", 10, 50, models.StatusInProgress, "")
	course.DueDate = &due
	tracker := &trackerReaderStub{courses: []*models.Course{course}}

	svc := NewExportService(tracker, NewSummaryService(tracker, nil), dir, nil, nil, nil)

	path, err := svc.ExportRoadmapCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)
	assert.True(t, strings.HasPrefix(content, "Course,Category,Priority,Status,Progress"))
	assert.Contains(t, content, "Go Basics,Programming,Medium,In Progress,50.0%,10.0,5.0,2024-06-01")
}

func TestExportRoadmapPDF(t *testing.T) {
	dir := t.TempDir()
	tracker := &trackerReaderStub{
		courses: []*models.Course{summaryCourse("Go Basics", "Programming", 10, 100, models.StatusCompleted, "")},
		spent:   49.99,
	}

	svc := NewExportService(tracker, NewSummaryService(tracker, nil), dir, nil, nil, nil)

	path, err := svc.ExportRoadmapPDF(context.Background())
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, len(raw) > 4)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

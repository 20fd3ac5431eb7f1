package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVExporterRender(t *testing.T) {
	table := Table{
		Columns: []string{"Course", "Category", "Progress"},
		Rows: [][]string{
			{"Go Basics", "Programming", "50%"},
			{"Databases", "CS", "0%"},
		},
	}

	out, err := NewCSVExporter().Render(table)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Course,Category,Progress", lines[0])
	assert.Equal(t, "Go Basics,Programming,50%", lines[1])
}

func TestCSVExporterRequiresColumns(t *testing.T) {
	_, err := NewCSVExporter().Render(Table{})
	assert.Error(t, err)
}

func TestCSVExporterPadsShortRows(t *testing.T) {
	table := Table{
		Columns: []string{"Course", "Category"},
		Rows:    [][]string{{"Go Basics"}},
	}
	out, err := NewCSVExporter().Render(table)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Go Basics,")
}

func TestPDFExporterRender(t *testing.T) {
	table := Table{
		Title:   "Roadmap",
		Columns: []string{"Course", "Status"},
		Rows:    [][]string{{"Go Basics", "In Progress"}},
	}

	out, err := NewPDFExporter().Render(table)
	require.NoError(t, err)
	assert.True(t, len(out) > 0)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestPDFExporterRequiresTables(t *testing.T) {
	_, err := NewPDFExporter().Render()
	assert.Error(t, err)
}

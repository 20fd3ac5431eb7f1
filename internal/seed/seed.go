// Package seed reads the bundled roadmap document used to populate an
// empty course table on first run.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Document is the top-level roadmap file shape. Only section titles and
// course name/hours feed the import; the remaining fields belong to the
// roadmap display and are carried for completeness.
type Document struct {
	Title    string    `json:"title"`
	Updated  string    `json:"updated"`
	Summary  string    `json:"summary"`
	Sections []Section `json:"sections"`
}

// Section groups suggested courses under a category title.
type Section struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Goal    string        `json:"goal,omitempty"`
	Note    string        `json:"note,omitempty"`
	Courses []CourseEntry `json:"courses"`
}

// CourseEntry is one suggested course within a section. Hours is free-form
// text such as "10h" or "3-5h".
type CourseEntry struct {
	Name       string `json:"name"`
	Hours      string `json:"hours"`
	StatusIcon string `json:"status_icon,omitempty"`
	Note       string `json:"note,omitempty"`
}

// Load reads and parses the roadmap document at path.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &doc, nil
}

// ParseHours extracts a course length from a free-form hours string by
// taking the leading numeric token: "10h" yields 10, "3-5h" yields 3,
// "2.5 h" yields 2.5. Unparsable input yields 0.
func ParseHours(raw string) float64 {
	token := strings.TrimSpace(raw)
	if fields := strings.Fields(token); len(fields) > 0 {
		token = fields[0]
	}

	var numeric strings.Builder
	for _, r := range token {
		if (r < '0' || r > '9') && r != '.' {
			break
		}
		numeric.WriteRune(r)
	}

	hours, err := strconv.ParseFloat(numeric.String(), 64)
	if err != nil {
		return 0
	}
	return hours
}

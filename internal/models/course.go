package models

import "time"

// DateLayout is the ISO date format used for every persisted date column.
const DateLayout = "2006-01-02"

// Status represents the lifecycle state of a course.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// Valid reports whether the status is one of the three recognized values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority represents the scheduling priority of a course.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Valid reports whether the priority is one of the recognized values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Course models a trackable learning unit. Name is the unique identifier
// within the persisted collection; uniqueness is enforced by storage.
type Course struct {
	Name               string   `db:"name" json:"name"`
	Category           string   `db:"category" json:"category"`
	Length             float64  `db:"length" json:"length"`
	Link               string   `db:"link" json:"link,omitempty"`
	Status             Status   `db:"status" json:"status"`
	Progress           float64  `db:"progress" json:"progress"`
	DueDate            *string  `db:"due_date" json:"due_date,omitempty"`
	Priority           Priority `db:"priority" json:"priority"`
	LastProgressUpdate *string  `db:"last_progress_update" json:"last_progress_update,omitempty"`
}

// NewCourse builds a course with lifecycle defaults: Pending status, zero
// progress, medium priority.
func NewCourse(name, category string, length float64, link string) *Course {
	return &Course{
		Name:     name,
		Category: category,
		Length:   length,
		Link:     link,
		Status:   StatusPending,
		Progress: 0,
		Priority: PriorityMedium,
	}
}

// UpdateStatus applies a status transition. Unrecognized values are ignored
// without error; callers on free-text paths rely on this. Completed forces
// progress to 100, Pending forces it to 0, In Progress leaves it untouched.
func (c *Course) UpdateStatus(status Status) {
	switch status {
	case StatusPending:
		c.Progress = 0
	case StatusCompleted:
		c.Progress = 100
	case StatusInProgress:
	default:
		return
	}
	c.Status = status
	c.stampProgressUpdate()
}

// UpdateProgress applies a progress change. Values outside [0,100] are
// ignored without error. Progress rising above 0 moves a Pending course to
// In Progress; reaching 100 completes it; falling back to 0 returns it to
// Pending. The last-update date is stamped on every accepted call, even when
// the numeric value is unchanged.
func (c *Course) UpdateProgress(progress float64) {
	if progress < 0 || progress > 100 {
		return
	}
	if c.Status == StatusPending && progress > 0 {
		c.Status = StatusInProgress
	}
	c.Progress = progress
	if c.Progress >= 100 {
		c.Status = StatusCompleted
		c.Progress = 100
	} else if c.Progress == 0 && c.Status != StatusPending {
		c.Status = StatusPending
	}
	c.stampProgressUpdate()
}

// CompletedHours returns the hours already studied, derived from progress.
func (c *Course) CompletedHours() float64 {
	if c.Length <= 0 {
		return 0
	}
	return c.Length * c.Progress / 100
}

// RemainingHours returns the hours left to study.
func (c *Course) RemainingHours() float64 {
	if c.Length <= 0 {
		return 0
	}
	return c.Length - c.CompletedHours()
}

func (c *Course) stampProgressUpdate() {
	today := time.Now().Format(DateLayout)
	c.LastProgressUpdate = &today
}

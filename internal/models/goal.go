package models

import "time"

// WeeklyGoal is a study-hours target for one calendar week, keyed by the
// ISO date of that week's Monday. At most one record exists per week.
type WeeklyGoal struct {
	WeekStart string  `db:"week_start" json:"week_start"`
	GoalHours float64 `db:"goal_hours" json:"goal_hours"`
}

// WeekStart returns the Monday of the week containing t, formatted as an
// ISO date, for use as a weekly goal key.
func WeekStart(t time.Time) string {
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return t.AddDate(0, 0, -offset).Format(DateLayout)
}

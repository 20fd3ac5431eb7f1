package dto

// CourseInput carries user-entered fields for registering a course.
type CourseInput struct {
	Name     string  `validate:"required"`
	Category string  `validate:"required"`
	Length   float64 `validate:"gte=0"`
	Link     string  `validate:"omitempty,url"`
	DueDate  string  `validate:"omitempty,datetime=2006-01-02"`
	Priority string  `validate:"omitempty,oneof=Low Medium High"`
}

// ExpenseInput carries user-entered fields for logging a purchase.
type ExpenseInput struct {
	CourseName   string  `validate:"required"`
	Price        float64 `validate:"gte=0"`
	PurchaseDate string  `validate:"required,datetime=2006-01-02"`
}

// WeeklyGoalInput carries user-entered fields for a weekly study target.
type WeeklyGoalInput struct {
	WeekStart string  `validate:"required,datetime=2006-01-02"`
	GoalHours float64 `validate:"gte=0"`
}

package models

// Expense records a course-related purchase. CourseName is informational
// only, not a foreign key; rows are append-only and never mutated.
type Expense struct {
	ID           string  `db:"id" json:"id"`
	CourseName   string  `db:"course_name" json:"course_name"`
	Price        float64 `db:"price" json:"price"`
	PurchaseDate string  `db:"purchase_date" json:"purchase_date"`
}

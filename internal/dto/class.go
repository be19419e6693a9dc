package dto

// ClassSummary is one row of the class listing with its enrolled
// student count.
type ClassSummary struct {
	ClassID       string `json:"class_id"`
	TotalStudents int64  `json:"total_students"`
}

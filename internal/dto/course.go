package dto

// CourseForm carries the course registration form fields. SKS and
// semester arrive as strings; the handler converts them, and a
// non-numeric value falls through validation as zero.
type CourseForm struct {
	CourseID    string `form:"course_id"`
	Name        string `form:"course_name"`
	SKS         int    `form:"-"`
	Semester    int    `form:"-"`
	Day         string `form:"course_day"`
	TimeStart   string `form:"time_start"`
	TimeEnd     string `form:"time_end"`
	Description string `form:"course_description"`
	LecturerNIP string `form:"lecturer_nip"`
	ClassID     string `form:"class_id"`
	RoomID      string `form:"room_id"`
}

// CourseSummary is one row of the per-class course listing.
// total_students keeps the shipped behavior: it is the size of the
// class's course collection, not an enrollment count.
type CourseSummary struct {
	CourseID      string `json:"course_id"`
	CourseName    string `json:"course_name"`
	Lecturer      string `json:"lecturer"`
	TotalStudents int    `json:"total_students"`
}

// CourseOption is a course entry for the attendance page's filter
// dropdown.
type CourseOption struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
}

// CourseFormOptions is the reference data the course registration page
// renders its selects from.
type CourseFormOptions struct {
	Classes    []string         `json:"classes"`
	DaysOfWeek []string         `json:"days_of_week"`
	Lecturers  []LecturerOption `json:"lecturers"`
	Rooms      []string         `json:"rooms"`
}

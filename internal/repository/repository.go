package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	User       UserRepository
	Class      ClassRepository
	Course     CourseRepository
	Room       RoomRepository
	Attendance AttendanceRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Class:      NewClassRepo(db),
		Course:     NewCourseRepo(db),
		Room:       NewRoomRepo(db),
		Attendance: NewAttendanceRepo(db),
	}
}

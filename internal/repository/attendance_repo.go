package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/model"
)

// AttendanceRepository reads the two check-in log tables. Logs are
// written by the external RFID service; there is no create path here.
// Empty filter values mean "no filter"; filters narrow independently.
type AttendanceRepository interface {
	ListStudentLogs(ctx context.Context, courseID, nim string) ([]model.StudentAttendanceLog, error)
	ListLecturerLogs(ctx context.Context, courseID, nip string) ([]model.LecturerAttendanceLog, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates the GORM-backed AttendanceRepository.
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) ListStudentLogs(ctx context.Context, courseID, nim string) ([]model.StudentAttendanceLog, error) {
	q := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Course").
		Preload("Room")
	if courseID != "" {
		q = q.Where("course_id = ?", courseID)
	}
	if nim != "" {
		q = q.Where("student_nim = ?", nim)
	}

	var logs []model.StudentAttendanceLog
	if err := q.Order("time_in").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *attendanceRepo) ListLecturerLogs(ctx context.Context, courseID, nip string) ([]model.LecturerAttendanceLog, error) {
	q := r.db.WithContext(ctx).
		Preload("Lecturer").
		Preload("Course").
		Preload("Room")
	if courseID != "" {
		q = q.Where("course_id = ?", courseID)
	}
	if nip != "" {
		q = q.Where("lecturer_nip = ?", nip)
	}

	var logs []model.LecturerAttendanceLog
	if err := q.Order("time_in").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

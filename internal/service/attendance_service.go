package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/dto"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/model"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/repository"
)

// timeInFormat renders check-in timestamps as "Day, DD Mon YYYY HH:MM:SS".
const timeInFormat = "Mon, 02 Jan 2006 15:04:05"

var (
	ErrInvalidRole      = errors.New("User role is invalid")
	ErrIdentityRequired = errors.New("You've to provide the student nim or lecturer nip in query parameters")
)

// AttendanceService serializes the check-in log tables. Filters narrow
// independently: course and identity can both be applied.
type AttendanceService interface {
	ListLogs(ctx context.Context, role, courseID, nim, nip string) ([]dto.AttendanceRecord, error)
	Detail(ctx context.Context, role, nim, nip string) ([]dto.AttendanceRecord, error)
	CourseOptions(ctx context.Context) ([]dto.CourseOption, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService creates the AttendanceService.
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

func (s *attendanceService) ListLogs(ctx context.Context, role, courseID, nim, nip string) ([]dto.AttendanceRecord, error) {
	switch model.UserRole(role) {
	case model.RoleStudent:
		logs, err := s.repo.Attendance.ListStudentLogs(ctx, courseID, nim)
		if err != nil {
			s.logger.Error("list student logs failed", zap.Error(err))
			return nil, err
		}
		records := make([]dto.AttendanceRecord, 0, len(logs))
		for _, log := range logs {
			record := dto.AttendanceRecord{
				LogID:  log.LogID,
				NIM:    log.StudentNIM,
				Room:   log.RoomID,
				TimeIn: log.TimeIn.Format(timeInFormat),
				Status: string(log.Status),
			}
			if log.Student != nil {
				record.Name = log.Student.FullName
			}
			if log.Course != nil {
				record.Course = log.Course.CourseName
			}
			records = append(records, record)
		}
		return records, nil

	case model.RoleLecturer:
		logs, err := s.repo.Attendance.ListLecturerLogs(ctx, courseID, nip)
		if err != nil {
			s.logger.Error("list lecturer logs failed", zap.Error(err))
			return nil, err
		}
		records := make([]dto.AttendanceRecord, 0, len(logs))
		for _, log := range logs {
			record := dto.AttendanceRecord{
				LogID:  log.LogID,
				NIP:    log.LecturerNIP,
				Room:   log.RoomID,
				TimeIn: log.TimeIn.Format(timeInFormat),
				Status: string(log.Status),
			}
			if log.Lecturer != nil {
				record.Name = log.Lecturer.FullName
			}
			if log.Course != nil {
				record.Course = log.Course.CourseName
			}
			records = append(records, record)
		}
		return records, nil

	default:
		return nil, ErrInvalidRole
	}
}

// CourseOptions lists every course for the attendance page's filter
// dropdown.
func (s *attendanceService) CourseOptions(ctx context.Context) ([]dto.CourseOption, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("list courses failed", zap.Error(err))
		return nil, err
	}
	options := make([]dto.CourseOption, 0, len(courses))
	for _, c := range courses {
		options = append(options, dto.CourseOption{CourseID: c.CourseID, CourseName: c.CourseName})
	}
	return options, nil
}

func (s *attendanceService) Detail(ctx context.Context, role, nim, nip string) ([]dto.AttendanceRecord, error) {
	// Role is rejected before the identity requirement.
	switch model.UserRole(role) {
	case model.RoleStudent, model.RoleLecturer:
	default:
		return nil, ErrInvalidRole
	}
	if nim == "" && nip == "" {
		return nil, ErrIdentityRequired
	}
	return s.ListLogs(ctx, role, "", nim, nip)
}

package service

import (
	"go.uber.org/zap"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/config"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/repository"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/redis"
)

// Service aggregates every business-layer interface.
type Service struct {
	Auth       AuthService
	User       UserService
	Class      ClassService
	Course     CourseService
	Attendance AttendanceService
	Export     ExportService
}

// NewService wires the services. cache may be nil when redis is down.
func NewService(cfg *config.Config, repo *repository.Repository, cache *redis.Client, logger *zap.Logger) *Service {
	attendance := NewAttendanceService(repo, logger)
	// A typed nil must not reach the interface-valued cache field.
	var cc courseCache
	if cache != nil {
		cc = cache
	}
	return &Service{
		Auth:       NewAuthService(repo, logger),
		User:       NewUserService(repo, logger),
		Class:      NewClassService(repo, logger),
		Course:     NewCourseService(repo, cc, cfg.Redis.CourseCacheTTL, logger),
		Attendance: attendance,
		Export:     NewExportService(attendance, repo, logger),
	}
}

package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/dto"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/model"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/repository"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/pkg/redis"
)

var ErrClassNotFound = errors.New("Class ID is not valid!")

const courseCacheKeyPrefix = "courses:class:"

// courseCache is the slice of the redis client the course listing
// needs. *redis.Client satisfies it.
type courseCache interface {
	GetJSON(ctx context.Context, key string, v interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

var _ courseCache = (*redis.Client)(nil)

// CourseService registers courses and serves the per-class course
// listing the admin UI polls.
type CourseService interface {
	Register(ctx context.Context, form *dto.CourseForm) error
	ListByClass(ctx context.Context, classID string) ([]dto.CourseSummary, error)
	RegistrationOptions(ctx context.Context) (*dto.CourseFormOptions, error)
}

type courseService struct {
	validator
	cache    courseCache // nil when redis is unavailable
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewCourseService creates the CourseService. cache may be nil.
func NewCourseService(repo *repository.Repository, cache courseCache, cacheTTL time.Duration, logger *zap.Logger) CourseService {
	return &courseService{
		validator: validator{repo: repo},
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

func (s *courseService) Register(ctx context.Context, form *dto.CourseForm) error {
	err := s.validateCourseForm(ctx, &courseForm{
		CourseID:    form.CourseID,
		Name:        form.Name,
		SKS:         form.SKS,
		Semester:    form.Semester,
		Day:         form.Day,
		TimeStart:   form.TimeStart,
		TimeEnd:     form.TimeEnd,
		Description: form.Description,
		LecturerNIP: form.LecturerNIP,
		ClassID:     form.ClassID,
		RoomID:      form.RoomID,
	})
	if err != nil {
		return err
	}

	course := &model.Course{
		CourseID:    form.CourseID,
		CourseName:  form.Name,
		SKS:         form.SKS,
		AtSemester:  form.Semester,
		Day:         form.Day,
		TimeStart:   form.TimeStart,
		TimeEnd:     form.TimeEnd,
		Description: form.Description,
		LecturerNIP: form.LecturerNIP,
		ClassID:     form.ClassID,
		RoomID:      form.RoomID,
	}

	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("create course failed", zap.String("course_id", form.CourseID), zap.Error(err))
		return err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, courseCacheKeyPrefix+form.ClassID); err != nil {
			s.logger.Warn("invalidate course cache failed", zap.String("class_id", form.ClassID), zap.Error(err))
		}
	}
	return nil
}

func (s *courseService) ListByClass(ctx context.Context, classID string) ([]dto.CourseSummary, error) {
	if _, err := s.repo.Class.GetByID(ctx, classID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		s.logger.Error("load class failed", zap.String("class_id", classID), zap.Error(err))
		return nil, err
	}

	cacheKey := courseCacheKeyPrefix + classID
	if s.cache != nil {
		var cached []dto.CourseSummary
		hit, err := s.cache.GetJSON(ctx, cacheKey, &cached)
		if err != nil {
			s.logger.Warn("read course cache failed", zap.String("class_id", classID), zap.Error(err))
		} else if hit {
			return cached, nil
		}
	}

	courses, err := s.repo.Course.ListByClass(ctx, classID)
	if err != nil {
		s.logger.Error("list courses failed", zap.String("class_id", classID), zap.Error(err))
		return nil, err
	}

	summaries := make([]dto.CourseSummary, 0, len(courses))
	for _, course := range courses {
		summary := dto.CourseSummary{
			CourseID:   course.CourseID,
			CourseName: course.CourseName,
		}
		if course.Lecturer != nil {
			summary.Lecturer = course.Lecturer.FullName
		}
		// Kept behavior: counts the class's course associations.
		if course.Class != nil {
			summary.TotalStudents = len(course.Class.Courses)
		}
		summaries = append(summaries, summary)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKey, summaries, s.cacheTTL); err != nil {
			s.logger.Warn("write course cache failed", zap.String("class_id", classID), zap.Error(err))
		}
	}
	return summaries, nil
}

func (s *courseService) RegistrationOptions(ctx context.Context) (*dto.CourseFormOptions, error) {
	classes, err := s.repo.Class.List(ctx)
	if err != nil {
		return nil, err
	}
	lecturers, err := s.repo.User.ListByRole(ctx, model.RoleLecturer)
	if err != nil {
		return nil, err
	}
	rooms, err := s.repo.Room.List(ctx)
	if err != nil {
		return nil, err
	}

	options := &dto.CourseFormOptions{
		DaysOfWeek: append([]string(nil), daysOfWeek...),
	}
	for _, c := range classes {
		options.Classes = append(options.Classes, c.ClassID)
	}
	for _, l := range lecturers {
		options.Lecturers = append(options.Lecturers, dto.LecturerOption{NIP: l.UserID, Name: l.FullName})
	}
	for _, r := range rooms {
		options.Rooms = append(options.Rooms, r.RoomID)
	}
	return options, nil
}

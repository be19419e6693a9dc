package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/model"
)

// CourseRepository is the course-table access interface.
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id string) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	// ListByClass loads the class's courses with the lecturer and the
	// class (including its course collection) preloaded, the shape the
	// course listing serializer needs.
	ListByClass(ctx context.Context, classID string) ([]model.Course, error)
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo creates the GORM-backed CourseRepository.
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Where("course_id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Order("course_id").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) ListByClass(ctx context.Context, classID string) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).
		Preload("Lecturer").
		Preload("Class.Courses").
		Where("class_id = ?", classID).
		Order("course_id").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

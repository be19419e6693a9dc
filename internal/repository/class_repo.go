package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/model"
)

// ClassRepository is the class-table access interface.
type ClassRepository interface {
	GetByID(ctx context.Context, id string) (*model.Class, error)
	List(ctx context.Context) ([]model.Class, error)
}

type classRepo struct {
	db *gorm.DB
}

// NewClassRepo creates the GORM-backed ClassRepository.
func NewClassRepo(db *gorm.DB) ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) GetByID(ctx context.Context, id string) (*model.Class, error) {
	var class model.Class
	err := r.db.WithContext(ctx).
		Where("class_id = ?", id).
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepo) List(ctx context.Context) ([]model.Class, error) {
	var classes []model.Class
	err := r.db.WithContext(ctx).
		Order("class_id").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

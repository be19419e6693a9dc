package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/model"
)

// UserRepository is the user-table access interface. Identity lookups are
// role-qualified: the same table holds students (NIM), lecturers (NIP)
// and admins.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByIDAndRole(ctx context.Context, id string, role model.UserRole) (*model.User, error)
	ListByRole(ctx context.Context, role model.UserRole) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	CountStudentsByClass(ctx context.Context, classID string) (int64, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo creates the GORM-backed UserRepository.
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByIDAndRole(ctx context.Context, id string, role model.UserRole) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND user_role = ?", id, role).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) ListByRole(ctx context.Context, role model.UserRole) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("user_role = ?", role).
		Order("user_id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) CountStudentsByClass(ctx context.Context, classID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("student_class = ? AND user_role = ?", classID, model.RoleStudent).
		Count(&count).Error
	return count, err
}

package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/model"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid user id or password")

// AuthService checks login credentials. Session handling lives in the
// HTTP layer.
type AuthService interface {
	Login(ctx context.Context, userID, password string) (*model.User, error)
}

type authService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAuthService creates the AuthService.
func NewAuthService(repo *repository.Repository, logger *zap.Logger) AuthService {
	return &authService{repo: repo, logger: logger}
}

func (s *authService) Login(ctx context.Context, userID, password string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("load user failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

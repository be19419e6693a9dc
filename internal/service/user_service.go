package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/dto"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/model"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/repository"
)

var (
	ErrStudentNotFound  = errors.New("Student not found")
	ErrLecturerNotFound = errors.New("Lecturer not found")
)

// UserService registers and edits students and lecturers. Edit never
// changes the identifier, and blank password/RFID fields keep the
// stored hashes.
type UserService interface {
	RegisterStudent(ctx context.Context, form *dto.StudentForm) error
	EditStudent(ctx context.Context, nim string, form *dto.StudentForm) error
	RegisterLecturer(ctx context.Context, form *dto.LecturerForm) error
	EditLecturer(ctx context.Context, nip string, form *dto.LecturerForm) error
}

type userService struct {
	validator
	logger *zap.Logger
}

// NewUserService creates the UserService.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{validator: validator{repo: repo}, logger: logger}
}

func (s *userService) RegisterStudent(ctx context.Context, form *dto.StudentForm) error {
	err := s.validateUserForm(ctx, &userForm{
		UserID:          form.NIM,
		Role:            model.RoleStudent,
		FullName:        form.Name,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
		Email:           form.Email,
		RFIDUID:         form.RFIDUID,
		HomeAddress:     form.HomeAddress,
		StudentClass:    form.Class,
	})
	if err != nil {
		return err
	}

	pwHash, err := hashSecret(form.Password)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return err
	}
	uidHash, err := hashSecret(form.RFIDUID)
	if err != nil {
		s.logger.Error("hash rfid uid failed", zap.Error(err))
		return err
	}

	class := form.Class
	student := &model.User{
		UserID:       form.NIM,
		Role:         model.RoleStudent,
		FullName:     form.Name,
		PasswordHash: pwHash,
		RFIDHash:     &uidHash,
		EmailAddress: form.Email,
		HomeAddress:  form.HomeAddress,
		StudentClass: &class,
	}

	if err := s.repo.User.Create(ctx, student); err != nil {
		s.logger.Error("create student failed", zap.String("nim", form.NIM), zap.Error(err))
		return err
	}
	return nil
}

func (s *userService) EditStudent(ctx context.Context, nim string, form *dto.StudentForm) error {
	found, err := s.repo.User.GetByIDAndRole(ctx, nim, model.RoleStudent)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("load student failed", zap.String("nim", nim), zap.Error(err))
		return err
	}

	err = s.validateUserForm(ctx, &userForm{
		UserID:          form.NIM,
		Role:            model.RoleStudent,
		FullName:        form.Name,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
		Email:           form.Email,
		RFIDUID:         form.RFIDUID,
		HomeAddress:     form.HomeAddress,
		StudentClass:    form.Class,
		EditMode:        true,
		CurrentID:       nim,
	})
	if err != nil {
		return err
	}

	// Mutate a local copy only; on persistence failure the half-updated
	// entity is discarded with the request.
	found.FullName = form.Name
	if form.Password != "" {
		hash, err := hashSecret(form.Password)
		if err != nil {
			return err
		}
		found.PasswordHash = hash
	}
	if form.RFIDUID != "" {
		hash, err := hashSecret(form.RFIDUID)
		if err != nil {
			return err
		}
		found.RFIDHash = &hash
	}
	found.EmailAddress = form.Email
	found.HomeAddress = form.HomeAddress

	if err := s.repo.User.Update(ctx, found); err != nil {
		s.logger.Error("update student failed", zap.String("nim", nim), zap.Error(err))
		return err
	}
	return nil
}

func (s *userService) RegisterLecturer(ctx context.Context, form *dto.LecturerForm) error {
	err := s.validateUserForm(ctx, &userForm{
		UserID:          form.NIP,
		Role:            model.RoleLecturer,
		FullName:        form.Name,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
		Email:           form.Email,
		RFIDUID:         form.RFIDUID,
		HomeAddress:     form.HomeAddress,
		LecturerMajor:   form.Major,
	})
	if err != nil {
		return err
	}

	pwHash, err := hashSecret(form.Password)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return err
	}
	uidHash, err := hashSecret(form.RFIDUID)
	if err != nil {
		s.logger.Error("hash rfid uid failed", zap.Error(err))
		return err
	}

	major := model.Major(form.Major)
	lecturer := &model.User{
		UserID:       form.NIP,
		Role:         model.RoleLecturer,
		FullName:     form.Name,
		PasswordHash: pwHash,
		RFIDHash:     &uidHash,
		EmailAddress: form.Email,
		HomeAddress:  form.HomeAddress,
		Major:        &major,
	}

	if err := s.repo.User.Create(ctx, lecturer); err != nil {
		s.logger.Error("create lecturer failed", zap.String("nip", form.NIP), zap.Error(err))
		return err
	}
	return nil
}

// EditLecturer mirrors EditStudent for the lecturer role.
func (s *userService) EditLecturer(ctx context.Context, nip string, form *dto.LecturerForm) error {
	found, err := s.repo.User.GetByIDAndRole(ctx, nip, model.RoleLecturer)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLecturerNotFound
		}
		s.logger.Error("load lecturer failed", zap.String("nip", nip), zap.Error(err))
		return err
	}

	err = s.validateUserForm(ctx, &userForm{
		UserID:          form.NIP,
		Role:            model.RoleLecturer,
		FullName:        form.Name,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
		Email:           form.Email,
		RFIDUID:         form.RFIDUID,
		HomeAddress:     form.HomeAddress,
		LecturerMajor:   form.Major,
		EditMode:        true,
		CurrentID:       nip,
	})
	if err != nil {
		return err
	}

	found.FullName = form.Name
	if form.Password != "" {
		hash, err := hashSecret(form.Password)
		if err != nil {
			return err
		}
		found.PasswordHash = hash
	}
	if form.RFIDUID != "" {
		hash, err := hashSecret(form.RFIDUID)
		if err != nil {
			return err
		}
		found.RFIDHash = &hash
	}
	found.EmailAddress = form.Email
	found.HomeAddress = form.HomeAddress

	if err := s.repo.User.Update(ctx, found); err != nil {
		s.logger.Error("update lecturer failed", zap.String("nip", nip), zap.Error(err))
		return err
	}
	return nil
}

func hashSecret(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

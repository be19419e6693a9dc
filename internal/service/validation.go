package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"gorm.io/gorm"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/model"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/repository"
)

// FormError carries the validation failure messages of a single call.
// Rules short-circuit, so in practice it holds one message, but the
// type keeps room for accumulation.
type FormError struct {
	Messages []string
}

func (e *FormError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func formErr(messages ...string) *FormError {
	return &FormError{Messages: messages}
}

// userForm is the normalized input of the user validation rules.
// CurrentID identifies the row being edited so the uniqueness check can
// exclude it; it is empty outside edit mode.
type userForm struct {
	UserID          string
	Role            model.UserRole
	FullName        string
	Password        string
	ConfirmPassword string
	Email           string
	RFIDUID         string
	HomeAddress     string
	StudentClass    string
	LecturerMajor   string
	EditMode        bool
	CurrentID       string
}

// courseForm is the normalized input of the course validation rules.
type courseForm struct {
	CourseID    string
	Name        string
	SKS         int
	Semester    int
	Day         string
	TimeStart   string
	TimeEnd     string
	Description string
	LecturerNIP string
	ClassID     string
	RoomID      string
}

// validator evaluates the registration business rules against the
// record store. Rules run in a fixed order and stop at the first
// violation; message texts match what the admin UI has always shown.
type validator struct {
	repo *repository.Repository
}

func (v *validator) validateUserForm(ctx context.Context, f *userForm) error {
	if !f.EditMode {
		if f.UserID == "" || f.FullName == "" || f.Password == "" ||
			f.ConfirmPassword == "" || f.Email == "" || f.RFIDUID == "" {
			return formErr("Please fill all the form!")
		}
		if f.Password != f.ConfirmPassword {
			return formErr("Confirm password must be same as password!")
		}
		if len(f.Password) < 8 {
			return formErr("Password must be at least 8 characters!")
		}
		if !passwordMeetsComposition(f.Password) {
			return formErr("Password must contain minimum 1 uppercase, 1 lowercase, 1 number, and 1 symbol!")
		}
		switch f.Role {
		case model.RoleStudent:
			if _, err := v.repo.User.GetByIDAndRole(ctx, f.UserID, model.RoleStudent); err == nil {
				return formErr("Student already registered!")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		case model.RoleLecturer:
			if _, err := v.repo.User.GetByIDAndRole(ctx, f.UserID, model.RoleLecturer); err == nil {
				return formErr("Lecturer already registered!")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}
	} else {
		// Edit mode: the identifier must not collide with any row other
		// than the one being edited.
		switch f.Role {
		case model.RoleStudent:
			taken, err := v.idTakenByOther(ctx, model.RoleStudent, f.UserID, f.CurrentID)
			if err != nil {
				return err
			}
			if taken {
				return formErr("Student already registered. Use different NIM!")
			}
		case model.RoleLecturer:
			taken, err := v.idTakenByOther(ctx, model.RoleLecturer, f.UserID, f.CurrentID)
			if err != nil {
				return err
			}
			if taken {
				return formErr("Lecturer already registered. Use different NIP!")
			}
		}
	}

	if !strings.Contains(f.Email, "@") {
		return formErr("Email address is not valid!")
	}
	if f.HomeAddress != "" && len(f.HomeAddress) > 256 {
		return formErr("Home address must be less than 256 characters!")
	}

	switch f.Role {
	case model.RoleStudent:
		if len(f.UserID) != 10 {
			return formErr("Student NIM must be 10 characters long!")
		}
		if _, err := v.repo.Class.GetByID(ctx, f.StudentClass); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return formErr("Student class is not valid!")
			}
			return err
		}
	case model.RoleLecturer:
		if len(f.UserID) != 18 {
			return formErr("Lecturer NIP must be 18 characters long!")
		}
		if !isValidMajor(f.LecturerMajor) {
			return formErr("Lecturer major is not valid!")
		}
	}

	return nil
}

func (v *validator) validateCourseForm(ctx context.Context, f *courseForm) error {
	if f.CourseID == "" || f.Name == "" || f.SKS == 0 || f.Semester == 0 ||
		f.Day == "" || f.TimeStart == "" || f.TimeEnd == "" ||
		f.LecturerNIP == "" || f.ClassID == "" || f.RoomID == "" {
		return formErr("Please fill all the form!")
	}
	if len(f.CourseID) > 15 {
		return formErr("Course ID must be less than 15 characters!")
	}
	if len(f.Name) > 100 {
		return formErr("Course name must be less than 100 characters!")
	}
	// The enforced ranges are narrower than the messages claim; both
	// texts ship to users as-is.
	if f.SKS < 1 || f.SKS >= 6 {
		return formErr("Course SKS must be between 1 and 8!")
	}
	if f.Semester < 1 || f.Semester >= 8 {
		return formErr("Course semester must be between 1 and 8!")
	}
	if !isValidDay(f.Day) {
		return formErr("Day must be a day of week!")
	}
	if f.TimeStart == f.TimeEnd {
		return formErr("Time start and time end must be different!")
	}
	// Accepts the form when either bound parses, not both.
	if !(isValidTime(f.TimeStart) || isValidTime(f.TimeEnd)) {
		return formErr("Time start or time end must be in format HH:MM AM/PM!")
	}
	if len(f.Description) > 256 {
		return formErr("Course description must be less than 256 characters!")
	}

	if _, err := v.repo.User.GetByIDAndRole(ctx, f.LecturerNIP, model.RoleLecturer); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return formErr("Lecturer NIP is not valid!")
		}
		return err
	}
	if _, err := v.repo.Course.GetByID(ctx, f.CourseID); err == nil {
		return formErr("Course already registered!")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if _, err := v.repo.Class.GetByID(ctx, f.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return formErr("Class ID is not valid!")
		}
		return err
	}
	if _, err := v.repo.Room.GetByID(ctx, f.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return formErr("Room ID is not valid!")
		}
		return err
	}

	return nil
}

// idTakenByOther reports whether another row of the role carries the
// submitted identifier. The row identified by currentID is excluded.
func (v *validator) idTakenByOther(ctx context.Context, role model.UserRole, id, currentID string) (bool, error) {
	users, err := v.repo.User.ListByRole(ctx, role)
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.UserID == currentID {
			continue
		}
		if u.UserID == id {
			return true, nil
		}
	}
	return false, nil
}

func passwordMeetsComposition(pw string) bool {
	var upper, lower, digit, symbol bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// daysOfWeek are the schedulable course days. Sunday is not one.
var daysOfWeek = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func isValidDay(day string) bool {
	if day == "" {
		return false
	}
	capitalized := strings.ToUpper(day[:1]) + strings.ToLower(day[1:])
	for _, d := range daysOfWeek {
		if capitalized == d {
			return true
		}
	}
	return false
}

func isValidTime(value string) bool {
	_, err := time.Parse("15:04:05", value)
	return err == nil
}

func isValidMajor(major string) bool {
	for _, m := range model.Majors() {
		if model.Major(major) == m {
			return true
		}
	}
	return false
}

package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/dto"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/model"
)

// ── Test helpers ──

func setupTestUserService() (UserService, *testRepos) {
	repo, mocks := newTestRepo()
	mocks.classes.classes["TI-3A"] = &model.Class{ClassID: "TI-3A"}
	svc := NewUserService(repo, zap.NewNop())
	return svc, mocks
}

func validStudentForm() *dto.StudentForm {
	return &dto.StudentForm{
		Name:            "Budi Santoso",
		NIM:             "1201194321",
		Class:           "TI-3A",
		Password:        "Sup3r!Secret",
		ConfirmPassword: "Sup3r!Secret",
		Email:           "budi@student.example.ac.id",
		HomeAddress:     "Jl. Telekomunikasi No. 1",
		RFIDUID:         "04A224E1B33C80",
	}
}

func validLecturerForm() *dto.LecturerForm {
	return &dto.LecturerForm{
		Name:            "Dr. Siti Rahma",
		NIP:             "198709132015042001",
		Major:           "INFORMATICS",
		Password:        "Sup3r!Secret",
		ConfirmPassword: "Sup3r!Secret",
		Email:           "siti@lecturer.example.ac.id",
		HomeAddress:     "Jl. Buah Batu No. 2",
		RFIDUID:         "04B993F2C44D91",
	}
}

func assertFormError(t *testing.T, err error, want string) {
	t.Helper()
	var formErr *FormError
	if !errors.As(err, &formErr) {
		t.Fatalf("expected FormError, got: %v", err)
	}
	if len(formErr.Messages) != 1 || formErr.Messages[0] != want {
		t.Errorf("expected message %q, got %v", want, formErr.Messages)
	}
}

// ── RegisterStudent ──

func TestUserService_RegisterStudent_Success(t *testing.T) {
	svc, mocks := setupTestUserService()

	if err := svc.RegisterStudent(context.Background(), validStudentForm()); err != nil {
		t.Fatalf("RegisterStudent should succeed: %v", err)
	}

	stored, ok := mocks.users.users["1201194321"]
	if !ok {
		t.Fatal("student was not persisted")
	}
	if stored.Role != model.RoleStudent {
		t.Errorf("expected role STUDENT, got %s", stored.Role)
	}
	if stored.StudentClass == nil || *stored.StudentClass != "TI-3A" {
		t.Error("student class was not stored")
	}
	if stored.Major != nil {
		t.Error("student must not carry a lecturer major")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Sup3r!Secret")); err != nil {
		t.Error("stored password hash does not verify")
	}
	if stored.RFIDHash == nil {
		t.Fatal("rfid hash missing")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*stored.RFIDHash), []byte("04A224E1B33C80")); err != nil {
		t.Error("stored rfid hash does not verify")
	}
}

func TestUserService_RegisterStudent_MissingFields(t *testing.T) {
	svc, _ := setupTestUserService()

	form := validStudentForm()
	form.Email = ""

	err := svc.RegisterStudent(context.Background(), form)
	assertFormError(t, err, "Please fill all the form!")
}

func TestUserService_RegisterStudent_ConfirmMismatch(t *testing.T) {
	svc, _ := setupTestUserService()

	form := validStudentForm()
	form.ConfirmPassword = "Different1!"

	err := svc.RegisterStudent(context.Background(), form)
	assertFormError(t, err, "Confirm password must be same as password!")
}

func TestUserService_RegisterStudent_ShortPassword(t *testing.T) {
	svc, _ := setupTestUserService()

	form := validStudentForm()
	form.Password = "Ab1!"
	form.ConfirmPassword = "Ab1!"

	err := svc.RegisterStudent(context.Background(), form)
	assertFormError(t, err, "Password must be at least 8 characters!")
}

func TestUserService_RegisterStudent_WeakComposition(t *testing.T) {
	svc, _ := setupTestUserService()

	// Long enough but no digit and no symbol.
	form := validStudentForm()
	form.Password = "OnlyLetters"
	form.ConfirmPassword = "OnlyLetters"

	err := svc.RegisterStudent(context.Background(), form)
	assertFormError(t, err, "Password must contain minimum 1 uppercase, 1 lowercase, 1 number, and 1 symbol!")
}

func TestUserService_RegisterStudent_Duplicate(t *testing.T) {
	svc, _ := setupTestUserService()

	if err := svc.RegisterStudent(context.Background(), validStudentForm()); err != nil {
		t.Fatalf("first registration should succeed: %v", err)
	}

	err := svc.RegisterStudent(context.Background(), validStudentForm())
	assertFormError(t, err, "Student already registered!")
}

func TestUserService_RegisterStudent_InvalidEmail(t *testing.T) {
	svc, _ := setupTestUserService()

	form := validStudentForm()
	form.Email = "not-an-email"

	err := svc.RegisterStudent(context.Background(), form)
	assertFormError(t, err, "Email address is not valid!")
}

func TestUserService_RegisterStudent_WrongNIMLength(t *testing.T) {
	svc, _ := setupTestUserService()

	form := validStudentForm()
	form.NIM = "12011"

	err := svc.RegisterStudent(context.Background(), form)
	assertFormError(t, err, "Student NIM must be 10 characters long!")
}

func TestUserService_RegisterStudent_UnknownClass(t *testing.T) {
	svc, _ := setupTestUserService()

	form := validStudentForm()
	form.Class = "XX-9Z"

	err := svc.RegisterStudent(context.Background(), form)
	assertFormError(t, err, "Student class is not valid!")
}

// ── RegisterLecturer ──

func TestUserService_RegisterLecturer_Success(t *testing.T) {
	svc, mocks := setupTestUserService()

	if err := svc.RegisterLecturer(context.Background(), validLecturerForm()); err != nil {
		t.Fatalf("RegisterLecturer should succeed: %v", err)
	}

	stored, ok := mocks.users.users["198709132015042001"]
	if !ok {
		t.Fatal("lecturer was not persisted")
	}
	if stored.Role != model.RoleLecturer {
		t.Errorf("expected role LECTURER, got %s", stored.Role)
	}
	if stored.Major == nil || *stored.Major != model.MajorInformatics {
		t.Error("lecturer major was not stored")
	}
	if stored.StudentClass != nil {
		t.Error("lecturer must not carry a student class")
	}
}

func TestUserService_RegisterLecturer_WrongNIPLength(t *testing.T) {
	svc, _ := setupTestUserService()

	form := validLecturerForm()
	form.NIP = "12345"

	err := svc.RegisterLecturer(context.Background(), form)
	assertFormError(t, err, "Lecturer NIP must be 18 characters long!")
}

func TestUserService_RegisterLecturer_UnknownMajor(t *testing.T) {
	svc, _ := setupTestUserService()

	form := validLecturerForm()
	form.Major = "ASTROLOGY"

	err := svc.RegisterLecturer(context.Background(), form)
	assertFormError(t, err, "Lecturer major is not valid!")
}

func TestUserService_RegisterLecturer_Duplicate(t *testing.T) {
	svc, _ := setupTestUserService()

	if err := svc.RegisterLecturer(context.Background(), validLecturerForm()); err != nil {
		t.Fatalf("first registration should succeed: %v", err)
	}

	err := svc.RegisterLecturer(context.Background(), validLecturerForm())
	assertFormError(t, err, "Lecturer already registered!")
}

// ── EditStudent ──

func TestUserService_EditStudent_BlankSecretsKeepHashes(t *testing.T) {
	svc, mocks := setupTestUserService()

	if err := svc.RegisterStudent(context.Background(), validStudentForm()); err != nil {
		t.Fatalf("register: %v", err)
	}
	before := mocks.users.users["1201194321"]
	pwHash := before.PasswordHash
	uidHash := *before.RFIDHash

	form := validStudentForm()
	form.Name = "Budi S. Pratama"
	form.Email = "budi.pratama@student.example.ac.id"
	form.Password = ""
	form.ConfirmPassword = ""
	form.RFIDUID = ""

	if err := svc.EditStudent(context.Background(), "1201194321", form); err != nil {
		t.Fatalf("EditStudent should succeed: %v", err)
	}

	after := mocks.users.users["1201194321"]
	if after.FullName != "Budi S. Pratama" {
		t.Errorf("name was not updated: %s", after.FullName)
	}
	if after.EmailAddress != "budi.pratama@student.example.ac.id" {
		t.Errorf("email was not updated: %s", after.EmailAddress)
	}
	if after.PasswordHash != pwHash {
		t.Error("blank password must keep the stored hash")
	}
	if after.RFIDHash == nil || *after.RFIDHash != uidHash {
		t.Error("blank rfid uid must keep the stored hash")
	}
	if after.StudentClass == nil || *after.StudentClass != "TI-3A" {
		t.Error("edit must not change the class")
	}
}

func TestUserService_EditStudent_NewPasswordRehashed(t *testing.T) {
	svc, mocks := setupTestUserService()

	if err := svc.RegisterStudent(context.Background(), validStudentForm()); err != nil {
		t.Fatalf("register: %v", err)
	}

	form := validStudentForm()
	form.Password = "N3w!Passw0rd"
	form.ConfirmPassword = "N3w!Passw0rd"

	if err := svc.EditStudent(context.Background(), "1201194321", form); err != nil {
		t.Fatalf("EditStudent should succeed: %v", err)
	}

	after := mocks.users.users["1201194321"]
	if err := bcrypt.CompareHashAndPassword([]byte(after.PasswordHash), []byte("N3w!Passw0rd")); err != nil {
		t.Error("new password hash does not verify")
	}
}

func TestUserService_EditStudent_NotFound(t *testing.T) {
	svc, _ := setupTestUserService()

	err := svc.EditStudent(context.Background(), "9999999999", validStudentForm())
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound, got: %v", err)
	}
}

func TestUserService_EditStudent_NIMCollision(t *testing.T) {
	svc, _ := setupTestUserService()

	if err := svc.RegisterStudent(context.Background(), validStudentForm()); err != nil {
		t.Fatalf("register first: %v", err)
	}
	second := validStudentForm()
	second.NIM = "1201195555"
	second.Email = "second@student.example.ac.id"
	if err := svc.RegisterStudent(context.Background(), second); err != nil {
		t.Fatalf("register second: %v", err)
	}

	// Submitting the other student's NIM on an edit is rejected.
	form := validStudentForm()
	form.NIM = "1201195555"

	err := svc.EditStudent(context.Background(), "1201194321", form)
	assertFormError(t, err, "Student already registered. Use different NIM!")
}

func TestUserService_EditStudent_OwnNIMAllowed(t *testing.T) {
	svc, _ := setupTestUserService()

	if err := svc.RegisterStudent(context.Background(), validStudentForm()); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Resubmitting the student's own NIM is not a collision.
	if err := svc.EditStudent(context.Background(), "1201194321", validStudentForm()); err != nil {
		t.Fatalf("EditStudent should succeed: %v", err)
	}
}

// ── EditLecturer ──

func TestUserService_EditLecturer_Success(t *testing.T) {
	svc, mocks := setupTestUserService()

	if err := svc.RegisterLecturer(context.Background(), validLecturerForm()); err != nil {
		t.Fatalf("register: %v", err)
	}

	form := validLecturerForm()
	form.Name = "Prof. Siti Rahma"
	form.Password = ""
	form.ConfirmPassword = ""
	form.RFIDUID = ""

	if err := svc.EditLecturer(context.Background(), "198709132015042001", form); err != nil {
		t.Fatalf("EditLecturer should succeed: %v", err)
	}

	after := mocks.users.users["198709132015042001"]
	if after.FullName != "Prof. Siti Rahma" {
		t.Errorf("name was not updated: %s", after.FullName)
	}
	if after.Major == nil || *after.Major != model.MajorInformatics {
		t.Error("edit must not change the major")
	}
}

func TestUserService_EditLecturer_NotFound(t *testing.T) {
	svc, _ := setupTestUserService()

	err := svc.EditLecturer(context.Background(), "000000000000000000", validLecturerForm())
	if !errors.Is(err, ErrLecturerNotFound) {
		t.Errorf("expected ErrLecturerNotFound, got: %v", err)
	}
}

package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/model"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // key: user_id
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByIDAndRole(_ context.Context, id string, role model.UserRole) (*model.User, error) {
	if u, ok := m.users[id]; ok && u.Role == role {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) ListByRole(_ context.Context, role model.UserRole) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.Role == role {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UserID < result[j].UserID })
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) CountStudentsByClass(_ context.Context, classID string) (int64, error) {
	var count int64
	for _, u := range m.users {
		if u.Role == model.RoleStudent && u.StudentClass != nil && *u.StudentClass == classID {
			count++
		}
	}
	return count, nil
}

// ── Mock ClassRepository ──

type mockClassRepo struct {
	classes map[string]*model.Class
}

func newMockClassRepo() *mockClassRepo {
	return &mockClassRepo{classes: make(map[string]*model.Class)}
}

func (m *mockClassRepo) GetByID(_ context.Context, id string) (*model.Class, error) {
	if c, ok := m.classes[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassRepo) List(_ context.Context) ([]model.Class, error) {
	var result []model.Class
	for _, c := range m.classes {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ClassID < result[j].ClassID })
	return result, nil
}

// ── Mock RoomRepository ──

type mockRoomRepo struct {
	rooms map[string]*model.Room
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[string]*model.Room)}
}

func (m *mockRoomRepo) GetByID(_ context.Context, id string) (*model.Room, error) {
	if r, ok := m.rooms[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) List(_ context.Context) ([]model.Room, error) {
	var result []model.Room
	for _, r := range m.rooms {
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].RoomID < result[j].RoomID })
	return result, nil
}

// ── Mock CourseRepository ──

// mockCourseRepo resolves the Lecturer and Class.Courses associations
// from its sibling mocks the way the GORM preloads do.
type mockCourseRepo struct {
	courses map[string]*model.Course
	users   *mockUserRepo
}

func newMockCourseRepo(users *mockUserRepo) *mockCourseRepo {
	return &mockCourseRepo{courses: make(map[string]*model.Course), users: users}
}

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	m.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id string) (*model.Course, error) {
	if c, ok := m.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	var result []model.Course
	for _, c := range m.courses {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CourseID < result[j].CourseID })
	return result, nil
}

func (m *mockCourseRepo) ListByClass(_ context.Context, classID string) ([]model.Course, error) {
	var classCourses []model.Course
	for _, c := range m.courses {
		if c.ClassID == classID {
			classCourses = append(classCourses, *c)
		}
	}
	sort.Slice(classCourses, func(i, j int) bool { return classCourses[i].CourseID < classCourses[j].CourseID })

	class := &model.Class{ClassID: classID, Courses: classCourses}
	result := make([]model.Course, len(classCourses))
	for i, c := range classCourses {
		c.Class = class
		if lecturer, ok := m.users.users[c.LecturerNIP]; ok {
			c.Lecturer = lecturer
		}
		result[i] = c
	}
	return result, nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	studentLogs  []model.StudentAttendanceLog
	lecturerLogs []model.LecturerAttendanceLog
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{}
}

func (m *mockAttendanceRepo) ListStudentLogs(_ context.Context, courseID, nim string) ([]model.StudentAttendanceLog, error) {
	var result []model.StudentAttendanceLog
	for _, log := range m.studentLogs {
		if courseID != "" && log.CourseID != courseID {
			continue
		}
		if nim != "" && log.StudentNIM != nim {
			continue
		}
		result = append(result, log)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].TimeIn.Before(result[j].TimeIn) })
	return result, nil
}

func (m *mockAttendanceRepo) ListLecturerLogs(_ context.Context, courseID, nip string) ([]model.LecturerAttendanceLog, error) {
	var result []model.LecturerAttendanceLog
	for _, log := range m.lecturerLogs {
		if courseID != "" && log.CourseID != courseID {
			continue
		}
		if nip != "" && log.LecturerNIP != nip {
			continue
		}
		result = append(result, log)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].TimeIn.Before(result[j].TimeIn) })
	return result, nil
}

// ── Aggregate helper ──

type testRepos struct {
	users      *mockUserRepo
	classes    *mockClassRepo
	rooms      *mockRoomRepo
	courses    *mockCourseRepo
	attendance *mockAttendanceRepo
}

func newTestRepo() (*repository.Repository, *testRepos) {
	users := newMockUserRepo()
	classes := newMockClassRepo()
	rooms := newMockRoomRepo()
	courses := newMockCourseRepo(users)
	attendance := newMockAttendanceRepo()

	repo := &repository.Repository{
		User:       users,
		Class:      classes,
		Course:     courses,
		Room:       rooms,
		Attendance: attendance,
	}
	return repo, &testRepos{
		users:      users,
		classes:    classes,
		rooms:      rooms,
		courses:    courses,
		attendance: attendance,
	}
}

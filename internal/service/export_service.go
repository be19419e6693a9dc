package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/model"
	"github.com/wahyu-priambodo/IoT-Based-Attendance-System/internal/repository"
)

var ErrExportGenerateFail = errors.New("generate export file failed")

// ExportService renders attendance logs as an Excel workbook and class
// timetables as iCalendar feeds. Buffers are returned to the handler,
// which sets the download headers.
type ExportService interface {
	ExportAttendance(ctx context.Context, role, courseID, nim, nip string) (*bytes.Buffer, string, error)
	ExportClassTimetable(ctx context.Context, classID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	attendance AttendanceService
	repo       *repository.Repository
	logger     *zap.Logger
}

// NewExportService creates the ExportService.
func NewExportService(attendance AttendanceService, repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{attendance: attendance, repo: repo, logger: logger}
}

// ExportAttendance delegates to the attendance listing and writes the
// records as one sheet with a header row.
func (s *exportService) ExportAttendance(ctx context.Context, role, courseID, nim, nip string) (*bytes.Buffer, string, error) {
	records, err := s.attendance.ListLogs(ctx, role, courseID, nim, nip)
	if err != nil {
		return nil, "", err
	}

	idHeader := "nim"
	if model.UserRole(role) == model.RoleLecturer {
		idHeader = "nip"
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	header := []interface{}{"log_id", idHeader, "name", "course", "room", "time_in", "status"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		s.logger.Error("write header row failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	for i, record := range records {
		id := record.NIM
		if record.NIP != "" {
			id = record.NIP
		}
		row := []interface{}{record.LogID, id, record.Name, record.Course, record.Room, record.TimeIn, record.Status}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", ErrExportGenerateFail
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			s.logger.Error("write data row failed", zap.Int("row", i+2), zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("write workbook failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("%s_attendance_logs.xlsx", strings.ToLower(role))
	return buf, filename, nil
}

// ExportClassTimetable renders the class's weekly course schedule as an
// iCalendar feed with one weekly-recurring event per course.
func (s *exportService) ExportClassTimetable(ctx context.Context, classID string) (*bytes.Buffer, string, error) {
	if _, err := s.repo.Class.GetByID(ctx, classID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrClassNotFound
		}
		return nil, "", err
	}

	courses, err := s.repo.Course.ListByClass(ctx, classID)
	if err != nil {
		s.logger.Error("list courses failed", zap.String("class_id", classID), zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Presensia//Class Timetable//EN")

	now := time.Now()
	for _, course := range courses {
		start, endTime, ok := courseOccurrence(&course, now)
		if !ok {
			// A stored course with an unparseable day or time is a data
			// defect; skip it rather than fail the whole feed.
			s.logger.Warn("skip course with invalid schedule",
				zap.String("course_id", course.CourseID),
				zap.String("day", course.Day),
			)
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s@%s", course.CourseID, classID))
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(endTime)
		event.SetSummary(course.CourseName)
		event.SetLocation(course.RoomID)
		if course.Description != "" {
			event.SetDescription(course.Description)
		}
		event.AddRrule("FREQ=WEEKLY")
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("%s_timetable.ics", classID)
	return buf, filename, nil
}

var weekdayByName = map[string]time.Weekday{
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// courseOccurrence computes the next occurrence of the course's weekly
// slot at or after ref.
func courseOccurrence(course *model.Course, ref time.Time) (start, end time.Time, ok bool) {
	day := course.Day
	if day != "" {
		day = strings.ToUpper(day[:1]) + strings.ToLower(day[1:])
	}
	weekday, found := weekdayByName[day]
	if !found {
		return time.Time{}, time.Time{}, false
	}

	startClock, err := time.Parse("15:04:05", course.TimeStart)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	endClock, err := time.Parse("15:04:05", course.TimeEnd)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	daysAhead := (int(weekday) - int(ref.Weekday()) + 7) % 7
	date := ref.AddDate(0, 0, daysAhead)

	start = time.Date(date.Year(), date.Month(), date.Day(),
		startClock.Hour(), startClock.Minute(), startClock.Second(), 0, ref.Location())
	end = time.Date(date.Year(), date.Month(), date.Day(),
		endClock.Hour(), endClock.Minute(), endClock.Second(), 0, ref.Location())
	return start, end, true
}

package model

import "time"

// AttendanceStatus is the check-in outcome recorded by the RFID reader.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusLate    AttendanceStatus = "LATE"
	StatusAbsent  AttendanceStatus = "ABSENT"
)

// StudentAttendanceLog is one student check-in. Rows are written by the
// external check-in service; this application only reads them.
type StudentAttendanceLog struct {
	LogID      string           `gorm:"column:log_id;type:char(36);primaryKey"        json:"log_id"`
	StudentNIM string           `gorm:"column:student_nim;type:varchar(18);not null"  json:"student_nim"`
	CourseID   string           `gorm:"column:course_id;type:varchar(15);not null"    json:"course_id"`
	RoomID     string           `gorm:"column:room_id;type:varchar(10);not null"      json:"room_id"`
	TimeIn     time.Time        `gorm:"column:time_in;not null"                       json:"time_in"`
	Status     AttendanceStatus `gorm:"column:status;type:varchar(10);not null"       json:"status"`

	Student *User   `gorm:"foreignKey:StudentNIM;references:UserID" json:"student,omitempty"`
	Course  *Course `gorm:"foreignKey:CourseID;references:CourseID" json:"course,omitempty"`
	Room    *Room   `gorm:"foreignKey:RoomID;references:RoomID"     json:"room,omitempty"`
}

// TableName pins the table name.
func (StudentAttendanceLog) TableName() string { return "student_attendance_logs" }

// LecturerAttendanceLog is one lecturer check-in, same lifecycle as the
// student variant.
type LecturerAttendanceLog struct {
	LogID       string           `gorm:"column:log_id;type:char(36);primaryKey"         json:"log_id"`
	LecturerNIP string           `gorm:"column:lecturer_nip;type:varchar(18);not null"  json:"lecturer_nip"`
	CourseID    string           `gorm:"column:course_id;type:varchar(15);not null"     json:"course_id"`
	RoomID      string           `gorm:"column:room_id;type:varchar(10);not null"       json:"room_id"`
	TimeIn      time.Time        `gorm:"column:time_in;not null"                        json:"time_in"`
	Status      AttendanceStatus `gorm:"column:status;type:varchar(10);not null"        json:"status"`

	Lecturer *User   `gorm:"foreignKey:LecturerNIP;references:UserID" json:"lecturer,omitempty"`
	Course   *Course `gorm:"foreignKey:CourseID;references:CourseID"  json:"course,omitempty"`
	Room     *Room   `gorm:"foreignKey:RoomID;references:RoomID"      json:"room,omitempty"`
}

// TableName pins the table name.
func (LecturerAttendanceLog) TableName() string { return "lecturer_attendance_logs" }

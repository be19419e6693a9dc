package model

// Course is a scheduled teaching unit: one lecturer, one class, one room,
// one weekday time range. SKS is the credit load. Times are stored as
// HH:MM:SS strings in TIME columns.
type Course struct {
	CourseID    string `gorm:"column:course_id;type:varchar(15);primaryKey"     json:"course_id"`
	CourseName  string `gorm:"column:course_name;type:varchar(100);not null"    json:"course_name"`
	SKS         int    `gorm:"column:course_sks;type:smallint;not null"         json:"course_sks"`
	AtSemester  int    `gorm:"column:at_semester;type:smallint;not null"        json:"at_semester"`
	Day         string `gorm:"column:day;type:varchar(10);not null"             json:"day"`
	TimeStart   string `gorm:"column:time_start;type:time;not null"             json:"time_start"`
	TimeEnd     string `gorm:"column:time_end;type:time;not null"               json:"time_end"`
	Description string `gorm:"column:course_description;type:varchar(256)"      json:"course_description,omitempty"`
	LecturerNIP string `gorm:"column:lecturer_nip;type:varchar(18);not null"    json:"lecturer_nip"`
	ClassID     string `gorm:"column:class_id;type:varchar(10);not null"        json:"class_id"`
	RoomID      string `gorm:"column:room_id;type:varchar(10);not null"         json:"room_id"`

	Lecturer *User  `gorm:"foreignKey:LecturerNIP;references:UserID" json:"lecturer,omitempty"`
	Class    *Class `gorm:"foreignKey:ClassID;references:ClassID"    json:"class,omitempty"`
	Room     *Room  `gorm:"foreignKey:RoomID;references:RoomID"      json:"room,omitempty"`
}

// TableName pins the table name.
func (Course) TableName() string { return "course" }

package model

// UserRole discriminates the three account kinds sharing the user table.
type UserRole string

const (
	RoleStudent  UserRole = "STUDENT"
	RoleLecturer UserRole = "LECTURER"
	RoleAdmin    UserRole = "ADMIN"
)

// Major is the fixed set of lecturer study programs.
type Major string

const (
	MajorInformatics         Major = "INFORMATICS"
	MajorInformationSystems  Major = "INFORMATION_SYSTEMS"
	MajorComputerEngineering Major = "COMPUTER_ENGINEERING"
	MajorDataScience         Major = "DATA_SCIENCE"
)

// Majors lists every valid lecturer major.
func Majors() []Major {
	return []Major{
		MajorInformatics,
		MajorInformationSystems,
		MajorComputerEngineering,
		MajorDataScience,
	}
}

// User covers students (NIM, 10 chars), lecturers (NIP, 18 chars) and
// admins. StudentClass is set for students only, LecturerMajor for
// lecturers only; the service layer is the single write path enforcing
// that split. The RFID hash is nullable: accounts may exist before a
// card is issued.
type User struct {
	UserID       string   `gorm:"column:user_id;type:varchar(18);primaryKey"            json:"user_id"`
	Role         UserRole `gorm:"column:user_role;type:varchar(10);not null;index"      json:"user_role"`
	FullName     string   `gorm:"column:user_fullname;type:varchar(100);not null"       json:"user_fullname"`
	PasswordHash string   `gorm:"column:user_password_hash;type:varchar(256);not null"  json:"-"`
	RFIDHash     *string  `gorm:"column:user_rfid_hash;type:varchar(256)"               json:"-"`
	EmailAddress string   `gorm:"column:user_email_address;type:varchar(100);not null"  json:"user_email_address"`
	HomeAddress  string   `gorm:"column:user_home_address;type:varchar(256)"            json:"user_home_address,omitempty"`
	StudentClass *string  `gorm:"column:student_class;type:varchar(10)"                 json:"student_class,omitempty"`
	Major        *Major   `gorm:"column:lecturer_major;type:varchar(30)"                json:"lecturer_major,omitempty"`

	Class *Class `gorm:"foreignKey:StudentClass;references:ClassID" json:"class,omitempty"`
}

// TableName pins the table name.
func (User) TableName() string { return "user" }

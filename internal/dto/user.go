package dto

// LoginForm is the credential form posted by the login page.
type LoginForm struct {
	UserID   string `form:"user_id"`
	Password string `form:"user_pw"`
}

// StudentForm carries the student registration/edit form fields. On
// edit, blank password and RFID uid mean "keep the stored hash".
type StudentForm struct {
	Name            string `form:"student_name"`
	NIM             string `form:"student_nim"`
	Class           string `form:"student_class"`
	Password        string `form:"student_pw"`
	ConfirmPassword string `form:"student_confirm_pw"`
	Email           string `form:"student_email_address"`
	HomeAddress     string `form:"student_home_address"`
	RFIDUID         string `form:"student_uid"`
}

// LecturerForm carries the lecturer registration/edit form fields.
type LecturerForm struct {
	Name            string `form:"lecturer_name"`
	NIP             string `form:"lecturer_nip"`
	Major           string `form:"lecturer_major"`
	Password        string `form:"lecturer_pw"`
	ConfirmPassword string `form:"lecturer_confirm_pw"`
	Email           string `form:"lecturer_email_address"`
	HomeAddress     string `form:"lecturer_home_address"`
	RFIDUID         string `form:"lecturer_uid"`
}

// LecturerOption is a lecturer entry for the course registration form.
type LecturerOption struct {
	NIP  string `json:"nip"`
	Name string `json:"name"`
}

package dto

// AttendanceRecord is one serialized check-in log row. NIM is set for
// student logs, NIP for lecturer logs; the other is omitted.
type AttendanceRecord struct {
	LogID  string `json:"log_id"`
	NIM    string `json:"nim,omitempty"`
	NIP    string `json:"nip,omitempty"`
	Name   string `json:"name"`
	Course string `json:"course"`
	Room   string `json:"room"`
	TimeIn string `json:"time_in"`
	Status string `json:"status"`
}

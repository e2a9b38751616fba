package model

type Attendance struct {
	AttendanceID    int    `json:"attendance_id"`
	EmployeeID      int    `json:"employee_id"`
	Date            string `json:"date"`           // YYYY-MM-DD
	CheckInTime     string `json:"check_in_time"`  // HH:MM:SS
	CheckOutTime    string `json:"check_out_time"` // HH:MM:SS；未簽退為空
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Notes           string `json:"notes,omitempty"`
	Status          string `json:"status"` // Present 等
}

func (a *Attendance) GetID() int   { return a.AttendanceID }
func (a *Attendance) SetID(id int) { a.AttendanceID = id }

package dto

// 打卡上班。employee_id / date 可省略（預設本人、當天）；
// 管理者可代打與補登過去日期
type CheckInDto struct {
	EmployeeID *int    `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty"` // YYYY-MM-DD
	Notes      string  `json:"notes,omitempty"`
}

// 打卡下班
type CheckOutDto struct {
	EmployeeID *int    `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty"` // YYYY-MM-DD
}

// 管理員補登／修正出勤記錄
type UpdateAttendanceDto struct {
	CheckInTime  *string `json:"check_in_time,omitempty"`  // HH:MM:SS
	CheckOutTime *string `json:"check_out_time,omitempty"` // HH:MM:SS
	Status       *string `json:"status,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

type AttendanceResponseDto struct {
	AttendanceID    int    `json:"attendance_id"`
	EmployeeID      int    `json:"employee_id"`
	EmployeeName    string `json:"employee_name,omitempty"`
	Date            string `json:"date"`
	CheckInTime     string `json:"check_in_time,omitempty"`
	CheckOutTime    string `json:"check_out_time,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Status          string `json:"status"`
	Notes           string `json:"notes,omitempty"`
}

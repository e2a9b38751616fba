package model

import "hrms/internal/core"

type Leave struct {
	LeaveID     int              `json:"leave_id"`
	EmployeeID  int              `json:"employee_id"`
	LeaveType   core.LeaveType   `json:"leave_type"`
	StartDate   string           `json:"start_date"` // YYYY-MM-DD
	EndDate     string           `json:"end_date"`   // YYYY-MM-DD
	Reason      string           `json:"reason"`
	Status      core.LeaveStatus `json:"status"`
	AppliedDate string           `json:"applied_date"`
	DecidedBy   *int             `json:"decided_by"`   // 審核者 user_id
	DecidedDate *string          `json:"decided_date"` // YYYY-MM-DD
	Comments    *string          `json:"comments"`
}

func (l *Leave) GetID() int   { return l.LeaveID }
func (l *Leave) SetID(id int) { l.LeaveID = id }

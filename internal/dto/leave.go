package dto

import (
	"hrms/internal/core"
)

// 請假申請
type ApplyLeaveDto struct {
	LeaveType core.LeaveType `json:"leave_type" binding:"required"`
	StartDate string         `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string         `json:"end_date" binding:"required"`   // YYYY-MM-DD
	Reason    string         `json:"reason,omitempty"`
}

// 修改尚未審核的申請
type UpdateLeaveDto struct {
	LeaveType *core.LeaveType `json:"leave_type,omitempty"`
	StartDate *string         `json:"start_date,omitempty"`
	EndDate   *string         `json:"end_date,omitempty"`
	Reason    *string         `json:"reason,omitempty"`
}

// 核准／駁回
type DecideLeaveDto struct {
	Comments string `json:"comments,omitempty"`
}

type LeaveResponseDto struct {
	LeaveID      int              `json:"leave_id"`
	EmployeeID   int              `json:"employee_id"`
	EmployeeName string           `json:"employee_name,omitempty"`
	LeaveType    core.LeaveType   `json:"leave_type"`
	StartDate    string           `json:"start_date"`
	EndDate      string           `json:"end_date"`
	BusinessDays int              `json:"business_days"`
	Reason       string           `json:"reason,omitempty"`
	Status       core.LeaveStatus `json:"status"`
	AppliedDate  string           `json:"applied_date"`
	DecidedBy    *int             `json:"decided_by,omitempty"`
	DecidedDate  *string          `json:"decided_date,omitempty"`
	Comments     *string          `json:"comments,omitempty"`
}

// 額度摘要（員工自己或管理者查詢）
type LeaveBalanceDto struct {
	LeaveType core.LeaveType `json:"leave_type"`
	Quota     int            `json:"quota"`
	Used      int            `json:"used"`
	Remaining int            `json:"remaining"`
}

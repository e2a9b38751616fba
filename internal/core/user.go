package core

type Role string

const (
	RoleAdmin    Role = "Admin"    // 管理員：所有操作
	RoleHRStaff  Role = "HR Staff" // 人資：員工/出勤/請假/薪資管理
	RoleEmployee Role = "Employee" // 一般員工：僅限自己的資料
)

// ManagerRoles 具管理權限的角色集合
var ManagerRoles = []Role{RoleAdmin, RoleHRStaff}

func IsValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleHRStaff, RoleEmployee:
		return true
	}
	return false
}

type Status string

const (
	StatusActive   Status = "Active"   // 在職 / 帳號可登入
	StatusInactive Status = "Inactive" // 離職 / 帳號停用
)

type LeaveType string

const (
	LeaveTypeAnnual LeaveType = "Annual"
	LeaveTypeSick   LeaveType = "Sick"
	LeaveTypeCasual LeaveType = "Casual"
)

func IsValidLeaveType(t LeaveType) bool {
	switch t {
	case LeaveTypeAnnual, LeaveTypeSick, LeaveTypeCasual:
		return true
	}
	return false
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

type PayrollStatus string

const (
	PayrollStatusPending PayrollStatus = "Pending"
	PayrollStatusPaid    PayrollStatus = "Paid"
)

type ApplicantStatus string

const (
	ApplicantStatusApplied     ApplicantStatus = "Applied"
	ApplicantStatusShortlisted ApplicantStatus = "Shortlisted"
	ApplicantStatusInterviewed ApplicantStatus = "Interviewed"
	ApplicantStatusHired       ApplicantStatus = "Hired"
	ApplicantStatusRejected    ApplicantStatus = "Rejected"
)

type JobStatus string

const (
	JobStatusActive JobStatus = "Active"
	JobStatusClosed JobStatus = "Closed"
)

package dto

// 各區塊皆為部分更新：未帶的欄位保留原值
type UpdateSettingsDto struct {
	CompanyInfo      *UpdateCompanyInfoDto      `json:"company_info,omitempty"`
	WorkingHours     *UpdateWorkingHoursDto     `json:"working_hours,omitempty"`
	LeavePolicies    *UpdateLeavePoliciesDto    `json:"leave_policies,omitempty"`
	PayrollSettings  *UpdatePayrollSettingsDto  `json:"payroll_settings,omitempty"`
	SecuritySettings *UpdateSecuritySettingsDto `json:"security_settings,omitempty"`
}

type UpdateCompanyInfoDto struct {
	CompanyName    *string `json:"company_name,omitempty"`
	CompanyEmail   *string `json:"company_email,omitempty" binding:"omitempty,email"`
	CompanyPhone   *string `json:"company_phone,omitempty"`
	CompanyAddress *string `json:"company_address,omitempty"`
}

type UpdateWorkingHoursDto struct {
	StartTime          *string `json:"start_time,omitempty"` // HH:MM
	EndTime            *string `json:"end_time,omitempty"`   // HH:MM
	LunchBreakDuration *int    `json:"lunch_break_duration,omitempty"`
}

type UpdateLeavePoliciesDto struct {
	AnnualLeaveQuota    *int  `json:"annual_leave_quota,omitempty"`
	SickLeaveQuota      *int  `json:"sick_leave_quota,omitempty"`
	CasualLeaveQuota    *int  `json:"casual_leave_quota,omitempty"`
	CarryForwardAllowed *bool `json:"carry_forward_allowed,omitempty"`
	MaxCarryForwardDays *int  `json:"max_carry_forward_days,omitempty"`
}

type UpdatePayrollSettingsDto struct {
	Currency          *string  `json:"currency,omitempty"`
	PayDay            *int     `json:"pay_day,omitempty" binding:"omitempty,min=1,max=28"`
	TaxRate           *float64 `json:"tax_rate,omitempty" binding:"omitempty,min=0,max=1"`
	ProvidentFundRate *float64 `json:"provident_fund_rate,omitempty" binding:"omitempty,min=0,max=1"`
}

type UpdateSecuritySettingsDto struct {
	SessionTimeoutMinutes *int `json:"session_timeout_minutes,omitempty" binding:"omitempty,min=1"`
	PasswordMinLength     *int `json:"password_min_length,omitempty" binding:"omitempty,min=4"`
	MaxLoginAttempts      *int `json:"max_login_attempts,omitempty" binding:"omitempty,min=1"`
	LockoutWindowMinutes  *int `json:"lockout_window_minutes,omitempty" binding:"omitempty,min=1"`
}

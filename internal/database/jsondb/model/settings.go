package model

// Settings 系統設定，settings.json 整份為單一物件（非集合）
type Settings struct {
	CompanyInfo      CompanyInfo      `json:"company_info"`
	WorkingHours     WorkingHours     `json:"working_hours"`
	LeavePolicies    LeavePolicies    `json:"leave_policies"`
	PayrollSettings  PayrollSettings  `json:"payroll_settings"`
	SecuritySettings SecuritySettings `json:"security_settings"`
}

type CompanyInfo struct {
	CompanyName    string `json:"company_name"`
	CompanyEmail   string `json:"company_email"`
	CompanyPhone   string `json:"company_phone"`
	CompanyAddress string `json:"company_address"`
}

type WorkingHours struct {
	StartTime          string `json:"start_time"` // HH:MM
	EndTime            string `json:"end_time"`   // HH:MM
	LunchBreakDuration int    `json:"lunch_break_duration"`
}

type LeavePolicies struct {
	AnnualLeaveQuota    int  `json:"annual_leave_quota"`
	SickLeaveQuota      int  `json:"sick_leave_quota"`
	CasualLeaveQuota    int  `json:"casual_leave_quota"`
	CarryForwardAllowed bool `json:"carry_forward_allowed"`
	MaxCarryForwardDays int  `json:"max_carry_forward_days"`
}

type PayrollSettings struct {
	Currency          string  `json:"currency"`
	PayDay            int     `json:"pay_day"`
	TaxRate           float64 `json:"tax_rate"`
	ProvidentFundRate float64 `json:"provident_fund_rate"`
}

type SecuritySettings struct {
	SessionTimeoutMinutes int `json:"session_timeout_minutes"`
	PasswordMinLength     int `json:"password_min_length"`
	MaxLoginAttempts      int `json:"max_login_attempts"`
	LockoutWindowMinutes  int `json:"lockout_window_minutes"`
}

// DefaultSettings settings.json 不存在時的預設值
func DefaultSettings() *Settings {
	return &Settings{
		CompanyInfo: CompanyInfo{
			CompanyName: "Bareera International",
		},
		WorkingHours: WorkingHours{
			StartTime:          "09:00",
			EndTime:            "18:00",
			LunchBreakDuration: 60,
		},
		LeavePolicies: LeavePolicies{
			AnnualLeaveQuota:    15,
			SickLeaveQuota:      10,
			CasualLeaveQuota:    5,
			CarryForwardAllowed: false,
			MaxCarryForwardDays: 5,
		},
		PayrollSettings: PayrollSettings{
			Currency:          "PKR",
			PayDay:            25,
			TaxRate:           0.05,
			ProvidentFundRate: 0.08,
		},
		SecuritySettings: SecuritySettings{
			SessionTimeoutMinutes: 60,
			PasswordMinLength:     6,
			MaxLoginAttempts:      5,
			LockoutWindowMinutes:  15,
		},
	}
}

// Quota 依假別取得年度配額
func (p LeavePolicies) Quota(leaveType string) int {
	switch leaveType {
	case "Annual":
		return p.AnnualLeaveQuota
	case "Sick":
		return p.SickLeaveQuota
	case "Casual":
		return p.CasualLeaveQuota
	}
	return 0
}

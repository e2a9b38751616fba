package dto

import (
	"hrms/internal/core"
	"hrms/internal/database/jsondb/model"
)

// 產生薪資單。employee_id 為 0（未帶）時，為全體在職員工批次產生，
// 已有同期間記錄者跳過；指定員工時重複期間視為衝突。
type GeneratePayrollDto struct {
	EmployeeID int          `json:"employee_id,omitempty"`
	Period     string       `json:"period" binding:"required"` // YYYY-MM
	Allowances *model.Money `json:"allowances,omitempty"`
	Deductions *model.Money `json:"deductions,omitempty"`
}

type PayrollResponseDto struct {
	PayrollID     int                `json:"payroll_id"`
	EmployeeID    int                `json:"employee_id"`
	EmployeeName  string             `json:"employee_name,omitempty"`
	Period        string             `json:"period"`
	GrossSalary   model.Money        `json:"gross_salary"`
	Allowances    model.Money        `json:"allowances"`
	Deductions    model.Money        `json:"deductions"`
	Tax           model.Money        `json:"tax"`
	ProvidentFund model.Money        `json:"provident_fund"`
	NetSalary     model.Money        `json:"net_salary"`
	Currency      string             `json:"currency"`
	Status        core.PayrollStatus `json:"status"`
	PaymentDate   string             `json:"payment_date,omitempty"`
	GeneratedBy   int                `json:"generated_by,omitempty"`
	GeneratedDate string             `json:"generated_date,omitempty"`
}

// 批次產生結果
type GeneratePayrollResponseDto struct {
	Generated int                   `json:"generated"`
	Skipped   int                   `json:"skipped"`
	Payrolls  []*PayrollResponseDto `json:"payrolls"`
}

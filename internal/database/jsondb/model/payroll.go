package model

import "hrms/internal/core"

type Payroll struct {
	PayrollID     int                `json:"payroll_id"`
	EmployeeID    int                `json:"employee_id"`
	Period        string             `json:"period"` // YYYY-MM
	GrossSalary   Money              `json:"gross_salary"`
	Allowances    Money              `json:"allowances"`
	Deductions    Money              `json:"deductions"`
	Tax           Money              `json:"tax"`
	ProvidentFund Money              `json:"provident_fund"`
	NetSalary     Money              `json:"net_salary"`
	Status        core.PayrollStatus `json:"status"`
	PaymentDate   string             `json:"payment_date,omitempty"` // YYYY-MM-DD
	GeneratedBy   int                `json:"generated_by"`           // user_id
	GeneratedDate string             `json:"generated_date"`         // YYYY-MM-DD
}

func (p *Payroll) GetID() int   { return p.PayrollID }
func (p *Payroll) SetID(id int) { p.PayrollID = id }

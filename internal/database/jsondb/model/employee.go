package model

import "hrms/internal/core"

type Employee struct {
	EmployeeID  int         `json:"employee_id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	CNIC        string      `json:"cnic"` // 身分證字號
	Email       string      `json:"email"`
	Contact     string      `json:"contact"`
	Department  string      `json:"department"`
	Designation string      `json:"designation"`
	JoinDate    string      `json:"join_date"` // YYYY-MM-DD
	Status      core.Status `json:"status"`
	Salary      Money       `json:"salary"` // 月薪
}

func (e *Employee) GetID() int   { return e.EmployeeID }
func (e *Employee) SetID(id int) { e.EmployeeID = id }

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

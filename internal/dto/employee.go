package dto

import (
	"hrms/internal/core"
	"hrms/internal/database/jsondb/model"
)

// 建立員工
type CreateEmployeeDto struct {
	FirstName   string      `json:"first_name" binding:"required"`
	LastName    string      `json:"last_name" binding:"required"`
	CNIC        string      `json:"cnic,omitempty"`
	Email       string      `json:"email" binding:"required,email"`
	Contact     string      `json:"contact,omitempty"`
	Department  string      `json:"department" binding:"required"`
	Designation string      `json:"designation" binding:"required"`
	JoinDate    string      `json:"join_date" binding:"required"` // YYYY-MM-DD
	Salary      model.Money `json:"salary" binding:"required"`
	Status      core.Status `json:"status,omitempty"`
}

// 更新員工（未帶欄位不動）
type UpdateEmployeeDto struct {
	FirstName   *string      `json:"first_name,omitempty"`
	LastName    *string      `json:"last_name,omitempty"`
	CNIC        *string      `json:"cnic,omitempty"`
	Email       *string      `json:"email,omitempty" binding:"omitempty,email"`
	Contact     *string      `json:"contact,omitempty"`
	Department  *string      `json:"department,omitempty"`
	Designation *string      `json:"designation,omitempty"`
	JoinDate    *string      `json:"join_date,omitempty"`
	Salary      *model.Money `json:"salary,omitempty"`
	Status      *core.Status `json:"status,omitempty"`
}

// 員工回應；一般員工視角不含薪資
type EmployeeResponseDto struct {
	EmployeeID  int          `json:"employee_id"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	CNIC        string       `json:"cnic,omitempty"`
	Email       string       `json:"email"`
	Contact     string       `json:"contact,omitempty"`
	Department  string       `json:"department"`
	Designation string       `json:"designation"`
	JoinDate    string       `json:"join_date"`
	Status      core.Status  `json:"status"`
	Salary      *model.Money `json:"salary,omitempty"`
}

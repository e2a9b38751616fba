package dto

// 建立部門
type CreateDepartmentDto struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
}

// 更新部門
type UpdateDepartmentDto struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type DepartmentResponseDto struct {
	DepartmentID int    `json:"department_id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Headcount    int    `json:"headcount"`
}

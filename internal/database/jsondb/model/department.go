package model

type Department struct {
	DepartmentID int    `json:"department_id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
}

func (d *Department) GetID() int   { return d.DepartmentID }
func (d *Department) SetID(id int) { d.DepartmentID = id }

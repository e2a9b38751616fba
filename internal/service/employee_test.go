package service

import (
	"testing"

	"hrms/internal/core"
	"hrms/internal/database/jsondb/model"
	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"

	"github.com/stretchr/testify/require"
)

func TestCreateEmployee(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.employees.Create(t.Context(), adminSession(), &dto.CreateEmployeeDto{
		FirstName:   "Sara",
		LastName:    "Malik",
		Email:       "sara.malik@example.com",
		Department:  "Finance",
		Designation: "Accountant",
		JoinDate:    "2025-03-01",
		Salary:      55000_00,
	})
	require.NoError(t, err)
	require.NotZero(t, created.EmployeeID)
	// 未指定狀態時預設在職
	require.Equal(t, core.StatusActive, created.Status)
	require.NotNil(t, created.Salary)
	require.Equal(t, model.Money(55000_00), *created.Salary)

	_, err = env.employees.Create(t.Context(), adminSession(), &dto.CreateEmployeeDto{
		FirstName:   "Bad",
		LastName:    "Date",
		Email:       "bad.date@example.com",
		Department:  "Finance",
		Designation: "Accountant",
		JoinDate:    "01-03-2025",
		Salary:      55000_00,
	})
	requireErrorCode(t, err, cErr.BAD_REQUEST_BODY)
}

func TestEmployeeSalaryVisibility(t *testing.T) {
	env := newTestEnv(t)
	first := env.seedEmployee(t, 80000_00)

	second, err := env.employees.Create(t.Context(), adminSession(), &dto.CreateEmployeeDto{
		FirstName:   "Sara",
		LastName:    "Malik",
		Email:       "sara.malik@example.com",
		Department:  "Finance",
		Designation: "Accountant",
		JoinDate:    "2025-03-01",
		Salary:      55000_00,
	})
	require.NoError(t, err)

	session := employeeSession(2, first.EmployeeID)

	// 本人看得到自己的檔案，但薪資欄位一律隱藏（薪資走 payroll）
	self, err := env.employees.GetByID(t.Context(), session, first.EmployeeID)
	require.NoError(t, err)
	require.Nil(t, self.Salary)

	// 其他員工的檔案一律當作不存在
	_, err = env.employees.GetByID(t.Context(), session, second.EmployeeID)
	requireErrorCode(t, err, cErr.NOT_FOUND)

	// 管理者看得到全部
	got, err := env.employees.GetByID(t.Context(), adminSession(), second.EmployeeID)
	require.NoError(t, err)
	require.NotNil(t, got.Salary)
}

func TestListEmployeesFilter(t *testing.T) {
	env := newTestEnv(t)
	env.seedEmployee(t, 80000_00) // Engineering / Active

	_, err := env.employees.Create(t.Context(), adminSession(), &dto.CreateEmployeeDto{
		FirstName:   "Sara",
		LastName:    "Malik",
		Email:       "sara.malik@example.com",
		Department:  "Finance",
		Designation: "Accountant",
		JoinDate:    "2025-03-01",
		Salary:      55000_00,
		Status:      core.StatusInactive,
	})
	require.NoError(t, err)

	all, err := env.employees.List(t.Context(), adminSession(), "", "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	engineering, err := env.employees.List(t.Context(), adminSession(), "Engineering", "")
	require.NoError(t, err)
	require.Len(t, engineering, 1)

	inactive, err := env.employees.List(t.Context(), adminSession(), "", core.StatusInactive)
	require.NoError(t, err)
	require.Len(t, inactive, 1)

	// 一般員工不能列全員名冊
	_, err = env.employees.List(t.Context(), employeeSession(2, 1), "", "")
	requireErrorCode(t, err, cErr.FORBIDDEN)
}

func TestUpdateEmployeePartial(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 80000_00)

	designation := "Senior Engineer"
	salary := model.Money(95000_00)
	updated, err := env.employees.Update(t.Context(), adminSession(), employee.EmployeeID, &dto.UpdateEmployeeDto{
		Designation: &designation,
		Salary:      &salary,
	})
	require.NoError(t, err)
	require.Equal(t, "Senior Engineer", updated.Designation)
	require.Equal(t, salary, *updated.Salary)
	// 未帶的欄位不動
	require.Equal(t, employee.FirstName, updated.FirstName)
	require.Equal(t, employee.Department, updated.Department)
}

func TestDeleteEmployeeAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 80000_00)

	hr := &core.Session{UserID: 9, Username: "hr", Role: core.RoleHRStaff}
	err := env.employees.Delete(t.Context(), hr, employee.EmployeeID)
	requireErrorCode(t, err, cErr.FORBIDDEN)

	require.NoError(t, env.employees.Delete(t.Context(), adminSession(), employee.EmployeeID))
	_, err = env.employees.GetByID(t.Context(), adminSession(), employee.EmployeeID)
	requireErrorCode(t, err, cErr.NOT_FOUND)
}

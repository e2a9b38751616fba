package service

import (
	"testing"

	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"

	"github.com/stretchr/testify/require"
)

func TestCreateDepartmentUniqueName(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.departments.Create(t.Context(), adminSession(), &dto.CreateDepartmentDto{
		Name:        "Engineering",
		Description: "Product engineering",
	})
	require.NoError(t, err)
	require.NotZero(t, created.DepartmentID)

	// 名稱不分大小寫唯一
	_, err = env.departments.Create(t.Context(), adminSession(), &dto.CreateDepartmentDto{Name: "engineering"})
	requireErrorCode(t, err, cErr.DUPLICATE_NAME)
}

func TestDepartmentHeadcount(t *testing.T) {
	env := newTestEnv(t)
	env.seedEmployee(t, 80000_00) // Engineering / Active

	created, err := env.departments.Create(t.Context(), adminSession(), &dto.CreateDepartmentDto{Name: "Engineering"})
	require.NoError(t, err)

	got, err := env.departments.GetByID(t.Context(), adminSession(), created.DepartmentID)
	require.NoError(t, err)
	require.Equal(t, 1, got.Headcount)

	// 一般員工也能看部門列表
	listed, err := env.departments.List(t.Context(), employeeSession(2, 1))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, 1, listed[0].Headcount)
}

func TestDepartmentPermissions(t *testing.T) {
	env := newTestEnv(t)
	created, err := env.departments.Create(t.Context(), adminSession(), &dto.CreateDepartmentDto{Name: "Finance"})
	require.NoError(t, err)

	session := employeeSession(2, 1)
	_, err = env.departments.Create(t.Context(), session, &dto.CreateDepartmentDto{Name: "Rogue"})
	requireErrorCode(t, err, cErr.FORBIDDEN)

	err = env.departments.Delete(t.Context(), session, created.DepartmentID)
	requireErrorCode(t, err, cErr.FORBIDDEN)

	require.NoError(t, env.departments.Delete(t.Context(), adminSession(), created.DepartmentID))
}

package service

import (
	"testing"

	"hrms/internal/core"
	"hrms/internal/database/jsondb/model"
	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"

	"github.com/stretchr/testify/require"
)

func TestGeneratePayrollComputation(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 80000_00) // 80000.00

	resp, err := env.payroll.Generate(t.Context(), adminSession(), &dto.GeneratePayrollDto{
		EmployeeID: employee.EmployeeID,
		Period:     "2025-09",
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Generated)
	require.Len(t, resp.Payrolls, 1)

	payroll := resp.Payrolls[0]
	require.Equal(t, "2025-09", payroll.Period)
	require.Equal(t, model.Money(80000_00), payroll.GrossSalary)
	require.Equal(t, model.Money(4000_00), payroll.Tax)           // 5% of gross
	require.Equal(t, model.Money(6400_00), payroll.ProvidentFund) // 8% of gross
	require.Equal(t, model.Money(69600_00), payroll.NetSalary)
	require.Equal(t, core.PayrollStatusPending, payroll.Status)
	require.Equal(t, "PKR", payroll.Currency)
}

func TestGeneratePayrollAllowancesAndDeductions(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 80000_00)

	allowances := model.Money(5000_00)
	deductions := model.Money(1500_00)
	resp, err := env.payroll.Generate(t.Context(), adminSession(), &dto.GeneratePayrollDto{
		EmployeeID: employee.EmployeeID,
		Period:     "2025-09",
		Allowances: &allowances,
		Deductions: &deductions,
	})
	require.NoError(t, err)

	payroll := resp.Payrolls[0]
	// 稅與公積金只以底薪計，不含津貼
	require.Equal(t, model.Money(4000_00), payroll.Tax)
	require.Equal(t, model.Money(6400_00), payroll.ProvidentFund)
	require.Equal(t, model.Money(73100_00), payroll.NetSalary)
}

func TestGeneratePayrollDuplicatePeriod(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)

	_, err := env.payroll.Generate(t.Context(), adminSession(), &dto.GeneratePayrollDto{
		EmployeeID: employee.EmployeeID,
		Period:     "2025-09",
	})
	require.NoError(t, err)

	_, err = env.payroll.Generate(t.Context(), adminSession(), &dto.GeneratePayrollDto{
		EmployeeID: employee.EmployeeID,
		Period:     "2025-09",
	})
	requireErrorCode(t, err, cErr.DUPLICATE_PERIOD)
}

func TestGeneratePayrollBatchSkipsExisting(t *testing.T) {
	env := newTestEnv(t)
	first := env.seedEmployee(t, 50000_00)
	second := env.seedEmployee(t, 60000_00)

	_, err := env.payroll.Generate(t.Context(), adminSession(), &dto.GeneratePayrollDto{
		EmployeeID: first.EmployeeID,
		Period:     "2025-09",
	})
	require.NoError(t, err)

	// 批次產生：first 已有記錄要跳過，只為 second 產生
	resp, err := env.payroll.Generate(t.Context(), adminSession(), &dto.GeneratePayrollDto{
		Period: "2025-09",
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Generated)
	require.Equal(t, 1, resp.Skipped)
	require.Equal(t, second.EmployeeID, resp.Payrolls[0].EmployeeID)
}

func TestGeneratePayrollInvalidPeriod(t *testing.T) {
	env := newTestEnv(t)
	env.seedEmployee(t, 50000_00)

	_, err := env.payroll.Generate(t.Context(), adminSession(), &dto.GeneratePayrollDto{
		Period: "September 2025",
	})
	requireErrorCode(t, err, cErr.INVALID_PERIOD)
}

func TestPayrollVisibility(t *testing.T) {
	env := newTestEnv(t)
	mine := env.seedEmployee(t, 50000_00)
	other := env.seedEmployee(t, 60000_00)

	_, err := env.payroll.Generate(t.Context(), adminSession(), &dto.GeneratePayrollDto{Period: "2025-09"})
	require.NoError(t, err)

	session := employeeSession(10, mine.EmployeeID)

	// 列表只看得到自己的
	list, err := env.payroll.List(t.Context(), session, 0, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, mine.EmployeeID, list[0].EmployeeID)

	// 指定他人的 ID 回 not-found，不洩漏存在與否
	all, err := env.payroll.List(t.Context(), adminSession(), other.EmployeeID, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	_, err = env.payroll.GetByID(t.Context(), session, all[0].PayrollID)
	requireErrorCode(t, err, cErr.NOT_FOUND)
}

func TestMarkPaid(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)

	resp, err := env.payroll.Generate(t.Context(), adminSession(), &dto.GeneratePayrollDto{
		EmployeeID: employee.EmployeeID,
		Period:     "2025-09",
	})
	require.NoError(t, err)
	payrollID := resp.Payrolls[0].PayrollID

	paid, err := env.payroll.MarkPaid(t.Context(), adminSession(), payrollID)
	require.NoError(t, err)
	require.Equal(t, core.PayrollStatusPaid, paid.Status)
	require.NotEmpty(t, paid.PaymentDate)

	_, err = env.payroll.MarkPaid(t.Context(), adminSession(), payrollID)
	requireErrorCode(t, err, cErr.ALREADY_DECIDED)
}

func TestGeneratePayrollRequiresManager(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)

	_, err := env.payroll.Generate(t.Context(), employeeSession(10, employee.EmployeeID), &dto.GeneratePayrollDto{
		Period: "2025-09",
	})
	requireErrorCode(t, err, cErr.FORBIDDEN)

	_, err = env.payroll.Generate(t.Context(), nil, &dto.GeneratePayrollDto{Period: "2025-09"})
	requireErrorCode(t, err, cErr.UNAUTHORIZED)
}

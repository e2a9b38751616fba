package service

import (
	"testing"

	"hrms/internal/core"
	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"

	"github.com/stretchr/testify/require"
)

func TestApplyLeaveBusinessDays(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)
	session := employeeSession(10, employee.EmployeeID)

	// 2025-01-06（一）到 2025-01-12（日）：工作日只有一到五
	leave, err := env.leave.Apply(t.Context(), session, &dto.ApplyLeaveDto{
		LeaveType: core.LeaveTypeAnnual,
		StartDate: "2025-01-06",
		EndDate:   "2025-01-12",
		Reason:    "family trip",
	})
	require.NoError(t, err)
	require.Equal(t, 5, leave.BusinessDays)
	require.Equal(t, core.LeaveStatusPending, leave.Status)
}

func TestApplyLeaveQuotaExceeded(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)
	session := employeeSession(10, employee.EmployeeID)

	// 先用掉 5 個工作日
	first, err := env.leave.Apply(t.Context(), session, &dto.ApplyLeaveDto{
		LeaveType: core.LeaveTypeAnnual,
		StartDate: "2025-01-06",
		EndDate:   "2025-01-10",
	})
	require.NoError(t, err)
	_, err = env.leave.Decide(t.Context(), adminSession(), first.LeaveID, true, &dto.DecideLeaveDto{})
	require.NoError(t, err)

	// 再要 11 個工作日：5 + 11 > 15（年假預設配額）
	_, err = env.leave.Apply(t.Context(), session, &dto.ApplyLeaveDto{
		LeaveType: core.LeaveTypeAnnual,
		StartDate: "2025-02-03",
		EndDate:   "2025-02-17",
	})
	requireErrorCode(t, err, cErr.QUOTA_EXCEEDED)

	// 10 個工作日則剛好放行（5 + 10 = 15）
	_, err = env.leave.Apply(t.Context(), session, &dto.ApplyLeaveDto{
		LeaveType: core.LeaveTypeAnnual,
		StartDate: "2025-02-03",
		EndDate:   "2025-02-14",
	})
	require.NoError(t, err)
}

func TestApplyLeaveInvalidRange(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)
	session := employeeSession(10, employee.EmployeeID)

	_, err := env.leave.Apply(t.Context(), session, &dto.ApplyLeaveDto{
		LeaveType: core.LeaveTypeSick,
		StartDate: "2025-03-10",
		EndDate:   "2025-03-07",
	})
	requireErrorCode(t, err, cErr.INVALID_DATE_RANGE)

	// 純週末區間沒有工作日
	_, err = env.leave.Apply(t.Context(), session, &dto.ApplyLeaveDto{
		LeaveType: core.LeaveTypeSick,
		StartDate: "2025-03-08",
		EndDate:   "2025-03-09",
	})
	requireErrorCode(t, err, cErr.INVALID_DATE_RANGE)
}

func TestDecideLeaveOnlyOnce(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)
	session := employeeSession(10, employee.EmployeeID)

	leave, err := env.leave.Apply(t.Context(), session, &dto.ApplyLeaveDto{
		LeaveType: core.LeaveTypeCasual,
		StartDate: "2025-04-07",
		EndDate:   "2025-04-08",
	})
	require.NoError(t, err)

	decided, err := env.leave.Decide(t.Context(), adminSession(), leave.LeaveID, false, &dto.DecideLeaveDto{Comments: "short staffed"})
	require.NoError(t, err)
	require.Equal(t, core.LeaveStatusRejected, decided.Status)
	require.NotNil(t, decided.DecidedBy)

	_, err = env.leave.Decide(t.Context(), adminSession(), leave.LeaveID, true, &dto.DecideLeaveDto{})
	requireErrorCode(t, err, cErr.ALREADY_DECIDED)
}

func TestRejectedLeaveFreesQuota(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)
	session := employeeSession(10, employee.EmployeeID)

	// 15 個工作日：2025-05-05（一）到 2025-05-23（五）
	leave, err := env.leave.Apply(t.Context(), session, &dto.ApplyLeaveDto{
		LeaveType: core.LeaveTypeAnnual,
		StartDate: "2025-05-05",
		EndDate:   "2025-05-23",
	})
	require.NoError(t, err)

	// 額度用滿，再申請會被拒
	_, err = env.leave.Apply(t.Context(), session, &dto.ApplyLeaveDto{
		LeaveType: core.LeaveTypeAnnual,
		StartDate: "2025-06-02",
		EndDate:   "2025-06-03",
	})
	requireErrorCode(t, err, cErr.QUOTA_EXCEEDED)

	// 駁回後額度釋出
	_, err = env.leave.Decide(t.Context(), adminSession(), leave.LeaveID, false, &dto.DecideLeaveDto{})
	require.NoError(t, err)

	_, err = env.leave.Apply(t.Context(), session, &dto.ApplyLeaveDto{
		LeaveType: core.LeaveTypeAnnual,
		StartDate: "2025-06-02",
		EndDate:   "2025-06-03",
	})
	require.NoError(t, err)
}

func TestLeaveVisibility(t *testing.T) {
	env := newTestEnv(t)
	mine := env.seedEmployee(t, 50000_00)
	other := env.seedEmployee(t, 60000_00)

	otherLeave, err := env.leave.Apply(t.Context(), employeeSession(11, other.EmployeeID), &dto.ApplyLeaveDto{
		LeaveType: core.LeaveTypeSick,
		StartDate: "2025-07-07",
		EndDate:   "2025-07-08",
	})
	require.NoError(t, err)

	session := employeeSession(10, mine.EmployeeID)

	// 他人的假單一律 not-found
	_, err = env.leave.GetByID(t.Context(), session, otherLeave.LeaveID)
	requireErrorCode(t, err, cErr.NOT_FOUND)

	list, err := env.leave.List(t.Context(), session, 0, "")
	require.NoError(t, err)
	require.Empty(t, list)

	// 管理者看得到全部
	all, err := env.leave.List(t.Context(), adminSession(), 0, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestLeaveBalance(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)
	session := employeeSession(10, employee.EmployeeID)

	_, err := env.leave.Apply(t.Context(), session, &dto.ApplyLeaveDto{
		LeaveType: core.LeaveTypeSick,
		StartDate: "2026-08-24",
		EndDate:   "2026-08-26",
	})
	require.NoError(t, err)

	balances, err := env.leave.Balance(t.Context(), session, employee.EmployeeID)
	require.NoError(t, err)
	require.Len(t, balances, 3)
	for _, balance := range balances {
		if balance.LeaveType == core.LeaveTypeSick {
			require.Equal(t, 10, balance.Quota)
			require.Equal(t, 3, balance.Used)
			require.Equal(t, 7, balance.Remaining)
		}
	}
}

package service

import (
	"testing"

	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"

	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	env := newTestEnv(t)

	settings, err := env.setting.Get(t.Context(), adminSession())
	require.NoError(t, err)
	require.Equal(t, "Bareera International", settings.CompanyInfo.CompanyName)
	require.Equal(t, 15, settings.LeavePolicies.AnnualLeaveQuota)
	require.Equal(t, "PKR", settings.PayrollSettings.Currency)
}

func TestUpdateSettingsPartial(t *testing.T) {
	env := newTestEnv(t)

	quota := 20
	taxRate := 0.1
	updated, err := env.setting.Update(t.Context(), adminSession(), &dto.UpdateSettingsDto{
		LeavePolicies:   &dto.UpdateLeavePoliciesDto{AnnualLeaveQuota: &quota},
		PayrollSettings: &dto.UpdatePayrollSettingsDto{TaxRate: &taxRate},
	})
	require.NoError(t, err)
	require.Equal(t, 20, updated.LeavePolicies.AnnualLeaveQuota)
	require.Equal(t, 0.1, updated.PayrollSettings.TaxRate)

	// 未帶的欄位與區塊維持原值
	require.Equal(t, 10, updated.LeavePolicies.SickLeaveQuota)
	require.Equal(t, "PKR", updated.PayrollSettings.Currency)
	require.Equal(t, "09:00", updated.WorkingHours.StartTime)

	// 重新讀取確認已落盤
	settings, err := env.setting.Get(t.Context(), adminSession())
	require.NoError(t, err)
	require.Equal(t, 20, settings.LeavePolicies.AnnualLeaveQuota)
}

func TestSettingsAdminOnly(t *testing.T) {
	env := newTestEnv(t)

	session := employeeSession(7, 1)
	_, err := env.setting.Get(t.Context(), session)
	requireErrorCode(t, err, cErr.FORBIDDEN)

	name := "Acme"
	_, err = env.setting.Update(t.Context(), session, &dto.UpdateSettingsDto{
		CompanyInfo: &dto.UpdateCompanyInfoDto{CompanyName: &name},
	})
	requireErrorCode(t, err, cErr.FORBIDDEN)
}

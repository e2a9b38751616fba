package service

import (
	"testing"

	"hrms/internal/core"
	"hrms/internal/database/jsondb/model"
	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"

	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)
	env.seedUser(t, "ayesha", "s3cret-pass", core.RoleEmployee, &employee.EmployeeID)

	resp, err := env.auth.Authenticate(t.Context(), &dto.LoginDto{Username: "ayesha", Password: "s3cret-pass"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "ayesha", resp.User.Username)
	require.Equal(t, core.RoleEmployee, resp.User.Role)
	require.NotNil(t, resp.User.EmployeeID)

	// token 可還原 session
	session, err := env.auth.ParseToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, resp.User.UserID, session.UserID)
	require.Equal(t, core.RoleEmployee, session.Role)
}

func TestAuthenticateFailures(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)
	env.seedUser(t, "ayesha", "s3cret-pass", core.RoleEmployee, &employee.EmployeeID)

	// 密碼錯誤與帳號不存在回同一種錯誤
	_, err := env.auth.Authenticate(t.Context(), &dto.LoginDto{Username: "ayesha", Password: "wrong"})
	requireErrorCode(t, err, cErr.INVALID_CREDENTIALS)

	_, err = env.auth.Authenticate(t.Context(), &dto.LoginDto{Username: "nobody", Password: "wrong"})
	requireErrorCode(t, err, cErr.INVALID_CREDENTIALS)
}

func TestAuthenticateInactiveAccount(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)
	user := env.seedUser(t, "ayesha", "s3cret-pass", core.RoleEmployee, &employee.EmployeeID)

	_, err := env.users.UpdateByID(t.Context(), user.UserID, func(u *model.User) error {
		u.Status = core.StatusInactive
		return nil
	})
	require.NoError(t, err)

	_, err = env.auth.Authenticate(t.Context(), &dto.LoginDto{Username: "ayesha", Password: "s3cret-pass"})
	requireErrorCode(t, err, cErr.INVALID_CREDENTIALS)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.ParseToken("not-a-token")
	requireErrorCode(t, err, cErr.INVALID_SESSION)
}

func TestPasswordReset(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)
	env.seedUser(t, "ayesha", "old-pass-123", core.RoleEmployee, &employee.EmployeeID)

	// 信箱不符：不洩漏帳號狀態
	_, err := env.auth.RequestPasswordReset(t.Context(), &dto.ForgotPasswordDto{
		Username: "ayesha",
		Email:    "someone.else@example.com",
	})
	requireErrorCode(t, err, cErr.PROFILE_MISMATCH)

	// 帳號不存在：同一種錯誤
	_, err = env.auth.RequestPasswordReset(t.Context(), &dto.ForgotPasswordDto{
		Username: "nobody",
		Email:    "ayesha.khan@example.com",
	})
	requireErrorCode(t, err, cErr.PROFILE_MISMATCH)

	// 未綁定員工的帳號（Admin 類）也拿不到臨時密碼
	env.seedUser(t, "sysadmin", "admin-pass-1", core.RoleAdmin, nil)
	_, err = env.auth.RequestPasswordReset(t.Context(), &dto.ForgotPasswordDto{
		Username: "sysadmin",
		Email:    "ayesha.khan@example.com",
	})
	requireErrorCode(t, err, cErr.PROFILE_MISMATCH)

	// 相符：舊密碼失效、臨時密碼可登入
	resp, err := env.auth.RequestPasswordReset(t.Context(), &dto.ForgotPasswordDto{
		Username: "ayesha",
		Email:    "Ayesha.Khan@example.com", // 信箱比對不分大小寫
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.TempPassword)

	_, err = env.auth.Authenticate(t.Context(), &dto.LoginDto{Username: "ayesha", Password: "old-pass-123"})
	requireErrorCode(t, err, cErr.INVALID_CREDENTIALS)

	login, err := env.auth.Authenticate(t.Context(), &dto.LoginDto{Username: "ayesha", Password: resp.TempPassword})
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)
	user := env.seedUser(t, "ayesha", "old-pass-123", core.RoleEmployee, &employee.EmployeeID)
	session := &core.Session{UserID: user.UserID, Username: user.Username, Role: user.Role, EmployeeID: user.EmployeeID}

	// 太短
	err := env.auth.ChangePassword(t.Context(), session, &dto.ChangePasswordDto{
		CurrentPassword: "old-pass-123",
		NewPassword:     "ab1",
		ConfirmPassword: "ab1",
	})
	requireErrorCode(t, err, cErr.WEAK_PASSWORD)

	// 確認不一致
	err = env.auth.ChangePassword(t.Context(), session, &dto.ChangePasswordDto{
		CurrentPassword: "old-pass-123",
		NewPassword:     "new-pass-456",
		ConfirmPassword: "new-pass-457",
	})
	requireErrorCode(t, err, cErr.PASSWORD_MISMATCH)

	// 舊密碼錯誤
	err = env.auth.ChangePassword(t.Context(), session, &dto.ChangePasswordDto{
		CurrentPassword: "wrong",
		NewPassword:     "new-pass-456",
		ConfirmPassword: "new-pass-456",
	})
	requireErrorCode(t, err, cErr.INVALID_CREDENTIALS)

	// 成功後新密碼可登入
	err = env.auth.ChangePassword(t.Context(), session, &dto.ChangePasswordDto{
		CurrentPassword: "old-pass-123",
		NewPassword:     "new-pass-456",
		ConfirmPassword: "new-pass-456",
	})
	require.NoError(t, err)

	_, err = env.auth.Authenticate(t.Context(), &dto.LoginDto{Username: "ayesha", Password: "new-pass-456"})
	require.NoError(t, err)
}

package service

import (
	"testing"

	"hrms/internal/core"
	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"

	"github.com/stretchr/testify/require"
)

func postJob(t *testing.T, env *testEnv) *dto.JobResponseDto {
	t.Helper()
	job, err := env.recruitment.CreateJob(t.Context(), adminSession(), &dto.CreateJobDto{
		Title:      "Backend Engineer",
		Department: "Engineering",
		Location:   "Karachi",
	})
	require.NoError(t, err)
	return job
}

func applyTo(t *testing.T, env *testEnv, jobID int) *dto.ApplicantResponseDto {
	t.Helper()
	applicant, err := env.recruitment.ApplyJob(t.Context(), jobID, &dto.ApplyJobDto{
		FirstName: "Bilal",
		LastName:  "Ahmed",
		Email:     "bilal.ahmed@example.com",
	})
	require.NoError(t, err)
	return applicant
}

func TestJobLifecycle(t *testing.T) {
	env := newTestEnv(t)
	job := postJob(t, env)
	require.Equal(t, core.JobStatusActive, job.Status)

	// 未登入者看得到開放中的職缺
	public, err := env.recruitment.ListJobs(t.Context(), nil)
	require.NoError(t, err)
	require.Len(t, public, 1)

	// 關閉後公開列表不再出現，管理者仍看得到
	closed := core.JobStatusClosed
	_, err = env.recruitment.UpdateJob(t.Context(), adminSession(), job.JobID, &dto.UpdateJobDto{Status: &closed})
	require.NoError(t, err)

	public, err = env.recruitment.ListJobs(t.Context(), nil)
	require.NoError(t, err)
	require.Empty(t, public)

	_, err = env.recruitment.GetJob(t.Context(), nil, job.JobID)
	requireErrorCode(t, err, cErr.NOT_FOUND)

	all, err := env.recruitment.ListJobs(t.Context(), adminSession())
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestApplyJobClosedOrExpired(t *testing.T) {
	env := newTestEnv(t)
	job := postJob(t, env)

	// 過了截止日不能投遞
	expired := "2020-01-01"
	_, err := env.recruitment.UpdateJob(t.Context(), adminSession(), job.JobID, &dto.UpdateJobDto{ApplicationDeadline: &expired})
	require.NoError(t, err)
	_, err = env.recruitment.ApplyJob(t.Context(), job.JobID, &dto.ApplyJobDto{
		FirstName: "Bilal", LastName: "Ahmed", Email: "bilal@example.com",
	})
	requireErrorCode(t, err, cErr.BAD_REQUEST_BODY)

	// 關閉的職缺回 not-found
	closed := core.JobStatusClosed
	_, err = env.recruitment.UpdateJob(t.Context(), adminSession(), job.JobID, &dto.UpdateJobDto{Status: &closed})
	require.NoError(t, err)
	_, err = env.recruitment.ApplyJob(t.Context(), job.JobID, &dto.ApplyJobDto{
		FirstName: "Bilal", LastName: "Ahmed", Email: "bilal@example.com",
	})
	requireErrorCode(t, err, cErr.NOT_FOUND)
}

func TestOnboardHiredApplicant(t *testing.T) {
	env := newTestEnv(t)
	job := postJob(t, env)
	applicant := applyTo(t, env, job.JobID)

	// 尚未錄取不能建檔
	_, err := env.recruitment.Onboard(t.Context(), adminSession(), applicant.ApplicantID, &dto.OnboardApplicantDto{
		JoinDate: "2026-09-01",
		Salary:   65000_00,
	})
	requireErrorCode(t, err, cErr.BAD_REQUEST_BODY)

	_, err = env.recruitment.UpdateApplicantStatus(t.Context(), adminSession(), applicant.ApplicantID, &dto.UpdateApplicantStatusDto{
		Status: core.ApplicantStatusHired,
	})
	require.NoError(t, err)

	resp, err := env.recruitment.Onboard(t.Context(), adminSession(), applicant.ApplicantID, &dto.OnboardApplicantDto{
		JoinDate:          "2026-09-01",
		Salary:            65000_00,
		CreateUserAccount: true,
		Username:          "bilal",
	})
	require.NoError(t, err)
	require.Empty(t, resp.Warning)
	// 部門與職稱沿用職缺
	require.Equal(t, "Engineering", resp.Employee.Department)
	require.Equal(t, "Backend Engineer", resp.Employee.Designation)
	require.Equal(t, "bilal", resp.Username)
	require.NotEmpty(t, resp.TempPassword)

	// 臨時密碼可直接登入
	login, err := env.auth.Authenticate(t.Context(), &dto.LoginDto{Username: "bilal", Password: resp.TempPassword})
	require.NoError(t, err)
	require.Equal(t, core.RoleEmployee, login.User.Role)
	require.Equal(t, resp.Employee.EmployeeID, *login.User.EmployeeID)
}

func TestOnboardOnlyOnce(t *testing.T) {
	env := newTestEnv(t)
	job := postJob(t, env)
	applicant := applyTo(t, env, job.JobID)
	_, err := env.recruitment.UpdateApplicantStatus(t.Context(), adminSession(), applicant.ApplicantID, &dto.UpdateApplicantStatusDto{
		Status: core.ApplicantStatusHired,
	})
	require.NoError(t, err)

	resp, err := env.recruitment.Onboard(t.Context(), adminSession(), applicant.ApplicantID, &dto.OnboardApplicantDto{
		JoinDate: "2026-09-01",
		Salary:   65000_00,
	})
	require.NoError(t, err)
	require.Empty(t, resp.Warning)

	// 建檔後回填應徵者：標記員工編號並留下備註
	updated, err := env.recruitment.GetApplicant(t.Context(), adminSession(), applicant.ApplicantID)
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	require.Contains(t, *updated.Notes, "Employee ID")

	// 再 onboard 一次不能再建出第二個員工
	_, err = env.recruitment.Onboard(t.Context(), adminSession(), applicant.ApplicantID, &dto.OnboardApplicantDto{
		JoinDate: "2026-09-01",
		Salary:   65000_00,
	})
	requireErrorCode(t, err, cErr.ALREADY_DECIDED)

	employees, err := env.employees.List(t.Context(), adminSession(), "", "")
	require.NoError(t, err)
	require.Len(t, employees, 1)
}

func TestOnboardInvalidRoleBeforeWrite(t *testing.T) {
	env := newTestEnv(t)
	job := postJob(t, env)
	applicant := applyTo(t, env, job.JobID)
	_, err := env.recruitment.UpdateApplicantStatus(t.Context(), adminSession(), applicant.ApplicantID, &dto.UpdateApplicantStatusDto{
		Status: core.ApplicantStatusHired,
	})
	require.NoError(t, err)

	// 未知角色在建檔前就擋下，不留半套資料
	_, err = env.recruitment.Onboard(t.Context(), adminSession(), applicant.ApplicantID, &dto.OnboardApplicantDto{
		JoinDate:          "2026-09-01",
		Salary:            65000_00,
		CreateUserAccount: true,
		Role:              core.Role("Superuser"),
	})
	requireErrorCode(t, err, cErr.BAD_REQUEST_BODY)

	employees, err := env.employees.List(t.Context(), adminSession(), "", "")
	require.NoError(t, err)
	require.Empty(t, employees)
}

func TestOnboardDuplicateUsernameWarns(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "bilal", "existing-pass", core.RoleEmployee, nil)

	job := postJob(t, env)
	applicant := applyTo(t, env, job.JobID)
	_, err := env.recruitment.UpdateApplicantStatus(t.Context(), adminSession(), applicant.ApplicantID, &dto.UpdateApplicantStatusDto{
		Status: core.ApplicantStatusHired,
	})
	require.NoError(t, err)

	// 帳號名稱衝突：員工檔案仍建立，只回 warning
	resp, err := env.recruitment.Onboard(t.Context(), adminSession(), applicant.ApplicantID, &dto.OnboardApplicantDto{
		JoinDate:          "2026-09-01",
		Salary:            65000_00,
		CreateUserAccount: true,
		Username:          "bilal",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Warning)
	require.Empty(t, resp.TempPassword)
	require.NotZero(t, resp.Employee.EmployeeID)
}

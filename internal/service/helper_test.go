package service

import (
	"testing"

	"hrms/config"
	"hrms/internal/core"
	client "hrms/internal/database/client"
	fluentdRepo "hrms/internal/database/fluentd/repository"
	"hrms/internal/database/jsondb/model"
	storeRepo "hrms/internal/database/jsondb/repository"
	redisRepo "hrms/internal/database/redis/repository"
	cErr "hrms/internal/pkg/error"
	"hrms/internal/pkg/secret"
	"hrms/internal/telemetry"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testEnv 以 t.TempDir() 為資料目錄組出完整 service 層；
// Redis 與 Fluentd 都處於停用模式。
type testEnv struct {
	conf     *config.Configuration
	store    *client.StoreClient
	users    *storeRepo.UserRepository
	emps     *storeRepo.EmployeeRepository
	leaves   *storeRepo.LeaveRepository
	payrolls *storeRepo.PayrollRepository
	settings *storeRepo.SettingsRepository

	auth        *AuthService
	employees   *EmployeeService
	departments *DepartmentService
	attendance  *AttendanceService
	leave       *LeaveService
	payroll     *PayrollService
	setting     *SettingsService
	recruitment *RecruitmentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conf := &config.Configuration{}
	conf.App.Name = "hrms"
	conf.App.SecretKey = "test-secret-key"
	conf.Store.Dir = t.TempDir()
	conf.Store.LockTimeoutMs = 500

	logger := zap.NewNop()
	trace, err := telemetry.NewTrace(conf)
	require.NoError(t, err)
	metric := telemetry.NewMetric(conf)

	store, cleanup, err := client.NewStoreClient(logger, conf, metric)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	redisClient, redisCleanup, err := client.NewRedisClient(logger, conf)
	require.NoError(t, err)
	t.Cleanup(redisCleanup)

	userRepo := storeRepo.NewUserRepository(store)
	employeeRepo := storeRepo.NewEmployeeRepository(store)
	departmentRepo := storeRepo.NewDepartmentRepository(store)
	attendanceRepo := storeRepo.NewAttendanceRepository(store)
	leaveRepo := storeRepo.NewLeaveRepository(store)
	payrollRepo := storeRepo.NewPayrollRepository(store)
	jobRepo := storeRepo.NewJobRepository(store)
	applicantRepo := storeRepo.NewApplicantRepository(store)
	settingsRepo := storeRepo.NewSettingsRepository(store)

	limiterRepo := redisRepo.NewLoginLimiterRepository(trace, redisClient)
	auditRepo := fluentdRepo.NewAuditRepository(conf, &client.NoopClient{})

	return &testEnv{
		conf:     conf,
		store:    store,
		users:    userRepo,
		emps:     employeeRepo,
		leaves:   leaveRepo,
		payrolls: payrollRepo,
		settings: settingsRepo,

		auth:        NewAuthService(conf, trace, metric, userRepo, employeeRepo, settingsRepo, limiterRepo, auditRepo),
		employees:   NewEmployeeService(trace, employeeRepo, auditRepo),
		departments: NewDepartmentService(trace, departmentRepo, employeeRepo),
		attendance:  NewAttendanceService(trace, attendanceRepo, employeeRepo),
		leave:       NewLeaveService(trace, leaveRepo, employeeRepo, settingsRepo),
		payroll:     NewPayrollService(trace, payrollRepo, employeeRepo, settingsRepo, auditRepo),
		setting:     NewSettingsService(trace, settingsRepo, auditRepo),
		recruitment: NewRecruitmentService(trace, jobRepo, applicantRepo, employeeRepo, userRepo, auditRepo),
	}
}

func adminSession() *core.Session {
	return &core.Session{UserID: 1, Username: "admin", Role: core.RoleAdmin}
}

func employeeSession(userID, employeeID int) *core.Session {
	return &core.Session{UserID: userID, Username: "worker", Role: core.RoleEmployee, EmployeeID: &employeeID}
}

// seedEmployee 直接從 repository 塞一筆員工
func (env *testEnv) seedEmployee(t *testing.T, salary model.Money) *model.Employee {
	t.Helper()
	employee, err := env.emps.Create(t.Context(), &model.Employee{
		FirstName:   "Ayesha",
		LastName:    "Khan",
		Email:       "ayesha.khan@example.com",
		Department:  "Engineering",
		Designation: "Engineer",
		JoinDate:    "2024-01-15",
		Salary:      salary,
		Status:      core.StatusActive,
	})
	require.NoError(t, err)
	return employee
}

// seedUser 直接從 repository 塞一個帳號
func (env *testEnv) seedUser(t *testing.T, username, password string, role core.Role, employeeID *int) *model.User {
	t.Helper()
	hashed, err := secret.HashPassword(password)
	require.NoError(t, err)
	user, err := env.users.Create(t.Context(), &model.User{
		Username:     username,
		PasswordHash: hashed,
		Role:         role,
		EmployeeID:   employeeID,
		Status:       core.StatusActive,
	})
	require.NoError(t, err)
	return user
}

func requireErrorCode(t *testing.T, err error, wantCode int) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*cErr.Error)
	require.True(t, ok, "expected *cErr.Error, got %T: %v", err, err)
	require.Equal(t, wantCode, appErr.ErrorCode())
}

package repository

import (
	"github.com/google/wire"
)

// 統一管理所有 JSON store repository
type StoreRepository struct {
	userRepo       *UserRepository
	employeeRepo   *EmployeeRepository
	departmentRepo *DepartmentRepository
	attendanceRepo *AttendanceRepository
	leaveRepo      *LeaveRepository
	payrollRepo    *PayrollRepository
	jobRepo        *JobRepository
	applicantRepo  *ApplicantRepository
	settingsRepo   *SettingsRepository
}

func NewStoreRepository(
	userRepo *UserRepository,
	employeeRepo *EmployeeRepository,
	departmentRepo *DepartmentRepository,
	attendanceRepo *AttendanceRepository,
	leaveRepo *LeaveRepository,
	payrollRepo *PayrollRepository,
	jobRepo *JobRepository,
	applicantRepo *ApplicantRepository,
	settingsRepo *SettingsRepository,
) *StoreRepository {
	return &StoreRepository{
		userRepo:       userRepo,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		payrollRepo:    payrollRepo,
		jobRepo:        jobRepo,
		applicantRepo:  applicantRepo,
		settingsRepo:   settingsRepo,
	}
}

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewUserRepository,
	NewEmployeeRepository,
	NewDepartmentRepository,
	NewAttendanceRepository,
	NewLeaveRepository,
	NewPayrollRepository,
	NewJobRepository,
	NewApplicantRepository,
	NewSettingsRepository,
	NewStoreRepository)

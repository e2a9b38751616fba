package service

import (
	"errors"

	client "hrms/internal/database/client"
	cErr "hrms/internal/pkg/error"

	"github.com/google/wire"
)

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewAuthService,
	NewEmployeeService,
	NewDepartmentService,
	NewAttendanceService,
	NewLeaveService,
	NewPayrollService,
	NewSettingsService,
	NewRecruitmentService,
	NewHealthService,
)

// storeErr 將 store 層錯誤轉成 API 錯誤；
// Mutate fn 內已轉好的 *cErr.Error 原樣放行。
func storeErr(err error, notFoundDesc string) error {
	var appErr *cErr.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, client.ErrNotFound):
		return cErr.NotFound(notFoundDesc)
	case errors.Is(err, client.ErrLockTimeout):
		return cErr.LockTimeout("store busy, retry later")
	default:
		return cErr.StorageError(err.Error())
	}
}

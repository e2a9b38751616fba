package service

import (
	"sync"
	"testing"

	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"

	"github.com/stretchr/testify/require"
)

func TestCheckInCheckOutFlow(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)
	session := employeeSession(10, employee.EmployeeID)

	record, err := env.attendance.MarkCheckIn(t.Context(), session, &dto.CheckInDto{Notes: "on site"})
	require.NoError(t, err)
	require.NotEmpty(t, record.CheckInTime)
	require.Equal(t, "Present", record.Status)
	require.Empty(t, record.CheckOutTime)

	// 同日重複簽到
	_, err = env.attendance.MarkCheckIn(t.Context(), session, &dto.CheckInDto{})
	requireErrorCode(t, err, cErr.ALREADY_CHECKED_IN)

	// 把簽到時間撥回午夜，避免同一秒簽退被時長為零的檢查擋下
	earlyCheckIn := "00:00:00"
	_, err = env.attendance.Update(t.Context(), adminSession(), record.AttendanceID, &dto.UpdateAttendanceDto{
		CheckInTime: &earlyCheckIn,
	})
	require.NoError(t, err)

	out, err := env.attendance.MarkCheckOut(t.Context(), session, &dto.CheckOutDto{})
	require.NoError(t, err)
	require.NotEmpty(t, out.CheckOutTime)
	require.Positive(t, out.DurationMinutes)

	// 簽退後再簽退
	_, err = env.attendance.MarkCheckOut(t.Context(), session, &dto.CheckOutDto{})
	requireErrorCode(t, err, cErr.ALREADY_CHECKED_OUT)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)
	session := employeeSession(10, employee.EmployeeID)

	_, err := env.attendance.MarkCheckOut(t.Context(), session, &dto.CheckOutDto{})
	requireErrorCode(t, err, cErr.NOT_CHECKED_IN)
}

func TestCheckInRequiresEmployeeProfile(t *testing.T) {
	env := newTestEnv(t)

	// Admin 帳號未綁員工，不能打卡
	_, err := env.attendance.MarkCheckIn(t.Context(), adminSession(), &dto.CheckInDto{})
	requireErrorCode(t, err, cErr.FORBIDDEN)
}

func TestAttendanceAdminCorrection(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)
	session := employeeSession(10, employee.EmployeeID)

	record, err := env.attendance.MarkCheckIn(t.Context(), session, &dto.CheckInDto{})
	require.NoError(t, err)

	checkIn := "09:00:00"
	checkOut := "17:30:00"
	updated, err := env.attendance.Update(t.Context(), adminSession(), record.AttendanceID, &dto.UpdateAttendanceDto{
		CheckInTime:  &checkIn,
		CheckOutTime: &checkOut,
	})
	require.NoError(t, err)
	require.Equal(t, 510, updated.DurationMinutes)

	// 簽退早於簽到
	badCheckOut := "08:00:00"
	_, err = env.attendance.Update(t.Context(), adminSession(), record.AttendanceID, &dto.UpdateAttendanceDto{
		CheckOutTime: &badCheckOut,
	})
	requireErrorCode(t, err, cErr.INVALID_TIME_RANGE)

	// 簽退等於簽到，時長為零也不接受
	_, err = env.attendance.Update(t.Context(), adminSession(), record.AttendanceID, &dto.UpdateAttendanceDto{
		CheckOutTime: &checkIn,
	})
	requireErrorCode(t, err, cErr.INVALID_TIME_RANGE)

	// 清掉簽到只留簽退的記錄不成立
	empty := ""
	_, err = env.attendance.Update(t.Context(), adminSession(), record.AttendanceID, &dto.UpdateAttendanceDto{
		CheckInTime: &empty,
	})
	requireErrorCode(t, err, cErr.INVALID_TIME_RANGE)
}

func TestAttendanceBackdatedMarking(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)
	pastDate := "2025-06-02"

	// 管理者可代打指定員工並補登過去日期
	record, err := env.attendance.MarkCheckIn(t.Context(), adminSession(), &dto.CheckInDto{
		EmployeeID: &employee.EmployeeID,
		Date:       &pastDate,
	})
	require.NoError(t, err)
	require.Equal(t, employee.EmployeeID, record.EmployeeID)
	require.Equal(t, pastDate, record.Date)

	// 同一天的簽退也走同一組狀態機
	earlyCheckIn := "00:00:00"
	_, err = env.attendance.Update(t.Context(), adminSession(), record.AttendanceID, &dto.UpdateAttendanceDto{
		CheckInTime: &earlyCheckIn,
	})
	require.NoError(t, err)

	out, err := env.attendance.MarkCheckOut(t.Context(), adminSession(), &dto.CheckOutDto{
		EmployeeID: &employee.EmployeeID,
		Date:       &pastDate,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.CheckOutTime)

	// 不存在的員工
	missing := 999
	_, err = env.attendance.MarkCheckIn(t.Context(), adminSession(), &dto.CheckInDto{EmployeeID: &missing})
	requireErrorCode(t, err, cErr.NOT_FOUND)
}

func TestAttendanceMarkingPermissions(t *testing.T) {
	env := newTestEnv(t)
	mine := env.seedEmployee(t, 50000_00)
	other := env.seedEmployee(t, 60000_00)
	session := employeeSession(10, mine.EmployeeID)

	// 一般員工不能替別人打卡
	_, err := env.attendance.MarkCheckIn(t.Context(), session, &dto.CheckInDto{EmployeeID: &other.EmployeeID})
	requireErrorCode(t, err, cErr.FORBIDDEN)

	// 一般員工不能補登過去日期
	pastDate := "2025-06-02"
	_, err = env.attendance.MarkCheckIn(t.Context(), session, &dto.CheckInDto{Date: &pastDate})
	requireErrorCode(t, err, cErr.FORBIDDEN)

	badDate := "02-06-2025"
	_, err = env.attendance.MarkCheckIn(t.Context(), adminSession(), &dto.CheckInDto{
		EmployeeID: &mine.EmployeeID,
		Date:       &badDate,
	})
	requireErrorCode(t, err, cErr.BAD_REQUEST_BODY)
}

func TestConcurrentCheckInSingleWinner(t *testing.T) {
	env := newTestEnv(t)
	employee := env.seedEmployee(t, 50000_00)
	session := employeeSession(10, employee.EmployeeID)

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.attendance.MarkCheckIn(t.Context(), session, &dto.CheckInDto{})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, duplicated int
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		requireErrorCode(t, err, cErr.ALREADY_CHECKED_IN)
		duplicated++
	}
	require.Equal(t, 1, succeeded)
	require.Equal(t, 1, duplicated)
}

func TestAttendanceVisibility(t *testing.T) {
	env := newTestEnv(t)
	mine := env.seedEmployee(t, 50000_00)
	other := env.seedEmployee(t, 60000_00)

	_, err := env.attendance.MarkCheckIn(t.Context(), employeeSession(11, other.EmployeeID), &dto.CheckInDto{})
	require.NoError(t, err)

	// 一般員工指定他人的 employee_id 仍只回自己的記錄
	list, err := env.attendance.List(t.Context(), employeeSession(10, mine.EmployeeID), other.EmployeeID, "", "")
	require.NoError(t, err)
	require.Empty(t, list)

	all, err := env.attendance.List(t.Context(), adminSession(), 0, "", "")
	require.NoError(t, err)
	require.Len(t, all, 1)
}

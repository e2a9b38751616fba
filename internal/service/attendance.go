package service

import (
	"context"
	"fmt"
	"time"

	"hrms/internal/core"
	client "hrms/internal/database/client"
	"hrms/internal/database/jsondb/model"
	storeRepo "hrms/internal/database/jsondb/repository"
	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"
	"hrms/internal/pkg/guard"
	"hrms/internal/telemetry"
)

const timeLayout = "15:04:05"

type AttendanceService struct {
	trace          *telemetry.Trace
	attendanceRepo *storeRepo.AttendanceRepository
	employeeRepo   *storeRepo.EmployeeRepository
}

func NewAttendanceService(
	trace *telemetry.Trace,
	attendanceRepo *storeRepo.AttendanceRepository,
	employeeRepo *storeRepo.EmployeeRepository,
) *AttendanceService {
	return &AttendanceService{trace: trace, attendanceRepo: attendanceRepo, employeeRepo: employeeRepo}
}

// MarkCheckIn 簽到。當日已有記錄則拒絕；
// 重複檢查與新增在同一把集合鎖內，並發重複簽到只會成功一次。
// 管理者可帶 employee_id 代打、帶 date 補登過去日期。
func (s *AttendanceService) MarkCheckIn(ctx context.Context, session *core.Session, checkInDto *dto.CheckInDto) (_ *dto.AttendanceResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	now := time.Now()
	employeeID, date, err := s.resolveMarkTarget(ctx, session, checkInDto.EmployeeID, checkInDto.Date, now)
	if err != nil {
		return nil, err
	}
	var created *model.Attendance

	err = s.attendanceRepo.Mutate(ctx, func(tx *client.Tx[*model.Attendance]) error {
		for _, record := range tx.Records {
			if record.EmployeeID == employeeID && record.Date == date {
				return cErr.AlreadyCheckedIn(fmt.Sprintf("already checked in on %s", date))
			}
		}
		record := &model.Attendance{
			EmployeeID:  employeeID,
			Date:        date,
			CheckInTime: now.Format(timeLayout),
			Status:      "Present",
			Notes:       checkInDto.Notes,
		}
		appended, appendError := tx.Append(record)
		created = appended
		return appendError
	})
	if err != nil {
		return nil, storeErr(err, "attendance not found")
	}

	s.trace.ApplyTraceAttributes(span, core.TraceAttendanceMeta{
		AttendanceID: created.AttendanceID,
		EmployeeID:   employeeID,
		Date:         date,
		Op:           "check_in",
	})
	return s.toAttendanceDto(ctx, created), nil
}

// MarkCheckOut 簽退。需已簽到且尚未簽退；時長以分鐘計。
func (s *AttendanceService) MarkCheckOut(ctx context.Context, session *core.Session, checkOutDto *dto.CheckOutDto) (_ *dto.AttendanceResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	now := time.Now()
	employeeID, date, err := s.resolveMarkTarget(ctx, session, checkOutDto.EmployeeID, checkOutDto.Date, now)
	if err != nil {
		return nil, err
	}
	var updated *model.Attendance

	err = s.attendanceRepo.Mutate(ctx, func(tx *client.Tx[*model.Attendance]) error {
		var record *model.Attendance
		for _, candidate := range tx.Records {
			if candidate.EmployeeID == employeeID && candidate.Date == date {
				record = candidate
				break
			}
		}
		if record == nil || record.CheckInTime == "" {
			return cErr.NotCheckedIn(fmt.Sprintf("no check-in found on %s", date))
		}
		if record.CheckOutTime != "" {
			return cErr.AlreadyCheckedOut(fmt.Sprintf("already checked out on %s", date))
		}

		checkOutTime := now.Format(timeLayout)
		minutes, err := durationMinutes(record.CheckInTime, checkOutTime)
		if err != nil {
			return err
		}
		record.CheckOutTime = checkOutTime
		record.DurationMinutes = minutes
		updated = record
		tx.MarkDirty()
		return nil
	})
	if err != nil {
		return nil, storeErr(err, "attendance not found")
	}

	s.trace.ApplyTraceAttributes(span, core.TraceAttendanceMeta{
		AttendanceID: updated.AttendanceID,
		EmployeeID:   employeeID,
		Date:         date,
		Op:           "check_out",
	})
	return s.toAttendanceDto(ctx, updated), nil
}

// resolveMarkTarget 決定打卡對象與日期。預設本人、當天；
// 代打他人需 Admin / HR Staff，補登非當天日期亦同。
func (s *AttendanceService) resolveMarkTarget(ctx context.Context, session *core.Session, employeeIDOverride *int, dateOverride *string, now time.Time) (int, string, error) {
	if err := guard.Authorize(session, guard.Authenticated()); err != nil {
		return 0, "", err
	}

	var employeeID int
	switch {
	case employeeIDOverride != nil:
		employeeID = *employeeIDOverride
	case session.EmployeeID != nil:
		employeeID = *session.EmployeeID
	default:
		return 0, "", cErr.Forbidden("account is not linked to an employee profile")
	}
	if err := guard.Authorize(session, guard.SelfOrManagers(employeeID)); err != nil {
		return 0, "", err
	}
	if employeeIDOverride != nil && !guard.IsSelf(session, employeeID) {
		if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
			return 0, "", storeErr(err, fmt.Sprintf("employee %d not found", employeeID))
		}
	}

	date := now.Format(dateLayout)
	if dateOverride != nil && *dateOverride != "" {
		if _, err := time.Parse(dateLayout, *dateOverride); err != nil {
			return 0, "", cErr.BadRequestBody("date must be YYYY-MM-DD")
		}
		if *dateOverride != date && !guard.IsManager(session) {
			return 0, "", cErr.Forbidden("backdating requires Admin or HR Staff")
		}
		date = *dateOverride
	}
	return employeeID, date, nil
}

// List 出勤列表。管理者可查全體並依員工／日期區間篩選；
// 一般員工僅能查自己的記錄。
func (s *AttendanceService) List(ctx context.Context, session *core.Session, employeeID int, from, to string) (_ []*dto.AttendanceResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Authenticated()); err != nil {
		return nil, err
	}
	if !guard.IsManager(session) {
		if session.EmployeeID == nil {
			return []*dto.AttendanceResponseDto{}, nil
		}
		employeeID = *session.EmployeeID
	}

	records, err := s.attendanceRepo.ListAll(ctx)
	if err != nil {
		return nil, storeErr(err, "attendance not found")
	}
	result := make([]*dto.AttendanceResponseDto, 0, len(records))
	for _, record := range records {
		if employeeID != 0 && record.EmployeeID != employeeID {
			continue
		}
		if from != "" && record.Date < from {
			continue
		}
		if to != "" && record.Date > to {
			continue
		}
		result = append(result, s.toAttendanceDto(ctx, record))
	}
	return result, nil
}

// Update 管理者補登／修正出勤記錄
func (s *AttendanceService) Update(ctx context.Context, session *core.Session, attendanceID int, updateDto *dto.UpdateAttendanceDto) (_ *dto.AttendanceResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Managers()); err != nil {
		return nil, err
	}
	if updateDto.CheckInTime != nil {
		if _, err := time.Parse(timeLayout, *updateDto.CheckInTime); err != nil {
			return nil, cErr.BadRequestBody("check_in_time must be HH:MM:SS")
		}
	}
	if updateDto.CheckOutTime != nil && *updateDto.CheckOutTime != "" {
		if _, err := time.Parse(timeLayout, *updateDto.CheckOutTime); err != nil {
			return nil, cErr.BadRequestBody("check_out_time must be HH:MM:SS")
		}
	}

	updated, err := s.attendanceRepo.UpdateByID(ctx, attendanceID, func(record *model.Attendance) error {
		if updateDto.CheckInTime != nil {
			record.CheckInTime = *updateDto.CheckInTime
		}
		if updateDto.CheckOutTime != nil {
			record.CheckOutTime = *updateDto.CheckOutTime
		}
		if updateDto.Status != nil {
			record.Status = *updateDto.Status
		}
		if updateDto.Notes != nil {
			record.Notes = *updateDto.Notes
		}
		if record.CheckInTime == "" && record.CheckOutTime != "" {
			return cErr.InvalidTimeRange("record cannot carry a check-out without a check-in")
		}
		if record.CheckInTime != "" && record.CheckOutTime != "" {
			minutes, err := durationMinutes(record.CheckInTime, record.CheckOutTime)
			if err != nil {
				return err
			}
			record.DurationMinutes = minutes
		} else {
			record.DurationMinutes = 0
		}
		return nil
	})
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("attendance %d not found", attendanceID))
	}
	return s.toAttendanceDto(ctx, updated), nil
}

// Delete 刪除出勤記錄（僅 Admin）
func (s *AttendanceService) Delete(ctx context.Context, session *core.Session, attendanceID int) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Roles(core.RoleAdmin)); err != nil {
		return err
	}
	if err := s.attendanceRepo.DeleteByID(ctx, attendanceID); err != nil {
		return storeErr(err, fmt.Sprintf("attendance %d not found", attendanceID))
	}
	return nil
}

// durationMinutes 計算同日簽到到簽退的分鐘數；時長必須為正
func durationMinutes(checkIn, checkOut string) (int, error) {
	start, err := time.Parse(timeLayout, checkIn)
	if err != nil {
		return 0, cErr.BadRequestBody("check_in_time must be HH:MM:SS")
	}
	stop, err := time.Parse(timeLayout, checkOut)
	if err != nil {
		return 0, cErr.BadRequestBody("check_out_time must be HH:MM:SS")
	}
	if !stop.After(start) {
		return 0, cErr.InvalidTimeRange("check-out time must be after check-in time")
	}
	return int(stop.Sub(start).Minutes()), nil
}

func (s *AttendanceService) toAttendanceDto(ctx context.Context, record *model.Attendance) *dto.AttendanceResponseDto {
	resp := &dto.AttendanceResponseDto{
		AttendanceID:    record.AttendanceID,
		EmployeeID:      record.EmployeeID,
		Date:            record.Date,
		CheckInTime:     record.CheckInTime,
		CheckOutTime:    record.CheckOutTime,
		DurationMinutes: record.DurationMinutes,
		Status:          record.Status,
		Notes:           record.Notes,
	}
	if employee, err := s.employeeRepo.GetByID(ctx, record.EmployeeID); err == nil {
		resp.EmployeeName = employee.FullName()
	}
	return resp
}

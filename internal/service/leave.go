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

type LeaveService struct {
	trace        *telemetry.Trace
	leaveRepo    *storeRepo.LeaveRepository
	employeeRepo *storeRepo.EmployeeRepository
	settingsRepo *storeRepo.SettingsRepository
}

func NewLeaveService(
	trace *telemetry.Trace,
	leaveRepo *storeRepo.LeaveRepository,
	employeeRepo *storeRepo.EmployeeRepository,
	settingsRepo *storeRepo.SettingsRepository,
) *LeaveService {
	return &LeaveService{
		trace:        trace,
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		settingsRepo: settingsRepo,
	}
}

// Apply 請假申請。天數只計工作日（週一到週五）；
// 額度檢查與新增在同一把集合鎖內，並發申請不會同時通過。
func (s *LeaveService) Apply(ctx context.Context, session *core.Session, applyDto *dto.ApplyLeaveDto) (_ *dto.LeaveResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Authenticated()); err != nil {
		return nil, err
	}
	if session.EmployeeID == nil {
		return nil, cErr.Forbidden("account is not linked to an employee profile")
	}
	employeeID := *session.EmployeeID

	if !core.IsValidLeaveType(applyDto.LeaveType) {
		return nil, cErr.BadRequestBody(fmt.Sprintf("unknown leave type %q", applyDto.LeaveType))
	}
	start, stop, err := parseDateRange(applyDto.StartDate, applyDto.EndDate)
	if err != nil {
		return nil, err
	}
	days := businessDays(start, stop)
	if days == 0 {
		return nil, cErr.InvalidDateRange("requested range contains no business days")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, storeErr(err, "settings not found")
	}
	quota := s.quotaFor(ctx, settings, applyDto.LeaveType, employeeID, start.Year())

	today := time.Now().Format(dateLayout)
	var created *model.Leave

	err = s.leaveRepo.Mutate(ctx, func(tx *client.Tx[*model.Leave]) error {
		used := usedDays(tx.Records, employeeID, applyDto.LeaveType, start.Year())
		if used+days > quota {
			s.trace.ApplyTraceAttributes(span, core.TraceLeaveMeta{
				EmployeeID: employeeID,
				LeaveType:  string(applyDto.LeaveType),
				Days:       days,
				Used:       used,
				Quota:      quota,
			})
			return cErr.QuotaExceeded(fmt.Sprintf("%s leave quota exceeded: %d used, %d requested, %d allowed",
				applyDto.LeaveType, used, days, quota))
		}
		leave := &model.Leave{
			EmployeeID:  employeeID,
			LeaveType:   applyDto.LeaveType,
			StartDate:   applyDto.StartDate,
			EndDate:     applyDto.EndDate,
			Reason:      applyDto.Reason,
			Status:      core.LeaveStatusPending,
			AppliedDate: today,
		}
		appended, appendError := tx.Append(leave)
		created = appended
		return appendError
	})
	if err != nil {
		return nil, storeErr(err, "leave not found")
	}

	s.trace.ApplyTraceAttributes(span, core.TraceLeaveMeta{
		LeaveID:    created.LeaveID,
		EmployeeID: employeeID,
		LeaveType:  string(applyDto.LeaveType),
		Days:       days,
		Status:     string(created.Status),
	})
	return s.toLeaveDto(ctx, created), nil
}

// Decide 核准或駁回（管理者）；只有 Pending 可審
func (s *LeaveService) Decide(ctx context.Context, session *core.Session, leaveID int, approve bool, decideDto *dto.DecideLeaveDto) (_ *dto.LeaveResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Managers()); err != nil {
		return nil, err
	}

	status := core.LeaveStatusApproved
	if !approve {
		status = core.LeaveStatusRejected
	}
	today := time.Now().Format(dateLayout)

	updated, err := s.leaveRepo.UpdateByID(ctx, leaveID, func(leave *model.Leave) error {
		if leave.Status != core.LeaveStatusPending {
			return cErr.AlreadyDecided(fmt.Sprintf("leave %d is already %s", leaveID, leave.Status))
		}
		leave.Status = status
		leave.DecidedBy = &session.UserID
		leave.DecidedDate = &today
		if decideDto.Comments != "" {
			leave.Comments = &decideDto.Comments
		}
		return nil
	})
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("leave %d not found", leaveID))
	}
	return s.toLeaveDto(ctx, updated), nil
}

// Update 修改申請；僅申請人（或管理者）且尚未審核。
// 非本人也非管理者一律回 not-found，不洩漏假單是否存在。
func (s *LeaveService) Update(ctx context.Context, session *core.Session, leaveID int, updateDto *dto.UpdateLeaveDto) (_ *dto.LeaveResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Authenticated()); err != nil {
		return nil, err
	}
	if updateDto.LeaveType != nil && !core.IsValidLeaveType(*updateDto.LeaveType) {
		return nil, cErr.BadRequestBody(fmt.Sprintf("unknown leave type %q", *updateDto.LeaveType))
	}

	updated, err := s.leaveRepo.UpdateByID(ctx, leaveID, func(leave *model.Leave) error {
		if !guard.IsManager(session) && !guard.IsSelf(session, leave.EmployeeID) {
			return cErr.NotFound(fmt.Sprintf("leave %d not found", leaveID))
		}
		if leave.Status != core.LeaveStatusPending {
			return cErr.AlreadyDecided(fmt.Sprintf("leave %d is already %s", leaveID, leave.Status))
		}
		if updateDto.LeaveType != nil {
			leave.LeaveType = *updateDto.LeaveType
		}
		if updateDto.StartDate != nil {
			leave.StartDate = *updateDto.StartDate
		}
		if updateDto.EndDate != nil {
			leave.EndDate = *updateDto.EndDate
		}
		if updateDto.Reason != nil {
			leave.Reason = *updateDto.Reason
		}
		if _, _, err := parseDateRange(leave.StartDate, leave.EndDate); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("leave %d not found", leaveID))
	}
	return s.toLeaveDto(ctx, updated), nil
}

// Withdraw 撤回申請；申請人限 Pending，Admin 不受限
func (s *LeaveService) Withdraw(ctx context.Context, session *core.Session, leaveID int) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Authenticated()); err != nil {
		return err
	}

	err := s.leaveRepo.Mutate(ctx, func(tx *client.Tx[*model.Leave]) error {
		leave, ok := tx.Find(leaveID)
		if !ok {
			return cErr.NotFound(fmt.Sprintf("leave %d not found", leaveID))
		}
		if session.Role != core.RoleAdmin {
			if !guard.IsSelf(session, leave.EmployeeID) {
				return cErr.NotFound(fmt.Sprintf("leave %d not found", leaveID))
			}
			if leave.Status != core.LeaveStatusPending {
				return cErr.AlreadyDecided(fmt.Sprintf("leave %d is already %s", leaveID, leave.Status))
			}
		}
		tx.Remove(leaveID)
		return nil
	})
	if err != nil {
		return storeErr(err, fmt.Sprintf("leave %d not found", leaveID))
	}
	return nil
}

// GetByID 查單一假單；非本人也非管理者回 not-found
func (s *LeaveService) GetByID(ctx context.Context, session *core.Session, leaveID int) (_ *dto.LeaveResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Authenticated()); err != nil {
		return nil, err
	}
	leave, err := s.leaveRepo.GetByID(ctx, leaveID)
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("leave %d not found", leaveID))
	}
	if !guard.IsManager(session) && !guard.IsSelf(session, leave.EmployeeID) {
		return nil, cErr.NotFound(fmt.Sprintf("leave %d not found", leaveID))
	}
	return s.toLeaveDto(ctx, leave), nil
}

// List 假單列表。管理者可查全體並篩選；一般員工僅能查自己。
func (s *LeaveService) List(ctx context.Context, session *core.Session, employeeID int, status core.LeaveStatus) (_ []*dto.LeaveResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Authenticated()); err != nil {
		return nil, err
	}
	if !guard.IsManager(session) {
		if session.EmployeeID == nil {
			return []*dto.LeaveResponseDto{}, nil
		}
		employeeID = *session.EmployeeID
	}

	leaves, err := s.leaveRepo.ListAll(ctx)
	if err != nil {
		return nil, storeErr(err, "leaves not found")
	}
	result := make([]*dto.LeaveResponseDto, 0, len(leaves))
	for _, leave := range leaves {
		if employeeID != 0 && leave.EmployeeID != employeeID {
			continue
		}
		if status != "" && leave.Status != status {
			continue
		}
		result = append(result, s.toLeaveDto(ctx, leave))
	}
	return result, nil
}

// Balance 年度額度摘要；一般員工僅能查自己
func (s *LeaveService) Balance(ctx context.Context, session *core.Session, employeeID int) (_ []*dto.LeaveBalanceDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.SelfOrManagers(employeeID)); err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, storeErr(err, "settings not found")
	}
	leaves, err := s.leaveRepo.ListAll(ctx)
	if err != nil {
		return nil, storeErr(err, "leaves not found")
	}

	year := time.Now().Year()
	types := []core.LeaveType{core.LeaveTypeAnnual, core.LeaveTypeSick, core.LeaveTypeCasual}
	result := make([]*dto.LeaveBalanceDto, 0, len(types))
	for _, leaveType := range types {
		quota := s.quotaFor(ctx, settings, leaveType, employeeID, year)
		used := usedDays(leaves, employeeID, leaveType, year)
		remaining := quota - used
		if remaining < 0 {
			remaining = 0
		}
		result = append(result, &dto.LeaveBalanceDto{
			LeaveType: leaveType,
			Quota:     quota,
			Used:      used,
			Remaining: remaining,
		})
	}
	return result, nil
}

// quotaFor 年度配額；年假在允許遞延時加計去年未用完的天數（有上限）
func (s *LeaveService) quotaFor(ctx context.Context, settings *model.Settings, leaveType core.LeaveType, employeeID, year int) int {
	quota := settings.LeavePolicies.Quota(string(leaveType))
	if leaveType != core.LeaveTypeAnnual || !settings.LeavePolicies.CarryForwardAllowed {
		return quota
	}

	leaves, err := s.leaveRepo.ListAll(ctx)
	if err != nil {
		return quota
	}
	lastYearUsed := usedDays(leaves, employeeID, leaveType, year-1)
	carried := settings.LeavePolicies.AnnualLeaveQuota - lastYearUsed
	if carried < 0 {
		carried = 0
	}
	if carried > settings.LeavePolicies.MaxCarryForwardDays {
		carried = settings.LeavePolicies.MaxCarryForwardDays
	}
	return quota + carried
}

// usedDays 加總該員工該年度同假別的已用工作日（Pending 與 Approved 都佔額度）
func usedDays(leaves []*model.Leave, employeeID int, leaveType core.LeaveType, year int) int {
	total := 0
	for _, leave := range leaves {
		if leave.EmployeeID != employeeID || leave.LeaveType != leaveType {
			continue
		}
		if leave.Status == core.LeaveStatusRejected {
			continue
		}
		start, err := time.Parse(dateLayout, leave.StartDate)
		if err != nil || start.Year() != year {
			continue
		}
		stop, err := time.Parse(dateLayout, leave.EndDate)
		if err != nil {
			continue
		}
		total += businessDays(start, stop)
	}
	return total
}

// businessDays 區間內的工作日數（含頭尾，週六日不計）
func businessDays(start, stop time.Time) int {
	days := 0
	for day := start; !day.After(stop); day = day.AddDate(0, 0, 1) {
		if weekday := day.Weekday(); weekday != time.Saturday && weekday != time.Sunday {
			days++
		}
	}
	return days
}

func parseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, cErr.BadRequestBody("start_date must be YYYY-MM-DD")
	}
	stop, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, cErr.BadRequestBody("end_date must be YYYY-MM-DD")
	}
	if stop.Before(start) {
		return time.Time{}, time.Time{}, cErr.InvalidDateRange("end_date is before start_date")
	}
	return start, stop, nil
}

func (s *LeaveService) toLeaveDto(ctx context.Context, leave *model.Leave) *dto.LeaveResponseDto {
	days := 0
	if start, err := time.Parse(dateLayout, leave.StartDate); err == nil {
		if stop, err := time.Parse(dateLayout, leave.EndDate); err == nil {
			days = businessDays(start, stop)
		}
	}
	resp := &dto.LeaveResponseDto{
		LeaveID:      leave.LeaveID,
		EmployeeID:   leave.EmployeeID,
		LeaveType:    leave.LeaveType,
		StartDate:    leave.StartDate,
		EndDate:      leave.EndDate,
		BusinessDays: days,
		Reason:       leave.Reason,
		Status:       leave.Status,
		AppliedDate:  leave.AppliedDate,
		DecidedBy:    leave.DecidedBy,
		DecidedDate:  leave.DecidedDate,
		Comments:     leave.Comments,
	}
	if employee, err := s.employeeRepo.GetByID(ctx, leave.EmployeeID); err == nil {
		resp.EmployeeName = employee.FullName()
	}
	return resp
}

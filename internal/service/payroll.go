package service

import (
	"context"
	"fmt"
	"time"

	"hrms/internal/core"
	client "hrms/internal/database/client"
	fluentdModel "hrms/internal/database/fluentd/model"
	fluentdRepo "hrms/internal/database/fluentd/repository"
	"hrms/internal/database/jsondb/model"
	storeRepo "hrms/internal/database/jsondb/repository"
	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"
	"hrms/internal/pkg/guard"
	"hrms/internal/telemetry"
)

const periodLayout = "2006-01"

type PayrollService struct {
	trace        *telemetry.Trace
	payrollRepo  *storeRepo.PayrollRepository
	employeeRepo *storeRepo.EmployeeRepository
	settingsRepo *storeRepo.SettingsRepository
	auditRepo    *fluentdRepo.AuditRepository
}

func NewPayrollService(
	trace *telemetry.Trace,
	payrollRepo *storeRepo.PayrollRepository,
	employeeRepo *storeRepo.EmployeeRepository,
	settingsRepo *storeRepo.SettingsRepository,
	auditRepo *fluentdRepo.AuditRepository,
) *PayrollService {
	return &PayrollService{
		trace:        trace,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		settingsRepo: settingsRepo,
		auditRepo:    auditRepo,
	}
}

// Generate 產生薪資單（管理者）。
// 指定員工時同期間重複視為衝突；未指定時為全體在職員工批次產生、
// 已有記錄者跳過。唯一性檢查與寫入在同一把集合鎖內。
func (s *PayrollService) Generate(ctx context.Context, session *core.Session, generateDto *dto.GeneratePayrollDto) (_ *dto.GeneratePayrollResponseDto, returnedError error) {
	ctx, span, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Managers()); err != nil {
		return nil, err
	}
	if _, err := time.Parse(periodLayout, generateDto.Period); err != nil {
		return nil, cErr.InvalidPeriod("period must be YYYY-MM")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, storeErr(err, "settings not found")
	}

	var targets []*model.Employee
	if generateDto.EmployeeID != 0 {
		employee, err := s.employeeRepo.GetByID(ctx, generateDto.EmployeeID)
		if err != nil {
			return nil, storeErr(err, fmt.Sprintf("employee %d not found", generateDto.EmployeeID))
		}
		targets = []*model.Employee{employee}
	} else {
		targets, err = s.employeeRepo.ListByStatus(ctx, core.StatusActive)
		if err != nil {
			return nil, storeErr(err, "employees not found")
		}
	}

	var allowances, deductions model.Money
	if generateDto.Allowances != nil {
		allowances = *generateDto.Allowances
	}
	if generateDto.Deductions != nil {
		deductions = *generateDto.Deductions
	}

	today := time.Now().Format(dateLayout)
	var generated []*model.Payroll
	skipped := 0

	err = s.payrollRepo.Mutate(ctx, func(tx *client.Tx[*model.Payroll]) error {
		existing := make(map[int]bool, len(tx.Records))
		for _, payroll := range tx.Records {
			if payroll.Period == generateDto.Period {
				existing[payroll.EmployeeID] = true
			}
		}
		for _, employee := range targets {
			if existing[employee.EmployeeID] {
				if generateDto.EmployeeID != 0 {
					return cErr.DuplicatePeriod(fmt.Sprintf("payroll for employee %d in %s already exists",
						employee.EmployeeID, generateDto.Period))
				}
				skipped++
				continue
			}
			payroll := computePayroll(employee, generateDto.Period, allowances, deductions, settings.PayrollSettings)
			payroll.GeneratedBy = session.UserID
			payroll.GeneratedDate = today
			if _, appendError := tx.Append(payroll); appendError != nil {
				return appendError
			}
			generated = append(generated, payroll)
		}
		return nil
	})
	if err != nil {
		return nil, storeErr(err, "payroll not found")
	}

	s.trace.ApplyTraceAttributes(span, core.TracePayrollMeta{
		Period:    generateDto.Period,
		Generated: len(generated),
	})
	_ = s.auditRepo.LogEvent(ctx, fluentdModel.AuditEvent{
		Action:    "payroll.generate",
		ActorID:   session.UserID,
		ActorName: session.Username,
		ActorRole: string(session.Role),
		Outcome:   fluentdModel.OutcomeSuccess,
		Detail:    fmt.Sprintf("period=%s generated=%d skipped=%d", generateDto.Period, len(generated), skipped),
	})

	payrollDtos := make([]*dto.PayrollResponseDto, 0, len(generated))
	for _, payroll := range generated {
		payrollDtos = append(payrollDtos, s.toPayrollDto(ctx, payroll, settings.PayrollSettings.Currency))
	}
	return &dto.GeneratePayrollResponseDto{
		Generated: len(generated),
		Skipped:   skipped,
		Payrolls:  payrollDtos,
	}, nil
}

// computePayroll 稅與公積金都以底薪計，net = 底薪 + 津貼 - 扣款 - 稅 - 公積金
func computePayroll(employee *model.Employee, period string, allowances, deductions model.Money, payrollSettings model.PayrollSettings) *model.Payroll {
	gross := employee.Salary
	tax := gross.MulRate(payrollSettings.TaxRate)
	providentFund := gross.MulRate(payrollSettings.ProvidentFundRate)
	net := gross + allowances - deductions - tax - providentFund

	return &model.Payroll{
		EmployeeID:    employee.EmployeeID,
		Period:        period,
		GrossSalary:   gross,
		Allowances:    allowances,
		Deductions:    deductions,
		Tax:           tax,
		ProvidentFund: providentFund,
		NetSalary:     net,
		Status:        core.PayrollStatusPending,
	}
}

// GetByID 查單一薪資單；非本人也非管理者回 not-found
func (s *PayrollService) GetByID(ctx context.Context, session *core.Session, payrollID int) (_ *dto.PayrollResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Authenticated()); err != nil {
		return nil, err
	}
	payroll, err := s.payrollRepo.GetByID(ctx, payrollID)
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("payroll %d not found", payrollID))
	}
	if !guard.IsManager(session) && !guard.IsSelf(session, payroll.EmployeeID) {
		return nil, cErr.NotFound(fmt.Sprintf("payroll %d not found", payrollID))
	}
	return s.toPayrollDto(ctx, payroll, s.currency(ctx)), nil
}

// List 薪資單列表。管理者可查全體並依員工／期間篩選；
// 一般員工僅能查自己。
func (s *PayrollService) List(ctx context.Context, session *core.Session, employeeID int, period string) (_ []*dto.PayrollResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Authenticated()); err != nil {
		return nil, err
	}
	if !guard.IsManager(session) {
		if session.EmployeeID == nil {
			return []*dto.PayrollResponseDto{}, nil
		}
		employeeID = *session.EmployeeID
	}

	payrolls, err := s.payrollRepo.ListAll(ctx)
	if err != nil {
		return nil, storeErr(err, "payrolls not found")
	}
	currency := s.currency(ctx)
	result := make([]*dto.PayrollResponseDto, 0, len(payrolls))
	for _, payroll := range payrolls {
		if employeeID != 0 && payroll.EmployeeID != employeeID {
			continue
		}
		if period != "" && payroll.Period != period {
			continue
		}
		result = append(result, s.toPayrollDto(ctx, payroll, currency))
	}
	return result, nil
}

// MarkPaid 標記已發放（管理者）
func (s *PayrollService) MarkPaid(ctx context.Context, session *core.Session, payrollID int) (_ *dto.PayrollResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Managers()); err != nil {
		return nil, err
	}
	today := time.Now().Format(dateLayout)
	updated, err := s.payrollRepo.UpdateByID(ctx, payrollID, func(payroll *model.Payroll) error {
		if payroll.Status == core.PayrollStatusPaid {
			return cErr.AlreadyDecided(fmt.Sprintf("payroll %d is already marked paid", payrollID))
		}
		payroll.Status = core.PayrollStatusPaid
		payroll.PaymentDate = today
		return nil
	})
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("payroll %d not found", payrollID))
	}
	return s.toPayrollDto(ctx, updated, s.currency(ctx)), nil
}

// Delete 刪除薪資單（僅 Admin）
func (s *PayrollService) Delete(ctx context.Context, session *core.Session, payrollID int) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Roles(core.RoleAdmin)); err != nil {
		return err
	}
	if err := s.payrollRepo.DeleteByID(ctx, payrollID); err != nil {
		return storeErr(err, fmt.Sprintf("payroll %d not found", payrollID))
	}
	return nil
}

func (s *PayrollService) currency(ctx context.Context) string {
	if settings, err := s.settingsRepo.Get(ctx); err == nil {
		return settings.PayrollSettings.Currency
	}
	return ""
}

func (s *PayrollService) toPayrollDto(ctx context.Context, payroll *model.Payroll, currency string) *dto.PayrollResponseDto {
	resp := &dto.PayrollResponseDto{
		PayrollID:     payroll.PayrollID,
		EmployeeID:    payroll.EmployeeID,
		Period:        payroll.Period,
		GrossSalary:   payroll.GrossSalary,
		Allowances:    payroll.Allowances,
		Deductions:    payroll.Deductions,
		Tax:           payroll.Tax,
		ProvidentFund: payroll.ProvidentFund,
		NetSalary:     payroll.NetSalary,
		Currency:      currency,
		Status:        payroll.Status,
		PaymentDate:   payroll.PaymentDate,
		GeneratedBy:   payroll.GeneratedBy,
		GeneratedDate: payroll.GeneratedDate,
	}
	if employee, err := s.employeeRepo.GetByID(ctx, payroll.EmployeeID); err == nil {
		resp.EmployeeName = employee.FullName()
	}
	return resp
}

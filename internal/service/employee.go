package service

import (
	"context"
	"fmt"
	"time"

	"hrms/internal/core"
	fluentdModel "hrms/internal/database/fluentd/model"
	fluentdRepo "hrms/internal/database/fluentd/repository"
	"hrms/internal/database/jsondb/model"
	storeRepo "hrms/internal/database/jsondb/repository"
	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"
	"hrms/internal/pkg/guard"
	"hrms/internal/telemetry"
)

const dateLayout = "2006-01-02"

type EmployeeService struct {
	trace        *telemetry.Trace
	employeeRepo *storeRepo.EmployeeRepository
	auditRepo    *fluentdRepo.AuditRepository
}

func NewEmployeeService(
	trace *telemetry.Trace,
	employeeRepo *storeRepo.EmployeeRepository,
	auditRepo *fluentdRepo.AuditRepository,
) *EmployeeService {
	return &EmployeeService{trace: trace, employeeRepo: employeeRepo, auditRepo: auditRepo}
}

// Create 建立員工檔案（管理者）
func (s *EmployeeService) Create(ctx context.Context, session *core.Session, createDto *dto.CreateEmployeeDto) (_ *dto.EmployeeResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Managers()); err != nil {
		return nil, err
	}
	if _, err := time.Parse(dateLayout, createDto.JoinDate); err != nil {
		return nil, cErr.BadRequestBody("join_date must be YYYY-MM-DD")
	}

	status := createDto.Status
	if status == "" {
		status = core.StatusActive
	}
	employee := &model.Employee{
		FirstName:   createDto.FirstName,
		LastName:    createDto.LastName,
		CNIC:        createDto.CNIC,
		Email:       createDto.Email,
		Contact:     createDto.Contact,
		Department:  createDto.Department,
		Designation: createDto.Designation,
		JoinDate:    createDto.JoinDate,
		Salary:      createDto.Salary,
		Status:      status,
	}
	created, err := s.employeeRepo.Create(ctx, employee)
	if err != nil {
		return nil, storeErr(err, "employee not found")
	}

	_ = s.auditRepo.LogEvent(ctx, fluentdModel.AuditEvent{
		Action:     "employee.create",
		ActorID:    session.UserID,
		ActorName:  session.Username,
		ActorRole:  string(session.Role),
		TargetType: "employee",
		TargetID:   created.EmployeeID,
		Outcome:    fluentdModel.OutcomeSuccess,
	})
	return toEmployeeDto(created, true), nil
}

// GetByID 查詢單一員工。一般員工只能查自己；
// 他人或不存在一律回 not-found，不洩漏員工是否存在。
func (s *EmployeeService) GetByID(ctx context.Context, session *core.Session, employeeID int) (_ *dto.EmployeeResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Authenticated()); err != nil {
		return nil, err
	}
	if !guard.IsManager(session) && !guard.IsSelf(session, employeeID) {
		return nil, cErr.NotFound(fmt.Sprintf("employee %d not found", employeeID))
	}

	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("employee %d not found", employeeID))
	}
	// 薪資只給管理者看；本人看自己的薪資走 payroll,不走這裡
	return toEmployeeDto(employee, guard.IsManager(session)), nil
}

// List 員工列表（管理者），支援部門與狀態篩選
func (s *EmployeeService) List(ctx context.Context, session *core.Session, department string, status core.Status) (_ []*dto.EmployeeResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Managers()); err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListAll(ctx)
	if err != nil {
		return nil, storeErr(err, "employees not found")
	}
	result := make([]*dto.EmployeeResponseDto, 0, len(employees))
	for _, employee := range employees {
		if department != "" && employee.Department != department {
			continue
		}
		if status != "" && employee.Status != status {
			continue
		}
		result = append(result, toEmployeeDto(employee, true))
	}
	return result, nil
}

// Update 更新員工檔案（管理者），未帶欄位不動
func (s *EmployeeService) Update(ctx context.Context, session *core.Session, employeeID int, updateDto *dto.UpdateEmployeeDto) (_ *dto.EmployeeResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Managers()); err != nil {
		return nil, err
	}
	if updateDto.JoinDate != nil {
		if _, err := time.Parse(dateLayout, *updateDto.JoinDate); err != nil {
			return nil, cErr.BadRequestBody("join_date must be YYYY-MM-DD")
		}
	}

	updated, err := s.employeeRepo.UpdateByID(ctx, employeeID, func(employee *model.Employee) error {
		if updateDto.FirstName != nil {
			employee.FirstName = *updateDto.FirstName
		}
		if updateDto.LastName != nil {
			employee.LastName = *updateDto.LastName
		}
		if updateDto.CNIC != nil {
			employee.CNIC = *updateDto.CNIC
		}
		if updateDto.Email != nil {
			employee.Email = *updateDto.Email
		}
		if updateDto.Contact != nil {
			employee.Contact = *updateDto.Contact
		}
		if updateDto.Department != nil {
			employee.Department = *updateDto.Department
		}
		if updateDto.Designation != nil {
			employee.Designation = *updateDto.Designation
		}
		if updateDto.JoinDate != nil {
			employee.JoinDate = *updateDto.JoinDate
		}
		if updateDto.Salary != nil {
			employee.Salary = *updateDto.Salary
		}
		if updateDto.Status != nil {
			employee.Status = *updateDto.Status
		}
		return nil
	})
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("employee %d not found", employeeID))
	}
	return toEmployeeDto(updated, true), nil
}

// Delete 刪除員工檔案（僅 Admin）。出勤、請假、薪資歷史保留不動。
func (s *EmployeeService) Delete(ctx context.Context, session *core.Session, employeeID int) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Roles(core.RoleAdmin)); err != nil {
		return err
	}
	if err := s.employeeRepo.DeleteByID(ctx, employeeID); err != nil {
		return storeErr(err, fmt.Sprintf("employee %d not found", employeeID))
	}

	_ = s.auditRepo.LogEvent(ctx, fluentdModel.AuditEvent{
		Action:     "employee.delete",
		ActorID:    session.UserID,
		ActorName:  session.Username,
		ActorRole:  string(session.Role),
		TargetType: "employee",
		TargetID:   employeeID,
		Outcome:    fluentdModel.OutcomeSuccess,
	})
	return nil
}

func toEmployeeDto(employee *model.Employee, includeSalary bool) *dto.EmployeeResponseDto {
	resp := &dto.EmployeeResponseDto{
		EmployeeID:  employee.EmployeeID,
		FirstName:   employee.FirstName,
		LastName:    employee.LastName,
		CNIC:        employee.CNIC,
		Email:       employee.Email,
		Contact:     employee.Contact,
		Department:  employee.Department,
		Designation: employee.Designation,
		JoinDate:    employee.JoinDate,
		Status:      employee.Status,
	}
	if includeSalary {
		salary := employee.Salary
		resp.Salary = &salary
	}
	return resp
}

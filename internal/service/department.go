package service

import (
	"context"
	"errors"
	"fmt"

	"hrms/internal/core"
	client "hrms/internal/database/client"
	"hrms/internal/database/jsondb/model"
	storeRepo "hrms/internal/database/jsondb/repository"
	"hrms/internal/dto"
	cErr "hrms/internal/pkg/error"
	"hrms/internal/pkg/guard"
	"hrms/internal/telemetry"
)

type DepartmentService struct {
	trace          *telemetry.Trace
	departmentRepo *storeRepo.DepartmentRepository
	employeeRepo   *storeRepo.EmployeeRepository
}

func NewDepartmentService(
	trace *telemetry.Trace,
	departmentRepo *storeRepo.DepartmentRepository,
	employeeRepo *storeRepo.EmployeeRepository,
) *DepartmentService {
	return &DepartmentService{trace: trace, departmentRepo: departmentRepo, employeeRepo: employeeRepo}
}

// Create 建立部門（管理者）；名稱不分大小寫唯一
func (s *DepartmentService) Create(ctx context.Context, session *core.Session, createDto *dto.CreateDepartmentDto) (_ *dto.DepartmentResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Managers()); err != nil {
		return nil, err
	}

	department := &model.Department{
		Name:        createDto.Name,
		Description: createDto.Description,
	}
	created, err := s.departmentRepo.Create(ctx, department)
	if err != nil {
		if errors.Is(err, client.ErrDuplicate) {
			return nil, cErr.DuplicateName(fmt.Sprintf("department %q already exists", createDto.Name))
		}
		return nil, storeErr(err, "department not found")
	}
	return s.toDepartmentDto(ctx, created), nil
}

// List 部門列表（所有登入者可見），附帶在職人數
func (s *DepartmentService) List(ctx context.Context, session *core.Session) (_ []*dto.DepartmentResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Authenticated()); err != nil {
		return nil, err
	}

	departments, err := s.departmentRepo.ListAll(ctx)
	if err != nil {
		return nil, storeErr(err, "departments not found")
	}
	result := make([]*dto.DepartmentResponseDto, 0, len(departments))
	for _, department := range departments {
		result = append(result, s.toDepartmentDto(ctx, department))
	}
	return result, nil
}

// GetByID 查詢單一部門
func (s *DepartmentService) GetByID(ctx context.Context, session *core.Session, departmentID int) (_ *dto.DepartmentResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Authenticated()); err != nil {
		return nil, err
	}
	department, err := s.departmentRepo.GetByID(ctx, departmentID)
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("department %d not found", departmentID))
	}
	return s.toDepartmentDto(ctx, department), nil
}

// Update 更新部門（管理者）
func (s *DepartmentService) Update(ctx context.Context, session *core.Session, departmentID int, updateDto *dto.UpdateDepartmentDto) (_ *dto.DepartmentResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Managers()); err != nil {
		return nil, err
	}
	updated, err := s.departmentRepo.UpdateByID(ctx, departmentID, func(department *model.Department) error {
		if updateDto.Name != nil {
			department.Name = *updateDto.Name
		}
		if updateDto.Description != nil {
			department.Description = *updateDto.Description
		}
		return nil
	})
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("department %d not found", departmentID))
	}
	return s.toDepartmentDto(ctx, updated), nil
}

// Delete 刪除部門（僅 Admin）。員工檔案上的部門名稱不連動。
func (s *DepartmentService) Delete(ctx context.Context, session *core.Session, departmentID int) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Roles(core.RoleAdmin)); err != nil {
		return err
	}
	if err := s.departmentRepo.DeleteByID(ctx, departmentID); err != nil {
		return storeErr(err, fmt.Sprintf("department %d not found", departmentID))
	}
	return nil
}

func (s *DepartmentService) toDepartmentDto(ctx context.Context, department *model.Department) *dto.DepartmentResponseDto {
	headcount := 0
	if employees, err := s.employeeRepo.ListByStatus(ctx, core.StatusActive); err == nil {
		for _, employee := range employees {
			if employee.Department == department.Name {
				headcount++
			}
		}
	}
	return &dto.DepartmentResponseDto{
		DepartmentID: department.DepartmentID,
		Name:         department.Name,
		Description:  department.Description,
		Headcount:    headcount,
	}
}

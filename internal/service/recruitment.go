package service

import (
	"context"
	"errors"
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
	"hrms/internal/pkg/secret"
	"hrms/internal/telemetry"
)

type RecruitmentService struct {
	trace         *telemetry.Trace
	jobRepo       *storeRepo.JobRepository
	applicantRepo *storeRepo.ApplicantRepository
	employeeRepo  *storeRepo.EmployeeRepository
	userRepo      *storeRepo.UserRepository
	auditRepo     *fluentdRepo.AuditRepository
}

func NewRecruitmentService(
	trace *telemetry.Trace,
	jobRepo *storeRepo.JobRepository,
	applicantRepo *storeRepo.ApplicantRepository,
	employeeRepo *storeRepo.EmployeeRepository,
	userRepo *storeRepo.UserRepository,
	auditRepo *fluentdRepo.AuditRepository,
) *RecruitmentService {
	return &RecruitmentService{
		trace:         trace,
		jobRepo:       jobRepo,
		applicantRepo: applicantRepo,
		employeeRepo:  employeeRepo,
		userRepo:      userRepo,
		auditRepo:     auditRepo,
	}
}

// CreateJob 刊登職缺（管理者）
func (s *RecruitmentService) CreateJob(ctx context.Context, session *core.Session, createDto *dto.CreateJobDto) (_ *dto.JobResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Managers()); err != nil {
		return nil, err
	}
	if createDto.ApplicationDeadline != "" {
		if _, err := time.Parse(dateLayout, createDto.ApplicationDeadline); err != nil {
			return nil, cErr.BadRequestBody("application_deadline must be YYYY-MM-DD")
		}
	}

	job := &model.Job{
		Title:               createDto.Title,
		Department:          createDto.Department,
		Description:         createDto.Description,
		Requirements:        createDto.Requirements,
		SalaryRange:         createDto.SalaryRange,
		Location:            createDto.Location,
		EmploymentType:      createDto.EmploymentType,
		ExperienceLevel:     createDto.ExperienceLevel,
		Status:              core.JobStatusActive,
		PostedDate:          time.Now().Format(dateLayout),
		ApplicationDeadline: createDto.ApplicationDeadline,
		PostedBy:            session.UserID,
	}
	created, err := s.jobRepo.Create(ctx, job)
	if err != nil {
		return nil, storeErr(err, "job not found")
	}
	return s.toJobDto(ctx, created), nil
}

// ListJobs 職缺列表。未登入與一般員工只看到開放中的職缺；
// 管理者可見全部。
func (s *RecruitmentService) ListJobs(ctx context.Context, session *core.Session) (_ []*dto.JobResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	jobs, err := s.jobRepo.ListAll(ctx)
	if err != nil {
		return nil, storeErr(err, "jobs not found")
	}
	result := make([]*dto.JobResponseDto, 0, len(jobs))
	for _, job := range jobs {
		if !guard.IsManager(session) && job.Status != core.JobStatusActive {
			continue
		}
		result = append(result, s.toJobDto(ctx, job))
	}
	return result, nil
}

// GetJob 查單一職缺；關閉的職缺僅管理者可見
func (s *RecruitmentService) GetJob(ctx context.Context, session *core.Session, jobID int) (_ *dto.JobResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("job %d not found", jobID))
	}
	if job.Status != core.JobStatusActive && !guard.IsManager(session) {
		return nil, cErr.NotFound(fmt.Sprintf("job %d not found", jobID))
	}
	return s.toJobDto(ctx, job), nil
}

// UpdateJob 更新職缺（管理者）
func (s *RecruitmentService) UpdateJob(ctx context.Context, session *core.Session, jobID int, updateDto *dto.UpdateJobDto) (_ *dto.JobResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Managers()); err != nil {
		return nil, err
	}
	updated, err := s.jobRepo.UpdateByID(ctx, jobID, func(job *model.Job) error {
		if updateDto.Title != nil {
			job.Title = *updateDto.Title
		}
		if updateDto.Department != nil {
			job.Department = *updateDto.Department
		}
		if updateDto.Description != nil {
			job.Description = *updateDto.Description
		}
		if updateDto.Requirements != nil {
			job.Requirements = *updateDto.Requirements
		}
		if updateDto.SalaryRange != nil {
			job.SalaryRange = *updateDto.SalaryRange
		}
		if updateDto.Location != nil {
			job.Location = *updateDto.Location
		}
		if updateDto.EmploymentType != nil {
			job.EmploymentType = *updateDto.EmploymentType
		}
		if updateDto.ExperienceLevel != nil {
			job.ExperienceLevel = *updateDto.ExperienceLevel
		}
		if updateDto.ApplicationDeadline != nil {
			job.ApplicationDeadline = *updateDto.ApplicationDeadline
		}
		if updateDto.Status != nil {
			job.Status = *updateDto.Status
		}
		return nil
	})
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("job %d not found", jobID))
	}
	return s.toJobDto(ctx, updated), nil
}

// DeleteJob 刪除職缺（僅 Admin）；已投遞的履歷保留
func (s *RecruitmentService) DeleteJob(ctx context.Context, session *core.Session, jobID int) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Roles(core.RoleAdmin)); err != nil {
		return err
	}
	if err := s.jobRepo.DeleteByID(ctx, jobID); err != nil {
		return storeErr(err, fmt.Sprintf("job %d not found", jobID))
	}
	return nil
}

// ApplyJob 投遞履歷（公開端點）。職缺需開放且未過截止日。
func (s *RecruitmentService) ApplyJob(ctx context.Context, jobID int, applyDto *dto.ApplyJobDto) (_ *dto.ApplicantResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("job %d not found", jobID))
	}
	if job.Status != core.JobStatusActive {
		return nil, cErr.NotFound(fmt.Sprintf("job %d not found", jobID))
	}
	today := time.Now().Format(dateLayout)
	if job.ApplicationDeadline != "" && today > job.ApplicationDeadline {
		return nil, cErr.BadRequestBody("application deadline has passed")
	}

	applicant := &model.Applicant{
		JobID:           jobID,
		FirstName:       applyDto.FirstName,
		LastName:        applyDto.LastName,
		Email:           applyDto.Email,
		Contact:         applyDto.Contact,
		CNIC:            applyDto.CNIC,
		ExperienceYears: applyDto.ExperienceYears,
		CurrentCompany:  applyDto.CurrentCompany,
		ExpectedSalary:  applyDto.ExpectedSalary,
		CoverLetter:     applyDto.CoverLetter,
		ApplicationDate: today,
		Status:          core.ApplicantStatusApplied,
	}
	created, err := s.applicantRepo.Create(ctx, applicant)
	if err != nil {
		return nil, storeErr(err, "applicant not found")
	}
	return s.toApplicantDto(ctx, created), nil
}

// ListApplicants 應徵者列表（管理者），支援職缺與狀態篩選
func (s *RecruitmentService) ListApplicants(ctx context.Context, session *core.Session, jobID int, status core.ApplicantStatus) (_ []*dto.ApplicantResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Managers()); err != nil {
		return nil, err
	}
	applicants, err := s.applicantRepo.ListAll(ctx)
	if err != nil {
		return nil, storeErr(err, "applicants not found")
	}
	result := make([]*dto.ApplicantResponseDto, 0, len(applicants))
	for _, applicant := range applicants {
		if jobID != 0 && applicant.JobID != jobID {
			continue
		}
		if status != "" && applicant.Status != status {
			continue
		}
		result = append(result, s.toApplicantDto(ctx, applicant))
	}
	return result, nil
}

// GetApplicant 查單一應徵者（管理者）
func (s *RecruitmentService) GetApplicant(ctx context.Context, session *core.Session, applicantID int) (_ *dto.ApplicantResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Managers()); err != nil {
		return nil, err
	}
	applicant, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("applicant %d not found", applicantID))
	}
	return s.toApplicantDto(ctx, applicant), nil
}

// UpdateApplicantStatus 推進招募流程（管理者）
func (s *RecruitmentService) UpdateApplicantStatus(ctx context.Context, session *core.Session, applicantID int, updateDto *dto.UpdateApplicantStatusDto) (_ *dto.ApplicantResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Managers()); err != nil {
		return nil, err
	}
	today := time.Now().Format(dateLayout)
	updated, err := s.applicantRepo.UpdateByID(ctx, applicantID, func(applicant *model.Applicant) error {
		applicant.Status = updateDto.Status
		applicant.ReviewedBy = &session.UserID
		applicant.ReviewDate = &today
		if updateDto.InterviewDate != nil {
			applicant.InterviewDate = updateDto.InterviewDate
		}
		if updateDto.Notes != nil {
			applicant.Notes = updateDto.Notes
		}
		return nil
	})
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("applicant %d not found", applicantID))
	}
	return s.toApplicantDto(ctx, updated), nil
}

// DeleteApplicant 刪除應徵資料（僅 Admin）
func (s *RecruitmentService) DeleteApplicant(ctx context.Context, session *core.Session, applicantID int) (returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Roles(core.RoleAdmin)); err != nil {
		return err
	}
	if err := s.applicantRepo.DeleteByID(ctx, applicantID); err != nil {
		return storeErr(err, fmt.Sprintf("applicant %d not found", applicantID))
	}
	return nil
}

// Onboard 錄取建檔（管理者）：由應徵資料建立員工檔案，
// 選擇性開通綁定的系統帳號。帳號開通失敗不回滾員工檔案，
// 改以 warning 回報，避免半途失敗留下孤兒資料又不可見。
func (s *RecruitmentService) Onboard(ctx context.Context, session *core.Session, applicantID int, onboardDto *dto.OnboardApplicantDto) (_ *dto.OnboardApplicantResponseDto, returnedError error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer func() { end(returnedError) }()

	if err := guard.Authorize(session, guard.Managers()); err != nil {
		return nil, err
	}
	if _, err := time.Parse(dateLayout, onboardDto.JoinDate); err != nil {
		return nil, cErr.BadRequestBody("join_date must be YYYY-MM-DD")
	}

	// 帳號參數在動到任何資料前先檢查，避免建了員工才失敗
	role := onboardDto.Role
	if onboardDto.CreateUserAccount {
		if role == "" {
			role = core.RoleEmployee
		}
		if !core.IsValidRole(role) {
			return nil, cErr.BadRequestBody(fmt.Sprintf("unknown role %q", role))
		}
	}

	applicant, err := s.applicantRepo.GetByID(ctx, applicantID)
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("applicant %d not found", applicantID))
	}
	if applicant.Status != core.ApplicantStatusHired {
		return nil, cErr.BadRequestBody(fmt.Sprintf("applicant %d must be Hired before onboarding, current status is %s",
			applicantID, applicant.Status))
	}
	if applicant.OnboardedEmployeeID != nil {
		return nil, cErr.AlreadyDecided(fmt.Sprintf("applicant %d already onboarded as employee %d",
			applicantID, *applicant.OnboardedEmployeeID))
	}

	job, jobErr := s.jobRepo.GetByID(ctx, applicant.JobID)
	department := onboardDto.Department
	designation := onboardDto.Designation
	if jobErr == nil {
		if department == "" {
			department = job.Department
		}
		if designation == "" {
			designation = job.Title
		}
	}

	employee := &model.Employee{
		FirstName:   applicant.FirstName,
		LastName:    applicant.LastName,
		CNIC:        applicant.CNIC,
		Email:       applicant.Email,
		Contact:     applicant.Contact,
		Department:  department,
		Designation: designation,
		JoinDate:    onboardDto.JoinDate,
		Salary:      onboardDto.Salary,
		Status:      core.StatusActive,
	}
	created, err := s.employeeRepo.Create(ctx, employee)
	if err != nil {
		return nil, storeErr(err, "employee not found")
	}

	response := &dto.OnboardApplicantResponseDto{
		Employee: toEmployeeDto(created, true),
	}

	// 第二筆寫入：回填應徵者，擋下重複 onboard。
	// 員工已建檔，這裡失敗只能以 warning 回報部分完成，讓呼叫端補救。
	employeeID := created.EmployeeID
	note := fmt.Sprintf("Hired as %s in %s department. Employee ID: %d",
		created.Designation, created.Department, employeeID)
	if _, err := s.applicantRepo.UpdateByID(ctx, applicantID, func(record *model.Applicant) error {
		record.OnboardedEmployeeID = &employeeID
		record.Notes = &note
		return nil
	}); err != nil {
		response.Warning = fmt.Sprintf("employee %d created, but applicant record could not be updated", employeeID)
		return response, nil
	}

	if onboardDto.CreateUserAccount {
		username := onboardDto.Username
		if username == "" {
			username = applicant.Email
		}

		tempPassword, err := secret.GenerateTempPassword(12)
		if err != nil {
			response.Warning = "employee created, but account provisioning failed"
			return response, nil
		}
		hashed, err := secret.HashPassword(tempPassword)
		if err != nil {
			response.Warning = "employee created, but account provisioning failed"
			return response, nil
		}

		user := &model.User{
			Username:     username,
			PasswordHash: hashed,
			Role:         role,
			EmployeeID:   &employeeID,
			Status:       core.StatusActive,
		}
		if _, err := s.userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, client.ErrDuplicate) {
				response.Warning = fmt.Sprintf("employee created, but username %q is already taken", username)
			} else {
				response.Warning = "employee created, but account provisioning failed"
			}
			return response, nil
		}
		response.Username = username
		response.TempPassword = tempPassword
	}

	_ = s.auditRepo.LogEvent(ctx, fluentdModel.AuditEvent{
		Action:     "recruitment.onboard",
		ActorID:    session.UserID,
		ActorName:  session.Username,
		ActorRole:  string(session.Role),
		TargetType: "employee",
		TargetID:   created.EmployeeID,
		Outcome:    fluentdModel.OutcomeSuccess,
		Detail:     fmt.Sprintf("applicant=%d", applicantID),
	})
	return response, nil
}

func (s *RecruitmentService) toJobDto(ctx context.Context, job *model.Job) *dto.JobResponseDto {
	applicantCount := 0
	if applicants, err := s.applicantRepo.ListByJob(ctx, job.JobID); err == nil {
		applicantCount = len(applicants)
	}
	return &dto.JobResponseDto{
		JobID:               job.JobID,
		Title:               job.Title,
		Department:          job.Department,
		Description:         job.Description,
		Requirements:        job.Requirements,
		SalaryRange:         job.SalaryRange,
		Location:            job.Location,
		EmploymentType:      job.EmploymentType,
		ExperienceLevel:     job.ExperienceLevel,
		Status:              job.Status,
		PostedDate:          job.PostedDate,
		ApplicationDeadline: job.ApplicationDeadline,
		ApplicantCount:      applicantCount,
	}
}

func (s *RecruitmentService) toApplicantDto(ctx context.Context, applicant *model.Applicant) *dto.ApplicantResponseDto {
	resp := &dto.ApplicantResponseDto{
		ApplicantID:     applicant.ApplicantID,
		JobID:           applicant.JobID,
		FirstName:       applicant.FirstName,
		LastName:        applicant.LastName,
		Email:           applicant.Email,
		Contact:         applicant.Contact,
		CNIC:            applicant.CNIC,
		ExperienceYears: applicant.ExperienceYears,
		CurrentCompany:  applicant.CurrentCompany,
		ExpectedSalary:  applicant.ExpectedSalary,
		CoverLetter:     applicant.CoverLetter,
		ApplicationDate: applicant.ApplicationDate,
		Status:          applicant.Status,
		ReviewedBy:      applicant.ReviewedBy,
		ReviewDate:      applicant.ReviewDate,
		InterviewDate:   applicant.InterviewDate,
		Notes:           applicant.Notes,

		OnboardedEmployeeID: applicant.OnboardedEmployeeID,
	}
	if job, err := s.jobRepo.GetByID(ctx, applicant.JobID); err == nil {
		resp.JobTitle = job.Title
	}
	return resp
}

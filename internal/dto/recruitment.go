package dto

import (
	"hrms/internal/core"
	"hrms/internal/database/jsondb/model"
)

// 建立職缺
type CreateJobDto struct {
	Title               string `json:"title" binding:"required"`
	Department          string `json:"department" binding:"required"`
	Description         string `json:"description,omitempty"`
	Requirements        string `json:"requirements,omitempty"`
	SalaryRange         string `json:"salary_range,omitempty"`
	Location            string `json:"location,omitempty"`
	EmploymentType      string `json:"employment_type,omitempty"`
	ExperienceLevel     string `json:"experience_level,omitempty"`
	ApplicationDeadline string `json:"application_deadline,omitempty"` // YYYY-MM-DD
}

// 更新職缺
type UpdateJobDto struct {
	Title               *string         `json:"title,omitempty"`
	Department          *string         `json:"department,omitempty"`
	Description         *string         `json:"description,omitempty"`
	Requirements        *string         `json:"requirements,omitempty"`
	SalaryRange         *string         `json:"salary_range,omitempty"`
	Location            *string         `json:"location,omitempty"`
	EmploymentType      *string         `json:"employment_type,omitempty"`
	ExperienceLevel     *string         `json:"experience_level,omitempty"`
	ApplicationDeadline *string         `json:"application_deadline,omitempty"`
	Status              *core.JobStatus `json:"status,omitempty"`
}

type JobResponseDto struct {
	JobID               int            `json:"job_id"`
	Title               string         `json:"title"`
	Department          string         `json:"department"`
	Description         string         `json:"description,omitempty"`
	Requirements        string         `json:"requirements,omitempty"`
	SalaryRange         string         `json:"salary_range,omitempty"`
	Location            string         `json:"location,omitempty"`
	EmploymentType      string         `json:"employment_type,omitempty"`
	ExperienceLevel     string         `json:"experience_level,omitempty"`
	Status              core.JobStatus `json:"status"`
	PostedDate          string         `json:"posted_date"`
	ApplicationDeadline string         `json:"application_deadline,omitempty"`
	ApplicantCount      int            `json:"applicant_count"`
}

// 投遞履歷（公開端點，不需登入）
type ApplyJobDto struct {
	FirstName       string      `json:"first_name" binding:"required"`
	LastName        string      `json:"last_name" binding:"required"`
	Email           string      `json:"email" binding:"required,email"`
	Contact         string      `json:"contact,omitempty"`
	CNIC            string      `json:"cnic,omitempty"`
	ExperienceYears int         `json:"experience_years,omitempty"`
	CurrentCompany  string      `json:"current_company,omitempty"`
	ExpectedSalary  model.Money `json:"expected_salary,omitempty"`
	CoverLetter     string      `json:"cover_letter,omitempty"`
}

// 更新應徵者狀態（篩選／面試／錄取流程）
type UpdateApplicantStatusDto struct {
	Status        core.ApplicantStatus `json:"status" binding:"required"`
	InterviewDate *string              `json:"interview_date,omitempty"`
	Notes         *string              `json:"notes,omitempty"`
}

type ApplicantResponseDto struct {
	ApplicantID     int                  `json:"applicant_id"`
	JobID           int                  `json:"job_id"`
	JobTitle        string               `json:"job_title,omitempty"`
	FirstName       string               `json:"first_name"`
	LastName        string               `json:"last_name"`
	Email           string               `json:"email"`
	Contact         string               `json:"contact,omitempty"`
	CNIC            string               `json:"cnic,omitempty"`
	ExperienceYears int                  `json:"experience_years,omitempty"`
	CurrentCompany  string               `json:"current_company,omitempty"`
	ExpectedSalary  model.Money          `json:"expected_salary,omitempty"`
	CoverLetter     string               `json:"cover_letter,omitempty"`
	ApplicationDate string               `json:"application_date"`
	Status          core.ApplicantStatus `json:"status"`
	ReviewedBy      *int                 `json:"reviewed_by,omitempty"`
	ReviewDate      *string              `json:"review_date,omitempty"`
	InterviewDate   *string              `json:"interview_date,omitempty"`
	Notes           *string              `json:"notes,omitempty"`

	OnboardedEmployeeID *int `json:"onboarded_employee_id,omitempty"`
}

// 錄取後建檔：由應徵資料建立員工，選擇性開通系統帳號
type OnboardApplicantDto struct {
	Department        string      `json:"department,omitempty"` // 未帶時沿用職缺部門
	Designation       string      `json:"designation,omitempty"`
	JoinDate          string      `json:"join_date" binding:"required"` // YYYY-MM-DD
	Salary            model.Money `json:"salary" binding:"required"`
	CreateUserAccount bool        `json:"create_user_account,omitempty"`
	Username          string      `json:"username,omitempty"`
	Role              core.Role   `json:"role,omitempty"`
}

type OnboardApplicantResponseDto struct {
	Employee     *EmployeeResponseDto `json:"employee"`
	Username     string               `json:"username,omitempty"`
	TempPassword string               `json:"temp_password,omitempty"`
	Warning      string               `json:"warning,omitempty"`
}

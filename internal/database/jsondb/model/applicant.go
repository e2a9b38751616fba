package model

import "hrms/internal/core"

type Applicant struct {
	ApplicantID     int                  `json:"applicant_id"`
	JobID           int                  `json:"job_id"`
	FirstName       string               `json:"first_name"`
	LastName        string               `json:"last_name"`
	Email           string               `json:"email"`
	Contact         string               `json:"contact"`
	CNIC            string               `json:"cnic"`
	ExperienceYears int                  `json:"experience_years"`
	CurrentCompany  string               `json:"current_company,omitempty"`
	ExpectedSalary  Money                `json:"expected_salary"`
	CoverLetter     string               `json:"cover_letter,omitempty"`
	ApplicationDate string               `json:"application_date"` // YYYY-MM-DD
	Status          core.ApplicantStatus `json:"status"`
	ReviewedBy      *int                 `json:"reviewed_by"`
	ReviewDate      *string              `json:"review_date"`
	InterviewDate   *string              `json:"interview_date"`
	Notes           *string              `json:"notes"`

	// 錄取建檔後回填的員工編號；有值代表已建檔，不能重複 onboard
	OnboardedEmployeeID *int `json:"onboarded_employee_id,omitempty"`
}

func (a *Applicant) GetID() int   { return a.ApplicantID }
func (a *Applicant) SetID(id int) { a.ApplicantID = id }

func (a *Applicant) FullName() string {
	return a.FirstName + " " + a.LastName
}

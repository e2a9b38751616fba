package model

import "hrms/internal/core"

type Job struct {
	JobID               int            `json:"job_id"`
	Title               string         `json:"title"`
	Department          string         `json:"department"`
	Description         string         `json:"description"`
	Requirements        string         `json:"requirements"`
	SalaryRange         string         `json:"salary_range"`
	Location            string         `json:"location"`
	EmploymentType      string         `json:"employment_type"`
	ExperienceLevel     string         `json:"experience_level"`
	Status              core.JobStatus `json:"status"`
	PostedDate          string         `json:"posted_date"` // YYYY-MM-DD
	ApplicationDeadline string         `json:"application_deadline,omitempty"`
	PostedBy            int            `json:"posted_by"` // user_id
}

func (j *Job) GetID() int   { return j.JobID }
func (j *Job) SetID(id int) { j.JobID = id }

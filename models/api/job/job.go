package jobapimodels

import (
	"fmt"
	"jobboard-backend/models"
	dbmodels "jobboard-backend/models/db"
)

type JobData struct {
	JobName         string `json:"jobName"`
	JobType         string `json:"jobType"`
	JobDescription  string `json:"jobDescription"`
	CandidateNumber int    `json:"candidateNumber"`
	MinSalary       int    `json:"minSalary"`
	MaxSalary       int    `json:"maxSalary"`
	dbmodels.FormRequirements
}

func (j JobData) Validate() error {
	if j.JobName == "" {
		return models.NewValidationError("jobName is required")
	}
	if j.JobType == "" {
		return models.NewValidationError("jobType is required")
	}
	if j.JobDescription == "" {
		return models.NewValidationError("jobDescription is required")
	}
	if j.CandidateNumber <= 0 {
		return models.NewValidationError("candidateNumber is required")
	}
	if err := validateSalary(j.MinSalary, j.MaxSalary); err != nil {
		return err
	}
	return validateRequirements(j.FormRequirements)
}

// JobUpdate - partial update, nil fields stay untouched
type JobUpdate struct {
	JobName          *string                    `json:"jobName"`
	JobType          *string                    `json:"jobType"`
	JobDescription   *string                    `json:"jobDescription"`
	CandidateNumber  *int                       `json:"candidateNumber"`
	MinSalary        *int                       `json:"minSalary"`
	MaxSalary        *int                       `json:"maxSalary"`
	Status           *models.JobStatus          `json:"status"`
	FormRequirements *dbmodels.FormRequirements `json:"formRequirements"`
}

func (j JobUpdate) Validate() error {
	if j.JobName != nil && *j.JobName == "" {
		return models.NewValidationError("jobName can not be empty")
	}
	if j.CandidateNumber != nil && *j.CandidateNumber <= 0 {
		return models.NewValidationError("candidateNumber must be positive")
	}
	if j.Status != nil && !j.Status.IsValid() {
		return models.NewValidationError("Invalid status. Must be 'active', 'inactive', or 'draft'")
	}
	if j.MinSalary != nil && j.MaxSalary != nil {
		if err := validateSalary(*j.MinSalary, *j.MaxSalary); err != nil {
			return err
		}
	}
	if j.FormRequirements != nil {
		return validateRequirements(*j.FormRequirements)
	}
	return nil
}

type JobFilter struct {
	Status models.JobStatus `query:"status"`
}

func (f JobFilter) Validate() error {
	if f.Status != "" && !f.Status.IsValid() {
		return models.NewValidationError("Invalid status. Must be 'active', 'inactive', or 'draft'")
	}
	return nil
}

type FormRequirementsView struct {
	Title  string                    `json:"title"`
	Fields dbmodels.FormRequirements `json:"fields"`
}

func validateSalary(min, max int) error {
	if min < 0 || max < 0 {
		return models.NewValidationError("salary can not be negative")
	}
	if min != 0 && max != 0 && min > max {
		return models.NewValidationError("minSalary can not exceed maxSalary")
	}
	return nil
}

func validateRequirements(req dbmodels.FormRequirements) error {
	for _, r := range []models.FieldRequirement{req.FullNameReq, req.PhotoProfileReq, req.GenderReq,
		req.DomicileReq, req.EmailReq, req.PhoneNumberReq, req.LinkedinReq, req.DateOfBirthReq} {
		if r != "" && !r.IsValid() {
			return models.NewValidationError(fmt.Sprintf("invalid field requirement: %v", r))
		}
	}
	return nil
}

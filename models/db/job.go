package dbmodels

import (
	"jobboard-backend/models"
)

type Job struct {
	BaseModel
	JobName         string           `gorm:"type:varchar(255)" json:"jobName"`
	JobType         string           `gorm:"type:varchar(100)" json:"jobType"`
	JobDescription  string           `json:"jobDescription"`
	CandidateNumber int              `json:"candidateNumber"`
	Salary
	Status models.JobStatus `gorm:"type:varchar(20);index" json:"status"`
	FormRequirements
}

type Salary struct {
	MinSalary int `json:"minSalary"`
	MaxSalary int `json:"maxSalary"`
}

// FormRequirements - which application form fields the job asks for
type FormRequirements struct {
	FullNameReq     models.FieldRequirement `gorm:"type:varchar(20)" json:"fullNameReq"`
	PhotoProfileReq models.FieldRequirement `gorm:"type:varchar(20)" json:"photoProfileReq"`
	GenderReq       models.FieldRequirement `gorm:"type:varchar(20)" json:"genderReq"`
	DomicileReq     models.FieldRequirement `gorm:"type:varchar(20)" json:"domicileReq"`
	EmailReq        models.FieldRequirement `gorm:"type:varchar(20)" json:"emailReq"`
	PhoneNumberReq  models.FieldRequirement `gorm:"type:varchar(20)" json:"phoneNumberReq"`
	LinkedinReq     models.FieldRequirement `gorm:"type:varchar(20)" json:"linkedinReq"`
	DateOfBirthReq  models.FieldRequirement `gorm:"type:varchar(20)" json:"dateOfBirthReq"`
}

// WithDefaults fills empty requirements as mandatory
func (f FormRequirements) WithDefaults() FormRequirements {
	return FormRequirements{
		FullNameReq:     f.FullNameReq.OrDefault(),
		PhotoProfileReq: f.PhotoProfileReq.OrDefault(),
		GenderReq:       f.GenderReq.OrDefault(),
		DomicileReq:     f.DomicileReq.OrDefault(),
		EmailReq:        f.EmailReq.OrDefault(),
		PhoneNumberReq:  f.PhoneNumberReq.OrDefault(),
		LinkedinReq:     f.LinkedinReq.OrDefault(),
		DateOfBirthReq:  f.DateOfBirthReq.OrDefault(),
	}
}

func (j Job) IsOpen() bool {
	return j.Status == models.JobStatusActive
}

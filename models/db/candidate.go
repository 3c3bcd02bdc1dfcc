package dbmodels

import (
	"jobboard-backend/models"
	"time"
)

// Candidate - one application to one job.
// JSON tags define the flat file layout, column tags the postgres table.
type Candidate struct {
	ID           string                 `gorm:"primaryKey;type:varchar(36)" json:"id"`
	JobID        string                 `gorm:"type:varchar(36);index" json:"jobId"`
	Order        int                    `gorm:"column:candidate_order" json:"order"`
	Status       models.CandidateStatus `gorm:"type:varchar(20)" json:"status"`
	AppliedAt    time.Time              `json:"appliedAt"`
	FullName     string                 `gorm:"type:varchar(255)" json:"fullName,omitempty"`
	Email        string                 `gorm:"type:varchar(255)" json:"email,omitempty"`
	PhoneNumber  string                 `gorm:"type:varchar(50)" json:"phoneNumber,omitempty"`
	Gender       string                 `gorm:"type:varchar(50)" json:"gender,omitempty"`
	Domicile     string                 `gorm:"type:varchar(255)" json:"domicile,omitempty"`
	Linkedin     string                 `gorm:"type:varchar(255)" json:"linkedin,omitempty"`
	DateOfBirth  string                 `gorm:"type:varchar(20)" json:"dateOfBirth,omitempty"`
	PhotoProfile string                 `json:"photoProfile,omitempty"`
}

func (c Candidate) IsOfJob(jobID string) bool {
	return c.JobID == jobID
}

package candidateapimodels

import (
	"jobboard-backend/models"
	dbmodels "jobboard-backend/models/db"
	"strings"
)

type OrderItem struct {
	ID    string `json:"id"`    // candidate ID
	Order int    `json:"order"` // new 1-based position
}

type ReorderRequest struct {
	NewOrder []OrderItem `json:"newOrder"`
}

type StatusRequest struct {
	CandidateIDs []string               `json:"candidateIds"`
	Status       models.CandidateStatus `json:"status"`
}

type DeleteRequest struct {
	CandidateIDs []string `json:"candidateIds"`
}

// ManageRequest - single endpoint payload, the action selects the operation
type ManageRequest struct {
	Action       models.ManageAction    `json:"action"`
	JobID        string                 `json:"jobId"`
	CandidateIDs []string               `json:"candidateIds"`
	Status       models.CandidateStatus `json:"status"`
	NewOrder     []OrderItem            `json:"newOrder"`
}

func (r ManageRequest) Validate() error {
	if r.Action == "" || r.JobID == "" {
		return models.NewValidationError("Action and jobId are required")
	}
	switch r.Action {
	case models.ManageActionUpdateOrder, models.ManageActionUpdateStatus, models.ManageActionDelete:
		return nil
	}
	return models.NewValidationError("Invalid action. Must be 'updateOrder', 'updateStatus', or 'delete'")
}

type ApplyData struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	Gender       string `json:"gender"`
	Domicile     string `json:"domicile"`
	Linkedin     string `json:"linkedin"`
	DateOfBirth  string `json:"dateOfBirth"`
	PhotoProfile string `json:"photoProfile"`
}

// Validate checks the form against the job requirements
func (a ApplyData) Validate(req dbmodels.FormRequirements) error {
	req = req.WithDefaults()
	fields := []struct {
		name  string
		value string
		req   models.FieldRequirement
	}{
		{"fullName", a.FullName, req.FullNameReq},
		{"photoProfile", a.PhotoProfile, req.PhotoProfileReq},
		{"gender", a.Gender, req.GenderReq},
		{"domicile", a.Domicile, req.DomicileReq},
		{"email", a.Email, req.EmailReq},
		{"phoneNumber", a.PhoneNumber, req.PhoneNumberReq},
		{"linkedin", a.Linkedin, req.LinkedinReq},
		{"dateOfBirth", a.DateOfBirth, req.DateOfBirthReq},
	}
	for _, field := range fields {
		if field.req == models.FieldMandatory && strings.TrimSpace(field.value) == "" {
			return models.NewValidationError(field.name + " is required")
		}
	}
	if a.Email != "" && !strings.Contains(a.Email, "@") {
		return models.NewValidationError("email is invalid")
	}
	return nil
}

type CandidateList struct {
	JobName    string               `json:"jobName"`
	Candidates []dbmodels.Candidate `json:"candidates"`
}

// MutationResult - ids of the request that were applied and ids that matched
// no candidate of the job (unknown or belonging to another job)
type MutationResult struct {
	AppliedIDs []string `json:"appliedIds"`
	SkippedIDs []string `json:"skippedIds"`
}

type ReorderResult struct {
	MutationResult
	Dense bool `json:"dense"` // job orders form 1..N after the update
}

type StatusResult struct {
	MutationResult
	UpdatedCount int `json:"updatedCount"`
}

type DeleteResult struct {
	MutationResult
	DeletedCount int `json:"deletedCount"`
}

type PhotoUploadResult struct {
	URL string `json:"url"`
}

package notify

import (
	"fmt"
	"jobboard-backend/lib/smtp"
	"jobboard-backend/models"
	dbmodels "jobboard-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	CandidateStatusChanged(jobName string, list []dbmodels.Candidate, status models.CandidateStatus)
}

var Instance Provider

func NewHandler(sender smtp.Provider, from string) {
	Instance = impl{
		sender: sender,
		from:   from,
	}
}

type impl struct {
	sender smtp.Provider
	from   string
}

// CandidateStatusChanged emails every candidate with an address, errors are only logged
func (i impl) CandidateStatusChanged(jobName string, list []dbmodels.Candidate, status models.CandidateStatus) {
	if i.sender == nil || !i.sender.IsConfigured() {
		log.WithField("status", status).Warn("status notification skipped, smtp is not configured")
		return
	}
	subject, ok := statusSubject(status)
	if !ok {
		return
	}
	for _, rec := range list {
		if rec.Email == "" {
			continue
		}
		err := i.sender.SendEMail(i.from, rec.Email, statusMessage(jobName, rec, status), subject)
		if err != nil {
			log.
				WithError(err).
				WithField("job_id", rec.JobID).
				WithField("candidate_id", rec.ID).
				Error("failed to notify candidate about status change")
		}
	}
}

func statusSubject(status models.CandidateStatus) (string, bool) {
	switch status {
	case models.CandidateStatusApproved:
		return "your application moved forward", true
	case models.CandidateStatusDeclined:
		return "update on your application", true
	}
	return "", false
}

func statusMessage(jobName string, rec dbmodels.Candidate, status models.CandidateStatus) string {
	name := rec.FullName
	if name == "" {
		name = "applicant"
	}
	if status == models.CandidateStatusApproved {
		return fmt.Sprintf("Dear %s,\r\n\r\nyour application for %q has been approved. The recruiter will contact you with the next steps.", name, jobName)
	}
	return fmt.Sprintf("Dear %s,\r\n\r\nthank you for applying for %q. Unfortunately we will not move forward with your application.", name, jobName)
}

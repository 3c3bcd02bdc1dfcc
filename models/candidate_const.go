package models

type CandidateStatus string

const (
	CandidateStatusPending  CandidateStatus = "pending"
	CandidateStatusApproved CandidateStatus = "approved"
	CandidateStatusDeclined CandidateStatus = "declined"
)

func (s CandidateStatus) IsValid() bool {
	switch s {
	case CandidateStatusPending, CandidateStatusApproved, CandidateStatusDeclined:
		return true
	}
	return false
}

// IsFinal reports statuses the applicant gets notified about
func (s CandidateStatus) IsFinal() bool {
	return s == CandidateStatusApproved || s == CandidateStatusDeclined
}

type ManageAction string

const (
	ManageActionUpdateOrder  ManageAction = "updateOrder"
	ManageActionUpdateStatus ManageAction = "updateStatus"
	ManageActionDelete       ManageAction = "delete"
)

type ExportFormat string

const (
	ExportFormatXlsx ExportFormat = "xlsx"
	ExportFormatPdf  ExportFormat = "pdf"
)

func (f ExportFormat) ContentType() string {
	if f == ExportFormatPdf {
		return "application/pdf"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

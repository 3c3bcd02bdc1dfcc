package models

type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusInactive JobStatus = "inactive"
	JobStatusDraft    JobStatus = "draft"
)

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusActive, JobStatusInactive, JobStatusDraft:
		return true
	}
	return false
}

// FieldRequirement - requirement for an application form field
type FieldRequirement string

const (
	FieldMandatory FieldRequirement = "mandatory"
	FieldOptional  FieldRequirement = "optional"
	FieldOff       FieldRequirement = "off"
)

func (r FieldRequirement) IsValid() bool {
	switch r {
	case FieldMandatory, FieldOptional, FieldOff:
		return true
	}
	return false
}

// OrDefault treats an empty requirement as mandatory
func (r FieldRequirement) OrDefault() FieldRequirement {
	if r == "" {
		return FieldMandatory
	}
	return r
}

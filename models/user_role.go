package models

type UserRole string

const (
	UserRoleRecruiter UserRole = "recruiter"
	UserRoleApplicant UserRole = "applicant"
)

func (r UserRole) IsRecruiter() bool {
	return r == UserRoleRecruiter
}

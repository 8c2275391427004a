package domain

// UserRole роль пользователя платформы
type UserRole string

const (
	RoleCompany   UserRole = "company"
	RoleCandidate UserRole = "candidate"
)

// IsValid returns true for known roles
func (r UserRole) IsValid() bool {
	return r == RoleCompany || r == RoleCandidate
}

// Company represents a company profile owned by a user
type Company struct {
	ID     int64
	UserID int64
	Name   string
}

// CandidateProfile represents a candidate profile owned by a user
type CandidateProfile struct {
	ID     int64
	UserID int64
}

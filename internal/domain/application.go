package domain

// ApplicationStatus статус отклика (таблица applications платформы)
type ApplicationStatus string

const (
	ApplicationStatusSubmitted ApplicationStatus = "Submitted"
	ApplicationStatusInterview ApplicationStatus = "Interview"
)

// Application represents a candidate's application to a job posting
type Application struct {
	ID                 int64
	JobPostingID       int64
	CompanyID          int64 // через job_postings
	CandidateProfileID int64
	CandidateUserID    int64
	CompanyUserID      int64
	Status             ApplicationStatus
}

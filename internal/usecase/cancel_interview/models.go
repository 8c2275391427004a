package cancel_interview

import "time"

// Request модель запроса на отмену собеседования
type Request struct {
	UserID      int64  // ID пользователя (компания или кандидат)
	InterviewID int64  // ID собеседования
	Reason      string // Причина отмены
}

// Response снимок отменённого собеседования
type Response struct {
	InterviewID        int64
	ApplicationID      int64
	CompanyID          int64
	CompanyUserID      int64
	CandidateProfileID int64
	CandidateUserID    int64
	ScheduledAt        time.Time
	EndsAt             time.Time
	Reason             string
	CancelledBy        string // company | candidate
	CancelledAt        time.Time
}

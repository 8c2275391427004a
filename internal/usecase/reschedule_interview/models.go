package reschedule_interview

import "time"

// Request модель запроса на перенос собеседования
type Request struct {
	UserID      int64     // ID пользователя (компания или кандидат)
	InterviewID int64     // ID переносимого собеседования
	NewStart    time.Time // Начало нового слота
	Reason      *string   // Причина переноса (опционально)
}

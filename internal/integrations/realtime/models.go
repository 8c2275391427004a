package realtime

import "time"

// Notification уведомление для одного пользователя
type Notification struct {
	UserID      int64      `json:"userId"`
	Type        string     `json:"type"`
	CompanyID   int64      `json:"companyId"`
	InterviewID int64      `json:"interviewId,omitempty"`
	Status      string     `json:"status,omitempty"`
	SlotStart   *time.Time `json:"slotStart,omitempty"`
	SlotEnd     *time.Time `json:"slotEnd,omitempty"`
	Reason      *string    `json:"reason,omitempty"`
	OccurredAt  time.Time  `json:"occurredAt"`
}

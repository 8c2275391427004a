package notifier

import (
	"time"

	"github.com/Am1ne12/JobConnect/internal/domain"
)

// eventMessage значение kafka сообщения
type eventMessage struct {
	Type             string     `json:"type"`
	CompanyID        int64      `json:"companyId"`
	InterviewID      int64      `json:"interviewId,omitempty"`
	RecipientUserIDs []int64    `json:"recipientUserIds,omitempty"`
	Status           string     `json:"status,omitempty"`
	SlotStart        *time.Time `json:"slotStart,omitempty"`
	SlotEnd          *time.Time `json:"slotEnd,omitempty"`
	Reason           *string    `json:"reason,omitempty"`
	OccurredAt       time.Time  `json:"occurredAt"`
}

func fromDomainEvent(event domain.Event) eventMessage {
	return eventMessage{
		Type:             string(event.Type),
		CompanyID:        event.CompanyID,
		InterviewID:      event.InterviewID,
		RecipientUserIDs: event.RecipientUserIDs,
		Status:           string(event.Status),
		SlotStart:        event.SlotStart,
		SlotEnd:          event.SlotEnd,
		Reason:           event.Reason,
		OccurredAt:       event.OccurredAt,
	}
}

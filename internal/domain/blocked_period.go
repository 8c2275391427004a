package domain

import "time"

// BlockedPeriod represents a company's ad hoc unavailability (vacation, meeting, ...)
type BlockedPeriod struct {
	ID        int64
	CompanyID int64
	StartTime time.Time
	EndTime   time.Time
	Reason    *string
	CreatedAt time.Time
}

// Slot returns the blocked time range
func (b *BlockedPeriod) Slot() Slot {
	return Slot{Start: b.StartTime, End: b.EndTime}
}

// IsValid returns true if the period is not empty
func (b *BlockedPeriod) IsValid() bool {
	return b.EndTime.After(b.StartTime)
}

package slots

import "github.com/Am1ne12/JobConnect/internal/domain"

// Filter убирает слоты, пересекающиеся с активными собеседованиями или периодами недоступности.
// Порядок входных слотов сохраняется
func Filter(slots []domain.Slot, interviews []*domain.Interview, blocked []*domain.BlockedPeriod) []domain.Slot {
	occupied := make([]domain.Slot, 0, len(interviews)+len(blocked))
	for _, interview := range interviews {
		if interview != nil && interview.OccupiesSlot() {
			occupied = append(occupied, interview.Slot())
		}
	}
	for _, period := range blocked {
		if period != nil {
			occupied = append(occupied, period.Slot())
		}
	}

	result := make([]domain.Slot, 0, len(slots))
	for _, slot := range slots {
		free := true
		for _, o := range occupied {
			if slot.Overlaps(o.Start, o.End) {
				free = false
				break
			}
		}
		if free {
			result = append(result, slot)
		}
	}

	return result
}

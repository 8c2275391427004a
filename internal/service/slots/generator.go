package slots

import (
	"time"

	"github.com/Am1ne12/JobConnect/internal/domain"
)

// Generate нарезает рабочие часы дня на слоты фиксированной длительности.
// date задаёт день (и локацию), время суток в date игнорируется.
// Слоты идут встык, последний заканчивается не позже конца рабочих часов
func Generate(availability *domain.WeeklyAvailability, date time.Time, duration time.Duration) []domain.Slot {
	if !domain.IsWorkday(date.Weekday()) {
		return []domain.Slot{}
	}
	if availability == nil || !availability.IsActive || availability.DayOfWeek != date.Weekday() {
		return []domain.Slot{}
	}
	if duration <= 0 {
		return []domain.Slot{}
	}

	start, err := availability.StartTime.On(date)
	if err != nil {
		return []domain.Slot{}
	}
	end, err := availability.EndTime.On(date)
	if err != nil || !end.After(start) {
		return []domain.Slot{}
	}

	result := make([]domain.Slot, 0, int(end.Sub(start)/duration))
	for cursor := start; !cursor.Add(duration).After(end); cursor = cursor.Add(duration) {
		result = append(result, domain.Slot{Start: cursor, End: cursor.Add(duration)})
	}

	return result
}

package schedule_interview

import "time"

// Request модель запроса на запись на собеседование
type Request struct {
	UserID        int64     // ID пользователя-кандидата
	ApplicationID int64     // ID отклика
	ScheduledAt   time.Time // Начало выбранного слота
}

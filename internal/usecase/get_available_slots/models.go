package get_available_slots

import "time"

// Request модель запроса на получение свободных слотов
type Request struct {
	UserID    int64      // ID пользователя (для логирования, не влияет на результат)
	CompanyID int64      // ID компании
	StartDate *time.Time // Календарный день начала диапазона (по умолчанию завтра), часовой пояс не учитывается
	Days      int        // Количество дней (0 - значение по умолчанию)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	CompanyID       int64     // ID компании
	StartDate       time.Time // Первый день диапазона
	Days            int       // Фактическое количество дней
	DurationMinutes int       // Длительность собеседования
	Slots           []Slot    // Свободные слоты по возрастанию
}

// Slot модель свободного слота
type Slot struct {
	Start time.Time
	End   time.Time
}

package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if req.Days < 0 {
		return fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	}

	return nil
}

// resolveDays количество дней с учетом значения по умолчанию и верхней границы
func resolveDays(requested, defaultDays, maxDays int) int {
	days := requested
	if days == 0 {
		days = defaultDays
	}
	if maxDays > 0 && days > maxDays {
		days = maxDays
	}
	return days
}

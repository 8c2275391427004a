package get_available_slots

import (
	"net/url"
	"strconv"
	"time"

	"github.com/Am1ne12/JobConnect/internal/usecase/get_available_slots"
)

const dateLayout = "2006-01-02"

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	CompanyID       int64          `json:"companyId"`
	StartDate       string         `json:"startDate"`
	Days            int            `json:"days"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// ToUseCaseRequest разбирает query параметры startDate (YYYY-MM-DD) и days
func ToUseCaseRequest(query url.Values, userID, companyID int64) (*get_available_slots.Request, error) {
	req := &get_available_slots.Request{
		UserID:    userID,
		CompanyID: companyID,
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		req.Days = days
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *get_available_slots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{Start: s.Start, End: s.End})
	}

	return &AvailableSlotsResponse{
		CompanyID:       resp.CompanyID,
		StartDate:       resp.StartDate.Format(dateLayout),
		Days:            resp.Days,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

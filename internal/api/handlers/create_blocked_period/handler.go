package create_blocked_period

import (
	"errors"
	"net/http"

	"github.com/Am1ne12/JobConnect/internal/api/handlers"
	"github.com/Am1ne12/JobConnect/internal/api/middleware"
	"github.com/Am1ne12/JobConnect/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации периода"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgCompanyNotFound    = "профиль компании не найден"
	msgInvalidPeriod      = "конец периода должен быть позже начала"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/blocked-periods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /availability/blocked-periods - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBlockedPeriodRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/blocked-periods - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /availability/blocked-periods - Validation failed: user_id=%d, error=%v", userID, err)
		handlers.RespondValidationError(w, msgValidationFailed, err)
		return
	}

	period, err := h.service.CreateBlockedPeriod(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidBlockedPeriod):
			h.logger.Warn("POST /availability/blocked-periods - Invalid period: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, availability.ErrCompanyNotFound):
			h.logger.Warn("POST /availability/blocked-periods - Company not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		default:
			h.logger.Error("POST /availability/blocked-periods - Failed to create period: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/blocked-periods - Period created: period_id=%d, company_id=%d", period.ID, period.CompanyID)
	handlers.RespondJSON(w, http.StatusCreated, period)
}

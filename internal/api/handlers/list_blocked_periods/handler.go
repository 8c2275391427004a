package list_blocked_periods

import (
	"errors"
	"net/http"

	"github.com/Am1ne12/JobConnect/internal/api/handlers"
	"github.com/Am1ne12/JobConnect/internal/api/middleware"
	"github.com/Am1ne12/JobConnect/internal/service/availability"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgInvalidRange    = "параметры from и to должны быть в формате RFC3339"
	msgCompanyNotFound = "профиль компании не найден"
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

// Handle GET /api/v1/availability/blocked-periods?from=...&to=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /availability/blocked-periods - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req, err := parseQuery(r.URL.Query(), userID)
	if err != nil {
		h.logger.Warn("GET /availability/blocked-periods - Invalid range: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	resp, err := h.service.ListBlockedPeriods(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrCompanyNotFound):
			h.logger.Warn("GET /availability/blocked-periods - Company not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		default:
			h.logger.Error("GET /availability/blocked-periods - Failed to list periods: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/blocked-periods - Found %d periods: user_id=%d", len(resp.BlockedPeriods), userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

package delete_blocked_period

import (
	"errors"
	"net/http"

	"github.com/Am1ne12/JobConnect/internal/api/handlers"
	"github.com/Am1ne12/JobConnect/internal/api/middleware"
	"github.com/Am1ne12/JobConnect/internal/service/availability"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgInvalidPeriodID = "некорректный ID периода"
	msgPeriodNotFound  = "период недоступности не найден"
	msgAccessDenied    = "период принадлежит другой компании"
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

// Handle DELETE /api/v1/availability/blocked-periods/{blockedPeriodId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /availability/blocked-periods/{blockedPeriodId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	periodID, err := handlers.PathInt64(r, "blockedPeriodId")
	if err != nil {
		h.logger.Warn("DELETE /availability/blocked-periods/{blockedPeriodId} - Invalid period ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriodID)
		return
	}

	if err := h.service.DeleteBlockedPeriod(r.Context(), userID, periodID); err != nil {
		switch {
		case errors.Is(err, availability.ErrBlockedPeriodNotFound):
			h.logger.Warn("DELETE /availability/blocked-periods/{blockedPeriodId} - Period not found: period_id=%d", periodID)
			handlers.RespondNotFound(w, msgPeriodNotFound)

		case errors.Is(err, availability.ErrAccessDenied):
			h.logger.Warn("DELETE /availability/blocked-periods/{blockedPeriodId} - Access denied: period_id=%d, user_id=%d", periodID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, availability.ErrCompanyNotFound):
			h.logger.Warn("DELETE /availability/blocked-periods/{blockedPeriodId} - Company not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		default:
			h.logger.Error("DELETE /availability/blocked-periods/{blockedPeriodId} - Failed: period_id=%d, error=%v", periodID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/blocked-periods/{blockedPeriodId} - Period deleted: period_id=%d", periodID)
	w.WriteHeader(http.StatusNoContent)
}

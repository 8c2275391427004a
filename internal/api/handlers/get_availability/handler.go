package get_availability

import (
	"errors"
	"net/http"

	"github.com/Am1ne12/JobConnect/internal/api/handlers"
	"github.com/Am1ne12/JobConnect/internal/api/middleware"
	"github.com/Am1ne12/JobConnect/internal/service/availability"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
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

// Handle GET /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	template, err := h.service.GetTemplate(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrCompanyNotFound):
			h.logger.Warn("GET /availability - Company not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		default:
			h.logger.Error("GET /availability - Failed to get template: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Template retrieved: company_id=%d, days=%d", template.CompanyID, len(template.Days))
	handlers.RespondJSON(w, http.StatusOK, template)
}

package initialize_availability

import (
	"errors"
	"net/http"

	"github.com/Am1ne12/JobConnect/internal/api/handlers"
	"github.com/Am1ne12/JobConnect/internal/api/middleware"
	"github.com/Am1ne12/JobConnect/internal/service/availability"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgCompanyNotFound    = "профиль компании не найден"
	msgAlreadyInitialized = "расписание уже создано"
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

// Handle POST /api/v1/availability/initialize
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /availability/initialize - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	template, err := h.service.InitializeDefault(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrAlreadyInitialized):
			h.logger.Warn("POST /availability/initialize - Already initialized: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgAlreadyInitialized)

		case errors.Is(err, availability.ErrCompanyNotFound):
			h.logger.Warn("POST /availability/initialize - Company not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		default:
			h.logger.Error("POST /availability/initialize - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/initialize - Default template created: company_id=%d", template.CompanyID)
	handlers.RespondJSON(w, http.StatusCreated, template)
}

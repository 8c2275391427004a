package replace_availability

import (
	"errors"
	"net/http"

	"github.com/Am1ne12/JobConnect/internal/api/handlers"
	"github.com/Am1ne12/JobConnect/internal/api/middleware"
	"github.com/Am1ne12/JobConnect/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации расписания"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgCompanyNotFound    = "профиль компании не найден"
	msgInvalidTemplate    = "некорректное расписание: время HH:MM, конец позже начала, каждый день не более одного раза"
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

// Handle PUT /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ReplaceAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /availability - Validation failed: user_id=%d, error=%v", userID, err)
		handlers.RespondValidationError(w, msgValidationFailed, err)
		return
	}

	template, err := h.service.ReplaceTemplate(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidTemplate):
			h.logger.Warn("PUT /availability - Invalid template: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidTemplate)

		case errors.Is(err, availability.ErrCompanyNotFound):
			h.logger.Warn("PUT /availability - Company not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		default:
			h.logger.Error("PUT /availability - Failed to replace template: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /availability - Template replaced: company_id=%d, days=%d", template.CompanyID, len(template.Days))
	handlers.RespondJSON(w, http.StatusOK, template)
}

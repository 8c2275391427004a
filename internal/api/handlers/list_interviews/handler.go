package list_interviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Am1ne12/JobConnect/internal/api/handlers"
	"github.com/Am1ne12/JobConnect/internal/api/middleware"
	"github.com/Am1ne12/JobConnect/internal/service/interviews"
	"github.com/Am1ne12/JobConnect/internal/service/interviews/models"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgInvalidFlag     = "параметр includeInactive должен быть true или false"
	msgInvalidRole     = "неизвестная роль пользователя"
	msgProfileNotFound = "профиль пользователя не найден"
)

type Handler struct {
	service InterviewService
	logger  Logger
}

func NewHandler(service InterviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/interviews?includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /interviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	includeInactive := false
	if raw := r.URL.Query().Get("includeInactive"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /interviews - Invalid includeInactive=%q", raw)
			handlers.RespondBadRequest(w, msgInvalidFlag)
			return
		}
		includeInactive = parsed
	}

	resp, err := h.service.List(r.Context(), &models.ListInterviewsRequest{
		UserID:          userID,
		Role:            role,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		switch {
		case errors.Is(err, interviews.ErrInvalidRole):
			h.logger.Warn("GET /interviews - Invalid role: user_id=%d, role=%q", userID, role)
			handlers.RespondForbidden(w, msgInvalidRole)

		case errors.Is(err, interviews.ErrProfileNotFound):
			h.logger.Warn("GET /interviews - Profile not found: user_id=%d, role=%s", userID, role)
			handlers.RespondNotFound(w, msgProfileNotFound)

		default:
			h.logger.Error("GET /interviews - Failed to list: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /interviews - Found %d interviews: user_id=%d, role=%s", len(resp.Interviews), userID, role)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

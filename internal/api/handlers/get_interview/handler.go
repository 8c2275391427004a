package get_interview

import (
	"errors"
	"net/http"

	"github.com/Am1ne12/JobConnect/internal/api/handlers"
	"github.com/Am1ne12/JobConnect/internal/api/middleware"
	"github.com/Am1ne12/JobConnect/internal/service/interviews"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInterviewID = "некорректный ID собеседования"
	msgInterviewNotFound  = "собеседование не найдено"
	msgAccessDenied       = "доступ запрещён"
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

// Handle GET /api/v1/interviews/{interviewId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /interviews/{interviewId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	interviewID, err := handlers.PathInt64(r, "interviewId")
	if err != nil {
		h.logger.Warn("GET /interviews/{interviewId} - Invalid interview ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInterviewID)
		return
	}

	interview, err := h.service.GetByID(r.Context(), interviewID, userID)
	if err != nil {
		switch {
		case errors.Is(err, interviews.ErrInterviewNotFound):
			h.logger.Warn("GET /interviews/{interviewId} - Interview not found: interview_id=%d", interviewID)
			handlers.RespondNotFound(w, msgInterviewNotFound)

		case errors.Is(err, interviews.ErrAccessDenied):
			h.logger.Warn("GET /interviews/{interviewId} - Access denied: interview_id=%d, user_id=%d", interviewID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /interviews/{interviewId} - Failed: interview_id=%d, error=%v", interviewID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, interview)
}

package complete_interview

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
	msgAccessDenied       = "завершить собеседование может только компания"
	msgInvalidTransition  = "собеседование в текущем статусе нельзя завершить"
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

// Handle PUT /api/v1/interviews/{interviewId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /interviews/{interviewId}/complete - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	interviewID, err := handlers.PathInt64(r, "interviewId")
	if err != nil {
		h.logger.Warn("PUT /interviews/{interviewId}/complete - Invalid interview ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInterviewID)
		return
	}

	interview, err := h.service.Complete(r.Context(), interviewID, userID)
	if err != nil {
		switch {
		case errors.Is(err, interviews.ErrInterviewNotFound):
			h.logger.Warn("PUT /interviews/{interviewId}/complete - Interview not found: interview_id=%d", interviewID)
			handlers.RespondNotFound(w, msgInterviewNotFound)

		case errors.Is(err, interviews.ErrAccessDenied):
			h.logger.Warn("PUT /interviews/{interviewId}/complete - Access denied: interview_id=%d, user_id=%d", interviewID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, interviews.ErrInvalidTransition):
			h.logger.Warn("PUT /interviews/{interviewId}/complete - Invalid transition: interview_id=%d", interviewID)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		default:
			h.logger.Error("PUT /interviews/{interviewId}/complete - Failed: interview_id=%d, error=%v", interviewID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /interviews/{interviewId}/complete - Interview completed: interview_id=%d", interview.ID)
	handlers.RespondJSON(w, http.StatusOK, interview)
}

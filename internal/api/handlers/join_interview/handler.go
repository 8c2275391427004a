package join_interview

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
	msgNotActive          = "собеседование отменено, перенесено или завершено"
	msgTooEarly           = "комната собеседования ещё не открыта"
	msgInterviewOver      = "собеседование уже закончилось"
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

// Handle GET /api/v1/interviews/{interviewId}/join
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /interviews/{interviewId}/join - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	interviewID, err := handlers.PathInt64(r, "interviewId")
	if err != nil {
		h.logger.Warn("GET /interviews/{interviewId}/join - Invalid interview ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInterviewID)
		return
	}

	resp, err := h.service.Join(r.Context(), interviewID, userID)
	if err != nil {
		switch {
		case errors.Is(err, interviews.ErrInterviewNotFound):
			h.logger.Warn("GET /interviews/{interviewId}/join - Interview not found: interview_id=%d", interviewID)
			handlers.RespondNotFound(w, msgInterviewNotFound)

		case errors.Is(err, interviews.ErrAccessDenied):
			h.logger.Warn("GET /interviews/{interviewId}/join - Access denied: interview_id=%d, user_id=%d", interviewID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, interviews.ErrInterviewNotActive):
			h.logger.Warn("GET /interviews/{interviewId}/join - Not active: interview_id=%d", interviewID)
			handlers.RespondBadRequest(w, msgNotActive)

		case errors.Is(err, interviews.ErrTooEarlyToJoin):
			h.logger.Warn("GET /interviews/{interviewId}/join - Too early: interview_id=%d", interviewID)
			handlers.RespondBadRequest(w, msgTooEarly)

		case errors.Is(err, interviews.ErrInterviewOver):
			h.logger.Warn("GET /interviews/{interviewId}/join - Over: interview_id=%d", interviewID)
			handlers.RespondBadRequest(w, msgInterviewOver)

		default:
			h.logger.Error("GET /interviews/{interviewId}/join - Failed: interview_id=%d, error=%v", interviewID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /interviews/{interviewId}/join - Joined: interview_id=%d, role=%s, status=%s", interviewID, resp.Role, resp.Status)
	handlers.RespondJSON(w, http.StatusOK, resp)
}

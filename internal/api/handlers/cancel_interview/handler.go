package cancel_interview

import (
	"errors"
	"net/http"

	"github.com/Am1ne12/JobConnect/internal/api/handlers"
	"github.com/Am1ne12/JobConnect/internal/api/middleware"
	"github.com/Am1ne12/JobConnect/internal/usecase/cancel_interview"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "укажите причину отмены (до 500 символов)"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInterviewID = "некорректный ID собеседования"
	msgInvalidInput       = "некорректная причина отмены"
	msgInterviewNotFound  = "собеседование не найдено"
	msgAccessDenied       = "доступ запрещён"
	msgCannotCancel       = "собеседование в текущем статусе нельзя отменить"
)

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/interviews/{interviewId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /interviews/{interviewId}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	interviewID, err := handlers.PathInt64(r, "interviewId")
	if err != nil {
		h.logger.Warn("PUT /interviews/{interviewId}/cancel - Invalid interview ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInterviewID)
		return
	}

	var req CancelInterviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /interviews/{interviewId}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /interviews/{interviewId}/cancel - Validation failed: interview_id=%d, error=%v", interviewID, err)
		handlers.RespondValidationError(w, msgValidationFailed, err)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, interviewID))
	if err != nil {
		switch {
		case errors.Is(err, cancel_interview.ErrInvalidInput):
			h.logger.Warn("PUT /interviews/{interviewId}/cancel - Invalid input: interview_id=%d, error=%v", interviewID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, cancel_interview.ErrInterviewNotFound):
			h.logger.Warn("PUT /interviews/{interviewId}/cancel - Interview not found: interview_id=%d", interviewID)
			handlers.RespondNotFound(w, msgInterviewNotFound)

		case errors.Is(err, cancel_interview.ErrAccessDenied):
			h.logger.Warn("PUT /interviews/{interviewId}/cancel - Access denied: interview_id=%d, user_id=%d", interviewID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, cancel_interview.ErrCannotCancel):
			h.logger.Warn("PUT /interviews/{interviewId}/cancel - Cannot cancel: interview_id=%d", interviewID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("PUT /interviews/{interviewId}/cancel - Failed: interview_id=%d, error=%v", interviewID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /interviews/{interviewId}/cancel - Interview cancelled: interview_id=%d, by=%s", interviewID, resp.CancelledBy)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}

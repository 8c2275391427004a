package reschedule_interview

import (
	"errors"
	"net/http"

	"github.com/Am1ne12/JobConnect/internal/api/handlers"
	"github.com/Am1ne12/JobConnect/internal/api/middleware"
	"github.com/Am1ne12/JobConnect/internal/usecase/reschedule_interview"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInterviewID = "некорректный ID собеседования"
	msgInvalidInput       = "некорректное время переноса"
	msgInterviewNotFound  = "собеседование не найдено"
	msgAccessDenied       = "доступ запрещён"
	msgCannotReschedule   = "собеседование в текущем статусе нельзя перенести"
	msgSlotNotAvailable   = "выбранный слот недоступен"
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

// Handle PUT /api/v1/interviews/{interviewId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /interviews/{interviewId}/reschedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	interviewID, err := handlers.PathInt64(r, "interviewId")
	if err != nil {
		h.logger.Warn("PUT /interviews/{interviewId}/reschedule - Invalid interview ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInterviewID)
		return
	}

	var req RescheduleInterviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /interviews/{interviewId}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /interviews/{interviewId}/reschedule - Validation failed: interview_id=%d, error=%v", interviewID, err)
		handlers.RespondValidationError(w, msgValidationFailed, err)
		return
	}

	interview, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID, interviewID))
	if err != nil {
		switch {
		case errors.Is(err, reschedule_interview.ErrInvalidInput):
			h.logger.Warn("PUT /interviews/{interviewId}/reschedule - Invalid input: interview_id=%d, error=%v", interviewID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reschedule_interview.ErrInterviewNotFound):
			h.logger.Warn("PUT /interviews/{interviewId}/reschedule - Interview not found: interview_id=%d", interviewID)
			handlers.RespondNotFound(w, msgInterviewNotFound)

		case errors.Is(err, reschedule_interview.ErrAccessDenied):
			h.logger.Warn("PUT /interviews/{interviewId}/reschedule - Access denied: interview_id=%d, user_id=%d", interviewID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reschedule_interview.ErrCannotReschedule):
			h.logger.Warn("PUT /interviews/{interviewId}/reschedule - Cannot reschedule: interview_id=%d", interviewID)
			handlers.RespondBadRequest(w, msgCannotReschedule)

		case errors.Is(err, reschedule_interview.ErrSlotNotAvailable):
			h.logger.Warn("PUT /interviews/{interviewId}/reschedule - Slot not available: interview_id=%d, error=%v", interviewID, err)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("PUT /interviews/{interviewId}/reschedule - Failed: interview_id=%d, error=%v", interviewID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /interviews/{interviewId}/reschedule - Interview rescheduled: old_id=%d, new_id=%d", interviewID, interview.ID)
	handlers.RespondJSON(w, http.StatusOK, interview)
}

package schedule_interview

import (
	"errors"
	"net/http"

	"github.com/Am1ne12/JobConnect/internal/api/handlers"
	"github.com/Am1ne12/JobConnect/internal/api/middleware"
	"github.com/Am1ne12/JobConnect/internal/usecase/schedule_interview"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgValidationFailed    = "ошибка валидации запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidInput        = "некорректные данные для записи"
	msgApplicationNotFound = "отклик не найден"
	msgProfileNotFound     = "профиль кандидата не найден"
	msgAccessDenied        = "отклик принадлежит другому кандидату"
	msgSlotNotAvailable    = "выбранный слот недоступен"
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

// Handle POST /api/v1/interviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /interviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ScheduleInterviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /interviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /interviews - Validation failed: user_id=%d, error=%v", userID, err)
		handlers.RespondValidationError(w, msgValidationFailed, err)
		return
	}

	interview, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, schedule_interview.ErrInvalidInput):
			h.logger.Warn("POST /interviews - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, schedule_interview.ErrApplicationNotFound):
			h.logger.Warn("POST /interviews - Application not found: application_id=%d", req.ApplicationID)
			handlers.RespondNotFound(w, msgApplicationNotFound)

		case errors.Is(err, schedule_interview.ErrProfileNotFound):
			h.logger.Warn("POST /interviews - Candidate profile not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		case errors.Is(err, schedule_interview.ErrAccessDenied):
			h.logger.Warn("POST /interviews - Access denied: user_id=%d, application_id=%d", userID, req.ApplicationID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, schedule_interview.ErrSlotNotAvailable):
			h.logger.Warn("POST /interviews - Slot not available: application_id=%d, error=%v", req.ApplicationID, err)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /interviews - Failed to schedule: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /interviews - Interview scheduled: interview_id=%d, application_id=%d", interview.ID, interview.ApplicationID)
	handlers.RespondJSON(w, http.StatusCreated, interview)
}

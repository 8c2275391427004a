package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/Am1ne12/JobConnect/internal/api/handlers"
	"github.com/Am1ne12/JobConnect/internal/api/middleware"
	"github.com/Am1ne12/JobConnect/internal/usecase/get_available_slots"
)

const (
	msgMissingUserID    = "отсутствует ID пользователя"
	msgInvalidCompanyID = "некорректный ID компании"
	msgInvalidQuery     = "параметр startDate ожидается в формате YYYY-MM-DD, days - целое число"
	msgInvalidInput     = "некорректные параметры диапазона"
	msgCompanyNotFound  = "компания не найдена"
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

// Handle GET /api/v1/availability/{companyId}/slots?startDate=...&days=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /availability/{companyId}/slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	companyID, err := handlers.PathInt64(r, "companyId")
	if err != nil {
		h.logger.Warn("GET /availability/{companyId}/slots - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	req, err := ToUseCaseRequest(r.URL.Query(), userID, companyID)
	if err != nil {
		h.logger.Warn("GET /availability/{companyId}/slots - Invalid query: company_id=%d, error=%v", companyID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, get_available_slots.ErrInvalidInput):
			h.logger.Warn("GET /availability/{companyId}/slots - Invalid input: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, get_available_slots.ErrCompanyNotFound):
			h.logger.Warn("GET /availability/{companyId}/slots - Company not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgCompanyNotFound)

		default:
			h.logger.Error("GET /availability/{companyId}/slots - Failed: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/{companyId}/slots - Found %d slots: company_id=%d, days=%d", len(resp.Slots), companyID, resp.Days)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}

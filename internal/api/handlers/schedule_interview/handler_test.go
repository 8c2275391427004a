package schedule_interview_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Am1ne12/JobConnect/internal/api/handlers"
	"github.com/Am1ne12/JobConnect/internal/api/handlers/schedule_interview"
	"github.com/Am1ne12/JobConnect/internal/api/middleware"
	"github.com/Am1ne12/JobConnect/internal/service/interviews/models"
	uc "github.com/Am1ne12/JobConnect/internal/usecase/schedule_interview"
	"github.com/Am1ne12/JobConnect/pkg/logger"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *uc.Request) (*models.InterviewResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InterviewResponse), args.Error(1)
}

func newRouter(useCase *MockUseCase) http.Handler {
	log := logger.NewNop()
	router := mux.NewRouter()
	router.Use(middleware.Auth("", log))
	router.HandleFunc("/api/v1/interviews", schedule_interview.NewHandler(useCase, log).Handle).Methods(http.MethodPost)
	return router
}

func doRequest(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interviews", strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, "300")
	req.Header.Set(middleware.HeaderUserRole, "candidate")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	useCase := new(MockUseCase)
	useCase.On("Execute", mock.Anything, mock.MatchedBy(func(req *uc.Request) bool {
		return req.UserID == 300 && req.ApplicationID == 7 && req.ScheduledAt.Equal(start)
	})).
		Return(&models.InterviewResponse{ID: 1, ApplicationID: 7, Status: "Scheduled", ScheduledAt: start}, nil)

	rec := doRequest(newRouter(useCase), `{"applicationId":7,"scheduledAt":"2026-03-02T09:00:00Z"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body models.InterviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.ID)
	assert.Equal(t, "Scheduled", body.Status)
	useCase.AssertExpectations(t)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"slot taken", uc.ErrSlotNotAvailable, http.StatusConflict},
		{"foreign application", uc.ErrAccessDenied, http.StatusForbidden},
		{"unknown application", uc.ErrApplicationNotFound, http.StatusNotFound},
		{"no profile", uc.ErrProfileNotFound, http.StatusNotFound},
		{"off grid", uc.ErrInvalidInput, http.StatusBadRequest},
		{"unexpected", fmt.Errorf("%w: boom", uc.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := new(MockUseCase)
			useCase.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doRequest(newRouter(useCase), `{"applicationId":7,"scheduledAt":"2026-03-02T09:00:00Z"}`)

			assert.Equal(t, tt.status, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Code)
		})
	}
}

func TestHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"applicationId":`},
		{"unknown field", `{"applicationId":7,"scheduledAt":"2026-03-02T09:00:00Z","room":"x"}`},
		{"missing scheduledAt", `{"applicationId":7}`},
		{"zero application", `{"applicationId":0,"scheduledAt":"2026-03-02T09:00:00Z"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := new(MockUseCase)

			rec := doRequest(newRouter(useCase), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_Unauthenticated(t *testing.T) {
	useCase := new(MockUseCase)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/interviews", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	newRouter(useCase).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

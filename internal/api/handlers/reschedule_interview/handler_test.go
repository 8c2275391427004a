package reschedule_interview_test

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
	"github.com/Am1ne12/JobConnect/internal/api/handlers/reschedule_interview"
	"github.com/Am1ne12/JobConnect/internal/api/middleware"
	"github.com/Am1ne12/JobConnect/internal/service/interviews/models"
	uc "github.com/Am1ne12/JobConnect/internal/usecase/reschedule_interview"
	"github.com/Am1ne12/JobConnect/pkg/logger"
)

const validBody = `{"scheduledAt":"2026-03-03T13:30:00Z","reason":"Interviewer is sick"}`

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
	router.HandleFunc("/api/v1/interviews/{interviewId}/reschedule",
		reschedule_interview.NewHandler(useCase, log).Handle).Methods(http.MethodPut)
	return router
}

func doRequest(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, "100")
	req.Header.Set(middleware.HeaderUserRole, "company")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Rescheduled(t *testing.T) {
	start := time.Date(2026, 3, 3, 13, 30, 0, 0, time.UTC)
	oldID := int64(5)
	useCase := new(MockUseCase)
	useCase.On("Execute", mock.Anything, mock.MatchedBy(func(req *uc.Request) bool {
		return req.UserID == 100 && req.InterviewID == 5 && req.NewStart.Equal(start) &&
			req.Reason != nil && *req.Reason == "Interviewer is sick"
	})).
		Return(&models.InterviewResponse{ID: 6, Status: "Scheduled", ScheduledAt: start, RescheduledFromID: &oldID}, nil)

	rec := doRequest(newRouter(useCase), "/api/v1/interviews/5/reschedule", validBody)

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.InterviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(6), body.ID)
	require.NotNil(t, body.RescheduledFromID)
	assert.Equal(t, oldID, *body.RescheduledFromID)
	useCase.AssertExpectations(t)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"slot taken", uc.ErrSlotNotAvailable, http.StatusConflict},
		{"already moved", uc.ErrCannotReschedule, http.StatusBadRequest},
		{"stranger", uc.ErrAccessDenied, http.StatusForbidden},
		{"unknown interview", uc.ErrInterviewNotFound, http.StatusNotFound},
		{"off grid", fmt.Errorf("%w: newStart is not on the slot grid", uc.ErrInvalidInput), http.StatusBadRequest},
		{"unexpected", fmt.Errorf("%w: boom", uc.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := new(MockUseCase)
			useCase.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doRequest(newRouter(useCase), "/api/v1/interviews/5/reschedule", validBody)

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
		path string
		body string
	}{
		{"malformed json", "/api/v1/interviews/5/reschedule", `{"scheduledAt":`},
		{"missing scheduledAt", "/api/v1/interviews/5/reschedule", `{"reason":"x"}`},
		{"reason too long", "/api/v1/interviews/5/reschedule",
			`{"scheduledAt":"2026-03-03T13:30:00Z","reason":"` + strings.Repeat("я", 501) + `"}`},
		{"non numeric id", "/api/v1/interviews/abc/reschedule", validBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := new(MockUseCase)

			rec := doRequest(newRouter(useCase), tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

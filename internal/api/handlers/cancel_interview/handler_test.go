package cancel_interview_test

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
	"github.com/Am1ne12/JobConnect/internal/api/handlers/cancel_interview"
	"github.com/Am1ne12/JobConnect/internal/api/middleware"
	uc "github.com/Am1ne12/JobConnect/internal/usecase/cancel_interview"
	"github.com/Am1ne12/JobConnect/pkg/logger"
)

const validBody = `{"reason":"Нашёл другую работу"}`

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *uc.Request) (*uc.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*uc.Response), args.Error(1)
}

func newRouter(useCase *MockUseCase) http.Handler {
	log := logger.NewNop()
	router := mux.NewRouter()
	router.Use(middleware.Auth("", log))
	router.HandleFunc("/api/v1/interviews/{interviewId}/cancel",
		cancel_interview.NewHandler(useCase, log).Handle).Methods(http.MethodPut)
	return router
}

func doRequest(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/interviews/5/cancel", strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, "300")
	req.Header.Set(middleware.HeaderUserRole, "candidate")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Cancelled(t *testing.T) {
	cancelledAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	useCase := new(MockUseCase)
	useCase.On("Execute", mock.Anything, mock.MatchedBy(func(req *uc.Request) bool {
		return req.UserID == 300 && req.InterviewID == 5 && req.Reason == "Нашёл другую работу"
	})).
		Return(&uc.Response{
			InterviewID: 5,
			Reason:      "Нашёл другую работу",
			CancelledBy: "candidate",
			CancelledAt: cancelledAt,
		}, nil)

	rec := doRequest(newRouter(useCase), validBody)

	require.Equal(t, http.StatusOK, rec.Code)
	var body cancel_interview.CancelInterviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.InterviewID)
	assert.Equal(t, "Cancelled", body.Status)
	assert.Equal(t, "candidate", body.CancelledBy)
	useCase.AssertExpectations(t)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"already cancelled", uc.ErrCannotCancel, http.StatusBadRequest},
		{"stranger", uc.ErrAccessDenied, http.StatusForbidden},
		{"unknown interview", uc.ErrInterviewNotFound, http.StatusNotFound},
		{"blank reason", fmt.Errorf("%w: reason is required", uc.ErrInvalidInput), http.StatusBadRequest},
		{"unexpected", fmt.Errorf("%w: boom", uc.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := new(MockUseCase)
			useCase.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := doRequest(newRouter(useCase), validBody)

			assert.Equal(t, tt.status, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Code)
		})
	}
}

func TestHandler_ReasonLength(t *testing.T) {
	tests := []struct {
		name   string
		reason string
		called bool
	}{
		{"cyrillic within limit", strings.Repeat("ж", 300), true},
		{"exactly 500 runes", strings.Repeat("ж", 500), true},
		{"over limit", strings.Repeat("ж", 501), false},
		{"missing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := new(MockUseCase)
			useCase.On("Execute", mock.Anything, mock.Anything).Return(&uc.Response{InterviewID: 5}, nil).Maybe()

			rec := doRequest(newRouter(useCase), `{"reason":"`+tt.reason+`"}`)

			if tt.called {
				assert.Equal(t, http.StatusOK, rec.Code)
				useCase.AssertCalled(t, "Execute", mock.Anything, mock.Anything)
				return
			}
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			useCase.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

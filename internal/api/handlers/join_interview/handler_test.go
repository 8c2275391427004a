package join_interview_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Am1ne12/JobConnect/internal/api/handlers"
	"github.com/Am1ne12/JobConnect/internal/api/handlers/join_interview"
	"github.com/Am1ne12/JobConnect/internal/api/middleware"
	"github.com/Am1ne12/JobConnect/internal/service/interviews"
	"github.com/Am1ne12/JobConnect/internal/service/interviews/models"
	"github.com/Am1ne12/JobConnect/pkg/logger"
)

type MockInterviewService struct {
	mock.Mock
}

func (m *MockInterviewService) Join(ctx context.Context, id int64, userID int64) (*models.JoinResponse, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JoinResponse), args.Error(1)
}

func newRouter(service *MockInterviewService) http.Handler {
	log := logger.NewNop()
	router := mux.NewRouter()
	router.Use(middleware.Auth("", log))
	router.HandleFunc("/api/v1/interviews/{interviewId}/join",
		join_interview.NewHandler(service, log).Handle).Methods(http.MethodGet)
	return router
}

func doRequest(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.HeaderUserID, "300")
	req.Header.Set(middleware.HeaderUserRole, "candidate")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Joined(t *testing.T) {
	service := new(MockInterviewService)
	service.On("Join", mock.Anything, int64(5), int64(300)).
		Return(&models.JoinResponse{InterviewID: 5, RoomID: "room-1", Status: "InProgress", Role: "candidate"}, nil)

	rec := doRequest(newRouter(service), "/api/v1/interviews/5/join")

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.JoinResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "room-1", body.RoomID)
	assert.Equal(t, "candidate", body.Role)
	service.AssertExpectations(t)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"room not open", interviews.ErrTooEarlyToJoin, http.StatusBadRequest},
		{"already over", interviews.ErrInterviewOver, http.StatusBadRequest},
		{"cancelled", interviews.ErrInterviewNotActive, http.StatusBadRequest},
		{"stranger", interviews.ErrAccessDenied, http.StatusForbidden},
		{"unknown interview", interviews.ErrInterviewNotFound, http.StatusNotFound},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockInterviewService)
			service.On("Join", mock.Anything, int64(5), int64(300)).Return(nil, tt.err)

			rec := doRequest(newRouter(service), "/api/v1/interviews/5/join")

			assert.Equal(t, tt.status, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Code)
		})
	}
}

func TestHandler_InvalidInterviewID(t *testing.T) {
	service := new(MockInterviewService)

	rec := doRequest(newRouter(service), "/api/v1/interviews/abc/join")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	service.AssertNotCalled(t, "Join", mock.Anything, mock.Anything, mock.Anything)
}

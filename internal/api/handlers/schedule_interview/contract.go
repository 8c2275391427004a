package schedule_interview

import (
	"context"

	"github.com/Am1ne12/JobConnect/internal/service/interviews/models"
	"github.com/Am1ne12/JobConnect/internal/usecase/schedule_interview"
)

type UseCase interface {
	Execute(ctx context.Context, req *schedule_interview.Request) (*models.InterviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

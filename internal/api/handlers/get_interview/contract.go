package get_interview

import (
	"context"

	"github.com/Am1ne12/JobConnect/internal/service/interviews/models"
)

type InterviewService interface {
	GetByID(ctx context.Context, id int64, userID int64) (*models.InterviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

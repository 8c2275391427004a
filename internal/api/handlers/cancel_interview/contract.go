package cancel_interview

import (
	"context"

	"github.com/Am1ne12/JobConnect/internal/usecase/cancel_interview"
)

type UseCase interface {
	Execute(ctx context.Context, req *cancel_interview.Request) (*cancel_interview.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package notifier

import (
	"context"

	"github.com/segmentio/kafka-go"

	"github.com/Am1ne12/JobConnect/internal/integrations/realtime"
)

// KafkaWriter интерфейс kafka writer (kafka.Writer или mock)
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RealtimeClient интерфейс клиента realtime gateway
type RealtimeClient interface {
	Push(ctx context.Context, notification *realtime.Notification) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

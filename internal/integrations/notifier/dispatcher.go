// Package notifier доставляет доменные события в kafka и realtime gateway.
// Доставка асинхронная и best effort: ошибки логируются и не возвращаются вызывающему
package notifier

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Am1ne12/JobConnect/internal/domain"
	"github.com/Am1ne12/JobConnect/internal/integrations/realtime"
	"github.com/Am1ne12/JobConnect/pkg/tracing"
)

const (
	defaultQueueSize       = 256
	defaultRetryInterval   = 200 * time.Millisecond
	defaultDeliveryTimeout = 10 * time.Second
)

var jsonMarshal = json.Marshal

// Config параметры доставки
type Config struct {
	QueueSize       int
	MaxRetries      int
	RetryInterval   time.Duration
	DeliveryTimeout time.Duration
}

// Dispatcher очередь событий с одной горутиной доставки
type Dispatcher struct {
	writer   KafkaWriter    // nil, если kafka выключена
	realtime RealtimeClient // nil, если realtime выключен
	cfg      Config
	events   chan domain.Event
	logger   Logger

	closeChan chan struct{}
	done      chan struct{}
	startOnce sync.Once
	closeOnce sync.Once
}

// NewKafkaWriter создает kafka writer для топика событий
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		Topic:                  topic,
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
	}
}

// NewDispatcher создает диспетчер. writer и realtime могут быть nil
func NewDispatcher(writer KafkaWriter, realtime RealtimeClient, cfg Config, logger Logger) *Dispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultRetryInterval
	}
	if cfg.DeliveryTimeout <= 0 {
		cfg.DeliveryTimeout = defaultDeliveryTimeout
	}

	return &Dispatcher{
		writer:    writer,
		realtime:  realtime,
		cfg:       cfg,
		events:    make(chan domain.Event, cfg.QueueSize),
		logger:    logger,
		closeChan: make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start запускает горутину доставки
func (d *Dispatcher) Start() {
	d.startOnce.Do(func() {
		go d.eventLoop()
	})
}

// Dispatch ставит событие в очередь. Не блокируется: при полной очереди событие отбрасывается
func (d *Dispatcher) Dispatch(event domain.Event) {
	select {
	case d.events <- event:
	default:
		d.logger.Warn("Notifier: queue full, dropping event type=%s, company=%d, interview=%d",
			event.Type, event.CompanyID, event.InterviewID)
	}
}

// Close останавливает доставку, дожидаясь отправки уже поставленных событий
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.closeChan)
		d.startOnce.Do(func() { close(d.done) })
		<-d.done

		if d.writer != nil {
			if err := d.writer.Close(); err != nil {
				d.logger.Error("Notifier: failed to close kafka writer: %v", err)
			}
		}
	})
}

func (d *Dispatcher) eventLoop() {
	defer close(d.done)

	for {
		select {
		case event := <-d.events:
			d.deliver(event)
		case <-d.closeChan:
			// Дочитываем очередь
			for {
				select {
				case event := <-d.events:
					d.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) deliver(event domain.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), d.cfg.DeliveryTimeout)
	defer cancel()

	ctx, span := tracing.StartSpan(ctx, "notifier.deliver",
		attribute.String("event.type", string(event.Type)),
		attribute.Int64("company.id", event.CompanyID),
	)
	defer span.End()

	if d.writer != nil {
		d.publish(ctx, event)
	}
	if d.realtime != nil {
		d.push(ctx, event)
	}
}

// publish пишет событие в kafka с ограниченным числом повторов
func (d *Dispatcher) publish(ctx context.Context, event domain.Event) {
	value, err := jsonMarshal(fromDomainEvent(event))
	if err != nil {
		d.logger.Error("Notifier: failed to serialize event type=%s: %v", event.Type, err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.CompanyID, 10)),
		Value: value,
		Headers: tracing.InjectKafkaHeaders(ctx, []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		}),
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = d.cfg.RetryInterval

	attempt := 0
	err = backoff.Retry(func() error {
		attempt++
		return d.writer.WriteMessages(ctx, msg)
	}, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(d.cfg.MaxRetries)), ctx))
	if err != nil {
		d.logger.Error("Notifier: failed to publish event type=%s, company=%d after %d attempts: %v",
			event.Type, event.CompanyID, attempt, err)
	}
}

// push отправляет уведомление каждому получателю
func (d *Dispatcher) push(ctx context.Context, event domain.Event) {
	seen := make(map[int64]bool, len(event.RecipientUserIDs))
	for _, userID := range event.RecipientUserIDs {
		if userID <= 0 || seen[userID] {
			continue
		}
		seen[userID] = true

		err := d.realtime.Push(ctx, &realtime.Notification{
			UserID:      userID,
			Type:        string(event.Type),
			CompanyID:   event.CompanyID,
			InterviewID: event.InterviewID,
			Status:      string(event.Status),
			SlotStart:   event.SlotStart,
			SlotEnd:     event.SlotEnd,
			Reason:      event.Reason,
			OccurredAt:  event.OccurredAt,
		})
		if err != nil {
			d.logger.Warn("Notifier: realtime push to user=%d failed, type=%s: %v", userID, event.Type, err)
		}
	}
}

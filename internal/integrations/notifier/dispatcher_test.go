package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Am1ne12/JobConnect/internal/domain"
	"github.com/Am1ne12/JobConnect/internal/integrations/realtime"
	"github.com/Am1ne12/JobConnect/pkg/logger"
)

type MockKafkaWriter struct {
	mock.Mock
}

func (m *MockKafkaWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockKafkaWriter) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockRealtimeClient struct {
	mock.Mock
}

func (m *MockRealtimeClient) Push(ctx context.Context, notification *realtime.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func scheduledEvent() domain.Event {
	start := time.Date(2025, 1, 14, 10, 30, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	return domain.Event{
		Type:             domain.EventInterviewScheduled,
		CompanyID:        1,
		InterviewID:      5,
		RecipientUserIDs: []int64{100, 300, 300},
		Status:           domain.InterviewStatusScheduled,
		SlotStart:        &start,
		SlotEnd:          &end,
		OccurredAt:       start.Add(-24 * time.Hour),
	}
}

func TestDispatcher_Deliver(t *testing.T) {
	writer := new(MockKafkaWriter)
	rt := new(MockRealtimeClient)

	writer.On("WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kafka.Message) bool {
		if len(msgs) != 1 || string(msgs[0].Key) != "1" {
			return false
		}
		var value eventMessage
		if err := json.Unmarshal(msgs[0].Value, &value); err != nil {
			return false
		}
		return value.Type == "InterviewScheduled" && value.InterviewID == 5
	})).Return(nil).Once()
	rt.On("Push", mock.Anything, mock.MatchedBy(func(n *realtime.Notification) bool { return n.UserID == 100 })).Return(nil).Once()
	rt.On("Push", mock.Anything, mock.MatchedBy(func(n *realtime.Notification) bool { return n.UserID == 300 })).Return(nil).Once()

	d := NewDispatcher(writer, rt, Config{MaxRetries: 2, RetryInterval: time.Millisecond}, logger.NewNop())
	d.deliver(scheduledEvent())

	writer.AssertExpectations(t)
	rt.AssertExpectations(t)
}

func TestDispatcher_PublishRetries(t *testing.T) {
	t.Run("recovers", func(t *testing.T) {
		writer := new(MockKafkaWriter)
		writer.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("broker down")).Twice()
		writer.On("WriteMessages", mock.Anything, mock.Anything).Return(nil).Once()

		d := NewDispatcher(writer, nil, Config{MaxRetries: 3, RetryInterval: time.Millisecond}, logger.NewNop())
		d.deliver(scheduledEvent())

		writer.AssertNumberOfCalls(t, "WriteMessages", 3)
	})

	t.Run("gives up", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		writer := new(MockKafkaWriter)
		writer.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		d := NewDispatcher(writer, nil, Config{MaxRetries: 2, RetryInterval: time.Millisecond}, logger.NewWithCore(core))
		d.deliver(scheduledEvent())

		writer.AssertNumberOfCalls(t, "WriteMessages", 3)
		assert.Equal(t, 1, logs.Len())
	})
}

func TestDispatcher_RealtimeFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	rt := new(MockRealtimeClient)
	rt.On("Push", mock.Anything, mock.Anything).Return(realtime.ErrUnavailable)

	d := NewDispatcher(nil, rt, Config{}, logger.NewWithCore(core))
	d.deliver(scheduledEvent())

	rt.AssertNumberOfCalls(t, "Push", 2)
	assert.Equal(t, 2, logs.Len())
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := NewDispatcher(nil, nil, Config{QueueSize: 1}, logger.NewWithCore(core))

	d.Dispatch(scheduledEvent())
	d.Dispatch(scheduledEvent())

	assert.Len(t, d.events, 1)
	assert.Equal(t, 1, logs.Len())
	d.Close()
}

func TestDispatcher_CloseDrainsQueue(t *testing.T) {
	writer := new(MockKafkaWriter)
	writer.On("WriteMessages", mock.Anything, mock.Anything).Return(nil)
	writer.On("Close").Return(nil).Once()

	d := NewDispatcher(writer, nil, Config{QueueSize: 8}, logger.NewNop())
	for i := 0; i < 3; i++ {
		d.Dispatch(scheduledEvent())
	}
	d.Start()
	d.Close()

	writer.AssertNumberOfCalls(t, "WriteMessages", 3)
	writer.AssertExpectations(t)
	require.Empty(t, d.events)
}

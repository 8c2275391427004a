package schedule_interview

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Am1ne12/JobConnect/internal/domain"
	interviewStorage "github.com/Am1ne12/JobConnect/internal/infra/storage/interview"
	"github.com/Am1ne12/JobConnect/internal/service/slots"
	"github.com/Am1ne12/JobConnect/internal/testutil/memstore"
	"github.com/Am1ne12/JobConnect/pkg/logger"
)

const (
	companyID  int64 = 1
	firstUser  int64 = 300
	secondUser int64 = 301
	firstApp   int64 = 11
	secondApp  int64 = 12
)

// Понедельник 13 января 2025, 14:00 UTC; ближайший доступный день - вторник
var (
	now       = time.Date(2025, 1, 13, 14, 0, 0, 0, time.UTC)
	tuesday10 = time.Date(2025, 1, 14, 10, 30, 0, 0, time.UTC)
)

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type recordingMetrics struct {
	mu       sync.Mutex
	outcomes []string
}

func (m *recordingMetrics) RecordInterviewOperation(_, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

// alwaysFree пропускает проверку слота, чтобы конфликт поймал уникальный индекс
type alwaysFree struct{ SlotService }

func (alwaysFree) IsSlotFree(context.Context, int64, time.Time) (bool, error) { return true, nil }

// serializationOnCheck имитирует 40001 при чтении занятости внутри транзакции
type serializationOnCheck struct{ SlotService }

func (serializationOnCheck) IsSlotFree(context.Context, int64, time.Time) (bool, error) {
	return false, fmt.Errorf("%w: GetSlotsForRange - load interviews: %w", slots.ErrInternal, &pq.Error{Code: "40001"})
}

// deadlockOnLock имитирует взаимную блокировку на advisory lock компании
type deadlockOnLock struct{ InterviewRepository }

func (deadlockOnLock) LockCompany(context.Context, int64) error {
	return fmt.Errorf("%w: %w", interviewStorage.ErrConcurrentUpdate, &pq.Error{Code: "40P01"})
}

type fixture struct {
	uc      *UseCase
	store   *memstore.Store
	events  *memstore.EventRecorder
	metrics *recordingMetrics
}

func newFixture(t *testing.T, wrap func(SlotService) SlotService) *fixture {
	t.Helper()

	store := memstore.New()
	store.AddCompany(domain.Company{ID: companyID, UserID: 100})
	store.AddCandidate(domain.CandidateProfile{ID: 7, UserID: firstUser})
	store.AddCandidate(domain.CandidateProfile{ID: 8, UserID: secondUser})
	store.AddApplication(domain.Application{ID: firstApp, CompanyID: companyID, CandidateProfileID: 7, Status: domain.ApplicationStatusSubmitted})
	store.AddApplication(domain.Application{ID: secondApp, CompanyID: companyID, CandidateProfileID: 8, Status: domain.ApplicationStatusSubmitted})
	for _, day := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday} {
		store.SetWeekday(companyID, day, "09:00", "18:00")
	}

	var slotService SlotService = slots.NewService(
		store.Availability(),
		store.InterviewRepo(),
		store.BlockedPeriods(),
		slots.Config{InterviewDuration: 90 * time.Minute, Location: time.UTC, MinNoticeDays: 1},
		logger.NewNop(),
	)
	if wrap != nil {
		slotService = wrap(slotService)
	}

	events := &memstore.EventRecorder{}
	metrics := &recordingMetrics{}
	uc := NewUseCase(
		store.Applications(),
		store.Profiles(),
		store.InterviewRepo(),
		slotService,
		store.TxManager(),
		events,
		metrics,
		logger.NewNop(),
	)
	uc.timeProvider = &fixedTime{now: now}

	return &fixture{uc: uc, store: store, events: events, metrics: metrics}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:        firstUser,
		ApplicationID: firstApp,
		ScheduledAt:   tuesday10,
	})
	require.NoError(t, err)

	assert.Equal(t, "Scheduled", resp.Status)
	assert.Equal(t, tuesday10, resp.ScheduledAt)
	assert.Equal(t, tuesday10.Add(90*time.Minute), resp.EndsAt)
	assert.Contains(t, resp.RoomID, domain.RoomIDPrefix)
	assert.Equal(t, domain.ApplicationStatusInterview, f.store.ApplicationStatus(firstApp))

	assert.Equal(t, []domain.EventType{domain.EventInterviewScheduled, domain.EventSlotBooked}, f.events.Types())
	scheduled := f.events.Events()[0]
	assert.ElementsMatch(t, []int64{100, firstUser}, scheduled.RecipientUserIDs)
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "foreign application",
			req:     &Request{UserID: secondUser, ApplicationID: firstApp, ScheduledAt: tuesday10},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "unknown application",
			req:     &Request{UserID: firstUser, ApplicationID: 999, ScheduledAt: tuesday10},
			wantErr: ErrApplicationNotFound,
		},
		{
			name:    "no candidate profile",
			req:     &Request{UserID: 100, ApplicationID: firstApp, ScheduledAt: tuesday10},
			wantErr: ErrProfileNotFound,
		},
		{
			name:    "off grid start",
			req:     &Request{UserID: firstUser, ApplicationID: firstApp, ScheduledAt: tuesday10.Add(-30 * time.Minute)},
			wantErr: ErrSlotNotAvailable,
		},
		{
			name:    "today is too early",
			req:     &Request{UserID: firstUser, ApplicationID: firstApp, ScheduledAt: time.Date(2025, 1, 13, 16, 30, 0, 0, time.UTC)},
			wantErr: ErrSlotNotAvailable,
		},
		{
			name:    "saturday",
			req:     &Request{UserID: firstUser, ApplicationID: firstApp, ScheduledAt: time.Date(2025, 1, 18, 10, 30, 0, 0, time.UTC)},
			wantErr: ErrSlotNotAvailable,
		},
		{
			name:    "missing start",
			req:     &Request{UserID: firstUser, ApplicationID: firstApp},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)

			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.store.Interviews())
			assert.Empty(t, f.events.Events())
			assert.Equal(t, domain.ApplicationStatusSubmitted, f.store.ApplicationStatus(firstApp))
		})
	}
}

func TestExecute_ConcurrentBookingsOneWins(t *testing.T) {
	cases := map[string]func(SlotService) SlotService{
		"slot check":   nil,
		"unique index": func(s SlotService) SlotService { return alwaysFree{s} },
	}

	for name, wrap := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, wrap)

			requests := []*Request{
				{UserID: firstUser, ApplicationID: firstApp, ScheduledAt: tuesday10},
				{UserID: secondUser, ApplicationID: secondApp, ScheduledAt: tuesday10},
			}

			errs := make([]error, len(requests))
			var wg sync.WaitGroup
			start := make(chan struct{})
			for i, req := range requests {
				wg.Add(1)
				go func(i int, req *Request) {
					defer wg.Done()
					<-start
					_, errs[i] = f.uc.Execute(context.Background(), req)
				}(i, req)
			}
			close(start)
			wg.Wait()

			var wins, conflicts int
			for _, err := range errs {
				switch {
				case err == nil:
					wins++
				case assert.ErrorIs(t, err, ErrSlotNotAvailable):
					conflicts++
				}
			}
			assert.Equal(t, 1, wins)
			assert.Equal(t, 1, conflicts)

			interviews := f.store.Interviews()
			require.Len(t, interviews, 1)
			assert.True(t, interviews[0].ScheduledAt.Equal(tuesday10))

			// Проигравший отклик остаётся в статусе Submitted
			loser := secondApp
			if interviews[0].ApplicationID == secondApp {
				loser = firstApp
			}
			assert.Equal(t, domain.ApplicationStatusSubmitted, f.store.ApplicationStatus(loser))
			assert.ElementsMatch(t, []string{"success", "conflict"}, f.metrics.outcomes)
		})
	}
}

func TestExecute_SlotBecomesFreeAfterCancellation(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	first, err := f.uc.Execute(ctx, &Request{UserID: firstUser, ApplicationID: firstApp, ScheduledAt: tuesday10})
	require.NoError(t, err)

	require.NoError(t, f.store.InterviewRepo().Cancel(ctx, first.ID, domain.InterviewStatusScheduled, "changed plans", now))

	second, err := f.uc.Execute(ctx, &Request{UserID: secondUser, ApplicationID: secondApp, ScheduledAt: tuesday10})
	require.NoError(t, err)
	assert.NotEqual(t, first.RoomID, second.RoomID)
}

func TestExecute_RetryableDatabaseErrorsAreConflicts(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
	}{
		{
			name:  "serialization failure on slot check",
			setup: func(f *fixture) { f.uc.slotService = serializationOnCheck{f.uc.slotService} },
		},
		{
			name:  "deadlock on company lock",
			setup: func(f *fixture) { f.uc.interviewRepo = deadlockOnLock{f.uc.interviewRepo} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			tt.setup(f)

			_, err := f.uc.Execute(context.Background(), &Request{
				UserID:        firstUser,
				ApplicationID: firstApp,
				ScheduledAt:   tuesday10,
			})
			require.ErrorIs(t, err, ErrSlotNotAvailable)
			assert.NotErrorIs(t, err, ErrInternal)

			assert.Empty(t, f.store.Interviews())
			assert.Equal(t, domain.ApplicationStatusSubmitted, f.store.ApplicationStatus(firstApp))
			assert.Equal(t, []string{"conflict"}, f.metrics.outcomes)
			assert.Empty(t, f.events.Events())
		})
	}
}

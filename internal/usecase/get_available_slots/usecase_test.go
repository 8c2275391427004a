package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Am1ne12/JobConnect/internal/domain"
	"github.com/Am1ne12/JobConnect/internal/service/slots"
	"github.com/Am1ne12/JobConnect/internal/testutil/memstore"
	"github.com/Am1ne12/JobConnect/pkg/logger"
	"github.com/Am1ne12/JobConnect/pkg/ptr"
)

const companyID int64 = 1

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

// Понедельник 13 января 2025, 14:00 UTC
var now = time.Date(2025, 1, 13, 14, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T, cfg Config) *UseCase {
	t.Helper()
	return newUseCaseIn(t, cfg, time.UTC)
}

func newUseCaseIn(t *testing.T, cfg Config, loc *time.Location) *UseCase {
	t.Helper()

	store := memstore.New()
	store.AddCompany(domain.Company{ID: companyID, UserID: 100})
	for _, day := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday} {
		store.SetWeekday(companyID, day, "09:00", "18:00")
	}

	slotService := slots.NewService(
		store.Availability(),
		store.InterviewRepo(),
		store.BlockedPeriods(),
		slots.Config{InterviewDuration: 90 * time.Minute, Location: loc, MinNoticeDays: 1},
		logger.NewNop(),
	)

	uc := NewUseCase(slotService, store.Profiles(), cfg, logger.NewNop())
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestExecute_Defaults(t *testing.T) {
	uc := newUseCase(t, Config{DefaultDays: 14, MaxDays: 60})

	resp, err := uc.Execute(context.Background(), &Request{CompanyID: companyID})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC), resp.StartDate)
	assert.Equal(t, 14, resp.Days)
	assert.Equal(t, 90, resp.DurationMinutes)
	// 14 дней со вторника: 10 рабочих дней по 6 слотов
	assert.Len(t, resp.Slots, 60)
	assert.Equal(t, time.Date(2025, 1, 14, 9, 0, 0, 0, time.UTC), resp.Slots[0].Start)
}

func TestExecute_TodayIsNotBookable(t *testing.T) {
	uc := newUseCase(t, Config{DefaultDays: 14, MaxDays: 60})

	resp, err := uc.Execute(context.Background(), &Request{
		CompanyID: companyID,
		StartDate: ptr.Ptr(now),
		Days:      1,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_StartDateInWesternTimezone(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	uc := newUseCaseIn(t, Config{DefaultDays: 14, MaxDays: 60}, est)

	// Так приходит startDate=2025-01-14 из query: полночь UTC
	resp, err := uc.Execute(context.Background(), &Request{
		CompanyID: companyID,
		StartDate: ptr.Ptr(time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)),
		Days:      1,
	})
	require.NoError(t, err)

	assert.True(t, resp.StartDate.Equal(time.Date(2025, 1, 14, 0, 0, 0, 0, est)))
	require.Len(t, resp.Slots, 6)
	assert.Equal(t, time.Tuesday, resp.Slots[0].Start.In(est).Weekday())
	assert.True(t, resp.Slots[0].Start.Equal(time.Date(2025, 1, 14, 9, 0, 0, 0, est)))
}

func TestExecute_DaysCapped(t *testing.T) {
	uc := newUseCase(t, Config{DefaultDays: 14, MaxDays: 7})

	resp, err := uc.Execute(context.Background(), &Request{CompanyID: companyID, Days: 30})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Days)
	assert.Len(t, resp.Slots, 30)
}

func TestExecute_Errors(t *testing.T) {
	uc := newUseCase(t, Config{DefaultDays: 14, MaxDays: 60})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{CompanyID: 42})
	assert.ErrorIs(t, err, ErrCompanyNotFound)

	_, err = uc.Execute(ctx, &Request{CompanyID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{CompanyID: companyID, Days: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

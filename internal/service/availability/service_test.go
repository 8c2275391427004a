package availability

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Am1ne12/JobConnect/internal/domain"
	"github.com/Am1ne12/JobConnect/internal/service/availability/models"
	"github.com/Am1ne12/JobConnect/internal/testutil/memstore"
	"github.com/Am1ne12/JobConnect/pkg/logger"
	"github.com/Am1ne12/JobConnect/pkg/ptr"
)

const (
	companyUserID int64 = 100
	otherUserID   int64 = 200
	companyID     int64 = 1
)

type fixture struct {
	svc    *Service
	store  *memstore.Store
	events *memstore.EventRecorder
	logs   *observer.ObservedLogs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memstore.New()
	store.AddCompany(domain.Company{ID: companyID, UserID: companyUserID, Name: "Acme"})
	store.AddCompany(domain.Company{ID: 2, UserID: otherUserID, Name: "Globex"})

	core, logs := observer.New(zap.DebugLevel)
	events := &memstore.EventRecorder{}

	svc := NewService(
		store.Availability(),
		store.BlockedPeriods(),
		store.Profiles(),
		store.TxManager(),
		events,
		logger.NewWithCore(core),
	)
	return &fixture{svc: svc, store: store, events: events, logs: logs}
}

func TestInitializeDefault(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tpl, err := f.svc.InitializeDefault(ctx, companyUserID)
	require.NoError(t, err)

	require.Len(t, tpl.Days, 5)
	for i, day := range tpl.Days {
		assert.Equal(t, i+1, day.DayOfWeek)
		assert.Equal(t, "09:00", day.StartTime)
		assert.Equal(t, "18:00", day.EndTime)
		assert.True(t, day.IsActive)
	}
	assert.Equal(t, []domain.EventType{domain.EventAvailabilityUpdated}, f.events.Types())

	_, err = f.svc.InitializeDefault(ctx, companyUserID)
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
}

func TestReplaceTemplate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.InitializeDefault(ctx, companyUserID)
	require.NoError(t, err)

	tpl, err := f.svc.ReplaceTemplate(ctx, &models.ReplaceTemplateRequest{
		UserID: companyUserID,
		Days: []models.DayRequest{
			{DayOfWeek: 1, StartTime: "10:00", EndTime: "16:00"},
			{DayOfWeek: 3, StartTime: "09:00", EndTime: "12:00", IsActive: ptr.Ptr(false)},
			{DayOfWeek: 6, StartTime: "09:00", EndTime: "12:00"},
		},
	})
	require.NoError(t, err)

	require.Len(t, tpl.Days, 2)
	assert.Equal(t, 1, tpl.Days[0].DayOfWeek)
	assert.Equal(t, "10:00", tpl.Days[0].StartTime)
	assert.Equal(t, 3, tpl.Days[1].DayOfWeek)
	assert.False(t, tpl.Days[1].IsActive)

	assert.Equal(t, 1, f.logs.FilterMessageSnippet("weekend entry dropped").Len())

	stored, err := f.svc.GetTemplate(ctx, companyUserID)
	require.NoError(t, err)
	assert.Equal(t, tpl.Days, stored.Days)
}

func TestReplaceTemplate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		days []models.DayRequest
	}{
		{"malformed time", []models.DayRequest{{DayOfWeek: 1, StartTime: "9am", EndTime: "18:00"}}},
		{"end before start", []models.DayRequest{{DayOfWeek: 1, StartTime: "18:00", EndTime: "09:00"}}},
		{"end equals start", []models.DayRequest{{DayOfWeek: 2, StartTime: "09:00", EndTime: "09:00"}}},
		{"duplicate weekday", []models.DayRequest{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
			{DayOfWeek: 1, StartTime: "13:00", EndTime: "18:00"},
		}},
		{"weekday out of range", []models.DayRequest{{DayOfWeek: 7, StartTime: "09:00", EndTime: "18:00"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.svc.ReplaceTemplate(context.Background(), &models.ReplaceTemplateRequest{
				UserID: companyUserID,
				Days:   tt.days,
			})
			assert.ErrorIs(t, err, ErrInvalidTemplate)
			assert.Empty(t, f.events.Events())
		})
	}
}

func TestGetTemplate_UnknownCompany(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.GetTemplate(context.Background(), 999)
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestBlockedPeriods(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	start := time.Date(2025, 1, 14, 12, 0, 0, 0, time.UTC)

	_, err := f.svc.CreateBlockedPeriod(ctx, &models.CreateBlockedPeriodRequest{
		UserID:    companyUserID,
		StartTime: start,
		EndTime:   start,
	})
	assert.ErrorIs(t, err, ErrInvalidBlockedPeriod)

	created, err := f.svc.CreateBlockedPeriod(ctx, &models.CreateBlockedPeriodRequest{
		UserID:    companyUserID,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Reason:    ptr.Ptr("Team offsite"),
	})
	require.NoError(t, err)
	assert.Equal(t, companyID, created.CompanyID)

	list, err := f.svc.ListBlockedPeriods(ctx, &models.ListBlockedPeriodsRequest{UserID: companyUserID})
	require.NoError(t, err)
	require.Len(t, list.BlockedPeriods, 1)

	outside, err := f.svc.ListBlockedPeriods(ctx, &models.ListBlockedPeriodsRequest{
		UserID: companyUserID,
		From:   ptr.Ptr(start.Add(3 * time.Hour)),
	})
	require.NoError(t, err)
	assert.Empty(t, outside.BlockedPeriods)

	err = f.svc.DeleteBlockedPeriod(ctx, otherUserID, created.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	require.NoError(t, f.svc.DeleteBlockedPeriod(ctx, companyUserID, created.ID))

	err = f.svc.DeleteBlockedPeriod(ctx, companyUserID, created.ID)
	assert.ErrorIs(t, err, ErrBlockedPeriodNotFound)

	assert.Equal(t, []domain.EventType{domain.EventAvailabilityUpdated, domain.EventAvailabilityUpdated}, f.events.Types())
}

func TestCreateBlockedPeriod_ReasonLengthInCharacters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	start := time.Date(2025, 1, 14, 12, 0, 0, 0, time.UTC)

	created, err := f.svc.CreateBlockedPeriod(ctx, &models.CreateBlockedPeriodRequest{
		UserID:    companyUserID,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Reason:    ptr.Ptr(strings.Repeat("ж", 300)),
	})
	require.NoError(t, err)
	require.NotNil(t, created.Reason)
	assert.Equal(t, strings.Repeat("ж", 300), *created.Reason)

	_, err = f.svc.CreateBlockedPeriod(ctx, &models.CreateBlockedPeriodRequest{
		UserID:    companyUserID,
		StartTime: start.Add(2 * time.Hour),
		EndTime:   start.Add(3 * time.Hour),
		Reason:    ptr.Ptr(strings.Repeat("ж", domain.MaxBlockedReasonLength+1)),
	})
	assert.ErrorIs(t, err, ErrInvalidBlockedPeriod)
}

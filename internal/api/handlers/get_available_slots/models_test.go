package get_available_slots

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Am1ne12/JobConnect/internal/usecase/get_available_slots"
)

func TestToUseCaseRequest(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		req, err := ToUseCaseRequest(url.Values{}, 300, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(10), req.CompanyID)
		assert.Nil(t, req.StartDate)
		assert.Zero(t, req.Days)
	})

	t.Run("explicit range", func(t *testing.T) {
		req, err := ToUseCaseRequest(url.Values{"startDate": {"2026-03-02"}, "days": {"7"}}, 300, 10)
		require.NoError(t, err)
		require.NotNil(t, req.StartDate)
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), *req.StartDate)
		assert.Equal(t, 7, req.Days)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := ToUseCaseRequest(url.Values{"startDate": {"02.03.2026"}}, 300, 10)
		assert.Error(t, err)
	})

	t.Run("bad days", func(t *testing.T) {
		_, err := ToUseCaseRequest(url.Values{"days": {"week"}}, 300, 10)
		assert.Error(t, err)
	})
}

func TestFromUseCaseResponse(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	resp := FromUseCaseResponse(&get_available_slots.Response{
		CompanyID:       10,
		StartDate:       start,
		Days:            1,
		DurationMinutes: 90,
		Slots:           []get_available_slots.Slot{{Start: start, End: start.Add(90 * time.Minute)}},
	})

	assert.Equal(t, "2026-03-02", resp.StartDate)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, start.Add(90*time.Minute), resp.Slots[0].End)
}

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "hours and minutes", input: "09:00", want: "09:00"},
		{name: "postgres time column", input: "18:30:00", want: "18:30"},
		{name: "single digit hour", input: "9:00", wantErr: true},
		{name: "single digit minute", input: "09:5", wantErr: true},
		{name: "single digit hour in time column", input: "9:00:00", wantErr: true},
		{name: "garbage", input: "nine", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("09:00").Validate())
	assert.NoError(t, TimeString("23:59").Validate())
	assert.ErrorIs(t, TimeString("9:00").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("09:00:00").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("24:00").Validate(), ErrInvalidTimeString)

	_, err := TimeString("9:00").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), got)

	_, err = TimeString("23:00").AddMinutes(90)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("18:00"))
	assert.False(t, TimeString("18:00").IsBefore("18:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.False(t, TimeString("bad").IsAfter("09:00"))
}

func TestTimeString_On(t *testing.T) {
	loc := time.FixedZone("ref", 3600)
	date := time.Date(2026, time.March, 3, 22, 15, 0, 0, loc)

	got, err := TimeString("13:30").On(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 3, 13, 30, 0, 0, loc), got)
}

func TestTimeString_ScanValue(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan([]byte("16:30:00")))
	assert.Equal(t, TimeString("16:30"), ts)

	v, err := ts.Value()
	require.NoError(t, err)
	assert.Equal(t, "16:30:00", v)

	assert.Error(t, ts.Scan(42))
}

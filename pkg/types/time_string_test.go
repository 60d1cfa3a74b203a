package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"09:00", false},
		{"00:00", false},
		{"23:59", false},
		{"24:00", true},
		{"9:00", true},
		{"09:60", true},
		{"0900", true},
		{"", true},
		{"ab:cd", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input, ts.String())
			}
		})
	}
}

func TestTimeStringCompare(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("17:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("09:45")

	got, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	// Ровно до конца суток
	got, err = TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, EndOfDay, got)

	// Выход за границу суток
	_, err = TimeString("23:30").AddMinutes(31)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, TimeString("08:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 15, 14, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:45"), ts)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 1, 15, 9, 5, 0, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

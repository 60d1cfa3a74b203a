package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(DateFormat, value)
	require.NoError(t, err)
	return date
}

func mustInterval(t *testing.T, start string, durationMinutes int) Interval {
	t.Helper()
	iv, err := NewInterval(types.TimeString(start), durationMinutes)
	require.NoError(t, err)
	return iv
}

func TestNewInterval(t *testing.T) {
	iv := mustInterval(t, "10:00", 60)
	assert.Equal(t, types.TimeString("10:00"), iv.Start)
	assert.Equal(t, types.TimeString("11:00"), iv.End)

	// Выход за полночь усекается до конца суток
	iv = mustInterval(t, "23:30", 60)
	assert.Equal(t, types.EndOfDay, iv.End)

	_, err := NewInterval(types.TimeString("10:00"), 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewInterval(types.TimeString("25:00"), 30)
	assert.Error(t, err)
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "partial overlap",
			a:    mustInterval(t, "10:00", 60),
			b:    mustInterval(t, "10:30", 60),
			want: true,
		},
		{
			name: "contained",
			a:    mustInterval(t, "10:00", 60),
			b:    mustInterval(t, "10:15", 30),
			want: true,
		},
		{
			name: "identical",
			a:    mustInterval(t, "10:00", 30),
			b:    mustInterval(t, "10:00", 30),
			want: true,
		},
		{
			// Конец одного ровно в начале другого: интервалы граничат, но не пересекаются
			name: "touching end to start",
			a:    mustInterval(t, "10:00", 60),
			b:    mustInterval(t, "11:00", 60),
			want: false,
		},
		{
			name: "touching start to end",
			a:    mustInterval(t, "11:00", 60),
			b:    mustInterval(t, "10:00", 60),
			want: false,
		},
		{
			name: "disjoint",
			a:    mustInterval(t, "09:00", 30),
			b:    mustInterval(t, "15:00", 30),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestIntervalOverlapsAny(t *testing.T) {
	occupied := []Interval{
		mustInterval(t, "10:00", 60),
		mustInterval(t, "14:00", 30),
	}

	assert.True(t, mustInterval(t, "10:30", 30).OverlapsAny(occupied))
	assert.False(t, mustInterval(t, "11:00", 60).OverlapsAny(occupied))
	assert.False(t, mustInterval(t, "09:00", 60).OverlapsAny(occupied))
	assert.False(t, mustInterval(t, "09:00", 30).OverlapsAny(nil))
}

func TestDayOfWeek(t *testing.T) {
	// 2026-08-31 понедельник
	assert.Equal(t, 0, DayOfWeek(mustDate(t, "2026-08-31")))
	// 2026-09-05 суббота
	assert.Equal(t, 5, DayOfWeek(mustDate(t, "2026-09-05")))
	// 2026-09-06 воскресенье
	assert.Equal(t, 6, DayOfWeek(mustDate(t, "2026-09-06")))
}

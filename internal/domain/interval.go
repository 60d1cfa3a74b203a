package domain

import (
	"errors"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Interval полуоткрытый интервал времени [Start, End) в пределах одних суток
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// ErrInvalidInterval возвращается при попытке построить интервал с Start >= End
var ErrInvalidInterval = errors.New("domain: interval start must be before end")

// NewInterval строит интервал [start, start+durationMinutes).
// Интервал, выходящий за полночь, усекается до конца суток.
func NewInterval(start types.TimeString, durationMinutes int) (Interval, error) {
	if err := start.Validate(); err != nil {
		return Interval{}, err
	}

	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		end = types.EndOfDay
	}

	if !start.IsBefore(end) {
		return Interval{}, ErrInvalidInterval
	}

	return Interval{Start: start, End: end}, nil
}

// Overlaps возвращает true, если интервалы действительно пересекаются.
// Единственное каноническое определение пересечения для всей системы:
// a.Start < b.End && b.Start < a.End (строгие неравенства).
// Интервалы, которые ровно граничат (a.End == b.Start), НЕ пересекаются.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start.IsBefore(b.End) && b.Start.IsBefore(a.End)
}

// OverlapsAny возвращает true, если интервал пересекается хотя бы с одним из occupied
func (a Interval) OverlapsAny(occupied []Interval) bool {
	for _, b := range occupied {
		if a.Overlaps(b) {
			return true
		}
	}
	return false
}

package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// occupiedIntervals строит список занятых интервалов по активным записям.
// Запись с нечитаемым временем начала делает занятость невычислимой:
// молча освободить её слот нельзя, сборка завершается ErrInvalidRecord.
// Выход интервала за границу суток ошибкой не является — он усекается
// до конца суток ещё в domain.NewInterval.
func occupiedIntervals(appointments []*domain.Appointment) ([]domain.Interval, error) {
	occupied := make([]domain.Interval, 0, len(appointments))

	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		iv, err := domain.NewInterval(appt.StartTime, appt.EffectiveDuration())
		if err != nil {
			return nil, fmt.Errorf("%w: appointment id=%s has unparseable start time %q",
				ErrInvalidRecord, appt.ID, string(appt.StartTime))
		}
		occupied = append(occupied, iv)
	}

	return occupied, nil
}

// generateSlots генерирует доступные слоты на день.
// Кандидаты идут от открытия с фиксированным шагом domain.SlotStepMinutes.
// Кандидат принимается, только если услуга целиком помещается до закрытия
// и её интервал не пересекается ни с одной занятой записью.
//
// Не помещающийся кандидат пропускается, но перебор продолжается:
// при длинной услуге более поздний кандидат всё равно не поместится,
// но ранний пропуск из-за пересечения не должен обрывать список.
func generateSlots(
	openTime, closeTime types.TimeString,
	durationMinutes int,
	occupied []domain.Interval,
) []types.TimeString {
	slots := make([]types.TimeString, 0)

	for current := openTime; current.IsBefore(closeTime); {
		candidateEnd, err := current.AddMinutes(durationMinutes)

		next, stepErr := current.AddMinutes(domain.SlotStepMinutes)
		if stepErr != nil {
			// Шаг вышел за границу суток, кандидатов больше нет
			break
		}

		if err != nil || candidateEnd.IsAfter(closeTime) {
			// Услуга не помещается до закрытия
			current = next
			continue
		}

		candidate := domain.Interval{Start: current, End: candidateEnd}
		if !candidate.OverlapsAny(occupied) {
			slots = append(slots, current)
		}

		current = next
	}

	return slots
}

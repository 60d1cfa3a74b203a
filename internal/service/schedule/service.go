package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	storage "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Service сервис управления расписанием: часы работы и закрытые даты
type Service struct {
	repo Repository
	logs Logger
}

func NewService(repo Repository, logs Logger) *Service {
	return &Service{
		repo: repo,
		logs: logs,
	}
}

// ListHours возвращает часы работы на все дни недели
func (s *Service) ListHours(ctx context.Context, tenantID string) ([]*domain.BusinessHours, error) {
	hours, err := s.repo.ListHours(ctx, tenantID)
	if err != nil {
		s.logs.Error("schedule.ListHours: failed for tenant %s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return hours, nil
}

// UpdateHours обновляет часы работы по списку дней. Невалидный день
// отклоняет весь запрос, частичного применения нет.
func (s *Service) UpdateHours(ctx context.Context, tenantID string, days []DayHours) error {
	updates := make([]*domain.BusinessHours, 0, len(days))
	for _, d := range days {
		h, err := buildDayHours(tenantID, d)
		if err != nil {
			return err
		}
		updates = append(updates, h)
	}

	for _, h := range updates {
		if err := s.repo.UpdateHours(ctx, h); err != nil {
			s.logs.Error("schedule.UpdateHours: failed for tenant %s day %d: %v", tenantID, h.DayOfWeek, err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	s.logs.Info("schedule.UpdateHours: updated %d days for tenant %s", len(updates), tenantID)
	return nil
}

// ListClosedDates возвращает закрытые даты тенанта
func (s *Service) ListClosedDates(ctx context.Context, tenantID string) ([]*domain.ClosedDate, error) {
	dates, err := s.repo.ListClosedDates(ctx, tenantID)
	if err != nil {
		s.logs.Error("schedule.ListClosedDates: failed for tenant %s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return dates, nil
}

// AddClosedDate помечает дату как выходной
func (s *Service) AddClosedDate(ctx context.Context, tenantID string, date time.Time) error {
	if err := s.repo.AddClosedDate(ctx, tenantID, date); err != nil {
		if errors.Is(err, storage.ErrDateAlreadyClosed) {
			return ErrDateAlreadyClosed
		}
		s.logs.Error("schedule.AddClosedDate: failed for tenant %s date %s: %v",
			tenantID, date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return nil
}

// RemoveClosedDate снимает отметку выходного с даты
func (s *Service) RemoveClosedDate(ctx context.Context, tenantID string, date time.Time) error {
	if err := s.repo.RemoveClosedDate(ctx, tenantID, date); err != nil {
		if errors.Is(err, storage.ErrClosedDateNotFound) {
			return ErrClosedDateNotFound
		}
		s.logs.Error("schedule.RemoveClosedDate: failed for tenant %s date %s: %v",
			tenantID, date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return nil
}

func buildDayHours(tenantID string, d DayHours) (*domain.BusinessHours, error) {
	if d.DayOfWeek < 0 || d.DayOfWeek > 6 {
		return nil, fmt.Errorf("%w: day_of_week must be between 0 and 6", ErrInvalidInput)
	}

	h := &domain.BusinessHours{
		TenantID:  tenantID,
		DayOfWeek: d.DayOfWeek,
		IsOpen:    d.IsOpen,
	}
	if !d.IsOpen {
		return h, nil
	}

	open, err := types.NewTimeStringFromString(d.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid open_time for day %d", ErrInvalidInput, d.DayOfWeek)
	}
	closeT, err := types.NewTimeStringFromString(d.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid close_time for day %d", ErrInvalidInput, d.DayOfWeek)
	}
	if !open.IsBefore(closeT) {
		return nil, fmt.Errorf("%w: close_time must be after open_time for day %d", ErrInvalidInput, d.DayOfWeek)
	}

	h.OpenTime = &open
	h.CloseTime = &closeT
	return h, nil
}

package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	storage "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
)

// Service сервис управления записями владельца бизнеса
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

// List возвращает активные записи тенанта, новые даты первыми
func (s *Service) List(ctx context.Context, tenantID string) ([]*domain.Appointment, error) {
	appts, err := s.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		s.logs.Error("appointments.List: failed for tenant %s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return appts, nil
}

// Cancel отменяет запись. Запись остаётся в истории, слот освобождается.
func (s *Service) Cancel(ctx context.Context, tenantID, appointmentID string) error {
	appt, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, storage.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logs.Error("appointments.Cancel: failed to get appointment %s: %v", appointmentID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	// Чужие записи неотличимы от несуществующих
	if appt.TenantID != tenantID {
		return ErrAppointmentNotFound
	}
	if !appt.CanBeCancelled() {
		return ErrAlreadyCancelled
	}

	if err := s.repo.UpdateStatus(ctx, appointmentID, domain.StatusCancelled); err != nil {
		if errors.Is(err, storage.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logs.Error("appointments.Cancel: failed to update status for %s: %v", appointmentID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logs.Info("appointments.Cancel: appointment %s cancelled by tenant %s", appointmentID, tenantID)
	return nil
}

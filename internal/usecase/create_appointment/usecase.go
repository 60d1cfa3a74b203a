package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptStorage "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	catalogStorage "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
)

// UseCase use case для создания записи владельцем бизнеса.
// В отличие от публичной записи: тенант берётся из авторизационного
// контекста, запись сразу подтверждена, уведомления не отправляются.
type UseCase struct {
	catalogRepo     CatalogRepository
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:     catalogRepo,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи владельцем
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: tenant=%s, service=%s, date=%s, time=%s",
		req.TenantID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу и проверяем принадлежность тенанту
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogStorage.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.TenantID != req.TenantID || !service.Active {
		uc.logger.Warn("CreateAppointment: service id=%s not available for tenant %s", req.ServiceID, req.TenantID)
		return nil, ErrServiceNotFound
	}

	// 3. Строим интервал записи
	interval, err := domain.NewInterval(req.StartTime, service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateAppointment: invalid interval at %s: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 4. Проверяем закрытые даты и часы работы
	closed, err := uc.scheduleRepo.IsClosedDate(ctx, req.TenantID, req.Date)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to check closed date: %v", err)
		return nil, fmt.Errorf("%w: failed to check closed date: %v", ErrInternal, err)
	}
	if closed {
		uc.logger.Warn("CreateAppointment: tenant %s is closed on %s",
			req.TenantID, req.Date.Format(domain.DateFormat))
		return nil, ErrTenantClosed
	}

	hours, err := uc.scheduleRepo.GetHours(ctx, req.TenantID, domain.DayOfWeek(req.Date))
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}
	if !hours.IsOpen || hours.OpenTime == nil || hours.CloseTime == nil {
		uc.logger.Warn("CreateAppointment: tenant %s is not open on %s",
			req.TenantID, req.Date.Format(domain.DateFormat))
		return nil, ErrTenantClosed
	}
	if interval.Start.IsBefore(*hours.OpenTime) || interval.End.IsAfter(*hours.CloseTime) {
		uc.logger.Warn("CreateAppointment: interval %s-%s outside business hours %s-%s",
			interval.Start, interval.End, *hours.OpenTime, *hours.CloseTime)
		return nil, ErrOutsideBusinessHours
	}

	now := uc.timeProvider.Now()
	appointment := &domain.Appointment{
		ID:              uuid.NewString(),
		TenantID:        req.TenantID,
		ServiceID:       req.ServiceID,
		ServiceName:     service.Name,
		DurationMinutes: service.DurationMinutes,
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		ClientEmail:     req.ClientEmail,
		Date:            req.Date,
		StartTime:       req.StartTime,
		Status:          domain.StatusConfirmed,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// 5. Проверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.appointmentRepo.ListByTenantAndDate(txCtx, req.TenantID, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		occupied, err := occupiedIntervals(existing)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to build occupancy for tenant=%s: %v", req.TenantID, err)
			return err
		}
		if interval.OverlapsAny(occupied) {
			uc.logger.Warn("CreateAppointment: slot %s-%s conflicts with existing appointment",
				interval.Start, interval.End)
			return ErrSlotConflict
		}

		if err := uc.appointmentRepo.Create(txCtx, appointment); err != nil {
			if errors.Is(err, apptStorage.ErrSlotTaken) {
				return ErrSlotConflict
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", appointment.ID)

	return &Response{
		ID:              appointment.ID,
		TenantID:        appointment.TenantID,
		ServiceID:       appointment.ServiceID,
		ServiceName:     appointment.ServiceName,
		DurationMinutes: appointment.DurationMinutes,
		ClientName:      appointment.ClientName,
		ClientPhone:     appointment.ClientPhone,
		ClientEmail:     appointment.ClientEmail,
		Date:            appointment.Date,
		StartTime:       appointment.StartTime,
		Status:          string(appointment.Status),
		CreatedAt:       appointment.CreatedAt,
	}, nil
}

// occupiedIntervals строит список занятых интервалов по активным записям.
// Запись с нечитаемым временем начала делает занятость невычислимой,
// сборка завершается ErrInvalidRecord вместо молчаливого освобождения слота.
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

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.TenantID) == "" {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, string(req.StartTime))
	}
	return nil
}

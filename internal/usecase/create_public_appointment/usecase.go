package create_public_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptStorage "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	catalogStorage "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	tenantsvc "github.com/m04kA/SMC-AppointmentService/internal/service/tenants"
)

// Config настройки use case
type Config struct {
	// RequireActiveAccess включает проверку подписки/триала владельца
	// при публичной записи
	RequireActiveAccess bool
}

// UseCase use case для создания записи с публичной страницы
type UseCase struct {
	resolver        TenantResolver
	catalogRepo     CatalogRepository
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	notifier        Notifier
	timeProvider    TimeProvider
	cfg             Config
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resolver TenantResolver,
	catalogRepo CatalogRepository,
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	notifier Notifier,
	cfg Config,
	logger Logger,
) *UseCase {
	return &UseCase{
		resolver:        resolver,
		catalogRepo:     catalogRepo,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		notifier:        notifier,
		timeProvider:    &RealTimeProvider{},
		cfg:             cfg,
		logger:          logger,
	}
}

// Execute выполняет use case создания публичной записи.
// Проверка занятости и вставка идут в сериализуемой транзакции
// с блокировкой записей на дату, чтобы исключить гонку двух броней.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePublicAppointment: tenant=%s, service=%s, date=%s, time=%s",
		req.TenantSegment, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreatePublicAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Резолвим сегмент пути в тенанта
	tenant, err := uc.resolver.Resolve(ctx, req.TenantSegment)
	if err != nil {
		if errors.Is(err, tenantsvc.ErrTenantNotFound) {
			uc.logger.Warn("CreatePublicAppointment: tenant segment %q not found", req.TenantSegment)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("CreatePublicAppointment: failed to resolve tenant %q: %v", req.TenantSegment, err)
		return nil, fmt.Errorf("%w: failed to resolve tenant: %v", ErrInternal, err)
	}

	// 3. Политика доступа: по умолчанию публичная запись не требует
	// активной подписки владельца, поведение включается конфигом
	now := uc.timeProvider.Now()
	if uc.cfg.RequireActiveAccess && !tenant.IsAccessAllowed(now) {
		uc.logger.Warn("CreatePublicAppointment: tenant %s access expired", tenant.ID)
		return nil, ErrAccessExpired
	}

	// 4. Получаем услугу и проверяем принадлежность тенанту
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogStorage.ErrServiceNotFound) {
			uc.logger.Warn("CreatePublicAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreatePublicAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.TenantID != tenant.ID || !service.Active {
		uc.logger.Warn("CreatePublicAppointment: service id=%s not available for tenant %s", req.ServiceID, tenant.ID)
		return nil, ErrServiceNotFound
	}

	// 5. Строим интервал записи
	interval, err := domain.NewInterval(req.StartTime, service.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreatePublicAppointment: invalid interval at %s: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 6. Проверяем, не закрыта ли дата вручную
	closed, err := uc.scheduleRepo.IsClosedDate(ctx, tenant.ID, req.Date)
	if err != nil {
		uc.logger.Error("CreatePublicAppointment: failed to check closed date: %v", err)
		return nil, fmt.Errorf("%w: failed to check closed date: %v", ErrInternal, err)
	}
	if closed {
		uc.logger.Warn("CreatePublicAppointment: tenant %s is closed on %s",
			tenant.ID, req.Date.Format(domain.DateFormat))
		return nil, ErrTenantClosed
	}

	// 7. Проверяем часы работы на день недели
	hours, err := uc.scheduleRepo.GetHours(ctx, tenant.ID, domain.DayOfWeek(req.Date))
	if err != nil {
		uc.logger.Error("CreatePublicAppointment: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}
	if !hours.IsOpen || hours.OpenTime == nil || hours.CloseTime == nil {
		uc.logger.Warn("CreatePublicAppointment: tenant %s is not open on %s",
			tenant.ID, req.Date.Format(domain.DateFormat))
		return nil, ErrTenantClosed
	}
	if err := validateWithinHours(interval, *hours.OpenTime, *hours.CloseTime); err != nil {
		uc.logger.Warn("CreatePublicAppointment: interval %s-%s outside business hours %s-%s",
			interval.Start, interval.End, *hours.OpenTime, *hours.CloseTime)
		return nil, err
	}

	appointment := &domain.Appointment{
		ID:              uuid.NewString(),
		TenantID:        tenant.ID,
		ServiceID:       req.ServiceID,
		ServiceName:     service.Name,
		DurationMinutes: service.DurationMinutes,
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		ClientEmail:     req.ClientEmail,
		Date:            req.Date,
		StartTime:       req.StartTime,
		Status:          domain.StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// 8. Проверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Получаем активные записи на дату с блокировкой FOR UPDATE
		existing, err := uc.appointmentRepo.ListByTenantAndDate(txCtx, tenant.ID, req.Date)
		if err != nil {
			uc.logger.Error("CreatePublicAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 8.2. Интервал не должен пересекаться ни с одной занятой записью.
		// Граничащие интервалы (конец одного = начало другого) допустимы.
		occupied, err := occupiedIntervals(existing)
		if err != nil {
			uc.logger.Error("CreatePublicAppointment: failed to build occupancy for tenant=%s: %v", tenant.ID, err)
			return err
		}
		if interval.OverlapsAny(occupied) {
			uc.logger.Warn("CreatePublicAppointment: slot %s-%s conflicts with existing appointment",
				interval.Start, interval.End)
			return ErrSlotConflict
		}

		// 8.3. Сохраняем запись. Частичный уникальный индекс по
		// (tenant_id, date, start_time) страхует от гонки на уровне БД.
		if err := uc.appointmentRepo.Create(txCtx, appointment); err != nil {
			if errors.Is(err, apptStorage.ErrSlotTaken) {
				return ErrSlotConflict
			}
			uc.logger.Error("CreatePublicAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreatePublicAppointment: successfully created appointment id=%s", appointment.ID)

	// 9. Уведомления не влияют на результат записи
	uc.notifyAsync(appointment, tenant)

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

// notifyAsync отправляет письма клиенту и владельцу в фоне
func (uc *UseCase) notifyAsync(appt *domain.Appointment, tenant *domain.Tenant) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if appt.ClientEmail != "" {
			if err := uc.notifier.SendAppointmentConfirmation(ctx, appt, tenant.BusinessName); err != nil {
				uc.logger.Warn("CreatePublicAppointment: failed to send client confirmation for %s: %v", appt.ID, err)
			}
		}
		if err := uc.notifier.SendOwnerNotification(ctx, appt, tenant.Email); err != nil {
			uc.logger.Warn("CreatePublicAppointment: failed to send owner notification for %s: %v", appt.ID, err)
		}
	}()
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

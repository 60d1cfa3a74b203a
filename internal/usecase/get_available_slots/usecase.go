package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	storage "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	tenantsvc "github.com/m04kA/SMC-AppointmentService/internal/service/tenants"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UseCase use case для получения доступных слотов записи
type UseCase struct {
	resolver        TenantResolver
	catalogRepo     CatalogRepository
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resolver TenantResolver,
	catalogRepo CatalogRepository,
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		resolver:        resolver,
		catalogRepo:     catalogRepo,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: tenant=%s, service=%s, date=%s",
		req.TenantSegment, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Резолвим сегмент пути в тенанта (сначала slug, затем id)
	tenant, err := uc.resolver.Resolve(ctx, req.TenantSegment)
	if err != nil {
		if errors.Is(err, tenantsvc.ErrTenantNotFound) {
			uc.logger.Warn("GetAvailableSlots: tenant segment %q not found", req.TenantSegment)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to resolve tenant %q: %v", req.TenantSegment, err)
		return nil, fmt.Errorf("%w: failed to resolve tenant: %v", ErrInternal, err)
	}

	// 3. Получаем услугу и проверяем принадлежность тенанту
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, storage.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	// Чужие и деактивированные услуги для публичной выдачи не существуют
	if service.TenantID != tenant.ID || !service.Active {
		uc.logger.Warn("GetAvailableSlots: service id=%s not available for tenant %s", req.ServiceID, tenant.ID)
		return nil, ErrServiceNotFound
	}

	// 4. Проверяем, не закрыта ли дата вручную
	closed, err := uc.scheduleRepo.IsClosedDate(ctx, tenant.ID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to check closed date: %v", err)
		return nil, fmt.Errorf("%w: failed to check closed date: %v", ErrInternal, err)
	}
	if closed {
		uc.logger.Info("GetAvailableSlots: tenant %s is closed on %s", tenant.ID, req.Date.Format(domain.DateFormat))
		return closedResponse(tenant.ID, req, service.DurationMinutes), nil
	}

	// 5. Получаем часы работы на день недели
	hours, err := uc.scheduleRepo.GetHours(ctx, tenant.ID, domain.DayOfWeek(req.Date))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}
	if !hours.IsOpen || hours.OpenTime == nil || hours.CloseTime == nil {
		uc.logger.Info("GetAvailableSlots: tenant %s is not open on %s", tenant.ID, req.Date.Format(domain.DateFormat))
		return closedResponse(tenant.ID, req, service.DurationMinutes), nil
	}

	// 6. Получаем все активные записи на эту дату
	appointments, err := uc.appointmentRepo.ListByTenantAndDate(ctx, tenant.ID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Генерируем слоты с учетом занятости
	occupied, err := occupiedIntervals(appointments)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to build occupancy for tenant=%s: %v", tenant.ID, err)
		return nil, err
	}
	slots := generateSlots(*hours.OpenTime, *hours.CloseTime, service.DurationMinutes, occupied)

	uc.logger.Info("GetAvailableSlots: generated %d slots for tenant=%s, service=%s, date=%s",
		len(slots), tenant.ID, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		TenantID:        tenant.ID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}

func closedResponse(tenantID string, req *Request, durationMinutes int) *Response {
	return &Response{
		TenantID:        tenantID,
		ServiceID:       req.ServiceID,
		Date:            req.Date,
		DurationMinutes: durationMinutes,
		Slots:           []types.TimeString{},
		Reason:          domain.ReasonClosed,
	}
}

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	storage "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
)

// Service сервис управления каталогом услуг тенанта
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

// List возвращает услуги тенанта. onlyActive скрывает деактивированные.
func (s *Service) List(ctx context.Context, tenantID string, onlyActive bool) ([]*domain.Service, error) {
	services, err := s.repo.ListByTenant(ctx, tenantID, onlyActive)
	if err != nil {
		s.logs.Error("catalog.List: failed to list services for tenant %s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return services, nil
}

// Create создаёт новую услугу тенанта
func (s *Service) Create(ctx context.Context, tenantID string, req CreateServiceRequest) (*domain.Service, error) {
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultServiceDurationMinutes
	}
	if err := validateDuration(duration); err != nil {
		return nil, err
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	now := time.Now().UTC()
	svc := &domain.Service{
		ID:              uuid.NewString(),
		TenantID:        tenantID,
		Name:            strings.TrimSpace(req.Name),
		Description:     strings.TrimSpace(req.Description),
		DurationMinutes: duration,
		Price:           req.Price,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		s.logs.Error("catalog.Create: failed to create service for tenant %s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logs.Info("catalog.Create: service %s created for tenant %s", svc.ID, tenantID)
	return svc, nil
}

// Update частично обновляет услугу. Услуга должна принадлежать тенанту.
func (s *Service) Update(ctx context.Context, tenantID, serviceID string, req UpdateServiceRequest) (*domain.Service, error) {
	svc, err := s.repo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, storage.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logs.Error("catalog.Update: failed to get service %s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if svc.TenantID != tenantID {
		return nil, ErrServiceNotFound
	}

	if req.Name != nil {
		if err := validateName(*req.Name); err != nil {
			return nil, err
		}
		svc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		svc.Description = strings.TrimSpace(*req.Description)
	}
	if req.DurationMinutes != nil {
		if err := validateDuration(*req.DurationMinutes); err != nil {
			return nil, err
		}
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
		}
		svc.Price = *req.Price
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}
	svc.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, svc); err != nil {
		if errors.Is(err, storage.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logs.Error("catalog.Update: failed to update service %s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return svc, nil
}

// Deactivate мягко удаляет услугу: запись остаётся, брони сохраняют историю
func (s *Service) Deactivate(ctx context.Context, tenantID, serviceID string) error {
	if err := s.repo.Deactivate(ctx, tenantID, serviceID); err != nil {
		if errors.Is(err, storage.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		s.logs.Error("catalog.Deactivate: failed to deactivate service %s: %v", serviceID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logs.Info("catalog.Deactivate: service %s deactivated for tenant %s", serviceID, tenantID)
	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return nil
}

func validateDuration(minutes int) error {
	if minutes < domain.MinServiceDurationMinutes || minutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	return nil
}

package tenants

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/tenant"
)

// slugPattern допустимый алфавит псевдонима: строчные латинские буквы,
// цифры и дефис
var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Service сервис аккаунтов с публичной стороны: разрешение публичного
// идентификатора, витрина бизнеса и управление псевдонимом
type Service struct {
	tenantRepo   TenantRepository
	catalogRepo  CatalogRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	tenantRepo TenantRepository,
	catalogRepo CatalogRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *Service {
	return &Service{
		tenantRepo:   tenantRepo,
		catalogRepo:  catalogRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Resolve разрешает публичный сегмент пути в аккаунт.
// Сначала ищет по псевдониму; если не нашёл — трактует сегмент
// как сырой ID аккаунта.
func (s *Service) Resolve(ctx context.Context, segment string) (*domain.Tenant, error) {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return nil, ErrTenantNotFound
	}

	t, err := s.tenantRepo.GetBySlug(ctx, segment)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, tenantRepo.ErrTenantNotFound) {
		s.logger.Error("Resolve: slug lookup failed for %q: %v", segment, err)
		return nil, fmt.Errorf("%w: slug lookup failed: %v", ErrInternal, err)
	}

	t, err = s.tenantRepo.GetByID(ctx, segment)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			s.logger.Warn("Resolve: no tenant for segment %q", segment)
			return nil, ErrTenantNotFound
		}
		s.logger.Error("Resolve: id lookup failed for %q: %v", segment, err)
		return nil, fmt.Errorf("%w: id lookup failed: %v", ErrInternal, err)
	}

	return t, nil
}

// UpdateSlug устанавливает публичный псевдоним аккаунта.
// Вход нормализуется (trim + lowercase), затем проверяется длина
// и алфавит; занятость проверяет уникальный индекс в БД.
// Возвращает нормализованный псевдоним.
func (s *Service) UpdateSlug(ctx context.Context, tenantID, raw string) (string, error) {
	slug := strings.ToLower(strings.TrimSpace(raw))

	if len(slug) < domain.MinSlugLength {
		return "", fmt.Errorf("%w: must be at least %d characters", ErrInvalidSlug, domain.MinSlugLength)
	}
	if !slugPattern.MatchString(slug) {
		return "", fmt.Errorf("%w: only lowercase letters, digits and hyphens are allowed", ErrInvalidSlug)
	}

	if err := s.tenantRepo.UpdateSlug(ctx, tenantID, slug); err != nil {
		switch {
		case errors.Is(err, tenantRepo.ErrSlugTaken):
			s.logger.Warn("UpdateSlug: slug %q already taken (tenant=%s)", slug, tenantID)
			return "", ErrSlugTaken
		case errors.Is(err, tenantRepo.ErrTenantNotFound):
			return "", ErrTenantNotFound
		default:
			s.logger.Error("UpdateSlug: failed for tenant=%s: %v", tenantID, err)
			return "", fmt.Errorf("%w: failed to update slug: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateSlug: tenant=%s now reachable as %q", tenantID, slug)
	return slug, nil
}

// GetPublicProfile возвращает публичную витрину бизнеса по сегменту пути
func (s *Service) GetPublicProfile(ctx context.Context, segment string) (*PublicProfile, error) {
	t, err := s.Resolve(ctx, segment)
	if err != nil {
		return nil, err
	}

	services, err := s.catalogRepo.ListByTenant(ctx, t.ID, true)
	if err != nil {
		s.logger.Error("GetPublicProfile: failed to list services for tenant=%s: %v", t.ID, err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	hours, err := s.scheduleRepo.ListHours(ctx, t.ID)
	if err != nil {
		s.logger.Error("GetPublicProfile: failed to list hours for tenant=%s: %v", t.ID, err)
		return nil, fmt.Errorf("%w: failed to list business hours: %v", ErrInternal, err)
	}

	return &PublicProfile{
		BusinessName:  t.BusinessName,
		Services:      services,
		BusinessHours: hours,
	}, nil
}

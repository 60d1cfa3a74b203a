package tenants

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/tenant"
)

const testTenantID = "a1d5c8f0-0000-4000-8000-000000000001"

type fakeTenantRepo struct {
	bySlug        map[string]*domain.Tenant
	byID          map[string]*domain.Tenant
	updateSlugErr error
	updatedSlug   string
}

func (f *fakeTenantRepo) GetBySlug(_ context.Context, slug string) (*domain.Tenant, error) {
	if t, ok := f.bySlug[slug]; ok {
		return t, nil
	}
	return nil, tenantRepo.ErrTenantNotFound
}

func (f *fakeTenantRepo) GetByID(_ context.Context, id string) (*domain.Tenant, error) {
	if t, ok := f.byID[id]; ok {
		return t, nil
	}
	return nil, tenantRepo.ErrTenantNotFound
}

func (f *fakeTenantRepo) UpdateSlug(_ context.Context, _, slug string) error {
	if f.updateSlugErr != nil {
		return f.updateSlugErr
	}
	f.updatedSlug = slug
	return nil
}

type fakeCatalogRepo struct {
	services []*domain.Service
}

func (f *fakeCatalogRepo) ListByTenant(_ context.Context, _ string, _ bool) ([]*domain.Service, error) {
	return f.services, nil
}

type fakeScheduleRepo struct {
	hours []*domain.BusinessHours
}

func (f *fakeScheduleRepo) ListHours(_ context.Context, _ string) ([]*domain.BusinessHours, error) {
	return f.hours, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeTenantRepo) *Service {
	return NewService(repo, &fakeCatalogRepo{}, &fakeScheduleRepo{}, nopLogger{})
}

func TestResolve(t *testing.T) {
	slug := "barbershop"
	tenant := &domain.Tenant{ID: testTenantID, Slug: &slug}
	repo := &fakeTenantRepo{
		bySlug: map[string]*domain.Tenant{slug: tenant},
		byID:   map[string]*domain.Tenant{testTenantID: tenant},
	}
	svc := newTestService(repo)

	t.Run("resolves by slug", func(t *testing.T) {
		got, err := svc.Resolve(context.Background(), "barbershop")
		require.NoError(t, err)
		assert.Equal(t, testTenantID, got.ID)
	})

	t.Run("falls back to raw id", func(t *testing.T) {
		got, err := svc.Resolve(context.Background(), testTenantID)
		require.NoError(t, err)
		assert.Equal(t, testTenantID, got.ID)
	})

	t.Run("unknown segment", func(t *testing.T) {
		_, err := svc.Resolve(context.Background(), "no-such-tenant")
		assert.ErrorIs(t, err, ErrTenantNotFound)
	})

	t.Run("empty segment", func(t *testing.T) {
		_, err := svc.Resolve(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrTenantNotFound)
	})
}

func TestResolve_SlugShadowsID(t *testing.T) {
	// Псевдоним одного аккаунта совпадает с ID другого:
	// приоритет всегда у псевдонима
	slugOwner := &domain.Tenant{ID: "owner-of-slug"}
	idOwner := &domain.Tenant{ID: testTenantID}
	repo := &fakeTenantRepo{
		bySlug: map[string]*domain.Tenant{testTenantID: slugOwner},
		byID:   map[string]*domain.Tenant{testTenantID: idOwner},
	}
	svc := newTestService(repo)

	got, err := svc.Resolve(context.Background(), testTenantID)
	require.NoError(t, err)
	assert.Equal(t, "owner-of-slug", got.ID)
}

func TestUpdateSlug(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     string
		wantErr  error
		repoErr  error
	}{
		{name: "valid slug", raw: "my-barbershop", want: "my-barbershop"},
		{name: "normalizes case and spaces", raw: "  My-Shop-1  ", want: "my-shop-1"},
		{name: "too short", raw: "ab", wantErr: ErrInvalidSlug},
		{name: "too short after trim", raw: "  a  ", wantErr: ErrInvalidSlug},
		{name: "invalid charset", raw: "мой-салон", wantErr: ErrInvalidSlug},
		{name: "underscore rejected", raw: "my_shop", wantErr: ErrInvalidSlug},
		{name: "slug taken", raw: "taken-slug", wantErr: ErrSlugTaken, repoErr: tenantRepo.ErrSlugTaken},
		{name: "tenant missing", raw: "some-slug", wantErr: ErrTenantNotFound, repoErr: tenantRepo.ErrTenantNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTenantRepo{updateSlugErr: tt.repoErr}
			svc := newTestService(repo)

			got, err := svc.UpdateSlug(context.Background(), testTenantID, tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, repo.updatedSlug)
		})
	}
}

func TestGetPublicProfile(t *testing.T) {
	slug := "barbershop"
	tenant := &domain.Tenant{
		ID:           testTenantID,
		Slug:         &slug,
		BusinessName: "Барбершоп",
		Email:        "owner@example.com",
	}
	repo := &fakeTenantRepo{bySlug: map[string]*domain.Tenant{slug: tenant}}
	svc := NewService(
		repo,
		&fakeCatalogRepo{services: []*domain.Service{{ID: "svc-1", Name: "Стрижка", Active: true}}},
		&fakeScheduleRepo{hours: []*domain.BusinessHours{{TenantID: testTenantID, DayOfWeek: 0, IsOpen: true}}},
		nopLogger{},
	)

	profile, err := svc.GetPublicProfile(context.Background(), "barbershop")
	require.NoError(t, err)

	assert.Equal(t, "Барбершоп", profile.BusinessName)
	assert.Len(t, profile.Services, 1)
	assert.Len(t, profile.BusinessHours, 1)
}

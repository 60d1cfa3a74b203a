package accounts

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/tenant"
)

var testSecret = []byte("test-secret")

type fakeTenantRepo struct {
	created   *domain.Tenant
	byID      map[string]*domain.Tenant
	byEmail   map[string]*domain.Tenant
	createErr error
}

func (f *fakeTenantRepo) Create(_ context.Context, t *domain.Tenant) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = t
	return nil
}

func (f *fakeTenantRepo) GetByID(_ context.Context, id string) (*domain.Tenant, error) {
	if t, ok := f.byID[id]; ok {
		return t, nil
	}
	return nil, tenantRepo.ErrTenantNotFound
}

func (f *fakeTenantRepo) GetByEmail(_ context.Context, email string) (*domain.Tenant, error) {
	if t, ok := f.byEmail[email]; ok {
		return t, nil
	}
	return nil, tenantRepo.ErrTenantNotFound
}

func (f *fakeTenantRepo) ActivateSubscription(_ context.Context, _ string, _ time.Time, _ string) error {
	return nil
}

type fakeScheduleRepo struct {
	seededFor string
}

func (f *fakeScheduleRepo) SeedDefaultHours(_ context.Context, tenantID string) error {
	f.seededFor = tenantID
	return nil
}

type fakeCatalogRepo struct{ active int }

func (f *fakeCatalogRepo) CountActive(_ context.Context, _ string) (int, error) {
	return f.active, nil
}

type fakeApptRepo struct {
	total   int
	pending int
}

func (f *fakeApptRepo) Count(_ context.Context, _ string, status *domain.AppointmentStatus) (int, error) {
	if status == nil {
		return f.total, nil
	}
	return f.pending, nil
}

type fakeNotifier struct{}

func (fakeNotifier) SendSubscriptionActivated(_ context.Context, _, _ string, _ float64, _ time.Time) error {
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testConfig() Config {
	return Config{
		JWTSecret:         testSecret,
		TokenTTL:          time.Hour,
		BcryptCost:        bcrypt.MinCost,
		TrialDays:         7,
		SubscriptionDays:  30,
		SubscriptionPrice: 29.0,
	}
}

func newTestService(repo *fakeTenantRepo, schedule *fakeScheduleRepo) *Service {
	return NewService(repo, schedule, &fakeCatalogRepo{}, &fakeApptRepo{}, fakeNotifier{}, testConfig(), nopLogger{})
}

func TestRegister(t *testing.T) {
	repo := &fakeTenantRepo{}
	schedule := &fakeScheduleRepo{}
	svc := newTestService(repo, schedule)

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		Email:        " Owner@Example.com ",
		Password:     "secret123",
		BusinessName: "Барбершоп",
	})
	require.NoError(t, err)

	// Email нормализуется, пароль не хранится открытым текстом
	assert.Equal(t, "owner@example.com", resp.Email)
	require.NotNil(t, repo.created)
	assert.NotEqual(t, "secret123", repo.created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.created.PasswordHash), []byte("secret123")))

	// Недельное расписание засеивается при регистрации
	assert.Equal(t, repo.created.ID, schedule.seededFor)

	// Токен подписан нашим секретом и содержит ID владельца
	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	assert.Equal(t, repo.created.ID, claims.Subject)

	// Триал заканчивается через 7 дней
	assert.WithinDuration(t, time.Now().UTC().AddDate(0, 0, 7), resp.TrialEnds, time.Minute)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestService(&fakeTenantRepo{}, &fakeScheduleRepo{})

	tests := []struct {
		name string
		req  *RegisterRequest
	}{
		{name: "missing email", req: &RegisterRequest{Password: "secret123", BusinessName: "Салон"}},
		{name: "malformed email", req: &RegisterRequest{Email: "not-an-email", Password: "secret123", BusinessName: "Салон"}},
		{name: "short password", req: &RegisterRequest{Email: "a@b.com", Password: "123", BusinessName: "Салон"}},
		{name: "missing business name", req: &RegisterRequest{Email: "a@b.com", Password: "secret123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	svc := newTestService(&fakeTenantRepo{createErr: tenantRepo.ErrEmailTaken}, &fakeScheduleRepo{})

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Email:        "owner@example.com",
		Password:     "secret123",
		BusinessName: "Салон",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	tenant := &domain.Tenant{
		ID:           "tenant-1",
		Email:        "owner@example.com",
		PasswordHash: string(hash),
		TrialEnds:    time.Now().Add(24 * time.Hour),
	}
	repo := &fakeTenantRepo{byEmail: map[string]*domain.Tenant{"owner@example.com": tenant}}
	svc := newTestService(repo, &fakeScheduleRepo{})

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), " Owner@Example.com ", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "tenant-1", resp.TenantID)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "owner@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestCheckAccess(t *testing.T) {
	now := time.Now()
	ends := now.Add(30 * 24 * time.Hour)

	tests := []struct {
		name    string
		tenant  *domain.Tenant
		wantErr error
	}{
		{
			name:   "live trial",
			tenant: &domain.Tenant{ID: "t1", TrialEnds: now.Add(24 * time.Hour)},
		},
		{
			name:   "active subscription after trial",
			tenant: &domain.Tenant{ID: "t1", TrialEnds: now.Add(-24 * time.Hour), SubscriptionActive: true, SubscriptionEnds: &ends},
		},
		{
			name:    "expired trial without subscription",
			tenant:  &domain.Tenant{ID: "t1", TrialEnds: now.Add(-24 * time.Hour)},
			wantErr: ErrAccessExpired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTenantRepo{byID: map[string]*domain.Tenant{"t1": tt.tenant}}
			svc := newTestService(repo, &fakeScheduleRepo{})

			got, err := svc.CheckAccess(context.Background(), "t1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "t1", got.ID)
		})
	}

	t.Run("unknown tenant", func(t *testing.T) {
		svc := newTestService(&fakeTenantRepo{}, &fakeScheduleRepo{})
		_, err := svc.CheckAccess(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrTenantNotFound)
	})
}

func TestGetDashboardStats(t *testing.T) {
	tenant := &domain.Tenant{ID: "t1", TrialEnds: time.Now().Add(5 * 24 * time.Hour)}
	repo := &fakeTenantRepo{byID: map[string]*domain.Tenant{"t1": tenant}}
	svc := NewService(
		repo,
		&fakeScheduleRepo{},
		&fakeCatalogRepo{active: 3},
		&fakeApptRepo{total: 12, pending: 4},
		fakeNotifier{},
		testConfig(),
		nopLogger{},
	)

	stats, err := svc.GetDashboardStats(context.Background(), "t1")
	require.NoError(t, err)

	assert.Equal(t, 12, stats.TotalAppointments)
	assert.Equal(t, 4, stats.PendingAppointments)
	assert.Equal(t, 3, stats.TotalServices)
	assert.GreaterOrEqual(t, stats.TrialDaysLeft, 4)
}

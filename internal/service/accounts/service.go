package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	tenantRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/tenant"
)

// Config параметры сервиса аккаунтов
type Config struct {
	JWTSecret         []byte
	TokenTTL          time.Duration
	BcryptCost        int
	TrialDays         int
	SubscriptionDays  int
	SubscriptionPrice float64
}

// Service сервис аккаунтов: регистрация, вход, подписка, сводка кабинета
type Service struct {
	tenantRepo   TenantRepository
	scheduleRepo ScheduleRepository
	catalogRepo  CatalogRepository
	apptRepo     AppointmentRepository
	notifier     Notifier
	timeProvider TimeProvider
	cfg          Config
	logger       Logger
}

// NewService создает новый экземпляр сервиса аккаунтов
func NewService(
	tenantRepo TenantRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	apptRepo AppointmentRepository,
	notifier Notifier,
	cfg Config,
	logger Logger,
) *Service {
	return &Service{
		tenantRepo:   tenantRepo,
		scheduleRepo: scheduleRepo,
		catalogRepo:  catalogRepo,
		apptRepo:     apptRepo,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		cfg:          cfg,
		logger:       logger,
	}
}

// Register регистрирует нового владельца: создает аккаунт с триалом,
// засеивает 7 строк недельного расписания и выдает токен
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if len(req.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}
	if strings.TrimSpace(req.BusinessName) == "" {
		return nil, fmt.Errorf("%w: business name is required", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	t := &domain.Tenant{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		BusinessName: strings.TrimSpace(req.BusinessName),
		TrialEnds:    now.AddDate(0, 0, s.cfg.TrialDays),
	}

	if err := s.tenantRepo.Create(ctx, t); err != nil {
		if errors.Is(err, tenantRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email %s already registered", email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: failed to create tenant: %v", err)
		return nil, fmt.Errorf("%w: failed to create tenant: %v", ErrInternal, err)
	}

	if err := s.scheduleRepo.SeedDefaultHours(ctx, t.ID); err != nil {
		s.logger.Error("Register: failed to seed business hours for tenant=%s: %v", t.ID, err)
		return nil, fmt.Errorf("%w: failed to seed business hours: %v", ErrInternal, err)
	}

	token, err := s.issueToken(t.ID, now)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Register: created tenant=%s email=%s, trial until %s",
		t.ID, email, t.TrialEnds.Format(domain.DateFormat))

	return &AuthResponse{
		Token:        token,
		TenantID:     t.ID,
		Email:        t.Email,
		BusinessName: t.BusinessName,
		TrialEnds:    t.TrialEnds,
	}, nil
}

// Login проверяет учетные данные и выдает токен
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	t, err := s.tenantRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			s.logger.Warn("Login: unknown email %s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(t.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for tenant=%s", t.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(t.ID, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("Login: tenant=%s logged in", t.ID)

	return &AuthResponse{
		Token:              token,
		TenantID:           t.ID,
		Email:              t.Email,
		BusinessName:       t.BusinessName,
		TrialEnds:          t.TrialEnds,
		SubscriptionActive: t.SubscriptionActive,
	}, nil
}

// CheckAccess проверяет, что владельцу доступен кабинет:
// активная подписка или живой триал. Используется access-gate middleware.
func (s *Service) CheckAccess(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	t, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			return nil, ErrTenantNotFound
		}
		s.logger.Error("CheckAccess: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	if !t.IsAccessAllowed(s.timeProvider.Now()) {
		s.logger.Warn("CheckAccess: access expired for tenant=%s", tenantID)
		return nil, ErrAccessExpired
	}

	return t, nil
}

// GetDashboardStats возвращает сводку кабинета владельца
func (s *Service) GetDashboardStats(ctx context.Context, tenantID string) (*DashboardStats, error) {
	t, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	total, err := s.apptRepo.Count(ctx, tenantID, nil)
	if err != nil {
		s.logger.Error("GetDashboardStats: failed to count appointments for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
	}

	pendingStatus := domain.StatusPending
	pending, err := s.apptRepo.Count(ctx, tenantID, &pendingStatus)
	if err != nil {
		s.logger.Error("GetDashboardStats: failed to count pending appointments for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: failed to count pending appointments: %v", ErrInternal, err)
	}

	services, err := s.catalogRepo.CountActive(ctx, tenantID)
	if err != nil {
		s.logger.Error("GetDashboardStats: failed to count services for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: failed to count services: %v", ErrInternal, err)
	}

	return &DashboardStats{
		TotalAppointments:   total,
		PendingAppointments: pending,
		TotalServices:       services,
		TrialDaysLeft:       t.TrialDaysLeft(s.timeProvider.Now()),
	}, nil
}

// GetSubscriptionStatus возвращает состояние подписки владельца
func (s *Service) GetSubscriptionStatus(ctx context.Context, tenantID string) (*SubscriptionStatus, error) {
	t, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	return &SubscriptionStatus{
		SubscriptionActive: t.SubscriptionActive,
		TrialDaysLeft:      t.TrialDaysLeft(s.timeProvider.Now()),
		SubscriptionEnds:   t.SubscriptionEnds,
		SubscriptionPrice:  s.cfg.SubscriptionPrice,
	}, nil
}

// ActivateSubscription активирует подписку после подтверждённой оплаты.
// Вызывается обработчиком биллингового вебхука; письмо об активации
// отправляется fire-and-forget.
func (s *Service) ActivateSubscription(ctx context.Context, tenantID, paymentID string, amount float64) error {
	until := s.timeProvider.Now().AddDate(0, 0, s.cfg.SubscriptionDays)

	if err := s.tenantRepo.ActivateSubscription(ctx, tenantID, until, paymentID); err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			return ErrTenantNotFound
		}
		s.logger.Error("ActivateSubscription: failed for tenant=%s: %v", tenantID, err)
		return fmt.Errorf("%w: failed to activate subscription: %v", ErrInternal, err)
	}

	s.logger.Info("ActivateSubscription: tenant=%s active until %s (payment=%s)",
		tenantID, until.Format(domain.DateFormat), paymentID)

	t, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		s.logger.Error("ActivateSubscription: failed to reload tenant=%s for notification: %v", tenantID, err)
		return nil
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.notifier.SendSubscriptionActivated(ctx, t.Email, t.BusinessName, amount, until); err != nil {
			s.logger.Warn("ActivateSubscription: failed to send activation email to %s: %v", t.Email, err)
		}
	}()

	return nil
}

// issueToken выдает подписанный JWT с идентификатором владельца
func (s *Service) issueToken(tenantID string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   tenantID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.cfg.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("%w: failed to sign token: %v", ErrInternal, err)
	}
	return signed, nil
}

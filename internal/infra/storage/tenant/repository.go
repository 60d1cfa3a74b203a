package tenant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

const tenantColumns = "id, email, password_hash, business_name, slug, trial_ends, " +
	"subscription_active, subscription_ends, last_payment_id, created_at, updated_at"

// Repository репозиторий аккаунтов
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория аккаунтов
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый аккаунт
func (r *Repository) Create(ctx context.Context, t *domain.Tenant) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tenants").
		Columns("id", "email", "password_hash", "business_name", "trial_ends", "subscription_active").
		Values(t.ID, t.Email, t.PasswordHash, t.BusinessName, t.TrialEnds, t.SubscriptionActive).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "tenants_email_key") {
			return ErrEmailTaken
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает аккаунт по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	return r.getByField(ctx, "id", id, "GetByID")
}

// GetByEmail получает аккаунт по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Tenant, error) {
	return r.getByField(ctx, "email", email, "GetByEmail")
}

// GetBySlug получает аккаунт по публичному псевдониму
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return r.getByField(ctx, "slug", slug, "GetBySlug")
}

// UpdateSlug обновляет публичный псевдоним аккаунта.
// Уникальность закреплена индексом: гонка двух одновременных
// обновлений одного псевдонима разрешается на уровне БД.
func (r *Repository) UpdateSlug(ctx context.Context, id, slug string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tenants").
		Set("slug", slug).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSlug - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err, "tenants_slug_key") {
			return ErrSlugTaken
		}
		return fmt.Errorf("%w: UpdateSlug - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSlug - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTenantNotFound
	}

	return nil
}

// ActivateSubscription активирует подписку до указанной даты.
// Вызывается только биллинговым вебхуком.
func (r *Repository) ActivateSubscription(ctx context.Context, id string, until time.Time, paymentID string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tenants").
		Set("subscription_active", true).
		Set("subscription_ends", until).
		Set("last_payment_id", paymentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ActivateSubscription - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ActivateSubscription - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ActivateSubscription - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrTenantNotFound
	}

	return nil
}

func (r *Repository) getByField(ctx context.Context, field, value, op string) (*domain.Tenant, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tenantColumns).
		From("tenants").
		Where(squirrel.Eq{field: value}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var t domain.Tenant
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID,
		&t.Email,
		&t.PasswordHash,
		&t.BusinessName,
		&t.Slug,
		&t.TrialEnds,
		&t.SubscriptionActive,
		&t.SubscriptionEnds,
		&t.LastPaymentID,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan tenant: %v", ErrScanRow, op, err)
	}

	return &t, nil
}

// isUniqueViolation проверяет нарушение конкретного уникального ограничения
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23505" && pqErr.Constraint == constraint
}

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

const serviceColumns = "id, tenant_id, name, description, duration_minutes, price, active, created_at, updated_at"

// Repository репозиторий каталога услуг
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую услугу
func (r *Repository) Create(ctx context.Context, s *domain.Service) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("id", "tenant_id", "name", "description", "duration_minutes", "price", "active").
		Values(s.ID, s.TenantID, s.Name, s.Description, s.DurationMinutes, s.Price, s.Active).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает услугу по ID.
// Возвращает и неактивные услуги: они нужны для разрешения
// исторических записей.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := r.scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListByTenant получает услуги владельца.
// При onlyActive=true неактивные (мягко удалённые) услуги исключаются.
func (r *Repository) ListByTenant(ctx context.Context, tenantID string, onlyActive bool) ([]*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(serviceColumns).
		From("services").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("created_at ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		s, err := r.scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByTenant - scan row: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// Update обновляет услугу владельца (с проверкой принадлежности)
func (r *Repository) Update(ctx context.Context, s *domain.Service) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("name", s.Name).
		Set("description", s.Description).
		Set("duration_minutes", s.DurationMinutes).
		Set("price", s.Price).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID, "tenant_id": s.TenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// Deactivate мягко удаляет услугу (сбрасывает флаг active).
// Физическое удаление не поддерживается намеренно.
func (r *Repository) Deactivate(ctx context.Context, tenantID, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// CountActive возвращает число активных услуг владельца
func (r *Repository) CountActive(ctx context.Context, tenantID string) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("services").
		Where(squirrel.Eq{"tenant_id": tenantID, "active": true}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanService(row rowScanner) (*domain.Service, error) {
	var s domain.Service
	err := row.Scan(
		&s.ID,
		&s.TenantID,
		&s.Name,
		&s.Description,
		&s.DurationMinutes,
		&s.Price,
		&s.Active,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

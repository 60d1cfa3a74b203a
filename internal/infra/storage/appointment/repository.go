package appointment

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

const appointmentColumns = "id, tenant_id, service_id, service_name, duration_minutes, " +
	"client_name, client_phone, client_email, date, start_time, status, created_at, updated_at"

// Repository репозиторий записей
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Частичный уникальный индекс (tenant_id, date, start_time) по
// неотменённым записям дублирует проверку пересечений на уровне БД:
// нарушение транслируется в ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"tenant_id",
			"service_id",
			"service_name",
			"duration_minutes",
			"client_name",
			"client_phone",
			"client_email",
			"date",
			"start_time",
			"status",
		).
		Values(
			a.ID,
			a.TenantID,
			a.ServiceID,
			a.ServiceName,
			a.DurationMinutes,
			a.ClientName,
			a.ClientPhone,
			a.ClientEmail,
			a.Date,
			a.StartTime,
			a.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return a, nil
}

// ListByTenant получает неотменённые записи владельца,
// отсортированные от новых к старым
func (r *Repository) ListByTenant(ctx context.Context, tenantID string) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns).
		From("appointments").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("date DESC, start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListByTenantAndDate получает неотменённые записи владельца на дату,
// отсортированные по времени начала. Внутри транзакции строки
// блокируются FOR UPDATE — на этом держится проверка пересечений
// при создании записи.
func (r *Repository) ListByTenantAndDate(ctx context.Context, tenantID string, date time.Time) ([]*domain.Appointment, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns).
		From("appointments").
		Where(squirrel.Eq{"tenant_id": tenantID, "date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("start_time ASC")

	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenantAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByTenantAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Count возвращает число записей владельца, опционально по статусу
func (r *Repository) Count(ctx context.Context, tenantID string, status *domain.AppointmentStatus) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"tenant_id": tenantID})

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var a domain.Appointment
	err := row.Scan(
		&a.ID,
		&a.TenantID,
		&a.ServiceID,
		&a.ServiceName,
		&a.DurationMinutes,
		&a.ClientName,
		&a.ClientPhone,
		&a.ClientEmail,
		&a.Date,
		&a.StartTime,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}
	return appointments, nil
}

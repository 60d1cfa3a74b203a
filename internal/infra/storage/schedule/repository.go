package schedule

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
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

// Repository репозиторий расписания: недельные часы работы и закрытые даты
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// SeedDefaultHours создает 7 строк расписания для нового аккаунта:
// будни 09:00-18:00, выходные закрыты. Вызывается один раз при
// регистрации; дальше строки только обновляются на месте.
func (r *Repository) SeedDefaultHours(ctx context.Context, tenantID string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("business_hours").
		Columns("tenant_id", "day_of_week", "is_open", "open_time", "close_time")

	for day := 0; day < 7; day++ {
		if day < 5 {
			insertBuilder = insertBuilder.Values(tenantID, day, true, ptr.Ptr("09:00"), ptr.Ptr("18:00"))
		} else {
			insertBuilder = insertBuilder.Values(tenantID, day, false, nil, nil)
		}
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: SeedDefaultHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SeedDefaultHours - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetHours получает расписание на указанный день недели (0-6, понедельник — 0)
func (r *Repository) GetHours(ctx context.Context, tenantID string, dayOfWeek int) (*domain.BusinessHours, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("tenant_id", "day_of_week", "is_open", "open_time", "close_time").
		From("business_hours").
		Where(squirrel.Eq{"tenant_id": tenantID, "day_of_week": dayOfWeek}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetHours - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.BusinessHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.TenantID, &h.DayOfWeek, &h.IsOpen, &h.OpenTime, &h.CloseTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetHours - scan hours: %v", ErrScanRow, err)
	}

	return &h, nil
}

// ListHours получает все 7 строк расписания, отсортированные по дню недели
func (r *Repository) ListHours(ctx context.Context, tenantID string) ([]*domain.BusinessHours, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("tenant_id", "day_of_week", "is_open", "open_time", "close_time").
		From("business_hours").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]*domain.BusinessHours, 0, 7)
	for rows.Next() {
		var h domain.BusinessHours
		if err := rows.Scan(&h.TenantID, &h.DayOfWeek, &h.IsOpen, &h.OpenTime, &h.CloseTime); err != nil {
			return nil, fmt.Errorf("%w: ListHours - scan row: %v", ErrScanRow, err)
		}
		hours = append(hours, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}

// UpdateHours обновляет строку расписания на месте
func (r *Repository) UpdateHours(ctx context.Context, h *domain.BusinessHours) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("business_hours").
		Set("is_open", h.IsOpen).
		Set("open_time", h.OpenTime).
		Set("close_time", h.CloseTime).
		Where(squirrel.Eq{"tenant_id": h.TenantID, "day_of_week": h.DayOfWeek}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateHours - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateHours - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateHours - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrHoursNotFound
	}

	return nil
}

// IsClosedDate проверяет, помечена ли дата закрытой
func (r *Repository) IsClosedDate(ctx context.Context, tenantID string, date time.Time) (bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("closed_dates").
		Where(squirrel.Eq{"tenant_id": tenantID, "date": date}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsClosedDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: IsClosedDate - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// ListClosedDates получает закрытые даты владельца по возрастанию
func (r *Repository) ListClosedDates(ctx context.Context, tenantID string) ([]*domain.ClosedDate, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("tenant_id", "date").
		From("closed_dates").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListClosedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListClosedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]*domain.ClosedDate, 0)
	for rows.Next() {
		var d domain.ClosedDate
		if err := rows.Scan(&d.TenantID, &d.Date); err != nil {
			return nil, fmt.Errorf("%w: ListClosedDates - scan row: %v", ErrScanRow, err)
		}
		dates = append(dates, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListClosedDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// AddClosedDate помечает дату закрытой
func (r *Repository) AddClosedDate(ctx context.Context, tenantID string, date time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("closed_dates").
		Columns("tenant_id", "date").
		Values(tenantID, date).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddClosedDate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDateAlreadyClosed
		}
		return fmt.Errorf("%w: AddClosedDate - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// RemoveClosedDate снимает пометку закрытой даты
func (r *Repository) RemoveClosedDate(ctx context.Context, tenantID string, date time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("closed_dates").
		Where(squirrel.Eq{"tenant_id": tenantID, "date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RemoveClosedDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveClosedDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveClosedDate - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrClosedDateNotFound
	}

	return nil
}

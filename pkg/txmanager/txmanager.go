package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// DBExecutor минимальный интерфейс выполнения запросов.
// Ему удовлетворяют и *sql.DB, и *sql.Tx, что позволяет репозиториям
// прозрачно работать как внутри транзакции, так и без неё.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// ErrMaxRetriesExceeded возвращается, когда сериализуемая транзакция
// не смогла завершиться за отведённое число попыток
var ErrMaxRetriesExceeded = errors.New("txmanager: max serialization retries exceeded")

type ctxKey struct{}

// withTx кладет активную транзакцию в контекст
func withTx(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, ctxKey{}, tx)
}

// GetExecutor возвращает транзакцию из контекста, если она там есть,
// иначе переданный fallback (обычно *sql.DB)
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(ctxKey{}).(*sql.Tx); ok {
		return tx
	}
	return fallback
}

// IsInTransaction сообщает, выполняется ли запрос внутри транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(*sql.Tx)
	return ok
}

// Manager управляет транзакциями поверх *sql.DB
type Manager struct {
	db         *sql.DB
	maxRetries int
}

// New создает менеджер транзакций
func New(db *sql.DB) *Manager {
	return &Manager{db: db, maxRetries: 3}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, nil, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции.
// Конфликты сериализации (40001) и дедлоки (40P01) прозрачно
// повторяются до maxRetries раз — код внутри fn должен быть идемпотентным
// до момента фиксации.
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var lastErr error
	for attempt := 0; attempt < m.maxRetries; attempt++ {
		lastErr = m.run(ctx, opts, fn)
		if lastErr == nil || !isRetryable(lastErr) {
			return lastErr
		}
	}
	return fmt.Errorf("%w: %v", ErrMaxRetriesExceeded, lastErr)
}

func (m *Manager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("txmanager: begin: %w", err)
	}

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return fmt.Errorf("txmanager: rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("txmanager: commit: %w", err)
	}
	return nil
}

// isRetryable определяет ошибки, при которых транзакцию имеет смысл повторить
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "40001" || pqErr.Code == "40P01"
}

package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	storage "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/schedule"
)

const testTenantID = "a1d5c8f0-0000-4000-8000-000000000001"

type fakeRepo struct {
	updated       []*domain.BusinessHours
	addErr        error
	removeErr     error
	closedDates   []*domain.ClosedDate
}

func (f *fakeRepo) ListHours(_ context.Context, _ string) ([]*domain.BusinessHours, error) {
	return f.updated, nil
}

func (f *fakeRepo) UpdateHours(_ context.Context, h *domain.BusinessHours) error {
	f.updated = append(f.updated, h)
	return nil
}

func (f *fakeRepo) ListClosedDates(_ context.Context, _ string) ([]*domain.ClosedDate, error) {
	return f.closedDates, nil
}

func (f *fakeRepo) AddClosedDate(_ context.Context, _ string, _ time.Time) error {
	return f.addErr
}

func (f *fakeRepo) RemoveClosedDate(_ context.Context, _ string, _ time.Time) error {
	return f.removeErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUpdateHours(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateHours(context.Background(), testTenantID, []DayHours{
		{DayOfWeek: 0, IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"},
		{DayOfWeek: 6, IsOpen: false},
	})
	require.NoError(t, err)

	require.Len(t, repo.updated, 2)
	assert.Equal(t, testTenantID, repo.updated[0].TenantID)
	assert.Equal(t, "09:00", repo.updated[0].OpenTime.String())
	assert.Equal(t, "18:00", repo.updated[0].CloseTime.String())
	// У закрытого дня времена не хранятся
	assert.False(t, repo.updated[1].IsOpen)
	assert.Nil(t, repo.updated[1].OpenTime)
	assert.Nil(t, repo.updated[1].CloseTime)
}

func TestUpdateHours_ValidationRejectsWholeRequest(t *testing.T) {
	tests := []struct {
		name string
		days []DayHours
	}{
		{
			name: "day out of range",
			days: []DayHours{{DayOfWeek: 7, IsOpen: false}},
		},
		{
			name: "negative day",
			days: []DayHours{{DayOfWeek: -1, IsOpen: false}},
		},
		{
			name: "invalid open time",
			days: []DayHours{{DayOfWeek: 0, IsOpen: true, OpenTime: "9:00", CloseTime: "18:00"}},
		},
		{
			name: "invalid close time",
			days: []DayHours{{DayOfWeek: 0, IsOpen: true, OpenTime: "09:00", CloseTime: "25:00"}},
		},
		{
			name: "close before open",
			days: []DayHours{{DayOfWeek: 0, IsOpen: true, OpenTime: "18:00", CloseTime: "09:00"}},
		},
		{
			name: "valid day followed by invalid",
			days: []DayHours{
				{DayOfWeek: 0, IsOpen: true, OpenTime: "09:00", CloseTime: "18:00"},
				{DayOfWeek: 1, IsOpen: true, OpenTime: "18:00", CloseTime: "18:00"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewService(repo, nopLogger{})

			err := svc.UpdateHours(context.Background(), testTenantID, tt.days)
			assert.ErrorIs(t, err, ErrInvalidInput)
			// Частичного применения нет даже при валидном первом дне
			assert.Empty(t, repo.updated)
		})
	}
}

func TestAddClosedDate(t *testing.T) {
	date, err := time.Parse(domain.DateFormat, "2026-09-07")
	require.NoError(t, err)

	svc := NewService(&fakeRepo{}, nopLogger{})
	assert.NoError(t, svc.AddClosedDate(context.Background(), testTenantID, date))

	svc = NewService(&fakeRepo{addErr: storage.ErrDateAlreadyClosed}, nopLogger{})
	assert.ErrorIs(t, svc.AddClosedDate(context.Background(), testTenantID, date), ErrDateAlreadyClosed)
}

func TestRemoveClosedDate(t *testing.T) {
	date, err := time.Parse(domain.DateFormat, "2026-09-07")
	require.NoError(t, err)

	svc := NewService(&fakeRepo{}, nopLogger{})
	assert.NoError(t, svc.RemoveClosedDate(context.Background(), testTenantID, date))

	svc = NewService(&fakeRepo{removeErr: storage.ErrClosedDateNotFound}, nopLogger{})
	assert.ErrorIs(t, svc.RemoveClosedDate(context.Background(), testTenantID, date), ErrClosedDateNotFound)
}

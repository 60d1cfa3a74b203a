package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	catalogStorage "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/catalog"
	tenantsvc "github.com/m04kA/SMC-AppointmentService/internal/service/tenants"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	testTenantID  = "a1d5c8f0-0000-4000-8000-000000000001"
	testServiceID = "b2e6d9f1-0000-4000-8000-000000000002"
)

type fakeResolver struct {
	tenant *domain.Tenant
	err    error
}

func (f *fakeResolver) Resolve(_ context.Context, _ string) (*domain.Tenant, error) {
	return f.tenant, f.err
}

type fakeCatalog struct {
	service *domain.Service
	err     error
}

func (f *fakeCatalog) GetByID(_ context.Context, _ string) (*domain.Service, error) {
	return f.service, f.err
}

type fakeSchedule struct {
	hours  *domain.BusinessHours
	closed bool
}

func (f *fakeSchedule) GetHours(_ context.Context, _ string, _ int) (*domain.BusinessHours, error) {
	return f.hours, nil
}

func (f *fakeSchedule) IsClosedDate(_ context.Context, _ string, _ time.Time) (bool, error) {
	return f.closed, nil
}

type fakeAppointments struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointments) ListByTenantAndDate(_ context.Context, _ string, _ time.Time) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func timePtr(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func openHours(open, close string) *domain.BusinessHours {
	return &domain.BusinessHours{
		TenantID:  testTenantID,
		IsOpen:    true,
		OpenTime:  timePtr(open),
		CloseTime: timePtr(close),
	}
}

func activeService(durationMinutes int) *domain.Service {
	return &domain.Service{
		ID:              testServiceID,
		TenantID:        testTenantID,
		Name:            "Стрижка",
		DurationMinutes: durationMinutes,
		Active:          true,
	}
}

func testAppointment(start string, durationMinutes int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              "c3f7e0a2-0000-4000-8000-000000000003",
		TenantID:        testTenantID,
		ServiceID:       testServiceID,
		DurationMinutes: durationMinutes,
		StartTime:       types.TimeString(start),
		Status:          status,
	}
}

func newTestUseCase(
	schedule *fakeSchedule,
	appointments *fakeAppointments,
	service *domain.Service,
) *UseCase {
	return NewUseCase(
		&fakeResolver{tenant: &domain.Tenant{ID: testTenantID}},
		&fakeCatalog{service: service},
		schedule,
		appointments,
		nopLogger{},
	)
}

func testRequest(t *testing.T) *Request {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, "2026-09-07")
	require.NoError(t, err)
	return &Request{
		TenantSegment: "barbershop",
		ServiceID:     testServiceID,
		Date:          date,
	}
}

func TestExecute_FullDayWithoutAppointments(t *testing.T) {
	uc := newTestUseCase(
		&fakeSchedule{hours: openHours("09:00", "18:00")},
		&fakeAppointments{},
		activeService(30),
	)

	resp, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)

	// 09:00..17:30 с шагом 15 минут: 35 кандидатов до 17:30 включительно
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("17:30"), resp.Slots[len(resp.Slots)-1])
	assert.Len(t, resp.Slots, 35)
	assert.Equal(t, testTenantID, resp.TenantID)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Empty(t, resp.Reason)
}

func TestExecute_SlotsExcludeOccupiedInterval(t *testing.T) {
	// Подтверждённая запись 10:00-11:00, услуга 30 минут
	uc := newTestUseCase(
		&fakeSchedule{hours: openHours("09:00", "18:00")},
		&fakeAppointments{appointments: []*domain.Appointment{
			testAppointment("10:00", 60, domain.StatusConfirmed),
		}},
		activeService(30),
	)

	resp, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)

	excluded := map[types.TimeString]bool{
		"09:45": true, "10:00": true, "10:15": true, "10:30": true, "10:45": true,
	}
	for _, slot := range resp.Slots {
		assert.Falsef(t, excluded[slot], "слот %s пересекается с занятым интервалом", slot)
	}
	// Граничные слоты: услуга 09:30-10:00 и 11:00-11:30 не пересекаются с записью
	assert.Contains(t, resp.Slots, types.TimeString("09:30"))
	assert.Contains(t, resp.Slots, types.TimeString("11:00"))
}

func TestExecute_PendingAppointmentBlocksSlot(t *testing.T) {
	uc := newTestUseCase(
		&fakeSchedule{hours: openHours("09:00", "12:00")},
		&fakeAppointments{appointments: []*domain.Appointment{
			testAppointment("09:00", 30, domain.StatusPending),
		}},
		activeService(30),
	)

	resp, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)

	assert.NotContains(t, resp.Slots, types.TimeString("09:00"))
	assert.Contains(t, resp.Slots, types.TimeString("09:30"))
}

func TestExecute_CancelledAppointmentFreesSlot(t *testing.T) {
	uc := newTestUseCase(
		&fakeSchedule{hours: openHours("09:00", "12:00")},
		&fakeAppointments{appointments: []*domain.Appointment{
			testAppointment("09:00", 30, domain.StatusCancelled),
		}},
		activeService(30),
	)

	resp, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)

	assert.Contains(t, resp.Slots, types.TimeString("09:00"))
}

func TestExecute_ClosedDate(t *testing.T) {
	uc := newTestUseCase(
		&fakeSchedule{hours: openHours("09:00", "18:00"), closed: true},
		&fakeAppointments{},
		activeService(30),
	)

	resp, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
	assert.Equal(t, domain.ReasonClosed, resp.Reason)
}

func TestExecute_ClosedWeekday(t *testing.T) {
	uc := newTestUseCase(
		&fakeSchedule{hours: &domain.BusinessHours{TenantID: testTenantID, IsOpen: false}},
		&fakeAppointments{},
		activeService(30),
	)

	resp, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Equal(t, domain.ReasonClosed, resp.Reason)
}

func TestExecute_ServiceLongerThanWorkingWindow(t *testing.T) {
	uc := newTestUseCase(
		&fakeSchedule{hours: openHours("09:00", "10:00")},
		&fakeAppointments{},
		activeService(120),
	)

	resp, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.Empty(t, resp.Reason)
}

func TestExecute_Deterministic(t *testing.T) {
	uc := newTestUseCase(
		&fakeSchedule{hours: openHours("09:00", "18:00")},
		&fakeAppointments{appointments: []*domain.Appointment{
			testAppointment("12:00", 45, domain.StatusConfirmed),
		}},
		activeService(30),
	)

	first, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_CorruptStartTimeFailsOccupancy(t *testing.T) {
	// Активная запись с нечитаемым временем не освобождает свой слот
	// молча: выдача слотов завершается ошибкой
	uc := newTestUseCase(
		&fakeSchedule{hours: openHours("09:00", "18:00")},
		&fakeAppointments{appointments: []*domain.Appointment{
			testAppointment("garbage", 30, domain.StatusConfirmed),
		}},
		activeService(30),
	)

	_, err := uc.Execute(context.Background(), testRequest(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestExecute_CorruptCancelledRecordIgnored(t *testing.T) {
	// Отменённая запись не участвует в занятости, даже повреждённая
	uc := newTestUseCase(
		&fakeSchedule{hours: openHours("09:00", "18:00")},
		&fakeAppointments{appointments: []*domain.Appointment{
			testAppointment("garbage", 30, domain.StatusCancelled),
		}},
		activeService(30),
	)

	resp, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 35)
}

func TestExecute_BookedIntervalNeverReoffered(t *testing.T) {
	// Бронь появилась между двумя запросами слотов:
	// повторная выдача не предлагает ни одного пересекающегося старта
	appts := &fakeAppointments{}
	uc := newTestUseCase(
		&fakeSchedule{hours: openHours("09:00", "18:00")},
		appts,
		activeService(30),
	)

	before, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)
	require.Contains(t, before.Slots, types.TimeString("10:00"))

	booked := testAppointment("10:00", 30, domain.StatusPending)
	appts.appointments = append(appts.appointments, booked)
	bookedInterval, err := domain.NewInterval(booked.StartTime, booked.DurationMinutes)
	require.NoError(t, err)

	after, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)

	for _, slot := range after.Slots {
		candidate, err := domain.NewInterval(slot, 30)
		require.NoError(t, err)
		assert.Falsef(t, candidate.Overlaps(bookedInterval),
			"слот %s пересекается с только что созданной записью", slot)
	}
}

func TestExecute_TenantNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeResolver{err: tenantsvc.ErrTenantNotFound},
		&fakeCatalog{},
		&fakeSchedule{},
		&fakeAppointments{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), testRequest(t))
	assert.ErrorIs(t, err, ErrTenantNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	tests := []struct {
		name    string
		catalog *fakeCatalog
	}{
		{
			name:    "missing service",
			catalog: &fakeCatalog{err: catalogStorage.ErrServiceNotFound},
		},
		{
			name: "foreign service",
			catalog: &fakeCatalog{service: &domain.Service{
				ID:              testServiceID,
				TenantID:        "другой-тенант",
				DurationMinutes: 30,
				Active:          true,
			}},
		},
		{
			name: "inactive service",
			catalog: &fakeCatalog{service: &domain.Service{
				ID:              testServiceID,
				TenantID:        testTenantID,
				DurationMinutes: 30,
				Active:          false,
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(
				&fakeResolver{tenant: &domain.Tenant{ID: testTenantID}},
				tt.catalog,
				&fakeSchedule{},
				&fakeAppointments{},
				nopLogger{},
			)

			_, err := uc.Execute(context.Background(), testRequest(t))
			assert.ErrorIs(t, err, ErrServiceNotFound)
		})
	}
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeSchedule{}, &fakeAppointments{}, activeService(30))

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "empty tenant segment", req: &Request{ServiceID: testServiceID, Date: time.Now()}},
		{name: "empty service id", req: &Request{TenantSegment: "barbershop", Date: time.Now()}},
		{name: "zero date", req: &Request{TenantSegment: "barbershop", ServiceID: testServiceID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGenerateSlots_ZeroDurationFallback(t *testing.T) {
	// Легаси-запись без длительности занимает слот по умолчанию
	uc := newTestUseCase(
		&fakeSchedule{hours: openHours("09:00", "12:00")},
		&fakeAppointments{appointments: []*domain.Appointment{
			testAppointment("10:00", 0, domain.StatusConfirmed),
		}},
		activeService(30),
	)

	resp, err := uc.Execute(context.Background(), testRequest(t))
	require.NoError(t, err)

	// Запись занимает 10:00-10:30
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("10:15"))
	assert.Contains(t, resp.Slots, types.TimeString("10:30"))
}

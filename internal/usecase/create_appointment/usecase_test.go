package create_appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptStorage "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	testTenantID  = "a1d5c8f0-0000-4000-8000-000000000001"
	testServiceID = "b2e6d9f1-0000-4000-8000-000000000002"
)

type fakeCatalog struct {
	service *domain.Service
}

func (f *fakeCatalog) GetByID(_ context.Context, _ string) (*domain.Service, error) {
	return f.service, nil
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

// memAppointmentRepo потокобезопасный in-memory репозиторий записей
type memAppointmentRepo struct {
	mu           sync.Mutex
	appointments []*domain.Appointment
	createErr    error
}

func (r *memAppointmentRepo) ListByTenantAndDate(_ context.Context, tenantID string, date time.Time) ([]*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*domain.Appointment, 0)
	for _, a := range r.appointments {
		if a.TenantID == tenantID && a.Date.Equal(date) && a.IsActive() {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *memAppointmentRepo) Create(_ context.Context, a *domain.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appointments = append(r.appointments, a)
	return nil
}

// memTxManager сериализует транзакции мьютексом, имитируя
// поведение serializable-транзакций с блокировкой строк
type memTxManager struct {
	mu sync.Mutex
}

func (m *memTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func timePtr(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func testService(durationMinutes int) *domain.Service {
	return &domain.Service{
		ID:              testServiceID,
		TenantID:        testTenantID,
		Name:            "Стрижка",
		DurationMinutes: durationMinutes,
		Active:          true,
	}
}

func testHours() *domain.BusinessHours {
	return &domain.BusinessHours{
		TenantID:  testTenantID,
		IsOpen:    true,
		OpenTime:  timePtr("09:00"),
		CloseTime: timePtr("18:00"),
	}
}

func testRequest(t *testing.T, start string) *Request {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, "2026-09-07")
	require.NoError(t, err)
	return &Request{
		TenantID:    testTenantID,
		ServiceID:   testServiceID,
		ClientName:  "Иван",
		ClientPhone: "+79990001122",
		Date:        date,
		StartTime:   types.TimeString(start),
	}
}

type testEnv struct {
	uc   *UseCase
	repo *memAppointmentRepo
}

func newTestEnv(service *domain.Service, schedule *fakeSchedule) *testEnv {
	repo := &memAppointmentRepo{}
	uc := NewUseCase(
		&fakeCatalog{service: service},
		schedule,
		repo,
		&memTxManager{},
		nopLogger{},
	)
	return &testEnv{uc: uc, repo: repo}
}

func TestExecute_CreatesConfirmedAppointment(t *testing.T) {
	env := newTestEnv(testService(60), &fakeSchedule{hours: testHours()})

	resp, err := env.uc.Execute(context.Background(), testRequest(t, "10:00"))
	require.NoError(t, err)

	// Владелец создаёт сразу подтверждённую запись
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, testTenantID, resp.TenantID)
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, 60, resp.DurationMinutes)
	require.Len(t, env.repo.appointments, 1)
	assert.Equal(t, domain.StatusConfirmed, env.repo.appointments[0].Status)
}

func TestExecute_ConflictWithExistingAppointment(t *testing.T) {
	tests := []struct {
		name     string
		existing string // начало существующей часовой записи
		start    string // начало новой часовой записи
		wantErr  error
	}{
		{name: "identical interval", existing: "10:00", start: "10:00", wantErr: ErrSlotConflict},
		{name: "contained interval", existing: "10:00", start: "10:15", wantErr: ErrSlotConflict},
		{name: "partial overlap", existing: "10:00", start: "09:30", wantErr: ErrSlotConflict},
		{name: "touching after", existing: "10:00", start: "11:00"},
		{name: "touching before", existing: "10:00", start: "09:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(testService(60), &fakeSchedule{hours: testHours()})

			_, err := env.uc.Execute(context.Background(), testRequest(t, tt.existing))
			require.NoError(t, err)

			_, err = env.uc.Execute(context.Background(), testRequest(t, tt.start))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExecute_ConcurrentBookingsOneWins(t *testing.T) {
	env := newTestEnv(testService(60), &fakeSchedule{hours: testHours()})

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.uc.Execute(context.Background(), testRequest(t, "10:00"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes, conflicts int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case assert.ErrorIs(t, err, ErrSlotConflict):
			conflicts++
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
	assert.Len(t, env.repo.appointments, 1)
}

func TestExecute_UniqueIndexViolationMapsToConflict(t *testing.T) {
	env := newTestEnv(testService(60), &fakeSchedule{hours: testHours()})
	env.repo.createErr = apptStorage.ErrSlotTaken

	_, err := env.uc.Execute(context.Background(), testRequest(t, "10:00"))
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_CorruptStartTimeFailsOccupancy(t *testing.T) {
	// Активная запись с нечитаемым временем делает занятость
	// невычислимой: бронирование завершается ошибкой, а не вставкой
	env := newTestEnv(testService(60), &fakeSchedule{hours: testHours()})
	env.repo.appointments = append(env.repo.appointments, &domain.Appointment{
		ID:              "corrupt-1",
		TenantID:        testTenantID,
		DurationMinutes: 60,
		Date:            testRequest(t, "10:00").Date,
		StartTime:       "garbage",
		Status:          domain.StatusConfirmed,
	})

	_, err := env.uc.Execute(context.Background(), testRequest(t, "14:00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.Len(t, env.repo.appointments, 1)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	env := newTestEnv(testService(60), &fakeSchedule{hours: testHours()})
	env.repo.appointments = append(env.repo.appointments, &domain.Appointment{
		ID:              "cancelled-1",
		TenantID:        testTenantID,
		DurationMinutes: 60,
		Date:            testRequest(t, "10:00").Date,
		StartTime:       "10:00",
		Status:          domain.StatusCancelled,
	})

	_, err := env.uc.Execute(context.Background(), testRequest(t, "10:00"))
	assert.NoError(t, err)
}

func TestExecute_ClosedDate(t *testing.T) {
	env := newTestEnv(testService(60), &fakeSchedule{hours: testHours(), closed: true})

	_, err := env.uc.Execute(context.Background(), testRequest(t, "10:00"))
	assert.ErrorIs(t, err, ErrTenantClosed)
}

func TestExecute_ClosedWeekday(t *testing.T) {
	env := newTestEnv(testService(60), &fakeSchedule{
		hours: &domain.BusinessHours{TenantID: testTenantID, IsOpen: false},
	})

	_, err := env.uc.Execute(context.Background(), testRequest(t, "10:00"))
	assert.ErrorIs(t, err, ErrTenantClosed)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	tests := []struct {
		name  string
		start string
	}{
		{name: "before opening", start: "08:30"},
		{name: "ends after closing", start: "17:30"},
		{name: "after closing", start: "19:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(testService(60), &fakeSchedule{hours: testHours()})

			_, err := env.uc.Execute(context.Background(), testRequest(t, tt.start))
			assert.ErrorIs(t, err, ErrOutsideBusinessHours)
		})
	}
}

func TestExecute_ForeignServiceNotFound(t *testing.T) {
	foreign := testService(60)
	foreign.TenantID = "другой-тенант"
	env := newTestEnv(foreign, &fakeSchedule{hours: testHours()})

	_, err := env.uc.Execute(context.Background(), testRequest(t, "10:00"))
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveServiceNotFound(t *testing.T) {
	inactive := testService(60)
	inactive.Active = false
	env := newTestEnv(inactive, &fakeSchedule{hours: testHours()})

	_, err := env.uc.Execute(context.Background(), testRequest(t, "10:00"))
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_Validation(t *testing.T) {
	env := newTestEnv(testService(60), &fakeSchedule{hours: testHours()})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "empty tenant id", mutate: func(r *Request) { r.TenantID = "" }},
		{name: "empty service id", mutate: func(r *Request) { r.ServiceID = " " }},
		{name: "empty client name", mutate: func(r *Request) { r.ClientName = " " }},
		{name: "invalid start time", mutate: func(r *Request) { r.StartTime = "9:00" }},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest(t, "10:00")
			tt.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

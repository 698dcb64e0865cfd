package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	bookingRepo "github.com/petspa/PetSpa-BookingService/internal/infra/storage/booking"
	"github.com/petspa/PetSpa-BookingService/internal/integrations/staffservice"
	"github.com/petspa/PetSpa-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	booking *domain.Booking

	updatedDate  *time.Time
	updatedStaff *int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeBookingRepo) UpdateSchedule(_ context.Context, _ int64, executionDate time.Time, staffID *int64) error {
	f.updatedDate = &executionDate
	f.updatedStaff = staffID
	return nil
}

type fakeTaskRepo struct {
	tasks []*domain.Task

	deletedBookingID *int64
	createdTask      *domain.Task
}

func (f *fakeTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	task.ID = 5
	f.createdTask = task
	return task, nil
}

func (f *fakeTaskRepo) ListForDate(_ context.Context, _ time.Time, _ *int64) ([]*domain.Task, error) {
	return f.tasks, nil
}

func (f *fakeTaskRepo) DeleteByBookingID(_ context.Context, bookingID int64) error {
	f.deletedBookingID = &bookingID
	return nil
}

type fakeRequestRepo struct {
	created *domain.ChangeRequest
}

func (f *fakeRequestRepo) Create(_ context.Context, request *domain.ChangeRequest) (*domain.ChangeRequest, error) {
	request.ID = 15
	f.created = request
	return request, nil
}

type fakeStaffClient struct {
	staff map[int64]staffservice.Staff
}

func (f *fakeStaffClient) GetStaffList(_ context.Context) ([]staffservice.Staff, error) {
	list := make([]staffservice.Staff, 0, len(f.staff))
	for _, s := range f.staff {
		list = append(list, s)
	}
	return list, nil
}

func (f *fakeStaffClient) GetStaff(_ context.Context, staffID int64) (*staffservice.Staff, error) {
	s, ok := f.staff[staffID]
	if !ok {
		return nil, staffservice.ErrStaffNotFound
	}
	return &s, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fixture struct {
	uc          *UseCase
	bookingRepo *fakeBookingRepo
	taskRepo    *fakeTaskRepo
	requestRepo *fakeRequestRepo
}

func paidManualBooking() *domain.Booking {
	return &domain.Booking{
		ID:            42,
		UserID:        100,
		PetID:         10,
		ExecutionDate: time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC),
		Mode:          domain.ModeManual,
		StaffID:       ptr.Ptr(int64(1)),
		Status:        domain.StatusPaid,
		Items: []domain.OrderItem{
			{Quantity: 1, TimeWorkMinutes: 60},
		},
	}
}

func newFixture(now time.Time, booking *domain.Booking) *fixture {
	f := &fixture{
		bookingRepo: &fakeBookingRepo{booking: booking},
		taskRepo:    &fakeTaskRepo{},
		requestRepo: &fakeRequestRepo{},
	}

	staff := &fakeStaffClient{staff: map[int64]staffservice.Staff{
		1: {ID: 1, Status: staffservice.StatusActive},
		2: {ID: 2, Status: staffservice.StatusActive},
		3: {ID: 3, Status: staffservice.StatusInactive},
	}}

	f.uc = NewUseCase(f.bookingRepo, f.taskRepo, f.requestRepo, staff, fakeTxManager{}, nopLogger{})
	f.uc.timeProvider = fixedTime{t: now}
	return f
}

func validRequest() *Request {
	return &Request{
		BookingID: 42,
		UserID:    100,
		Date:      time.Date(2025, 10, 22, 0, 0, 0, 0, time.UTC),
		StartTime: "14:00",
	}
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	f := newFixture(now, paidManualBooking())

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	newSlot := time.Date(2025, 10, 22, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, newSlot, resp.ExecutionDate)
	assert.Equal(t, int64(15), resp.RequestID)

	// старый слот освобожден, новый зарезервирован за тем же сотрудником
	require.NotNil(t, f.taskRepo.deletedBookingID)
	assert.Equal(t, int64(42), *f.taskRepo.deletedBookingID)
	require.NotNil(t, f.taskRepo.createdTask)
	assert.Equal(t, int64(1), f.taskRepo.createdTask.StaffID)
	require.NotNil(t, f.taskRepo.createdTask.EstimatedCompletion)
	assert.Equal(t, newSlot.Add(time.Hour), *f.taskRepo.createdTask.EstimatedCompletion)

	// запись в журнале сохранена утвержденной
	require.NotNil(t, f.requestRepo.created)
	assert.Equal(t, domain.RequestApproved, f.requestRepo.created.Status)
	assert.Equal(t, newSlot, f.requestRepo.created.NewExecutionDate)
}

func TestExecute_OwnTaskIsNotAConflict(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	f := newFixture(now, paidManualBooking())

	// единственная задача на новую дату принадлежит самому бронированию
	f.taskRepo.tasks = []*domain.Task{{
		StaffID:       1,
		BookingID:     42,
		ExecutionDate: time.Date(2025, 10, 22, 14, 0, 0, 0, time.UTC),
	}}

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
}

func TestExecute_StaffConflictOnNewSlot(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	f := newFixture(now, paidManualBooking())

	// чужая задача сотрудника 1 пересекает интервал 14:00-15:00
	completion := time.Date(2025, 10, 22, 14, 30, 0, 0, time.UTC)
	f.taskRepo.tasks = []*domain.Task{{
		StaffID:             1,
		BookingID:           99,
		ExecutionDate:       time.Date(2025, 10, 22, 13, 30, 0, 0, time.UTC),
		EstimatedCompletion: &completion,
	}}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrStaffUnavailable)
	assert.Nil(t, f.bookingRepo.updatedDate, "schedule must not change on conflict")
	assert.Nil(t, f.requestRepo.created)
}

func TestExecute_WindowClosed(t *testing.T) {
	booking := paidManualBooking()
	// до исполнения меньше 24 часов
	now := booking.ExecutionDate.Add(-23 * time.Hour)
	f := newFixture(now, booking)

	req := validRequest()
	req.Date = time.Date(2025, 10, 25, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrRescheduleWindowClosed)
	assert.Nil(t, f.bookingRepo.updatedDate)
	assert.Nil(t, f.taskRepo.deletedBookingID)
}

func TestExecute_StatusGuards(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	for _, status := range []domain.BookingStatus{
		domain.StatusUnpaid,
		domain.StatusCompleted,
		domain.StatusCanceled,
	} {
		t.Run(string(status), func(t *testing.T) {
			booking := paidManualBooking()
			booking.Status = status
			f := newFixture(now, booking)

			_, err := f.uc.Execute(context.Background(), validRequest())

			assert.ErrorIs(t, err, ErrNotEditable)
		})
	}
}

func TestExecute_ChangeStaff(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	f := newFixture(now, paidManualBooking())

	req := validRequest()
	req.StaffID = ptr.Ptr(int64(2))

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.StaffID)
	assert.Equal(t, int64(2), *resp.StaffID)
	require.NotNil(t, f.taskRepo.createdTask)
	assert.Equal(t, int64(2), f.taskRepo.createdTask.StaffID)
}

func TestExecute_StaffChangeNotAllowedForAuto(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	booking := paidManualBooking()
	booking.Mode = domain.ModeAuto
	booking.StaffID = nil
	f := newFixture(now, booking)

	req := validRequest()
	req.StaffID = ptr.Ptr(int64(2))

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrStaffChangeNotAllowed)
}

func TestExecute_AutoUnassignedReschedule(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	booking := paidManualBooking()
	booking.Mode = domain.ModeAuto
	booking.StaffID = nil
	f := newFixture(now, booking)

	// Сотрудник 1 занят на новое время, но сотрудник 2 свободен
	f.taskRepo.tasks = []*domain.Task{{
		StaffID:       1,
		BookingID:     99,
		ExecutionDate: time.Date(2025, 10, 22, 14, 0, 0, 0, time.UTC),
	}}

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Nil(t, resp.StaffID)
	assert.Nil(t, f.taskRepo.createdTask, "unassigned booking has no task to recreate")
	require.NotNil(t, f.taskRepo.deletedBookingID)
}

func TestExecute_AutoRescheduleNoFreeStaff(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	booking := paidManualBooking()
	booking.Mode = domain.ModeAuto
	booking.StaffID = nil
	f := newFixture(now, booking)

	// Оба активных сотрудника заняты в интервале 14:00-15:00
	f.taskRepo.tasks = []*domain.Task{
		{StaffID: 1, BookingID: 98, ExecutionDate: time.Date(2025, 10, 22, 14, 0, 0, 0, time.UTC)},
		{StaffID: 2, BookingID: 99, ExecutionDate: time.Date(2025, 10, 22, 14, 30, 0, 0, time.UTC)},
	}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, f.bookingRepo.updatedDate, "schedule must not change when no staff is free")
	assert.Nil(t, f.taskRepo.deletedBookingID)
	assert.Nil(t, f.requestRepo.created)
}

func TestExecute_InactiveNewStaff(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	f := newFixture(now, paidManualBooking())

	req := validRequest()
	req.StaffID = ptr.Ptr(int64(3))

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrStaffInactive)
}

func TestExecute_AccessDenied(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	f := newFixture(now, paidManualBooking())

	req := validRequest()
	req.UserID = 777

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_BookingNotFound(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	f := newFixture(now, paidManualBooking())

	req := validRequest()
	req.BookingID = 404

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_SlotValidation(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{"off grid time", func(r *Request) { r.StartTime = "14:10" }, ErrInvalidTimeSlot},
		{"after closing", func(r *Request) { r.StartTime = "21:30" }, ErrInvalidTimeSlot},
		{"past slot", func(r *Request) {
			r.Date = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)
		}, ErrSlotInPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(now, paidManualBooking())
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

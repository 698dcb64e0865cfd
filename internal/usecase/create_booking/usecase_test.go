package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	"github.com/petspa/PetSpa-BookingService/internal/integrations/paymentservice"
	"github.com/petspa/PetSpa-BookingService/internal/integrations/petcatalog"
	"github.com/petspa/PetSpa-BookingService/internal/integrations/staffservice"
	"github.com/petspa/PetSpa-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	created *domain.Booking
	err     error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	booking.ID = 42
	f.created = booking
	return booking, nil
}

type fakeTaskRepo struct {
	tasks       []*domain.Task
	createdTask *domain.Task
	listErr     error
}

func (f *fakeTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	task.ID = 7
	f.createdTask = task
	return task, nil
}

func (f *fakeTaskRepo) ListForDate(_ context.Context, _ time.Time, _ *int64) ([]*domain.Task, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.tasks, nil
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

type fakeCatalogClient struct {
	pets     map[int64]petcatalog.Pet
	products map[int64]petcatalog.Product
}

func (f *fakeCatalogClient) GetPet(_ context.Context, petID int64) (*petcatalog.Pet, error) {
	p, ok := f.pets[petID]
	if !ok {
		return nil, petcatalog.ErrPetNotFound
	}
	return &p, nil
}

func (f *fakeCatalogClient) GetProduct(_ context.Context, productID int64) (*petcatalog.Product, error) {
	p, ok := f.products[productID]
	if !ok {
		return nil, petcatalog.ErrProductNotFound
	}
	return &p, nil
}

type fakePaymentClient struct {
	url string
	err error
}

func (f *fakePaymentClient) CreateDepositWithGracefulDegradation(_ context.Context, _ *paymentservice.DepositRequest) (*paymentservice.DepositResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &paymentservice.DepositResponse{URL: f.url}, nil
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
	staff       *fakeStaffClient
	catalog     *fakeCatalogClient
	payment     *fakePaymentClient
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		bookingRepo: &fakeBookingRepo{},
		taskRepo:    &fakeTaskRepo{},
		staff: &fakeStaffClient{staff: map[int64]staffservice.Staff{
			1: {ID: 1, FullName: "Anna", Status: staffservice.StatusActive},
			2: {ID: 2, FullName: "Boris", Status: staffservice.StatusActive},
		}},
		catalog: &fakeCatalogClient{
			pets: map[int64]petcatalog.Pet{
				10: {ID: 10, Name: "Rex", OwnerID: 100},
			},
			products: map[int64]petcatalog.Product{
				20: {ID: 20, Name: "Grooming", SellingPrice: 1000, TimeWorkMinutes: 60},
			},
		},
		payment: &fakePaymentClient{url: "https://pay.example/deposit/1"},
	}

	f.uc = NewUseCase(f.bookingRepo, f.taskRepo, f.staff, f.catalog, f.payment, fakeTxManager{}, nopLogger{})
	f.uc.timeProvider = fixedTime{t: now}
	return f
}

func validRequest() *Request {
	return &Request{
		UserID:    100,
		PetID:     10,
		Items:     []ItemRequest{{ProductID: 20, Quantity: 1}},
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		Mode:      domain.ModeManual,
		StaffID:   ptr.Ptr(int64(1)),
	}
}

func TestExecute_ManualSuccess(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	f := newFixture(now)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusUnpaid), resp.Status)
	assert.Equal(t, 1000.0, resp.FinalAmount)
	assert.Equal(t, 200.0, resp.DepositAmount)
	assert.NotEmpty(t, resp.InvoiceCode)
	require.NotNil(t, resp.PaymentURL)
	assert.Equal(t, "https://pay.example/deposit/1", *resp.PaymentURL)

	require.NotNil(t, f.taskRepo.createdTask)
	assert.Equal(t, int64(1), f.taskRepo.createdTask.StaffID)
	assert.Equal(t, int64(42), f.taskRepo.createdTask.BookingID)
	require.NotNil(t, f.taskRepo.createdTask.EstimatedCompletion)
	assert.Equal(t,
		time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC),
		*f.taskRepo.createdTask.EstimatedCompletion)
}

func TestExecute_ManualStaffConflict(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	f := newFixture(now)

	// Сотрудник 1 занят с 09:30 до 11:00, запрашиваемый интервал 10:00-11:00
	completion := time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC)
	f.taskRepo.tasks = []*domain.Task{{
		StaffID:             1,
		BookingID:           99,
		ExecutionDate:       time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC),
		EstimatedCompletion: &completion,
	}}

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrStaffUnavailable)
	assert.Nil(t, f.bookingRepo.created)
	assert.Nil(t, f.taskRepo.createdTask)
}

func TestExecute_AutoPicksFreeStaff(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	f := newFixture(now)

	// Сотрудник 1 занят в этот слот, но сотрудник 2 свободен
	f.taskRepo.tasks = []*domain.Task{{
		StaffID:       1,
		BookingID:     99,
		ExecutionDate: time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
	}}

	req := validRequest()
	req.Mode = domain.ModeAuto
	req.StaffID = nil

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, resp.StaffID, "AUTO booking is created unassigned")
	assert.Nil(t, f.taskRepo.createdTask, "no task until an operator assigns staff")
}

func TestExecute_AutoNoFreeStaff(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	f := newFixture(now)

	// Оба сотрудника заняты в запрашиваемый интервал
	f.taskRepo.tasks = []*domain.Task{
		{StaffID: 1, BookingID: 98, ExecutionDate: time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)},
		{StaffID: 2, BookingID: 99, ExecutionDate: time.Date(2025, 10, 15, 10, 30, 0, 0, time.UTC)},
	}

	req := validRequest()
	req.Mode = domain.ModeAuto
	req.StaffID = nil

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, f.bookingRepo.created)
}

func TestExecute_ValidationErrors(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{"manual without staff", func(r *Request) { r.StaffID = nil }, ErrInvalidInput},
		{"auto with staff", func(r *Request) { r.Mode = domain.ModeAuto }, ErrInvalidInput},
		{"no items", func(r *Request) { r.Items = nil }, ErrInvalidInput},
		{"bad time format", func(r *Request) { r.StartTime = "25:99" }, ErrInvalidInput},
		{"off grid time", func(r *Request) { r.StartTime = "10:15" }, ErrInvalidTimeSlot},
		{"before opening", func(r *Request) { r.StartTime = "08:30" }, ErrInvalidTimeSlot},
		{"at closing", func(r *Request) { r.StartTime = "21:00" }, ErrInvalidTimeSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(now)
			req := validRequest()
			tt.mutate(req)

			_, err := f.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, f.bookingRepo.created)
		})
	}
}

func TestExecute_SlotInPast(t *testing.T) {
	now := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	f := newFixture(now)

	req := validRequest()
	req.StartTime = "10:00" // совпадает с текущим моментом

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotInPast)
}

func TestExecute_PetOwnerMismatch(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	f := newFixture(now)

	req := validRequest()
	req.UserID = 777 // чужой питомец

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestExecute_InactiveStaff(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	f := newFixture(now)
	f.staff.staff[3] = staffservice.Staff{ID: 3, FullName: "Vera", Status: staffservice.StatusInactive}

	req := validRequest()
	req.StaffID = ptr.Ptr(int64(3))

	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrStaffInactive)
}

func TestExecute_PaymentDegraded(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	f := newFixture(now)
	f.payment.err = paymentservice.ErrServiceDegraded

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err, "booking survives a payment gateway outage")
	assert.Nil(t, resp.PaymentURL)
	assert.Equal(t, string(domain.StatusUnpaid), resp.Status)
	require.NotNil(t, f.bookingRepo.created)
}

func TestExecute_PaymentRejected(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	f := newFixture(now)
	f.payment.err = paymentservice.ErrPaymentRejected

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPaymentRejected)
}

func TestExecute_RepoErrorWrapsInternal(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	f := newFixture(now)
	f.taskRepo.listErr = errors.New("db down")

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}

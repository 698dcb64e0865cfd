package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	"github.com/petspa/PetSpa-BookingService/internal/integrations/staffservice"
	"github.com/petspa/PetSpa-BookingService/pkg/ptr"
	"github.com/petspa/PetSpa-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTaskRepo struct {
	tasks []*domain.Task
}

func (f *fakeTaskRepo) ListForDate(_ context.Context, _ time.Time, _ *int64) ([]*domain.Task, error) {
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

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newUseCase(now time.Time, tasks []*domain.Task, staff map[int64]staffservice.Staff) *UseCase {
	uc := NewUseCase(&fakeTaskRepo{tasks: tasks}, &fakeStaffClient{staff: staff}, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func slotByTime(t *testing.T, slots []Slot, startTime types.TimeString) Slot {
	t.Helper()
	for _, s := range slots {
		if s.StartTime == startTime {
			return s
		}
	}
	t.Fatalf("slot %s not found in grid", startTime)
	return Slot{}
}

func TestExecute_FullGridForFutureDate(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	staff := map[int64]staffservice.Staff{
		1: {ID: 1, Status: staffservice.StatusActive},
	}

	uc := newUseCase(now, nil, staff)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, Mode: domain.ModeAuto})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 24)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("20:30"), resp.Slots[23].StartTime)
	for _, s := range resp.Slots {
		assert.True(t, s.Available)
		assert.Equal(t, domain.SlotDurationMinutes, s.DurationMinutes)
	}
}

func TestExecute_PastSlotsOfTodayExcluded(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 10, 0, 0, time.UTC)
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	staff := map[int64]staffservice.Staff{
		1: {ID: 1, Status: staffservice.StatusActive},
	}

	uc := newUseCase(now, nil, staff)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, Mode: domain.ModeAuto})

	require.NoError(t, err)
	// первый будущий слот после 12:10 - 12:30
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, types.TimeString("12:30"), resp.Slots[0].StartTime)
	assert.Len(t, resp.Slots, 17)
}

func TestExecute_PastDateReturnsEmptyGrid(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	date := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)

	uc := newUseCase(now, nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, Mode: domain.ModeAuto})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ManualTaskIntervalBlocksSpannedSlots(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	staff := map[int64]staffservice.Staff{
		1: {ID: 1, Status: staffservice.StatusActive},
	}

	// Задача 10:00-11:30 занимает слоты 10:00, 10:30 и 11:00
	completion := time.Date(2025, 10, 15, 11, 30, 0, 0, time.UTC)
	tasks := []*domain.Task{{
		StaffID:             1,
		ExecutionDate:       time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		EstimatedCompletion: &completion,
	}}

	uc := newUseCase(now, tasks, staff)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:    date,
		Mode:    domain.ModeManual,
		StaffID: ptr.Ptr(int64(1)),
	})

	require.NoError(t, err)
	assert.True(t, slotByTime(t, resp.Slots, "09:30").Available)
	assert.False(t, slotByTime(t, resp.Slots, "10:00").Available)
	assert.False(t, slotByTime(t, resp.Slots, "10:30").Available)
	assert.False(t, slotByTime(t, resp.Slots, "11:00").Available)
	assert.True(t, slotByTime(t, resp.Slots, "11:30").Available, "completion boundary is free")
}

func TestExecute_AutoSlotFreeWhileAnyStaffFree(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	staff := map[int64]staffservice.Staff{
		1: {ID: 1, Status: staffservice.StatusActive},
		2: {ID: 2, Status: staffservice.StatusActive},
	}

	// В 10:00 занят только сотрудник 1, в 11:00 заняты оба
	tasks := []*domain.Task{
		{StaffID: 1, ExecutionDate: time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)},
		{StaffID: 1, ExecutionDate: time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC)},
		{StaffID: 2, ExecutionDate: time.Date(2025, 10, 15, 11, 0, 0, 0, time.UTC)},
	}

	uc := newUseCase(now, tasks, staff)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, Mode: domain.ModeAuto})

	require.NoError(t, err)
	assert.True(t, slotByTime(t, resp.Slots, "10:00").Available)
	assert.False(t, slotByTime(t, resp.Slots, "11:00").Available)
}

func TestExecute_InactiveStaffDoesNotCount(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	staff := map[int64]staffservice.Staff{
		1: {ID: 1, Status: staffservice.StatusInactive},
	}

	uc := newUseCase(now, nil, staff)

	resp, err := uc.Execute(context.Background(), &Request{Date: date, Mode: domain.ModeAuto})

	require.NoError(t, err)
	for _, s := range resp.Slots {
		assert.False(t, s.Available, "no active staff means no available slots")
	}
}

func TestExecute_ManualRequiresKnownActiveStaff(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	staff := map[int64]staffservice.Staff{
		1: {ID: 1, Status: staffservice.StatusInactive},
	}

	uc := newUseCase(now, nil, staff)

	_, err := uc.Execute(context.Background(), &Request{
		Date:    date,
		Mode:    domain.ModeManual,
		StaffID: ptr.Ptr(int64(99)),
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)

	_, err = uc.Execute(context.Background(), &Request{
		Date:    date,
		Mode:    domain.ModeManual,
		StaffID: ptr.Ptr(int64(1)),
	})
	assert.ErrorIs(t, err, ErrStaffInactive)
}

func TestExecute_InvalidRequest(t *testing.T) {
	now := time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC)
	uc := newUseCase(now, nil, nil)

	_, err := uc.Execute(context.Background(), &Request{
		Date: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Mode: domain.ModeManual,
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "MANUAL mode requires staffID")

	_, err = uc.Execute(context.Background(), &Request{Mode: domain.ModeAuto})
	assert.ErrorIs(t, err, ErrInvalidInput, "date is required")
}

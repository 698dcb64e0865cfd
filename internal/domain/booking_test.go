package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_TotalWorkMinutes(t *testing.T) {
	booking := &Booking{
		Items: []OrderItem{
			{Quantity: 1, TimeWorkMinutes: 30},
			{Quantity: 2, TimeWorkMinutes: 45},
			{Quantity: 3, TimeWorkMinutes: 0},
		},
	}

	assert.Equal(t, 120, booking.TotalWorkMinutes())
}

func TestBooking_StatusTransitions(t *testing.T) {
	tests := []struct {
		status        BookingStatus
		canCancel     bool
		canReschedule bool
		canComplete   bool
		terminal      bool
	}{
		{StatusUnpaid, true, false, false, false},
		{StatusPaid, true, true, true, false},
		{StatusCompleted, false, false, false, true},
		{StatusCanceled, false, false, false, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.canCancel, b.CanBeCancelled())
			assert.Equal(t, tt.canReschedule, b.CanBeRescheduled())
			assert.Equal(t, tt.canComplete, b.CanBeCompleted())
			assert.Equal(t, tt.terminal, b.IsTerminal())
		})
	}
}

func TestBooking_WithinNoticeWindow(t *testing.T) {
	executionDate := time.Date(2025, 10, 16, 12, 0, 0, 0, time.UTC)
	b := &Booking{ExecutionDate: executionDate}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"well before window", executionDate.Add(-48 * time.Hour), false},
		{"just outside window", executionDate.Add(-24*time.Hour - time.Minute), false},
		{"exactly 24h before", executionDate.Add(-24 * time.Hour), true},
		{"inside window", executionDate.Add(-time.Hour), true},
		{"after execution", executionDate.Add(time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.WithinNoticeWindow(tt.now))
		})
	}
}

func TestBooking_IsAssigned(t *testing.T) {
	staffID := int64(7)

	assert.False(t, (&Booking{}).IsAssigned())
	assert.True(t, (&Booking{StaffID: &staffID}).IsAssigned())
}

func TestAssignmentMode_IsValid(t *testing.T) {
	assert.True(t, ModeAuto.IsValid())
	assert.True(t, ModeManual.IsValid())
	assert.False(t, AssignmentMode("RANDOM").IsValid())
}

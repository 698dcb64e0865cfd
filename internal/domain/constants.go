package domain

import "time"

// Facility schedule constants. All times are facility-local.
const (
	OpeningHour         = 9
	ClosingHour         = 21
	SlotDurationMinutes = 30
	SlotsPerDay         = (ClosingHour - OpeningHour) * 60 / SlotDurationMinutes
)

// SlotStep is the distance between two adjacent slots in the daily grid.
const SlotStep = SlotDurationMinutes * time.Minute

// Payment and reschedule policy constants
const (
	// DepositRate is the fraction of the order total collected up front
	DepositRate = 0.2

	// RescheduleNoticeHours is the minimum distance between "now" and the
	// booked execution time for a PAID booking to still be editable
	RescheduleNoticeHours = 24
)

// Business validation constants
const (
	MaxNoteLength               = 500
	MaxCancellationReasonLength = 500
	MaxOrderItems               = 20
)

// Time format constants
const (
	TimeFormat     = "15:04"               // HH:MM
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // legacy wire format for execution dates
)

// ActiveStatuses список статусов, при которых бронирование удерживает слот
var ActiveStatuses = []BookingStatus{
	StatusUnpaid,
	StatusPaid,
	StatusCompleted,
}

// TerminalStatuses список финальных статусов
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCanceled,
}

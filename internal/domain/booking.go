package domain

import "time"

// BookingStatus represents the status of a booking (order)
type BookingStatus string

const (
	StatusUnpaid    BookingStatus = "UNPAID"
	StatusPaid      BookingStatus = "PAID"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCanceled  BookingStatus = "CANCELED"
)

// AssignmentMode describes how the staff member for a booking is chosen
type AssignmentMode string

const (
	// ModeAuto defers staff selection to the facility: the booking is
	// created unassigned and an operator binds a free staff member later
	ModeAuto AssignmentMode = "AUTO"

	// ModeManual means the customer named a specific staff member
	ModeManual AssignmentMode = "MANUAL"
)

// IsValid returns true for a known assignment mode
func (m AssignmentMode) IsValid() bool {
	return m == ModeAuto || m == ModeManual
}

// Booking represents a pet-care appointment order
type Booking struct {
	ID            int64
	InvoiceCode   string
	UserID        int64
	PetID         int64
	ExecutionDate time.Time
	Mode          AssignmentMode
	StaffID       *int64 // nil until resolved for AUTO bookings
	Status        BookingStatus
	FinalAmount   float64
	DepositAmount float64

	// Denormalized data for history
	PetName     string
	Note        *string
	Description *string

	Items []OrderItem

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem is a single service line item of a booking
type OrderItem struct {
	ID              int64
	BookingID       int64
	ProductID       int64
	ProductName     string
	Quantity        int
	SellingPrice    float64
	TimeWorkMinutes int
}

// TotalWorkMinutes returns the summed estimated work duration of all line items
func (b *Booking) TotalWorkMinutes() int {
	total := 0
	for _, item := range b.Items {
		total += item.TimeWorkMinutes * item.Quantity
	}
	return total
}

// IsActive returns true if the booking still holds its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCanceled
}

// IsTerminal returns true if the booking reached a final status
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCanceled
}

// CanBeCancelled returns true if the booking can be cancelled
// Cancellation carries no notice window; only terminal bookings are locked
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusUnpaid || b.Status == StatusPaid
}

// CanBeRescheduled returns true if the booking status permits editing
// date/staff. The 24-hour notice window is checked separately against a clock
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPaid
}

// CanBeCompleted returns true if the booking can transition to COMPLETED
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusPaid
}

// IsAssigned returns true if a staff member is bound to the booking
func (b *Booking) IsAssigned() bool {
	return b.StaffID != nil
}

// WithinNoticeWindow reports whether now is already inside the
// reschedule lock window before the execution date
func (b *Booking) WithinNoticeWindow(now time.Time) bool {
	return !now.Add(RescheduleNoticeHours * time.Hour).Before(b.ExecutionDate)
}

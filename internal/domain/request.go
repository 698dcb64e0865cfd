package domain

import "time"

// ChangeRequestStatus represents the status of a reschedule request
type ChangeRequestStatus string

const (
	RequestPending  ChangeRequestStatus = "PENDING"
	RequestApproved ChangeRequestStatus = "APPROVED"
	RequestRejected ChangeRequestStatus = "REJECTED"
)

// ChangeRequest is the audit record of a customer reschedule.
// The engine applies reschedules atomically, so requests are stored
// already approved; the history endpoint exposes them to the customer.
type ChangeRequest struct {
	ID               int64
	BookingID        int64
	NewExecutionDate time.Time
	NewStaffID       *int64
	Note             *string
	Status           ChangeRequestStatus
	CreatedAt        time.Time
}

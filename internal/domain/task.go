package domain

import "time"

// Task is a staff member's committed unit of work tied to one booking.
// It is the record the reservation store serializes on: for any staff
// member, task intervals never overlap.
type Task struct {
	ID            int64
	StaffID       int64
	BookingID     int64
	ExecutionDate time.Time
	// EstimatedCompletion is nil when the work duration is unknown;
	// such a task occupies exactly its start slot
	EstimatedCompletion *time.Time

	CreatedAt time.Time
}

// End returns the exclusive end of the task interval.
// A task without a completion estimate occupies a single slot.
func (t *Task) End() time.Time {
	if t.EstimatedCompletion != nil {
		return *t.EstimatedCompletion
	}
	return t.ExecutionDate.Add(SlotStep)
}

// BlocksSlot reports whether the task makes the given slot unavailable:
// either the task starts exactly at the slot, or a task with a known
// completion estimate spans it (start < slot < completion)
func (t *Task) BlocksSlot(slot time.Time) bool {
	if t.ExecutionDate.Equal(slot) {
		return true
	}
	if t.EstimatedCompletion != nil &&
		t.ExecutionDate.Before(slot) &&
		t.EstimatedCompletion.After(slot) {
		return true
	}
	return false
}

// Overlaps reports whether the task interval intersects [start, end).
// Touching boundaries do not count as overlap.
func (t *Task) Overlaps(start, end time.Time) bool {
	return t.ExecutionDate.Before(end) && t.End().After(start)
}

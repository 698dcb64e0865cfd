package reschedule_booking

import (
	"fmt"
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}

// validateSlot проверяет, что момент исполнения лежит на сетке слотов
// и не находится в прошлом
func validateSlot(slot time.Time, now time.Time) error {
	if !domain.IsSlotAligned(slot) {
		return fmt.Errorf("%w: time must be on a %d-minute boundary between %02d:00 and %02d:00",
			ErrInvalidTimeSlot, domain.SlotDurationMinutes, domain.OpeningHour, domain.ClosingHour)
	}

	if !slot.After(now) {
		return ErrSlotInPast
	}

	return nil
}

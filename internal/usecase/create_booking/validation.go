package create_booking

import (
	"fmt"
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.PetID <= 0 {
		return fmt.Errorf("%w: petID must be positive", ErrInvalidInput)
	}

	if len(req.Items) == 0 {
		return fmt.Errorf("%w: at least one order item is required", ErrInvalidInput)
	}

	if len(req.Items) > domain.MaxOrderItems {
		return fmt.Errorf("%w: too many order items, max %d", ErrInvalidInput, domain.MaxOrderItems)
	}

	for i, item := range req.Items {
		if item.ProductID <= 0 {
			return fmt.Errorf("%w: items[%d].productID must be positive", ErrInvalidInput, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: items[%d].quantity must be positive", ErrInvalidInput, i)
		}
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if !req.Mode.IsValid() {
		return fmt.Errorf("%w: mode must be AUTO or MANUAL", ErrInvalidInput)
	}

	// MANUAL требует выбранного сотрудника, AUTO создается без назначения
	if req.Mode == domain.ModeManual && req.StaffID == nil {
		return fmt.Errorf("%w: staffID is required for MANUAL mode", ErrInvalidInput)
	}
	if req.Mode == domain.ModeAuto && req.StaffID != nil {
		return fmt.Errorf("%w: staffID must be omitted for AUTO mode", ErrInvalidInput)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}
	if req.Description != nil && len(*req.Description) > domain.MaxNoteLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
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

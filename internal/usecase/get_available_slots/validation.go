package get_available_slots

import (
	"fmt"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Mode.IsValid() {
		return fmt.Errorf("%w: mode must be AUTO or MANUAL", ErrInvalidInput)
	}

	if req.Mode == domain.ModeManual && req.StaffID == nil {
		return fmt.Errorf("%w: staffID is required for MANUAL mode", ErrInvalidInput)
	}
	if req.Mode == domain.ModeAuto && req.StaffID != nil {
		return fmt.Errorf("%w: staffID must be omitted for AUTO mode", ErrInvalidInput)
	}

	return nil
}

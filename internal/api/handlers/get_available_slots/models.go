package get_available_slots

import (
	"github.com/petspa/PetSpa-BookingService/internal/domain"
	getAvailableSlots "github.com/petspa/PetSpa-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// SlotsResponse HTTP модель ответа со слотами на дату
type SlotsResponse struct {
	Date  string         `json:"date"` // "2025-10-15"
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
		})
	}

	return &SlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}

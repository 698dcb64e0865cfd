package reschedule_booking

import (
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	rescheduleBooking "github.com/petspa/PetSpa-BookingService/internal/usecase/reschedule_booking"
	"github.com/petspa/PetSpa-BookingService/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	ExecutionDate string  `json:"executionDate"` // "2025-10-15"
	StartTime     string  `json:"startTime"`     // "10:00"
	StaffID       *int64  `json:"staffId,omitempty"`
	Note          *string `json:"note,omitempty"`
}

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"userId"`
	PetID         int64  `json:"petId"`
	ExecutionDate string `json:"executionDate"`
	StartTime     string `json:"startTime"`
	Mode          string `json:"mode"`
	StaffID       *int64 `json:"staffId,omitempty"`
	Status        string `json:"status"`
	RequestID     int64  `json:"requestId"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID, userID int64) (*rescheduleBooking.Request, error) {
	executionDate, err := time.Parse(domain.DateFormat, r.ExecutionDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
		Date:      executionDate,
		StartTime: startTime,
		StaffID:   r.StaffID,
		Note:      r.Note,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		ID:            resp.ID,
		UserID:        resp.UserID,
		PetID:         resp.PetID,
		ExecutionDate: resp.ExecutionDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		Mode:          resp.Mode,
		StaffID:       resp.StaffID,
		Status:        resp.Status,
		RequestID:     resp.RequestID,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}

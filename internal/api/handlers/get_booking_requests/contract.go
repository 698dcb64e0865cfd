package get_booking_requests

import (
	"context"

	"github.com/petspa/PetSpa-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetRequests(ctx context.Context, bookingID int64, userID int64) (*models.ChangeRequestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

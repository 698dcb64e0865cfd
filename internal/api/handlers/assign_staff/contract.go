package assign_staff

import (
	"context"

	"github.com/petspa/PetSpa-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	AssignStaff(ctx context.Context, req *models.AssignStaffRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

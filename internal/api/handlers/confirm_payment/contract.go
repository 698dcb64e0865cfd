package confirm_payment

import (
	"context"

	"github.com/petspa/PetSpa-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	ConfirmPayment(ctx context.Context, req *models.ConfirmPaymentRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

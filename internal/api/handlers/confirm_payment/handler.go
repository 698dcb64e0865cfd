package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/petspa/PetSpa-BookingService/internal/api/handlers"
	"github.com/petspa/PetSpa-BookingService/internal/service/bookings"
	"github.com/petspa/PetSpa-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidOrderID     = "некорректный ID заказа"
	msgNotFound           = "бронирование не найдено"
	msgInvalidStatus      = "статус бронирования не допускает подтверждение оплаты"
	msgPaymentFailed      = "оплата не прошла"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/callback
// Вызывается платёжным шлюзом после завершения оплаты депозита
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/callback - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.OrderID <= 0 {
		h.logger.Warn("POST /payments/callback - Invalid order ID: %d", req.OrderID)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	err := h.service.ConfirmPayment(r.Context(), &models.ConfirmPaymentRequest{
		BookingID:    req.OrderID,
		InvoiceCode:  req.InvoiceCode,
		ResponseCode: req.ResponseCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /payments/callback - Booking not found: order_id=%d", req.OrderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("POST /payments/callback - Invalid status: order_id=%d", req.OrderID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidStatus)

		case errors.Is(err, bookings.ErrPaymentFailed):
			h.logger.Warn("POST /payments/callback - Payment failed: order_id=%d, code=%s",
				req.OrderID, req.ResponseCode)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgPaymentFailed)

		default:
			h.logger.Error("POST /payments/callback - Failed to confirm payment: order_id=%d, error=%v",
				req.OrderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/callback - Payment confirmed: order_id=%d", req.OrderID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

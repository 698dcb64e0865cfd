package complete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/petspa/PetSpa-BookingService/internal/api/handlers"
	"github.com/petspa/PetSpa-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgInvalidStatus    = "завершить можно только оплаченное бронирование"
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

// Handle PATCH /internal/bookings/{bookingId}/complete
// Внутренний эндпоинт для оператора: фиксирует оказание услуги
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /internal/bookings/{id}/complete - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Complete(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /internal/bookings/{id}/complete - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /internal/bookings/{id}/complete - Invalid status: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /internal/bookings/{id}/complete - Failed to complete: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /internal/bookings/{id}/complete - Booking completed: booking_id=%d", bookingID)
	w.WriteHeader(http.StatusNoContent)
}

package reschedule_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/petspa/PetSpa-BookingService/internal/api/handlers"
	"github.com/petspa/PetSpa-BookingService/internal/api/middleware"
	rescheduleBooking "github.com/petspa/PetSpa-BookingService/internal/usecase/reschedule_booking"
)

const (
	msgInvalidBookingID     = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "бронирование не найдено"
	msgForbidden            = "доступ запрещен"
	msgNotEditable          = "бронирование нельзя перенести в текущем статусе"
	msgWindowClosed         = "перенос возможен не позднее чем за 24 часа до исполнения"
	msgStaffChangeForbidden = "смена сотрудника недоступна для автоматического назначения"
	msgStaffNotFound        = "сотрудник не найден"
	msgStaffInactive        = "сотрудник неактивен"
	msgStaffUnavailable     = "сотрудник занят в выбранное время"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
	msgSlotInPast           = "выбранный временной слот уже прошел"
	msgInvalidTimeSlot      = "некорректный временной слот"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, userID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleBooking.ErrNotEditable):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Not editable: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotEditable)

		case errors.Is(err, rescheduleBooking.ErrRescheduleWindowClosed):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Window closed: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgWindowClosed)

		case errors.Is(err, rescheduleBooking.ErrStaffChangeNotAllowed):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Staff change not allowed: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgStaffChangeForbidden)

		case errors.Is(err, rescheduleBooking.ErrStaffNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Staff not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, rescheduleBooking.ErrStaffInactive):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Staff inactive: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgStaffInactive)

		case errors.Is(err, rescheduleBooking.ErrStaffUnavailable):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Staff unavailable: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgStaffUnavailable)

		case errors.Is(err, rescheduleBooking.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot not available: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, rescheduleBooking.ErrSlotInPast):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot in past: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, rescheduleBooking.ErrInvalidTimeSlot):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid time slot: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid input: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /bookings/{id}/reschedule - Failed to reschedule: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/reschedule - Booking rescheduled successfully: booking_id=%d, user_id=%d",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

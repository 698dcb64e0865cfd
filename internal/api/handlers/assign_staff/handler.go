package assign_staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/petspa/PetSpa-BookingService/internal/api/handlers"
	"github.com/petspa/PetSpa-BookingService/internal/service/bookings"
	"github.com/petspa/PetSpa-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "бронирование не найдено"
	msgStaffNotFound      = "сотрудник не найден"
	msgStaffInactive      = "сотрудник неактивен"
	msgStaffUnavailable   = "сотрудник занят во время бронирования"
	msgAlreadyAssigned    = "сотрудник уже назначен на бронирование"
	msgNotAutoMode        = "назначение доступно только для автоматического режима"
	msgInvalidStatus      = "статус бронирования не допускает назначение"
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

// Handle POST /internal/bookings/{bookingId}/staff
// Внутренний эндпоинт для оператора: привязывает сотрудника к AUTO бронированию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /internal/bookings/{id}/staff - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req AssignStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /internal/bookings/{id}/staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.AssignStaff(r.Context(), &models.AssignStaffRequest{
		BookingID: bookingID,
		StaffID:   req.StaffID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /internal/bookings/{id}/staff - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrStaffNotFound):
			h.logger.Warn("POST /internal/bookings/{id}/staff - Staff not found: staff_id=%d", req.StaffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, bookings.ErrStaffInactive):
			h.logger.Warn("POST /internal/bookings/{id}/staff - Staff inactive: staff_id=%d", req.StaffID)
			handlers.RespondError(w, http.StatusConflict, msgStaffInactive)

		case errors.Is(err, bookings.ErrStaffUnavailable):
			h.logger.Warn("POST /internal/bookings/{id}/staff - Staff unavailable: booking_id=%d, staff_id=%d",
				bookingID, req.StaffID)
			handlers.RespondError(w, http.StatusConflict, msgStaffUnavailable)

		case errors.Is(err, bookings.ErrAlreadyAssigned):
			h.logger.Warn("POST /internal/bookings/{id}/staff - Already assigned: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyAssigned)

		case errors.Is(err, bookings.ErrNotAutoMode):
			h.logger.Warn("POST /internal/bookings/{id}/staff - Not auto mode: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotAutoMode)

		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("POST /internal/bookings/{id}/staff - Invalid status: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /internal/bookings/{id}/staff - Invalid input: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /internal/bookings/{id}/staff - Failed to assign staff: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /internal/bookings/{id}/staff - Staff assigned: booking_id=%d, staff_id=%d",
		bookingID, req.StaffID)
	w.WriteHeader(http.StatusNoContent)
}

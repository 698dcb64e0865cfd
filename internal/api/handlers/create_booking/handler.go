package create_booking

import (
	"errors"
	"net/http"

	"github.com/petspa/PetSpa-BookingService/internal/api/handlers"
	"github.com/petspa/PetSpa-BookingService/internal/api/middleware"
	createBooking "github.com/petspa/PetSpa-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgPetNotFound        = "питомец не найден"
	msgProductNotFound    = "услуга не найдена"
	msgStaffNotFound      = "сотрудник не найден"
	msgStaffInactive      = "сотрудник неактивен"
	msgStaffUnavailable   = "сотрудник занят в выбранное время"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgSlotInPast         = "выбранный временной слот уже прошел"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgPaymentRejected    = "платёжный шлюз отклонил создание депозита"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrStaffUnavailable):
			h.logger.Warn("POST /bookings - Staff unavailable: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgStaffUnavailable)

		case errors.Is(err, createBooking.ErrPetNotFound):
			h.logger.Warn("POST /bookings - Pet not found: user_id=%d, pet_id=%d", userID, req.PetID)
			handlers.RespondNotFound(w, msgPetNotFound)

		case errors.Is(err, createBooking.ErrProductNotFound):
			h.logger.Warn("POST /bookings - Product not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgProductNotFound)

		case errors.Is(err, createBooking.ErrStaffNotFound):
			h.logger.Warn("POST /bookings - Staff not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, createBooking.ErrStaffInactive):
			h.logger.Warn("POST /bookings - Staff inactive: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgStaffInactive)

		case errors.Is(err, createBooking.ErrSlotInPast):
			h.logger.Warn("POST /bookings - Slot in past: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrPaymentRejected):
			h.logger.Warn("POST /bookings - Payment rejected: user_id=%d", userID)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentRejected)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/api/handlers"
	"github.com/petspa/PetSpa-BookingService/internal/domain"
	getAvailableSlots "github.com/petspa/PetSpa-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidMode    = "некорректный режим назначения, ожидается AUTO или MANUAL"
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgStaffNotFound  = "сотрудник не найден"
	msgStaffInactive  = "сотрудник неактивен"
	msgInvalidRequest = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD&mode=AUTO|MANUAL&staffId=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	mode := domain.AssignmentMode(query.Get("mode"))
	if mode == "" {
		mode = domain.ModeAuto
	}
	if !mode.IsValid() {
		h.logger.Warn("GET /slots - Invalid mode: %s", query.Get("mode"))
		handlers.RespondBadRequest(w, msgInvalidMode)
		return
	}

	var staffID *int64
	if raw := query.Get("staffId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /slots - Invalid staff ID: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		staffID = &parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:    date,
		Mode:    mode,
		StaffID: staffID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrStaffNotFound):
			h.logger.Warn("GET /slots - Staff not found: staff_id=%v", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, getAvailableSlots.ErrStaffInactive):
			h.logger.Warn("GET /slots - Staff inactive: staff_id=%v", staffID)
			handlers.RespondError(w, http.StatusConflict, msgStaffInactive)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /slots - Failed to get slots: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved successfully: date=%s, count=%d",
		date.Format(domain.DateFormat), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

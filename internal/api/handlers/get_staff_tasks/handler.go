package get_staff_tasks

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/api/handlers"
	"github.com/petspa/PetSpa-BookingService/internal/domain"
	"github.com/petspa/PetSpa-BookingService/internal/service/tasks"
	"github.com/petspa/PetSpa-BookingService/internal/service/tasks/models"
)

const (
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgInvalidRequest = "некорректные параметры запроса"
)

type Handler struct {
	service TaskService
	logger  Logger
}

func NewHandler(service TaskService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /internal/tasks?date=YYYY-MM-DD&staffId=N
// Внутренний эндпоинт для оператора: расписание задач сотрудников на дату
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /internal/tasks - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var staffID *int64
	if raw := query.Get("staffId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /internal/tasks - Invalid staff ID: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		staffID = &parsed
	}

	result, err := h.service.GetForDate(r.Context(), &models.GetTasksRequest{
		Date:    date,
		StaffID: staffID,
	})
	if err != nil {
		switch {
		case errors.Is(err, tasks.ErrInvalidInput):
			h.logger.Warn("GET /internal/tasks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /internal/tasks - Failed to get tasks: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /internal/tasks - Tasks retrieved successfully: date=%s, count=%d",
		date.Format(domain.DateFormat), len(result.Tasks))
	handlers.RespondJSON(w, http.StatusOK, result.Tasks)
}

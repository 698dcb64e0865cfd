package get_available_slots

import (
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	"github.com/petspa/PetSpa-BookingService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	Date    time.Time             // Дата, на которую запрашивается сетка
	Mode    domain.AssignmentMode // Режим назначения сотрудника (AUTO/MANUAL)
	StaffID *int64                // ID сотрудника (обязателен для MANUAL)
}

// Slot один слот дневной сетки
type Slot struct {
	StartTime       types.TimeString // Время начала слота
	DurationMinutes int              // Длительность слота
	Available       bool             // Свободен ли слот для бронирования
}

// Response модель ответа со слотами на дату
type Response struct {
	Date  time.Time // Запрошенная дата
	Slots []Slot    // Сетка слотов (прошедшие слоты сегодняшнего дня не включаются)
}

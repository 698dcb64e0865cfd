package reschedule_booking

import (
	"time"

	"github.com/petspa/PetSpa-BookingService/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID int64            // ID бронирования
	UserID    int64            // ID пользователя (владельца бронирования)
	Date      time.Time        // Новая дата исполнения
	StartTime types.TimeString // Новое время начала слота
	StaffID   *int64           // Новый сотрудник (только для MANUAL, опционально)
	Note      *string          // Комментарий к переносу (опционально)
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID            int64            // ID бронирования
	UserID        int64            // ID пользователя
	PetID         int64            // ID питомца
	ExecutionDate time.Time        // Новая дата и время исполнения
	StartTime     types.TimeString // Новое время начала слота
	Mode          string           // Режим назначения
	StaffID       *int64           // Назначенный сотрудник
	Status        string           // Статус бронирования
	RequestID     int64            // ID записи в журнале переносов
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

package get_available_slots

import (
	"context"
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	"github.com/petspa/PetSpa-BookingService/internal/integrations/staffservice"
)

// TaskRepository интерфейс репозитория задач сотрудников
type TaskRepository interface {
	ListForDate(ctx context.Context, date time.Time, staffID *int64) ([]*domain.Task, error)
}

// StaffServiceClient интерфейс клиента справочника персонала
type StaffServiceClient interface {
	GetStaffList(ctx context.Context) ([]staffservice.Staff, error)
	GetStaff(ctx context.Context, staffID int64) (*staffservice.Staff, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

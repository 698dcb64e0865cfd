package reschedule_booking

import (
	"context"
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	"github.com/petspa/PetSpa-BookingService/internal/integrations/staffservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateSchedule(ctx context.Context, id int64, executionDate time.Time, staffID *int64) error
}

// TaskRepository интерфейс репозитория задач сотрудников
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	ListForDate(ctx context.Context, date time.Time, staffID *int64) ([]*domain.Task, error)
	DeleteByBookingID(ctx context.Context, bookingID int64) error
}

// ChangeRequestRepository интерфейс журнала запросов на перенос
type ChangeRequestRepository interface {
	Create(ctx context.Context, request *domain.ChangeRequest) (*domain.ChangeRequest, error)
}

// StaffServiceClient интерфейс клиента справочника персонала
type StaffServiceClient interface {
	GetStaffList(ctx context.Context) ([]staffservice.Staff, error)
	GetStaff(ctx context.Context, staffID int64) (*staffservice.Staff, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

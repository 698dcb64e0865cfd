package bookings

import (
	"context"
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	"github.com/petspa/PetSpa-BookingService/internal/integrations/staffservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	AssignStaff(ctx context.Context, id int64, staffID int64) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// TaskRepository интерфейс репозитория задач сотрудников
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	ListForDate(ctx context.Context, date time.Time, staffID *int64) ([]*domain.Task, error)
	DeleteByBookingID(ctx context.Context, bookingID int64) error
}

// ChangeRequestRepository интерфейс журнала запросов на перенос
type ChangeRequestRepository interface {
	GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.ChangeRequest, error)
}

// StaffServiceClient интерфейс клиента справочника персонала
type StaffServiceClient interface {
	GetStaff(ctx context.Context, staffID int64) (*staffservice.Staff, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

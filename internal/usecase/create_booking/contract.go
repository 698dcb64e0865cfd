package create_booking

import (
	"context"
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	"github.com/petspa/PetSpa-BookingService/internal/integrations/paymentservice"
	"github.com/petspa/PetSpa-BookingService/internal/integrations/petcatalog"
	"github.com/petspa/PetSpa-BookingService/internal/integrations/staffservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TaskRepository интерфейс репозитория задач сотрудников
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	ListForDate(ctx context.Context, date time.Time, staffID *int64) ([]*domain.Task, error)
}

// StaffServiceClient интерфейс клиента справочника персонала
type StaffServiceClient interface {
	GetStaffList(ctx context.Context) ([]staffservice.Staff, error)
	GetStaff(ctx context.Context, staffID int64) (*staffservice.Staff, error)
}

// PetCatalogClient интерфейс клиента каталога питомцев и услуг
type PetCatalogClient interface {
	GetPet(ctx context.Context, petID int64) (*petcatalog.Pet, error)
	GetProduct(ctx context.Context, productID int64) (*petcatalog.Product, error)
}

// PaymentServiceClient интерфейс клиента платёжного шлюза
type PaymentServiceClient interface {
	CreateDepositWithGracefulDegradation(ctx context.Context, req *paymentservice.DepositRequest) (*paymentservice.DepositResponse, error)
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

package tasks

import (
	"context"
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
)

// TaskRepository интерфейс репозитория задач сотрудников
type TaskRepository interface {
	ListForDate(ctx context.Context, date time.Time, staffID *int64) ([]*domain.Task, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

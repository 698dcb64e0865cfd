package get_staff_tasks

import (
	"context"

	"github.com/petspa/PetSpa-BookingService/internal/service/tasks/models"
)

type TaskService interface {
	GetForDate(ctx context.Context, req *models.GetTasksRequest) (*models.TaskListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

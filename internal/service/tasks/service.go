package tasks

import (
	"context"
	"fmt"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	"github.com/petspa/PetSpa-BookingService/internal/service/tasks/models"
)

// Service сервис расписания задач сотрудников
type Service struct {
	taskRepo TaskRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса задач
func NewService(taskRepo TaskRepository, logger Logger) *Service {
	return &Service{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// GetForDate возвращает задачи сотрудников на календарную дату
// Опционально фильтрует по сотруднику
func (s *Service) GetForDate(ctx context.Context, req *models.GetTasksRequest) (*models.TaskListResponse, error) {
	s.logger.Info("GetForDate: fetching tasks for date=%s, staff=%v", req.Date.Format(domain.DateFormat), req.StaffID)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StaffID != nil && *req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	tasks, err := s.taskRepo.ListForDate(ctx, req.Date, req.StaffID)
	if err != nil {
		s.logger.Error("GetForDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetForDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetForDate: successfully fetched %d tasks", len(tasks))
	return models.FromDomainTaskList(tasks), nil
}

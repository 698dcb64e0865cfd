package models

import (
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
)

// GetTasksRequest запрос расписания задач на дату
type GetTasksRequest struct {
	Date    time.Time `json:"date"`
	StaffID *int64    `json:"staffId,omitempty"` // Фильтр по сотруднику (опционально)
}

// TaskResponse задача сотрудника
type TaskResponse struct {
	ID                  int64     `json:"id"`
	StaffID             int64     `json:"staffId"`
	BookingID           int64     `json:"bookingId"`
	ExecutionDate       string    `json:"executionDate"` // "2025-10-15T10:00:00"
	EstimatedCompletion *string   `json:"estimatedCompletion,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

// TaskListResponse ответ со списком задач
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// FromDomainTask конвертирует domain модель в DTO
func FromDomainTask(t *domain.Task) *TaskResponse {
	if t == nil {
		return nil
	}

	resp := &TaskResponse{
		ID:            t.ID,
		StaffID:       t.StaffID,
		BookingID:     t.BookingID,
		ExecutionDate: t.ExecutionDate.Format(domain.DateTimeFormat),
		CreatedAt:     t.CreatedAt,
	}

	if t.EstimatedCompletion != nil {
		completion := t.EstimatedCompletion.Format(domain.DateTimeFormat)
		resp.EstimatedCompletion = &completion
	}

	return resp
}

// FromDomainTaskList конвертирует список domain моделей в DTO
func FromDomainTaskList(tasks []*domain.Task) *TaskListResponse {
	result := &TaskListResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
	}
	for _, t := range tasks {
		result.Tasks = append(result.Tasks, *FromDomainTask(t))
	}
	return result
}

package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	staffClient "github.com/petspa/PetSpa-BookingService/internal/integrations/staffservice"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	taskRepo     TaskRepository
	staffClient  StaffServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(taskRepo TaskRepository, staffClient StaffServiceClient, logger Logger) *UseCase {
	return &UseCase{
		taskRepo:     taskRepo,
		staffClient:  staffClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Чтение без транзакции: ответ носит информационный характер,
// гарантия доступности дается только при создании бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, mode=%s", req.Date.Format(domain.DateFormat), req.Mode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Для прошедшей даты слотов нет
	if isDateInPast(req.Date, now) {
		return &Response{Date: req.Date, Slots: []Slot{}}, nil
	}

	// 4. Разрешаем сотрудников
	var activeStaff []staffClient.Staff
	if req.Mode == domain.ModeManual {
		staff, err := uc.staffClient.GetStaff(ctx, *req.StaffID)
		if err != nil {
			if errors.Is(err, staffClient.ErrStaffNotFound) {
				uc.logger.Warn("GetAvailableSlots: staff id=%d not found", *req.StaffID)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get staff id=%d: %v", *req.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		if !staff.IsActive() {
			uc.logger.Warn("GetAvailableSlots: staff id=%d is not active", *req.StaffID)
			return nil, ErrStaffInactive
		}
	} else {
		staffList, err := uc.staffClient.GetStaffList(ctx)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to get staff list: %v", err)
			return nil, fmt.Errorf("%w: failed to get staff list: %v", ErrInternal, err)
		}
		for _, s := range staffList {
			if s.IsActive() {
				activeStaff = append(activeStaff, s)
			}
		}
	}

	// 5. Загружаем задачи на дату
	tasks, err := uc.taskRepo.ListForDate(ctx, req.Date, req.StaffID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list tasks: %v", err)
		return nil, fmt.Errorf("%w: failed to list tasks: %v", ErrInternal, err)
	}

	// 6. Строим сетку
	slots := buildSlots(req.Date, now, req.Mode, req.StaffID, activeStaff, tasks)

	uc.logger.Info("GetAvailableSlots: date=%s, %d slots in grid", req.Date.Format(domain.DateFormat), len(slots))

	return &Response{Date: req.Date, Slots: slots}, nil
}

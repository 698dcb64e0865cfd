package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	bookingRepo "github.com/petspa/PetSpa-BookingService/internal/infra/storage/booking"
	staffClient "github.com/petspa/PetSpa-BookingService/internal/integrations/staffservice"
	"github.com/petspa/PetSpa-BookingService/pkg/types"
)

// UseCase use case для переноса бронирования
type UseCase struct {
	bookingRepo BookingRepository
	taskRepo    TaskRepository
	requestRepo ChangeRequestRepository
	staffClient StaffServiceClient
	txManager   TransactionManager

	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	taskRepo TaskRepository,
	requestRepo ChangeRequestRepository,
	staffClient StaffServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		taskRepo:     taskRepo,
		requestRepo:  requestRepo,
		staffClient:  staffClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переноса бронирования
// Перенос применяется атомарно: освобождение старого слота, резервирование
// нового и запись в журнал переносов выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, user=%d, date=%s, time=%s",
		req.BookingID, req.UserID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Привязываем время слота к дате и проверяем сетку
	slot, err := req.StartTime.At(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := validateSlot(slot, now); err != nil {
		uc.logger.Warn("RescheduleBooking: slot validation failed: %v", err)
		return nil, err
	}

	// 4. Предварительное чтение бронирования для разрешения сотрудника
	// Окончательные проверки повторяются внутри транзакции под блокировкой
	preview, err := uc.getBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if preview.UserID != req.UserID {
		uc.logger.Warn("RescheduleBooking: booking id=%d belongs to another user", req.BookingID)
		return nil, ErrAccessDenied
	}

	// 5. Определяем целевого сотрудника
	// AUTO бронирование сохраняет назначение, менять сотрудника нельзя
	targetStaffID, staffChanged, err := uc.resolveTargetStaff(preview, req.StaffID)
	if err != nil {
		return nil, err
	}

	// 6. Новый сотрудник должен существовать и быть активным
	if staffChanged {
		staff, err := uc.staffClient.GetStaff(ctx, *targetStaffID)
		if err != nil {
			if errors.Is(err, staffClient.ErrStaffNotFound) {
				uc.logger.Warn("RescheduleBooking: staff id=%d not found", *targetStaffID)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get staff id=%d: %v", *targetStaffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		if !staff.IsActive() {
			uc.logger.Warn("RescheduleBooking: staff id=%d is not active", *targetStaffID)
			return nil, ErrStaffInactive
		}
	}

	// 7. Для неназначенного AUTO бронирования собираем активных сотрудников:
	// перенос допустим, только если хотя бы один из них свободен на новое время
	var activeStaff []staffClient.Staff
	if targetStaffID == nil {
		staffList, err := uc.staffClient.GetStaffList(ctx)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get staff list: %v", err)
			return nil, fmt.Errorf("%w: failed to get staff list: %v", ErrInternal, err)
		}
		for _, s := range staffList {
			if s.IsActive() {
				activeStaff = append(activeStaff, s)
			}
		}
		if len(activeStaff) == 0 {
			uc.logger.Warn("RescheduleBooking: no active staff available")
			return nil, ErrSlotNotAvailable
		}
	}

	var result *domain.Booking
	var requestID int64

	// 8. Применяем перенос в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Перечитываем бронирование под блокировкой (FOR UPDATE)
		booking, err := uc.getBooking(txCtx, req.BookingID)
		if err != nil {
			return err
		}
		if booking.UserID != req.UserID {
			return ErrAccessDenied
		}

		// 8.2. Проверяем статус и окно переноса
		if !booking.CanBeRescheduled() {
			uc.logger.Warn("RescheduleBooking: booking id=%d has status %s, not editable", booking.ID, booking.Status)
			return ErrNotEditable
		}
		if booking.WithinNoticeWindow(now) {
			uc.logger.Warn("RescheduleBooking: booking id=%d is within %d hours of execution",
				booking.ID, domain.RescheduleNoticeHours)
			return ErrRescheduleWindowClosed
		}

		// 8.3. Проверяем доступность нового слота (FOR UPDATE)
		// Собственная задача бронирования не считается конфликтом
		end := proposedEnd(slot, booking.TotalWorkMinutes())
		if targetStaffID != nil {
			tasks, err := uc.taskRepo.ListForDate(txCtx, slot, targetStaffID)
			if err != nil {
				uc.logger.Error("RescheduleBooking: failed to list tasks: %v", err)
				return fmt.Errorf("%w: failed to list tasks: %v", ErrInternal, err)
			}

			if staffHasConflict(excludeBooking(tasks, booking.ID), *targetStaffID, slot, end) {
				uc.logger.Warn("RescheduleBooking: staff id=%d has a conflicting task at %s",
					*targetStaffID, slot.Format(domain.DateTimeFormat))
				return ErrStaffUnavailable
			}
		} else {
			tasks, err := uc.taskRepo.ListForDate(txCtx, slot, nil)
			if err != nil {
				uc.logger.Error("RescheduleBooking: failed to list tasks: %v", err)
				return fmt.Errorf("%w: failed to list tasks: %v", ErrInternal, err)
			}

			if !anyActiveStaffFree(activeStaff, excludeBooking(tasks, booking.ID), slot, end) {
				uc.logger.Warn("RescheduleBooking: no free staff for slot %s", slot.Format(domain.DateTimeFormat))
				return ErrSlotNotAvailable
			}
		}

		// 8.4. Освобождаем старый слот и резервируем новый
		if err := uc.taskRepo.DeleteByBookingID(txCtx, booking.ID); err != nil {
			uc.logger.Error("RescheduleBooking: failed to delete old task: %v", err)
			return fmt.Errorf("%w: failed to delete old task: %v", ErrInternal, err)
		}

		if targetStaffID != nil {
			task := &domain.Task{
				StaffID:       *targetStaffID,
				BookingID:     booking.ID,
				ExecutionDate: slot,
			}
			if work := booking.TotalWorkMinutes(); work > 0 {
				end := slot.Add(time.Duration(work) * time.Minute)
				task.EstimatedCompletion = &end
			}
			if _, err := uc.taskRepo.Create(txCtx, task); err != nil {
				uc.logger.Error("RescheduleBooking: failed to create new task: %v", err)
				return fmt.Errorf("%w: failed to create new task: %v", ErrInternal, err)
			}
		}

		// 8.5. Обновляем расписание бронирования
		if err := uc.bookingRepo.UpdateSchedule(txCtx, booking.ID, slot, targetStaffID); err != nil {
			uc.logger.Error("RescheduleBooking: failed to update schedule: %v", err)
			return fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
		}

		// 8.6. Записываем перенос в журнал
		// Переносы применяются сразу, запись сохраняется утвержденной
		request, err := uc.requestRepo.Create(txCtx, &domain.ChangeRequest{
			BookingID:        booking.ID,
			NewExecutionDate: slot,
			NewStaffID:       targetStaffID,
			Note:             req.Note,
			Status:           domain.RequestApproved,
		})
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to create change request: %v", err)
			return fmt.Errorf("%w: failed to create change request: %v", ErrInternal, err)
		}

		booking.ExecutionDate = slot
		booking.StaffID = targetStaffID
		result = booking
		requestID = request.ID
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: booking id=%d rescheduled to %s, request id=%d",
		result.ID, slot.Format(domain.DateTimeFormat), requestID)

	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		PetID:         result.PetID,
		ExecutionDate: result.ExecutionDate,
		StartTime:     types.NewTimeString(result.ExecutionDate),
		Mode:          string(result.Mode),
		StaffID:       result.StaffID,
		Status:        string(result.Status),
		RequestID:     requestID,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// getBooking читает бронирование, транслируя ошибку хранилища в ошибку usecase
func (uc *UseCase) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

// resolveTargetStaff определяет сотрудника после переноса
func (uc *UseCase) resolveTargetStaff(booking *domain.Booking, requestedStaffID *int64) (*int64, bool, error) {
	if requestedStaffID == nil {
		return booking.StaffID, false, nil
	}

	if booking.Mode == domain.ModeAuto {
		uc.logger.Warn("RescheduleBooking: staff change requested for auto-assigned booking id=%d", booking.ID)
		return nil, false, ErrStaffChangeNotAllowed
	}

	if booking.StaffID != nil && *booking.StaffID == *requestedStaffID {
		return booking.StaffID, false, nil
	}

	return requestedStaffID, true, nil
}

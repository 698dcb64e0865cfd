package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	bookingRepo "github.com/petspa/PetSpa-BookingService/internal/infra/storage/booking"
	"github.com/petspa/PetSpa-BookingService/internal/integrations/paymentservice"
	staffClient "github.com/petspa/PetSpa-BookingService/internal/integrations/staffservice"
	"github.com/petspa/PetSpa-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с жизненным циклом бронирований
type Service struct {
	bookingRepo BookingRepository
	taskRepo    TaskRepository
	requestRepo ChangeRequestRepository
	staffClient StaffServiceClient
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	taskRepo TaskRepository,
	requestRepo ChangeRequestRepository,
	staffClient StaffServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		taskRepo:    taskRepo,
		requestRepo: requestRepo,
		staffClient: staffClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование владельца
// Освобождение задачи сотрудника и смена статуса выполняются в одной транзакции
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "Cancel", bookingID)
		if err != nil {
			return err
		}

		if booking.UserID != req.UserID {
			s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}

		// Освобождаем слот сотрудника
		if err := s.taskRepo.DeleteByBookingID(txCtx, bookingID); err != nil {
			s.logger.Error("Cancel: failed to delete task for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - failed to delete task: %v", ErrInternal, err)
		}

		if err := s.bookingRepo.Cancel(txCtx, bookingID, req.CancellationReason); err != nil {
			s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// ConfirmPayment обрабатывает callback платёжного шлюза о результате оплаты депозита
// Код ответа "00" переводит UNPAID бронирование в PAID
// Повторный callback для уже оплаченного бронирования идемпотентен
func (s *Service) ConfirmPayment(ctx context.Context, req *models.ConfirmPaymentRequest) error {
	s.logger.Info("ConfirmPayment: booking id=%d, response code=%s", req.BookingID, req.ResponseCode)

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "ConfirmPayment", req.BookingID)
		if err != nil {
			return err
		}

		// Callback идентифицирует платёж парой orderId + invoiceCode
		if req.InvoiceCode != "" && req.InvoiceCode != booking.InvoiceCode {
			s.logger.Warn("ConfirmPayment: invoice code mismatch for booking id=%d", req.BookingID)
			return ErrBookingNotFound
		}

		// Повторный callback после успешной оплаты
		if booking.Status == domain.StatusPaid {
			s.logger.Info("ConfirmPayment: booking id=%d already paid, ignoring duplicate callback", req.BookingID)
			return nil
		}

		if booking.Status != domain.StatusUnpaid {
			s.logger.Warn("ConfirmPayment: booking id=%d has status %s, cannot confirm payment", req.BookingID, booking.Status)
			return ErrInvalidStatus
		}

		if req.ResponseCode != paymentservice.ResponseCodeSuccess {
			s.logger.Warn("ConfirmPayment: payment failed for booking id=%d, code=%s", req.BookingID, req.ResponseCode)
			return ErrPaymentFailed
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, req.BookingID, domain.StatusPaid); err != nil {
			s.logger.Error("ConfirmPayment: repository error for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: ConfirmPayment - repository error: %v", ErrInternal, err)
		}

		s.logger.Info("ConfirmPayment: booking id=%d marked as paid", req.BookingID)
		return nil
	})
}

// Complete переводит оплаченное бронирование в COMPLETED
// Вызывается оператором после оказания услуги
func (s *Service) Complete(ctx context.Context, bookingID int64) error {
	s.logger.Info("Complete: completing booking id=%d", bookingID)

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "Complete", bookingID)
		if err != nil {
			return err
		}

		if !booking.CanBeCompleted() {
			s.logger.Warn("Complete: booking id=%d has status %s, cannot complete", bookingID, booking.Status)
			return ErrInvalidStatus
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusCompleted); err != nil {
			s.logger.Error("Complete: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
		}

		s.logger.Info("Complete: booking id=%d completed", bookingID)
		return nil
	})
}

// AssignStaff назначает сотрудника на AUTO бронирование
// Проверка конфликтов и резервирование задачи выполняются
// в сериализуемой транзакции
func (s *Service) AssignStaff(ctx context.Context, req *models.AssignStaffRequest) error {
	s.logger.Info("AssignStaff: booking id=%d, staff id=%d", req.BookingID, req.StaffID)

	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	// Сотрудник должен существовать и быть активным
	staff, err := s.staffClient.GetStaff(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffClient.ErrStaffNotFound) {
			s.logger.Warn("AssignStaff: staff id=%d not found", req.StaffID)
			return ErrStaffNotFound
		}
		s.logger.Error("AssignStaff: failed to get staff id=%d: %v", req.StaffID, err)
		return fmt.Errorf("%w: AssignStaff - failed to get staff: %v", ErrInternal, err)
	}
	if !staff.IsActive() {
		s.logger.Warn("AssignStaff: staff id=%d is not active", req.StaffID)
		return ErrStaffInactive
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "AssignStaff", req.BookingID)
		if err != nil {
			return err
		}

		if booking.Mode != domain.ModeAuto {
			s.logger.Warn("AssignStaff: booking id=%d has mode %s", req.BookingID, booking.Mode)
			return ErrNotAutoMode
		}
		if booking.IsAssigned() {
			s.logger.Warn("AssignStaff: booking id=%d already assigned to staff id=%d", req.BookingID, *booking.StaffID)
			return ErrAlreadyAssigned
		}
		if booking.IsTerminal() {
			s.logger.Warn("AssignStaff: booking id=%d has terminal status %s", req.BookingID, booking.Status)
			return ErrInvalidStatus
		}

		// Проверяем конфликты с задачами сотрудника (FOR UPDATE)
		tasks, err := s.taskRepo.ListForDate(txCtx, booking.ExecutionDate, &req.StaffID)
		if err != nil {
			s.logger.Error("AssignStaff: failed to list tasks: %v", err)
			return fmt.Errorf("%w: AssignStaff - failed to list tasks: %v", ErrInternal, err)
		}

		start := booking.ExecutionDate
		end := start.Add(domain.SlotStep)
		if work := booking.TotalWorkMinutes(); work > 0 {
			end = start.Add(time.Duration(work) * time.Minute)
		}

		for _, t := range tasks {
			if t.StaffID == req.StaffID && t.Overlaps(start, end) {
				s.logger.Warn("AssignStaff: staff id=%d has a conflicting task at %s",
					req.StaffID, start.Format(domain.DateTimeFormat))
				return ErrStaffUnavailable
			}
		}

		// Резервируем слот задачей сотрудника
		task := &domain.Task{
			StaffID:       req.StaffID,
			BookingID:     booking.ID,
			ExecutionDate: start,
		}
		if work := booking.TotalWorkMinutes(); work > 0 {
			completion := start.Add(time.Duration(work) * time.Minute)
			task.EstimatedCompletion = &completion
		}
		if _, err := s.taskRepo.Create(txCtx, task); err != nil {
			s.logger.Error("AssignStaff: failed to create task: %v", err)
			return fmt.Errorf("%w: AssignStaff - failed to create task: %v", ErrInternal, err)
		}

		if err := s.bookingRepo.AssignStaff(txCtx, req.BookingID, req.StaffID); err != nil {
			s.logger.Error("AssignStaff: repository error for booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: AssignStaff - repository error: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("AssignStaff: staff id=%d assigned to booking id=%d", req.StaffID, req.BookingID)
	return nil
}

// GetRequests возвращает историю переносов бронирования
// Пользователь видит только историю своих бронирований
func (s *Service) GetRequests(ctx context.Context, bookingID int64, userID int64) (*models.ChangeRequestListResponse, error) {
	s.logger.Info("GetRequests: fetching change requests for booking id=%d, user=%d", bookingID, userID)

	booking, err := s.getBooking(ctx, "GetRequests", bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID != userID {
		s.logger.Warn("GetRequests: access denied for user=%d to booking id=%d", userID, bookingID)
		return nil, ErrAccessDenied
	}

	requests, err := s.requestRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		s.logger.Error("GetRequests: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetRequests - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRequests: successfully fetched %d requests for booking id=%d", len(requests), bookingID)
	return models.FromDomainChangeRequestList(requests), nil
}

// getBooking читает бронирование, транслируя ошибку хранилища в ошибку сервиса
func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

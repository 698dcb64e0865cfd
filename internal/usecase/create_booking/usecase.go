package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	"github.com/petspa/PetSpa-BookingService/internal/integrations/paymentservice"
	petClient "github.com/petspa/PetSpa-BookingService/internal/integrations/petcatalog"
	staffClient "github.com/petspa/PetSpa-BookingService/internal/integrations/staffservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	taskRepo      TaskRepository
	staffClient   StaffServiceClient
	catalogClient PetCatalogClient
	paymentClient PaymentServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	taskRepo TaskRepository,
	staffClient StaffServiceClient,
	catalogClient PetCatalogClient,
	paymentClient PaymentServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		taskRepo:      taskRepo,
		staffClient:   staffClient,
		catalogClient: catalogClient,
		paymentClient: paymentClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности слота и резервирование выполняются в одной
// сериализуемой транзакции, чтобы исключить двойное бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, pet=%d, date=%s, time=%s, mode=%s",
		req.UserID, req.PetID, req.Date.Format(domain.DateFormat), req.StartTime, req.Mode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
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
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем питомца и проверяем владельца
	pet, err := uc.catalogClient.GetPet(ctx, req.PetID)
	if err != nil {
		if errors.Is(err, petClient.ErrPetNotFound) {
			uc.logger.Warn("CreateBooking: pet id=%d not found", req.PetID)
			return nil, ErrPetNotFound
		}
		uc.logger.Error("CreateBooking: failed to get pet id=%d: %v", req.PetID, err)
		return nil, fmt.Errorf("%w: failed to get pet: %v", ErrInternal, err)
	}
	if pet.OwnerID != req.UserID {
		uc.logger.Warn("CreateBooking: pet id=%d does not belong to user id=%d", req.PetID, req.UserID)
		return nil, ErrPetNotFound
	}

	// 5. Получаем услуги каталога, считаем стоимость и суммарную длительность
	items := make([]domain.OrderItem, 0, len(req.Items))
	finalAmount := 0.0
	totalWorkMinutes := 0
	for _, itemReq := range req.Items {
		product, err := uc.catalogClient.GetProduct(ctx, itemReq.ProductID)
		if err != nil {
			if errors.Is(err, petClient.ErrProductNotFound) {
				uc.logger.Warn("CreateBooking: product id=%d not found", itemReq.ProductID)
				return nil, ErrProductNotFound
			}
			uc.logger.Error("CreateBooking: failed to get product id=%d: %v", itemReq.ProductID, err)
			return nil, fmt.Errorf("%w: failed to get product: %v", ErrInternal, err)
		}

		items = append(items, domain.OrderItem{
			ProductID:       product.ID,
			ProductName:     product.Name,
			Quantity:        itemReq.Quantity,
			SellingPrice:    product.SellingPrice,
			TimeWorkMinutes: product.TimeWorkMinutes,
		})
		finalAmount += product.SellingPrice * float64(itemReq.Quantity)
		totalWorkMinutes += product.TimeWorkMinutes * itemReq.Quantity
	}

	end := proposedEnd(slot, totalWorkMinutes)

	// 6. Разрешаем сотрудника до транзакции
	// MANUAL: проверяем существование и активность выбранного сотрудника
	// AUTO: загружаем весь список для проверки доступности внутри транзакции
	var activeStaff []staffClient.Staff
	if req.Mode == domain.ModeManual {
		staff, err := uc.staffClient.GetStaff(ctx, *req.StaffID)
		if err != nil {
			if errors.Is(err, staffClient.ErrStaffNotFound) {
				uc.logger.Warn("CreateBooking: staff id=%d not found", *req.StaffID)
				return nil, ErrStaffNotFound
			}
			uc.logger.Error("CreateBooking: failed to get staff id=%d: %v", *req.StaffID, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		if !staff.IsActive() {
			uc.logger.Warn("CreateBooking: staff id=%d is not active", *req.StaffID)
			return nil, ErrStaffInactive
		}
	} else {
		staffList, err := uc.staffClient.GetStaffList(ctx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get staff list: %v", err)
			return nil, fmt.Errorf("%w: failed to get staff list: %v", ErrInternal, err)
		}
		for _, s := range staffList {
			if s.IsActive() {
				activeStaff = append(activeStaff, s)
			}
		}
		if len(activeStaff) == 0 {
			uc.logger.Warn("CreateBooking: no active staff available")
			return nil, ErrSlotNotAvailable
		}
	}

	var result *domain.Booking

	// 7. Check-and-reserve в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Загружаем задачи на дату с блокировкой (FOR UPDATE)
		var staffFilter *int64
		if req.Mode == domain.ModeManual {
			staffFilter = req.StaffID
		}
		tasks, err := uc.taskRepo.ListForDate(txCtx, slot, staffFilter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list tasks: %v", err)
			return fmt.Errorf("%w: failed to list tasks: %v", ErrInternal, err)
		}

		// 7.2. Проверяем доступность
		if req.Mode == domain.ModeManual {
			if staffHasConflict(tasks, *req.StaffID, slot, end) {
				uc.logger.Warn("CreateBooking: staff id=%d has a conflicting task at %s",
					*req.StaffID, slot.Format(domain.DateTimeFormat))
				return ErrStaffUnavailable
			}
		} else {
			if !anyActiveStaffFree(activeStaff, tasks, slot, end) {
				uc.logger.Warn("CreateBooking: no free staff for slot %s", slot.Format(domain.DateTimeFormat))
				return ErrSlotNotAvailable
			}
		}

		// 7.3. Создаем бронирование с денормализацией данных питомца
		booking := &domain.Booking{
			InvoiceCode:   uuid.NewString(),
			UserID:        req.UserID,
			PetID:         req.PetID,
			ExecutionDate: slot,
			Mode:          req.Mode,
			StaffID:       req.StaffID,
			Status:        domain.StatusUnpaid,
			FinalAmount:   finalAmount,
			DepositAmount: finalAmount * domain.DepositRate,
			PetName:       pet.Name,
			Note:          req.Note,
			Description:   req.Description,
			Items:         items,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 7.4. Для MANUAL резервируем слот задачей сотрудника
		// AUTO бронирование создается без назначения, задачу создаст оператор
		if req.Mode == domain.ModeManual {
			task := &domain.Task{
				StaffID:       *req.StaffID,
				BookingID:     created.ID,
				ExecutionDate: slot,
			}
			if totalWorkMinutes > 0 {
				task.EstimatedCompletion = &end
			}
			if _, err := uc.taskRepo.Create(txCtx, task); err != nil {
				uc.logger.Error("CreateBooking: failed to create task: %v", err)
				return fmt.Errorf("%w: failed to create task: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, invoice=%s", result.ID, result.InvoiceCode)

	// 8. Инициируем оплату депозита вне транзакции
	// При недоступности шлюза бронирование остаётся UNPAID без ссылки на оплату
	var paymentURL *string
	deposit, err := uc.paymentClient.CreateDepositWithGracefulDegradation(ctx, &paymentservice.DepositRequest{
		OrderID:     result.ID,
		InvoiceCode: result.InvoiceCode,
		Amount:      result.DepositAmount,
		AccountID:   result.UserID,
	})
	switch {
	case err == nil:
		paymentURL = &deposit.URL
	case errors.Is(err, paymentservice.ErrServiceDegraded):
		uc.logger.Warn("CreateBooking: payment service degraded, booking id=%d stays UNPAID without payment url", result.ID)
	case errors.Is(err, paymentservice.ErrPaymentRejected):
		uc.logger.Warn("CreateBooking: deposit rejected for booking id=%d", result.ID)
		return nil, ErrPaymentRejected
	default:
		uc.logger.Error("CreateBooking: failed to create deposit for booking id=%d: %v", result.ID, err)
		return nil, fmt.Errorf("%w: failed to create deposit: %v", ErrInternal, err)
	}

	return toResponse(result, req.StartTime, paymentURL), nil
}

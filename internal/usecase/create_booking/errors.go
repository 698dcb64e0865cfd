package create_booking

import "errors"

var (
	// ErrPetNotFound возвращается, когда питомец не найден или не принадлежит пользователю
	ErrPetNotFound = errors.New("create_booking: pet not found")

	// ErrProductNotFound возвращается, когда услуга не найдена в каталоге
	ErrProductNotFound = errors.New("create_booking: product not found")

	// ErrStaffNotFound возвращается, когда выбранный сотрудник не найден
	ErrStaffNotFound = errors.New("create_booking: staff member not found")

	// ErrStaffInactive возвращается, когда выбранный сотрудник неактивен
	ErrStaffInactive = errors.New("create_booking: staff member is not active")

	// ErrStaffUnavailable возвращается, когда у выбранного сотрудника
	// есть пересекающаяся задача на это время
	ErrStaffUnavailable = errors.New("create_booking: staff member is unavailable at this time")

	// ErrSlotNotAvailable возвращается, когда ни один активный сотрудник
	// не свободен на выбранный слот
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrSlotInPast возвращается при попытке забронировать прошедший слот
	ErrSlotInPast = errors.New("create_booking: slot is in the past")

	// ErrInvalidTimeSlot возвращается, когда время не лежит на сетке слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrPaymentRejected возвращается, когда платёжный шлюз отклонил создание депозита
	ErrPaymentRejected = errors.New("create_booking: payment gateway rejected the deposit")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

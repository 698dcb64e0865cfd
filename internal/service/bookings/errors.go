package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidStatus возвращается, когда статус бронирования не допускает операцию
	ErrInvalidStatus = errors.New("invalid booking status for this operation")

	// ErrPaymentFailed возвращается, когда платёжный шлюз сообщил о неуспешной оплате
	ErrPaymentFailed = errors.New("payment failed")

	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrStaffInactive возвращается, когда сотрудник неактивен
	ErrStaffInactive = errors.New("staff member is not active")

	// ErrStaffUnavailable возвращается, когда у сотрудника есть
	// пересекающаяся задача на время бронирования
	ErrStaffUnavailable = errors.New("staff member is unavailable at this time")

	// ErrAlreadyAssigned возвращается, когда сотрудник уже назначен на бронирование
	ErrAlreadyAssigned = errors.New("booking already has an assigned staff member")

	// ErrNotAutoMode возвращается при попытке назначить сотрудника
	// на бронирование с ручным выбором
	ErrNotAutoMode = errors.New("staff assignment is only available for auto-assigned bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("reschedule_booking: access denied")

	// ErrNotEditable возвращается, когда статус бронирования не допускает перенос
	// Переносить можно только оплаченные (PAID) бронирования
	ErrNotEditable = errors.New("reschedule_booking: booking is not editable")

	// ErrRescheduleWindowClosed возвращается, когда до исполнения осталось
	// меньше 24 часов
	ErrRescheduleWindowClosed = errors.New("reschedule_booking: reschedule window is closed")

	// ErrStaffChangeNotAllowed возвращается при попытке сменить сотрудника
	// у AUTO бронирования
	ErrStaffChangeNotAllowed = errors.New("reschedule_booking: staff change is not allowed for auto-assigned bookings")

	// ErrStaffNotFound возвращается, когда новый сотрудник не найден
	ErrStaffNotFound = errors.New("reschedule_booking: staff member not found")

	// ErrStaffInactive возвращается, когда новый сотрудник неактивен
	ErrStaffInactive = errors.New("reschedule_booking: staff member is not active")

	// ErrStaffUnavailable возвращается, когда у сотрудника есть
	// пересекающаяся задача на новое время
	ErrStaffUnavailable = errors.New("reschedule_booking: staff member is unavailable at this time")

	// ErrSlotNotAvailable возвращается, когда ни один активный сотрудник
	// не свободен на новое время (для неназначенных AUTO бронирований)
	ErrSlotNotAvailable = errors.New("reschedule_booking: slot is not available")

	// ErrSlotInPast возвращается при попытке перенести бронирование на прошедший слот
	ErrSlotInPast = errors.New("reschedule_booking: slot is in the past")

	// ErrInvalidTimeSlot возвращается, когда время не лежит на сетке слотов
	ErrInvalidTimeSlot = errors.New("reschedule_booking: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)

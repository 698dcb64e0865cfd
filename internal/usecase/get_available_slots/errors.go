package get_available_slots

import "errors"

var (
	// ErrStaffNotFound возвращается, когда выбранный сотрудник не найден
	ErrStaffNotFound = errors.New("get_available_slots: staff member not found")

	// ErrStaffInactive возвращается, когда выбранный сотрудник неактивен
	ErrStaffInactive = errors.New("get_available_slots: staff member is not active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)

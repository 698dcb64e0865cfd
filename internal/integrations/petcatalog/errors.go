package petcatalog

import "errors"

var (
	// ErrPetNotFound возвращается, когда питомец не найден
	ErrPetNotFound = errors.New("pet not found")

	// ErrProductNotFound возвращается, когда услуга не найдена в каталоге
	ErrProductNotFound = errors.New("product not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("petcatalog client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("petcatalog client: invalid response")
)

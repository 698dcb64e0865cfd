package paymentservice

import "errors"

var (
	// ErrPaymentRejected возвращается, когда шлюз отклонил создание платежа
	ErrPaymentRejected = errors.New("payment gateway rejected the deposit")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("paymentservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что шлюз недоступен: бронирование остаётся UNPAID,
	// клиент сможет инициировать оплату повторно
	ErrServiceDegraded = errors.New("paymentservice unavailable: graceful degradation applied")
)

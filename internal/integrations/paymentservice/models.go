package paymentservice

// ResponseCodeSuccess код успешной оплаты в callback от шлюза
// Любое другое значение означает неуспешный платёж
const ResponseCodeSuccess = "00"

// PaymentType поддерживаемый тип платежа
const PaymentTypeVNPay = "VNPAY"

// DepositRequest запрос на создание депозитного платежа
type DepositRequest struct {
	OrderID     int64   `json:"orderId"`
	InvoiceCode string  `json:"invoiceCode"`
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"paymentType"`
	CallbackURL string  `json:"callbackUrl"`
	AccountID   int64   `json:"accountId"`
}

// DepositResponse ответ шлюза с URL для редиректа на страницу оплаты
type DepositResponse struct {
	URL string `json:"url"`
}

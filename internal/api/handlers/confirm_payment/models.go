package confirm_payment

// ConfirmPaymentRequest callback платёжного шлюза
type ConfirmPaymentRequest struct {
	OrderID      int64  `json:"orderId"`
	InvoiceCode  string `json:"invoiceCode"`
	ResponseCode string `json:"responseCode"` // "00" - успешная оплата
}

package models

import (
	"errors"
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// ConfirmPaymentRequest callback платёжного шлюза о результате оплаты депозита
type ConfirmPaymentRequest struct {
	BookingID    int64  `json:"orderId"`
	InvoiceCode  string `json:"invoiceCode"`
	ResponseCode string `json:"responseCode"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// AssignStaffRequest запрос на назначение сотрудника на AUTO бронирование
type AssignStaffRequest struct {
	BookingID int64 `json:"bookingId"`
	StaffID   int64 `json:"staffId"`
}

// Response модели

// OrderItemResponse позиция заказа
type OrderItemResponse struct {
	ID              int64   `json:"id"`
	ProductID       int64   `json:"productId"`
	ProductName     string  `json:"productName"`
	Quantity        int     `json:"quantity"`
	SellingPrice    float64 `json:"sellingPrice"`
	TimeWorkMinutes int     `json:"timeWorkMinutes"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64  `json:"id"`
	InvoiceCode   string `json:"invoiceCode"`
	UserID        int64  `json:"userId"`
	PetID         int64  `json:"petId"`
	ExecutionDate string `json:"executionDate"` // "2025-10-15"
	StartTime     string `json:"startTime"`     // "10:00"
	Mode          string `json:"mode"`
	StaffID       *int64 `json:"staffId,omitempty"`
	Status        string `json:"status"`

	FinalAmount   float64 `json:"finalAmount"`
	DepositAmount float64 `json:"depositAmount"`

	// Денормализованные данные
	PetName     string              `json:"petName"`
	Note        *string             `json:"note,omitempty"`
	Description *string             `json:"description,omitempty"`
	Items       []OrderItemResponse `json:"items"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ChangeRequestResponse запись журнала переносов
type ChangeRequestResponse struct {
	ID               int64     `json:"id"`
	BookingID        int64     `json:"bookingId"`
	NewExecutionDate string    `json:"newExecutionDate"` // "2025-10-15T10:00:00"
	NewStaffID       *int64    `json:"newStaffId,omitempty"`
	Note             *string   `json:"note,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ChangeRequestListResponse ответ с историей переносов бронирования
type ChangeRequestListResponse struct {
	Requests []ChangeRequestResponse `json:"requests"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	items := make([]OrderItemResponse, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, OrderItemResponse{
			ID:              item.ID,
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			Quantity:        item.Quantity,
			SellingPrice:    item.SellingPrice,
			TimeWorkMinutes: item.TimeWorkMinutes,
		})
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		InvoiceCode:        b.InvoiceCode,
		UserID:             b.UserID,
		PetID:              b.PetID,
		ExecutionDate:      b.ExecutionDate.Format(domain.DateFormat),
		StartTime:          b.ExecutionDate.Format(domain.TimeFormat),
		Mode:               string(b.Mode),
		StaffID:            b.StaffID,
		Status:             string(b.Status),
		FinalAmount:        b.FinalAmount,
		DepositAmount:      b.DepositAmount,
		PetName:            b.PetName,
		Note:               b.Note,
		Description:        b.Description,
		Items:              items,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, *FromDomainBooking(b))
	}
	return result
}

// FromDomainChangeRequest конвертирует запись журнала переносов в DTO
func FromDomainChangeRequest(r *domain.ChangeRequest) *ChangeRequestResponse {
	if r == nil {
		return nil
	}

	return &ChangeRequestResponse{
		ID:               r.ID,
		BookingID:        r.BookingID,
		NewExecutionDate: r.NewExecutionDate.Format(domain.DateTimeFormat),
		NewStaffID:       r.NewStaffID,
		Note:             r.Note,
		Status:           string(r.Status),
		CreatedAt:        r.CreatedAt,
	}
}

// FromDomainChangeRequestList конвертирует список записей журнала в DTO
func FromDomainChangeRequestList(requests []*domain.ChangeRequest) *ChangeRequestListResponse {
	result := &ChangeRequestListResponse{
		Requests: make([]ChangeRequestResponse, 0, len(requests)),
	}
	for _, r := range requests {
		result.Requests = append(result.Requests, *FromDomainChangeRequest(r))
	}
	return result
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusUnpaid:
		return domain.StatusUnpaid, nil
	case domain.StatusPaid:
		return domain.StatusPaid, nil
	case domain.StatusCompleted:
		return domain.StatusCompleted, nil
	case domain.StatusCanceled:
		return domain.StatusCanceled, nil
	default:
		return "", ErrInvalidStatus
	}
}

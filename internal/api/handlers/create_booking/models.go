package create_booking

import (
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	createBooking "github.com/petspa/PetSpa-BookingService/internal/usecase/create_booking"
	"github.com/petspa/PetSpa-BookingService/pkg/types"
)

// OrderItemRequest позиция заказа в HTTP запросе
type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PetID         int64              `json:"petId"`
	Items         []OrderItemRequest `json:"items"`
	ExecutionDate string             `json:"executionDate"` // "2025-10-15"
	StartTime     string             `json:"startTime"`     // "10:00"
	Mode          string             `json:"mode"`          // "AUTO" | "MANUAL"
	StaffID       *int64             `json:"staffId,omitempty"`
	Note          *string            `json:"note,omitempty"`
	Description   *string            `json:"description,omitempty"`
}

// OrderItemResponse позиция заказа в HTTP ответе
type OrderItemResponse struct {
	ID              int64   `json:"id"`
	ProductID       int64   `json:"productId"`
	ProductName     string  `json:"productName"`
	Quantity        int     `json:"quantity"`
	SellingPrice    float64 `json:"sellingPrice"`
	TimeWorkMinutes int     `json:"timeWorkMinutes"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64               `json:"id"`
	InvoiceCode   string              `json:"invoiceCode"`
	UserID        int64               `json:"userId"`
	PetID         int64               `json:"petId"`
	PetName       string              `json:"petName"`
	ExecutionDate string              `json:"executionDate"`
	StartTime     string              `json:"startTime"`
	Mode          string              `json:"mode"`
	StaffID       *int64              `json:"staffId,omitempty"`
	Status        string              `json:"status"`
	FinalAmount   float64             `json:"finalAmount"`
	DepositAmount float64             `json:"depositAmount"`
	Items         []OrderItemResponse `json:"items"`
	Note          *string             `json:"note,omitempty"`
	Description   *string             `json:"description,omitempty"`
	PaymentURL    *string             `json:"paymentUrl,omitempty"`
	CreatedAt     string              `json:"createdAt"`
	UpdatedAt     string              `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	executionDate, err := time.Parse(domain.DateFormat, r.ExecutionDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	items := make([]createBooking.ItemRequest, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, createBooking.ItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return &createBooking.Request{
		UserID:      userID,
		PetID:       r.PetID,
		Items:       items,
		Date:        executionDate,
		StartTime:   startTime,
		Mode:        domain.AssignmentMode(r.Mode),
		StaffID:     r.StaffID,
		Note:        r.Note,
		Description: r.Description,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	items := make([]OrderItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItemResponse{
			ID:              item.ID,
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			Quantity:        item.Quantity,
			SellingPrice:    item.SellingPrice,
			TimeWorkMinutes: item.TimeWorkMinutes,
		})
	}

	return &BookingResponse{
		ID:            resp.ID,
		InvoiceCode:   resp.InvoiceCode,
		UserID:        resp.UserID,
		PetID:         resp.PetID,
		PetName:       resp.PetName,
		ExecutionDate: resp.ExecutionDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		Mode:          resp.Mode,
		StaffID:       resp.StaffID,
		Status:        resp.Status,
		FinalAmount:   resp.FinalAmount,
		DepositAmount: resp.DepositAmount,
		Items:         items,
		Note:          resp.Note,
		Description:   resp.Description,
		PaymentURL:    resp.PaymentURL,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}

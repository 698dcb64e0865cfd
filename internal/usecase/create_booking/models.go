package create_booking

import (
	"time"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	"github.com/petspa/PetSpa-BookingService/pkg/types"
)

// ItemRequest позиция заказа в запросе
type ItemRequest struct {
	ProductID int64 // ID услуги из каталога
	Quantity  int   // Количество
}

// Request модель запроса на создание бронирования
type Request struct {
	UserID      int64                 // ID пользователя (владельца питомца)
	PetID       int64                 // ID питомца
	Items       []ItemRequest         // Позиции заказа (услуги)
	Date        time.Time             // Дата бронирования (без времени)
	StartTime   types.TimeString      // Время начала слота (например, "09:30")
	Mode        domain.AssignmentMode // Режим назначения сотрудника (AUTO/MANUAL)
	StaffID     *int64                // ID сотрудника (обязателен для MANUAL)
	Note        *string               // Заметка клиента (опционально)
	Description *string               // Описание заказа (опционально)
}

// ResponseItem позиция заказа в ответе
type ResponseItem struct {
	ID              int64
	ProductID       int64
	ProductName     string
	Quantity        int
	SellingPrice    float64
	TimeWorkMinutes int
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64            // ID созданного бронирования
	InvoiceCode   string           // Уникальный код счёта
	UserID        int64            // ID пользователя
	PetID         int64            // ID питомца
	PetName       string           // Денормализованное имя питомца
	ExecutionDate time.Time        // Дата и время исполнения
	StartTime     types.TimeString // Время начала слота
	Mode          string           // Режим назначения
	StaffID       *int64           // Назначенный сотрудник (nil для AUTO)
	Status        string           // Статус бронирования
	FinalAmount   float64          // Полная стоимость заказа
	DepositAmount float64          // Сумма депозита (20% от стоимости)
	Items         []ResponseItem   // Позиции заказа
	Note          *string          // Заметка клиента
	Description   *string          // Описание заказа

	// PaymentURL ссылка на страницу оплаты депозита
	// nil при недоступности платёжного шлюза: бронирование создано,
	// оплату можно инициировать повторно
	PaymentURL *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// toResponse конвертирует доменную модель в ответ usecase
func toResponse(b *domain.Booking, startTime types.TimeString, paymentURL *string) *Response {
	items := make([]ResponseItem, 0, len(b.Items))
	for _, item := range b.Items {
		items = append(items, ResponseItem{
			ID:              item.ID,
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			Quantity:        item.Quantity,
			SellingPrice:    item.SellingPrice,
			TimeWorkMinutes: item.TimeWorkMinutes,
		})
	}

	return &Response{
		ID:            b.ID,
		InvoiceCode:   b.InvoiceCode,
		UserID:        b.UserID,
		PetID:         b.PetID,
		PetName:       b.PetName,
		ExecutionDate: b.ExecutionDate,
		StartTime:     startTime,
		Mode:          string(b.Mode),
		StaffID:       b.StaffID,
		Status:        string(b.Status),
		FinalAmount:   b.FinalAmount,
		DepositAmount: b.DepositAmount,
		Items:         items,
		Note:          b.Note,
		Description:   b.Description,
		PaymentURL:    paymentURL,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

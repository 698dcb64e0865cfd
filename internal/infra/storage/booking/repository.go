package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	"github.com/petspa/PetSpa-BookingService/pkg/dbmetrics"
	"github.com/petspa/PetSpa-BookingService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"invoice_code",
	"user_id",
	"pet_id",
	"execution_date",
	"assignment_mode",
	"staff_id",
	"status",
	"final_amount",
	"deposit_amount",
	"pet_name",
	"note",
	"description",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование вместе с позициями заказа
// Если в контексте передана активная транзакция, использует её;
// создание в usecase всегда выполняется в сериализуемой транзакции,
// чтобы проверка доступности слота и запись были одной атомарной операцией
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"invoice_code",
			"user_id",
			"pet_id",
			"execution_date",
			"assignment_mode",
			"staff_id",
			"status",
			"final_amount",
			"deposit_amount",
			"pet_name",
			"note",
			"description",
		).
		Values(
			booking.InvoiceCode,
			booking.UserID,
			booking.PetID,
			booking.ExecutionDate,
			booking.Mode,
			booking.StaffID,
			booking.Status,
			booking.FinalAmount,
			booking.DepositAmount,
			booking.PetName,
			booking.Note,
			booking.Description,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	for i := range booking.Items {
		item := &booking.Items[i]
		item.BookingID = booking.ID

		itemQuery, itemArgs, err := psqlbuilder.Insert("booking_items").
			Columns("booking_id", "product_id", "product_name", "quantity", "selling_price", "time_work_minutes").
			Values(booking.ID, item.ProductID, item.ProductName, item.Quantity, item.SellingPrice, item.TimeWorkMinutes).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build item insert query: %v", ErrBuildQuery, err)
		}

		if err := executor.QueryRowContext(ctx, itemQuery, itemArgs...).Scan(&item.ID); err != nil {
			return nil, fmt.Errorf("%w: Create - execute item insert: %v", ErrExecQuery, err)
		}
	}

	return booking, nil
}

// GetByID получает бронирование по ID вместе с позициями заказа
// Если используется транзакция, строка бронирования блокируется FOR UPDATE,
// чтобы параллельные изменения статуса/расписания сериализовались
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, []int64{booking.ID})
	if err != nil {
		return nil, err
	}
	booking.Items = items[booking.ID]

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("execution_date DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(ctx, rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateStatus", query, args)
}

// UpdateSchedule обновляет дату исполнения и назначенного сотрудника
// Вызывается только внутри транзакции переноса вместе с пересозданием задачи
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, executionDate time.Time, staffID *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("execution_date", executionDate).
		Set("staff_id", staffID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateSchedule", query, args)
}

// AssignStaff привязывает сотрудника к бронированию (для AUTO режима)
func (r *Repository) AssignStaff(ctx context.Context, id int64, staffID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("staff_id", staffID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AssignStaff - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "AssignStaff", query, args)
}

// Cancel отменяет бронирование с указанием причины
// Физическое удаление не используется - отмена это статус, история сохраняется
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCanceled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Cancel", query, args)
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) scanBooking(row *sql.Row) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.InvoiceCode,
		&booking.UserID,
		&booking.PetID,
		&booking.ExecutionDate,
		&booking.Mode,
		&booking.StaffID,
		&booking.Status,
		&booking.FinalAmount,
		&booking.DepositAmount,
		&booking.PetName,
		&booking.Note,
		&booking.Description,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanBooking - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func (r *Repository) scanBookings(ctx context.Context, rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	ids := make([]int64, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.InvoiceCode,
			&booking.UserID,
			&booking.PetID,
			&booking.ExecutionDate,
			&booking.Mode,
			&booking.StaffID,
			&booking.Status,
			&booking.FinalAmount,
			&booking.DepositAmount,
			&booking.PetName,
			&booking.Note,
			&booking.Description,
			&booking.CancellationReason,
			&booking.CancelledAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
		ids = append(ids, booking.ID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	if len(ids) == 0 {
		return bookings, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		b.Items = items[b.ID]
	}

	return bookings, nil
}

// loadItems загружает позиции заказов для набора бронирований одним запросом
func (r *Repository) loadItems(ctx context.Context, bookingIDs []int64) (map[int64][]domain.OrderItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"product_id",
		"product_name",
		"quantity",
		"selling_price",
		"time_work_minutes",
	).
		From("booking_items").
		Where(squirrel.Eq{"booking_id": bookingIDs}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make(map[int64][]domain.OrderItem)
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.BookingID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.SellingPrice,
			&item.TimeWorkMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: loadItems - scan row: %v", ErrScanRow, err)
		}
		items[item.BookingID] = append(items[item.BookingID], item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

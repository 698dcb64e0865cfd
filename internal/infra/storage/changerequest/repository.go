package changerequest

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/petspa/PetSpa-BookingService/internal/domain"
	"github.com/petspa/PetSpa-BookingService/pkg/dbmetrics"
	"github.com/petspa/PetSpa-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий журнала запросов на перенос бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория запросов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запись о переносе бронирования
func (r *Repository) Create(ctx context.Context, request *domain.ChangeRequest) (*domain.ChangeRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("change_requests").
		Columns("booking_id", "new_execution_date", "new_staff_id", "note", "status").
		Values(request.BookingID, request.NewExecutionDate, request.NewStaffID, request.Note, request.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&request.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	request.CreatedAt = createdAt.Time
	return request, nil
}

// GetByBookingID возвращает историю запросов на перенос бронирования
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.ChangeRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"new_execution_date",
		"new_staff_id",
		"note",
		"status",
		"created_at",
	).
		From("change_requests").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	requests := make([]*domain.ChangeRequest, 0)
	for rows.Next() {
		var request domain.ChangeRequest
		var createdAt sql.NullTime

		err := rows.Scan(
			&request.ID,
			&request.BookingID,
			&request.NewExecutionDate,
			&request.NewStaffID,
			&request.Note,
			&request.Status,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBookingID - scan row: %v", ErrScanRow, err)
		}

		request.CreatedAt = createdAt.Time
		requests = append(requests, &request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - rows error: %v", ErrScanRow, err)
	}

	return requests, nil
}

package task

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

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий задач сотрудников - единственное место,
// где мутируется состояние резервирования слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория задач
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create резервирует слот: создает задачу сотрудника
// Должен вызываться только внутри сериализуемой транзакции вместе
// с проверкой доступности (check-and-reserve одной операцией)
func (r *Repository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_tasks").
		Columns("staff_id", "booking_id", "execution_date", "estimated_completion").
		Values(task.StaffID, task.BookingID, task.ExecutionDate, task.EstimatedCompletion).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&task.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	task.CreatedAt = createdAt.Time
	return task, nil
}

// ListForDate возвращает задачи всех (или одного) сотрудников на календарную дату
// Внутри транзакции строки блокируются FOR UPDATE - так проверка доступности
// и вставка новой задачи сериализуются между параллельными бронированиями
func (r *Repository) ListForDate(ctx context.Context, date time.Time, staffID *int64) ([]*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	selectBuilder := psqlbuilder.Select(
		"id",
		"staff_id",
		"booking_id",
		"execution_date",
		"estimated_completion",
		"created_at",
	).
		From("staff_tasks").
		Where(squirrel.GtOrEq{"execution_date": dayStart}).
		Where(squirrel.Lt{"execution_date": dayEnd}).
		OrderBy("staff_id ASC, execution_date ASC")

	if staffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *staffID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanTasks(rows)
}

// GetByBookingID возвращает задачу, привязанную к бронированию
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Task, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"staff_id",
		"booking_id",
		"execution_date",
		"estimated_completion",
		"created_at",
	).
		From("staff_tasks").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	var task domain.Task
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&task.ID,
		&task.StaffID,
		&task.BookingID,
		&task.ExecutionDate,
		&task.EstimatedCompletion,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - scan task: %v", ErrScanRow, err)
	}

	task.CreatedAt = createdAt.Time
	return &task, nil
}

// DeleteByBookingID освобождает слот: удаляет задачу бронирования
// Отсутствие задачи не является ошибкой - AUTO бронирования без
// назначенного сотрудника задачи не имеют
func (r *Repository) DeleteByBookingID(ctx context.Context, bookingID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff_tasks").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByBookingID - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByBookingID - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0)

	for rows.Next() {
		var task domain.Task
		var createdAt sql.NullTime

		err := rows.Scan(
			&task.ID,
			&task.StaffID,
			&task.BookingID,
			&task.ExecutionDate,
			&task.EstimatedCompletion,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTasks - scan row: %v", ErrScanRow, err)
		}

		task.CreatedAt = createdAt.Time
		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTasks - rows error: %v", ErrScanRow, err)
	}

	return tasks, nil
}

package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/Glow-BookingService/internal/domain"
	"github.com/m04kA/Glow-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Glow-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/Glow-BookingService/pkg/timeutil"
)

// pq code 23P01 = exclusion_violation
const codeExclusionViolation pq.ErrorCode = "23P01"

var bookingColumns = []string{
	"id",
	"center_id",
	"service_id",
	"scheduled",
	"duration_minutes",
	"name",
	"email",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований. Единственный владелец
// персистентных записей bookings.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование и возвращает его с заполненными
// id/created_at/updated_at.
//
// Конфликт интервалов ловится на уровне хранилища exclusion constraint-ом
// (см. migrations/001_init.sql) и возвращается как ErrSlotTaken. Это
// авторитетная защита от гонки двух одновременных коммитов: проверка
// доступности в usecase - только оптимизация.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"center_id",
			"service_id",
			"scheduled",
			"duration_minutes",
			"name",
			"email",
		).
		Values(
			booking.CenterID,
			booking.ServiceID,
			booking.Scheduled,
			booking.DurationMinutes,
			booking.Name,
			booking.Email,
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
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == codeExclusionViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CenterID,
		&booking.ServiceID,
		&booking.Scheduled,
		&booking.DurationMinutes,
		&booking.Name,
		&booking.Email,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.Scheduled = booking.Scheduled.UTC()
	return &booking, nil
}

// GetByCenterAndDate получает все бронирования центра, начинающиеся в
// указанную дату [00:00, 24:00), отсортированные по времени начала.
//
// Внутри транзакции добавляется FOR UPDATE: usecase создания бронирования
// блокирует строки дня, чтобы пересчет доступности и вставка были
// согласованы; окончательную гонку закрывает exclusion constraint.
func (r *Repository) GetByCenterAndDate(ctx context.Context, centerID uuid.UUID, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart := timeutil.StartOfDay(date)
	dayEnd := dayStart.AddDate(0, 0, 1)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"center_id": centerID}).
		Where(squirrel.GtOrEq{"scheduled": dayStart}).
		Where(squirrel.Lt{"scheduled": dayEnd}).
		OrderBy("scheduled ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCenterAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCenterAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.CenterID,
			&booking.ServiceID,
			&booking.Scheduled,
			&booking.DurationMinutes,
			&booking.Name,
			&booking.Email,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		booking.Scheduled = booking.Scheduled.UTC()
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows iteration: %v", ErrExecQuery, err)
	}

	return bookings, nil
}

package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/Glow-BookingService/internal/domain"
	"github.com/m04kA/Glow-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Glow-BookingService/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"center_id",
	"name",
	"description",
	"duration_minutes",
	"price",
	"created_at",
}

// Repository репозиторий услуг (read-only: каталог администрируется извне)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetDuration возвращает длительность услуги в минутах.
//
// ErrServiceNotFound возвращается и когда услуги нет, и когда длительность
// не положительная: для бронирования такая услуга непригодна. Ошибки
// чтения из хранилища при этом НЕ маскируются под not found - они
// возвращаются как ErrExecQuery/ErrScanRow, чтобы вызывающий мог отличить
// отсутствие услуги от сбоя БД.
func (r *Repository) GetDuration(ctx context.Context, serviceID uuid.UUID) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("duration_minutes").
		From("services").
		Where(squirrel.Eq{"id": serviceID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: GetDuration - build select query: %v", ErrBuildQuery, err)
	}

	var duration int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&duration)
	if err == sql.ErrNoRows {
		return 0, ErrServiceNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetDuration - scan duration: %v", ErrScanRow, err)
	}

	if duration <= 0 {
		return 0, ErrServiceNotFound
	}

	return duration, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, serviceID uuid.UUID) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": serviceID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.CenterID,
		&svc.Name,
		&svc.Description,
		&svc.DurationMinutes,
		&svc.Price,
		&svc.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return &svc, nil
}

// GetByCenter получает все услуги центра, отсортированные по имени
func (r *Repository) GetByCenter(ctx context.Context, centerID uuid.UUID) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"center_id": centerID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCenter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCenter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		var svc domain.Service
		err := rows.Scan(
			&svc.ID,
			&svc.CenterID,
			&svc.Name,
			&svc.Description,
			&svc.DurationMinutes,
			&svc.Price,
			&svc.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCenter - scan row: %v", ErrScanRow, err)
		}
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCenter - rows iteration: %v", ErrExecQuery, err)
	}

	return services, nil
}

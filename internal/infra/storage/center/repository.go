package center

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Glow-BookingService/internal/domain"
	"github.com/m04kA/Glow-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Glow-BookingService/pkg/psqlbuilder"
)

var centerColumns = []string{
	"id",
	"name",
	"slug",
	"description",
	"image_url",
	"created_at",
}

// Repository репозиторий центров (read-only: каталог администрируется извне)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория центров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает все центры, отсортированные по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Center, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(centerColumns...).
		From("centers").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	centers := make([]*domain.Center, 0)
	for rows.Next() {
		var c domain.Center
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Slug,
			&c.Description,
			&c.ImageURL,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		centers = append(centers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrExecQuery, err)
	}

	return centers, nil
}

// GetBySlug получает центр по уникальному slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Center, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(centerColumns...).
		From("centers").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Center
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.Name,
		&c.Slug,
		&c.Description,
		&c.ImageURL,
		&c.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCenterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - scan center: %v", ErrScanRow, err)
	}

	return &c, nil
}

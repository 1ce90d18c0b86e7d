package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/model"
)

var _ model.DeviceModelStore = (*DeviceModelRepository)(nil)

const modelSelect = `SELECT m.id, m.name, m.slug, m.brand_id, b.name, m.description, m.created_at, m.updated_at`

type DeviceModelRepository struct {
	db *Connection
}

func NewDeviceModelRepository(db *Connection) *DeviceModelRepository {
	return &DeviceModelRepository{
		db: db,
	}
}

func scanDeviceModel(row rowScanner) (model.DeviceModel, error) {
	var m model.DeviceModel
	err := row.Scan(&m.ID, &m.Name, &m.Slug, &m.BrandID, &m.BrandName, &m.Description, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *DeviceModelRepository) List(ctx context.Context, filter model.DeviceModelFilter) ([]model.DeviceModel, error) {
	query := modelSelect + ` FROM models m JOIN brands b ON b.id = m.brand_id`
	var args []any
	if filter.BrandID != uuid.Nil {
		query += ` WHERE m.brand_id = $1`
		args = append(args, filter.BrandID)
	}
	query += ` ORDER BY m.name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list models")
	}
	defer rows.Close()

	models := []model.DeviceModel{}
	for rows.Next() {
		m, err := scanDeviceModel(rows)
		if err != nil {
			return nil, mapError(err, "scan model")
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "list models")
	}

	return models, nil
}

func (r *DeviceModelRepository) getOne(ctx context.Context, op, where string, args ...any) (model.DeviceModel, error) {
	query := modelSelect + ` FROM models m JOIN brands b ON b.id = m.brand_id WHERE ` + where

	m, err := scanDeviceModel(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return model.DeviceModel{}, mapError(err, op)
	}
	return m, nil
}

func (r *DeviceModelRepository) GetByID(ctx context.Context, id uuid.UUID) (model.DeviceModel, error) {
	return r.getOne(ctx, "get model by id", `m.id = $1`, id)
}

func (r *DeviceModelRepository) GetBySlug(ctx context.Context, brandID uuid.UUID, slug string) (model.DeviceModel, error) {
	return r.getOne(ctx, "get model by slug", `m.brand_id = $1 AND m.slug = $2`, brandID, slug)
}

func (r *DeviceModelRepository) GetByName(ctx context.Context, brandID uuid.UUID, name string) (model.DeviceModel, error) {
	return r.getOne(ctx, "get model by name", `m.brand_id = $1 AND m.name = $2`, brandID, name)
}

// Create inserts the model and returns it joined with its brand name.
func (r *DeviceModelRepository) Create(ctx context.Context, dm model.DeviceModel) (model.DeviceModel, error) {
	query := `WITH m AS (
				INSERT INTO models (id, name, slug, brand_id, description, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				RETURNING *
			  )
			  ` + modelSelect + ` FROM m JOIN brands b ON b.id = m.brand_id`

	saved, err := scanDeviceModel(r.db.QueryRowContext(ctx, query,
		dm.ID, dm.Name, dm.Slug, dm.BrandID, dm.Description, dm.CreatedAt, dm.UpdatedAt,
	))
	if err != nil {
		return model.DeviceModel{}, mapError(err, "create model")
	}

	return saved, nil
}

func (r *DeviceModelRepository) Update(ctx context.Context, dm model.DeviceModel) (model.DeviceModel, error) {
	query := `WITH m AS (
				UPDATE models SET name = $2, slug = $3, brand_id = $4, description = $5, updated_at = $6
				WHERE id = $1
				RETURNING *
			  )
			  ` + modelSelect + ` FROM m JOIN brands b ON b.id = m.brand_id`

	saved, err := scanDeviceModel(r.db.QueryRowContext(ctx, query,
		dm.ID, dm.Name, dm.Slug, dm.BrandID, dm.Description, dm.UpdatedAt,
	))
	if err != nil {
		return model.DeviceModel{}, mapError(err, "update model")
	}

	return saved, nil
}

func (r *DeviceModelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM models WHERE id = $1`, id)
	return expectAffected(res, err, "delete model")
}

func (r *DeviceModelRepository) CountByBrand(ctx context.Context, brandID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM models WHERE brand_id = $1`, brandID).Scan(&n)
	if err != nil {
		return 0, mapError(err, "count models of brand")
	}
	return n, nil
}

func (r *DeviceModelRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM models`).Scan(&n); err != nil {
		return 0, mapError(err, "count models")
	}
	return n, nil
}

package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/model"
)

var _ model.BrandStore = (*BrandRepository)(nil)

const brandColumns = `id, name, slug, logo, description, created_at, updated_at`

type BrandRepository struct {
	db *Connection
}

func NewBrandRepository(db *Connection) *BrandRepository {
	return &BrandRepository{
		db: db,
	}
}

func scanBrand(row rowScanner) (model.Brand, error) {
	var b model.Brand
	err := row.Scan(&b.ID, &b.Name, &b.Slug, &b.Logo, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *BrandRepository) List(ctx context.Context) ([]model.Brand, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+brandColumns+` FROM brands ORDER BY name`)
	if err != nil {
		return nil, mapError(err, "list brands")
	}
	defer rows.Close()

	brands := []model.Brand{}
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, mapError(err, "scan brand")
		}
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "list brands")
	}

	return brands, nil
}

func (r *BrandRepository) getOne(ctx context.Context, op, where string, arg any) (model.Brand, error) {
	b, err := scanBrand(r.db.QueryRowContext(ctx, `SELECT `+brandColumns+` FROM brands WHERE `+where, arg))
	if err != nil {
		return model.Brand{}, mapError(err, op)
	}
	return b, nil
}

func (r *BrandRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Brand, error) {
	return r.getOne(ctx, "get brand by id", `id = $1`, id)
}

func (r *BrandRepository) GetBySlug(ctx context.Context, slug string) (model.Brand, error) {
	return r.getOne(ctx, "get brand by slug", `slug = $1`, slug)
}

func (r *BrandRepository) GetByName(ctx context.Context, name string) (model.Brand, error) {
	return r.getOne(ctx, "get brand by name", `name = $1`, name)
}

func (r *BrandRepository) Create(ctx context.Context, brand model.Brand) (model.Brand, error) {
	query := `INSERT INTO brands (id, name, slug, logo, description, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + brandColumns

	saved, err := scanBrand(r.db.QueryRowContext(ctx, query,
		brand.ID, brand.Name, brand.Slug, brand.Logo, brand.Description, brand.CreatedAt, brand.UpdatedAt,
	))
	if err != nil {
		return model.Brand{}, mapError(err, "create brand")
	}

	return saved, nil
}

func (r *BrandRepository) Update(ctx context.Context, brand model.Brand) (model.Brand, error) {
	query := `UPDATE brands SET name = $2, slug = $3, logo = $4, description = $5, updated_at = $6
			  WHERE id = $1
			  RETURNING ` + brandColumns

	saved, err := scanBrand(r.db.QueryRowContext(ctx, query,
		brand.ID, brand.Name, brand.Slug, brand.Logo, brand.Description, brand.UpdatedAt,
	))
	if err != nil {
		return model.Brand{}, mapError(err, "update brand")
	}

	return saved, nil
}

func (r *BrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM brands WHERE id = $1`, id)
	return expectAffected(res, err, "delete brand")
}

func (r *BrandRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM brands`).Scan(&n); err != nil {
		return 0, mapError(err, "count brands")
	}
	return n, nil
}

package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/model"
)

var _ model.ProductStore = (*ProductRepository)(nil)

const productSelect = `SELECT p.id, p.name, p.slug, p.brand_id, b.name, p.model_id, m.name,
			  p.price::float8, p.stock, p.image, p.description, p.features, p.created_at, p.updated_at`

const productJoins = ` JOIN brands b ON b.id = p.brand_id JOIN models m ON m.id = p.model_id`

type ProductRepository struct {
	db *Connection
}

func NewProductRepository(db *Connection) *ProductRepository {
	return &ProductRepository{
		db: db,
	}
}

func scanProduct(row rowScanner) (model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.BrandID, &p.BrandName, &p.ModelID, &p.ModelName,
		&p.Price, &p.Stock, &p.Image, &p.Description, &p.Features, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *ProductRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	var (
		conds []string
		args  []any
	)
	if filter.BrandID != uuid.Nil {
		args = append(args, filter.BrandID)
		conds = append(conds, fmt.Sprintf("p.brand_id = $%d", len(args)))
	}
	if filter.ModelID != uuid.Nil {
		args = append(args, filter.ModelID)
		conds = append(conds, fmt.Sprintf("p.model_id = $%d", len(args)))
	}

	query := productSelect + ` FROM products p` + productJoins
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY p.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "list products")
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, mapError(err, "scan product")
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "list products")
	}

	return products, nil
}

func (r *ProductRepository) getOne(ctx context.Context, op, where string, arg any) (model.Product, error) {
	query := productSelect + ` FROM products p` + productJoins + ` WHERE ` + where

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		return model.Product{}, mapError(err, op)
	}
	return p, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	return r.getOne(ctx, "get product by id", `p.id = $1`, id)
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (model.Product, error) {
	return r.getOne(ctx, "get product by slug", `p.slug = $1`, slug)
}

func (r *ProductRepository) Create(ctx context.Context, product model.Product) (model.Product, error) {
	query := `WITH p AS (
				INSERT INTO products (id, name, slug, brand_id, model_id, price, stock, image, description, features, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
				RETURNING *
			  )
			  ` + productSelect + ` FROM p` + productJoins

	saved, err := scanProduct(r.db.QueryRowContext(ctx, query,
		product.ID, product.Name, product.Slug, product.BrandID, product.ModelID, product.Price, product.Stock,
		product.Image, product.Description, product.Features, product.CreatedAt, product.UpdatedAt,
	))
	if err != nil {
		return model.Product{}, mapError(err, "create product")
	}

	return saved, nil
}

func (r *ProductRepository) Update(ctx context.Context, product model.Product) (model.Product, error) {
	query := `WITH p AS (
				UPDATE products SET name = $2, slug = $3, brand_id = $4, model_id = $5, price = $6, stock = $7,
					image = $8, description = $9, features = $10, updated_at = $11
				WHERE id = $1
				RETURNING *
			  )
			  ` + productSelect + ` FROM p` + productJoins

	saved, err := scanProduct(r.db.QueryRowContext(ctx, query,
		product.ID, product.Name, product.Slug, product.BrandID, product.ModelID, product.Price, product.Stock,
		product.Image, product.Description, product.Features, product.UpdatedAt,
	))
	if err != nil {
		return model.Product{}, mapError(err, "update product")
	}

	return saved, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	return expectAffected(res, err, "delete product")
}

func (r *ProductRepository) CountByModel(ctx context.Context, modelID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM products WHERE model_id = $1`, modelID).Scan(&n)
	if err != nil {
		return 0, mapError(err, "count products of model")
	}
	return n, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM products`).Scan(&n); err != nil {
		return 0, mapError(err, "count products")
	}
	return n, nil
}

package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// ProductRepository defines persistence access for catalog products.
// Absent ids surface as pgx.ErrNoRows.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository returns a Postgres-backed implementation.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

const productColumns = `id, name, category, price, image, description, specs,
        rating, reviews, featured, affiliate_link, created_at, updated_at`

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`

	var p domain.Product
	if err := scanProduct(r.pool.QueryRow(ctx, query, id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
        INSERT INTO products (id, name, category, price, image, description, specs,
            rating, reviews, featured, affiliate_link, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Category,
		product.Price,
		product.Image,
		product.Description,
		product.Specs,
		product.Rating,
		product.Reviews,
		product.Featured,
		product.AffiliateLink,
		product.CreatedAt,
		product.UpdatedAt,
	)
	return err
}

// Update applies only the fields present in the patch and always refreshes
// updated_at. The updated row is returned in a single round trip.
func (r *productRepository) Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{}

	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if patch.Name != nil {
		addSet("name", *patch.Name)
	}
	if patch.Category != nil {
		addSet("category", *patch.Category)
	}
	if patch.Price != nil {
		addSet("price", *patch.Price)
	}
	if patch.Image != nil {
		addSet("image", *patch.Image)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.Specs != nil {
		addSet("specs", *patch.Specs)
	}
	if patch.Rating != nil {
		addSet("rating", *patch.Rating)
	}
	if patch.Reviews != nil {
		addSet("reviews", *patch.Reviews)
	}
	if patch.Featured != nil {
		addSet("featured", *patch.Featured)
	}
	if patch.AffiliateLink != nil {
		addSet("affiliate_link", *patch.AffiliateLink)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE products SET %s WHERE id=$%d RETURNING `+productColumns,
		strings.Join(sets, ", "), len(args),
	)

	var p domain.Product
	if err := scanProduct(r.pool.QueryRow(ctx, query, args...), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM products WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanProduct(row pgx.Row, p *domain.Product) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.Price,
		&p.Image,
		&p.Description,
		&p.Specs,
		&p.Rating,
		&p.Reviews,
		&p.Featured,
		&p.AffiliateLink,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/company-cli/internal/domain/entity"
	"github.com/jhoicas/company-cli/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `id, company_id, sku, name, quantity, price, category, last_updated_by, last_updated_at, created_at`

// ListByCompany devuelve los productos de una empresa.
func (r *ProductRepo) ListByCompany(companyID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE company_id = $1 ORDER BY id`
	rows, err := r.pool.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListAll devuelve los productos de todas las empresas.
func (r *ProductRepo) ListAll() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByCompanyAndID obtiene un producto por empresa e ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByCompanyAndID(companyID, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE company_id = $1 AND id = $2`
	row := r.pool.QueryRow(context.Background(), query, companyID, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// GetByID busca un producto en todas las empresas; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	row := r.pool.QueryRow(context.Background(), query, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// Save persiste el estado completo del producto (insert o reemplazo por ID).
func (r *ProductRepo) Save(product *entity.Product) error {
	query := `
		INSERT INTO products (id, company_id, sku, name, quantity, price, category, last_updated_by, last_updated_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			company_id = EXCLUDED.company_id,
			sku = EXCLUDED.sku,
			name = EXCLUDED.name,
			quantity = EXCLUDED.quantity,
			price = EXCLUDED.price,
			category = EXCLUDED.category,
			last_updated_by = EXCLUDED.last_updated_by,
			last_updated_at = EXCLUDED.last_updated_at`
	var lastBy *string
	var lastAt *time.Time
	if product.LastUpdatedBy != "" {
		lastBy = &product.LastUpdatedBy
	}
	if !product.LastUpdatedAt.IsZero() {
		lastAt = &product.LastUpdatedAt
	}
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.CompanyID, product.SKU, product.Name,
		product.Quantity, product.Price, product.Category, lastBy, lastAt, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("save product: sku duplicado: %w", err)
		}
		return fmt.Errorf("save product: %w", err)
	}
	return nil
}

// scanProduct lee una fila de products; last_updated_* son NULL hasta la
// primera edición.
func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var lastBy *string
	var lastAt *time.Time
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.SKU, &p.Name, &p.Quantity, &p.Price,
		&p.Category, &lastBy, &lastAt, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	if lastBy != nil {
		p.LastUpdatedBy = *lastBy
	}
	if lastAt != nil {
		p.LastUpdatedAt = *lastAt
	}
	return &p, nil
}

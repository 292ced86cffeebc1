package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/gerai/catalog-api/internal/models"
)

// Sortable product columns, keyed by their API name.
var productSortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"code":      "code",
	"price":     "price",
	"stock":     "stock",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// ProductFilter holds filters for product list queries.
type ProductFilter struct {
	Search      string
	CategoryIDs []int
	InStock     bool
	SortBy      string
	SortOrder   string
	Limit       int
	Offset      int
}

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetAllFiltered returns products matching the filter plus the total count
// before pagination. Search matches name or code case-insensitively.
func (r *ProductRepository) GetAllFiltered(filter *ProductFilter) ([]models.Product, int, error) {
	baseWhere := `WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (name ILIKE $%d OR code ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}
	if len(filter.CategoryIDs) > 0 {
		placeholders := make([]string, len(filter.CategoryIDs))
		for i, id := range filter.CategoryIDs {
			placeholders[i] = fmt.Sprintf("$%d", argIdx)
			args = append(args, id)
			argIdx++
		}
		baseWhere += fmt.Sprintf(" AND category_id IN (%s)", strings.Join(placeholders, ","))
	}
	if filter.InStock {
		baseWhere += " AND stock > 0"
	}

	// Count total
	countQuery := `SELECT COUNT(1) FROM products ` + baseWhere
	var total int
	if err := r.db.Get(&total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	// Sort column is whitelisted; anything else falls back to created_at.
	column, ok := productSortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "ASC") {
		direction = "ASC"
	}

	listQuery := fmt.Sprintf(`SELECT * FROM products %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		baseWhere, column, direction, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset)

	var products []models.Product
	if err := r.db.Select(&products, listQuery, args...); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetByID returns a single product by id.
func (r *ProductRepository) GetByID(id int) (*models.Product, error) {
	const q = `SELECT * FROM products WHERE id = $1 LIMIT 1`
	var p models.Product
	if err := r.db.Get(&p, q, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByCode returns a single product by code.
func (r *ProductRepository) GetByCode(code string) (*models.Product, error) {
	const q = `SELECT * FROM products WHERE code = $1 LIMIT 1`
	var p models.Product
	if err := r.db.Get(&p, q, code); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new product and fills in the generated id and timestamps.
func (r *ProductRepository) Create(product *models.Product) error {
	const q = `INSERT INTO products (name, code, category_id, stock, price)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id, created_at, updated_at`

	return r.db.QueryRowx(q,
		product.Name,
		product.Code,
		product.CategoryID,
		product.Stock,
		product.Price,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

// Update updates an existing product and refreshes its updated_at.
func (r *ProductRepository) Update(product *models.Product) error {
	const q = `UPDATE products
              SET name = $1, code = $2, category_id = $3, stock = $4, price = $5, updated_at = NOW()
              WHERE id = $6
              RETURNING updated_at`

	return r.db.QueryRowx(q,
		product.Name,
		product.Code,
		product.CategoryID,
		product.Stock,
		product.Price,
		product.ID,
	).Scan(&product.UpdatedAt)
}

// Delete deletes a product by ID.
func (r *ProductRepository) Delete(id int) error {
	const q = `DELETE FROM products WHERE id = $1`
	_, err := r.db.Exec(q, id)
	return err
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation. Races between uniqueness pre-checks and inserts surface here.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

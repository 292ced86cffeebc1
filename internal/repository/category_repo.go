package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/gerai/catalog-api/internal/models"
)

// CategoryRepository handles data access for product categories.
type CategoryRepository struct {
	db *sqlx.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// GetAll returns all categories ordered by name ascending.
func (r *CategoryRepository) GetAll() ([]models.ProductCategory, error) {
	const q = `SELECT * FROM product_categories ORDER BY name ASC`
	var categories []models.ProductCategory
	if err := r.db.Select(&categories, q); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID returns a single category by id.
func (r *CategoryRepository) GetByID(id int) (*models.ProductCategory, error) {
	const q = `SELECT * FROM product_categories WHERE id = $1 LIMIT 1`
	var c models.ProductCategory
	if err := r.db.Get(&c, q, id); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetByIDs returns all categories whose id is in the given set. The caller is
// expected to deduplicate; an empty set returns no rows without touching the
// database.
func (r *CategoryRepository) GetByIDs(ids []int) ([]models.ProductCategory, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM product_categories WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var categories []models.ProductCategory
	if err := r.db.Select(&categories, query, args...); err != nil {
		return nil, err
	}
	return categories, nil
}

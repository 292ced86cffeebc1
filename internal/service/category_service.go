package service

import (
	"database/sql"
	"errors"

	"github.com/gerai/catalog-api/internal/dto"
	"github.com/gerai/catalog-api/internal/models"
	"github.com/gerai/catalog-api/internal/utils"
)

// CategoryStore is the data access surface the category service needs.
type CategoryStore interface {
	GetAll() ([]models.ProductCategory, error)
	GetByID(id int) (*models.ProductCategory, error)
	GetByIDs(ids []int) ([]models.ProductCategory, error)
}

// CategoryService handles category lookups and existence validation.
type CategoryService struct {
	categoryRepo CategoryStore
}

// NewCategoryService constructs a CategoryService.
func NewCategoryService(categoryRepo CategoryStore) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// FindAll returns all categories ordered by name ascending.
func (s *CategoryService) FindAll() ([]dto.ProductCategoryDto, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, err
	}

	result := make([]dto.ProductCategoryDto, len(categories))
	for i := range categories {
		result[i] = categoryToDto(&categories[i])
	}
	return result, nil
}

// FindOne returns a category by id or NotFound.
func (s *CategoryService) FindOne(id int) (*dto.ProductCategoryDto, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NotFound("Category not found")
		}
		return nil, err
	}
	d := categoryToDto(category)
	return &d, nil
}

// ValidateCategoryExists checks that a category id resolves to a record.
// Product writes call it before persisting a category reference.
func (s *CategoryService) ValidateCategoryExists(id int) (*models.ProductCategory, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NotFound("Category not found")
		}
		return nil, err
	}
	return category, nil
}

// MapCategoryByIDs returns an id-to-category map for a set of ids. The input
// is deduplicated; an empty input returns an empty map with no store access.
func (s *CategoryService) MapCategoryByIDs(ids []int) (map[int]dto.ProductCategoryDto, error) {
	result := make(map[int]dto.ProductCategoryDto)
	if len(ids) == 0 {
		return result, nil
	}

	seen := make(map[int]bool, len(ids))
	unique := make([]int, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	categories, err := s.categoryRepo.GetByIDs(unique)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		result[categories[i].ID] = categoryToDto(&categories[i])
	}
	return result, nil
}

func categoryToDto(category *models.ProductCategory) dto.ProductCategoryDto {
	d := dto.ProductCategoryDto{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
	if category.Description.Valid {
		desc := category.Description.String
		d.Description = &desc
	}
	return d
}

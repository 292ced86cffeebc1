package service

import (
	"github.com/gerai/catalog-api/internal/dto"
	"github.com/gerai/catalog-api/internal/models"
)

// ProductRelation bundles the related records attached to one product.
type ProductRelation struct {
	Category *dto.ProductCategoryDto
}

// RelationLoads selects which relations to attach. Unset relations cost no
// store access.
type RelationLoads struct {
	Category bool
}

// CategoryMapper resolves a batch of category ids to their records.
type CategoryMapper interface {
	MapCategoryByIDs(ids []int) (map[int]dto.ProductCategoryDto, error)
}

// RelationService attaches related data to batches of products with at most
// one lookup per relation type, regardless of batch size.
type RelationService struct {
	categoryService CategoryMapper
}

// NewRelationService constructs a RelationService.
func NewRelationService(categoryService CategoryMapper) *RelationService {
	return &RelationService{categoryService: categoryService}
}

// MapRelations builds a product-id-to-relation map for the given products.
// An empty product list or an empty load set short-circuits to an empty map.
func (s *RelationService) MapRelations(products []models.Product, loads RelationLoads) (map[int]ProductRelation, error) {
	result := make(map[int]ProductRelation)
	if len(products) == 0 || loads == (RelationLoads{}) {
		return result, nil
	}

	var categoryByID map[int]dto.ProductCategoryDto
	if loads.Category {
		seen := make(map[int]bool, len(products))
		ids := make([]int, 0, len(products))
		for i := range products {
			if !seen[products[i].CategoryID] {
				seen[products[i].CategoryID] = true
				ids = append(ids, products[i].CategoryID)
			}
		}

		var err error
		categoryByID, err = s.categoryService.MapCategoryByIDs(ids)
		if err != nil {
			return nil, err
		}
	}

	for i := range products {
		relation := ProductRelation{}
		if loads.Category {
			if category, ok := categoryByID[products[i].CategoryID]; ok {
				relation.Category = &category
			}
		}
		result[products[i].ID] = relation
	}
	return result, nil
}

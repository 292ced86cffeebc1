package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/gerai/catalog-api/internal/dto"
	"github.com/gerai/catalog-api/internal/models"
	"github.com/gerai/catalog-api/internal/repository"
	"github.com/gerai/catalog-api/internal/utils"
)

const (
	listCachePrefix  = "products:list"
	listCachePattern = "products:list:*"
)

// ProductStore is the data access surface the product service needs.
type ProductStore interface {
	GetAllFiltered(filter *repository.ProductFilter) ([]models.Product, int, error)
	GetByID(id int) (*models.Product, error)
	GetByCode(code string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id int) error
}

// CategoryValidator checks referential integrity for category references.
type CategoryValidator interface {
	ValidateCategoryExists(id int) (*models.ProductCategory, error)
}

// RelationMapper attaches related records to product batches.
type RelationMapper interface {
	MapRelations(products []models.Product, loads RelationLoads) (map[int]ProductRelation, error)
}

// ListCache is the best-effort cache surface for product list results.
type ListCache interface {
	Key(prefix string, params map[string]interface{}) string
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration)
	DeleteByPattern(ctx context.Context, pattern string)
}

// ProductService implements the product query and command pipeline: filtered
// reads behind a short-lived cache, writes that enforce code uniqueness and
// category existence and invalidate the list cache.
type ProductService struct {
	productRepo     ProductStore
	categoryService CategoryValidator
	relationService RelationMapper
	cache           ListCache
	listTTL         time.Duration
}

// NewProductService constructs a ProductService.
func NewProductService(productRepo ProductStore, categoryService CategoryValidator, relationService RelationMapper, cache ListCache, listTTL time.Duration) *ProductService {
	return &ProductService{
		productRepo:     productRepo,
		categoryService: categoryService,
		relationService: relationService,
		cache:           cache,
		listTTL:         listTTL,
	}
}

// Create persists a new product. The code pre-check gives a friendly error in
// the common case; a concurrent insert slipping past it surfaces as a unique
// violation from the store and maps to the same Conflict.
func (s *ProductService) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductDto, error) {
	existing, err := s.productRepo.GetByCode(req.Code)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, utils.Conflict("Product code already exists")
	}

	if _, err := s.categoryService.ValidateCategoryExists(req.CategoryID); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:       req.Name,
		Code:       req.Code,
		CategoryID: req.CategoryID,
		Stock:      req.Stock,
		Price:      decimal.NewFromFloat(req.Price),
	}

	if err := s.productRepo.Create(product); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, utils.Conflict("Product code already exists")
		}
		return nil, err
	}

	s.cache.DeleteByPattern(ctx, listCachePattern)

	return s.attachAndConvert(product)
}

// Update applies a partial field merge onto an existing product.
func (s *ProductService) Update(ctx context.Context, id int, req *dto.UpdateProductRequest) (*dto.ProductDto, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NotFound("Product not found")
		}
		return nil, err
	}

	if req.Code != nil && *req.Code != product.Code {
		existing, err := s.productRepo.GetByCode(*req.Code)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		if existing != nil {
			return nil, utils.Conflict("Product code already exists")
		}
	}

	if req.CategoryID != nil {
		if _, err := s.categoryService.ValidateCategoryExists(*req.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Code != nil {
		product.Code = *req.Code
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Price != nil {
		product.Price = decimal.NewFromFloat(*req.Price)
	}

	if err := s.productRepo.Update(product); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, utils.Conflict("Product code already exists")
		}
		return nil, err
	}

	s.cache.DeleteByPattern(ctx, listCachePattern)

	return s.attachAndConvert(product)
}

// Remove deletes a product. Deletion is blocked while stock remains.
func (s *ProductService) Remove(ctx context.Context, id int) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return utils.NotFound("Product not found")
		}
		return err
	}

	if product.Stock > 0 {
		return utils.DomainRule("Cannot delete product with stock > 0")
	}

	if err := s.productRepo.Delete(product.ID); err != nil {
		return err
	}

	s.cache.DeleteByPattern(ctx, listCachePattern)
	return nil
}

// FindAll returns a filtered, sorted, paginated product page plus the total
// match count. Results are served from cache when an identical query was
// answered within the TTL and no write intervened.
func (s *ProductService) FindAll(ctx context.Context, query *dto.ProductQuery) (*dto.ProductListResult, error) {
	cacheKey := s.cache.Key(listCachePrefix, query.Params())
	if raw, ok := s.cache.Get(ctx, cacheKey); ok {
		var cached dto.ProductListResult
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
		log.Warn().Str("key", cacheKey).Msg("discarding malformed cache entry")
	}

	filter := &repository.ProductFilter{
		Search:      query.Search,
		CategoryIDs: query.CategoryIDs,
		InStock:     query.InStock,
		SortBy:      query.SortBy,
		SortOrder:   query.SortOrder,
		Limit:       query.Limit,
		Offset:      query.Offset(),
	}

	products, total, err := s.productRepo.GetAllFiltered(filter)
	if err != nil {
		return nil, err
	}

	relationMap, err := s.relationService.MapRelations(products, RelationLoads{Category: true})
	if err != nil {
		return nil, err
	}

	data := make([]dto.ProductDto, len(products))
	for i := range products {
		relation := relationMap[products[i].ID]
		data[i] = productToDto(&products[i], &relation)
	}

	result := &dto.ProductListResult{Data: data, Total: total}
	if raw, err := json.Marshal(result); err == nil {
		s.cache.Set(ctx, cacheKey, string(raw), s.listTTL)
	}
	return result, nil
}

// FindOne returns a single product with its category attached.
func (s *ProductService) FindOne(ctx context.Context, id int) (*dto.ProductDto, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NotFound("Product not found")
		}
		return nil, err
	}
	return s.attachAndConvert(product)
}

func (s *ProductService) attachAndConvert(product *models.Product) (*dto.ProductDto, error) {
	relationMap, err := s.relationService.MapRelations([]models.Product{*product}, RelationLoads{Category: true})
	if err != nil {
		return nil, err
	}
	relation := relationMap[product.ID]
	d := productToDto(product, &relation)
	return &d, nil
}

func productToDto(product *models.Product, relation *ProductRelation) dto.ProductDto {
	d := dto.ProductDto{
		ID:         product.ID,
		Name:       product.Name,
		Code:       product.Code,
		CategoryID: product.CategoryID,
		Stock:      product.Stock,
		Price:      product.Price.InexactFloat64(),
		CreatedAt:  product.CreatedAt,
		UpdatedAt:  product.UpdatedAt,
	}
	if relation != nil {
		d.Category = relation.Category
	}
	return d
}

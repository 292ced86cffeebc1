package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gerai/catalog-api/internal/dto"
	"github.com/gerai/catalog-api/internal/utils"
)

// ProductProvider is the product service surface the handler needs.
type ProductProvider interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductDto, error)
	Update(ctx context.Context, id int, req *dto.UpdateProductRequest) (*dto.ProductDto, error)
	Remove(ctx context.Context, id int) error
	FindAll(ctx context.Context, query *dto.ProductQuery) (*dto.ProductListResult, error)
	FindOne(ctx context.Context, id int) (*dto.ProductDto, error)
}

// ProductHandler handles product CRUD HTTP endpoints.
type ProductHandler struct {
	productService ProductProvider
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(productService ProductProvider) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Create handles POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.Fail(c, err)
		return
	}

	product, err := h.productService.Create(c.Request.Context(), &req)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.Success(c, http.StatusCreated, "Product created successfully", product)
}

// FindAll handles GET /api/products
func (h *ProductHandler) FindAll(c *gin.Context) {
	query, err := dto.ParseProductQuery(c.Request.URL.Query())
	if err != nil {
		utils.Fail(c, err)
		return
	}

	result, err := h.productService.FindAll(c.Request.Context(), query)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	if len(result.Data) == 0 {
		utils.Error(c, http.StatusNotFound, "No products found matching the criteria")
		return
	}

	totalPage := (result.Total + query.Limit - 1) / query.Limit
	utils.SuccessWithMeta(c, http.StatusOK, "Product list retrieved successfully", result.Data, &utils.PaginationMeta{
		Total:       result.Total,
		TotalPage:   totalPage,
		CurrentPage: query.Page,
		Limit:       query.Limit,
	})
}

// FindOne handles GET /api/products/:id
func (h *ProductHandler) FindOne(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.productService.FindOne(c.Request.Context(), id)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.Success(c, http.StatusOK, "Product retrieved successfully", product)
}

// Update handles PATCH /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		utils.Fail(c, err)
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, &req)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.Success(c, http.StatusOK, "Product updated successfully", product)
}

// Remove handles DELETE /api/products/:id
func (h *ProductHandler) Remove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.productService.Remove(c.Request.Context(), id); err != nil {
		utils.Fail(c, err)
		return
	}

	utils.Success(c, http.StatusOK, "Product deleted successfully", nil)
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gerai/catalog-api/internal/dto"
	"github.com/gerai/catalog-api/internal/utils"
)

// CategoryProvider is the category service surface the handler needs.
type CategoryProvider interface {
	FindAll() ([]dto.ProductCategoryDto, error)
	FindOne(id int) (*dto.ProductCategoryDto, error)
}

// CategoryHandler handles product category HTTP endpoints.
type CategoryHandler struct {
	categoryService CategoryProvider
}

// NewCategoryHandler constructs a CategoryHandler.
func NewCategoryHandler(categoryService CategoryProvider) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// FindAll handles GET /api/product-categories
func (h *CategoryHandler) FindAll(c *gin.Context) {
	categories, err := h.categoryService.FindAll()
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.Success(c, http.StatusOK, "Categories retrieved successfully", categories)
}

// FindOne handles GET /api/product-categories/:id
func (h *CategoryHandler) FindOne(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	category, err := h.categoryService.FindOne(id)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	utils.Success(c, http.StatusOK, "Category retrieved successfully", category)
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerai/catalog-api/internal/dto"
	"github.com/gerai/catalog-api/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockProductProvider struct {
	createFn  func(req *dto.CreateProductRequest) (*dto.ProductDto, error)
	updateFn  func(id int, req *dto.UpdateProductRequest) (*dto.ProductDto, error)
	removeFn  func(id int) error
	findAllFn func(query *dto.ProductQuery) (*dto.ProductListResult, error)
	findOneFn func(id int) (*dto.ProductDto, error)
}

func (m *mockProductProvider) Create(_ context.Context, req *dto.CreateProductRequest) (*dto.ProductDto, error) {
	return m.createFn(req)
}

func (m *mockProductProvider) Update(_ context.Context, id int, req *dto.UpdateProductRequest) (*dto.ProductDto, error) {
	return m.updateFn(id, req)
}

func (m *mockProductProvider) Remove(_ context.Context, id int) error {
	return m.removeFn(id)
}

func (m *mockProductProvider) FindAll(_ context.Context, query *dto.ProductQuery) (*dto.ProductListResult, error) {
	return m.findAllFn(query)
}

func (m *mockProductProvider) FindOne(_ context.Context, id int) (*dto.ProductDto, error) {
	return m.findOneFn(id)
}

func productRouter(provider *mockProductProvider) *gin.Engine {
	h := NewProductHandler(provider)
	r := gin.New()
	r.POST("/api/products", h.Create)
	r.GET("/api/products", h.FindAll)
	r.GET("/api/products/:id", h.FindOne)
	r.PATCH("/api/products/:id", h.Update)
	r.DELETE("/api/products/:id", h.Remove)
	return r
}

type envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    json.RawMessage       `json:"data"`
	Meta    *utils.PaginationMeta `json:"meta"`
	Errors  map[string]string     `json:"errors"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestProductHandlerCreate(t *testing.T) {
	provider := &mockProductProvider{
		createFn: func(req *dto.CreateProductRequest) (*dto.ProductDto, error) {
			return &dto.ProductDto{ID: 1, Name: req.Name, Code: req.Code, CategoryID: req.CategoryID, Price: req.Price}, nil
		},
	}
	r := productRouter(provider)

	w, env := doJSON(t, r, http.MethodPost, "/api/products",
		`{"name":"Gaming Laptop","code":"ELC001","categoryId":1,"stock":10,"price":18500000}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Product created successfully", env.Message)
}

func TestProductHandlerCreateValidation(t *testing.T) {
	r := productRouter(&mockProductProvider{})

	t.Run("malformed json", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/api/products", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
	})

	t.Run("field violations", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/api/products", `{"name":"x","price":-1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
		assert.Contains(t, env.Errors, "code")
		assert.Contains(t, env.Errors, "price")
	})
}

func TestProductHandlerCreateConflict(t *testing.T) {
	provider := &mockProductProvider{
		createFn: func(req *dto.CreateProductRequest) (*dto.ProductDto, error) {
			return nil, utils.Conflict("Product code already exists")
		},
	}
	r := productRouter(provider)

	w, env := doJSON(t, r, http.MethodPost, "/api/products",
		`{"name":"Gaming Laptop","code":"ELC001","categoryId":1,"price":100}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Product code already exists", env.Message)
}

func TestProductHandlerFindAll(t *testing.T) {
	provider := &mockProductProvider{
		findAllFn: func(query *dto.ProductQuery) (*dto.ProductListResult, error) {
			data := make([]dto.ProductDto, query.Limit)
			return &dto.ProductListResult{Data: data, Total: 11}, nil
		},
	}
	r := productRouter(provider)

	w, env := doJSON(t, r, http.MethodGet, "/api/products?page=1&limit=10", "")

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 11, env.Meta.Total)
	assert.Equal(t, 2, env.Meta.TotalPage)
	assert.Equal(t, 1, env.Meta.CurrentPage)
	assert.Equal(t, 10, env.Meta.Limit)
}

func TestProductHandlerFindAllEmpty(t *testing.T) {
	provider := &mockProductProvider{
		findAllFn: func(query *dto.ProductQuery) (*dto.ProductListResult, error) {
			return &dto.ProductListResult{Data: []dto.ProductDto{}, Total: 0}, nil
		},
	}
	r := productRouter(provider)

	w, env := doJSON(t, r, http.MethodGet, "/api/products?search=nonexistent", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No products found matching the criteria", env.Message)
}

func TestProductHandlerFindAllBadQuery(t *testing.T) {
	r := productRouter(&mockProductProvider{})

	w, _ := doJSON(t, r, http.MethodGet, "/api/products?sortBy=secret", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductHandlerInvalidID(t *testing.T) {
	r := productRouter(&mockProductProvider{})

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w, env := doJSON(t, r, method, "/api/products/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid product ID", env.Message)
	}
}

func TestProductHandlerRemove(t *testing.T) {
	t.Run("blocked by stock", func(t *testing.T) {
		provider := &mockProductProvider{
			removeFn: func(id int) error {
				return utils.DomainRule("Cannot delete product with stock > 0")
			},
		}
		w, env := doJSON(t, productRouter(provider), http.MethodDelete, "/api/products/1", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Cannot delete product with stock > 0", env.Message)
	})

	t.Run("success", func(t *testing.T) {
		provider := &mockProductProvider{
			removeFn: func(id int) error { return nil },
		}
		w, env := doJSON(t, productRouter(provider), http.MethodDelete, "/api/products/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Product deleted successfully", env.Message)
	})
}

func TestProductHandlerFindOneNotFound(t *testing.T) {
	provider := &mockProductProvider{
		findOneFn: func(id int) (*dto.ProductDto, error) {
			return nil, utils.NotFound("Product not found")
		},
	}
	w, env := doJSON(t, productRouter(provider), http.MethodGet, "/api/products/42", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", env.Message)
}

package service

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerai/catalog-api/internal/models"
	"github.com/gerai/catalog-api/internal/utils"
)

// mockCategoryRepo is a hand-rolled CategoryStore for tests.
type mockCategoryRepo struct {
	categories []models.ProductCategory
	calls      int
}

func (m *mockCategoryRepo) GetAll() ([]models.ProductCategory, error) {
	m.calls++
	return m.categories, nil
}

func (m *mockCategoryRepo) GetByID(id int) (*models.ProductCategory, error) {
	m.calls++
	for i := range m.categories {
		if m.categories[i].ID == id {
			return &m.categories[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockCategoryRepo) GetByIDs(ids []int) ([]models.ProductCategory, error) {
	m.calls++
	var out []models.ProductCategory
	for _, id := range ids {
		for i := range m.categories {
			if m.categories[i].ID == id {
				out = append(out, m.categories[i])
			}
		}
	}
	return out, nil
}

func newCategoryFixture() *mockCategoryRepo {
	return &mockCategoryRepo{categories: []models.ProductCategory{
		{ID: 1, Name: "Electronics"},
		{ID: 2, Name: "Fashion"},
	}}
}

func TestCategoryServiceFindOne(t *testing.T) {
	svc := NewCategoryService(newCategoryFixture())

	found, err := svc.FindOne(1)
	require.NoError(t, err)
	assert.Equal(t, "Electronics", found.Name)

	_, err = svc.FindOne(99)
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.KindNotFound, appErr.Kind)
}

func TestCategoryServiceValidateCategoryExists(t *testing.T) {
	svc := NewCategoryService(newCategoryFixture())

	category, err := svc.ValidateCategoryExists(2)
	require.NoError(t, err)
	assert.Equal(t, "Fashion", category.Name)

	_, err = svc.ValidateCategoryExists(42)
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, utils.KindNotFound, appErr.Kind)
}

func TestCategoryServiceMapCategoryByIDs(t *testing.T) {
	repo := newCategoryFixture()
	svc := NewCategoryService(repo)

	result, err := svc.MapCategoryByIDs([]int{1, 2, 1, 99})
	require.NoError(t, err)

	assert.Len(t, result, 2)
	assert.Equal(t, "Electronics", result[1].Name)
	assert.Equal(t, "Fashion", result[2].Name)
	_, ok := result[99]
	assert.False(t, ok)
}

func TestCategoryServiceMapCategoryByIDsEmptyInput(t *testing.T) {
	repo := newCategoryFixture()
	svc := NewCategoryService(repo)

	result, err := svc.MapCategoryByIDs(nil)
	require.NoError(t, err)

	assert.Empty(t, result)
	assert.Zero(t, repo.calls, "empty input must not touch the store")
}

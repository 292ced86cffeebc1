package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gerai/catalog-api/internal/dto"
	"github.com/gerai/catalog-api/internal/models"
)

// mockCategoryMapper records the batched lookups it receives.
type mockCategoryMapper struct {
	byID    map[int]dto.ProductCategoryDto
	calls   int
	lastIDs []int
}

func (m *mockCategoryMapper) MapCategoryByIDs(ids []int) (map[int]dto.ProductCategoryDto, error) {
	m.calls++
	m.lastIDs = ids
	out := make(map[int]dto.ProductCategoryDto)
	for _, id := range ids {
		if c, ok := m.byID[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func TestMapRelationsAttachesCategories(t *testing.T) {
	mapper := &mockCategoryMapper{byID: map[int]dto.ProductCategoryDto{
		1: {ID: 1, Name: "Electronics"},
	}}
	svc := NewRelationService(mapper)

	products := []models.Product{
		{ID: 10, CategoryID: 1},
		{ID: 11, CategoryID: 1},
		{ID: 12, CategoryID: 7}, // dangling reference
	}

	relations, err := svc.MapRelations(products, RelationLoads{Category: true})
	require.NoError(t, err)

	assert.Len(t, relations, 3)
	require.NotNil(t, relations[10].Category)
	assert.Equal(t, "Electronics", relations[10].Category.Name)
	require.NotNil(t, relations[11].Category)
	assert.Nil(t, relations[12].Category)
}

func TestMapRelationsBatchesOneLookup(t *testing.T) {
	mapper := &mockCategoryMapper{byID: map[int]dto.ProductCategoryDto{
		1: {ID: 1, Name: "Electronics"},
		2: {ID: 2, Name: "Fashion"},
	}}
	svc := NewRelationService(mapper)

	products := []models.Product{
		{ID: 1, CategoryID: 1},
		{ID: 2, CategoryID: 2},
		{ID: 3, CategoryID: 1},
		{ID: 4, CategoryID: 2},
	}

	_, err := svc.MapRelations(products, RelationLoads{Category: true})
	require.NoError(t, err)

	assert.Equal(t, 1, mapper.calls, "one lookup per relation type regardless of batch size")
	assert.ElementsMatch(t, []int{1, 2}, mapper.lastIDs, "foreign keys are deduplicated")
}

func TestMapRelationsShortCircuits(t *testing.T) {
	mapper := &mockCategoryMapper{}
	svc := NewRelationService(mapper)

	relations, err := svc.MapRelations(nil, RelationLoads{Category: true})
	require.NoError(t, err)
	assert.Empty(t, relations)

	relations, err = svc.MapRelations([]models.Product{{ID: 1, CategoryID: 1}}, RelationLoads{})
	require.NoError(t, err)
	assert.Empty(t, relations)

	assert.Zero(t, mapper.calls, "no store access for empty input or empty load set")
}

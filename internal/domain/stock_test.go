package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadspun/tailorstore/internal/domain"
)

func TestStockMatrix_SetClampsNegative(t *testing.T) {
	var m domain.StockMatrix
	for _, cat := range domain.Categories() {
		for _, size := range domain.SizesFor(cat) {
			m.Set(cat, size, 5)
			assert.Equal(t, 5, m.Get(cat, size))

			m.Set(cat, size, -3)
			assert.Equal(t, 0, m.Get(cat, size), "%s/%s must clamp to zero", cat, size)
		}
	}
}

func TestStockMatrix_AddClampsAtZero(t *testing.T) {
	var m domain.StockMatrix
	m.Set(domain.CategoryMen, "XL", 1)

	m.Add(domain.CategoryMen, "XL", -1)
	assert.Equal(t, 0, m.Get(domain.CategoryMen, "XL"))

	m.Add(domain.CategoryMen, "XL", -1)
	assert.Equal(t, 0, m.Get(domain.CategoryMen, "XL"), "decrement below zero must not go negative")

	m.Add(domain.CategoryMen, "XL", 3)
	assert.Equal(t, 3, m.Get(domain.CategoryMen, "XL"))
}

func TestStockMatrix_HasAnyStock(t *testing.T) {
	var m domain.StockMatrix
	for _, cat := range domain.Categories() {
		assert.False(t, m.HasAnyStock(cat))
	}

	m.Set(domain.CategoryGirls, "11-12", 1)
	assert.True(t, m.HasAnyStock(domain.CategoryGirls))
	assert.False(t, m.HasAnyStock(domain.CategoryBoys))
}

func TestStockMatrix_TotalUnits(t *testing.T) {
	var m domain.StockMatrix
	require.Equal(t, 0, m.TotalUnits())

	m.Set(domain.CategoryMen, "M", 2)
	m.Set(domain.CategoryWomen, "3XL", 4)
	m.Set(domain.CategoryBoys, "0-1", 1)
	m.Set(domain.CategoryGirls, "13-14", 3)
	assert.Equal(t, 10, m.TotalUnits())
}

func TestStockMatrix_UnknownSizePanics(t *testing.T) {
	var m domain.StockMatrix
	assert.Panics(t, func() { m.Get(domain.CategoryMen, "S") })
	assert.Panics(t, func() { m.Get(domain.CategoryBoys, "XL") })
	assert.Panics(t, func() { m.Set(domain.Category("pets"), "M", 1) })
}

func TestStockMatrix_ClampZeroesNegativeCells(t *testing.T) {
	m := domain.StockMatrix{
		Men:  domain.AdultStock{XL: -5, M: 2},
		Boys: domain.KidsStock{Age4to5: -1},
	}
	m.Clamp()

	assert.Equal(t, 0, m.Get(domain.CategoryMen, "XL"))
	assert.Equal(t, 2, m.Get(domain.CategoryMen, "M"))
	assert.Equal(t, 0, m.Get(domain.CategoryBoys, "4-5"))
	assert.Equal(t, 2, m.TotalUnits())
}

func TestValidCategory(t *testing.T) {
	for _, cat := range domain.Categories() {
		assert.True(t, domain.ValidCategory(cat))
	}
	assert.False(t, domain.ValidCategory(domain.Category("pets")))
	assert.False(t, domain.ValidCategory(domain.Category("")))
}

func TestSizeVocabulary(t *testing.T) {
	assert.Equal(t, []string{"M", "L", "XL", "XXL", "3XL"}, domain.AdultSizes())
	assert.Len(t, domain.KidsSizes(), 11)

	assert.True(t, domain.ValidSize(domain.CategoryMen, "3XL"))
	assert.False(t, domain.ValidSize(domain.CategoryMen, "0-1"))
	assert.True(t, domain.ValidSize(domain.CategoryGirls, "0-1"))
	assert.False(t, domain.ValidSize(domain.CategoryGirls, "14-15"))

	assert.NotPanics(t, func() {
		assert.False(t, domain.ValidSize(domain.Category("pets"), "M"))
	})
}

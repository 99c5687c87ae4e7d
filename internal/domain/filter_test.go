package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadspun/tailorstore/internal/domain"
)

func designWithStock(cells map[domain.Category]map[string]int) *domain.Design {
	d := &domain.Design{Name: "test"}
	for cat, sizes := range cells {
		for size, n := range sizes {
			d.Inventory.Set(cat, size, n)
		}
	}
	return d
}

func TestMatch_EmptyConstraintMatchesNothing(t *testing.T) {
	d := designWithStock(map[domain.Category]map[string]int{
		domain.CategoryMen: {"XL": 5},
	})
	var c domain.Constraint
	require.True(t, c.Empty())

	res := domain.Match(d, c)
	assert.False(t, res.Match, "empty constraint must match no design, stock or not")
}

func TestMatch_ExactSizeRequiresStock(t *testing.T) {
	// design A has boys 4-5 in stock, design B does not
	a := designWithStock(map[domain.Category]map[string]int{
		domain.CategoryBoys: {"4-5": 3},
	})
	b := designWithStock(map[domain.Category]map[string]int{
		domain.CategoryBoys: {"4-5": 0, "6-7": 2},
	})

	var c domain.Constraint
	c.Require(domain.CategoryBoys, "4-5")

	assert.True(t, domain.Match(a, c).Match)
	assert.False(t, domain.Match(b, c).Match)
}

func TestMatch_MultipleChildrenEachNeedStock(t *testing.T) {
	d := designWithStock(map[domain.Category]map[string]int{
		domain.CategoryBoys: {"4-5": 1, "7-8": 0},
	})

	var c domain.Constraint
	c.Require(domain.CategoryBoys, "4-5", "7-8")

	res := domain.Match(d, c)
	assert.False(t, res.Match, "every requested size must individually have stock")

	require.Len(t, res.Detail, 2)
	assert.True(t, res.Detail[0].InStock)
	assert.False(t, res.Detail[1].InStock)
}

func TestMatch_ActiveCategoryWithoutSizeNeedsAnyStock(t *testing.T) {
	d := designWithStock(map[domain.Category]map[string]int{
		domain.CategoryMen:  {"M": 2},
		domain.CategoryBoys: {"4-5": 1},
	})

	// couple browse with no sizes picked: men has stock, women does not
	var c domain.Constraint
	c.Require(domain.CategoryMen)
	c.Require(domain.CategoryWomen)
	assert.False(t, domain.Match(d, c).Match, "requested category with zero stock is a hard fail")

	var c2 domain.Constraint
	c2.Require(domain.CategoryMen)
	c2.Require(domain.CategoryBoys)
	assert.True(t, domain.Match(d, c2).Match)
}

func TestMatch_InactiveCategoriesIgnored(t *testing.T) {
	// women and girls are empty, but only boys is active
	d := designWithStock(map[domain.Category]map[string]int{
		domain.CategoryBoys: {"9-10": 4},
	})

	var c domain.Constraint
	c.Require(domain.CategoryBoys, "9-10")
	assert.True(t, domain.Match(d, c).Match)
}

func TestConstraint_RequireDropsNA(t *testing.T) {
	var c domain.Constraint
	c.Require(domain.CategoryBoys, "N/A", "N/A")

	// all-N/A keeps the category active but size-free: any stock passes
	d := designWithStock(map[domain.Category]map[string]int{
		domain.CategoryBoys: {"1-2": 1},
	})
	assert.True(t, domain.Match(d, c).Match)

	empty := &domain.Design{}
	assert.False(t, domain.Match(empty, c).Match)
}

func TestConstraint_Validate(t *testing.T) {
	var c domain.Constraint
	c.Require(domain.CategoryMen, "XL")
	require.NoError(t, c.Validate())

	var bad domain.Constraint
	bad.Require(domain.CategoryMen, "4-5")
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConstraint)
}

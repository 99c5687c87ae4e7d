package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/threadspun/tailorstore/internal/domain"
)

func TestRoleCategory(t *testing.T) {
	tests := []struct {
		role string
		want domain.Category
		ok   bool
	}{
		{"Father", domain.CategoryMen, true},
		{"father", domain.CategoryMen, true},
		{"Mother", domain.CategoryWomen, true},
		{"Son", domain.CategoryBoys, true},
		{"Son 2", domain.CategoryBoys, true},
		{"SON 3", domain.CategoryBoys, true},
		{"Daughter", domain.CategoryGirls, true},
		{"Daughter 12", domain.CategoryGirls, true},
		{" daughter 1 ", domain.CategoryGirls, true},
		{"Sonny", "", false},
		{"Uncle", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		cat, ok := domain.RoleCategory(tt.role)
		assert.Equal(t, tt.ok, ok, "role %q", tt.role)
		assert.Equal(t, tt.want, cat, "role %q", tt.role)
	}
}

func TestSelection_HasAny(t *testing.T) {
	assert.False(t, domain.Selection{}.HasAny())
	assert.False(t, domain.Selection{"Father": "N/A", "Son": ""}.HasAny())
	assert.True(t, domain.Selection{"Father": "N/A", "Son": "4-5"}.HasAny())
}

func TestSelection_RolesCanonicalOrder(t *testing.T) {
	sel := domain.Selection{
		"Son 2":      "1-2",
		"Daughter":   "3-4",
		"Father":     "XL",
		"Son 1":      "0-1",
		"Mother":     "M",
		"Daughter 3": "5-6",
	}
	assert.Equal(t,
		[]string{"Father", "Mother", "Son 1", "Son 2", "Daughter", "Daughter 3"},
		sel.Roles())
}

package domain

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusAccepted OrderStatus = "accepted"
	OrderStatusRejected OrderStatus = "rejected"
)

// SizeNA is the sentinel meaning "not ordering for this member".
const SizeNA = "N/A"

// Selection maps a family-member role label (Father, Mother, Son 2, ...) to
// a chosen size string, or SizeNA.
type Selection map[string]string

// Order references its design by id only. Deleting a design leaves its
// historical orders in place; display degrades to "Unknown Design".
type Order struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	DesignID    uuid.UUID   `gorm:"type:uuid;index" json:"design_id"`
	ComboType   ComboType   `gorm:"type:varchar(10)" json:"combo_type"`
	Sizes       Selection   `gorm:"type:jsonb;serializer:json" json:"sizes"`
	Status      OrderStatus `gorm:"type:varchar(10);index" json:"status"`
	Name        string      `gorm:"size:140" json:"name"`
	Email       string      `gorm:"size:140" json:"email"`
	Phone       string      `gorm:"size:50" json:"phone"`
	Address     string      `gorm:"size:255" json:"address"`
	CountryCode string      `gorm:"size:8" json:"country_code"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// RoleCategory canonicalizes a free-form role label to its stock category.
// Matching is by prefix and case-insensitive, so "Son", "son 2" and "SON 3"
// all land in boys. Unknown labels report false.
func RoleCategory(role string) (Category, bool) {
	r := strings.ToLower(strings.TrimSpace(role))
	switch {
	case r == "father":
		return CategoryMen, true
	case r == "mother":
		return CategoryWomen, true
	case r == "son" || strings.HasPrefix(r, "son "):
		return CategoryBoys, true
	case r == "daughter" || strings.HasPrefix(r, "daughter "):
		return CategoryGirls, true
	}
	return "", false
}

// Chosen reports whether the role carries a real size (not SizeNA, not empty).
func (s Selection) Chosen(role string) bool {
	size, ok := s[role]
	return ok && size != "" && size != SizeNA
}

// HasAny reports whether at least one role carries a real size. An order is
// only submittable when this holds.
func (s Selection) HasAny() bool {
	for role := range s {
		if s.Chosen(role) {
			return true
		}
	}
	return false
}

// Roles returns the selection's role labels in canonical order: Father,
// Mother, then sons and daughters by number. Iterating the map directly
// would make reconcile outcome order nondeterministic.
func (s Selection) Roles() []string {
	roles := make([]string, 0, len(s))
	for role := range s {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool {
		ri, ni := roleRank(roles[i])
		rj, nj := roleRank(roles[j])
		if ri != rj {
			return ri < rj
		}
		if ni != nj {
			return ni < nj
		}
		return roles[i] < roles[j]
	})
	return roles
}

func roleRank(role string) (rank, number int) {
	cat, ok := RoleCategory(role)
	if !ok {
		return 4, 0
	}
	switch cat {
	case CategoryMen:
		rank = 0
	case CategoryWomen:
		rank = 1
	case CategoryBoys:
		rank = 2
	case CategoryGirls:
		rank = 3
	}
	if fields := strings.Fields(role); len(fields) > 1 {
		number, _ = strconv.Atoi(fields[len(fields)-1])
	}
	return rank, number
}

package domain

import "fmt"

// CategorySet marks which of the four categories a browse request considers
// at all. A combo browse activates its member categories; a "boys only"
// browse never looks at men or women.
type CategorySet struct {
	Men   bool `json:"men"`
	Women bool `json:"women"`
	Boys  bool `json:"boys"`
	Girls bool `json:"girls"`
}

func (s CategorySet) Has(cat Category) bool {
	switch cat {
	case CategoryMen:
		return s.Men
	case CategoryWomen:
		return s.Women
	case CategoryBoys:
		return s.Boys
	case CategoryGirls:
		return s.Girls
	}
	panic(fmt.Sprintf("domain: unknown category %q", cat))
}

func (s *CategorySet) Add(cat Category) {
	switch cat {
	case CategoryMen:
		s.Men = true
	case CategoryWomen:
		s.Women = true
	case CategoryBoys:
		s.Boys = true
	case CategoryGirls:
		s.Girls = true
	default:
		panic(fmt.Sprintf("domain: unknown category %q", cat))
	}
}

func (s CategorySet) Empty() bool {
	return !s.Men && !s.Women && !s.Boys && !s.Girls
}

// Constraint is a size filter over one design: an active category set plus
// optional exact sizes per category. Boys/girls may carry several sizes
// (one per child); each must individually have stock.
type Constraint struct {
	Active CategorySet `json:"active"`
	Men    []string    `json:"men,omitempty"`
	Women  []string    `json:"women,omitempty"`
	Boys   []string    `json:"boys,omitempty"`
	Girls  []string    `json:"girls,omitempty"`
}

// Require adds size requirements for a category and marks it active.
// SizeNA entries are dropped: all-N/A is the same as not filtering by size.
func (c *Constraint) Require(cat Category, sizes ...string) {
	c.Active.Add(cat)
	for _, size := range sizes {
		if size == "" || size == SizeNA {
			continue
		}
		switch cat {
		case CategoryMen:
			c.Men = append(c.Men, size)
		case CategoryWomen:
			c.Women = append(c.Women, size)
		case CategoryBoys:
			c.Boys = append(c.Boys, size)
		case CategoryGirls:
			c.Girls = append(c.Girls, size)
		}
	}
}

func (c *Constraint) sizesFor(cat Category) []string {
	switch cat {
	case CategoryMen:
		return c.Men
	case CategoryWomen:
		return c.Women
	case CategoryBoys:
		return c.Boys
	case CategoryGirls:
		return c.Girls
	}
	panic(fmt.Sprintf("domain: unknown category %q", cat))
}

// Empty reports whether the constraint selects nothing at all. The defined
// browse policy is that an empty constraint matches no designs; customers
// must pick something before the catalog shows candidates.
func (c *Constraint) Empty() bool {
	return c.Active.Empty()
}

// Validate rejects sizes outside the closed vocabulary before they can
// reach the stock matrix, where an unknown size panics.
func (c *Constraint) Validate() error {
	for _, cat := range Categories() {
		for _, size := range c.sizesFor(cat) {
			if !ValidSize(cat, size) {
				return fmt.Errorf("%w: size %q for %s", ErrInvalidConstraint, size, cat)
			}
		}
	}
	return nil
}

// SizeAvailability is the per-size stock detail a match carries, so callers
// can show sold-out sizes without re-querying the matrix.
type SizeAvailability struct {
	Category Category `json:"category"`
	Size     string   `json:"size"`
	InStock  bool     `json:"in_stock"`
}

type MatchResult struct {
	Match  bool               `json:"match"`
	Detail []SizeAvailability `json:"detail,omitempty"`
}

// Match evaluates a design against a constraint.
//
// For every active category: if exact sizes were requested, each must have
// stock; otherwise the category merely needs any stock. A requested
// category with zero total stock is a hard fail. Inactive categories are
// ignored entirely. An empty constraint matches nothing.
func Match(d *Design, c Constraint) MatchResult {
	var res MatchResult
	if c.Empty() {
		return res
	}
	ok := true
	for _, cat := range Categories() {
		if !c.Active.Has(cat) {
			continue
		}
		sizes := c.sizesFor(cat)
		if len(sizes) == 0 {
			if !d.Inventory.HasAnyStock(cat) {
				ok = false
			}
			continue
		}
		for _, size := range sizes {
			inStock := d.Inventory.Get(cat, size) > 0
			res.Detail = append(res.Detail, SizeAvailability{Category: cat, Size: size, InStock: inStock})
			if !inStock {
				ok = false
			}
		}
	}
	res.Match = ok
	return res
}

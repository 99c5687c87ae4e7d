package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/threadspun/tailorstore/internal/domain"
)

// Browse filter modes. A combo id (F-M-S-D, F-S, M-D, F-M) is also a valid
// mode and selects that combo's member categories.
const (
	FilterAll    = "ALL"
	FilterBoys   = "boys"
	FilterGirls  = "girls"
	FilterUnisex = "unisex"
)

type CatalogUC struct {
	Designs domain.DesignRepo
}

// BrowseRequest mirrors the gallery filter card: a mode, an optional text
// query, and per-member exact sizes with N/A sentinels. Sons/daughters may
// list one size per child.
type BrowseRequest struct {
	Filter    string   `json:"filter"`
	Query     string   `json:"query"`
	Father    string   `json:"father"`
	Mother    string   `json:"mother"`
	Sons      []string `json:"sons"`
	Daughters []string `json:"daughters"`
}

// BrowseItem pairs a matching design with its per-size availability, so
// the storefront can mark sold-out sizes without another round trip.
type BrowseItem struct {
	Design domain.Design             `json:"design"`
	Detail []domain.SizeAvailability `json:"detail,omitempty"`
}

func (r *BrowseRequest) hasSize(sizes ...string) bool {
	for _, s := range sizes {
		if s != "" && s != domain.SizeNA {
			return true
		}
	}
	return false
}

// constraint translates the request into the engine's terms. In ALL mode
// only members with a chosen size are activated; without any size the
// constraint stays empty and, by policy, matches nothing. Combo and child
// modes activate their member categories regardless, so stockless designs
// drop out.
func (r *BrowseRequest) constraint() domain.Constraint {
	var c domain.Constraint
	switch r.Filter {
	case "", FilterAll:
		if r.hasSize(r.Father) {
			c.Require(domain.CategoryMen, r.Father)
		}
		if r.hasSize(r.Mother) {
			c.Require(domain.CategoryWomen, r.Mother)
		}
		if r.hasSize(r.Sons...) {
			c.Require(domain.CategoryBoys, r.Sons...)
		}
		if r.hasSize(r.Daughters...) {
			c.Require(domain.CategoryGirls, r.Daughters...)
		}
	case FilterBoys:
		c.Require(domain.CategoryBoys, r.Sons...)
	case FilterGirls:
		c.Require(domain.CategoryGirls, r.Daughters...)
	case FilterUnisex:
		// Only size requirements; category presence is decided by the
		// unisex rule on the design itself.
		if r.hasSize(r.Sons...) {
			c.Require(domain.CategoryBoys, r.Sons...)
		}
		if r.hasSize(r.Daughters...) {
			c.Require(domain.CategoryGirls, r.Daughters...)
		}
	default:
		for _, cat := range domain.MembersFor(domain.ComboType(r.Filter)) {
			switch cat {
			case domain.CategoryMen:
				c.Require(cat, r.Father)
			case domain.CategoryWomen:
				c.Require(cat, r.Mother)
			case domain.CategoryBoys:
				c.Require(cat, r.Sons...)
			case domain.CategoryGirls:
				c.Require(cat, r.Daughters...)
			}
		}
	}
	return c
}

func matchesQuery(d *domain.Design, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Name), q) ||
		strings.Contains(strings.ToLower(d.Color), q) ||
		strings.Contains(strings.ToLower(d.Fabric), q)
}

// unisexCandidate: tagged unisex, or stock available for both boys and girls.
func unisexCandidate(d *domain.Design) bool {
	if d.ChildType == domain.ChildTypeUnisex {
		return true
	}
	return d.Inventory.HasAnyStock(domain.CategoryBoys) && d.Inventory.HasAnyStock(domain.CategoryGirls)
}

// Browse filters the catalog through the size engine, preserving repo
// order (newest first).
func (uc *CatalogUC) Browse(ctx context.Context, req BrowseRequest) ([]BrowseItem, error) {
	c := req.constraint()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	designs, err := uc.Designs.List(ctx)
	if err != nil {
		return nil, err
	}
	items := []BrowseItem{}
	for i := range designs {
		d := &designs[i]
		if !matchesQuery(d, req.Query) {
			continue
		}
		if req.Filter == FilterUnisex {
			if !unisexCandidate(d) {
				continue
			}
			if c.Empty() {
				items = append(items, BrowseItem{Design: *d})
				continue
			}
		}
		res := domain.Match(d, c)
		if res.Match {
			items = append(items, BrowseItem{Design: *d, Detail: res.Detail})
		}
	}
	return items, nil
}

func (uc *CatalogUC) List(ctx context.Context) ([]domain.Design, error) {
	return uc.Designs.List(ctx)
}

func (uc *CatalogUC) Get(ctx context.Context, id uuid.UUID) (*domain.Design, error) {
	return uc.Designs.FindByID(ctx, id)
}

func (uc *CatalogUC) Create(ctx context.Context, d *domain.Design) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.ChildType == "" {
		d.ChildType = domain.ChildTypeNone
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	d.Inventory.Clamp()
	return uc.Designs.Save(ctx, d)
}

func (uc *CatalogUC) Update(ctx context.Context, d *domain.Design) error {
	if d.ID == uuid.Nil {
		return domain.ErrNotFound
	}
	d.Inventory.Clamp()
	return uc.Designs.Save(ctx, d)
}

func (uc *CatalogUC) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.Designs.Delete(ctx, id)
}

// SetStock writes one cell of a design's matrix, clamped at zero, and
// persists the design.
func (uc *CatalogUC) SetStock(ctx context.Context, id uuid.UUID, cat domain.Category, size string, count int) (*domain.Design, error) {
	if !domain.ValidSize(cat, size) {
		return nil, domain.ErrInvalidConstraint
	}
	d, err := uc.Designs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Inventory.Set(cat, size, count)
	if err := uc.Designs.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// AdjustStock applies a delta to one cell, clamped at zero. The staff
// dashboard's +/- stock editor goes through here.
func (uc *CatalogUC) AdjustStock(ctx context.Context, id uuid.UUID, cat domain.Category, size string, delta int) (*domain.Design, error) {
	if !domain.ValidSize(cat, size) {
		return nil, domain.ErrInvalidConstraint
	}
	d, err := uc.Designs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Inventory.Add(cat, size, delta)
	if err := uc.Designs.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/threadspun/tailorstore/internal/domain"
)

type OrderUC struct {
	Orders  domain.OrderRepo
	Designs domain.DesignRepo
}

// PlaceRequest is an order submission: the design, the member sizes, and
// the customer's contact details. The combo type is derived server-side.
type PlaceRequest struct {
	DesignID    uuid.UUID        `json:"design_id"`
	Sizes       domain.Selection `json:"sizes"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	Address     string           `json:"address"`
	CountryCode string           `json:"country_code"`
}

// Place validates the selection, classifies its combo and creates a
// pending order. Id, timestamp and status are assigned here, never by the
// client.
func (uc *OrderUC) Place(ctx context.Context, req PlaceRequest) (*domain.Order, error) {
	if req.DesignID == uuid.Nil {
		return nil, fmt.Errorf("%w: design id", domain.ErrInvalidConstraint)
	}
	sel := domain.Selection{}
	for role, size := range req.Sizes {
		cat, ok := domain.RoleCategory(role)
		if !ok {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidConstraint, role)
		}
		if size == "" || size == domain.SizeNA {
			continue
		}
		if !domain.ValidSize(cat, size) {
			return nil, fmt.Errorf("%w: size %q for %s", domain.ErrInvalidConstraint, size, role)
		}
		sel[role] = size
	}
	if !sel.HasAny() {
		return nil, domain.ErrEmptySelection
	}
	o := &domain.Order{
		ID:          uuid.New(),
		DesignID:    req.DesignID,
		ComboType:   domain.Classify(sel),
		Sizes:       sel,
		Status:      domain.OrderStatusPending,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		CountryCode: req.CountryCode,
		CreatedAt:   time.Now(),
	}
	if err := uc.Orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Accept transitions a pending order to accepted, reconciling its
// selection against the design's current stock. The matrix is written back
// only when at least one deduction happened. Insufficient stock is
// reported per member, never a blocking error. Orders whose design was
// deleted still accept, with no outcomes; fulfilment is off-system then.
func (uc *OrderUC) Accept(ctx context.Context, id uuid.UUID) (*domain.Order, []domain.Outcome, error) {
	o, err := uc.Orders.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if o.Status != domain.OrderStatusPending {
		return nil, nil, domain.ErrAlreadyProcessed
	}

	var outcomes []domain.Outcome
	d, err := uc.Designs.FindByID(ctx, o.DesignID)
	switch {
	case err == nil:
		var next domain.StockMatrix
		next, outcomes = domain.Reconcile(d.Inventory, o.Sizes)
		if domain.Deductions(outcomes) > 0 {
			d.Inventory = next
			if err := uc.Designs.Save(ctx, d); err != nil {
				return nil, nil, err
			}
		}
	case errors.Is(err, domain.ErrNotFound):
		// design deleted after the order came in
	default:
		return nil, nil, err
	}

	if err := uc.Orders.UpdateStatus(ctx, o.ID, domain.OrderStatusAccepted); err != nil {
		return nil, nil, err
	}
	o.Status = domain.OrderStatusAccepted
	return o, outcomes, nil
}

// Reject transitions a pending order to rejected. No stock moves.
func (uc *OrderUC) Reject(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	o, err := uc.Orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status != domain.OrderStatusPending {
		return nil, domain.ErrAlreadyProcessed
	}
	if err := uc.Orders.UpdateStatus(ctx, o.ID, domain.OrderStatusRejected); err != nil {
		return nil, err
	}
	o.Status = domain.OrderStatusRejected
	return o, nil
}

func (uc *OrderUC) List(ctx context.Context) ([]domain.Order, error) {
	return uc.Orders.List(ctx)
}

package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadspun/tailorstore/internal/adapters/repo/memory"
	"github.com/threadspun/tailorstore/internal/domain"
	"github.com/threadspun/tailorstore/internal/usecase"
)

func newOrderUC(t *testing.T, designs ...*domain.Design) (*usecase.OrderUC, *memory.DesignRepo) {
	t.Helper()
	designRepo := memory.NewDesignRepo()
	for _, d := range designs {
		if d.ID == uuid.Nil {
			d.ID = uuid.New()
		}
		require.NoError(t, designRepo.Save(context.Background(), d))
	}
	return &usecase.OrderUC{Orders: memory.NewOrderRepo(), Designs: designRepo}, designRepo
}

func TestPlace_CreatesPendingWithDerivedCombo(t *testing.T) {
	d := design("Garden Leaf Print", nil)
	uc, _ := newOrderUC(t, d)

	o, err := uc.Place(context.Background(), usecase.PlaceRequest{
		DesignID: d.ID,
		Sizes:    domain.Selection{"Father": "L", "Mother": "N/A", "Son": "4-5", "Daughter": "N/A"},
		Name:     "Asha",
		Email:    "asha@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPending, o.Status)
	assert.Equal(t, domain.ComboFatherSon, o.ComboType)
	assert.NotEqual(t, uuid.Nil, o.ID)
	assert.False(t, o.CreatedAt.IsZero())

	// N/A members are stripped from the stored selection
	assert.Equal(t, domain.Selection{"Father": "L", "Son": "4-5"}, o.Sizes)
}

func TestPlace_EmptySelectionRejected(t *testing.T) {
	d := design("A", nil)
	uc, _ := newOrderUC(t, d)

	_, err := uc.Place(context.Background(), usecase.PlaceRequest{
		DesignID: d.ID,
		Sizes:    domain.Selection{"Father": "N/A", "Mother": "N/A"},
	})
	assert.ErrorIs(t, err, domain.ErrEmptySelection)
}

func TestPlace_InvalidInputRejected(t *testing.T) {
	d := design("A", nil)
	uc, _ := newOrderUC(t, d)

	_, err := uc.Place(context.Background(), usecase.PlaceRequest{
		DesignID: d.ID,
		Sizes:    domain.Selection{"Uncle": "XL"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidConstraint)

	_, err = uc.Place(context.Background(), usecase.PlaceRequest{
		DesignID: d.ID,
		Sizes:    domain.Selection{"Father": "0-1"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidConstraint)

	_, err = uc.Place(context.Background(), usecase.PlaceRequest{
		Sizes: domain.Selection{"Father": "XL"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidConstraint)
}

func TestAccept_DeductsAndPersists(t *testing.T) {
	d := design("A", func(d *domain.Design) {
		d.Inventory.Set(domain.CategoryMen, "XL", 2)
		d.Inventory.Set(domain.CategoryBoys, "4-5", 1)
	})
	uc, designs := newOrderUC(t, d)

	o, err := uc.Place(context.Background(), usecase.PlaceRequest{
		DesignID: d.ID,
		Sizes:    domain.Selection{"Father": "XL", "Son": "4-5"},
	})
	require.NoError(t, err)

	accepted, outcomes, err := uc.Accept(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusAccepted, accepted.Status)
	require.Len(t, outcomes, 2)
	assert.Equal(t, 2, domain.Deductions(outcomes))

	fresh, err := designs.FindByID(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Inventory.Get(domain.CategoryMen, "XL"))
	assert.Equal(t, 0, fresh.Inventory.Get(domain.CategoryBoys, "4-5"))
}

func TestAccept_SecondAcceptIsRefused(t *testing.T) {
	d := design("A", func(d *domain.Design) { d.Inventory.Set(domain.CategoryMen, "XL", 5) })
	uc, designs := newOrderUC(t, d)

	o, err := uc.Place(context.Background(), usecase.PlaceRequest{
		DesignID: d.ID,
		Sizes:    domain.Selection{"Father": "XL"},
	})
	require.NoError(t, err)

	_, _, err = uc.Accept(context.Background(), o.ID)
	require.NoError(t, err)

	_, _, err = uc.Accept(context.Background(), o.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)

	// no double deduction happened
	fresh, err := designs.FindByID(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, fresh.Inventory.Get(domain.CategoryMen, "XL"))
}

func TestAccept_FullyInsufficientStillAccepts(t *testing.T) {
	d := design("A", nil) // nothing in stock
	uc, designs := newOrderUC(t, d)

	o, err := uc.Place(context.Background(), usecase.PlaceRequest{
		DesignID: d.ID,
		Sizes:    domain.Selection{"Father": "XL", "Mother": "M"},
	})
	require.NoError(t, err)

	accepted, outcomes, err := uc.Accept(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusAccepted, accepted.Status)
	require.Len(t, outcomes, 2)
	assert.Equal(t, 0, domain.Deductions(outcomes))

	fresh, err := designs.FindByID(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.Inventory.TotalUnits())
}

func TestAccept_DeletedDesignStillAccepts(t *testing.T) {
	d := design("A", func(d *domain.Design) { d.Inventory.Set(domain.CategoryMen, "L", 1) })
	uc, designs := newOrderUC(t, d)

	o, err := uc.Place(context.Background(), usecase.PlaceRequest{
		DesignID: d.ID,
		Sizes:    domain.Selection{"Father": "L"},
	})
	require.NoError(t, err)

	require.NoError(t, designs.Delete(context.Background(), d.ID))

	accepted, outcomes, err := uc.Accept(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusAccepted, accepted.Status)
	assert.Empty(t, outcomes)
}

func TestReject(t *testing.T) {
	d := design("A", func(d *domain.Design) { d.Inventory.Set(domain.CategoryMen, "L", 3) })
	uc, designs := newOrderUC(t, d)

	o, err := uc.Place(context.Background(), usecase.PlaceRequest{
		DesignID: d.ID,
		Sizes:    domain.Selection{"Father": "L"},
	})
	require.NoError(t, err)

	rejected, err := uc.Reject(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusRejected, rejected.Status)

	// rejection never touches stock
	fresh, err := designs.FindByID(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, fresh.Inventory.Get(domain.CategoryMen, "L"))

	_, err = uc.Reject(context.Background(), o.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)

	_, _, err = uc.Accept(context.Background(), o.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyProcessed)
}

func TestAccept_UnknownOrder(t *testing.T) {
	uc, _ := newOrderUC(t)
	_, _, err := uc.Accept(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

package domain

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// DesignRepo is the persistence port for the catalog. Implementations live
// in adapters (postgres for production, memory for tests and local mode).
type DesignRepo interface {
	List(ctx context.Context) ([]Design, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Design, error)
	Save(ctx context.Context, d *Design) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type OrderRepo interface {
	List(ctx context.Context) ([]Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	Create(ctx context.Context, o *Order) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error
}

// DesignWatcher, OrderWatcher are optional change feeds. Callbacks receive
// the full changed record; consumers apply them as replacements keyed by
// id. Stores without a push primitive simply never implement these.
type DesignWatcher interface {
	OnDesignChanged(fn func(Design))
}

type OrderWatcher interface {
	OnOrderChanged(fn func(Order))
}

// FileStorage stores design images. Save returns the public path the
// catalog should reference.
type FileStorage interface {
	Save(name string, r io.Reader) (string, error)
	Open(path string) (io.ReadCloser, error)
	Remove(path string) error
}

// Package memory provides in-memory DesignRepo/OrderRepo implementations,
// used as the test fixture and as the store for local mode. Unlike the
// postgres adapters it also implements the change-feed ports: every
// insert, update and delete is delivered to registered callbacks as the
// full changed record.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/threadspun/tailorstore/internal/domain"
)

type DesignRepo struct {
	mu        sync.RWMutex
	designs   map[uuid.UUID]domain.Design
	listeners []func(domain.Design)
}

func NewDesignRepo() *DesignRepo {
	return &DesignRepo{designs: make(map[uuid.UUID]domain.Design)}
}

func (r *DesignRepo) List(_ context.Context) ([]domain.Design, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.Design, 0, len(r.designs))
	for _, d := range r.designs {
		list = append(list, d)
	}
	// newest first, same order the postgres repo gives
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID.String() > list[j].ID.String()
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *DesignRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Design, error) {
	r.mu.RLock()
	d, ok := r.designs[id]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

func (r *DesignRepo) Save(_ context.Context, d *domain.Design) error {
	r.mu.Lock()
	r.designs[d.ID] = *d
	fns := append([]func(domain.Design){}, r.listeners...)
	r.mu.Unlock()
	for _, fn := range fns {
		fn(*d)
	}
	return nil
}

func (r *DesignRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	d, ok := r.designs[id]
	delete(r.designs, id)
	fns := append([]func(domain.Design){}, r.listeners...)
	r.mu.Unlock()
	if ok {
		for _, fn := range fns {
			fn(d)
		}
	}
	return nil
}

func (r *DesignRepo) OnDesignChanged(fn func(domain.Design)) {
	r.mu.Lock()
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
}

type OrderRepo struct {
	mu        sync.RWMutex
	orders    map[uuid.UUID]domain.Order
	listeners []func(domain.Order)
}

func NewOrderRepo() *OrderRepo {
	return &OrderRepo{orders: make(map[uuid.UUID]domain.Order)}
}

func (r *OrderRepo) List(_ context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		list = append(list, o)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID.String() > list[j].ID.String()
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *OrderRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	r.mu.RLock()
	o, ok := r.orders[id]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}

func (r *OrderRepo) Create(_ context.Context, o *domain.Order) error {
	r.mu.Lock()
	r.orders[o.ID] = *o
	fns := append([]func(domain.Order){}, r.listeners...)
	r.mu.Unlock()
	for _, fn := range fns {
		fn(*o)
	}
	return nil
}

func (r *OrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.OrderStatus) error {
	r.mu.Lock()
	o, ok := r.orders[id]
	if !ok {
		r.mu.Unlock()
		return domain.ErrNotFound
	}
	o.Status = status
	r.orders[id] = o
	fns := append([]func(domain.Order){}, r.listeners...)
	r.mu.Unlock()
	for _, fn := range fns {
		fn(o)
	}
	return nil
}

func (r *OrderRepo) OnOrderChanged(fn func(domain.Order)) {
	r.mu.Lock()
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
}

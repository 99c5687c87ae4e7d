package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/threadspun/tailorstore/internal/domain"
)

type DesignRepo struct{ db *gorm.DB }

func NewDesignRepo(db *gorm.DB) *DesignRepo { return &DesignRepo{db: db} }

func (r *DesignRepo) List(ctx context.Context) ([]domain.Design, error) {
	var list []domain.Design
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *DesignRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Design, error) {
	var d domain.Design
	if err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *DesignRepo) Save(ctx context.Context, d *domain.Design) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DesignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Design{}, "id = ?", id).Error
}

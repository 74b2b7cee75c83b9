package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-shop-api/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// FindByID 记录不存在返回 (nil, nil)，调用方自行决定语义
func (r *ProductRepo) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) List(ctx context.Context, offset, limit int, order domain.ProductOrder, category string) ([]domain.Product, error) {
	q := r.db.WithContext(ctx).Model(&domain.Product{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	switch order {
	case domain.ProductOrderPriceLowest:
		q = q.Order("price asc")
	case domain.ProductOrderPriceHighest:
		q = q.Order("price desc")
	case domain.ProductOrderOldest:
		q = q.Order("created_at asc")
	default: // newest 与未识别值同落默认分支
		q = q.Order("created_at desc")
	}
	var products []domain.Product
	if err := q.Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Patch 记录不存在返回 (nil, nil)
func (r *ProductRepo) Patch(ctx context.Context, id uint, p domain.ProductPatch) (*domain.Product, error) {
	existing, err := r.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if len(cols) > 0 {
		if err := r.db.WithContext(ctx).Model(existing).Updates(cols).Error; err != nil {
			return nil, err
		}
	}
	return existing, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

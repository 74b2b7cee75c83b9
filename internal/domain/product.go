package domain

import (
	"context"
	"time"
)

type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:191;not null" json:"name"`
	Category  string    `gorm:"index;size:64" json:"category"`
	Price     float64   `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Product) TableName() string { return "products" }

type ProductOrder string

const (
	ProductOrderNewest       ProductOrder = "newest"
	ProductOrderOldest       ProductOrder = "oldest"
	ProductOrderPriceLowest  ProductOrder = "priceLowest"
	ProductOrderPriceHighest ProductOrder = "priceHighest"
)

type ProductPatch struct {
	Name     *string
	Category *string
	Price    *float64
}

// FindByID / Patch 在记录不存在时返回 (nil, nil)，
// Delete 则返回 gorm.ErrRecordNotFound —— 对外表现刻意不对称，勿统一。
type ProductRepository interface {
	Create(ctx context.Context, p *Product) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, offset, limit int, order ProductOrder, category string) ([]Product, error)
	Patch(ctx context.Context, id uint, p ProductPatch) (*Product, error)
	Delete(ctx context.Context, id uint) error
}

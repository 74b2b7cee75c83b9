package domain

import (
	"context"
	"time"
)

type Order struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    uint        `gorm:"index;not null" json:"userId"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index;not null" json:"-"`
	ProductID *uint   `gorm:"index" json:"productId,omitempty"`
	UnitPrice float64 `gorm:"not null" json:"unitPrice"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}

func (OrderItem) TableName() string { return "order_items" }

// Total 派生字段，不落库；读取时挂到响应上
func (o *Order) Total() float64 {
	var t float64
	for _, it := range o.Items {
		t += it.UnitPrice * float64(it.Quantity)
	}
	return t
}

type OrderRepository interface {
	// Create 连同 Items 在一个事务内落库
	Create(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	Delete(ctx context.Context, id uint) error
}

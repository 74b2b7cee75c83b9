package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:64;not null" json:"name"`
	Email     *string        `gorm:"uniqueIndex;size:191" json:"email,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserPreference *UserPreference `gorm:"constraint:OnDelete:CASCADE" json:"userPreference,omitempty"`
	SavedProducts  []SavedProduct  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Orders         []Order         `json:"-"`
}

func (User) TableName() string { return "users" }

// UserPreference 与 User 1:1，随 User 一起创建
type UserPreference struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	UserID       uint `gorm:"uniqueIndex;not null" json:"-"`
	ReceiveEmail bool `gorm:"not null;default:false" json:"receiveEmail"`
}

func (UserPreference) TableName() string { return "user_preferences" }

type SavedProduct struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"-"`
	ProductID uint      `gorm:"index;not null" json:"productId"`
	Product   Product   `json:"product"`
	CreatedAt time.Time `json:"createdAt"`
}

func (SavedProduct) TableName() string { return "saved_products" }

// 列表排序（newest 与未识别值同走默认分支：created_at DESC）
type UserOrder string

const (
	UserOrderNewest UserOrder = "newest"
	UserOrderOldest UserOrder = "oldest"
)

// UserPatch 部分更新；nil 字段保持不变。
// ReceiveEmail 非 nil 时作为嵌套更新转发到 user_preferences，
// 目标行不存在则按 not found 处理。
type UserPatch struct {
	Name         *string
	Email        *string
	ReceiveEmail *bool
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	List(ctx context.Context, offset, limit int, order UserOrder) ([]User, error)
	Patch(ctx context.Context, id uint, p UserPatch) (*User, error)
	Delete(ctx context.Context, id uint) error
	ListSavedProducts(ctx context.Context, userID uint) ([]Product, error)
	AddSavedProduct(ctx context.Context, userID, productID uint) (*SavedProduct, error)
	ListOrders(ctx context.Context, userID uint) ([]Order, error)
}

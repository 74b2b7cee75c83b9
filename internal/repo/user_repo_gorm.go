package repo

import (
	"context"

	"gorm.io/gorm"

	"go-shop-api/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

// Create 连同 UserPreference 一次事务写入（会话关闭了默认事务，需显式开）
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(u).Error
	})
}

func (r *UserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Preload("UserPreference").First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context, offset, limit int, order domain.UserOrder) ([]domain.User, error) {
	q := r.db.WithContext(ctx).Model(&domain.User{})
	switch order {
	case domain.UserOrderOldest:
		q = q.Order("created_at asc")
	default: // newest 与未识别值同落默认分支
		q = q.Order("created_at desc")
	}
	var users []domain.User
	if err := q.Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) Patch(ctx context.Context, id uint, p domain.UserPatch) (*domain.User, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u domain.User
		if err := tx.First(&u, "id = ?", id).Error; err != nil {
			return err
		}
		cols := map[string]any{}
		if p.Name != nil {
			cols["name"] = *p.Name
		}
		if p.Email != nil {
			cols["email"] = *p.Email
		}
		if len(cols) > 0 {
			if err := tx.Model(&u).Updates(cols).Error; err != nil {
				return err
			}
		}
		if p.ReceiveEmail != nil {
			// 嵌套更新：目标行缺失按 not found 上报
			res := tx.Model(&domain.UserPreference{}).
				Where("user_id = ?", id).
				Update("receive_email", *p.ReceiveEmail)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepo) ListSavedProducts(ctx context.Context, userID uint) ([]domain.Product, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Preload("SavedProducts.Product").
		First(&u, "id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(u.SavedProducts))
	for _, sp := range u.SavedProducts {
		products = append(products, sp.Product)
	}
	return products, nil
}

func (r *UserRepo) AddSavedProduct(ctx context.Context, userID, productID uint) (*domain.SavedProduct, error) {
	if _, err := r.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	sp := domain.SavedProduct{UserID: userID, ProductID: productID}
	if err := r.db.WithContext(ctx).Create(&sp).Error; err != nil {
		return nil, err
	}
	return &sp, nil
}

func (r *UserRepo) ListOrders(ctx context.Context, userID uint) ([]domain.Order, error) {
	var u domain.User
	err := r.db.WithContext(ctx).
		Preload("Orders.Items").
		First(&u, "id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	if u.Orders == nil {
		return []domain.Order{}, nil
	}
	return u.Orders, nil
}

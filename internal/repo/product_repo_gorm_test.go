package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/gorm"

	"go-shop-api/internal/domain"
)

func TestProductFindByIDMissing(t *testing.T) {
	db, mock, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	r := NewProductRepo(db)

	mock.ExpectQuery("SELECT \\* FROM `products` WHERE id = \\?").
		WithArgs(42, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "price", "created_at", "updated_at"}))

	p, err := r.FindByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil product for missing id, got %+v", p)
	}
	expectMet(t, mock)
}

func TestProductFindByID(t *testing.T) {
	db, mock, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	r := NewProductRepo(db)

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `products` WHERE id = \\?").
		WithArgs(7, 1).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "name", "category", "price", "created_at", "updated_at"}).
			AddRow(7, "Tea", "Drinks", 3.5, now, now))

	p, err := r.FindByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Tea" || p.Price != 3.5 {
		t.Fatalf("unexpected product: %+v", p)
	}
	expectMet(t, mock)
}

func TestProductListOrderAndFilter(t *testing.T) {
	db, mock, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	r := NewProductRepo(db)

	tests := []struct {
		order   domain.ProductOrder
		wantSQL string
	}{
		{domain.ProductOrderPriceLowest, "ORDER BY price asc"},
		{domain.ProductOrderPriceHighest, "ORDER BY price desc"},
		{domain.ProductOrderOldest, "ORDER BY created_at asc"},
		{domain.ProductOrderNewest, "ORDER BY created_at desc"},
		{"bogus", "ORDER BY created_at desc"}, // 未识别值与 newest 同样降序
		{"", "ORDER BY created_at desc"},
	}
	for _, tt := range tests {
		mock.ExpectQuery("SELECT \\* FROM `products` WHERE category = \\? " + tt.wantSQL).
			WithArgs("Drinks", 10, 5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "category", "price", "created_at", "updated_at"}))
		if _, err := r.List(context.Background(), 5, 10, tt.order, "Drinks"); err != nil {
			t.Fatalf("order %q: unexpected error: %v", tt.order, err)
		}
	}
	expectMet(t, mock)
}

func TestProductCreate(t *testing.T) {
	db, mock, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	r := NewProductRepo(db)

	mock.ExpectExec("INSERT INTO `products`").
		WillReturnResult(sqlmock.NewResult(3, 1))

	p := domain.Product{Name: "Waffle", Category: "Waffle", Price: 12.99}
	if err := r.Create(context.Background(), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 3 {
		t.Fatalf("expected assigned id 3, got %d", p.ID)
	}
	expectMet(t, mock)
}

func TestProductDeleteMissing(t *testing.T) {
	db, mock, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	r := NewProductRepo(db)

	mock.ExpectExec("DELETE FROM `products` WHERE id = \\?").
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.Delete(context.Background(), 42)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	expectMet(t, mock)
}

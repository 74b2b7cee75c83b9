package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-shop-api/internal/domain"
)

type listCall struct {
	offset, limit int
	order         domain.ProductOrder
	category      string
}

type fakeProductRepo struct {
	products  map[uint]*domain.Product
	nextID    uint
	createErr error
	lastList  *listCall
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint]*domain.Product{}, nextID: 1}
}

func (f *fakeProductRepo) Create(_ context.Context, p *domain.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	p.ID = f.nextID
	f.nextID++
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uint) (*domain.Product, error) {
	return f.products[id], nil // 不存在即 (nil, nil)
}

func (f *fakeProductRepo) List(_ context.Context, offset, limit int, order domain.ProductOrder, category string) ([]domain.Product, error) {
	f.lastList = &listCall{offset: offset, limit: limit, order: order, category: category}
	out := []domain.Product{}
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) Patch(_ context.Context, id uint, p domain.ProductPatch) (*domain.Product, error) {
	existing := f.products[id]
	if existing == nil {
		return nil, nil
	}
	if p.Name != nil {
		existing.Name = *p.Name
	}
	if p.Category != nil {
		existing.Category = *p.Category
	}
	if p.Price != nil {
		existing.Price = *p.Price
	}
	return existing, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.products[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.products, id)
	return nil
}

func newProductRouter(f *fakeProductRepo) *gin.Engine {
	return newTestRouter(NewProductHandler(f, nil, zap.NewNop()))
}

func TestProductCreateReturnsOKNotCreated(t *testing.T) {
	f := newFakeProductRepo()
	r := newProductRouter(f)

	w := doJSON(t, r, http.MethodPost, "/products", gin.H{
		"name": "Waffle", "category": "Waffle", "price": 12.99,
	})

	// 历史契约：创建商品返回 200 而不是 201
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[domain.Product](t, w)
	assert.Equal(t, "Waffle", p.Name)
	assert.Equal(t, 12.99, p.Price)
	assert.NotZero(t, p.ID)
}

func TestProductCreateValidation(t *testing.T) {
	f := newFakeProductRepo()
	r := newProductRouter(f)

	// 缺 name / 缺 price
	w := doJSON(t, r, http.MethodPost, "/products", gin.H{"category": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[map[string]any](t, w)
	assert.Contains(t, body, "message")
	assert.Empty(t, f.products)
}

func TestProductCreateDuplicate(t *testing.T) {
	f := newFakeProductRepo()
	f.createErr = gorm.ErrDuplicatedKey
	r := newProductRouter(f)

	w := doJSON(t, r, http.MethodPost, "/products", gin.H{"name": "Waffle", "price": 1.0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[map[string]string](t, w)
	assert.Contains(t, body["message"], "duplicated")
}

func TestProductGetMissingReturnsNull(t *testing.T) {
	r := newProductRouter(newFakeProductRepo())

	w := doJSON(t, r, http.MethodGet, "/products/42", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestProductGet(t *testing.T) {
	f := newFakeProductRepo()
	f.products[7] = &domain.Product{ID: 7, Name: "Tea", Price: 3.5}
	r := newProductRouter(f)

	w := doJSON(t, r, http.MethodGet, "/products/7", nil)
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[domain.Product](t, w)
	assert.Equal(t, uint(7), p.ID)
	assert.Equal(t, "Tea", p.Name)
}

func TestProductPatchMissingReturnsNull(t *testing.T) {
	r := newProductRouter(newFakeProductRepo())

	w := doJSON(t, r, http.MethodPatch, "/products/42", gin.H{"price": 9.9})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestProductPatchKeepsOmittedFields(t *testing.T) {
	f := newFakeProductRepo()
	f.products[1] = &domain.Product{ID: 1, Name: "Tea", Category: "Drinks", Price: 3.5}
	r := newProductRouter(f)

	w := doJSON(t, r, http.MethodPatch, "/products/1", gin.H{"price": 4.0})
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[domain.Product](t, w)
	assert.Equal(t, "Tea", p.Name)
	assert.Equal(t, "Drinks", p.Category)
	assert.Equal(t, 4.0, p.Price)
}

func TestProductDelete(t *testing.T) {
	f := newFakeProductRepo()
	f.products[1] = &domain.Product{ID: 1, Name: "Tea"}
	r := newProductRouter(f)

	w := doJSON(t, r, http.MethodDelete, "/products/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(t, r, http.MethodDelete, "/products/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductListQueryParams(t *testing.T) {
	f := newFakeProductRepo()
	r := newProductRouter(f)

	w := doJSON(t, r, http.MethodGet, "/products?offset=5&limit=2&order=priceLowest&category=Drinks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, f.lastList)
	assert.Equal(t, 5, f.lastList.offset)
	assert.Equal(t, 2, f.lastList.limit)
	assert.Equal(t, domain.ProductOrderPriceLowest, f.lastList.order)
	assert.Equal(t, "Drinks", f.lastList.category)
}

func TestProductListDefaults(t *testing.T) {
	f := newFakeProductRepo()
	r := newProductRouter(f)

	// 非数字回落默认值
	w := doJSON(t, r, http.MethodGet, "/products?offset=abc&limit=-3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, f.lastList)
	assert.Equal(t, 0, f.lastList.offset)
	assert.Equal(t, 10, f.lastList.limit)
}

func TestProductInvalidID(t *testing.T) {
	r := newProductRouter(newFakeProductRepo())
	w := doJSON(t, r, http.MethodGet, "/products/notanid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

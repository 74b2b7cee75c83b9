package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-shop-api/internal/core/cache"
	"go-shop-api/internal/domain"
	"go-shop-api/internal/transport/http/httperr"
)

const productCacheTTL = 30 * time.Second

type ProductHandler struct {
	repo  domain.ProductRepository
	cache *cache.Cache // 可为 nil（未配置 redis 时直连）
	log   *zap.Logger
}

func NewProductHandler(repo domain.ProductRepository, ch *cache.Cache, l *zap.Logger) *ProductHandler {
	return &ProductHandler{repo: repo, cache: ch, log: l}
}

func (h *ProductHandler) Mount(g *gin.RouterGroup) {
	g.GET("/products", h.list)
	g.GET("/products/:id", h.get)
	g.POST("/products", h.create)
	g.PATCH("/products/:id", h.patch)
	g.DELETE("/products/:id", h.remove)
}

func (h *ProductHandler) list(c *gin.Context) {
	offset, limit := pagination(c)
	products, err := h.repo.List(c.Request.Context(), offset, limit,
		domain.ProductOrder(c.Query("order")), c.Query("category"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// get 记录不存在时响应 200 + null（历史契约，User/Order 是 404，勿统一）
func (h *ProductHandler) get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var p *domain.Product
	if h.cache != nil {
		p, err = cache.GetOrLoadJSON(h.cache, c.Request.Context(), productKey(id), productCacheTTL,
			func(ctx context.Context) (*domain.Product, error) {
				return h.repo.FindByID(ctx, id)
			})
	} else {
		p, err = h.repo.FindByID(c.Request.Context(), id)
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type createProductIn struct {
	Name     string  `json:"name" binding:"required,max=191"`
	Category string  `json:"category" binding:"omitempty,max=64"`
	Price    float64 `json:"price" binding:"required,gte=0"`
}

// create 返回 200 而非 201（历史契约）
func (h *ProductHandler) create(c *gin.Context) {
	var in createProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(httperr.BadRequest(err.Error()))
		return
	}
	p := domain.Product{Name: in.Name, Category: in.Category, Price: in.Price}
	if err := h.repo.Create(c.Request.Context(), &p); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type patchProductIn struct {
	Name     *string  `json:"name" binding:"omitempty,max=191"`
	Category *string  `json:"category" binding:"omitempty,max=64"`
	Price    *float64 `json:"price" binding:"omitempty,gte=0"`
}

// patch 记录不存在时同样响应 200 + null
func (h *ProductHandler) patch(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var in patchProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(httperr.BadRequest(err.Error()))
		return
	}
	p, err := h.repo.Patch(c.Request.Context(), id, domain.ProductPatch{
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.invalidate(c, id)
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) remove(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	h.invalidate(c, id)
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) invalidate(c *gin.Context, id uint) {
	if h.cache != nil {
		h.cache.Del(c.Request.Context(), productKey(id))
	}
}

func productKey(id uint) string { return fmt.Sprintf("product:%d", id) }

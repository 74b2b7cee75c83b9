package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-shop-api/internal/domain"
	"go-shop-api/internal/transport/http/httperr"
)

type OrderHandler struct {
	repo domain.OrderRepository
	log  *zap.Logger
}

func NewOrderHandler(repo domain.OrderRepository, l *zap.Logger) *OrderHandler {
	return &OrderHandler{repo: repo, log: l}
}

func (h *OrderHandler) Mount(g *gin.RouterGroup) {
	g.POST("/orders", h.create)
	g.GET("/orders/:id", h.get)
	g.DELETE("/orders/:id", h.remove)
}

type orderItemIn struct {
	ProductID *uint   `json:"productId"`
	UnitPrice float64 `json:"unitPrice" binding:"gte=0"`
	Quantity  int     `json:"quantity" binding:"required,gte=1"`
}

type createOrderIn struct {
	UserID     uint          `json:"userId" binding:"required"`
	OrderItems []orderItemIn `json:"orderItems" binding:"omitempty,dive"`
}

func (h *OrderHandler) create(c *gin.Context) {
	var in createOrderIn
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(httperr.BadRequest(err.Error()))
		return
	}
	o := domain.Order{
		UserID: in.UserID,
		Items:  make([]domain.OrderItem, 0, len(in.OrderItems)),
	}
	for _, it := range in.OrderItems {
		o.Items = append(o.Items, domain.OrderItem{
			ProductID: it.ProductID,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}
	if err := h.repo.Create(c.Request.Context(), &o); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// orderOut 读取时附带派生 total，不落库
type orderOut struct {
	domain.Order
	Total float64 `json:"total"`
}

func (h *OrderHandler) get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	o, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, orderOut{Order: *o, Total: o.Total()})
}

func (h *OrderHandler) remove(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

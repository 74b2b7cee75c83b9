package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-shop-api/internal/domain"
	"go-shop-api/internal/transport/http/httperr"
)

type UserHandler struct {
	repo domain.UserRepository
	log  *zap.Logger
}

func NewUserHandler(repo domain.UserRepository, l *zap.Logger) *UserHandler {
	return &UserHandler{repo: repo, log: l}
}

func (h *UserHandler) Mount(g *gin.RouterGroup) {
	g.GET("/users", h.list)
	g.GET("/users/:id", h.get)
	g.POST("/users", h.create)
	g.PATCH("/users/:id", h.patch)
	g.DELETE("/users/:id", h.remove)
	g.GET("/users/:id/saved-products", h.savedProducts)
	g.POST("/users/:id/saved-products", h.saveProduct)
	g.GET("/users/:id/orders", h.orders)
}

func (h *UserHandler) list(c *gin.Context) {
	offset, limit := pagination(c)
	users, err := h.repo.List(c.Request.Context(), offset, limit, domain.UserOrder(c.Query("order")))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	u, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type userPreferenceIn struct {
	ReceiveEmail bool `json:"receiveEmail"`
}

type createUserIn struct {
	Name           string            `json:"name" binding:"required,max=64"`
	Email          *string           `json:"email" binding:"omitempty,email"`
	UserPreference *userPreferenceIn `json:"userPreference"`
}

func (h *UserHandler) create(c *gin.Context) {
	var in createUserIn
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(httperr.BadRequest(err.Error()))
		return
	}
	u := domain.User{
		Name:           in.Name,
		Email:          in.Email,
		UserPreference: &domain.UserPreference{},
	}
	if in.UserPreference != nil {
		u.UserPreference.ReceiveEmail = in.UserPreference.ReceiveEmail
	}
	if err := h.repo.Create(c.Request.Context(), &u); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

type patchUserPreferenceIn struct {
	ReceiveEmail *bool `json:"receiveEmail"`
}

type patchUserIn struct {
	Name           *string                `json:"name" binding:"omitempty,max=64"`
	Email          *string                `json:"email" binding:"omitempty,email"`
	UserPreference *patchUserPreferenceIn `json:"userPreference"`
}

func (h *UserHandler) patch(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var in patchUserIn
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(httperr.BadRequest(err.Error()))
		return
	}
	p := domain.UserPatch{Name: in.Name, Email: in.Email}
	if in.UserPreference != nil {
		p.ReceiveEmail = in.UserPreference.ReceiveEmail
	}
	u, err := h.repo.Patch(c.Request.Context(), id, p)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) remove(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	// 与 204 的删除路径不一致，沿用既有对外契约
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

func (h *UserHandler) savedProducts(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	products, err := h.repo.ListSavedProducts(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, products)
}

type saveProductIn struct {
	ProductID uint `json:"productId" binding:"required"`
}

func (h *UserHandler) saveProduct(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	var in saveProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(httperr.BadRequest(err.Error()))
		return
	}
	sp, err := h.repo.AddSavedProduct(c.Request.Context(), id, in.ProductID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, sp)
}

func (h *UserHandler) orders(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	orders, err := h.repo.ListOrders(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

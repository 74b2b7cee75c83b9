package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-shop-api/internal/core/auth"
	"go-shop-api/internal/domain"
	"go-shop-api/internal/transport/http/httperr"
	"go-shop-api/pkg/utils"
)

// AdminHandler 运维侧接口：用户巡查、封禁。挂在独立端口，JWT 保护。
type AdminHandler struct {
	db           *gorm.DB
	jwter        *auth.JWTer
	passwordHash string
	log          *zap.Logger
}

func NewAdminHandler(db *gorm.DB, jwter *auth.JWTer, passwordHash string, l *zap.Logger) *AdminHandler {
	return &AdminHandler{db: db, jwter: jwter, passwordHash: passwordHash, log: l}
}

// MountPublic 不鉴权的入口（换令牌）
func (h *AdminHandler) MountPublic(g *gin.RouterGroup) {
	g.POST("/auth/token", h.token)
}

func (h *AdminHandler) Mount(g *gin.RouterGroup) {
	g.GET("/users", h.listUsers)
	g.POST("/users/:id/ban", h.banUser)
}

type tokenIn struct {
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) token(c *gin.Context) {
	var in tokenIn
	if err := c.ShouldBindJSON(&in); err != nil {
		_ = c.Error(httperr.BadRequest(err.Error()))
		return
	}
	if h.passwordHash == "" || !utils.CheckPassword(in.Password, h.passwordHash) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}
	tok, err := h.jwter.Issue("admin", "admin")
	if err != nil {
		_ = c.Error(httperr.Internal("issue token failed", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tok})
}

type adminListQ struct {
	Offset      int    `form:"offset,default=0"`
	Limit       int    `form:"limit,default=20"`
	Q           string `form:"q"`            // 按 email/name 模糊搜
	WithDeleted bool   `form:"with_deleted"` // 是否包含软删
}

func (h *AdminHandler) listUsers(c *gin.Context) {
	var in adminListQ
	if err := c.ShouldBindQuery(&in); err != nil {
		_ = c.Error(httperr.BadRequest(err.Error()))
		return
	}
	if in.Limit <= 0 || in.Limit > 100 {
		in.Limit = 20
	}
	q := h.db.WithContext(c.Request.Context()).Model(&domain.User{})
	if in.WithDeleted {
		q = q.Unscoped()
	}
	if s := strings.TrimSpace(in.Q); s != "" {
		like := "%" + s + "%"
		q = q.Where("email LIKE ? OR name LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		_ = c.Error(httperr.Internal("count users failed", err))
		return
	}
	var users []domain.User
	if err := q.Order("created_at DESC").Limit(in.Limit).Offset(in.Offset).Find(&users).Error; err != nil {
		_ = c.Error(httperr.Internal("list users failed", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "items": users})
}

// banUser 软删（公开 API 不再可见，数据保留）
func (h *AdminHandler) banUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	res := h.db.WithContext(c.Request.Context()).Where("id = ?", id).Delete(&domain.User{})
	if res.Error != nil {
		_ = c.Error(httperr.Internal("ban user failed", res.Error))
		return
	}
	if res.RowsAffected == 0 {
		_ = c.Error(httperr.NotFound("user not found"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

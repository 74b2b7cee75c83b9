package router

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-shop-api/internal/core/auth"
	"go-shop-api/internal/transport/http/handler"
	mdw "go-shop-api/internal/transport/http/middleware"
)

// NewAdminEngine 管理端：独立端口，/metrics 与用户治理
func NewAdminEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer, passwordHash string) *gin.Engine {
	r := gin.New()

	r.Use(
		ginzap.Ginzap(l, time.RFC3339, true),
		ginzap.RecoveryWithZap(l, true),
		mdw.ErrorMapper(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := handler.NewAdminHandler(db, jwter, passwordHash, l)

	pub := r.Group("/admin/v1")
	h.MountPublic(pub)

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, "admin"))
	h.Mount(admin)

	return r
}

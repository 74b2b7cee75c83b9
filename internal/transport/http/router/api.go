package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-shop-api/internal/core/cache"
	"go-shop-api/internal/repo"
	"go-shop-api/internal/transport/http/handler"
	mdw "go-shop-api/internal/transport/http/middleware"
)

// NewAPIEngine 公开 API：users / products / orders
func NewAPIEngine(l *zap.Logger, db *gorm.DB, ch *cache.Cache) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
		mdw.ErrorMapper(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	root := r.Group("")
	handler.NewUserHandler(repo.NewUserRepo(db), l).Mount(root)
	handler.NewProductHandler(repo.NewProductRepo(db), ch, l).Mount(root)
	handler.NewOrderHandler(repo.NewOrderRepo(db), l).Mount(root)

	return r
}

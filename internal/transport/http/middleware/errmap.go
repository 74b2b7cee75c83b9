package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-shop-api/internal/transport/http/httperr"
)

// ErrorMapper 统一出错出口：handler 只 c.Error，不自己写响应。
// 响应体固定 {"message": ...}
func ErrorMapper(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors[0].Err
		status, msg := httperr.Classify(err)
		if status >= 500 {
			l.Error("request failed",
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
		}
		c.JSON(status, gin.H{"message": msg})
	}
}

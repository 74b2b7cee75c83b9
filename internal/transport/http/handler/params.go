package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"go-shop-api/internal/transport/http/httperr"
)

// pagination offset 默认 0，limit 默认 10；非数字/负数回落默认值
func pagination(c *gin.Context) (offset, limit int) {
	return atoiDefault(c.Query("offset"), 0), atoiDefault(c.Query("limit"), 10)
}

func atoiDefault(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func pathID(c *gin.Context) (uint, error) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, httperr.BadRequest("invalid id")
	}
	return uint(v), nil
}

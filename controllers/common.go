package controllers

import (
	"net/http"
	"strconv"

	"Gin_postgres_library_api/app"

	"github.com/gin-gonic/gin"
)

// parseID 路径参数是十进制整数；解析失败当作查不到处理，
// 反正非数字 id 也不可能命中任何行。
func parseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// 统一兜底：存储层的异常一律对外只说 internal error
func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, app.H{"error": "Internal server error"})
}

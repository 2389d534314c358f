package handler

import (
	"strconv"

	"Ming_Social/internal/middleware"

	"github.com/gin-gonic/gin"
)

func userIDFromCtx(c *gin.Context) uint64 {
	if v, ok := c.Get(middleware.ContextUserIDKey); ok {
		if id, ok2 := v.(uint64); ok2 {
			return id
		}
	}
	return 0
}

// filterIDFromQuery 解析等值过滤参数，缺省返回 0（不过滤）
// 参数存在但不是合法 ID 时 ok 为 false，不能退化成全量查询
func filterIDFromQuery(c *gin.Context, name string) (uint64, bool) {
	v := c.Query(name)
	if v == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

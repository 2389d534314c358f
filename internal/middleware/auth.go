package middleware

import (
	"net/http"
	"strings"

	"Ming_Social/internal/pkg"
	"Ming_Social/internal/repository"

	"github.com/gin-gonic/gin"
)

const ContextUserIDKey = "user_id"

// AuthMiddleware 解析 Bearer token 并和redis里的登录态比对，
// 通过后向上下文注入 user_id
func AuthMiddleware(tokens repository.TokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid authorization format"})
			c.Abort()
			return
		}

		claims, err := pkg.ParseAccess(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid or expired token"})
			c.Abort()
			return
		}

		// 登出或顶号后redis里没有/不匹配，直接拒绝
		originToken, err := tokens.Get(claims.UserID)
		if err != nil || originToken != parts[1] {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "session expired"})
			c.Abort()
			return
		}

		// 校验通过后滑动续期
		if err = tokens.Extend(claims.UserID); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

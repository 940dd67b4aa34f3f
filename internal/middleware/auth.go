package middleware

import (
	"net/http"
	"strings"

	"Event_Admin/internal/model"
	"Event_Admin/internal/pkg"
	"Event_Admin/internal/repository/mysql"
	"Event_Admin/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const ContextAdminIDKey = "admin_id"

// AdminAuthMiddleware 只放行 admin 会话。
// 非 admin 不是只挡住接口，而是直接吊销会话——角色被降级的旧 token 不能继续用
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid authorization format"})
			c.Abort()
			return
		}

		tokenStr := parts[1]
		sessions := &redis.SessionRepository{}

		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "invalid or expired token"})
			c.Abort()
			return
		}

		// redis校验是否是当前有效会话
		originToken, err := sessions.GetToken(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "session expired, please sign in again"})
			c.Abort()
			return
		}
		if originToken != tokenStr {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "account has been logging elsewhere"})
			c.Abort()
			return
		}

		// 每次请求都回库确认角色，降级立即生效
		users := &mysql.UserRepository{}
		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil || user.Role != model.RoleAdmin {
			_ = sessions.DeleteToken(claims.UserID)
			c.JSON(http.StatusForbidden, gin.H{"msg": "access denied: administrators only"})
			c.Abort()
			return
		}

		// 校验通过后更新过期时间
		if err = sessions.ExtendToken(claims.UserID); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}

		c.Set(ContextAdminIDKey, claims.UserID)
		c.Next()
	}
}

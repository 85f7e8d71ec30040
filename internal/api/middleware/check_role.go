package middleware

import (
	"Hirebase/internal/pkg/consts"
	"Hirebase/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckMemberTypes 检查当前会员类型是否在允许范围内
func CheckMemberTypes(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberType := c.GetString(consts.CtxMemberTypeKey)

		hasPermission := false
		for _, t := range allowed {
			if t == memberType {
				hasPermission = true
				break
			}
		}

		if !hasPermission {
			response.Fail(c, response.Forbidden, "权限不足：无权访问该资源")
			c.Abort()
			return
		}

		c.Next()
	}
}

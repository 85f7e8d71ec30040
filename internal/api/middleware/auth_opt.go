package middleware

import (
	"Hirebase/internal/pkg/consts"
	"Hirebase/internal/pkg/security"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：解析成功注入会员身份，失败或缺失按游客处理
func AuthOptionalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Set(consts.CtxMemberIDKey, "")
			c.Next()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := security.ValidateToken(token)

		if err != nil {
			c.Set(consts.CtxMemberIDKey, "")
		} else {
			c.Set(consts.CtxMemberIDKey, claims.MemberID)
			c.Set(consts.CtxMemberTypeKey, claims.MemberType)
			newCtx := context.WithValue(c.Request.Context(), consts.CtxMemberIDKey, claims.MemberID)
			c.Request = c.Request.WithContext(newCtx)
		}

		c.Next()
	}
}

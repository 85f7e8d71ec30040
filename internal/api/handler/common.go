package handler

import (
	"Hirebase/internal/api/dto"
	"Hirebase/internal/pkg/consts"
	"Hirebase/internal/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentMemberID 从上下文取登录会员 ID，游客返回零值
func currentMemberID(c *gin.Context) primitive.ObjectID {
	hex := c.GetString(consts.CtxMemberIDKey)
	if hex == "" {
		return primitive.NilObjectID
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}

func pathID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func pageData[T any](res *repository.PageResult[T]) dto.PageData {
	return dto.PageData{List: res.List, Total: res.Total}
}

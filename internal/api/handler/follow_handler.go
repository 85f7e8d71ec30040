package handler

import (
	"Hirebase/internal/api/dto"
	"Hirebase/internal/pkg/response"
	"Hirebase/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followSvc service.FollowService
}

func NewFollowHandler(followSvc service.FollowService) *FollowHandler {
	return &FollowHandler{followSvc: followSvc}
}

func (s *FollowHandler) Subscribe(c *gin.Context) {
	targetID, ok := pathID(c, "memberId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	follow, err := s.followSvc.Subscribe(c.Request.Context(), currentMemberID(c), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, follow)
}

func (s *FollowHandler) Unsubscribe(c *gin.Context) {
	targetID, ok := pathID(c, "memberId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err := s.followSvc.Unsubscribe(c.Request.Context(), currentMemberID(c), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *FollowHandler) GetMemberFollowers(c *gin.Context) {
	memberID, ok := pathID(c, "memberId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.PageQuery
	err := c.ShouldBindQuery(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.followSvc.GetMemberFollowers(c.Request.Context(), memberID, req, currentMemberID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pageData(res))
}

func (s *FollowHandler) GetMemberFollowings(c *gin.Context) {
	memberID, ok := pathID(c, "memberId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.PageQuery
	err := c.ShouldBindQuery(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.followSvc.GetMemberFollowings(c.Request.Context(), memberID, req, currentMemberID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pageData(res))
}

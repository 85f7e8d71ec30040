package handler

import (
	"Hirebase/internal/api/dto"
	"Hirebase/internal/pkg/response"
	"Hirebase/internal/pkg/util"
	"Hirebase/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberSvc service.MemberService
}

func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

func (s *MemberHandler) Signup(c *gin.Context) {
	var req dto.SignupDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	member, token, err := s.memberSvc.Signup(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.LoginResult{AccessToken: token, Member: member})
}

func (s *MemberHandler) Login(c *gin.Context) {
	var req dto.LoginDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	member, token, err := s.memberSvc.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.LoginResult{AccessToken: token, Member: member})
}

func (s *MemberHandler) Logout(c *gin.Context) {
	token := c.Request.Header.Get("Authorization")
	token = strings.Replace(token, "Bearer ", "", 1)
	err := s.memberSvc.Logout(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *MemberHandler) GetMember(c *gin.Context) {
	targetID, ok := pathID(c, "memberId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	member, err := s.memberSvc.GetMember(c.Request.Context(), targetID, currentMemberID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, member)
}

func (s *MemberHandler) GetAgents(c *gin.Context) {
	var req dto.MembersInquiry
	err := c.ShouldBindQuery(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.memberSvc.GetAgents(c.Request.Context(), &req, currentMemberID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pageData(res))
}

func (s *MemberHandler) GetTopAgents(c *gin.Context) {
	agents, err := s.memberSvc.GetTopAgents(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, agents)
}

func (s *MemberHandler) GetMembers(c *gin.Context) {
	var req dto.MembersInquiry
	err := c.ShouldBindQuery(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.memberSvc.GetMembers(c.Request.Context(), &req, currentMemberID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pageData(res))
}

func (s *MemberHandler) UpdateMember(c *gin.Context) {
	var req dto.MemberUpdateDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	member, err := s.memberSvc.UpdateMember(c.Request.Context(), currentMemberID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, member)
}

func (s *MemberHandler) UpdateMemberByAdmin(c *gin.Context) {
	targetID, ok := pathID(c, "memberId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.MemberAdminUpdateDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	member, err := s.memberSvc.UpdateMemberByAdmin(c.Request.Context(), targetID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, member)
}

func (s *MemberHandler) LikeTargetMember(c *gin.Context) {
	targetID, ok := pathID(c, "memberId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	member, err := s.memberSvc.LikeTargetMember(c.Request.Context(), currentMemberID(c), targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, member)
}

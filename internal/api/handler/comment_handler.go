package handler

import (
	"Hirebase/internal/api/dto"
	"Hirebase/internal/pkg/response"
	"Hirebase/internal/pkg/util"
	"Hirebase/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

func (s *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CommentCreateDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	comment, err := s.commentSvc.CreateComment(c.Request.Context(), currentMemberID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, ok := pathID(c, "commentId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.CommentUpdateDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	comment, err := s.commentSvc.UpdateComment(c.Request.Context(), currentMemberID(c), commentID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) GetComments(c *gin.Context) {
	var req dto.CommentsInquiry
	err := c.ShouldBindQuery(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.commentSvc.GetComments(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pageData(res))
}

func (s *CommentHandler) RemoveCommentByAdmin(c *gin.Context) {
	commentID, ok := pathID(c, "commentId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err := s.commentSvc.RemoveCommentByAdmin(c.Request.Context(), commentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

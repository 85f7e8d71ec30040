package handler

import (
	"Hirebase/internal/api/dto"
	"Hirebase/internal/pkg/response"
	"Hirebase/internal/pkg/util"
	"Hirebase/internal/service"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleSvc service.ArticleService
}

func NewArticleHandler(articleSvc service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleSvc: articleSvc}
}

func (s *ArticleHandler) CreateArticle(c *gin.Context) {
	var req dto.ArticleCreateDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	article, err := s.articleSvc.CreateArticle(c.Request.Context(), currentMemberID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, article)
}

func (s *ArticleHandler) GetArticle(c *gin.Context) {
	articleID, ok := pathID(c, "articleId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	article, err := s.articleSvc.GetArticle(c.Request.Context(), articleID, currentMemberID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, article)
}

func (s *ArticleHandler) GetArticles(c *gin.Context) {
	var req dto.ArticlesInquiry
	err := c.ShouldBindQuery(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.articleSvc.GetArticles(c.Request.Context(), &req, currentMemberID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pageData(res))
}

func (s *ArticleHandler) UpdateArticle(c *gin.Context) {
	articleID, ok := pathID(c, "articleId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.ArticleUpdateDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	article, err := s.articleSvc.UpdateArticle(c.Request.Context(), currentMemberID(c), articleID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, article)
}

func (s *ArticleHandler) LikeTargetArticle(c *gin.Context) {
	articleID, ok := pathID(c, "articleId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	article, err := s.articleSvc.LikeTargetArticle(c.Request.Context(), currentMemberID(c), articleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, article)
}

func (s *ArticleHandler) GetAllArticlesByAdmin(c *gin.Context) {
	var req dto.ArticlesInquiry
	err := c.ShouldBindQuery(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	res, err := s.articleSvc.GetAllArticlesByAdmin(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pageData(res))
}

func (s *ArticleHandler) UpdateArticleByAdmin(c *gin.Context) {
	articleID, ok := pathID(c, "articleId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var req dto.ArticleUpdateDTO
	err := c.ShouldBind(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	article, err := s.articleSvc.UpdateArticleByAdmin(c.Request.Context(), articleID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, article)
}

func (s *ArticleHandler) RemoveArticleByAdmin(c *gin.Context) {
	articleID, ok := pathID(c, "articleId")
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err := s.articleSvc.RemoveArticleByAdmin(c.Request.Context(), articleID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

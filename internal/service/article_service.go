package service

import (
	"Hirebase/internal/api/dto"
	"Hirebase/internal/model"
	"Hirebase/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ArticleService interface {
	CreateArticle(ctx context.Context, memberID primitive.ObjectID, req *dto.ArticleCreateDTO) (*model.BoardArticle, error)
	GetArticle(ctx context.Context, articleID, viewerID primitive.ObjectID) (*model.BoardArticle, error)
	GetArticles(ctx context.Context, inquiry *dto.ArticlesInquiry, viewerID primitive.ObjectID) (*repository.PageResult[model.BoardArticle], error)
	UpdateArticle(ctx context.Context, memberID, articleID primitive.ObjectID, req *dto.ArticleUpdateDTO) (*model.BoardArticle, error)
	LikeTargetArticle(ctx context.Context, viewerID, articleID primitive.ObjectID) (*model.BoardArticle, error)
	GetAllArticlesByAdmin(ctx context.Context, inquiry *dto.ArticlesInquiry) (*repository.PageResult[model.BoardArticle], error)
	UpdateArticleByAdmin(ctx context.Context, articleID primitive.ObjectID, req *dto.ArticleUpdateDTO) (*model.BoardArticle, error)
	RemoveArticleByAdmin(ctx context.Context, articleID primitive.ObjectID) error
}

type ArticleServiceImpl struct {
	articleRepo     repository.ArticleRepo
	memberRepo      repository.MemberRepo
	likeSvc         LikeService
	viewSvc         ViewService
	notificationSvc NotificationService
}

func NewArticleService(
	articleRepo repository.ArticleRepo,
	memberRepo repository.MemberRepo,
	likeSvc LikeService,
	viewSvc ViewService,
	notificationSvc NotificationService,
) ArticleService {
	return &ArticleServiceImpl{
		articleRepo:     articleRepo,
		memberRepo:      memberRepo,
		likeSvc:         likeSvc,
		viewSvc:         viewSvc,
		notificationSvc: notificationSvc,
	}
}

func (s *ArticleServiceImpl) CreateArticle(ctx context.Context, memberID primitive.ObjectID, req *dto.ArticleCreateDTO) (*model.BoardArticle, error) {
	article := &model.BoardArticle{
		MemberID:        memberID,
		ArticleCategory: model.ArticleCategory(req.ArticleCategory),
		ArticleStatus:   model.ArticleStatusActive,
		ArticleTitle:    req.ArticleTitle,
		ArticleContent:  req.ArticleContent,
		ArticleImage:    req.ArticleImage,
	}
	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}
	if err := s.memberRepo.AdjustStat(ctx, memberID, model.StatMemberArticles, 1); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *ArticleServiceImpl) GetArticle(ctx context.Context, articleID, viewerID primitive.ObjectID) (*model.BoardArticle, error) {
	article, err := s.articleRepo.FindOneWithViewer(ctx, articleID, viewerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if !viewerID.IsZero() && viewerID != article.MemberID {
		created, err := s.viewSvc.Record(ctx, viewerID, articleID, model.TargetGroupArticle)
		if err != nil {
			return nil, err
		}
		if created {
			if err = s.articleRepo.AdjustStat(ctx, articleID, model.StatArticleViews, 1); err != nil {
				return nil, err
			}
			article.ArticleViews++
		}
	}
	return article, nil
}

func (s *ArticleServiceImpl) GetArticles(ctx context.Context, inquiry *dto.ArticlesInquiry, viewerID primitive.ObjectID) (*repository.PageResult[model.BoardArticle], error) {
	filter := repository.ArticleFilter{
		Category: model.ArticleCategory(inquiry.ArticleCategory),
		Text:     inquiry.Text,
	}
	if inquiry.MemberID != "" {
		id, err := primitive.ObjectIDFromHex(inquiry.MemberID)
		if err != nil {
			return nil, ErrParamInvalid
		}
		filter.MemberID = id
	}
	return s.articleRepo.List(ctx, filter, pageOf(inquiry.PageQuery), viewerID)
}

func (s *ArticleServiceImpl) UpdateArticle(ctx context.Context, memberID, articleID primitive.ObjectID, req *dto.ArticleUpdateDTO) (*model.BoardArticle, error) {
	article, err := s.articleRepo.FindByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	if article.MemberID != memberID {
		return nil, ErrNotAuthorized
	}
	return s.applyArticleUpdate(ctx, article, req)
}

func (s *ArticleServiceImpl) applyArticleUpdate(ctx context.Context, article *model.BoardArticle, req *dto.ArticleUpdateDTO) (*model.BoardArticle, error) {
	set := bson.D{}
	var modifier int64
	if req.ArticleStatus != nil {
		status := model.ArticleStatus(*req.ArticleStatus)
		set = append(set, bson.E{Key: "articleStatus", Value: status})
		if status != article.ArticleStatus {
			switch status {
			case model.ArticleStatusDelete:
				modifier = -1
			case model.ArticleStatusActive:
				modifier = 1
			}
		}
	}
	if req.ArticleTitle != nil {
		set = append(set, bson.E{Key: "articleTitle", Value: *req.ArticleTitle})
	}
	if req.ArticleContent != nil {
		set = append(set, bson.E{Key: "articleContent", Value: *req.ArticleContent})
	}
	if req.ArticleImage != nil {
		set = append(set, bson.E{Key: "articleImage", Value: *req.ArticleImage})
	}
	if len(set) == 0 {
		return nil, ErrParamInvalid
	}

	updated, err := s.articleRepo.UpdateFields(ctx, article.ID, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	if modifier != 0 {
		if err = s.memberRepo.AdjustStat(ctx, article.MemberID, model.StatMemberArticles, modifier); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

func (s *ArticleServiceImpl) LikeTargetArticle(ctx context.Context, viewerID, articleID primitive.ObjectID) (*model.BoardArticle, error) {
	article, err := s.articleRepo.FindByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	modifier, err := s.likeSvc.Toggle(ctx, viewerID, articleID, model.TargetGroupArticle)
	if err != nil {
		return nil, err
	}
	if modifier != 0 {
		if err = s.articleRepo.AdjustStat(ctx, articleID, model.StatArticleLikes, modifier); err != nil {
			return nil, err
		}
		if err = s.memberRepo.AdjustStat(ctx, article.MemberID, model.StatMemberLikes, modifier); err != nil {
			return nil, err
		}
	}

	switch modifier {
	case 1:
		s.notificationSvc.Notify(ctx, &model.Notification{
			AuthorID:          viewerID,
			ReceiverID:        article.MemberID,
			NotificationType:  model.NotificationTypeLike,
			NotificationGroup: model.NotificationGroupArticle,
			NotificationTitle: "有人赞了你的帖子",
			NotificationDesc:  article.ArticleTitle,
			ArticleID:         &article.ID,
		})
	case -1:
		s.notificationSvc.Retract(ctx, repository.NotificationCriteria{
			AuthorID:   viewerID,
			ReceiverID: article.MemberID,
			Type:       model.NotificationTypeLike,
			Group:      model.NotificationGroupArticle,
			ArticleID:  &article.ID,
		})
	}

	article.ArticleLikes += modifier
	article.MeLiked = modifier == 1
	return article, nil
}

func (s *ArticleServiceImpl) GetAllArticlesByAdmin(ctx context.Context, inquiry *dto.ArticlesInquiry) (*repository.PageResult[model.BoardArticle], error) {
	filter := repository.ArticleFilter{
		Category: model.ArticleCategory(inquiry.ArticleCategory),
		Status:   model.ArticleStatus(inquiry.ArticleStatus),
		Text:     inquiry.Text,
	}
	if inquiry.MemberID != "" {
		id, err := primitive.ObjectIDFromHex(inquiry.MemberID)
		if err != nil {
			return nil, ErrParamInvalid
		}
		filter.MemberID = id
	}
	return s.articleRepo.List(ctx, filter, pageOf(inquiry.PageQuery), primitive.NilObjectID)
}

func (s *ArticleServiceImpl) UpdateArticleByAdmin(ctx context.Context, articleID primitive.ObjectID, req *dto.ArticleUpdateDTO) (*model.BoardArticle, error) {
	article, err := s.articleRepo.FindAnyByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return s.applyArticleUpdate(ctx, article, req)
}

// RemoveArticleByAdmin 物理删除，仅允许已下架的帖子
func (s *ArticleServiceImpl) RemoveArticleByAdmin(ctx context.Context, articleID primitive.ObjectID) error {
	article, err := s.articleRepo.FindAnyByID(ctx, articleID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrArticleNotFound
		}
		return err
	}
	if article.ArticleStatus != model.ArticleStatusDelete {
		return ErrRemoveNotAllowed
	}
	return s.articleRepo.Delete(ctx, articleID)
}

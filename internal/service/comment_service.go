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

type CommentService interface {
	CreateComment(ctx context.Context, memberID primitive.ObjectID, req *dto.CommentCreateDTO) (*model.Comment, error)
	UpdateComment(ctx context.Context, memberID, commentID primitive.ObjectID, req *dto.CommentUpdateDTO) (*model.Comment, error)
	GetComments(ctx context.Context, inquiry *dto.CommentsInquiry) (*repository.PageResult[model.Comment], error)
	RemoveCommentByAdmin(ctx context.Context, commentID primitive.ObjectID) error
}

type CommentServiceImpl struct {
	commentRepo     repository.CommentRepo
	memberRepo      repository.MemberRepo
	jobRepo         repository.JobRepo
	articleRepo     repository.ArticleRepo
	notificationSvc NotificationService
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	memberRepo repository.MemberRepo,
	jobRepo repository.JobRepo,
	articleRepo repository.ArticleRepo,
	notificationSvc NotificationService,
) CommentService {
	return &CommentServiceImpl{
		commentRepo:     commentRepo,
		memberRepo:      memberRepo,
		jobRepo:         jobRepo,
		articleRepo:     articleRepo,
		notificationSvc: notificationSvc,
	}
}

// CreateComment 校验目标存在后落库，目标计数加一并通知目标归属者
func (s *CommentServiceImpl) CreateComment(ctx context.Context, memberID primitive.ObjectID, req *dto.CommentCreateDTO) (*model.Comment, error) {
	group := model.TargetGroup(req.CommentGroup)
	refID, err := primitive.ObjectIDFromHex(req.CommentRefID)
	if err != nil {
		return nil, ErrParamInvalid
	}

	receiverID, notification, err := s.resolveTarget(ctx, group, refID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		CommentGroup:   group,
		CommentRefID:   refID,
		MemberID:       memberID,
		CommentStatus:  model.CommentStatusActive,
		CommentContent: req.CommentContent,
	}
	if err = s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	if err = s.adjustTargetComments(ctx, group, refID, 1); err != nil {
		return nil, err
	}

	notification.AuthorID = memberID
	notification.ReceiverID = receiverID
	s.notificationSvc.Notify(ctx, notification)

	return comment, nil
}

func (s *CommentServiceImpl) UpdateComment(ctx context.Context, memberID, commentID primitive.ObjectID, req *dto.CommentUpdateDTO) (*model.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if comment.MemberID != memberID {
		return nil, ErrNotAuthorized
	}

	set := bson.D{}
	removed := false
	if req.CommentStatus != nil {
		status := model.CommentStatus(*req.CommentStatus)
		set = append(set, bson.E{Key: "commentStatus", Value: status})
		removed = status == model.CommentStatusDelete
	}
	if req.CommentContent != nil {
		set = append(set, bson.E{Key: "commentContent", Value: *req.CommentContent})
	}
	if len(set) == 0 {
		return nil, ErrParamInvalid
	}

	updated, err := s.commentRepo.UpdateFields(ctx, commentID, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	if removed {
		if err = s.adjustTargetComments(ctx, comment.CommentGroup, comment.CommentRefID, -1); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

func (s *CommentServiceImpl) GetComments(ctx context.Context, inquiry *dto.CommentsInquiry) (*repository.PageResult[model.Comment], error) {
	group := model.TargetGroup(inquiry.CommentGroup)
	if !group.Valid() {
		return nil, ErrParamInvalid
	}
	refID, err := primitive.ObjectIDFromHex(inquiry.CommentRefID)
	if err != nil {
		return nil, ErrParamInvalid
	}
	return s.commentRepo.ListByTarget(ctx, group, refID, pageOf(inquiry.PageQuery))
}

func (s *CommentServiceImpl) RemoveCommentByAdmin(ctx context.Context, commentID primitive.ObjectID) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrCommentNotFound
		}
		return err
	}
	if _, err = s.commentRepo.UpdateFields(ctx, commentID, bson.D{
		{Key: "commentStatus", Value: model.CommentStatusDelete},
	}); err != nil {
		return err
	}
	return s.adjustTargetComments(ctx, comment.CommentGroup, comment.CommentRefID, -1)
}

// resolveTarget 找到被评论实体的归属会员，并准备好通知模板
func (s *CommentServiceImpl) resolveTarget(ctx context.Context, group model.TargetGroup, refID primitive.ObjectID) (primitive.ObjectID, *model.Notification, error) {
	switch group {
	case model.TargetGroupMember:
		member, err := s.memberRepo.FindByID(ctx, refID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return primitive.NilObjectID, nil, ErrTargetNotFound
			}
			return primitive.NilObjectID, nil, err
		}
		return member.ID, &model.Notification{
			NotificationType:  model.NotificationTypeComment,
			NotificationGroup: model.NotificationGroupMember,
			NotificationTitle: "有人评论了你",
		}, nil
	case model.TargetGroupJob:
		job, err := s.jobRepo.FindByID(ctx, refID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return primitive.NilObjectID, nil, ErrTargetNotFound
			}
			return primitive.NilObjectID, nil, err
		}
		return job.MemberID, &model.Notification{
			NotificationType:  model.NotificationTypeComment,
			NotificationGroup: model.NotificationGroupJob,
			NotificationTitle: "有人评论了你的职位",
			NotificationDesc:  job.PositionTitle,
			JobID:             &job.ID,
		}, nil
	case model.TargetGroupArticle:
		article, err := s.articleRepo.FindByID(ctx, refID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return primitive.NilObjectID, nil, ErrTargetNotFound
			}
			return primitive.NilObjectID, nil, err
		}
		return article.MemberID, &model.Notification{
			NotificationType:  model.NotificationTypeComment,
			NotificationGroup: model.NotificationGroupArticle,
			NotificationTitle: "有人评论了你的帖子",
			NotificationDesc:  article.ArticleTitle,
			ArticleID:         &article.ID,
		}, nil
	}
	return primitive.NilObjectID, nil, ErrParamInvalid
}

func (s *CommentServiceImpl) adjustTargetComments(ctx context.Context, group model.TargetGroup, refID primitive.ObjectID, delta int64) error {
	switch group {
	case model.TargetGroupMember:
		return s.memberRepo.AdjustStat(ctx, refID, model.StatMemberComments, delta)
	case model.TargetGroupJob:
		return s.jobRepo.AdjustStat(ctx, refID, model.StatJobComments, delta)
	case model.TargetGroupArticle:
		return s.articleRepo.AdjustStat(ctx, refID, model.StatArticleComments, delta)
	}
	return ErrParamInvalid
}

package service

import (
	"Hirebase/internal/api/dto"
	"Hirebase/internal/model"
	"Hirebase/internal/repository"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FollowService interface {
	Subscribe(ctx context.Context, followerID, followingID primitive.ObjectID) (*model.Follow, error)
	Unsubscribe(ctx context.Context, followerID, followingID primitive.ObjectID) error
	GetMemberFollowers(ctx context.Context, memberID primitive.ObjectID, q dto.PageQuery, viewerID primitive.ObjectID) (*repository.PageResult[model.Follow], error)
	GetMemberFollowings(ctx context.Context, memberID primitive.ObjectID, q dto.PageQuery, viewerID primitive.ObjectID) (*repository.PageResult[model.Follow], error)
}

type FollowServiceImpl struct {
	followRepo      repository.FollowRepo
	memberRepo      repository.MemberRepo
	notificationSvc NotificationService
}

func NewFollowService(
	followRepo repository.FollowRepo,
	memberRepo repository.MemberRepo,
	notificationSvc NotificationService,
) FollowService {
	return &FollowServiceImpl{
		followRepo:      followRepo,
		memberRepo:      memberRepo,
		notificationSvc: notificationSvc,
	}
}

// Subscribe 关注：两侧计数对称增减，重复关注由唯一索引拦下
func (s *FollowServiceImpl) Subscribe(ctx context.Context, followerID, followingID primitive.ObjectID) (*model.Follow, error) {
	if followerID == followingID {
		return nil, ErrFollowSelf
	}

	if _, err := s.memberRepo.FindByID(ctx, followingID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	follow := &model.Follow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	if err := s.followRepo.Insert(ctx, follow); err != nil {
		if repository.IsDup(err) {
			return nil, ErrFollowExist
		}
		return nil, err
	}

	if err := s.memberRepo.AdjustStat(ctx, followerID, model.StatMemberFollowings, 1); err != nil {
		return nil, err
	}
	if err := s.memberRepo.AdjustStat(ctx, followingID, model.StatMemberFollowers, 1); err != nil {
		return nil, err
	}

	s.notificationSvc.Notify(ctx, &model.Notification{
		AuthorID:          followerID,
		ReceiverID:        followingID,
		NotificationType:  model.NotificationTypeFollow,
		NotificationGroup: model.NotificationGroupMember,
		NotificationTitle: "有人关注了你",
	})

	return follow, nil
}

// Unsubscribe 取关：只有真的删掉了边才回滚计数与通知
func (s *FollowServiceImpl) Unsubscribe(ctx context.Context, followerID, followingID primitive.ObjectID) error {
	removed, err := s.followRepo.Remove(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrFollowNotFound
	}

	if err = s.memberRepo.AdjustStat(ctx, followerID, model.StatMemberFollowings, -1); err != nil {
		return err
	}
	if err = s.memberRepo.AdjustStat(ctx, followingID, model.StatMemberFollowers, -1); err != nil {
		return err
	}

	s.notificationSvc.Retract(ctx, repository.NotificationCriteria{
		AuthorID:   followerID,
		ReceiverID: followingID,
		Type:       model.NotificationTypeFollow,
	})
	return nil
}

func (s *FollowServiceImpl) GetMemberFollowers(ctx context.Context, memberID primitive.ObjectID, q dto.PageQuery, viewerID primitive.ObjectID) (*repository.PageResult[model.Follow], error) {
	return s.followRepo.ListFollowers(ctx, memberID, pageOf(q), viewerID)
}

func (s *FollowServiceImpl) GetMemberFollowings(ctx context.Context, memberID primitive.ObjectID, q dto.PageQuery, viewerID primitive.ObjectID) (*repository.PageResult[model.Follow], error) {
	return s.followRepo.ListFollowings(ctx, memberID, pageOf(q), viewerID)
}

package service

import (
	"Hirebase/internal/model"
	"Hirebase/internal/repository"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeService 点赞流水的开关语义，计数器增减由各实体服务完成
type LikeService interface {
	// Toggle 返回 +1(新点赞) 或 -1(取消)
	Toggle(ctx context.Context, memberID, refID primitive.ObjectID, group model.TargetGroup) (int64, error)
	Exists(ctx context.Context, memberID, refID primitive.ObjectID, group model.TargetGroup) (bool, error)
}

type LikeServiceImpl struct {
	likeRepo repository.LikeRepo
}

func NewLikeService(likeRepo repository.LikeRepo) LikeService {
	return &LikeServiceImpl{likeRepo: likeRepo}
}

func (s *LikeServiceImpl) Toggle(ctx context.Context, memberID, refID primitive.ObjectID, group model.TargetGroup) (int64, error) {
	if !group.Valid() {
		return 0, ErrParamInvalid
	}

	err := s.likeRepo.Insert(ctx, &model.Like{
		MemberID:  memberID,
		LikeRefID: refID,
		LikeGroup: group,
	})
	if err == nil {
		return 1, nil
	}
	if !repository.IsDup(err) {
		return 0, err
	}

	// 已点过赞，本次为取消
	removed, err := s.likeRepo.Remove(ctx, memberID, refID, group)
	if err != nil {
		return 0, err
	}
	if !removed {
		// 并发下插入与删除都落空，当作无操作
		return 0, nil
	}
	return -1, nil
}

func (s *LikeServiceImpl) Exists(ctx context.Context, memberID, refID primitive.ObjectID, group model.TargetGroup) (bool, error) {
	return s.likeRepo.Exists(ctx, memberID, refID, group)
}

// ViewService 浏览去重：同一会员对同一目标只计一次
type ViewService interface {
	// Record 返回本次浏览是否首次生效
	Record(ctx context.Context, memberID, refID primitive.ObjectID, group model.TargetGroup) (bool, error)
}

type ViewServiceImpl struct {
	viewRepo repository.ViewRepo
}

func NewViewService(viewRepo repository.ViewRepo) ViewService {
	return &ViewServiceImpl{viewRepo: viewRepo}
}

func (s *ViewServiceImpl) Record(ctx context.Context, memberID, refID primitive.ObjectID, group model.TargetGroup) (bool, error) {
	if !group.Valid() {
		return false, ErrParamInvalid
	}
	return s.viewRepo.RecordIfAbsent(ctx, &model.View{
		MemberID:  memberID,
		ViewRefID: refID,
		ViewGroup: group,
	})
}

package service

import (
	"Hirebase/internal/api/dto"
	"Hirebase/internal/model"
	"Hirebase/internal/pkg/consts"
	"Hirebase/internal/pkg/redis"
	"Hirebase/internal/pkg/security"
	"Hirebase/internal/pkg/util"
	"Hirebase/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MemberService interface {
	Signup(ctx context.Context, req *dto.SignupDTO) (*model.Member, string, error)
	Login(ctx context.Context, req *dto.LoginDTO) (*model.Member, string, error)
	Logout(ctx context.Context, token string) error
	GetMember(ctx context.Context, targetID, viewerID primitive.ObjectID) (*model.Member, error)
	GetMembers(ctx context.Context, inquiry *dto.MembersInquiry, viewerID primitive.ObjectID) (*repository.PageResult[model.Member], error)
	GetAgents(ctx context.Context, inquiry *dto.MembersInquiry, viewerID primitive.ObjectID) (*repository.PageResult[model.Member], error)
	GetTopAgents(ctx context.Context) ([]*model.Member, error)
	UpdateMember(ctx context.Context, memberID primitive.ObjectID, req *dto.MemberUpdateDTO) (*model.Member, error)
	UpdateMemberByAdmin(ctx context.Context, targetID primitive.ObjectID, req *dto.MemberAdminUpdateDTO) (*model.Member, error)
	LikeTargetMember(ctx context.Context, viewerID, targetID primitive.ObjectID) (*model.Member, error)
}

type MemberServiceImpl struct {
	memberRepo      repository.MemberRepo
	likeSvc         LikeService
	viewSvc         ViewService
	notificationSvc NotificationService
}

func NewMemberService(
	memberRepo repository.MemberRepo,
	likeSvc LikeService,
	viewSvc ViewService,
	notificationSvc NotificationService,
) MemberService {
	return &MemberServiceImpl{
		memberRepo:      memberRepo,
		likeSvc:         likeSvc,
		viewSvc:         viewSvc,
		notificationSvc: notificationSvc,
	}
}

func (s *MemberServiceImpl) Signup(ctx context.Context, req *dto.SignupDTO) (*model.Member, string, error) {
	memberType := model.MemberType(req.MemberType)
	if memberType == "" {
		memberType = model.MemberTypeUser
	}
	// 管理员不可自助注册
	if memberType == model.MemberTypeAdmin {
		return nil, "", ErrParamInvalid
	}

	hashed, err := security.HashPassword(req.MemberPassword)
	if err != nil {
		return nil, "", err
	}

	member := &model.Member{
		MemberNick:     req.MemberNick,
		MemberPassword: hashed,
		MemberType:     memberType,
		MemberStatus:   model.MemberStatusActive,
		MemberPhone:    req.MemberPhone,
		MemberFullName: req.MemberFullName,
		MemberImage:    consts.DefaultMemberImage,
	}
	if err = s.memberRepo.Create(ctx, member); err != nil {
		if repository.IsDup(err) {
			return nil, "", ErrMemberNickExist
		}
		return nil, "", err
	}

	token, err := security.GenerateToken(member.ID.Hex(), string(member.MemberType))
	if err != nil {
		return nil, "", err
	}
	return member, token, nil
}

func (s *MemberServiceImpl) Login(ctx context.Context, req *dto.LoginDTO) (*model.Member, string, error) {
	member, err := s.memberRepo.FindByNick(ctx, req.MemberNick)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrMemberNotFound
		}
		return nil, "", err
	}
	// 注销的账号对外等同不存在
	if member.MemberStatus == model.MemberStatusDelete {
		return nil, "", ErrMemberNotFound
	}
	if member.MemberStatus != model.MemberStatusActive {
		return nil, "", ErrMemberBlocked
	}
	if err = security.CheckPasswordHash(req.MemberPassword, member.MemberPassword); err != nil {
		return nil, "", ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(member.ID.Hex(), string(member.MemberType))
	if err != nil {
		return nil, "", err
	}
	return member, token, nil
}

// Logout 把 token 签名挂入吊销名单，有效期与 token 等长
func (s *MemberServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrTokenInvalid
	}
	return redis.SetWithExpiration(ctx, consts.TokenRevokeKey+signature, "1", security.JWTExpirationTime)
}

// GetMember 查看会员主页，他人首次访问计一次浏览
func (s *MemberServiceImpl) GetMember(ctx context.Context, targetID, viewerID primitive.ObjectID) (*model.Member, error) {
	member, err := s.memberRepo.FindOneWithViewer(ctx, targetID, viewerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	if !viewerID.IsZero() && viewerID != targetID {
		created, err := s.viewSvc.Record(ctx, viewerID, targetID, model.TargetGroupMember)
		if err != nil {
			return nil, err
		}
		if created {
			if err = s.memberRepo.AdjustStat(ctx, targetID, model.StatMemberViews, 1); err != nil {
				return nil, err
			}
			member.MemberViews++
		}
	}
	return member, nil
}

func (s *MemberServiceImpl) GetMembers(ctx context.Context, inquiry *dto.MembersInquiry, viewerID primitive.ObjectID) (*repository.PageResult[model.Member], error) {
	filter := repository.MemberFilter{
		MemberType: model.MemberType(inquiry.MemberType),
		Text:       inquiry.Text,
	}
	return s.memberRepo.List(ctx, filter, pageOf(inquiry.PageQuery), viewerID)
}

func (s *MemberServiceImpl) GetAgents(ctx context.Context, inquiry *dto.MembersInquiry, viewerID primitive.ObjectID) (*repository.PageResult[model.Member], error) {
	filter := repository.MemberFilter{
		MemberType: model.MemberTypeAgent,
		Text:       inquiry.Text,
	}
	result, err := s.memberRepo.List(ctx, filter, pageOf(inquiry.PageQuery), viewerID)
	if err != nil {
		return nil, err
	}
	// 未登录访客只展示脱敏昵称
	if viewerID.IsZero() {
		for _, agent := range result.List {
			agent.MemberNick = util.MaskNick(agent.MemberNick)
		}
	}
	return result, nil
}

// GetTopAgents 热门经纪人榜，批处理产出的 ZSET 缺失时回源数据库
func (s *MemberServiceImpl) GetTopAgents(ctx context.Context) ([]*model.Member, error) {
	hexIDs, err := redis.ZRevRange(ctx, consts.TopAgentsKey, 0, -1)
	if err != nil {
		log.WarnContext(ctx, "读取经纪人榜单失败，回源数据库", "error", err)
	}
	if len(hexIDs) == 0 {
		return s.memberRepo.TopAgents(ctx, topListFallbackLimit)
	}

	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, hexID := range hexIDs {
		id, convErr := primitive.ObjectIDFromHex(hexID)
		if convErr != nil {
			continue
		}
		ids = append(ids, id)
	}
	return s.memberRepo.FindByIDs(ctx, ids)
}

func (s *MemberServiceImpl) UpdateMember(ctx context.Context, memberID primitive.ObjectID, req *dto.MemberUpdateDTO) (*model.Member, error) {
	set := bson.D{}
	if req.MemberNick != nil {
		set = append(set, bson.E{Key: "memberNick", Value: *req.MemberNick})
	}
	if req.MemberPassword != nil {
		hashed, err := security.HashPassword(*req.MemberPassword)
		if err != nil {
			return nil, err
		}
		set = append(set, bson.E{Key: "memberPassword", Value: hashed})
	}
	if req.MemberPhone != nil {
		set = append(set, bson.E{Key: "memberPhone", Value: *req.MemberPhone})
	}
	if req.MemberFullName != nil {
		set = append(set, bson.E{Key: "memberFullName", Value: *req.MemberFullName})
	}
	if req.MemberImage != nil {
		set = append(set, bson.E{Key: "memberImage", Value: *req.MemberImage})
	}
	if req.MemberDesc != nil {
		set = append(set, bson.E{Key: "memberDesc", Value: *req.MemberDesc})
	}
	if len(set) == 0 {
		return nil, ErrParamInvalid
	}

	member, err := s.memberRepo.UpdateFields(ctx, memberID, set)
	if err != nil {
		if repository.IsDup(err) {
			return nil, ErrMemberNickExist
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *MemberServiceImpl) UpdateMemberByAdmin(ctx context.Context, targetID primitive.ObjectID, req *dto.MemberAdminUpdateDTO) (*model.Member, error) {
	set := bson.D{}
	if req.MemberStatus != nil {
		set = append(set, bson.E{Key: "memberStatus", Value: model.MemberStatus(*req.MemberStatus)})
	}
	if req.MemberType != nil {
		set = append(set, bson.E{Key: "memberType", Value: model.MemberType(*req.MemberType)})
	}
	if len(set) == 0 {
		return nil, ErrParamInvalid
	}

	member, err := s.memberRepo.UpdateFields(ctx, targetID, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// LikeTargetMember 点赞/取消点赞会员，并同步通知
func (s *MemberServiceImpl) LikeTargetMember(ctx context.Context, viewerID, targetID primitive.ObjectID) (*model.Member, error) {
	target, err := s.memberRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	modifier, err := s.likeSvc.Toggle(ctx, viewerID, targetID, model.TargetGroupMember)
	if err != nil {
		return nil, err
	}
	if modifier != 0 {
		if err = s.memberRepo.AdjustStat(ctx, targetID, model.StatMemberLikes, modifier); err != nil {
			return nil, err
		}
	}

	switch modifier {
	case 1:
		s.notificationSvc.Notify(ctx, &model.Notification{
			AuthorID:          viewerID,
			ReceiverID:        targetID,
			NotificationType:  model.NotificationTypeLike,
			NotificationGroup: model.NotificationGroupMember,
			NotificationTitle: "有人赞了你",
		})
	case -1:
		s.notificationSvc.Retract(ctx, repository.NotificationCriteria{
			AuthorID:   viewerID,
			ReceiverID: targetID,
			Type:       model.NotificationTypeLike,
			Group:      model.NotificationGroupMember,
		})
	}

	target.MemberLikes += modifier
	target.MeLiked = modifier == 1
	return target, nil
}

// pageOf DTO 分页入参转仓储层分页请求
func pageOf(q dto.PageQuery) repository.PageRequest {
	return repository.PageRequest{
		Page:      q.Page,
		Limit:     q.Limit,
		Sort:      q.Sort,
		Direction: q.Direction,
	}
}

package repository

import (
	"Hirebase/internal/model"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MemberRepo interface {
	Create(ctx context.Context, member *model.Member) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Member, error)
	FindByNick(ctx context.Context, nick string) (*model.Member, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Member, error)
	FindOneWithViewer(ctx context.Context, id, viewerID primitive.ObjectID) (*model.Member, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.D) (*model.Member, error)
	AdjustStat(ctx context.Context, id primitive.ObjectID, key model.StatKey, delta int64) error
	List(ctx context.Context, filter MemberFilter, page PageRequest, viewerID primitive.ObjectID) (*PageResult[model.Member], error)
	RecomputeAgentRanks(ctx context.Context) (int64, error)
	TopAgents(ctx context.Context, limit int64) ([]*model.Member, error)
}

type memberRepoImpl struct {
	col *mongo.Collection
}

func NewMemberRepo(db *mongo.Database) MemberRepo {
	return &memberRepoImpl{
		col: db.Collection(model.Member{}.Collection()),
	}
}

func (s *memberRepoImpl) Create(ctx context.Context, member *model.Member) error {
	now := time.Now()
	member.CreatedAt = now
	member.UpdatedAt = now
	res, err := s.col.InsertOne(ctx, member)
	if err != nil {
		return err
	}
	member.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *memberRepoImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Member, error) {
	var member model.Member
	err := s.col.FindOne(ctx, bson.M{"_id": id, "memberStatus": model.MemberStatusActive}).Decode(&member)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *memberRepoImpl) FindByNick(ctx context.Context, nick string) (*model.Member, error) {
	var member model.Member
	err := s.col.FindOne(ctx, bson.M{"memberNick": nick}).Decode(&member)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByIDs 按给定顺序批量查询，仅返回正常状态的会员
func (s *memberRepoImpl) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Member, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := s.col.Find(ctx, bson.M{
		"_id":          bson.M{"$in": ids},
		"memberStatus": model.MemberStatusActive,
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var found []*model.Member
	if err = cursor.All(ctx, &found); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]*model.Member, len(found))
	for _, m := range found {
		byID[m.ID] = m
	}
	members := make([]*model.Member, 0, len(ids))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			members = append(members, m)
		}
	}
	return members, nil
}

// FindOneWithViewer 带登录者视角字段的单条查询
func (s *memberRepoImpl) FindOneWithViewer(ctx context.Context, id, viewerID primitive.ObjectID) (*model.Member, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "memberStatus", Value: model.MemberStatusActive},
		}}},
	}
	for _, st := range lookupMeLiked(viewerID, string(model.TargetGroupMember)) {
		pipeline = append(pipeline, st)
	}
	for _, st := range lookupMeFollowed(viewerID, "_id") {
		pipeline = append(pipeline, st)
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var members []*model.Member
	if err = cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return members[0], nil
}

// UpdateFields 局部更新并返回更新后的文档
func (s *memberRepoImpl) UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.D) (*model.Member, error) {
	set = append(set, bson.E{Key: "updatedAt", Value: time.Now()})
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var member model.Member
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		opts,
	).Decode(&member)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// AdjustStat 原子增减计数器，只接受会员侧的 StatKey
func (s *memberRepoImpl) AdjustStat(ctx context.Context, id primitive.ObjectID, key model.StatKey, delta int64) error {
	if !key.ValidForMember() {
		return mongo.ErrInvalidIndexValue
	}
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{string(key): delta}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *memberRepoImpl) List(ctx context.Context, filter MemberFilter, page PageRequest, viewerID primitive.ObjectID) (*PageResult[model.Member], error) {
	page = page.Normalize(MemberSorts, "createdAt")

	var listStages []bson.D
	listStages = append(listStages, lookupMeLiked(viewerID, string(model.TargetGroupMember))...)
	listStages = append(listStages, lookupMeFollowed(viewerID, "_id")...)

	return runFacet[model.Member](ctx, s.col, filter.Match(), page, listStages)
}

// agentRankRecomputeMatch 榜单分只属于在职经纪人，普通会员一律不参与
func agentRankRecomputeMatch() bson.M {
	return bson.M{
		"memberStatus": model.MemberStatusActive,
		"memberType":   model.MemberTypeAgent,
	}
}

// RecomputeAgentRanks 批处理按公式整体重算在职经纪人的 memberRank
func (s *memberRepoImpl) RecomputeAgentRanks(ctx context.Context) (int64, error) {
	res, err := s.col.UpdateMany(ctx,
		agentRankRecomputeMatch(),
		mongo.Pipeline{
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "memberRank", Value: bson.D{{Key: "$add", Value: bson.A{
					bson.D{{Key: "$multiply", Value: bson.A{"$memberPostedJobs", 4}}},
					bson.D{{Key: "$multiply", Value: bson.A{"$memberArticles", 3}}},
					bson.D{{Key: "$multiply", Value: bson.A{"$memberLikes", 2}}},
					"$memberViews",
				}}}},
			}}},
		},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *memberRepoImpl) TopAgents(ctx context.Context, limit int64) ([]*model.Member, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "memberRank", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, bson.M{
		"memberType":   model.MemberTypeAgent,
		"memberStatus": model.MemberStatusActive,
	}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var members []*model.Member
	if err = cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

package repository

import (
	"Hirebase/internal/model"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FollowRepo interface {
	Insert(ctx context.Context, follow *model.Follow) error
	Remove(ctx context.Context, followerID, followingID primitive.ObjectID) (bool, error)
	Exists(ctx context.Context, followerID, followingID primitive.ObjectID) (bool, error)
	ListFollowers(ctx context.Context, memberID primitive.ObjectID, page PageRequest, viewerID primitive.ObjectID) (*PageResult[model.Follow], error)
	ListFollowings(ctx context.Context, memberID primitive.ObjectID, page PageRequest, viewerID primitive.ObjectID) (*PageResult[model.Follow], error)
}

type followRepoImpl struct {
	col *mongo.Collection
}

func NewFollowRepo(db *mongo.Database) FollowRepo {
	return &followRepoImpl{
		col: db.Collection(model.Follow{}.Collection()),
	}
}

// Insert 写入关注边，重复关注由唯一索引拦截
func (s *followRepoImpl) Insert(ctx context.Context, follow *model.Follow) error {
	follow.CreatedAt = time.Now()
	_, err := s.col.InsertOne(ctx, follow)
	return err
}

func (s *followRepoImpl) Remove(ctx context.Context, followerID, followingID primitive.ObjectID) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{
		"followerId":  followerID,
		"followingId": followingID,
	})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *followRepoImpl) Exists(ctx context.Context, followerID, followingID primitive.ObjectID) (bool, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{
		"followerId":  followerID,
		"followingId": followingID,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFollowers 查某会员的粉丝，附上粉丝资料与登录者对粉丝的视角
func (s *followRepoImpl) ListFollowers(ctx context.Context, memberID primitive.ObjectID, page PageRequest, viewerID primitive.ObjectID) (*PageResult[model.Follow], error) {
	page = page.Normalize(map[string]struct{}{"createdAt": {}}, "createdAt")

	match := bson.D{{Key: "followingId", Value: memberID}}
	var listStages []bson.D
	listStages = append(listStages, lookupAuthor("followerId", "followerData")...)
	listStages = append(listStages, s.viewerOn(viewerID, "followerId")...)

	return runFacet[model.Follow](ctx, s.col, match, page, listStages)
}

// ListFollowings 查某会员关注的人
func (s *followRepoImpl) ListFollowings(ctx context.Context, memberID primitive.ObjectID, page PageRequest, viewerID primitive.ObjectID) (*PageResult[model.Follow], error) {
	page = page.Normalize(map[string]struct{}{"createdAt": {}}, "createdAt")

	match := bson.D{{Key: "followerId", Value: memberID}}
	var listStages []bson.D
	listStages = append(listStages, lookupAuthor("followingId", "followingData")...)
	listStages = append(listStages, s.viewerOn(viewerID, "followingId")...)

	return runFacet[model.Follow](ctx, s.col, match, page, listStages)
}

// viewerOn 对关注边上的对端会员标注 meLiked / meFollowed
func (s *followRepoImpl) viewerOn(viewerID primitive.ObjectID, targetField string) []bson.D {
	if viewerID.IsZero() {
		return nil
	}
	var stages []bson.D
	stages = append(stages, bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: model.Like{}.Collection()},
		{Key: "let", Value: bson.D{{Key: "targetId", Value: "$" + targetField}}},
		{Key: "pipeline", Value: bson.A{
			bson.D{{Key: "$match", Value: bson.D{
				{Key: "$expr", Value: bson.D{{Key: "$and", Value: bson.A{
					bson.D{{Key: "$eq", Value: bson.A{"$memberId", viewerID}}},
					bson.D{{Key: "$eq", Value: bson.A{"$likeRefId", "$$targetId"}}},
					bson.D{{Key: "$eq", Value: bson.A{"$likeGroup", string(model.TargetGroupMember)}}},
				}}}},
			}}},
		}},
		{Key: "as", Value: "meLikedDocs"},
	}}})
	stages = append(stages, lookupMeFollowed(viewerID, targetField)...)
	stages = append(stages, bson.D{{Key: "$addFields", Value: bson.D{
		{Key: "meLiked", Value: bson.D{{Key: "$gt", Value: bson.A{
			bson.D{{Key: "$size", Value: "$meLikedDocs"}}, 0,
		}}}},
	}}})
	stages = append(stages, bson.D{{Key: "$project", Value: bson.D{{Key: "meLikedDocs", Value: 0}}}})
	return stages
}

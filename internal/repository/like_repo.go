package repository

import (
	"Hirebase/internal/model"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type LikeRepo interface {
	Insert(ctx context.Context, like *model.Like) error
	Remove(ctx context.Context, memberID, refID primitive.ObjectID, group model.TargetGroup) (bool, error)
	Exists(ctx context.Context, memberID, refID primitive.ObjectID, group model.TargetGroup) (bool, error)
}

type likeRepoImpl struct {
	col *mongo.Collection
}

func NewLikeRepo(db *mongo.Database) LikeRepo {
	return &likeRepoImpl{
		col: db.Collection(model.Like{}.Collection()),
	}
}

// Insert 写入点赞流水，重复点赞由唯一索引拦截
func (s *likeRepoImpl) Insert(ctx context.Context, like *model.Like) error {
	now := time.Now()
	like.CreatedAt = now
	like.UpdatedAt = now
	_, err := s.col.InsertOne(ctx, like)
	return err
}

// Remove 取消点赞，返回是否真的删了一条
func (s *likeRepoImpl) Remove(ctx context.Context, memberID, refID primitive.ObjectID, group model.TargetGroup) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{
		"memberId":  memberID,
		"likeRefId": refID,
		"likeGroup": group,
	})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *likeRepoImpl) Exists(ctx context.Context, memberID, refID primitive.ObjectID, group model.TargetGroup) (bool, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{
		"memberId":  memberID,
		"likeRefId": refID,
		"likeGroup": group,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

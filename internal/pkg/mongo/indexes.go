package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes 声明式建立全部唯一索引与查询索引
// 互动去重依赖唯一索引兜底，业务层的前置检查只是快路径
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		"members": {
			{
				Keys:    bson.D{{Key: "memberNick", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "memberRank", Value: -1}}},
		},
		"jobs": {
			{Keys: bson.D{{Key: "memberId", Value: 1}}},
			{Keys: bson.D{{Key: "jobStatus", Value: 1}, {Key: "jobRank", Value: -1}}},
			{Keys: bson.D{{Key: "positionTitle", Value: "text"}}},
		},
		"boardArticles": {
			{Keys: bson.D{{Key: "memberId", Value: 1}}},
			{Keys: bson.D{{Key: "articleCategory", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		"likes": {
			{
				Keys:    bson.D{{Key: "memberId", Value: 1}, {Key: "likeRefId", Value: 1}, {Key: "likeGroup", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "likeRefId", Value: 1}}},
		},
		"views": {
			{
				Keys:    bson.D{{Key: "memberId", Value: 1}, {Key: "viewRefId", Value: 1}, {Key: "viewGroup", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		"follows": {
			{
				Keys:    bson.D{{Key: "followerId", Value: 1}, {Key: "followingId", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "followingId", Value: 1}}},
		},
		"comments": {
			{Keys: bson.D{{Key: "commentRefId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		"notifications": {
			{Keys: bson.D{{Key: "receiverId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		"applications": {
			{
				Keys: bson.D{{Key: "jobId", Value: 1}, {Key: "applicantId", Value: 1}},
				Options: options.Index().
					SetUnique(true).
					SetPartialFilterExpression(bson.D{{Key: "isActive", Value: true}}),
			},
			{Keys: bson.D{{Key: "applicantId", Value: 1}, {Key: "appliedAt", Value: -1}}},
			{Keys: bson.D{{Key: "companyId", Value: 1}, {Key: "status", Value: 1}}},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}

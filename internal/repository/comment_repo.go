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

type CommentRepo interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.D) (*model.Comment, error)
	ListByTarget(ctx context.Context, group model.TargetGroup, refID primitive.ObjectID, page PageRequest) (*PageResult[model.Comment], error)
}

type commentRepoImpl struct {
	col *mongo.Collection
}

func NewCommentRepo(db *mongo.Database) CommentRepo {
	return &commentRepoImpl{
		col: db.Collection(model.Comment{}.Collection()),
	}
}

func (s *commentRepoImpl) Create(ctx context.Context, comment *model.Comment) error {
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now
	res, err := s.col.InsertOne(ctx, comment)
	if err != nil {
		return err
	}
	comment.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *commentRepoImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Comment, error) {
	var comment model.Comment
	err := s.col.FindOne(ctx, bson.M{
		"_id":           id,
		"commentStatus": model.CommentStatusActive,
	}).Decode(&comment)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *commentRepoImpl) UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.D) (*model.Comment, error) {
	set = append(set, bson.E{Key: "updatedAt", Value: time.Now()})
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment model.Comment
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "commentStatus": model.CommentStatusActive},
		bson.M{"$set": set},
		opts,
	).Decode(&comment)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *commentRepoImpl) ListByTarget(ctx context.Context, group model.TargetGroup, refID primitive.ObjectID, page PageRequest) (*PageResult[model.Comment], error) {
	page = page.Normalize(CommentSorts, "createdAt")

	match := bson.D{
		{Key: "commentGroup", Value: group},
		{Key: "commentRefId", Value: refID},
		{Key: "commentStatus", Value: model.CommentStatusActive},
	}
	listStages := lookupAuthor("memberId", "memberData")

	return runFacet[model.Comment](ctx, s.col, match, page, listStages)
}

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

type ArticleRepo interface {
	Create(ctx context.Context, article *model.BoardArticle) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.BoardArticle, error)
	FindAnyByID(ctx context.Context, id primitive.ObjectID) (*model.BoardArticle, error)
	FindOneWithViewer(ctx context.Context, id, viewerID primitive.ObjectID) (*model.BoardArticle, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.D) (*model.BoardArticle, error)
	AdjustStat(ctx context.Context, id primitive.ObjectID, key model.StatKey, delta int64) error
	List(ctx context.Context, filter ArticleFilter, page PageRequest, viewerID primitive.ObjectID) (*PageResult[model.BoardArticle], error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type articleRepoImpl struct {
	col *mongo.Collection
}

func NewArticleRepo(db *mongo.Database) ArticleRepo {
	return &articleRepoImpl{
		col: db.Collection(model.BoardArticle{}.Collection()),
	}
}

func (s *articleRepoImpl) Create(ctx context.Context, article *model.BoardArticle) error {
	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now
	res, err := s.col.InsertOne(ctx, article)
	if err != nil {
		return err
	}
	article.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *articleRepoImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.BoardArticle, error) {
	var article model.BoardArticle
	err := s.col.FindOne(ctx, bson.M{
		"_id":           id,
		"articleStatus": model.ArticleStatusActive,
	}).Decode(&article)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

// FindAnyByID 不限状态查询，管理端使用
func (s *articleRepoImpl) FindAnyByID(ctx context.Context, id primitive.ObjectID) (*model.BoardArticle, error) {
	var article model.BoardArticle
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&article); err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *articleRepoImpl) FindOneWithViewer(ctx context.Context, id, viewerID primitive.ObjectID) (*model.BoardArticle, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "articleStatus", Value: model.ArticleStatusActive},
		}}},
	}
	for _, st := range lookupAuthor("memberId", "memberData") {
		pipeline = append(pipeline, st)
	}
	for _, st := range lookupMeLiked(viewerID, string(model.TargetGroupArticle)) {
		pipeline = append(pipeline, st)
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var articles []*model.BoardArticle
	if err = cursor.All(ctx, &articles); err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return articles[0], nil
}

func (s *articleRepoImpl) UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.D) (*model.BoardArticle, error) {
	set = append(set, bson.E{Key: "updatedAt", Value: time.Now()})
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var article model.BoardArticle
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "articleStatus": model.ArticleStatusActive},
		bson.M{"$set": set},
		opts,
	).Decode(&article)
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *articleRepoImpl) AdjustStat(ctx context.Context, id primitive.ObjectID, key model.StatKey, delta int64) error {
	if !key.ValidForArticle() {
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

func (s *articleRepoImpl) List(ctx context.Context, filter ArticleFilter, page PageRequest, viewerID primitive.ObjectID) (*PageResult[model.BoardArticle], error) {
	page = page.Normalize(ArticleSorts, "createdAt")

	var listStages []bson.D
	listStages = append(listStages, lookupAuthor("memberId", "memberData")...)
	listStages = append(listStages, lookupMeLiked(viewerID, string(model.TargetGroupArticle))...)

	return runFacet[model.BoardArticle](ctx, s.col, filter.Match(), page, listStages)
}

func (s *articleRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

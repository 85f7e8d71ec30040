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

type ApplicationRepo interface {
	Create(ctx context.Context, application *model.Application) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Application, error)
	FindActive(ctx context.Context, jobID, applicantID primitive.ObjectID) (*model.Application, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.D) (*model.Application, error)
	MarkViewed(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, filter ApplicationFilter, page PageRequest) (*PageResult[model.Application], error)
	CountActiveByJob(ctx context.Context, jobID primitive.ObjectID) (int64, error)
	StatsByCompany(ctx context.Context, companyID primitive.ObjectID) (*model.ApplicationStats, error)
}

type applicationRepoImpl struct {
	col *mongo.Collection
}

func NewApplicationRepo(db *mongo.Database) ApplicationRepo {
	return &applicationRepoImpl{
		col: db.Collection(model.Application{}.Collection()),
	}
}

// Create 并发重复申请由 (jobId, applicantId) 的部分唯一索引兜底
func (s *applicationRepoImpl) Create(ctx context.Context, application *model.Application) error {
	now := time.Now()
	application.CreatedAt = now
	application.UpdatedAt = now
	application.AppliedAt = now
	application.IsActive = true
	if application.Status == "" {
		application.Status = model.ApplicationStatusPending
	}
	res, err := s.col.InsertOne(ctx, application)
	if err != nil {
		return err
	}
	application.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *applicationRepoImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Application, error) {
	var application model.Application
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&application)
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (s *applicationRepoImpl) FindActive(ctx context.Context, jobID, applicantID primitive.ObjectID) (*model.Application, error) {
	var application model.Application
	err := s.col.FindOne(ctx, bson.M{
		"jobId":       jobID,
		"applicantId": applicantID,
		"isActive":    true,
	}).Decode(&application)
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (s *applicationRepoImpl) UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.D) (*model.Application, error) {
	set = append(set, bson.E{Key: "updatedAt", Value: time.Now()})
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var application model.Application
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		opts,
	).Decode(&application)
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// MarkViewed 企业侧首次打开申请时记录查看状态
func (s *applicationRepoImpl) MarkViewed(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now()
	_, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$set": bson.M{
				"isViewedByCompany": true,
				"viewedAt":          now,
				"updatedAt":         now,
			},
			"$inc": bson.M{"viewCount": 1},
		},
	)
	return err
}

func (s *applicationRepoImpl) List(ctx context.Context, filter ApplicationFilter, page PageRequest) (*PageResult[model.Application], error) {
	page = page.Normalize(ApplicationSorts, "appliedAt")

	listStages := []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: model.Job{}.Collection()},
			{Key: "localField", Value: "jobId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "jobData"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$jobData"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
	listStages = append(listStages, lookupAuthor("applicantId", "applicantData")...)
	listStages = append(listStages, lookupAuthor("companyId", "companyData")...)

	return runFacet[model.Application](ctx, s.col, filter.Match(), page, listStages)
}

func (s *applicationRepoImpl) CountActiveByJob(ctx context.Context, jobID primitive.ObjectID) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"jobId": jobID, "isActive": true})
}

// StatsByCompany 按状态分组统计企业收到的申请
func (s *applicationRepoImpl) StatsByCompany(ctx context.Context, companyID primitive.ObjectID) (*model.ApplicationStats, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "companyId", Value: companyID}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "pending", Value: statusSum(model.ApplicationStatusPending)},
			{Key: "reviewing", Value: statusSum(model.ApplicationStatusReviewing)},
			{Key: "accepted", Value: statusSum(model.ApplicationStatusAccepted)},
			{Key: "rejected", Value: statusSum(model.ApplicationStatusRejected)},
			{Key: "withdrawn", Value: statusSum(model.ApplicationStatusWithdrawn)},
		}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var stats []model.ApplicationStats
	if err = cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return &model.ApplicationStats{}, nil
	}
	return &stats[0], nil
}

func statusSum(status model.ApplicationStatus) bson.D {
	return bson.D{{Key: "$sum", Value: bson.D{
		{Key: "$cond", Value: bson.A{
			bson.D{{Key: "$eq", Value: bson.A{"$status", status}}},
			1, 0,
		}},
	}}}
}

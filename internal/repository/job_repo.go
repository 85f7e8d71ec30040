package repository

import (
	"Hirebase/internal/model"
	"Hirebase/internal/pkg/util"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type JobRepo interface {
	Create(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Job, error)
	FindAnyByID(ctx context.Context, id primitive.ObjectID) (*model.Job, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Job, error)
	FindOneWithViewer(ctx context.Context, id, viewerID primitive.ObjectID) (*model.Job, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.D) (*model.Job, error)
	AdjustStat(ctx context.Context, id primitive.ObjectID, key model.StatKey, delta int64) error
	PushApplication(ctx context.Context, jobID primitive.ObjectID, applicationID string) error
	PullApplication(ctx context.Context, jobID primitive.ObjectID, applicationID string) error
	List(ctx context.Context, filter JobFilter, page PageRequest, viewerID primitive.ObjectID) (*PageResult[model.Job], error)
	SimilarCandidates(ctx context.Context, job *model.Job, limit int64) ([]*model.Job, error)
	LikedBy(ctx context.Context, memberID primitive.ObjectID, page PageRequest) (*PageResult[model.Job], error)
	ViewedBy(ctx context.Context, memberID primitive.ObjectID, page PageRequest) (*PageResult[model.Job], error)
	RecomputeRanks(ctx context.Context) (int64, error)
	TopJobs(ctx context.Context, limit int64) ([]*model.Job, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type jobRepoImpl struct {
	col   *mongo.Collection
	likes *mongo.Collection
	views *mongo.Collection
}

func NewJobRepo(db *mongo.Database) JobRepo {
	return &jobRepoImpl{
		col:   db.Collection(model.Job{}.Collection()),
		likes: db.Collection(model.Like{}.Collection()),
		views: db.Collection(model.View{}.Collection()),
	}
}

func (s *jobRepoImpl) Create(ctx context.Context, job *model.Job) error {
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.Applications == nil {
		job.Applications = []string{}
	}
	res, err := s.col.InsertOne(ctx, job)
	if err != nil {
		return err
	}
	job.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *jobRepoImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Job, error) {
	var job model.Job
	err := s.col.FindOne(ctx, bson.M{
		"_id":       id,
		"jobStatus": bson.M{"$ne": model.JobStatusDelete},
	}).Decode(&job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// FindAnyByID 不限状态查询，管理端使用
func (s *jobRepoImpl) FindAnyByID(ctx context.Context, id primitive.ObjectID) (*model.Job, error) {
	var job model.Job
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

// FindByIDs 按给定顺序批量查询，已物理删除的条目自动跳过
func (s *jobRepoImpl) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Job, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := s.col.Find(ctx, bson.M{
		"_id":       bson.M{"$in": ids},
		"jobStatus": bson.M{"$ne": model.JobStatusDelete},
	})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var found []*model.Job
	if err = cursor.All(ctx, &found); err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]*model.Job, len(found))
	for _, j := range found {
		byID[j.ID] = j
	}
	jobs := make([]*model.Job, 0, len(ids))
	for _, id := range ids {
		if j, ok := byID[id]; ok {
			jobs = append(jobs, j)
		}
	}
	return jobs, nil
}

// FindOneWithViewer 详情查询，附带发布者信息与 meLiked 视角
func (s *jobRepoImpl) FindOneWithViewer(ctx context.Context, id, viewerID primitive.ObjectID) (*model.Job, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "jobStatus", Value: bson.D{{Key: "$ne", Value: model.JobStatusDelete}}},
		}}},
	}
	for _, st := range lookupAuthor("memberId", "memberData") {
		pipeline = append(pipeline, st)
	}
	for _, st := range lookupMeLiked(viewerID, string(model.TargetGroupJob)) {
		pipeline = append(pipeline, st)
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var jobs []*model.Job
	if err = cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, mongo.ErrNoDocuments
	}
	return jobs[0], nil
}

func (s *jobRepoImpl) UpdateFields(ctx context.Context, id primitive.ObjectID, set bson.D) (*model.Job, error) {
	set = append(set, bson.E{Key: "updatedAt", Value: time.Now()})
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var job model.Job
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "jobStatus": bson.M{"$ne": model.JobStatusDelete}},
		bson.M{"$set": set},
		opts,
	).Decode(&job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// AdjustStat 原子增减计数器，只接受职位侧的 StatKey
func (s *jobRepoImpl) AdjustStat(ctx context.Context, id primitive.ObjectID, key model.StatKey, delta int64) error {
	if !key.ValidForJob() {
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

// PushApplication 申请 ID 追加到职位的有序列表尾部
func (s *jobRepoImpl) PushApplication(ctx context.Context, jobID primitive.ObjectID, applicationID string) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"_id": jobID},
		bson.M{"$push": bson.M{"applications": applicationID}},
	)
	return err
}

func (s *jobRepoImpl) PullApplication(ctx context.Context, jobID primitive.ObjectID, applicationID string) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"_id": jobID},
		bson.M{"$pull": bson.M{"applications": applicationID}},
	)
	return err
}

func (s *jobRepoImpl) List(ctx context.Context, filter JobFilter, page PageRequest, viewerID primitive.ObjectID) (*PageResult[model.Job], error) {
	page = page.Normalize(JobSorts, "createdAt")

	var listStages []bson.D
	listStages = append(listStages, lookupAuthor("memberId", "memberData")...)
	listStages = append(listStages, lookupMeLiked(viewerID, string(model.TargetGroupJob))...)

	return runFacet[model.Job](ctx, s.col, filter.Match(), page, listStages)
}

// similarCandidatesFilter 相似维度只认同类同城、同类、薪资相近和同学历
func similarCandidatesFilter(job *model.Job) bson.M {
	lo, hi := util.SalaryWindow(job.JobSalary)
	return bson.M{
		"_id":       bson.M{"$ne": job.ID},
		"jobStatus": model.JobStatusOpen,
		"$or": bson.A{
			bson.M{"jobType": job.JobType, "jobLocation": job.JobLocation},
			bson.M{"jobType": job.JobType},
			bson.M{"jobSalary": bson.M{"$gte": lo, "$lte": hi}},
			bson.M{"educationLevel": job.EducationLevel},
		},
	}
}

// SimilarCandidates 拉取与目标职位任一维度相近的开放职位，打分排序在服务层完成
func (s *jobRepoImpl) SimilarCandidates(ctx context.Context, job *model.Job, limit int64) ([]*model.Job, error) {
	cursor, err := s.col.Find(ctx, similarCandidatesFilter(job), options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var jobs []*model.Job
	if err = cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// LikedBy 从点赞流水反查会员收藏的职位
func (s *jobRepoImpl) LikedBy(ctx context.Context, memberID primitive.ObjectID, page PageRequest) (*PageResult[model.Job], error) {
	return s.fromLedger(ctx, s.likes, "likeRefId", bson.D{
		{Key: "memberId", Value: memberID},
		{Key: "likeGroup", Value: model.TargetGroupJob},
	}, page)
}

// ViewedBy 从浏览流水反查会员最近看过的职位
func (s *jobRepoImpl) ViewedBy(ctx context.Context, memberID primitive.ObjectID, page PageRequest) (*PageResult[model.Job], error) {
	return s.fromLedger(ctx, s.views, "viewRefId", bson.D{
		{Key: "memberId", Value: memberID},
		{Key: "viewGroup", Value: model.TargetGroupJob},
	}, page)
}

// fromLedger 流水集合为主表，回表职位详情
func (s *jobRepoImpl) fromLedger(ctx context.Context, ledger *mongo.Collection, refField string, match bson.D, page PageRequest) (*PageResult[model.Job], error) {
	page = page.Normalize(map[string]struct{}{"createdAt": {}}, "createdAt")

	listStages := []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: model.Job{}.Collection()},
			{Key: "localField", Value: refField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "jobData"},
		}}},
		{{Key: "$unwind", Value: "$jobData"}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$jobData"}}}},
	}
	return runFacet[model.Job](ctx, ledger, match, page, listStages)
}

// RecomputeRanks 批处理按公式整体重算 jobRank
// jobRankRecomputeMatch 热度重算只覆盖在招职位
func jobRankRecomputeMatch() bson.M {
	return bson.M{"jobStatus": model.JobStatusOpen}
}

func (s *jobRepoImpl) RecomputeRanks(ctx context.Context) (int64, error) {
	res, err := s.col.UpdateMany(ctx,
		jobRankRecomputeMatch(),
		mongo.Pipeline{
			bson.D{{Key: "$set", Value: bson.D{
				{Key: "jobRank", Value: bson.D{{Key: "$add", Value: bson.A{
					bson.D{{Key: "$multiply", Value: bson.A{"$jobLikes", 2}}},
					"$jobViews",
				}}}},
			}}},
		},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *jobRepoImpl) TopJobs(ctx context.Context, limit int64) ([]*model.Job, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "jobRank", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, bson.M{"jobStatus": model.JobStatusOpen}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var jobs []*model.Job
	if err = cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *jobRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

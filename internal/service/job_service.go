package service

import (
	"Hirebase/internal/api/dto"
	"Hirebase/internal/model"
	"Hirebase/internal/pkg/consts"
	"Hirebase/internal/pkg/redis"
	"Hirebase/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"sort"
	"time"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// 相似职位的候选拉取上限与返回条数
const (
	similarCandidateLimit = 100
	similarResultLimit    = 6
)

// 榜单缓存缺失时回源数据库的拉取条数
const topListFallbackLimit = 50

type JobService interface {
	CreateJob(ctx context.Context, memberID primitive.ObjectID, req *dto.JobCreateDTO) (*model.Job, error)
	GetJob(ctx context.Context, jobID, viewerID primitive.ObjectID) (*model.Job, error)
	GetJobs(ctx context.Context, inquiry *dto.JobsInquiry, viewerID primitive.ObjectID) (*repository.PageResult[model.Job], error)
	GetAgentJobs(ctx context.Context, memberID primitive.ObjectID, inquiry *dto.JobsInquiry) (*repository.PageResult[model.Job], error)
	GetAllJobsByAdmin(ctx context.Context, inquiry *dto.JobsInquiry) (*repository.PageResult[model.Job], error)
	UpdateJob(ctx context.Context, memberID, jobID primitive.ObjectID, req *dto.JobUpdateDTO) (*model.Job, error)
	UpdateJobByAdmin(ctx context.Context, jobID primitive.ObjectID, req *dto.JobUpdateDTO) (*model.Job, error)
	RemoveJobByAdmin(ctx context.Context, jobID primitive.ObjectID) error
	LikeTargetJob(ctx context.Context, viewerID, jobID primitive.ObjectID) (*model.Job, error)
	GetFavoriteJobs(ctx context.Context, memberID primitive.ObjectID, q dto.PageQuery) (*repository.PageResult[model.Job], error)
	GetVisitedJobs(ctx context.Context, memberID primitive.ObjectID, q dto.PageQuery) (*repository.PageResult[model.Job], error)
	GetSimilarJobs(ctx context.Context, jobID primitive.ObjectID) ([]*model.Job, error)
	GetTopJobs(ctx context.Context) ([]*model.Job, error)
}

type JobServiceImpl struct {
	jobRepo         repository.JobRepo
	memberRepo      repository.MemberRepo
	likeSvc         LikeService
	viewSvc         ViewService
	notificationSvc NotificationService
}

func NewJobService(
	jobRepo repository.JobRepo,
	memberRepo repository.MemberRepo,
	likeSvc LikeService,
	viewSvc ViewService,
	notificationSvc NotificationService,
) JobService {
	return &JobServiceImpl{
		jobRepo:         jobRepo,
		memberRepo:      memberRepo,
		likeSvc:         likeSvc,
		viewSvc:         viewSvc,
		notificationSvc: notificationSvc,
	}
}

func (s *JobServiceImpl) CreateJob(ctx context.Context, memberID primitive.ObjectID, req *dto.JobCreateDTO) (*model.Job, error) {
	job := &model.Job{}
	if err := copier.Copy(job, req); err != nil {
		return nil, err
	}
	job.MemberID = memberID
	job.JobStatus = model.JobStatusOpen
	job.JobType = model.JobType(req.JobType)
	job.JobLocation = model.JobLocation(req.JobLocation)
	job.EducationLevel = model.EducationLevel(req.EducationLevel)
	job.EmploymentLevel = model.EmploymentLevel(req.EmploymentLevel)

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	if err := s.memberRepo.AdjustStat(ctx, memberID, model.StatMemberPostedJobs, 1); err != nil {
		return nil, err
	}
	return job, nil
}

// GetJob 详情查询，他人首次浏览时职位与发布者的浏览数各加一
func (s *JobServiceImpl) GetJob(ctx context.Context, jobID, viewerID primitive.ObjectID) (*model.Job, error) {
	job, err := s.jobRepo.FindOneWithViewer(ctx, jobID, viewerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	if !viewerID.IsZero() && viewerID != job.MemberID {
		created, err := s.viewSvc.Record(ctx, viewerID, jobID, model.TargetGroupJob)
		if err != nil {
			return nil, err
		}
		if created {
			if err = s.jobRepo.AdjustStat(ctx, jobID, model.StatJobViews, 1); err != nil {
				return nil, err
			}
			job.JobViews++
		}
	}
	return job, nil
}

func (s *JobServiceImpl) GetJobs(ctx context.Context, inquiry *dto.JobsInquiry, viewerID primitive.ObjectID) (*repository.PageResult[model.Job], error) {
	filter, err := jobFilterOf(inquiry.Search, model.JobStatusOpen)
	if err != nil {
		return nil, err
	}
	return s.jobRepo.List(ctx, filter, pageOf(inquiry.PageQuery), viewerID)
}

// GetAgentJobs 猎头管理自己发布的职位，不限开放状态
func (s *JobServiceImpl) GetAgentJobs(ctx context.Context, memberID primitive.ObjectID, inquiry *dto.JobsInquiry) (*repository.PageResult[model.Job], error) {
	filter, err := jobFilterOf(inquiry.Search, "")
	if err != nil {
		return nil, err
	}
	filter.MemberID = memberID
	if filter.Status == "" {
		filter.Status = model.JobStatusOpen
	}
	return s.jobRepo.List(ctx, filter, pageOf(inquiry.PageQuery), memberID)
}

func (s *JobServiceImpl) GetAllJobsByAdmin(ctx context.Context, inquiry *dto.JobsInquiry) (*repository.PageResult[model.Job], error) {
	filter, err := jobFilterOf(inquiry.Search, "")
	if err != nil {
		return nil, err
	}
	if filter.Status == "" {
		filter.Status = model.JobStatusOpen
	}
	return s.jobRepo.List(ctx, filter, pageOf(inquiry.PageQuery), primitive.NilObjectID)
}

func (s *JobServiceImpl) UpdateJob(ctx context.Context, memberID, jobID primitive.ObjectID, req *dto.JobUpdateDTO) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	if job.MemberID != memberID {
		return nil, ErrNotAuthorized
	}
	return s.applyJobUpdate(ctx, job, req)
}

func (s *JobServiceImpl) UpdateJobByAdmin(ctx context.Context, jobID primitive.ObjectID, req *dto.JobUpdateDTO) (*model.Job, error) {
	job, err := s.jobRepo.FindAnyByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return s.applyJobUpdate(ctx, job, req)
}

// RemoveJobByAdmin 物理删除，仅允许已关闭或已下架的职位
func (s *JobServiceImpl) RemoveJobByAdmin(ctx context.Context, jobID primitive.ObjectID) error {
	job, err := s.jobRepo.FindAnyByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrJobNotFound
		}
		return err
	}
	if job.JobStatus != model.JobStatusClosed && job.JobStatus != model.JobStatusDelete {
		return ErrRemoveNotAllowed
	}
	return s.jobRepo.Delete(ctx, jobID)
}

func (s *JobServiceImpl) applyJobUpdate(ctx context.Context, current *model.Job, req *dto.JobUpdateDTO) (*model.Job, error) {
	set := bson.D{}
	var postedModifier int64
	if req.JobType != nil {
		set = append(set, bson.E{Key: "jobType", Value: model.JobType(*req.JobType)})
	}
	if req.JobStatus != nil {
		status := model.JobStatus(*req.JobStatus)
		set = append(set, bson.E{Key: "jobStatus", Value: status})
		// 关闭与删除要落时间戳
		switch status {
		case model.JobStatusClosed:
			set = append(set, bson.E{Key: "closedAt", Value: time.Now()})
		case model.JobStatusDelete:
			set = append(set, bson.E{Key: "deletedAt", Value: time.Now()})
		}
		// 在招转下线扣掉发布数，重新上线补回来
		if jobCounted(current.JobStatus) && !jobCounted(status) {
			postedModifier = -1
		} else if !jobCounted(current.JobStatus) && jobCounted(status) {
			postedModifier = 1
		}
	}
	if req.JobLocation != nil {
		set = append(set, bson.E{Key: "jobLocation", Value: model.JobLocation(*req.JobLocation)})
	}
	if req.CompanyName != nil {
		set = append(set, bson.E{Key: "companyName", Value: *req.CompanyName})
	}
	if req.PositionTitle != nil {
		set = append(set, bson.E{Key: "positionTitle", Value: *req.PositionTitle})
	}
	if req.JobSalary != nil {
		set = append(set, bson.E{Key: "jobSalary", Value: *req.JobSalary})
	}
	if req.ExperienceYears != nil {
		set = append(set, bson.E{Key: "experienceYears", Value: *req.ExperienceYears})
	}
	if req.EducationLevel != nil {
		set = append(set, bson.E{Key: "educationLevel", Value: model.EducationLevel(*req.EducationLevel)})
	}
	if req.EmploymentLevel != nil {
		set = append(set, bson.E{Key: "employmentLevel", Value: model.EmploymentLevel(*req.EmploymentLevel)})
	}
	if req.JobDesc != nil {
		set = append(set, bson.E{Key: "jobDesc", Value: *req.JobDesc})
	}
	if req.SkillsRequired != nil {
		set = append(set, bson.E{Key: "skillsRequired", Value: req.SkillsRequired})
	}
	if req.IsRemote != nil {
		set = append(set, bson.E{Key: "isRemote", Value: *req.IsRemote})
	}
	if req.CompanyLogo != nil {
		set = append(set, bson.E{Key: "companyLogo", Value: *req.CompanyLogo})
	}
	if req.ApplicationDeadline != nil {
		set = append(set, bson.E{Key: "applicationDeadline", Value: *req.ApplicationDeadline})
	}
	if req.MaxApplications != nil {
		set = append(set, bson.E{Key: "maxApplications", Value: *req.MaxApplications})
	}
	if len(set) == 0 {
		return nil, ErrParamInvalid
	}

	job, err := s.jobRepo.UpdateFields(ctx, current.ID, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	if postedModifier != 0 {
		if err = s.memberRepo.AdjustStat(ctx, current.MemberID, model.StatMemberPostedJobs, postedModifier); err != nil {
			return nil, err
		}
	}
	return job, nil
}

// jobCounted 判断该状态是否计入发布者的 memberPostedJobs
func jobCounted(status model.JobStatus) bool {
	return status == model.JobStatusOpen || status == model.JobStatusPending
}

// LikeTargetJob 点赞/取消点赞职位，职位与发布者的点赞数同步增减
func (s *JobServiceImpl) LikeTargetJob(ctx context.Context, viewerID, jobID primitive.ObjectID) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	modifier, err := s.likeSvc.Toggle(ctx, viewerID, jobID, model.TargetGroupJob)
	if err != nil {
		return nil, err
	}
	if modifier != 0 {
		if err = s.jobRepo.AdjustStat(ctx, jobID, model.StatJobLikes, modifier); err != nil {
			return nil, err
		}
		if err = s.memberRepo.AdjustStat(ctx, job.MemberID, model.StatMemberLikes, modifier); err != nil {
			return nil, err
		}
	}

	switch modifier {
	case 1:
		s.notificationSvc.Notify(ctx, &model.Notification{
			AuthorID:          viewerID,
			ReceiverID:        job.MemberID,
			NotificationType:  model.NotificationTypeLike,
			NotificationGroup: model.NotificationGroupJob,
			NotificationTitle: "有人赞了你的职位",
			NotificationDesc:  job.PositionTitle,
			JobID:             &job.ID,
		})
	case -1:
		s.notificationSvc.Retract(ctx, repository.NotificationCriteria{
			AuthorID:   viewerID,
			ReceiverID: job.MemberID,
			Type:       model.NotificationTypeLike,
			Group:      model.NotificationGroupJob,
			JobID:      &job.ID,
		})
	}

	job.JobLikes += modifier
	job.MeLiked = modifier == 1
	return job, nil
}

func (s *JobServiceImpl) GetFavoriteJobs(ctx context.Context, memberID primitive.ObjectID, q dto.PageQuery) (*repository.PageResult[model.Job], error) {
	return s.jobRepo.LikedBy(ctx, memberID, pageOf(q))
}

func (s *JobServiceImpl) GetVisitedJobs(ctx context.Context, memberID primitive.ObjectID, q dto.PageQuery) (*repository.PageResult[model.Job], error) {
	return s.jobRepo.ViewedBy(ctx, memberID, pageOf(q))
}

// GetSimilarJobs 候选在库内粗筛，相似度打分与排序在内存完成
func (s *JobServiceImpl) GetSimilarJobs(ctx context.Context, jobID primitive.ObjectID) ([]*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	candidates, err := s.jobRepo.SimilarCandidates(ctx, job, similarCandidateLimit)
	if err != nil {
		return nil, err
	}
	return RankSimilarJobs(job, candidates, similarResultLimit), nil
}

// GetTopJobs 热门职位榜，批处理产出的 ZSET 缺失时回源数据库
func (s *JobServiceImpl) GetTopJobs(ctx context.Context) ([]*model.Job, error) {
	hexIDs, err := redis.ZRevRange(ctx, consts.TopJobsKey, 0, -1)
	if err != nil {
		log.WarnContext(ctx, "读取职位榜单失败，回源数据库", "error", err)
	}
	if len(hexIDs) == 0 {
		return s.jobRepo.TopJobs(ctx, topListFallbackLimit)
	}

	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, hexID := range hexIDs {
		id, convErr := primitive.ObjectIDFromHex(hexID)
		if convErr != nil {
			continue
		}
		ids = append(ids, id)
	}
	return s.jobRepo.FindByIDs(ctx, ids)
}

// SimilarityScore 相似度权重：类型 3 地区 2 学历 1 职级 1
func SimilarityScore(base, candidate *model.Job) int {
	score := 0
	if candidate.JobType == base.JobType {
		score += 3
	}
	if candidate.JobLocation == base.JobLocation {
		score += 2
	}
	if candidate.EducationLevel == base.EducationLevel {
		score++
	}
	if candidate.EmploymentLevel == base.EmploymentLevel {
		score++
	}
	return score
}

// RankSimilarJobs 按相似度降序，同分按发布时间降序，截断到 limit
func RankSimilarJobs(base *model.Job, candidates []*model.Job, limit int) []*model.Job {
	type scored struct {
		job   *model.Job
		score int
	}
	ranked := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, scored{job: c, score: SimilarityScore(base, c)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].job.CreatedAt.After(ranked[j].job.CreatedAt)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	result := make([]*model.Job, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, r.job)
	}
	return result
}

// jobFilterOf DTO 筛选条件转仓储层过滤器，非法枚举直接拒绝
func jobFilterOf(search dto.JobSearchDTO, status model.JobStatus) (repository.JobFilter, error) {
	filter := repository.JobFilter{Status: status, Text: search.Text}

	if search.MemberID != "" {
		id, err := primitive.ObjectIDFromHex(search.MemberID)
		if err != nil {
			return filter, ErrParamInvalid
		}
		filter.MemberID = id
	}
	for _, loc := range search.Locations {
		l := model.JobLocation(loc)
		if !l.Valid() {
			return filter, ErrParamInvalid
		}
		filter.Locations = append(filter.Locations, l)
	}
	for _, t := range search.TypeList {
		jt := model.JobType(t)
		if !jt.Valid() {
			return filter, ErrParamInvalid
		}
		filter.TypeList = append(filter.TypeList, jt)
	}
	for _, e := range search.EducationLevels {
		el := model.EducationLevel(e)
		if !el.Valid() {
			return filter, ErrParamInvalid
		}
		filter.EducationLevels = append(filter.EducationLevels, el)
	}
	for _, e := range search.EmploymentLevels {
		el := model.EmploymentLevel(e)
		if !el.Valid() {
			return filter, ErrParamInvalid
		}
		filter.EmploymentLevels = append(filter.EmploymentLevels, el)
	}
	if search.Salary != nil {
		if search.Salary.Start > search.Salary.End {
			return filter, ErrParamInvalid
		}
		filter.Salary = &repository.SalaryRange{Start: search.Salary.Start, End: search.Salary.End}
	}
	return filter, nil
}

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
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const applicationStatsTTL = 5 * time.Minute

// statusTransitions 企业侧允许的状态流转表，撤回只能由求职者发起
var statusTransitions = map[model.ApplicationStatus][]model.ApplicationStatus{
	model.ApplicationStatusPending:            {model.ApplicationStatusReviewing, model.ApplicationStatusRejected},
	model.ApplicationStatusReviewing:          {model.ApplicationStatusInterviewScheduled, model.ApplicationStatusRejected},
	model.ApplicationStatusInterviewScheduled: {model.ApplicationStatusInterviewCompleted, model.ApplicationStatusRejected},
	model.ApplicationStatusInterviewCompleted: {model.ApplicationStatusOfferSent, model.ApplicationStatusRejected},
	model.ApplicationStatusOfferSent:          {model.ApplicationStatusOfferAccepted, model.ApplicationStatusOfferDeclined},
	model.ApplicationStatusOfferAccepted:      {model.ApplicationStatusAccepted},
	model.ApplicationStatusOfferDeclined:      {model.ApplicationStatusRejected},
}

// ValidStatusTransition 判断 from 到 to 是否在流转表内
func ValidStatusTransition(from, to model.ApplicationStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type ApplicationService interface {
	Apply(ctx context.Context, applicantID primitive.ObjectID, req *dto.ApplyDTO) (*model.Application, error)
	Withdraw(ctx context.Context, applicantID, applicationID primitive.ObjectID) (*model.Application, error)
	UpdateStatus(ctx context.Context, companyID, applicationID primitive.ObjectID, req *dto.ApplicationStatusDTO) (*model.Application, error)
	GetApplication(ctx context.Context, requesterID, applicationID primitive.ObjectID) (*model.Application, error)
	GetMyApplications(ctx context.Context, applicantID primitive.ObjectID, inquiry *dto.ApplicationsInquiry) (*repository.PageResult[model.Application], error)
	GetReceivedApplications(ctx context.Context, companyID primitive.ObjectID, inquiry *dto.ApplicationsInquiry) (*repository.PageResult[model.Application], error)
	GetCompanyStats(ctx context.Context, companyID primitive.ObjectID) (*model.ApplicationStats, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repository.ApplicationRepo
	jobRepo         repository.JobRepo
	notificationSvc NotificationService
}

func NewApplicationService(
	applicationRepo repository.ApplicationRepo,
	jobRepo repository.JobRepo,
	notificationSvc NotificationService,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		notificationSvc: notificationSvc,
	}
}

// Apply 投递申请：职位须开放、未过截止、未满员，重复投递返回冲突
func (s *ApplicationServiceImpl) Apply(ctx context.Context, applicantID primitive.ObjectID, req *dto.ApplyDTO) (*model.Application, error) {
	jobID, err := primitive.ObjectIDFromHex(req.JobID)
	if err != nil {
		return nil, ErrParamInvalid
	}

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	if job.JobStatus != model.JobStatusOpen {
		return nil, ErrJobNotOpen
	}
	if job.MemberID == applicantID {
		return nil, ErrApplyOwnJob
	}
	if job.ApplicationDeadline != nil && time.Now().After(*job.ApplicationDeadline) {
		return nil, ErrDeadlinePassed
	}
	if job.MaxApplications > 0 {
		count, err := s.applicationRepo.CountActiveByJob(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if count >= int64(job.MaxApplications) {
			return nil, ErrApplicationsFull
		}
	}

	if _, err = s.applicationRepo.FindActive(ctx, jobID, applicantID); err == nil {
		return nil, ErrApplicationExist
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	application := &model.Application{
		JobID:          jobID,
		ApplicantID:    applicantID,
		CompanyID:      job.MemberID,
		Status:         model.ApplicationStatusPending,
		ExpectedSalary: req.ExpectedSalary,
		CoverLetter:    req.CoverLetter,
		ResumeURL:      req.ResumeURL,
		Notes:          req.Notes,
	}
	if err = s.applicationRepo.Create(ctx, application); err != nil {
		if repository.IsDup(err) {
			return nil, ErrApplicationExist
		}
		return nil, err
	}

	if err = s.jobRepo.PushApplication(ctx, jobID, application.ID.Hex()); err != nil {
		return nil, err
	}
	if err = s.jobRepo.AdjustStat(ctx, jobID, model.StatApplicationCount, 1); err != nil {
		return nil, err
	}
	s.invalidateStats(ctx, job.MemberID)

	s.notificationSvc.Notify(ctx, &model.Notification{
		AuthorID:          applicantID,
		ReceiverID:        job.MemberID,
		NotificationType:  model.NotificationTypeApplication,
		NotificationGroup: model.NotificationGroupApplication,
		NotificationTitle: "收到新的职位申请",
		NotificationDesc:  job.PositionTitle,
		JobID:             &job.ID,
	})

	return application, nil
}

// Withdraw 撤回申请：仅 PENDING 可撤，撤回后允许重新投递
func (s *ApplicationServiceImpl) Withdraw(ctx context.Context, applicantID, applicationID primitive.ObjectID) (*model.Application, error) {
	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	if application.ApplicantID != applicantID {
		return nil, ErrNotAuthorized
	}
	if application.Status != model.ApplicationStatusPending {
		return nil, ErrWithdrawNotAllowed
	}

	updated, err := s.applicationRepo.UpdateFields(ctx, applicationID, bson.D{
		{Key: "status", Value: model.ApplicationStatusWithdrawn},
		{Key: "isActive", Value: false},
	})
	if err != nil {
		return nil, err
	}

	if err = s.jobRepo.PullApplication(ctx, application.JobID, applicationID.Hex()); err != nil {
		return nil, err
	}
	if err = s.jobRepo.AdjustStat(ctx, application.JobID, model.StatApplicationCount, -1); err != nil {
		return nil, err
	}
	s.invalidateStats(ctx, application.CompanyID)

	s.notificationSvc.Retract(ctx, repository.NotificationCriteria{
		AuthorID:   applicantID,
		ReceiverID: application.CompanyID,
		Type:       model.NotificationTypeApplication,
		JobID:      &application.JobID,
	})

	return updated, nil
}

// UpdateStatus 企业侧流转申请状态，非法流转直接拒绝
func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, companyID, applicationID primitive.ObjectID, req *dto.ApplicationStatusDTO) (*model.Application, error) {
	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	if application.CompanyID != companyID {
		return nil, ErrNotAuthorized
	}

	to := model.ApplicationStatus(req.Status)
	if !ValidStatusTransition(application.Status, to) {
		return nil, ErrStatusTransition
	}

	set := bson.D{{Key: "status", Value: to}}
	if req.Feedback != "" {
		set = append(set, bson.E{Key: "feedback", Value: req.Feedback})
	}
	if req.InterviewDate != nil {
		set = append(set, bson.E{Key: "interviewDate", Value: *req.InterviewDate})
	}
	// 终态申请不再占用重复投递约束
	if to == model.ApplicationStatusRejected || to == model.ApplicationStatusAccepted {
		set = append(set, bson.E{Key: "isActive", Value: false})
	}

	updated, err := s.applicationRepo.UpdateFields(ctx, applicationID, set)
	if err != nil {
		return nil, err
	}
	s.invalidateStats(ctx, companyID)

	s.notificationSvc.Notify(ctx, &model.Notification{
		AuthorID:          companyID,
		ReceiverID:        application.ApplicantID,
		NotificationType:  model.NotificationTypeApplicationStatus,
		NotificationGroup: model.NotificationGroupApplication,
		NotificationTitle: "申请状态已更新",
		NotificationDesc:  string(to),
		JobID:             &application.JobID,
	})

	return updated, nil
}

// GetApplication 申请双方可见，企业首次打开时记录查看状态
func (s *ApplicationServiceImpl) GetApplication(ctx context.Context, requesterID, applicationID primitive.ObjectID) (*model.Application, error) {
	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	if application.ApplicantID != requesterID && application.CompanyID != requesterID {
		return nil, ErrNotAuthorized
	}

	if application.CompanyID == requesterID {
		if err = s.applicationRepo.MarkViewed(ctx, applicationID); err != nil {
			return nil, err
		}
		if !application.IsViewedByCompany {
			application.IsViewedByCompany = true
			now := time.Now()
			application.ViewedAt = &now
		}
		application.ViewCount++
	}
	return application, nil
}

func (s *ApplicationServiceImpl) GetMyApplications(ctx context.Context, applicantID primitive.ObjectID, inquiry *dto.ApplicationsInquiry) (*repository.PageResult[model.Application], error) {
	filter := repository.ApplicationFilter{
		ApplicantID: applicantID,
		Status:      model.ApplicationStatus(inquiry.Status),
	}
	return s.applicationRepo.List(ctx, filter, pageOf(inquiry.PageQuery))
}

func (s *ApplicationServiceImpl) GetReceivedApplications(ctx context.Context, companyID primitive.ObjectID, inquiry *dto.ApplicationsInquiry) (*repository.PageResult[model.Application], error) {
	filter := repository.ApplicationFilter{
		CompanyID: companyID,
		Status:    model.ApplicationStatus(inquiry.Status),
	}
	if inquiry.JobID != "" {
		jobID, err := primitive.ObjectIDFromHex(inquiry.JobID)
		if err != nil {
			return nil, ErrParamInvalid
		}
		filter.JobID = jobID
	}
	return s.applicationRepo.List(ctx, filter, pageOf(inquiry.PageQuery))
}

// GetCompanyStats 统计走短缓存，写路径负责失效
func (s *ApplicationServiceImpl) GetCompanyStats(ctx context.Context, companyID primitive.ObjectID) (*model.ApplicationStats, error) {
	key := consts.ApplicationStatKey + companyID.Hex()
	if cached, err := redis.GetValue(ctx, key); err == nil && cached != "" {
		var stats model.ApplicationStats
		if err = json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	stats, err := s.applicationRepo.StatsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if buf, err := json.Marshal(stats); err == nil {
		if err = redis.SetWithExpiration(ctx, key, string(buf), applicationStatsTTL); err != nil {
			log.WarnContext(ctx, "申请统计缓存写入失败", "err", err)
		}
	}
	return stats, nil
}

func (s *ApplicationServiceImpl) invalidateStats(ctx context.Context, companyID primitive.ObjectID) {
	if err := redis.DeleteKey(ctx, consts.ApplicationStatKey+companyID.Hex()); err != nil {
		log.WarnContext(ctx, "申请统计缓存失效失败", "err", err)
	}
}

package service_test

import (
	"context"

	"Hirebase/internal/model"
	"Hirebase/internal/repository"
	"Hirebase/internal/service"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// 测试用的内存仓储，重复写入复现唯一索引冲突

func dupErr() error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
}

type likeKey struct {
	memberID primitive.ObjectID
	refID    primitive.ObjectID
	group    model.TargetGroup
}

type fakeLikeRepo struct {
	likes map[likeKey]struct{}
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: map[likeKey]struct{}{}}
}

func (s *fakeLikeRepo) Insert(_ context.Context, like *model.Like) error {
	k := likeKey{like.MemberID, like.LikeRefID, like.LikeGroup}
	if _, ok := s.likes[k]; ok {
		return dupErr()
	}
	s.likes[k] = struct{}{}
	return nil
}

func (s *fakeLikeRepo) Remove(_ context.Context, memberID, refID primitive.ObjectID, group model.TargetGroup) (bool, error) {
	k := likeKey{memberID, refID, group}
	if _, ok := s.likes[k]; !ok {
		return false, nil
	}
	delete(s.likes, k)
	return true, nil
}

func (s *fakeLikeRepo) Exists(_ context.Context, memberID, refID primitive.ObjectID, group model.TargetGroup) (bool, error) {
	_, ok := s.likes[likeKey{memberID, refID, group}]
	return ok, nil
}

type fakeViewRepo struct {
	views map[likeKey]struct{}
}

func newFakeViewRepo() *fakeViewRepo {
	return &fakeViewRepo{views: map[likeKey]struct{}{}}
}

func (s *fakeViewRepo) RecordIfAbsent(_ context.Context, view *model.View) (bool, error) {
	k := likeKey{view.MemberID, view.ViewRefID, view.ViewGroup}
	if _, ok := s.views[k]; ok {
		return false, nil
	}
	s.views[k] = struct{}{}
	return true, nil
}

type followKey struct {
	follower  primitive.ObjectID
	following primitive.ObjectID
}

type fakeFollowRepo struct {
	edges map[followKey]struct{}
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: map[followKey]struct{}{}}
}

func (s *fakeFollowRepo) Insert(_ context.Context, follow *model.Follow) error {
	k := followKey{follow.FollowerID, follow.FollowingID}
	if _, ok := s.edges[k]; ok {
		return dupErr()
	}
	s.edges[k] = struct{}{}
	return nil
}

func (s *fakeFollowRepo) Remove(_ context.Context, followerID, followingID primitive.ObjectID) (bool, error) {
	k := followKey{followerID, followingID}
	if _, ok := s.edges[k]; !ok {
		return false, nil
	}
	delete(s.edges, k)
	return true, nil
}

func (s *fakeFollowRepo) Exists(_ context.Context, followerID, followingID primitive.ObjectID) (bool, error) {
	_, ok := s.edges[followKey{followerID, followingID}]
	return ok, nil
}

func (s *fakeFollowRepo) ListFollowers(_ context.Context, _ primitive.ObjectID, _ repository.PageRequest, _ primitive.ObjectID) (*repository.PageResult[model.Follow], error) {
	return &repository.PageResult[model.Follow]{List: []*model.Follow{}}, nil
}

func (s *fakeFollowRepo) ListFollowings(_ context.Context, _ primitive.ObjectID, _ repository.PageRequest, _ primitive.ObjectID) (*repository.PageResult[model.Follow], error) {
	return &repository.PageResult[model.Follow]{List: []*model.Follow{}}, nil
}

type fakeMemberRepo struct {
	members map[primitive.ObjectID]*model.Member
	stats   map[primitive.ObjectID]map[model.StatKey]int64
}

func newFakeMemberRepo(members ...*model.Member) *fakeMemberRepo {
	repo := &fakeMemberRepo{
		members: map[primitive.ObjectID]*model.Member{},
		stats:   map[primitive.ObjectID]map[model.StatKey]int64{},
	}
	for _, m := range members {
		repo.members[m.ID] = m
	}
	return repo
}

func (s *fakeMemberRepo) statOf(id primitive.ObjectID, key model.StatKey) int64 {
	return s.stats[id][key]
}

func (s *fakeMemberRepo) Create(_ context.Context, member *model.Member) error {
	for _, m := range s.members {
		if m.MemberNick == member.MemberNick {
			return dupErr()
		}
	}
	member.ID = primitive.NewObjectID()
	s.members[member.ID] = member
	return nil
}

func (s *fakeMemberRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Member, error) {
	m, ok := s.members[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return m, nil
}

func (s *fakeMemberRepo) FindByNick(_ context.Context, nick string) (*model.Member, error) {
	for _, m := range s.members {
		if m.MemberNick == nick {
			return m, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *fakeMemberRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]*model.Member, error) {
	var found []*model.Member
	for _, id := range ids {
		if m, ok := s.members[id]; ok {
			found = append(found, m)
		}
	}
	return found, nil
}

func (s *fakeMemberRepo) FindOneWithViewer(ctx context.Context, id, _ primitive.ObjectID) (*model.Member, error) {
	return s.FindByID(ctx, id)
}

func (s *fakeMemberRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, _ bson.D) (*model.Member, error) {
	return s.FindByID(ctx, id)
}

func (s *fakeMemberRepo) AdjustStat(_ context.Context, id primitive.ObjectID, key model.StatKey, delta int64) error {
	if _, ok := s.members[id]; !ok {
		return mongo.ErrNoDocuments
	}
	if s.stats[id] == nil {
		s.stats[id] = map[model.StatKey]int64{}
	}
	s.stats[id][key] += delta
	return nil
}

func (s *fakeMemberRepo) List(_ context.Context, _ repository.MemberFilter, _ repository.PageRequest, _ primitive.ObjectID) (*repository.PageResult[model.Member], error) {
	return &repository.PageResult[model.Member]{List: []*model.Member{}}, nil
}

func (s *fakeMemberRepo) RecomputeAgentRanks(_ context.Context) (int64, error) {
	return 0, nil
}

func (s *fakeMemberRepo) TopAgents(_ context.Context, _ int64) ([]*model.Member, error) {
	return nil, nil
}

type fakeJobRepo struct {
	jobs  map[primitive.ObjectID]*model.Job
	stats map[primitive.ObjectID]map[model.StatKey]int64
}

func newFakeJobRepo(jobs ...*model.Job) *fakeJobRepo {
	repo := &fakeJobRepo{
		jobs:  map[primitive.ObjectID]*model.Job{},
		stats: map[primitive.ObjectID]map[model.StatKey]int64{},
	}
	for _, j := range jobs {
		repo.jobs[j.ID] = j
	}
	return repo
}

func (s *fakeJobRepo) Create(_ context.Context, job *model.Job) error {
	job.ID = primitive.NewObjectID()
	s.jobs[job.ID] = job
	return nil
}

func (s *fakeJobRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Job, error) {
	j, ok := s.jobs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return j, nil
}

func (s *fakeJobRepo) FindAnyByID(ctx context.Context, id primitive.ObjectID) (*model.Job, error) {
	return s.FindByID(ctx, id)
}

func (s *fakeJobRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]*model.Job, error) {
	var found []*model.Job
	for _, id := range ids {
		if j, ok := s.jobs[id]; ok {
			found = append(found, j)
		}
	}
	return found, nil
}

func (s *fakeJobRepo) FindOneWithViewer(ctx context.Context, id, _ primitive.ObjectID) (*model.Job, error) {
	return s.FindByID(ctx, id)
}

func (s *fakeJobRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, _ bson.D) (*model.Job, error) {
	return s.FindByID(ctx, id)
}

func (s *fakeJobRepo) AdjustStat(_ context.Context, id primitive.ObjectID, key model.StatKey, delta int64) error {
	if s.stats[id] == nil {
		s.stats[id] = map[model.StatKey]int64{}
	}
	s.stats[id][key] += delta
	return nil
}

func (s *fakeJobRepo) PushApplication(_ context.Context, jobID primitive.ObjectID, applicationID string) error {
	s.jobs[jobID].Applications = append(s.jobs[jobID].Applications, applicationID)
	return nil
}

func (s *fakeJobRepo) PullApplication(_ context.Context, jobID primitive.ObjectID, applicationID string) error {
	kept := s.jobs[jobID].Applications[:0]
	for _, id := range s.jobs[jobID].Applications {
		if id != applicationID {
			kept = append(kept, id)
		}
	}
	s.jobs[jobID].Applications = kept
	return nil
}

func (s *fakeJobRepo) List(_ context.Context, _ repository.JobFilter, _ repository.PageRequest, _ primitive.ObjectID) (*repository.PageResult[model.Job], error) {
	return &repository.PageResult[model.Job]{List: []*model.Job{}}, nil
}

func (s *fakeJobRepo) SimilarCandidates(_ context.Context, _ *model.Job, _ int64) ([]*model.Job, error) {
	return nil, nil
}

func (s *fakeJobRepo) LikedBy(_ context.Context, _ primitive.ObjectID, _ repository.PageRequest) (*repository.PageResult[model.Job], error) {
	return &repository.PageResult[model.Job]{List: []*model.Job{}}, nil
}

func (s *fakeJobRepo) ViewedBy(_ context.Context, _ primitive.ObjectID, _ repository.PageRequest) (*repository.PageResult[model.Job], error) {
	return &repository.PageResult[model.Job]{List: []*model.Job{}}, nil
}

func (s *fakeJobRepo) RecomputeRanks(_ context.Context) (int64, error) {
	return 0, nil
}

func (s *fakeJobRepo) TopJobs(_ context.Context, _ int64) ([]*model.Job, error) {
	return nil, nil
}

func (s *fakeJobRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.jobs[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(s.jobs, id)
	return nil
}

type fakeApplicationRepo struct {
	applications map[primitive.ObjectID]*model.Application
	activeCount  int64
}

func newFakeApplicationRepo(applications ...*model.Application) *fakeApplicationRepo {
	repo := &fakeApplicationRepo{applications: map[primitive.ObjectID]*model.Application{}}
	for _, a := range applications {
		repo.applications[a.ID] = a
	}
	return repo
}

func (s *fakeApplicationRepo) Create(_ context.Context, application *model.Application) error {
	for _, a := range s.applications {
		if a.JobID == application.JobID && a.ApplicantID == application.ApplicantID && a.IsActive {
			return dupErr()
		}
	}
	application.ID = primitive.NewObjectID()
	application.IsActive = true
	s.applications[application.ID] = application
	return nil
}

func (s *fakeApplicationRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Application, error) {
	a, ok := s.applications[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return a, nil
}

func (s *fakeApplicationRepo) FindActive(_ context.Context, jobID, applicantID primitive.ObjectID) (*model.Application, error) {
	for _, a := range s.applications {
		if a.JobID == jobID && a.ApplicantID == applicantID && a.IsActive {
			return a, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *fakeApplicationRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, _ bson.D) (*model.Application, error) {
	return s.FindByID(ctx, id)
}

func (s *fakeApplicationRepo) MarkViewed(_ context.Context, _ primitive.ObjectID) error {
	return nil
}

func (s *fakeApplicationRepo) List(_ context.Context, _ repository.ApplicationFilter, _ repository.PageRequest) (*repository.PageResult[model.Application], error) {
	return &repository.PageResult[model.Application]{List: []*model.Application{}}, nil
}

func (s *fakeApplicationRepo) CountActiveByJob(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return s.activeCount, nil
}

func (s *fakeApplicationRepo) StatsByCompany(_ context.Context, _ primitive.ObjectID) (*model.ApplicationStats, error) {
	return &model.ApplicationStats{}, nil
}

// fakeNotificationSvc 记录旁路通知的收发，便于断言
type fakeNotificationSvc struct {
	notified  []*model.Notification
	retracted []repository.NotificationCriteria
}

func (s *fakeNotificationSvc) Notify(_ context.Context, notification *model.Notification) {
	s.notified = append(s.notified, notification)
}

func (s *fakeNotificationSvc) Retract(_ context.Context, criteria repository.NotificationCriteria) {
	s.retracted = append(s.retracted, criteria)
}

func (s *fakeNotificationSvc) GetNotifications(_ context.Context, _ primitive.ObjectID, _ model.NotificationStatus, _ repository.PageRequest) (*repository.PageResult[model.Notification], error) {
	return &repository.PageResult[model.Notification]{List: []*model.Notification{}}, nil
}

func (s *fakeNotificationSvc) MarkRead(_ context.Context, _, _ primitive.ObjectID) error {
	return nil
}

func (s *fakeNotificationSvc) MarkAllRead(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return 0, nil
}

func (s *fakeNotificationSvc) UnreadCount(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return 0, nil
}

var _ repository.LikeRepo = (*fakeLikeRepo)(nil)
var _ repository.ViewRepo = (*fakeViewRepo)(nil)
var _ repository.FollowRepo = (*fakeFollowRepo)(nil)
var _ repository.MemberRepo = (*fakeMemberRepo)(nil)
var _ repository.JobRepo = (*fakeJobRepo)(nil)
var _ repository.ApplicationRepo = (*fakeApplicationRepo)(nil)
var _ service.NotificationService = (*fakeNotificationSvc)(nil)

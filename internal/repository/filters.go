package repository

import (
	"Hirebase/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 查询条件一律走类型化结构体，翻译成 bson 的逻辑集中在本文件

// MemberFilter 会员列表查询条件
type MemberFilter struct {
	MemberType model.MemberType
	Text       string
}

func (f MemberFilter) Match() bson.D {
	match := bson.D{{Key: "memberStatus", Value: model.MemberStatusActive}}
	if f.MemberType != "" {
		match = append(match, bson.E{Key: "memberType", Value: f.MemberType})
	}
	if f.Text != "" {
		match = append(match, bson.E{Key: "memberNick", Value: primitive.Regex{Pattern: f.Text, Options: "i"}})
	}
	return match
}

// SalaryRange 薪资闭区间
type SalaryRange struct {
	Start int64
	End   int64
}

// JobFilter 职位列表查询条件
type JobFilter struct {
	MemberID         primitive.ObjectID
	Locations        []model.JobLocation
	TypeList         []model.JobType
	EducationLevels  []model.EducationLevel
	EmploymentLevels []model.EmploymentLevel
	Salary           *SalaryRange
	Text             string
	Status           model.JobStatus
}

func (f JobFilter) Match() bson.D {
	status := f.Status
	if status == "" {
		status = model.JobStatusOpen
	}
	match := bson.D{{Key: "jobStatus", Value: status}}
	if !f.MemberID.IsZero() {
		match = append(match, bson.E{Key: "memberId", Value: f.MemberID})
	}
	if len(f.Locations) > 0 {
		match = append(match, bson.E{Key: "jobLocation", Value: bson.D{{Key: "$in", Value: f.Locations}}})
	}
	if len(f.TypeList) > 0 {
		match = append(match, bson.E{Key: "jobType", Value: bson.D{{Key: "$in", Value: f.TypeList}}})
	}
	if len(f.EducationLevels) > 0 {
		match = append(match, bson.E{Key: "educationLevel", Value: bson.D{{Key: "$in", Value: f.EducationLevels}}})
	}
	if len(f.EmploymentLevels) > 0 {
		match = append(match, bson.E{Key: "employmentLevel", Value: bson.D{{Key: "$in", Value: f.EmploymentLevels}}})
	}
	if f.Salary != nil {
		match = append(match, bson.E{Key: "jobSalary", Value: bson.D{
			{Key: "$gte", Value: f.Salary.Start},
			{Key: "$lte", Value: f.Salary.End},
		}})
	}
	if f.Text != "" {
		match = append(match, bson.E{Key: "positionTitle", Value: primitive.Regex{Pattern: f.Text, Options: "i"}})
	}
	return match
}

// ArticleFilter 帖子列表查询条件
type ArticleFilter struct {
	MemberID primitive.ObjectID
	Category model.ArticleCategory
	Text     string
	Status   model.ArticleStatus
}

func (f ArticleFilter) Match() bson.D {
	status := f.Status
	if status == "" {
		status = model.ArticleStatusActive
	}
	match := bson.D{{Key: "articleStatus", Value: status}}
	if !f.MemberID.IsZero() {
		match = append(match, bson.E{Key: "memberId", Value: f.MemberID})
	}
	if f.Category != "" {
		match = append(match, bson.E{Key: "articleCategory", Value: f.Category})
	}
	if f.Text != "" {
		match = append(match, bson.E{Key: "articleTitle", Value: primitive.Regex{Pattern: f.Text, Options: "i"}})
	}
	return match
}

// ApplicationFilter 申请列表查询条件
type ApplicationFilter struct {
	JobID       primitive.ObjectID
	ApplicantID primitive.ObjectID
	CompanyID   primitive.ObjectID
	Status      model.ApplicationStatus
	ActiveOnly  bool
}

func (f ApplicationFilter) Match() bson.D {
	match := bson.D{}
	if !f.JobID.IsZero() {
		match = append(match, bson.E{Key: "jobId", Value: f.JobID})
	}
	if !f.ApplicantID.IsZero() {
		match = append(match, bson.E{Key: "applicantId", Value: f.ApplicantID})
	}
	if !f.CompanyID.IsZero() {
		match = append(match, bson.E{Key: "companyId", Value: f.CompanyID})
	}
	if f.Status != "" {
		match = append(match, bson.E{Key: "status", Value: f.Status})
	}
	if f.ActiveOnly {
		match = append(match, bson.E{Key: "isActive", Value: true})
	}
	return match
}

// NotificationFilter 通知列表查询条件
type NotificationFilter struct {
	ReceiverID primitive.ObjectID
	Status     model.NotificationStatus
}

func (f NotificationFilter) Match() bson.D {
	match := bson.D{{Key: "receiverId", Value: f.ReceiverID}}
	if f.Status != "" {
		match = append(match, bson.E{Key: "notificationStatus", Value: f.Status})
	}
	return match
}

// NotificationCriteria 撤回通知的定位条件，零值字段不参与匹配
type NotificationCriteria struct {
	AuthorID   primitive.ObjectID
	ReceiverID primitive.ObjectID
	Type       model.NotificationType
	Group      model.NotificationGroup
	JobID      *primitive.ObjectID
	ArticleID  *primitive.ObjectID
}

func (f NotificationCriteria) Match() bson.D {
	match := bson.D{}
	if !f.AuthorID.IsZero() {
		match = append(match, bson.E{Key: "authorId", Value: f.AuthorID})
	}
	if !f.ReceiverID.IsZero() {
		match = append(match, bson.E{Key: "receiverId", Value: f.ReceiverID})
	}
	if f.Type != "" {
		match = append(match, bson.E{Key: "notificationType", Value: f.Type})
	}
	if f.Group != "" {
		match = append(match, bson.E{Key: "notificationGroup", Value: f.Group})
	}
	if f.JobID != nil {
		match = append(match, bson.E{Key: "jobId", Value: *f.JobID})
	}
	if f.ArticleID != nil {
		match = append(match, bson.E{Key: "articleId", Value: *f.ArticleID})
	}
	return match
}

// 各实体允许的排序字段
var (
	MemberSorts = map[string]struct{}{
		"createdAt":   {},
		"memberRank":  {},
		"memberLikes": {},
		"memberViews": {},
	}
	JobSorts = map[string]struct{}{
		"createdAt": {},
		"jobRank":   {},
		"jobLikes":  {},
		"jobViews":  {},
		"jobSalary": {},
	}
	ArticleSorts = map[string]struct{}{
		"createdAt":    {},
		"articleLikes": {},
		"articleViews": {},
	}
	ApplicationSorts = map[string]struct{}{
		"appliedAt": {},
		"updatedAt": {},
	}
	CommentSorts = map[string]struct{}{
		"createdAt": {},
	}
	NotificationSorts = map[string]struct{}{
		"createdAt": {},
	}
)

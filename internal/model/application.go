package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplicationStatus string

const (
	ApplicationStatusPending            ApplicationStatus = "PENDING"
	ApplicationStatusReviewing          ApplicationStatus = "REVIEWING"
	ApplicationStatusInterviewScheduled ApplicationStatus = "INTERVIEW_SCHEDULED"
	ApplicationStatusInterviewCompleted ApplicationStatus = "INTERVIEW_COMPLETED"
	ApplicationStatusOfferSent          ApplicationStatus = "OFFER_SENT"
	ApplicationStatusOfferAccepted      ApplicationStatus = "OFFER_ACCEPTED"
	ApplicationStatusOfferDeclined      ApplicationStatus = "OFFER_DECLINED"
	ApplicationStatusAccepted           ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected           ApplicationStatus = "REJECTED"
	ApplicationStatusWithdrawn          ApplicationStatus = "WITHDRAWN"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewing,
		ApplicationStatusInterviewScheduled, ApplicationStatusInterviewCompleted,
		ApplicationStatusOfferSent, ApplicationStatusOfferAccepted,
		ApplicationStatusOfferDeclined, ApplicationStatusAccepted,
		ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}

// Application 职位申请模型
// isActive=true 时 (jobId, applicantId) 唯一；撤回或删除会清除 isActive
type Application struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	JobID             primitive.ObjectID `bson:"jobId" json:"jobId"`
	ApplicantID       primitive.ObjectID `bson:"applicantId" json:"applicantId"`
	CompanyID         primitive.ObjectID `bson:"companyId" json:"companyId"` // 职位发布者
	Status            ApplicationStatus  `bson:"status" json:"status"`
	ExpectedSalary    int64              `bson:"expectedSalary" json:"expectedSalary"`
	CoverLetter       string             `bson:"coverLetter,omitempty" json:"coverLetter,omitempty"`
	ResumeURL         string             `bson:"resumeUrl,omitempty" json:"resumeUrl,omitempty"`
	Notes             string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Feedback          string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	InterviewDate     *time.Time         `bson:"interviewDate,omitempty" json:"interviewDate,omitempty"`
	IsActive          bool               `bson:"isActive" json:"isActive"`
	IsViewedByCompany bool               `bson:"isViewedByCompany" json:"isViewedByCompany"`
	ViewCount         int64              `bson:"viewCount" json:"viewCount"`
	AppliedAt         time.Time          `bson:"appliedAt" json:"appliedAt"`
	ViewedAt          *time.Time         `bson:"viewedAt,omitempty" json:"viewedAt,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`

	JobData       *Job    `bson:"jobData,omitempty" json:"jobData,omitempty"`
	ApplicantData *Member `bson:"applicantData,omitempty" json:"applicantData,omitempty"`
	CompanyData   *Member `bson:"companyData,omitempty" json:"companyData,omitempty"`
}

func (Application) Collection() string {
	return "applications"
}

// ApplicationStats 按状态分组的申请统计
type ApplicationStats struct {
	Total     int64 `bson:"total" json:"total"`
	Pending   int64 `bson:"pending" json:"pending"`
	Reviewing int64 `bson:"reviewing" json:"reviewing"`
	Accepted  int64 `bson:"accepted" json:"accepted"`
	Rejected  int64 `bson:"rejected" json:"rejected"`
	Withdrawn int64 `bson:"withdrawn" json:"withdrawn"`
}

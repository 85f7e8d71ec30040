package dto

import "time"

// ApplyDTO 投递申请入参
type ApplyDTO struct {
	JobID          string `json:"jobId" validate:"required"`
	ExpectedSalary int64  `json:"expectedSalary" validate:"gte=0"`
	CoverLetter    string `json:"coverLetter" validate:"omitempty,max=5000"`
	ResumeURL      string `json:"resumeUrl" validate:"omitempty,max=500"`
	Notes          string `json:"notes" validate:"omitempty,max=1000"`
}

// ApplicationStatusDTO 企业侧流转申请状态
type ApplicationStatusDTO struct {
	Status        string     `json:"status" validate:"required,oneof=PENDING REVIEWING INTERVIEW_SCHEDULED INTERVIEW_COMPLETED OFFER_SENT OFFER_ACCEPTED OFFER_DECLINED ACCEPTED REJECTED"`
	Feedback      string     `json:"feedback" validate:"omitempty,max=2000"`
	InterviewDate *time.Time `json:"interviewDate"`
}

// ApplicationsInquiry 申请列表查询入参
type ApplicationsInquiry struct {
	PageQuery
	JobID  string `json:"jobId" form:"jobId"`
	Status string `json:"status" form:"status" validate:"omitempty,oneof=PENDING REVIEWING INTERVIEW_SCHEDULED INTERVIEW_COMPLETED OFFER_SENT OFFER_ACCEPTED OFFER_DECLINED ACCEPTED REJECTED WITHDRAWN"`
}

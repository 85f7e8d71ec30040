package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type JobType string

const (
	JobTypeFullTime JobType = "FULL_TIME"
	JobTypePartTime JobType = "PART_TIME"
	JobTypeContract JobType = "CONTRACT"
	JobTypeIntern   JobType = "INTERN"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeIntern:
		return true
	}
	return false
}

type JobLocation string

const (
	JobLocationSeoul    JobLocation = "SEOUL"
	JobLocationBusan    JobLocation = "BUSAN"
	JobLocationDaegu    JobLocation = "DAEGU"
	JobLocationIncheon  JobLocation = "INCHEON"
	JobLocationGwangju  JobLocation = "GWANGJU"
	JobLocationDaejeon  JobLocation = "DAEJEON"
	JobLocationRemote   JobLocation = "REMOTE"
)

func (l JobLocation) Valid() bool {
	switch l {
	case JobLocationSeoul, JobLocationBusan, JobLocationDaegu,
		JobLocationIncheon, JobLocationGwangju, JobLocationDaejeon, JobLocationRemote:
		return true
	}
	return false
}

type JobStatus string

const (
	JobStatusOpen    JobStatus = "OPEN"
	JobStatusClosed  JobStatus = "CLOSED"
	JobStatusPending JobStatus = "PENDING"
	JobStatusDelete  JobStatus = "DELETE"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusClosed, JobStatusPending, JobStatusDelete:
		return true
	}
	return false
}

type EducationLevel string

const (
	EducationHighSchool EducationLevel = "HIGH_SCHOOL"
	EducationAssociate  EducationLevel = "ASSOCIATE"
	EducationBachelor   EducationLevel = "BACHELOR"
	EducationMaster     EducationLevel = "MASTER"
	EducationDoctorate  EducationLevel = "DOCTORATE"
)

func (e EducationLevel) Valid() bool {
	switch e {
	case EducationHighSchool, EducationAssociate, EducationBachelor,
		EducationMaster, EducationDoctorate:
		return true
	}
	return false
}

type EmploymentLevel string

const (
	EmploymentEntry     EmploymentLevel = "ENTRY"
	EmploymentJunior    EmploymentLevel = "JUNIOR"
	EmploymentMiddle    EmploymentLevel = "MIDDLE"
	EmploymentSenior    EmploymentLevel = "SENIOR"
	EmploymentLead      EmploymentLevel = "LEAD"
	EmploymentExecutive EmploymentLevel = "EXECUTIVE"
)

func (e EmploymentLevel) Valid() bool {
	switch e {
	case EmploymentEntry, EmploymentJunior, EmploymentMiddle,
		EmploymentSenior, EmploymentLead, EmploymentExecutive:
		return true
	}
	return false
}

// Job 职位模型
type Job struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberID            primitive.ObjectID `bson:"memberId" json:"memberId"` // 发布者
	JobType             JobType            `bson:"jobType" json:"jobType"`
	JobStatus           JobStatus          `bson:"jobStatus" json:"jobStatus"`
	JobLocation         JobLocation        `bson:"jobLocation" json:"jobLocation"`
	CompanyName         string             `bson:"companyName" json:"companyName"`
	PositionTitle       string             `bson:"positionTitle" json:"positionTitle"`
	JobSalary           int64              `bson:"jobSalary" json:"jobSalary"`
	ExperienceYears     int                `bson:"experienceYears" json:"experienceYears"`
	EducationLevel      EducationLevel     `bson:"educationLevel" json:"educationLevel"`
	EmploymentLevel     EmploymentLevel    `bson:"employmentLevel" json:"employmentLevel"`
	JobDesc             string             `bson:"jobDesc,omitempty" json:"jobDesc,omitempty"`
	SkillsRequired      []string           `bson:"skillsRequired,omitempty" json:"skillsRequired,omitempty"`
	IsRemote            bool               `bson:"isRemote" json:"isRemote"`
	CompanyLogo         string             `bson:"companyLogo,omitempty" json:"companyLogo,omitempty"`
	ApplicationDeadline *time.Time         `bson:"applicationDeadline,omitempty" json:"applicationDeadline,omitempty"`
	MaxApplications     int                `bson:"maxApplications,omitempty" json:"maxApplications,omitempty"`
	Applications        []string           `bson:"applications" json:"applications"` // 有序的申请 ID 列表
	JobViews            int64              `bson:"jobViews" json:"jobViews"`
	JobLikes            int64              `bson:"jobLikes" json:"jobLikes"`
	JobComments         int64              `bson:"jobComments" json:"jobComments"`
	ApplicationCount    int64              `bson:"applicationCount" json:"applicationCount"`
	JobRank             int64              `bson:"jobRank" json:"jobRank"`
	ClosedAt            *time.Time         `bson:"closedAt,omitempty" json:"closedAt,omitempty"`
	DeletedAt           *time.Time         `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`

	MeLiked    bool    `bson:"meLiked,omitempty" json:"meLiked"`
	MemberData *Member `bson:"memberData,omitempty" json:"memberData,omitempty"`
}

func (Job) Collection() string {
	return "jobs"
}

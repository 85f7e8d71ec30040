package dto

import "time"

// JobCreateDTO 发布职位入参
type JobCreateDTO struct {
	JobType             string     `json:"jobType" validate:"required,oneof=FULL_TIME PART_TIME CONTRACT INTERN"`
	JobLocation         string     `json:"jobLocation" validate:"required,oneof=SEOUL BUSAN DAEGU INCHEON GWANGJU DAEJEON REMOTE"`
	CompanyName         string     `json:"companyName" validate:"required,max=100"`
	PositionTitle       string     `json:"positionTitle" validate:"required,max=100"`
	JobSalary           int64      `json:"jobSalary" validate:"required,gt=0"`
	ExperienceYears     int        `json:"experienceYears" validate:"gte=0,lte=50"`
	EducationLevel      string     `json:"educationLevel" validate:"required,oneof=HIGH_SCHOOL ASSOCIATE BACHELOR MASTER DOCTORATE"`
	EmploymentLevel     string     `json:"employmentLevel" validate:"required,oneof=ENTRY JUNIOR MIDDLE SENIOR LEAD EXECUTIVE"`
	JobDesc             string     `json:"jobDesc" validate:"omitempty,max=5000"`
	SkillsRequired      []string   `json:"skillsRequired" validate:"omitempty,max=30"`
	IsRemote            bool       `json:"isRemote"`
	CompanyLogo         string     `json:"companyLogo"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
	MaxApplications     int        `json:"maxApplications" validate:"gte=0"`
}

// JobUpdateDTO 编辑职位，空指针不动原值
type JobUpdateDTO struct {
	JobType             *string    `json:"jobType" validate:"omitempty,oneof=FULL_TIME PART_TIME CONTRACT INTERN"`
	JobStatus           *string    `json:"jobStatus" validate:"omitempty,oneof=OPEN CLOSED PENDING DELETE"`
	JobLocation         *string    `json:"jobLocation" validate:"omitempty,oneof=SEOUL BUSAN DAEGU INCHEON GWANGJU DAEJEON REMOTE"`
	CompanyName         *string    `json:"companyName" validate:"omitempty,max=100"`
	PositionTitle       *string    `json:"positionTitle" validate:"omitempty,max=100"`
	JobSalary           *int64     `json:"jobSalary" validate:"omitempty,gt=0"`
	ExperienceYears     *int       `json:"experienceYears" validate:"omitempty,gte=0,lte=50"`
	EducationLevel      *string    `json:"educationLevel" validate:"omitempty,oneof=HIGH_SCHOOL ASSOCIATE BACHELOR MASTER DOCTORATE"`
	EmploymentLevel     *string    `json:"employmentLevel" validate:"omitempty,oneof=ENTRY JUNIOR MIDDLE SENIOR LEAD EXECUTIVE"`
	JobDesc             *string    `json:"jobDesc" validate:"omitempty,max=5000"`
	SkillsRequired      []string   `json:"skillsRequired" validate:"omitempty,max=30"`
	IsRemote            *bool      `json:"isRemote"`
	CompanyLogo         *string    `json:"companyLogo"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
	MaxApplications     *int       `json:"maxApplications" validate:"omitempty,gte=0"`
}

// SalaryRangeDTO 薪资闭区间
type SalaryRangeDTO struct {
	Start int64 `json:"start" validate:"gte=0"`
	End   int64 `json:"end" validate:"gtefield=Start"`
}

// JobSearchDTO 职位筛选条件
type JobSearchDTO struct {
	MemberID         string          `json:"memberId" form:"memberId"`
	Locations        []string        `json:"locationList" form:"locationList"`
	TypeList         []string        `json:"typeList" form:"typeList"`
	EducationLevels  []string        `json:"educationList" form:"educationList"`
	EmploymentLevels []string        `json:"employmentList" form:"employmentList"`
	Salary           *SalaryRangeDTO `json:"salaryRange"`
	Text             string          `json:"text" form:"text" validate:"omitempty,max=100"`
}

// JobsInquiry 职位列表查询入参
type JobsInquiry struct {
	PageQuery
	Search JobSearchDTO `json:"search"`
}

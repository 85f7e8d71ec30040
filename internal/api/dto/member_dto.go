package dto

// SignupDTO 注册入参，memberType 只接受 USER / AGENT
type SignupDTO struct {
	MemberNick     string `json:"memberNick" validate:"required,min=3,max=30"`
	MemberPassword string `json:"memberPassword" validate:"required,min=6,max=64"`
	MemberType     string `json:"memberType" validate:"omitempty,oneof=USER AGENT"`
	MemberPhone    string `json:"memberPhone" validate:"omitempty,max=20"`
	MemberFullName string `json:"memberFullName" validate:"omitempty,max=60"`
}

type LoginDTO struct {
	MemberNick     string `json:"memberNick" validate:"required"`
	MemberPassword string `json:"memberPassword" validate:"required"`
}

// MemberUpdateDTO 可更新字段全部可选，空指针不动原值
type MemberUpdateDTO struct {
	MemberNick     *string `json:"memberNick" validate:"omitempty,min=3,max=30"`
	MemberPassword *string `json:"memberPassword" validate:"omitempty,min=6,max=64"`
	MemberPhone    *string `json:"memberPhone" validate:"omitempty,max=20"`
	MemberFullName *string `json:"memberFullName" validate:"omitempty,max=60"`
	MemberImage    *string `json:"memberImage"`
	MemberDesc     *string `json:"memberDesc" validate:"omitempty,max=500"`
}

// MemberAdminUpdateDTO 管理员侧的状态与类型调整
type MemberAdminUpdateDTO struct {
	MemberStatus *string `json:"memberStatus" validate:"omitempty,oneof=ACTIVE BLOCK DELETE"`
	MemberType   *string `json:"memberType" validate:"omitempty,oneof=USER AGENT ADMIN"`
}

// MembersInquiry 会员列表查询入参
type MembersInquiry struct {
	PageQuery
	MemberType string `json:"memberType" form:"memberType" validate:"omitempty,oneof=USER AGENT ADMIN"`
	Text       string `json:"text" form:"text" validate:"omitempty,max=100"`
}

// LoginResult 登录返回
type LoginResult struct {
	AccessToken string      `json:"accessToken"`
	Member      interface{} `json:"member"`
}

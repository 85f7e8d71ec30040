package dto

// ArticleCreateDTO 发帖入参
type ArticleCreateDTO struct {
	ArticleCategory string `json:"articleCategory" validate:"required,oneof=FREE RECOMMEND NEWS HUMOR"`
	ArticleTitle    string `json:"articleTitle" validate:"required,max=100"`
	ArticleContent  string `json:"articleContent" validate:"required,max=10000"`
	ArticleImage    string `json:"articleImage"`
}

// ArticleUpdateDTO 编辑帖子，空指针不动原值
type ArticleUpdateDTO struct {
	ArticleStatus  *string `json:"articleStatus" validate:"omitempty,oneof=ACTIVE DELETE"`
	ArticleTitle   *string `json:"articleTitle" validate:"omitempty,max=100"`
	ArticleContent *string `json:"articleContent" validate:"omitempty,max=10000"`
	ArticleImage   *string `json:"articleImage"`
}

// ArticlesInquiry 帖子列表查询入参，articleStatus 仅管理员查询生效
type ArticlesInquiry struct {
	PageQuery
	MemberID        string `json:"memberId" form:"memberId"`
	ArticleCategory string `json:"articleCategory" form:"articleCategory" validate:"omitempty,oneof=FREE RECOMMEND NEWS HUMOR"`
	ArticleStatus   string `json:"articleStatus" form:"articleStatus" validate:"omitempty,oneof=ACTIVE DELETE"`
	Text            string `json:"text" form:"text" validate:"omitempty,max=100"`
}

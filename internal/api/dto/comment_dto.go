package dto

// CommentCreateDTO 发表评论入参
type CommentCreateDTO struct {
	CommentGroup   string `json:"commentGroup" validate:"required,oneof=MEMBER JOB ARTICLE"`
	CommentRefID   string `json:"commentRefId" validate:"required"`
	CommentContent string `json:"commentContent" validate:"required,max=1000"`
}

// CommentUpdateDTO 只有内容与状态可改
type CommentUpdateDTO struct {
	CommentStatus  *string `json:"commentStatus" validate:"omitempty,oneof=ACTIVE DELETE"`
	CommentContent *string `json:"commentContent" validate:"omitempty,max=1000"`
}

// CommentsInquiry 评论列表查询入参
type CommentsInquiry struct {
	PageQuery
	CommentGroup string `json:"commentGroup" form:"commentGroup" validate:"required,oneof=MEMBER JOB ARTICLE"`
	CommentRefID string `json:"commentRefId" form:"commentRefId" validate:"required"`
}

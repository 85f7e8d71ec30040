package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentStatus string

const (
	CommentStatusActive CommentStatus = "ACTIVE"
	CommentStatusDelete CommentStatus = "DELETE"
)

func (s CommentStatus) Valid() bool {
	return s == CommentStatusActive || s == CommentStatusDelete
}

// Comment 评论模型，commentGroup 决定挂在哪类实体下
type Comment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CommentGroup   TargetGroup        `bson:"commentGroup" json:"commentGroup"`
	CommentRefID   primitive.ObjectID `bson:"commentRefId" json:"commentRefId"`
	MemberID       primitive.ObjectID `bson:"memberId" json:"memberId"`
	CommentStatus  CommentStatus      `bson:"commentStatus" json:"commentStatus"`
	CommentContent string             `bson:"commentContent" json:"commentContent"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`

	MemberData *Member `bson:"memberData,omitempty" json:"memberData,omitempty"`
}

func (Comment) Collection() string {
	return "comments"
}

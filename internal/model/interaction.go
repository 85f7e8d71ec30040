package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TargetGroup 点赞/浏览/评论可指向的实体种类
type TargetGroup string

const (
	TargetGroupMember  TargetGroup = "MEMBER"
	TargetGroupJob     TargetGroup = "JOB"
	TargetGroupArticle TargetGroup = "ARTICLE"
)

func (g TargetGroup) Valid() bool {
	switch g {
	case TargetGroupMember, TargetGroupJob, TargetGroupArticle:
		return true
	}
	return false
}

// Like 点赞记录：每个 (memberId, likeRefId, likeGroup) 至多一条，存在即点赞
type Like struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberID  primitive.ObjectID `bson:"memberId" json:"memberId"`
	LikeRefID primitive.ObjectID `bson:"likeRefId" json:"likeRefId"`
	LikeGroup TargetGroup        `bson:"likeGroup" json:"likeGroup"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (Like) Collection() string {
	return "likes"
}

// View 浏览记录：同一 (memberId, viewRefId, viewGroup) 仅首次插入生效
type View struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberID  primitive.ObjectID `bson:"memberId" json:"memberId"`
	ViewRefID primitive.ObjectID `bson:"viewRefId" json:"viewRefId"`
	ViewGroup TargetGroup        `bson:"viewGroup" json:"viewGroup"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (View) Collection() string {
	return "views"
}

// Follow 关注边，有向：A 关注 B 与 B 关注 A 互相独立
type Follow struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FollowerID  primitive.ObjectID `bson:"followerId" json:"followerId"`
	FollowingID primitive.ObjectID `bson:"followingId" json:"followingId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`

	MeLiked       bool    `bson:"meLiked,omitempty" json:"meLiked"`
	MeFollowed    bool    `bson:"meFollowed,omitempty" json:"meFollowed"`
	FollowerData  *Member `bson:"followerData,omitempty" json:"followerData,omitempty"`
	FollowingData *Member `bson:"followingData,omitempty" json:"followingData,omitempty"`
}

func (Follow) Collection() string {
	return "follows"
}

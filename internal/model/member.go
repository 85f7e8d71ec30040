package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MemberType string

const (
	MemberTypeUser  MemberType = "USER"
	MemberTypeAgent MemberType = "AGENT"
	MemberTypeAdmin MemberType = "ADMIN"
)

func (t MemberType) Valid() bool {
	switch t {
	case MemberTypeUser, MemberTypeAgent, MemberTypeAdmin:
		return true
	}
	return false
}

type MemberStatus string

const (
	MemberStatusActive MemberStatus = "ACTIVE"
	MemberStatusBlock  MemberStatus = "BLOCK"
	MemberStatusDelete MemberStatus = "DELETE"
)

func (s MemberStatus) Valid() bool {
	switch s {
	case MemberStatusActive, MemberStatusBlock, MemberStatusDelete:
		return true
	}
	return false
}

// Member 会员模型
type Member struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberNick       string             `bson:"memberNick" json:"memberNick"` // 唯一昵称
	MemberPassword   string             `bson:"memberPassword" json:"-"`      // bcrypt 哈希，禁止序列化
	MemberType       MemberType         `bson:"memberType" json:"memberType"`
	MemberStatus     MemberStatus       `bson:"memberStatus" json:"memberStatus"`
	MemberPhone      string             `bson:"memberPhone,omitempty" json:"memberPhone,omitempty"`
	MemberFullName   string             `bson:"memberFullName,omitempty" json:"memberFullName,omitempty"`
	MemberImage      string             `bson:"memberImage,omitempty" json:"memberImage,omitempty"`
	MemberDesc       string             `bson:"memberDesc,omitempty" json:"memberDesc,omitempty"`
	MemberViews      int64              `bson:"memberViews" json:"memberViews"`
	MemberLikes      int64              `bson:"memberLikes" json:"memberLikes"`
	MemberFollowers  int64              `bson:"memberFollowers" json:"memberFollowers"`
	MemberFollowings int64              `bson:"memberFollowings" json:"memberFollowings"`
	MemberPostedJobs int64              `bson:"memberPostedJobs" json:"memberPostedJobs"`
	MemberArticles   int64              `bson:"memberArticles" json:"memberArticles"`
	MemberComments   int64              `bson:"memberComments" json:"memberComments"`
	MemberRank       int64              `bson:"memberRank" json:"memberRank"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`

	// 查询期由聚合管道填充的视角字段
	MeLiked    bool `bson:"meLiked,omitempty" json:"meLiked"`
	MeFollowed bool `bson:"meFollowed,omitempty" json:"meFollowed"`
}

func (Member) Collection() string {
	return "members"
}

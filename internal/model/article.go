package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ArticleCategory string

const (
	ArticleCategoryFree      ArticleCategory = "FREE"
	ArticleCategoryRecommend ArticleCategory = "RECOMMEND"
	ArticleCategoryNews      ArticleCategory = "NEWS"
	ArticleCategoryHumor     ArticleCategory = "HUMOR"
)

func (c ArticleCategory) Valid() bool {
	switch c {
	case ArticleCategoryFree, ArticleCategoryRecommend, ArticleCategoryNews, ArticleCategoryHumor:
		return true
	}
	return false
}

type ArticleStatus string

const (
	ArticleStatusActive ArticleStatus = "ACTIVE"
	ArticleStatusDelete ArticleStatus = "DELETE"
)

func (s ArticleStatus) Valid() bool {
	return s == ArticleStatusActive || s == ArticleStatusDelete
}

// BoardArticle 社区文章模型
type BoardArticle struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MemberID        primitive.ObjectID `bson:"memberId" json:"memberId"`
	ArticleCategory ArticleCategory    `bson:"articleCategory" json:"articleCategory"`
	ArticleStatus   ArticleStatus      `bson:"articleStatus" json:"articleStatus"`
	ArticleTitle    string             `bson:"articleTitle" json:"articleTitle"`
	ArticleContent  string             `bson:"articleContent" json:"articleContent"`
	ArticleImage    string             `bson:"articleImage,omitempty" json:"articleImage,omitempty"`
	ArticleViews    int64              `bson:"articleViews" json:"articleViews"`
	ArticleLikes    int64              `bson:"articleLikes" json:"articleLikes"`
	ArticleComments int64              `bson:"articleComments" json:"articleComments"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`

	MeLiked    bool    `bson:"meLiked,omitempty" json:"meLiked"`
	MemberData *Member `bson:"memberData,omitempty" json:"memberData,omitempty"`
}

func (BoardArticle) Collection() string {
	return "boardArticles"
}

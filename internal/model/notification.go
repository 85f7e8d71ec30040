package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationType string

const (
	NotificationTypeLike              NotificationType = "LIKE"
	NotificationTypeComment           NotificationType = "COMMENT"
	NotificationTypeFollow            NotificationType = "FOLLOW"
	NotificationTypeApplication       NotificationType = "APPLICATION"
	NotificationTypeApplicationStatus NotificationType = "APPLICATION_STATUS"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypeLike, NotificationTypeComment, NotificationTypeFollow,
		NotificationTypeApplication, NotificationTypeApplicationStatus:
		return true
	}
	return false
}

type NotificationGroup string

const (
	NotificationGroupMember      NotificationGroup = "MEMBER"
	NotificationGroupArticle     NotificationGroup = "ARTICLE"
	NotificationGroupJob         NotificationGroup = "JOB"
	NotificationGroupApplication NotificationGroup = "APPLICATION"
)

func (g NotificationGroup) Valid() bool {
	switch g {
	case NotificationGroupMember, NotificationGroupArticle,
		NotificationGroupJob, NotificationGroupApplication:
		return true
	}
	return false
}

type NotificationStatus string

const (
	NotificationStatusWait NotificationStatus = "WAIT"
	NotificationStatusRead NotificationStatus = "READ"
)

func (s NotificationStatus) Valid() bool {
	return s == NotificationStatusWait || s == NotificationStatusRead
}

// Notification 通知模型，authorId 是动作发起者，receiverId 是收件人
type Notification struct {
	ID                 primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	AuthorID           primitive.ObjectID  `bson:"authorId" json:"authorId"`
	ReceiverID         primitive.ObjectID  `bson:"receiverId" json:"receiverId"`
	NotificationType   NotificationType    `bson:"notificationType" json:"notificationType"`
	NotificationGroup  NotificationGroup   `bson:"notificationGroup" json:"notificationGroup"`
	NotificationTitle  string              `bson:"notificationTitle" json:"notificationTitle"`
	NotificationDesc   string              `bson:"notificationDesc,omitempty" json:"notificationDesc,omitempty"`
	NotificationStatus NotificationStatus  `bson:"notificationStatus" json:"notificationStatus"`
	JobID              *primitive.ObjectID `bson:"jobId,omitempty" json:"jobId,omitempty"`
	ArticleID          *primitive.ObjectID `bson:"articleId,omitempty" json:"articleId,omitempty"`
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time           `bson:"updatedAt" json:"updatedAt"`

	AuthorData *Member `bson:"authorData,omitempty" json:"authorData,omitempty"`
}

func (Notification) Collection() string {
	return "notifications"
}

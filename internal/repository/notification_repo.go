package repository

import (
	"Hirebase/internal/model"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type NotificationRepo interface {
	Create(ctx context.Context, notification *model.Notification) error
	ListByReceiver(ctx context.Context, filter NotificationFilter, page PageRequest) (*PageResult[model.Notification], error)
	MarkRead(ctx context.Context, receiverID, notificationID primitive.ObjectID) error
	MarkAllRead(ctx context.Context, receiverID primitive.ObjectID) (int64, error)
	UnreadCount(ctx context.Context, receiverID primitive.ObjectID) (int64, error)
	DeleteByCriteria(ctx context.Context, criteria NotificationCriteria) (int64, error)
}

type notificationRepoImpl struct {
	col *mongo.Collection
}

func NewNotificationRepo(db *mongo.Database) NotificationRepo {
	return &notificationRepoImpl{
		col: db.Collection(model.Notification{}.Collection()),
	}
}

func (s *notificationRepoImpl) Create(ctx context.Context, notification *model.Notification) error {
	now := time.Now()
	notification.CreatedAt = now
	notification.UpdatedAt = now
	if notification.NotificationStatus == "" {
		notification.NotificationStatus = model.NotificationStatusWait
	}
	res, err := s.col.InsertOne(ctx, notification)
	if err != nil {
		return err
	}
	notification.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *notificationRepoImpl) ListByReceiver(ctx context.Context, filter NotificationFilter, page PageRequest) (*PageResult[model.Notification], error) {
	page = page.Normalize(NotificationSorts, "createdAt")

	listStages := lookupAuthor("authorId", "authorData")
	return runFacet[model.Notification](ctx, s.col, filter.Match(), page, listStages)
}

func (s *notificationRepoImpl) MarkRead(ctx context.Context, receiverID, notificationID primitive.ObjectID) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": notificationID, "receiverId": receiverID},
		bson.M{"$set": bson.M{
			"notificationStatus": model.NotificationStatusRead,
			"updatedAt":          time.Now(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *notificationRepoImpl) MarkAllRead(ctx context.Context, receiverID primitive.ObjectID) (int64, error) {
	res, err := s.col.UpdateMany(ctx,
		bson.M{"receiverId": receiverID, "notificationStatus": model.NotificationStatusWait},
		bson.M{"$set": bson.M{
			"notificationStatus": model.NotificationStatusRead,
			"updatedAt":          time.Now(),
		}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *notificationRepoImpl) UnreadCount(ctx context.Context, receiverID primitive.ObjectID) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{
		"receiverId":         receiverID,
		"notificationStatus": model.NotificationStatusWait,
	})
}

// DeleteByCriteria 撤回通知，动作取消时把对应通知一并删除
func (s *notificationRepoImpl) DeleteByCriteria(ctx context.Context, criteria NotificationCriteria) (int64, error) {
	match := criteria.Match()
	if len(match) == 0 {
		return 0, nil
	}
	res, err := s.col.DeleteMany(ctx, match)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

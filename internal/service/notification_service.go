package service

import (
	"Hirebase/internal/model"
	"Hirebase/internal/repository"
	"context"
	"errors"
	log "log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationSink 实时推送通道抽象，由 WebSocket 发布端实现
type NotificationSink interface {
	Push(ctx context.Context, notification *model.Notification) error
}

// NoopSink 批处理等无推送场景使用
type NoopSink struct{}

func (NoopSink) Push(context.Context, *model.Notification) error { return nil }

type NotificationService interface {
	// Notify 旁路通知：落库加推送，失败只记日志不打断主流程
	Notify(ctx context.Context, notification *model.Notification)
	// Retract 动作取消时撤回此前发出的通知
	Retract(ctx context.Context, criteria repository.NotificationCriteria)
	GetNotifications(ctx context.Context, receiverID primitive.ObjectID, status model.NotificationStatus, page repository.PageRequest) (*repository.PageResult[model.Notification], error)
	MarkRead(ctx context.Context, receiverID, notificationID primitive.ObjectID) error
	MarkAllRead(ctx context.Context, receiverID primitive.ObjectID) (int64, error)
	UnreadCount(ctx context.Context, receiverID primitive.ObjectID) (int64, error)
}

type NotificationServiceImpl struct {
	notificationRepo repository.NotificationRepo
	sink             NotificationSink
}

func NewNotificationService(notificationRepo repository.NotificationRepo, sink NotificationSink) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		sink:             sink,
	}
}

func (s *NotificationServiceImpl) Notify(ctx context.Context, notification *model.Notification) {
	// 自己给自己的动作不产生通知
	if notification.AuthorID == notification.ReceiverID {
		return
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		log.WarnContext(ctx, "通知写入失败", "type", notification.NotificationType, "err", err)
		return
	}
	if err := s.sink.Push(ctx, notification); err != nil {
		log.WarnContext(ctx, "通知推送失败", "type", notification.NotificationType, "err", err)
	}
}

func (s *NotificationServiceImpl) Retract(ctx context.Context, criteria repository.NotificationCriteria) {
	if _, err := s.notificationRepo.DeleteByCriteria(ctx, criteria); err != nil {
		log.WarnContext(ctx, "通知撤回失败", "err", err)
	}
}

func (s *NotificationServiceImpl) GetNotifications(ctx context.Context, receiverID primitive.ObjectID, status model.NotificationStatus, page repository.PageRequest) (*repository.PageResult[model.Notification], error) {
	if status != "" && !status.Valid() {
		return nil, ErrParamInvalid
	}
	filter := repository.NotificationFilter{ReceiverID: receiverID, Status: status}
	return s.notificationRepo.ListByReceiver(ctx, filter, page)
}

func (s *NotificationServiceImpl) MarkRead(ctx context.Context, receiverID, notificationID primitive.ObjectID) error {
	err := s.notificationRepo.MarkRead(ctx, receiverID, notificationID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotificationNotFound
	}
	return err
}

func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, receiverID primitive.ObjectID) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, receiverID)
}

func (s *NotificationServiceImpl) UnreadCount(ctx context.Context, receiverID primitive.ObjectID) (int64, error) {
	return s.notificationRepo.UnreadCount(ctx, receiverID)
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"Hirebase/internal/model"
	"Hirebase/internal/repository"
	"Hirebase/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeNotificationRepo struct {
	created   []*model.Notification
	deletedBy []repository.NotificationCriteria
	createErr error
}

func (s *fakeNotificationRepo) Create(_ context.Context, notification *model.Notification) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, notification)
	return nil
}

func (s *fakeNotificationRepo) ListByReceiver(_ context.Context, _ repository.NotificationFilter, _ repository.PageRequest) (*repository.PageResult[model.Notification], error) {
	return &repository.PageResult[model.Notification]{List: []*model.Notification{}}, nil
}

func (s *fakeNotificationRepo) MarkRead(_ context.Context, _, _ primitive.ObjectID) error {
	return mongo.ErrNoDocuments
}

func (s *fakeNotificationRepo) MarkAllRead(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return 0, nil
}

func (s *fakeNotificationRepo) UnreadCount(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return 0, nil
}

func (s *fakeNotificationRepo) DeleteByCriteria(_ context.Context, criteria repository.NotificationCriteria) (int64, error) {
	s.deletedBy = append(s.deletedBy, criteria)
	return 1, nil
}

type fakeSink struct {
	pushed []*model.Notification
	err    error
}

func (s *fakeSink) Push(_ context.Context, notification *model.Notification) error {
	if s.err != nil {
		return s.err
	}
	s.pushed = append(s.pushed, notification)
	return nil
}

func TestNotifySkipsSelfNotification(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := service.NewNotificationService(repo, &fakeSink{})
	member := primitive.NewObjectID()

	svc.Notify(context.Background(), &model.Notification{
		AuthorID:   member,
		ReceiverID: member,
	})
	if len(repo.created) != 0 {
		t.Error("self-notification must not be stored")
	}
}

func TestNotifyStoresAndPushes(t *testing.T) {
	repo := &fakeNotificationRepo{}
	sink := &fakeSink{}
	svc := service.NewNotificationService(repo, sink)

	svc.Notify(context.Background(), &model.Notification{
		AuthorID:   primitive.NewObjectID(),
		ReceiverID: primitive.NewObjectID(),
	})
	if len(repo.created) != 1 {
		t.Fatalf("stored %d notifications, want 1", len(repo.created))
	}
	if len(sink.pushed) != 1 {
		t.Errorf("pushed %d notifications, want 1", len(sink.pushed))
	}
}

func TestNotifySwallowsSinkFailure(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := service.NewNotificationService(repo, &fakeSink{err: errors.New("broker down")})

	// 推送失败不影响落库，也不向上抛错
	svc.Notify(context.Background(), &model.Notification{
		AuthorID:   primitive.NewObjectID(),
		ReceiverID: primitive.NewObjectID(),
	})
	if len(repo.created) != 1 {
		t.Errorf("stored %d notifications, want 1", len(repo.created))
	}
}

func TestRetractForwardsCriteria(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := service.NewNotificationService(repo, &fakeSink{})
	author := primitive.NewObjectID()

	svc.Retract(context.Background(), repository.NotificationCriteria{
		AuthorID: author,
		Type:     model.NotificationTypeLike,
		Group:    model.NotificationGroupJob,
	})
	if len(repo.deletedBy) != 1 {
		t.Fatalf("deleted by criteria %d times, want 1", len(repo.deletedBy))
	}
	if repo.deletedBy[0].AuthorID != author || repo.deletedBy[0].Group != model.NotificationGroupJob {
		t.Error("criteria not forwarded intact")
	}
}

func TestGetNotificationsRejectsUnknownStatus(t *testing.T) {
	svc := service.NewNotificationService(&fakeNotificationRepo{}, &fakeSink{})
	_, err := svc.GetNotifications(context.Background(), primitive.NewObjectID(),
		model.NotificationStatus("SNOOZED"), repository.PageRequest{})
	if !errors.Is(err, service.ErrParamInvalid) {
		t.Errorf("err = %v, want ErrParamInvalid", err)
	}
}

func TestMarkReadMissingNotification(t *testing.T) {
	svc := service.NewNotificationService(&fakeNotificationRepo{}, &fakeSink{})
	err := svc.MarkRead(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	if !errors.Is(err, service.ErrNotificationNotFound) {
		t.Errorf("err = %v, want ErrNotificationNotFound", err)
	}
}

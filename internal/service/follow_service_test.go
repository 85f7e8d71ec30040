package service_test

import (
	"context"
	"errors"
	"testing"

	"Hirebase/internal/model"
	"Hirebase/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func followFixture() (*fakeFollowRepo, *fakeMemberRepo, *fakeNotificationSvc, service.FollowService, *model.Member, *model.Member) {
	follower := &model.Member{ID: primitive.NewObjectID(), MemberNick: "follower"}
	followee := &model.Member{ID: primitive.NewObjectID(), MemberNick: "followee"}
	followRepo := newFakeFollowRepo()
	memberRepo := newFakeMemberRepo(follower, followee)
	notifications := &fakeNotificationSvc{}
	svc := service.NewFollowService(followRepo, memberRepo, notifications)
	return followRepo, memberRepo, notifications, svc, follower, followee
}

func TestSubscribeRejectsSelf(t *testing.T) {
	_, _, _, svc, follower, _ := followFixture()
	_, err := svc.Subscribe(context.Background(), follower.ID, follower.ID)
	if !errors.Is(err, service.ErrFollowSelf) {
		t.Errorf("err = %v, want ErrFollowSelf", err)
	}
}

func TestSubscribeRejectsMissingTarget(t *testing.T) {
	_, _, _, svc, follower, _ := followFixture()
	_, err := svc.Subscribe(context.Background(), follower.ID, primitive.NewObjectID())
	if !errors.Is(err, service.ErrMemberNotFound) {
		t.Errorf("err = %v, want ErrMemberNotFound", err)
	}
}

func TestSubscribeAdjustsBothCountersAndNotifies(t *testing.T) {
	_, memberRepo, notifications, svc, follower, followee := followFixture()

	follow, err := svc.Subscribe(context.Background(), follower.ID, followee.ID)
	if err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}
	if follow.FollowerID != follower.ID || follow.FollowingID != followee.ID {
		t.Error("follow edge endpoints are wrong")
	}

	if got := memberRepo.statOf(follower.ID, model.StatMemberFollowings); got != 1 {
		t.Errorf("follower followings = %d, want 1", got)
	}
	if got := memberRepo.statOf(followee.ID, model.StatMemberFollowers); got != 1 {
		t.Errorf("followee followers = %d, want 1", got)
	}

	if len(notifications.notified) != 1 {
		t.Fatalf("notified %d times, want 1", len(notifications.notified))
	}
	n := notifications.notified[0]
	if n.NotificationType != model.NotificationTypeFollow || n.ReceiverID != followee.ID {
		t.Errorf("notification = %s to %s, want FOLLOW to followee", n.NotificationType, n.ReceiverID.Hex())
	}
}

func TestSubscribeTwiceIsConflict(t *testing.T) {
	_, memberRepo, _, svc, follower, followee := followFixture()
	ctx := context.Background()

	if _, err := svc.Subscribe(ctx, follower.ID, followee.ID); err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}
	_, err := svc.Subscribe(ctx, follower.ID, followee.ID)
	if !errors.Is(err, service.ErrFollowExist) {
		t.Errorf("err = %v, want ErrFollowExist", err)
	}
	if got := memberRepo.statOf(followee.ID, model.StatMemberFollowers); got != 1 {
		t.Errorf("duplicate subscribe must not bump counters, followers = %d", got)
	}
}

func TestUnsubscribeRollsBackCountersAndRetracts(t *testing.T) {
	_, memberRepo, notifications, svc, follower, followee := followFixture()
	ctx := context.Background()

	if _, err := svc.Subscribe(ctx, follower.ID, followee.ID); err != nil {
		t.Fatalf("Subscribe returned error: %v", err)
	}
	if err := svc.Unsubscribe(ctx, follower.ID, followee.ID); err != nil {
		t.Fatalf("Unsubscribe returned error: %v", err)
	}

	if got := memberRepo.statOf(follower.ID, model.StatMemberFollowings); got != 0 {
		t.Errorf("follower followings = %d, want 0", got)
	}
	if got := memberRepo.statOf(followee.ID, model.StatMemberFollowers); got != 0 {
		t.Errorf("followee followers = %d, want 0", got)
	}
	if len(notifications.retracted) != 1 {
		t.Fatalf("retracted %d times, want 1", len(notifications.retracted))
	}
	if notifications.retracted[0].Type != model.NotificationTypeFollow {
		t.Errorf("retracted type = %s, want FOLLOW", notifications.retracted[0].Type)
	}
}

func TestUnsubscribeWithoutEdge(t *testing.T) {
	_, _, _, svc, follower, followee := followFixture()
	err := svc.Unsubscribe(context.Background(), follower.ID, followee.ID)
	if !errors.Is(err, service.ErrFollowNotFound) {
		t.Errorf("err = %v, want ErrFollowNotFound", err)
	}
}

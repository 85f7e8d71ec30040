package service_test

import (
	"context"
	"errors"
	"testing"

	"Hirebase/internal/model"
	"Hirebase/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLikeToggleOnThenOff(t *testing.T) {
	repo := newFakeLikeRepo()
	svc := service.NewLikeService(repo)
	ctx := context.Background()
	member := primitive.NewObjectID()
	job := primitive.NewObjectID()

	delta, err := svc.Toggle(ctx, member, job, model.TargetGroupJob)
	if err != nil {
		t.Fatalf("first toggle returned error: %v", err)
	}
	if delta != 1 {
		t.Errorf("first toggle delta = %d, want 1", delta)
	}

	exists, _ := svc.Exists(ctx, member, job, model.TargetGroupJob)
	if !exists {
		t.Error("like must exist after first toggle")
	}

	delta, err = svc.Toggle(ctx, member, job, model.TargetGroupJob)
	if err != nil {
		t.Fatalf("second toggle returned error: %v", err)
	}
	if delta != -1 {
		t.Errorf("second toggle delta = %d, want -1", delta)
	}

	exists, _ = svc.Exists(ctx, member, job, model.TargetGroupJob)
	if exists {
		t.Error("two toggles must restore the original state")
	}
}

func TestLikeToggleIsIndependentPerGroup(t *testing.T) {
	repo := newFakeLikeRepo()
	svc := service.NewLikeService(repo)
	ctx := context.Background()
	member := primitive.NewObjectID()
	ref := primitive.NewObjectID()

	if _, err := svc.Toggle(ctx, member, ref, model.TargetGroupJob); err != nil {
		t.Fatalf("toggle returned error: %v", err)
	}
	delta, err := svc.Toggle(ctx, member, ref, model.TargetGroupArticle)
	if err != nil {
		t.Fatalf("toggle returned error: %v", err)
	}
	if delta != 1 {
		t.Errorf("same ref in another group must be a fresh like, delta = %d", delta)
	}
}

func TestLikeToggleRejectsUnknownGroup(t *testing.T) {
	svc := service.NewLikeService(newFakeLikeRepo())
	_, err := svc.Toggle(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), model.TargetGroup("BANANA"))
	if !errors.Is(err, service.ErrParamInvalid) {
		t.Errorf("err = %v, want ErrParamInvalid", err)
	}
}

func TestViewRecordOncePerMember(t *testing.T) {
	repo := newFakeViewRepo()
	svc := service.NewViewService(repo)
	ctx := context.Background()
	member := primitive.NewObjectID()
	job := primitive.NewObjectID()

	first, err := svc.Record(ctx, member, job, model.TargetGroupJob)
	if err != nil {
		t.Fatalf("first record returned error: %v", err)
	}
	if !first {
		t.Error("first view must count")
	}

	second, err := svc.Record(ctx, member, job, model.TargetGroupJob)
	if err != nil {
		t.Fatalf("second record returned error: %v", err)
	}
	if second {
		t.Error("repeat view must not count")
	}

	other, err := svc.Record(ctx, primitive.NewObjectID(), job, model.TargetGroupJob)
	if err != nil {
		t.Fatalf("record returned error: %v", err)
	}
	if !other {
		t.Error("a different member's view must count")
	}
}

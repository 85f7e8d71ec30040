package service_test

import (
	"context"
	"errors"
	"testing"

	"Hirebase/internal/api/dto"
	"Hirebase/internal/model"
	"Hirebase/internal/pkg/security"
	"Hirebase/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func memberFixture(members ...*model.Member) (*fakeMemberRepo, *fakeNotificationSvc, service.MemberService) {
	memberRepo := newFakeMemberRepo(members...)
	notifications := &fakeNotificationSvc{}
	svc := service.NewMemberService(memberRepo,
		service.NewLikeService(newFakeLikeRepo()),
		service.NewViewService(newFakeViewRepo()),
		notifications)
	return memberRepo, notifications, svc
}

func TestSignupDefaultsToUser(t *testing.T) {
	_, _, svc := memberFixture()
	member, token, err := svc.Signup(context.Background(), &dto.SignupDTO{
		MemberNick:     "newbie",
		MemberPassword: "secret123",
	})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if member.MemberType != model.MemberTypeUser {
		t.Errorf("MemberType = %s, want USER", member.MemberType)
	}
	if member.MemberStatus != model.MemberStatusActive {
		t.Errorf("MemberStatus = %s, want ACTIVE", member.MemberStatus)
	}
	if token == "" {
		t.Error("Signup must issue a token")
	}

	claims, err := security.ValidateToken(token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.MemberID != member.ID.Hex() {
		t.Errorf("token MemberID = %s, want %s", claims.MemberID, member.ID.Hex())
	}
}

func TestSignupStoresHashedPassword(t *testing.T) {
	_, _, svc := memberFixture()
	member, _, err := svc.Signup(context.Background(), &dto.SignupDTO{
		MemberNick:     "hasher",
		MemberPassword: "secret123",
	})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if member.MemberPassword == "secret123" {
		t.Error("password must not be stored in plain text")
	}
	if err = security.CheckPasswordHash("secret123", member.MemberPassword); err != nil {
		t.Error("stored hash must verify against the original password")
	}
}

func TestSignupRejectsAdminType(t *testing.T) {
	_, _, svc := memberFixture()
	_, _, err := svc.Signup(context.Background(), &dto.SignupDTO{
		MemberNick:     "sneaky",
		MemberPassword: "secret123",
		MemberType:     "ADMIN",
	})
	if !errors.Is(err, service.ErrParamInvalid) {
		t.Errorf("err = %v, want ErrParamInvalid", err)
	}
}

func TestSignupDuplicateNick(t *testing.T) {
	_, _, svc := memberFixture(&model.Member{ID: primitive.NewObjectID(), MemberNick: "taken"})
	_, _, err := svc.Signup(context.Background(), &dto.SignupDTO{
		MemberNick:     "taken",
		MemberPassword: "secret123",
	})
	if !errors.Is(err, service.ErrMemberNickExist) {
		t.Errorf("err = %v, want ErrMemberNickExist", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, _ := security.HashPassword("right-one")
	_, _, svc := memberFixture(&model.Member{
		ID:             primitive.NewObjectID(),
		MemberNick:     "holder",
		MemberPassword: hashed,
		MemberStatus:   model.MemberStatusActive,
	})

	_, _, err := svc.Login(context.Background(), &dto.LoginDTO{
		MemberNick:     "holder",
		MemberPassword: "wrong-one",
	})
	if !errors.Is(err, service.ErrPasswordIncorrect) {
		t.Errorf("err = %v, want ErrPasswordIncorrect", err)
	}
}

func TestLoginBlockedMember(t *testing.T) {
	hashed, _ := security.HashPassword("secret123")
	_, _, svc := memberFixture(&model.Member{
		ID:             primitive.NewObjectID(),
		MemberNick:     "banned",
		MemberPassword: hashed,
		MemberStatus:   model.MemberStatusBlock,
	})

	_, _, err := svc.Login(context.Background(), &dto.LoginDTO{
		MemberNick:     "banned",
		MemberPassword: "secret123",
	})
	if !errors.Is(err, service.ErrMemberBlocked) {
		t.Errorf("err = %v, want ErrMemberBlocked", err)
	}
}

func TestLoginDeletedMemberIsNotFound(t *testing.T) {
	hashed, _ := security.HashPassword("secret123")
	_, _, svc := memberFixture(&model.Member{
		ID:             primitive.NewObjectID(),
		MemberNick:     "gone",
		MemberPassword: hashed,
		MemberStatus:   model.MemberStatusDelete,
	})

	_, _, err := svc.Login(context.Background(), &dto.LoginDTO{
		MemberNick:     "gone",
		MemberPassword: "secret123",
	})
	if !errors.Is(err, service.ErrMemberNotFound) {
		t.Errorf("err = %v, want ErrMemberNotFound", err)
	}
}

func TestGetMemberViewCountsOncePerViewer(t *testing.T) {
	target := &model.Member{ID: primitive.NewObjectID(), MemberNick: "target"}
	memberRepo, _, svc := memberFixture(target)
	viewer := primitive.NewObjectID()
	ctx := context.Background()

	if _, err := svc.GetMember(ctx, target.ID, viewer); err != nil {
		t.Fatalf("GetMember returned error: %v", err)
	}
	if _, err := svc.GetMember(ctx, target.ID, viewer); err != nil {
		t.Fatalf("GetMember returned error: %v", err)
	}
	if got := memberRepo.statOf(target.ID, model.StatMemberViews); got != 1 {
		t.Errorf("member views = %d, repeat visits must not count", got)
	}
}

func TestGetMemberSelfVisitDoesNotCount(t *testing.T) {
	target := &model.Member{ID: primitive.NewObjectID(), MemberNick: "selfie"}
	memberRepo, _, svc := memberFixture(target)

	if _, err := svc.GetMember(context.Background(), target.ID, target.ID); err != nil {
		t.Fatalf("GetMember returned error: %v", err)
	}
	if got := memberRepo.statOf(target.ID, model.StatMemberViews); got != 0 {
		t.Errorf("member views = %d, self visit must not count", got)
	}
}

func TestLikeTargetMemberToggleRestoresCounter(t *testing.T) {
	target := &model.Member{ID: primitive.NewObjectID(), MemberNick: "idol"}
	memberRepo, notifications, svc := memberFixture(target)
	viewer := primitive.NewObjectID()
	ctx := context.Background()

	liked, err := svc.LikeTargetMember(ctx, viewer, target.ID)
	if err != nil {
		t.Fatalf("LikeTargetMember returned error: %v", err)
	}
	if !liked.MeLiked {
		t.Error("first like must set meLiked")
	}
	if got := memberRepo.statOf(target.ID, model.StatMemberLikes); got != 1 {
		t.Errorf("member likes = %d, want 1", got)
	}
	if len(notifications.notified) != 1 {
		t.Errorf("notified %d times, want 1", len(notifications.notified))
	}

	unliked, err := svc.LikeTargetMember(ctx, viewer, target.ID)
	if err != nil {
		t.Fatalf("LikeTargetMember returned error: %v", err)
	}
	if unliked.MeLiked {
		t.Error("second like must clear meLiked")
	}
	if got := memberRepo.statOf(target.ID, model.StatMemberLikes); got != 0 {
		t.Errorf("member likes = %d, toggle must restore the counter", got)
	}
	if len(notifications.retracted) != 1 {
		t.Errorf("retracted %d times, want 1", len(notifications.retracted))
	}
}

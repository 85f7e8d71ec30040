package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"Hirebase/internal/api/dto"
	"Hirebase/internal/model"
	"Hirebase/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidStatusTransition(t *testing.T) {
	valid := []struct {
		from, to model.ApplicationStatus
	}{
		{model.ApplicationStatusPending, model.ApplicationStatusReviewing},
		{model.ApplicationStatusPending, model.ApplicationStatusRejected},
		{model.ApplicationStatusReviewing, model.ApplicationStatusInterviewScheduled},
		{model.ApplicationStatusReviewing, model.ApplicationStatusRejected},
		{model.ApplicationStatusInterviewScheduled, model.ApplicationStatusInterviewCompleted},
		{model.ApplicationStatusInterviewCompleted, model.ApplicationStatusOfferSent},
		{model.ApplicationStatusOfferSent, model.ApplicationStatusOfferAccepted},
		{model.ApplicationStatusOfferSent, model.ApplicationStatusOfferDeclined},
		{model.ApplicationStatusOfferAccepted, model.ApplicationStatusAccepted},
		{model.ApplicationStatusOfferDeclined, model.ApplicationStatusRejected},
	}
	for _, c := range valid {
		if !service.ValidStatusTransition(c.from, c.to) {
			t.Errorf("%s -> %s must be allowed", c.from, c.to)
		}
	}

	invalid := []struct {
		from, to model.ApplicationStatus
	}{
		{model.ApplicationStatusPending, model.ApplicationStatusOfferSent},
		{model.ApplicationStatusPending, model.ApplicationStatusAccepted},
		{model.ApplicationStatusReviewing, model.ApplicationStatusPending},
		{model.ApplicationStatusRejected, model.ApplicationStatusReviewing},
		{model.ApplicationStatusAccepted, model.ApplicationStatusRejected},
		{model.ApplicationStatusWithdrawn, model.ApplicationStatusReviewing},
		{model.ApplicationStatusOfferAccepted, model.ApplicationStatusOfferDeclined},
	}
	for _, c := range invalid {
		if service.ValidStatusTransition(c.from, c.to) {
			t.Errorf("%s -> %s must be rejected", c.from, c.to)
		}
	}
}

func applicationFixture(job *model.Job) (*fakeApplicationRepo, service.ApplicationService) {
	applicationRepo := newFakeApplicationRepo()
	jobRepo := newFakeJobRepo(job)
	svc := service.NewApplicationService(applicationRepo, jobRepo, &fakeNotificationSvc{})
	return applicationRepo, svc
}

func openJob() *model.Job {
	return &model.Job{
		ID:        primitive.NewObjectID(),
		MemberID:  primitive.NewObjectID(),
		JobStatus: model.JobStatusOpen,
	}
}

func TestApplyRejectsMissingJob(t *testing.T) {
	_, svc := applicationFixture(openJob())
	_, err := svc.Apply(context.Background(), primitive.NewObjectID(), &dto.ApplyDTO{JobID: primitive.NewObjectID().Hex()})
	if !errors.Is(err, service.ErrJobNotFound) {
		t.Errorf("err = %v, want ErrJobNotFound", err)
	}
}

func TestApplyRejectsClosedJob(t *testing.T) {
	job := openJob()
	job.JobStatus = model.JobStatusClosed
	_, svc := applicationFixture(job)

	_, err := svc.Apply(context.Background(), primitive.NewObjectID(), &dto.ApplyDTO{JobID: job.ID.Hex()})
	if !errors.Is(err, service.ErrJobNotOpen) {
		t.Errorf("err = %v, want ErrJobNotOpen", err)
	}
}

func TestApplyRejectsOwnJob(t *testing.T) {
	job := openJob()
	_, svc := applicationFixture(job)

	_, err := svc.Apply(context.Background(), job.MemberID, &dto.ApplyDTO{JobID: job.ID.Hex()})
	if !errors.Is(err, service.ErrApplyOwnJob) {
		t.Errorf("err = %v, want ErrApplyOwnJob", err)
	}
}

func TestApplyRejectsPassedDeadline(t *testing.T) {
	job := openJob()
	deadline := time.Now().Add(-time.Hour)
	job.ApplicationDeadline = &deadline
	_, svc := applicationFixture(job)

	_, err := svc.Apply(context.Background(), primitive.NewObjectID(), &dto.ApplyDTO{JobID: job.ID.Hex()})
	if !errors.Is(err, service.ErrDeadlinePassed) {
		t.Errorf("err = %v, want ErrDeadlinePassed", err)
	}
}

func TestApplyRejectsFullJob(t *testing.T) {
	job := openJob()
	job.MaxApplications = 2
	applicationRepo, svc := applicationFixture(job)
	applicationRepo.activeCount = 2

	_, err := svc.Apply(context.Background(), primitive.NewObjectID(), &dto.ApplyDTO{JobID: job.ID.Hex()})
	if !errors.Is(err, service.ErrApplicationsFull) {
		t.Errorf("err = %v, want ErrApplicationsFull", err)
	}
}

func TestApplyTwiceIsConflict(t *testing.T) {
	job := openJob()
	applicant := primitive.NewObjectID()
	applicationRepo, svc := applicationFixture(job)
	applicationRepo.applications[primitive.NewObjectID()] = &model.Application{
		JobID:       job.ID,
		ApplicantID: applicant,
		Status:      model.ApplicationStatusPending,
		IsActive:    true,
	}

	_, err := svc.Apply(context.Background(), applicant, &dto.ApplyDTO{JobID: job.ID.Hex()})
	if !errors.Is(err, service.ErrApplicationExist) {
		t.Errorf("err = %v, want ErrApplicationExist", err)
	}
}

func TestWithdrawOnlyByApplicant(t *testing.T) {
	job := openJob()
	applicationRepo, svc := applicationFixture(job)
	applicationID := primitive.NewObjectID()
	applicationRepo.applications[applicationID] = &model.Application{
		ID:          applicationID,
		JobID:       job.ID,
		ApplicantID: primitive.NewObjectID(),
		Status:      model.ApplicationStatusPending,
		IsActive:    true,
	}

	_, err := svc.Withdraw(context.Background(), primitive.NewObjectID(), applicationID)
	if !errors.Is(err, service.ErrNotAuthorized) {
		t.Errorf("err = %v, want ErrNotAuthorized", err)
	}
}

func TestWithdrawOnlyWhilePending(t *testing.T) {
	job := openJob()
	applicant := primitive.NewObjectID()
	applicationRepo, svc := applicationFixture(job)

	for _, status := range []model.ApplicationStatus{
		model.ApplicationStatusReviewing,
		model.ApplicationStatusOfferSent,
		model.ApplicationStatusRejected,
		model.ApplicationStatusWithdrawn,
	} {
		applicationID := primitive.NewObjectID()
		applicationRepo.applications[applicationID] = &model.Application{
			ID:          applicationID,
			JobID:       job.ID,
			ApplicantID: applicant,
			Status:      status,
		}
		_, err := svc.Withdraw(context.Background(), applicant, applicationID)
		if !errors.Is(err, service.ErrWithdrawNotAllowed) {
			t.Errorf("withdraw from %s: err = %v, want ErrWithdrawNotAllowed", status, err)
		}
	}
}

func TestUpdateStatusOnlyByCompany(t *testing.T) {
	job := openJob()
	applicationRepo, svc := applicationFixture(job)
	applicationID := primitive.NewObjectID()
	applicationRepo.applications[applicationID] = &model.Application{
		ID:          applicationID,
		JobID:       job.ID,
		ApplicantID: primitive.NewObjectID(),
		CompanyID:   job.MemberID,
		Status:      model.ApplicationStatusPending,
	}

	_, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID(), applicationID,
		&dto.ApplicationStatusDTO{Status: "REVIEWING"})
	if !errors.Is(err, service.ErrNotAuthorized) {
		t.Errorf("err = %v, want ErrNotAuthorized", err)
	}
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	job := openJob()
	applicationRepo, svc := applicationFixture(job)
	applicationID := primitive.NewObjectID()
	applicationRepo.applications[applicationID] = &model.Application{
		ID:          applicationID,
		JobID:       job.ID,
		ApplicantID: primitive.NewObjectID(),
		CompanyID:   job.MemberID,
		Status:      model.ApplicationStatusPending,
	}

	_, err := svc.UpdateStatus(context.Background(), job.MemberID, applicationID,
		&dto.ApplicationStatusDTO{Status: "OFFER_SENT"})
	if !errors.Is(err, service.ErrStatusTransition) {
		t.Errorf("err = %v, want ErrStatusTransition", err)
	}
}

package service_test

import (
	"testing"
	"time"

	"Hirebase/internal/model"
	"Hirebase/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func baseJob() *model.Job {
	return &model.Job{
		ID:              primitive.NewObjectID(),
		JobType:         model.JobTypeFullTime,
		JobLocation:     model.JobLocationSeoul,
		EducationLevel:  model.EducationBachelor,
		EmploymentLevel: model.EmploymentJunior,
	}
}

func TestSimilarityScoreWeights(t *testing.T) {
	base := baseJob()

	cases := []struct {
		name      string
		candidate *model.Job
		want      int
	}{
		{"identical", &model.Job{
			JobType:         base.JobType,
			JobLocation:     base.JobLocation,
			EducationLevel:  base.EducationLevel,
			EmploymentLevel: base.EmploymentLevel,
		}, 7},
		{"type only", &model.Job{JobType: base.JobType}, 3},
		{"location only", &model.Job{JobLocation: base.JobLocation}, 2},
		{"education only", &model.Job{EducationLevel: base.EducationLevel}, 1},
		{"employment only", &model.Job{EmploymentLevel: base.EmploymentLevel}, 1},
		{"nothing shared", &model.Job{
			JobType:         model.JobTypeIntern,
			JobLocation:     model.JobLocationBusan,
			EducationLevel:  model.EducationMaster,
			EmploymentLevel: model.EmploymentLead,
		}, 0},
	}
	for _, c := range cases {
		if got := service.SimilarityScore(base, c.candidate); got != c.want {
			t.Errorf("%s: score = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestRankSimilarJobsOrdersByScore(t *testing.T) {
	base := baseJob()
	typeOnly := &model.Job{ID: primitive.NewObjectID(), JobType: base.JobType}
	locationOnly := &model.Job{ID: primitive.NewObjectID(), JobLocation: base.JobLocation}
	full := &model.Job{
		ID:              primitive.NewObjectID(),
		JobType:         base.JobType,
		JobLocation:     base.JobLocation,
		EducationLevel:  base.EducationLevel,
		EmploymentLevel: base.EmploymentLevel,
	}

	got := service.RankSimilarJobs(base, []*model.Job{locationOnly, typeOnly, full}, 6)
	if len(got) != 3 {
		t.Fatalf("got %d jobs, want 3", len(got))
	}
	if got[0].ID != full.ID || got[1].ID != typeOnly.ID || got[2].ID != locationOnly.ID {
		t.Error("jobs not ordered by similarity score")
	}
}

func TestRankSimilarJobsBreaksTiesByRecency(t *testing.T) {
	base := baseJob()
	now := time.Now()
	older := &model.Job{
		ID:        primitive.NewObjectID(),
		JobType:   base.JobType,
		JobRank:   100,
		CreatedAt: now.Add(-48 * time.Hour),
	}
	newer := &model.Job{
		ID:        primitive.NewObjectID(),
		JobType:   base.JobType,
		JobRank:   1,
		CreatedAt: now,
	}

	got := service.RankSimilarJobs(base, []*model.Job{older, newer}, 6)
	if got[0].ID != newer.ID {
		t.Error("equal-score jobs must be ordered by createdAt desc")
	}
}

func TestRankSimilarJobsTruncates(t *testing.T) {
	base := baseJob()
	candidates := make([]*model.Job, 10)
	for i := range candidates {
		candidates[i] = &model.Job{ID: primitive.NewObjectID(), JobType: base.JobType}
	}

	got := service.RankSimilarJobs(base, candidates, 6)
	if len(got) != 6 {
		t.Errorf("got %d jobs, want 6", len(got))
	}
}

func TestRankSimilarJobsEmptyInput(t *testing.T) {
	got := service.RankSimilarJobs(baseJob(), nil, 6)
	if len(got) != 0 {
		t.Errorf("got %d jobs, want 0", len(got))
	}
}

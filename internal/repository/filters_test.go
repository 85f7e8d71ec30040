package repository_test

import (
	"testing"

	"Hirebase/internal/model"
	"Hirebase/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func findKey(match bson.D, key string) (interface{}, bool) {
	for _, e := range match {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

func TestMemberFilterAlwaysScopesActive(t *testing.T) {
	match := repository.MemberFilter{}.Match()
	v, ok := findKey(match, "memberStatus")
	if !ok || v != model.MemberStatusActive {
		t.Errorf("memberStatus = %v, want ACTIVE", v)
	}
	if _, ok = findKey(match, "memberNick"); ok {
		t.Error("empty text must not add a nick condition")
	}
}

func TestMemberFilterTextIsCaseInsensitiveRegex(t *testing.T) {
	match := repository.MemberFilter{Text: "kim"}.Match()
	v, ok := findKey(match, "memberNick")
	if !ok {
		t.Fatal("text filter must add a memberNick condition")
	}
	re, ok := v.(primitive.Regex)
	if !ok {
		t.Fatalf("memberNick condition is %T, want primitive.Regex", v)
	}
	if re.Pattern != "kim" || re.Options != "i" {
		t.Errorf("regex = %q/%q, want kim/i", re.Pattern, re.Options)
	}
}

func TestJobFilterDefaultsToOpen(t *testing.T) {
	match := repository.JobFilter{}.Match()
	v, ok := findKey(match, "jobStatus")
	if !ok || v != model.JobStatusOpen {
		t.Errorf("jobStatus = %v, want OPEN", v)
	}
}

func TestJobFilterExplicitStatusWins(t *testing.T) {
	match := repository.JobFilter{Status: model.JobStatusClosed}.Match()
	v, _ := findKey(match, "jobStatus")
	if v != model.JobStatusClosed {
		t.Errorf("jobStatus = %v, want CLOSED", v)
	}
}

func TestJobFilterSalaryRange(t *testing.T) {
	match := repository.JobFilter{Salary: &repository.SalaryRange{Start: 3000, End: 5000}}.Match()
	v, ok := findKey(match, "jobSalary")
	if !ok {
		t.Fatal("salary filter must add a jobSalary condition")
	}
	rng, ok := v.(bson.D)
	if !ok {
		t.Fatalf("jobSalary condition is %T, want bson.D", v)
	}
	gte, _ := findKey(rng, "$gte")
	lte, _ := findKey(rng, "$lte")
	if gte != int64(3000) || lte != int64(5000) {
		t.Errorf("salary range = [%v, %v], want [3000, 5000]", gte, lte)
	}
}

func TestJobFilterListConditions(t *testing.T) {
	match := repository.JobFilter{
		Locations: []model.JobLocation{model.JobLocationSeoul, model.JobLocationBusan},
		TypeList:  []model.JobType{model.JobTypeFullTime},
	}.Match()
	if _, ok := findKey(match, "jobLocation"); !ok {
		t.Error("locations must add a jobLocation condition")
	}
	if _, ok := findKey(match, "jobType"); !ok {
		t.Error("type list must add a jobType condition")
	}
	if _, ok := findKey(match, "educationLevel"); ok {
		t.Error("empty education list must not add a condition")
	}
}

func TestApplicationFilterActiveOnly(t *testing.T) {
	jobID := primitive.NewObjectID()
	match := repository.ApplicationFilter{JobID: jobID, ActiveOnly: true}.Match()
	v, ok := findKey(match, "isActive")
	if !ok || v != true {
		t.Errorf("isActive = %v, want true", v)
	}
	v, _ = findKey(match, "jobId")
	if v != jobID {
		t.Errorf("jobId = %v, want %v", v, jobID)
	}
}

func TestNotificationCriteriaEmptyMatchesNothing(t *testing.T) {
	match := repository.NotificationCriteria{}.Match()
	if len(match) != 0 {
		t.Errorf("empty criteria produced %d conditions, want 0", len(match))
	}
}

func TestNotificationCriteriaFullMatch(t *testing.T) {
	author := primitive.NewObjectID()
	receiver := primitive.NewObjectID()
	jobID := primitive.NewObjectID()
	match := repository.NotificationCriteria{
		AuthorID:   author,
		ReceiverID: receiver,
		Type:       model.NotificationTypeLike,
		Group:      model.NotificationGroupJob,
		JobID:      &jobID,
	}.Match()
	if len(match) != 5 {
		t.Fatalf("criteria produced %d conditions, want 5", len(match))
	}
	v, _ := findKey(match, "notificationGroup")
	if v != model.NotificationGroupJob {
		t.Errorf("notificationGroup = %v, want JOB", v)
	}
	v, _ = findKey(match, "jobId")
	if v != jobID {
		t.Errorf("jobId = %v, want %v", v, jobID)
	}
}

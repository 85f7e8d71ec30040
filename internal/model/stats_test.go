package model_test

import (
	"testing"

	"Hirebase/internal/model"
)

func TestStatKeyValidity(t *testing.T) {
	memberKeys := []model.StatKey{
		model.StatMemberViews,
		model.StatMemberLikes,
		model.StatMemberFollowers,
		model.StatMemberFollowings,
		model.StatMemberPostedJobs,
		model.StatMemberArticles,
		model.StatMemberComments,
	}
	for _, k := range memberKeys {
		if !k.ValidForMember() {
			t.Errorf("%s should be valid for member", k)
		}
		if k.ValidForJob() {
			t.Errorf("%s should not be valid for job", k)
		}
	}

	jobKeys := []model.StatKey{
		model.StatJobViews,
		model.StatJobLikes,
		model.StatJobComments,
		model.StatApplicationCount,
	}
	for _, k := range jobKeys {
		if !k.ValidForJob() {
			t.Errorf("%s should be valid for job", k)
		}
		if k.ValidForArticle() {
			t.Errorf("%s should not be valid for article", k)
		}
	}

	if model.StatKey("memberRank").ValidForMember() {
		t.Error("memberRank is not a counter and must be rejected")
	}
	if model.StatKey("").ValidForJob() {
		t.Error("empty key must be rejected")
	}
}

func TestStatKeyByTargetGroup(t *testing.T) {
	cases := []struct {
		group   model.TargetGroup
		like    model.StatKey
		view    model.StatKey
		comment model.StatKey
	}{
		{model.TargetGroupMember, model.StatMemberLikes, model.StatMemberViews, model.StatMemberComments},
		{model.TargetGroupJob, model.StatJobLikes, model.StatJobViews, model.StatJobComments},
		{model.TargetGroupArticle, model.StatArticleLikes, model.StatArticleViews, model.StatArticleComments},
	}
	for _, c := range cases {
		if got := model.LikeStatKey(c.group); got != c.like {
			t.Errorf("LikeStatKey(%s) = %s, want %s", c.group, got, c.like)
		}
		if got := model.ViewStatKey(c.group); got != c.view {
			t.Errorf("ViewStatKey(%s) = %s, want %s", c.group, got, c.view)
		}
		if got := model.CommentStatKey(c.group); got != c.comment {
			t.Errorf("CommentStatKey(%s) = %s, want %s", c.group, got, c.comment)
		}
	}

	if got := model.LikeStatKey(model.TargetGroup("UNKNOWN")); got != "" {
		t.Errorf("LikeStatKey(UNKNOWN) = %s, want empty", got)
	}
}

func TestJobRankOf(t *testing.T) {
	cases := []struct {
		likes, views, want int64
	}{
		{0, 0, 0},
		{1, 0, 2},
		{0, 1, 1},
		{10, 5, 25},
	}
	for _, c := range cases {
		if got := model.JobRankOf(c.likes, c.views); got != c.want {
			t.Errorf("JobRankOf(%d, %d) = %d, want %d", c.likes, c.views, got, c.want)
		}
	}
}

func TestAgentRankOf(t *testing.T) {
	cases := []struct {
		postedJobs, articles, likes, views, want int64
	}{
		{0, 0, 0, 0, 0},
		{1, 0, 0, 0, 4},
		{0, 1, 0, 0, 3},
		{0, 0, 1, 0, 2},
		{0, 0, 0, 1, 1},
		{2, 3, 4, 5, 30},
	}
	for _, c := range cases {
		got := model.AgentRankOf(c.postedJobs, c.articles, c.likes, c.views)
		if got != c.want {
			t.Errorf("AgentRankOf(%d, %d, %d, %d) = %d, want %d",
				c.postedJobs, c.articles, c.likes, c.views, got, c.want)
		}
	}
}

package repository

import (
	"testing"

	"Hirebase/internal/model"
)

func TestJobRankRecomputeOnlyCoversOpenJobs(t *testing.T) {
	match := jobRankRecomputeMatch()
	if got := match["jobStatus"]; got != model.JobStatusOpen {
		t.Errorf("jobStatus = %v, want OPEN", got)
	}
	if len(match) != 1 {
		t.Errorf("filter has %d conditions, want 1", len(match))
	}
}

func TestAgentRankRecomputeOnlyCoversActiveAgents(t *testing.T) {
	match := agentRankRecomputeMatch()
	if got := match["memberStatus"]; got != model.MemberStatusActive {
		t.Errorf("memberStatus = %v, want ACTIVE", got)
	}
	if got := match["memberType"]; got != model.MemberTypeAgent {
		t.Errorf("memberType = %v, want AGENT", got)
	}
	if len(match) != 2 {
		t.Errorf("filter has %d conditions, want 2", len(match))
	}
}

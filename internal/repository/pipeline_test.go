package repository_test

import (
	"testing"

	"Hirebase/internal/repository"
)

func TestPageRequestNormalizeDefaults(t *testing.T) {
	p := repository.PageRequest{}.Normalize(repository.JobSorts, "createdAt")
	if p.Page != repository.DefaultPage {
		t.Errorf("Page = %d, want %d", p.Page, repository.DefaultPage)
	}
	if p.Limit != repository.DefaultLimit {
		t.Errorf("Limit = %d, want %d", p.Limit, repository.DefaultLimit)
	}
	if p.Sort != "createdAt" {
		t.Errorf("Sort = %q, want createdAt", p.Sort)
	}
	if p.Direction != -1 {
		t.Errorf("Direction = %d, want -1", p.Direction)
	}
}

func TestPageRequestNormalizeClampsLimit(t *testing.T) {
	p := repository.PageRequest{Page: 3, Limit: 10000}.Normalize(repository.JobSorts, "createdAt")
	if p.Limit != repository.MaxLimit {
		t.Errorf("Limit = %d, want %d", p.Limit, repository.MaxLimit)
	}
	if p.Page != 3 {
		t.Errorf("Page = %d, want 3", p.Page)
	}
}

func TestPageRequestNormalizeRejectsUnknownSort(t *testing.T) {
	p := repository.PageRequest{Sort: "memberPassword", Direction: 5}.Normalize(repository.MemberSorts, "memberRank")
	if p.Sort != "memberRank" {
		t.Errorf("Sort = %q, unknown sort must fall back to default", p.Sort)
	}
	if p.Direction != -1 {
		t.Errorf("Direction = %d, want -1", p.Direction)
	}
}

func TestPageRequestNormalizeKeepsAllowedSort(t *testing.T) {
	p := repository.PageRequest{Sort: "jobRank", Direction: 1}.Normalize(repository.JobSorts, "createdAt")
	if p.Sort != "jobRank" {
		t.Errorf("Sort = %q, want jobRank", p.Sort)
	}
	if p.Direction != 1 {
		t.Errorf("Direction = %d, want 1", p.Direction)
	}
}

func TestPageRequestNormalizeNegativePage(t *testing.T) {
	p := repository.PageRequest{Page: -4, Limit: -1}.Normalize(repository.JobSorts, "createdAt")
	if p.Page != repository.DefaultPage || p.Limit != repository.DefaultLimit {
		t.Errorf("Normalize(-4, -1) = (%d, %d), want defaults", p.Page, p.Limit)
	}
}

func TestPageRequestSkip(t *testing.T) {
	cases := []struct {
		page, limit, want int64
	}{
		{1, 10, 0},
		{2, 10, 10},
		{5, 25, 100},
	}
	for _, c := range cases {
		p := repository.PageRequest{Page: c.page, Limit: c.limit}
		if got := p.Skip(); got != c.want {
			t.Errorf("Skip() with page=%d limit=%d = %d, want %d", c.page, c.limit, got, c.want)
		}
	}
}

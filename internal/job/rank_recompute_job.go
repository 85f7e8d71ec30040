package job

import (
	"Hirebase/internal/pkg/consts"
	"Hirebase/internal/pkg/logger"
	"Hirebase/internal/pkg/redis"
	"Hirebase/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// RankRecomputeJob 每日全量重算职位与会员热度分
// 分布式锁保证多实例部署时只跑一份
type RankRecomputeJob struct {
	jobRepo    repository.JobRepo
	memberRepo repository.MemberRepo
}

func NewRankRecomputeJob(jobRepo repository.JobRepo, memberRepo repository.MemberRepo) *RankRecomputeJob {
	return &RankRecomputeJob{
		jobRepo:    jobRepo,
		memberRepo: memberRepo,
	}
}

func (s *RankRecomputeJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	locked, err := redis.TryLock(ctx, consts.RankRecomputeLock, traceID, 10*time.Minute, 1)
	if err != nil {
		log.ErrorContext(ctx, "rank recompute lock error", "err", err)
		return
	}
	if !locked {
		log.InfoContext(ctx, "rank recompute already running elsewhere, skip")
		return
	}
	defer redis.UnLock(ctx, consts.RankRecomputeLock, traceID)

	start := time.Now()
	var jobCount, memberCount int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.jobRepo.RecomputeRanks(gctx)
		jobCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.memberRepo.RecomputeAgentRanks(gctx)
		memberCount = n
		return err
	})
	if err = g.Wait(); err != nil {
		log.ErrorContext(ctx, "rank recompute error", "err", err)
		return
	}

	log.InfoContext(ctx, "rank recompute success",
		"jobs", jobCount,
		"members", memberCount,
		"latency", time.Since(start),
	)
}

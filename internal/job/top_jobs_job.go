package job

import (
	"Hirebase/internal/api/config"
	"Hirebase/internal/pkg/consts"
	"Hirebase/internal/pkg/logger"
	"Hirebase/internal/pkg/redis"
	"Hirebase/internal/repository"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

const defaultTopLimit = 50

// TopJobsJob 出热门职位榜：先写临时键再原子换名，读端永远看到完整榜单
type TopJobsJob struct {
	jobRepo repository.JobRepo
}

func NewTopJobsJob(jobRepo repository.JobRepo) *TopJobsJob {
	return &TopJobsJob{jobRepo: jobRepo}
}

func (s *TopJobsJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	limit := int64(config.Cfg.Batch.TopLimit)
	if limit <= 0 {
		limit = defaultTopLimit
	}

	jobs, err := s.jobRepo.TopJobs(ctx, limit)
	if err != nil {
		log.ErrorContext(ctx, "top jobs query error", "err", err)
		return
	}

	tempKey := consts.TopJobsKey + ":building"
	_ = redis.DeleteKey(ctx, tempKey)
	for _, j := range jobs {
		if err = redis.ZAdd(ctx, tempKey, float64(j.JobRank), j.ID.Hex()); err != nil {
			log.ErrorContext(ctx, "top jobs zadd error", "err", err)
			return
		}
	}
	if len(jobs) > 0 {
		if err = redis.Rename(ctx, tempKey, consts.TopJobsKey); err != nil {
			log.ErrorContext(ctx, "top jobs rename error", "err", err)
			return
		}
	}

	log.InfoContext(ctx, "top jobs refreshed", "count", len(jobs))
}

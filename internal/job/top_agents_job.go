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

// TopAgentsJob 出热门猎头榜
type TopAgentsJob struct {
	memberRepo repository.MemberRepo
}

func NewTopAgentsJob(memberRepo repository.MemberRepo) *TopAgentsJob {
	return &TopAgentsJob{memberRepo: memberRepo}
}

func (s *TopAgentsJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	limit := int64(config.Cfg.Batch.TopLimit)
	if limit <= 0 {
		limit = defaultTopLimit
	}

	agents, err := s.memberRepo.TopAgents(ctx, limit)
	if err != nil {
		log.ErrorContext(ctx, "top agents query error", "err", err)
		return
	}

	tempKey := consts.TopAgentsKey + ":building"
	_ = redis.DeleteKey(ctx, tempKey)
	for _, m := range agents {
		if err = redis.ZAdd(ctx, tempKey, float64(m.MemberRank), m.ID.Hex()); err != nil {
			log.ErrorContext(ctx, "top agents zadd error", "err", err)
			return
		}
	}
	if len(agents) > 0 {
		if err = redis.Rename(ctx, tempKey, consts.TopAgentsKey); err != nil {
			log.ErrorContext(ctx, "top agents rename error", "err", err)
			return
		}
	}

	log.InfoContext(ctx, "top agents refreshed", "count", len(agents))
}

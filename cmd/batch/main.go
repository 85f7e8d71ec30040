package main

import (
	"Hirebase/internal/api/config"
	"Hirebase/internal/job"
	"Hirebase/internal/pkg/logger"
	"Hirebase/internal/pkg/mongo"
	"Hirebase/internal/pkg/redis"
	"Hirebase/internal/repository"
	log "log/slog"
)

// 手工触发一轮批处理：热度分重算 + 榜单刷新。
// 日常调度由 API 进程内的 cron 负责，这里用于运维补跑。
func main() {
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}

	logger.InitLogger()

	if err := redis.InitRedis(config.Cfg.Redis); err != nil {
		log.Error("Fatal error: failed to create redis connection", "err", err)
		panic(err)
	}

	mongoConn, err := mongo.InitMongo(config.Cfg.Mongo)
	if err != nil {
		log.Error("Fatal error: failed to create mongo connection", "err", err)
		panic(err)
	}

	jobRepo := repository.NewJobRepo(mongoConn)
	memberRepo := repository.NewMemberRepo(mongoConn)

	log.Info("Batch run starting...")
	job.NewRankRecomputeJob(jobRepo, memberRepo).Run()
	job.NewTopJobsJob(jobRepo).Run()
	job.NewTopAgentsJob(memberRepo).Run()
	log.Info("Batch run finished.")
}

package cron

import (
	"Hirebase/internal/api/config"
	"Hirebase/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

// 默认调度按凌晨一点错峰执行，先重算再出榜
const (
	defaultRankSpec      = "00 00 01 * * *"
	defaultTopJobsSpec   = "20 00 01 * * *"
	defaultTopAgentsSpec = "40 00 01 * * *"
)

type Manager struct {
	engine       *cron.Cron
	rankJob      *job.RankRecomputeJob
	topJobsJob   *job.TopJobsJob
	topAgentsJob *job.TopAgentsJob
}

func NewCronManager(rankJob *job.RankRecomputeJob, topJobsJob *job.TopJobsJob, topAgentsJob *job.TopAgentsJob) *Manager {
	return &Manager{
		engine:       cron.New(cron.WithSeconds()),
		rankJob:      rankJob,
		topJobsJob:   topJobsJob,
		topAgentsJob: topAgentsJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	cfg := config.Cfg.Batch

	rankSpec := cfg.RankSpec
	if rankSpec == "" {
		rankSpec = defaultRankSpec
	}
	topJobsSpec := cfg.TopJobsSpec
	if topJobsSpec == "" {
		topJobsSpec = defaultTopJobsSpec
	}
	topAgentsSpec := cfg.TopAgentsSpec
	if topAgentsSpec == "" {
		topAgentsSpec = defaultTopAgentsSpec
	}

	if _, err := s.engine.AddJob(rankSpec, s.rankJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob(topJobsSpec, s.topJobsJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob(topAgentsSpec, s.topAgentsJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}

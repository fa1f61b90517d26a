package task

import (
	"github.com/CrowdTrustApp/crowdtrust-app/internal/api"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/config"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/feature"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/logger"
	"github.com/go-co-op/gocron/v2"
)

// Manager 后台任务管理器
type Manager struct {
	scheduler gocron.Scheduler
	api       *api.Client
	user      *feature.UserFeature
	config    *config.Config
}

// NewManager 创建新的任务管理器
func NewManager(apiClient *api.Client, user *feature.UserFeature, cfg *config.Config) *Manager {
	s, err := gocron.NewScheduler()
	if err != nil {
		logger.Fatal("Failed to create scheduler: %v", err)
	}

	return &Manager{
		scheduler: s,
		api:       apiClient,
		user:      user,
		config:    cfg,
	}
}

// Start 启动任务管理器
func Start(apiClient *api.Client, user *feature.UserFeature, cfg *config.Config) *Manager {
	manager := NewManager(apiClient, user, cfg)

	// 注册所有任务
	manager.RegisterJobs()

	// 启动调度器
	manager.scheduler.Start()

	logger.Info("Task manager started successfully")
	return manager
}

// RegisterJobs 注册所有任务
func (m *Manager) RegisterJobs() {
	// 注册令牌刷新任务
	m.RegisterAuthRefreshJob()
}

// RegisterAuthRefreshJob 注册令牌刷新任务
func (m *Manager) RegisterAuthRefreshJob() {
	job := NewAuthRefreshJob(m.api, m.user, m.config)

	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("Failed to register job %s: %v", job.GetName(), err)
	}
}

// Stop 停止任务管理器
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown scheduler: %v", err)
	}
	logger.Info("Task manager stopped")
}

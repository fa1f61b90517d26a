package task

import (
	"context"
	"time"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/api"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/config"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/feature"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/logger"
	"github.com/go-co-op/gocron/v2"
)

// AuthRefreshJob 会话令牌刷新任务。
// 刷新返回404说明会话已失效，静默登出，不作为错误上报。
type AuthRefreshJob struct {
	api    *api.Client
	user   *feature.UserFeature
	config *config.Config
}

// NewAuthRefreshJob 创建令牌刷新任务
func NewAuthRefreshJob(apiClient *api.Client, user *feature.UserFeature, cfg *config.Config) *AuthRefreshJob {
	return &AuthRefreshJob{
		api:    apiClient,
		user:   user,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *AuthRefreshJob) GetName() string {
	return "auth_refresh"
}

// GetSchedule 获取调度配置
func (j *AuthRefreshJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.RefreshInterval) * time.Second)
}

// Execute 执行任务
func (j *AuthRefreshJob) Execute() {
	if j.api.AuthToken() == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if _, err := j.api.RefreshAuth(ctx); err != nil {
		if api.StatusOf(err) == 404 {
			logger.Info("Auth session expired, logging out")
			j.user.LogOut()
			return
		}
		logger.Warn("Failed to refresh auth token: %v", err)
	}
}

package feature

import (
	"context"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/api"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
)

// RewardFeature 回报档位管理
type RewardFeature struct {
	api *api.Client
}

// NewRewardFeature 创建回报功能
func NewRewardFeature(apiClient *api.Client) *RewardFeature {
	return &RewardFeature{api: apiClient}
}

// SubmitCreate 创建回报并追加到项目的rewards_order，
// 回报实体和顺序列表在同一流程内一起更新
func (f *RewardFeature) SubmitCreate(ctx context.Context, project *model.Project, payload model.CreateRewardRequest) (string, error) {
	res, err := f.api.CreateReward(ctx, project.ID, payload)
	if err != nil {
		return "", err
	}
	order := append(append([]string{}, project.RewardsOrder...), res.ID)
	if err := f.api.UpdateProject(ctx, project.ID, model.UpdateProjectRequest{
		RewardsOrder: order,
	}); err != nil {
		return res.ID, err
	}
	project.RewardsOrder = order
	return res.ID, nil
}

// SubmitUpdate 更新回报字段
func (f *RewardFeature) SubmitUpdate(ctx context.Context, id string, payload model.UpdateRewardRequest) error {
	return f.api.UpdateReward(ctx, id, payload)
}

package feature

import (
	"context"
	"fmt"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/api"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/logger"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
)

// SwappedOrder 返回交换from和to位置后的新序列，不修改输入
func SwappedOrder(order []string, from, to int) []string {
	newOrder := make([]string, len(order))
	copy(newOrder, order)
	if from < 0 || to < 0 || from >= len(order) || to >= len(order) {
		return newOrder
	}
	newOrder[from], newOrder[to] = order[to], order[from]
	return newOrder
}

// Editor 项目编辑器。持有被编辑项目的本地视图状态，
// 排序修改先改本地再发请求，失败时回滚到原值并把错误交给调用方。
// 每个编辑会话构造一个Editor，不共享全局状态。
type Editor struct {
	api     *api.Client
	project *model.Project
}

// NewEditor 创建项目编辑器
func NewEditor(apiClient *api.Client) *Editor {
	return &Editor{api: apiClient}
}

// Project 当前被编辑的项目视图状态
func (e *Editor) Project() *model.Project {
	return e.project
}

// SetProject 注入已加载的项目状态
func (e *Editor) SetProject(project *model.Project) {
	e.project = project
}

// LoadProject 加载项目到编辑状态，失败记录日志
func (e *Editor) LoadProject(ctx context.Context, id string) {
	project, err := e.api.GetProject(ctx, id)
	if err != nil {
		logger.Warn("Load project error: %v", err)
		return
	}
	e.project = project
}

// attemptOrderUpdate 乐观更新原语：先应用本地修改，再等请求完成，
// 失败时执行回滚并原样返回错误。三个排序字段的更新共用这一条路径。
func attemptOrderUpdate(apply func(), commit func() error, revert func()) error {
	apply()
	if err := commit(); err != nil {
		revert()
		return err
	}
	return nil
}

// UpdateAssetsOrder 更新资源展示顺序，失败回滚本地顺序并返回错误
func (e *Editor) UpdateAssetsOrder(ctx context.Context, order []string) error {
	if e.project == nil {
		return nil
	}
	originalOrder := e.project.AssetsOrder
	return attemptOrderUpdate(
		func() { e.project.AssetsOrder = order },
		func() error {
			return e.api.UpdateProject(ctx, e.project.ID, model.UpdateProjectRequest{
				AssetsOrder: order,
			})
		},
		func() { e.project.AssetsOrder = originalOrder },
	)
}

// UpdateRewardsOrder 更新回报展示顺序，失败回滚本地顺序并返回错误
func (e *Editor) UpdateRewardsOrder(ctx context.Context, order []string) error {
	if e.project == nil {
		return nil
	}
	originalOrder := e.project.RewardsOrder
	return attemptOrderUpdate(
		func() { e.project.RewardsOrder = order },
		func() error {
			return e.api.UpdateProject(ctx, e.project.ID, model.UpdateProjectRequest{
				RewardsOrder: order,
			})
		},
		func() { e.project.RewardsOrder = originalOrder },
	)
}

// RecordAddAsset 上传完成后把资源记入本地状态：先持久化新顺序，
// 成功后才追加资源元数据，避免顺序更新失败留下一半可见的修改
func (e *Editor) RecordAddAsset(ctx context.Context, asset *model.CreateAssetResponse) error {
	if e.project == nil {
		return nil
	}
	assetsOrder := append(append([]string{}, e.project.AssetsOrder...), asset.ID)
	if err := e.UpdateAssetsOrder(ctx, assetsOrder); err != nil {
		return err
	}
	e.project.Assets = append(e.project.Assets, model.ProjectAssetRelation{
		ID:          asset.ID,
		ContentType: asset.ContentType,
		Size:        asset.Size,
		ProjectID:   asset.ProjectID,
	})
	return nil
}

// RecordDeleteAsset 从顺序和本地集合中移除资源，顺序先在服务端确认
func (e *Editor) RecordDeleteAsset(ctx context.Context, id string) error {
	if e.project == nil {
		return nil
	}
	newOrder := filtered(e.project.AssetsOrder, id)
	err := e.api.UpdateProject(ctx, e.project.ID, model.UpdateProjectRequest{
		AssetsOrder: newOrder,
	})
	if err != nil {
		logger.Warn("Failed to delete asset: %v", err)
		return err
	}
	e.project.AssetsOrder = newOrder
	assets := e.project.Assets[:0:0]
	for _, asset := range e.project.Assets {
		if asset.ID != id {
			assets = append(assets, asset)
		}
	}
	e.project.Assets = assets
	return nil
}

// DeleteReward 删除回报。两步操作：先删除回报资源，再更新rewards_order。
// 删除成功而顺序更新失败时服务端已删除回报，本地状态保留行项以外的部分，
// 错误返回给调用方提示重试。
func (e *Editor) DeleteReward(ctx context.Context, id string) error {
	if e.project == nil {
		return nil
	}
	newOrder := filtered(e.project.RewardsOrder, id)

	if err := e.api.DeleteReward(ctx, id); err != nil {
		logger.Warn("Failed to delete reward: %v", err)
		return err
	}
	if err := e.api.UpdateProject(ctx, e.project.ID, model.UpdateProjectRequest{
		RewardsOrder: newOrder,
	}); err != nil {
		logger.Warn("Reward %s deleted but order update failed: %v", id, err)
		return fmt.Errorf("reward deleted, order update failed: %w", err)
	}

	rewards := e.project.Rewards[:0:0]
	for _, reward := range e.project.Rewards {
		if reward.ID != id {
			rewards = append(rewards, reward)
		}
	}
	e.project.Rewards = rewards
	e.project.RewardsOrder = newOrder
	return nil
}

func filtered(order []string, id string) []string {
	newOrder := make([]string, 0, len(order))
	for _, orderId := range order {
		if orderId != id {
			newOrder = append(newOrder, orderId)
		}
	}
	return newOrder
}

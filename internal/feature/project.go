package feature

import (
	"context"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/api"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/cart"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/logger"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
)

// ProjectFeature 项目浏览与支持记录对账
type ProjectFeature struct {
	api  *api.Client
	cart *cart.Store
}

// NewProjectFeature 创建项目功能
func NewProjectFeature(apiClient *api.Client, cartStore *cart.Store) *ProjectFeature {
	return &ProjectFeature{api: apiClient, cart: cartStore}
}

// ListProjects 获取项目列表
func (f *ProjectFeature) ListProjects(ctx context.Context, payload model.ListProjectsRequest, params *ListProjectParams) {
	params.Error = ""
	params.Loading = true
	defer func() { params.Loading = false }()

	res, err := f.api.ListProjects(ctx, payload)
	if err != nil {
		params.Error = ErrorKey(err)
		return
	}
	params.Projects = res.Results
}

// GetProject 获取项目详情
func (f *ProjectFeature) GetProject(ctx context.Context, id string, params *GetProjectParams) {
	params.Error = ""
	params.Loading = true
	defer func() { params.Loading = false }()

	res, err := f.api.GetProject(ctx, id)
	if err != nil {
		params.Error = ErrorKey(err)
		return
	}
	params.Project = res
}

// GetPledge 加载当前用户在项目上的支持记录。
// 未登录时直接返回；本地购物车为空时用支持记录的行项初始化购物车。
// 网络失败只记录日志，UI继续使用现有购物车状态。
func (f *ProjectFeature) GetPledge(ctx context.Context, projectId string, params *GetPledgeParams) {
	userId := f.api.UserId()
	if userId == "" {
		return
	}
	params.Loading = true
	defer func() { params.Loading = false }()

	res, err := f.api.ListPledges(ctx, model.ListPledgesRequest{
		UserID:    userId,
		ProjectID: projectId,
	})
	if err != nil {
		logger.Warn("Failed to get pledge: %v", err)
		return
	}
	if len(res.Results) == 0 {
		return
	}
	pledge := res.Results[0]
	params.Pledge = &pledge

	// 本地购物车为空时用支持记录初始化
	f.cart.PopulateCart(projectId, pledge.Items)
}

// CompareCartPledge 判断支持记录是否应作为回报选择的权威来源。
// 两者从不合并，返回true表示整体采用支持记录，否则整体采用本地购物车。
func (f *ProjectFeature) CompareCartPledge(projectId string, pledge *model.Pledge) bool {
	items := f.cart.Items(projectId)

	// 支持记录不存在时购物车就是唯一来源
	if pledge == nil {
		return false
	}
	pledgeItems := pledge.Items

	// 购物车非空而支持记录为空，购物车优先
	if len(items) > 0 && len(pledgeItems) == 0 {
		return false
	}
	// 购物车为空而支持记录非空，支持记录兜底
	if len(items) == 0 && len(pledgeItems) > 0 {
		return true
	}
	// 数量不同视为购物车尚未同步
	if len(items) != len(pledgeItems) {
		return false
	}

	quantities := map[string]int64{}
	for _, item := range items {
		quantities[item.RewardID] = item.Quantity
	}
	for _, pledgeItem := range pledgeItems {
		quantity, ok := quantities[pledgeItem.RewardID]
		if !ok || pledgeItem.Quantity != quantity {
			return false
		}
	}
	return true
}

package feature

import (
	"context"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/api"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/cart"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/logger"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
)

// UserFeature 用户资料与会话管理
type UserFeature struct {
	api  *api.Client
	cart *cart.Store

	user *model.User
}

// NewUserFeature 创建用户功能
func NewUserFeature(apiClient *api.Client, cartStore *cart.Store) *UserFeature {
	return &UserFeature{api: apiClient, cart: cartStore}
}

// User 当前登录用户，未加载时为nil
func (f *UserFeature) User() *model.User {
	return f.user
}

// LogOut 清除会话并重置本地购物车
func (f *UserFeature) LogOut() {
	f.api.ClearAuth()
	f.cart.ResetCart()
	f.user = nil
}

// GetUser 加载当前用户资料。令牌失效（404）时登出而不报错
func (f *UserFeature) GetUser(ctx context.Context) {
	id := f.api.UserId()
	if id == "" {
		logger.Error("User ID not found")
		return
	}
	user, err := f.api.GetUser(ctx, id)
	if err != nil {
		if api.StatusOf(err) == 404 {
			f.LogOut()
		}
		return
	}
	// 没有邮箱字段说明会话已失效
	if user.Email == "" {
		f.LogOut()
		return
	}
	f.user = user
}

// UpdateUser 更新用户资料并合并到本地状态
func (f *UserFeature) UpdateUser(ctx context.Context, payload model.UpdateUserRequest) error {
	id := f.api.UserId()
	if id == "" {
		logger.Error("User ID not found")
		return nil
	}
	if err := f.api.UpdateUser(ctx, id, payload); err != nil {
		return err
	}
	if f.user == nil {
		return nil
	}
	if payload.Name != nil {
		f.user.Name = *payload.Name
	}
	if payload.Description != nil {
		f.user.Description = *payload.Description
	}
	if payload.Link != nil {
		f.user.Link = *payload.Link
	}
	if payload.Location != nil {
		f.user.Location = *payload.Location
	}
	if payload.Email != nil {
		f.user.Email = *payload.Email
	}
	if payload.EthAddress != nil {
		f.user.EthAddress = *payload.EthAddress
	}
	return nil
}

// LoadCreatedProjects 加载当前用户创建的项目，按创建时间倒序
func (f *UserFeature) LoadCreatedProjects(ctx context.Context, params *ListProjectParams) {
	params.Loading = true
	defer func() { params.Loading = false }()

	res, err := f.api.ListProjects(ctx, model.ListProjectsRequest{
		UserID:    f.api.UserId(),
		Column:    "created_at",
		Direction: model.SortDesc,
	})
	if err != nil {
		logger.Warn("Load project error: %v", err)
		return
	}
	params.Projects = res.Results
}

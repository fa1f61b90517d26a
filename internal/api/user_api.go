package api

import (
	"context"
	"net/http"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
)

// GetUser 获取用户详情
func (c *Client) GetUser(ctx context.Context, id string) (*model.User, error) {
	var res model.User
	if err := c.request(ctx, http.MethodGet, "users/"+id, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateUser 更新用户资料
func (c *Client) UpdateUser(ctx context.Context, id string, payload model.UpdateUserRequest) error {
	return c.request(ctx, http.MethodPatch, "users/"+id, nil, payload, nil)
}

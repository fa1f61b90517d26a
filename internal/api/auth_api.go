package api

import (
	"context"
	"net/http"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
)

// Login 登录，成功后客户端持有会话令牌
func (c *Client) Login(ctx context.Context, payload model.LoginRequest) (*model.LoginResponse, error) {
	var res model.LoginResponse
	if err := c.request(ctx, http.MethodPost, "auth/logins", nil, payload, &res); err != nil {
		return nil, err
	}
	c.SetAuth(res.AuthToken, res.UserID)
	return &res, nil
}

// RefreshAuth 刷新会话令牌
func (c *Client) RefreshAuth(ctx context.Context) (*model.LoginResponse, error) {
	var res model.LoginResponse
	if err := c.request(ctx, http.MethodPost, "auth/logins/refresh", nil, nil, &res); err != nil {
		return nil, err
	}
	c.SetAuth(res.AuthToken, res.UserID)
	return &res, nil
}

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
)

// CreateRewardAsset 注册回报资源，返回签名上传地址
func (c *Client) CreateRewardAsset(ctx context.Context, payload model.CreateRewardAssetRequest) (*model.CreateAssetResponse, error) {
	var res model.CreateAssetResponse
	if err := c.request(ctx, http.MethodPost, "reward-assets", nil, payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// VerifyRewardAsset 校验回报资源已上传到存储
func (c *Client) VerifyRewardAsset(ctx context.Context, id string) (*model.VerifyAssetResponse, error) {
	var res model.VerifyAssetResponse
	path := fmt.Sprintf("reward-assets/%s/actions/verify", id)
	if err := c.request(ctx, http.MethodPost, path, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteRewardAsset 删除回报资源记录及其存储对象
func (c *Client) DeleteRewardAsset(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "reward-assets/"+id, nil, nil, nil)
}

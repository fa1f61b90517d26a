package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
)

// CreateProjectAsset 注册项目资源，返回签名上传地址
func (c *Client) CreateProjectAsset(ctx context.Context, payload model.CreateAssetRequest) (*model.CreateAssetResponse, error) {
	var res model.CreateAssetResponse
	if err := c.request(ctx, http.MethodPost, "project-assets", nil, payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// VerifyProjectAsset 校验项目资源已上传到存储
func (c *Client) VerifyProjectAsset(ctx context.Context, id string) (*model.VerifyAssetResponse, error) {
	var res model.VerifyAssetResponse
	path := fmt.Sprintf("project-assets/%s/actions/verify", id)
	if err := c.request(ctx, http.MethodPost, path, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateProjectAsset 替换项目资源内容
func (c *Client) UpdateProjectAsset(ctx context.Context, id string, payload model.ReplaceAssetRequest) (*model.CreateAssetResponse, error) {
	var res model.CreateAssetResponse
	if err := c.request(ctx, http.MethodPatch, "project-assets/"+id, nil, payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteProjectAsset 删除项目资源记录及其存储对象
func (c *Client) DeleteProjectAsset(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "project-assets/"+id, nil, nil, nil)
}

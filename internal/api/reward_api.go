package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
)

// CreateReward 在项目下创建回报
func (c *Client) CreateReward(ctx context.Context, projectId string, payload model.CreateRewardRequest) (*model.CreateRewardResponse, error) {
	var res model.CreateRewardResponse
	path := fmt.Sprintf("projects/%s/rewards", projectId)
	if err := c.request(ctx, http.MethodPost, path, nil, payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateReward 更新回报
func (c *Client) UpdateReward(ctx context.Context, id string, payload model.UpdateRewardRequest) error {
	return c.request(ctx, http.MethodPatch, "rewards/"+id, nil, payload, nil)
}

// DeleteReward 删除回报
func (c *Client) DeleteReward(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "rewards/"+id, nil, nil, nil)
}

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
)

// GetPledge 获取支持记录详情
func (c *Client) GetPledge(ctx context.Context, id string) (*model.Pledge, error) {
	var res model.Pledge
	if err := c.request(ctx, http.MethodGet, "pledges/"+id, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListPledges 获取支持记录列表，可按用户和项目过滤
func (c *Client) ListPledges(ctx context.Context, query model.ListPledgesRequest) (*model.ListPledgesResponse, error) {
	params := url.Values{}
	if query.UserID != "" {
		params.Set("user_id", query.UserID)
	}
	if query.ProjectID != "" {
		params.Set("project_id", query.ProjectID)
	}

	var res model.ListPledgesResponse
	if err := c.request(ctx, http.MethodGet, "pledges", params, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

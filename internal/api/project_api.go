package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
)

// ListProjects 获取项目列表
func (c *Client) ListProjects(ctx context.Context, query model.ListProjectsRequest) (*model.ListProjectsResponse, error) {
	params := url.Values{}
	if query.UserID != "" {
		params.Set("user_id", query.UserID)
	}
	for _, status := range query.Statuses {
		params.Add("statuses", string(status))
	}
	if query.Column != "" {
		params.Set("column", query.Column)
	}
	if query.Direction != "" {
		params.Set("direction", string(query.Direction))
	}
	if query.From > 0 {
		params.Set("from", strconv.Itoa(query.From))
	}
	if query.To > 0 {
		params.Set("to", strconv.Itoa(query.To))
	}

	var res model.ListProjectsResponse
	if err := c.request(ctx, http.MethodGet, "projects", params, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetProject 获取项目详情
func (c *Client) GetProject(ctx context.Context, id string) (*model.Project, error) {
	var res model.Project
	if err := c.request(ctx, http.MethodGet, "projects/"+id, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateProject 创建项目
func (c *Client) CreateProject(ctx context.Context, payload model.CreateProjectRequest) (*model.CreateProjectResponse, error) {
	var res model.CreateProjectResponse
	if err := c.request(ctx, http.MethodPost, "projects", nil, payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateProject 更新项目
func (c *Client) UpdateProject(ctx context.Context, id string, payload model.UpdateProjectRequest) error {
	return c.request(ctx, http.MethodPatch, "projects/"+id, nil, payload, nil)
}

// BackProject 支持项目，服务端创建支持记录
func (c *Client) BackProject(ctx context.Context, projectId string, payload model.BackProjectRequest) (*model.BackProjectResponse, error) {
	var res model.BackProjectResponse
	path := fmt.Sprintf("projects/%s/actions/back", projectId)
	if err := c.request(ctx, http.MethodPost, path, nil, payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

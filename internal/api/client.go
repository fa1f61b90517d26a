package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/config"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
)

// Error API错误，对应服务端 {code, message, status} 响应体
type Error struct {
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
}

// StatusOf 返回错误对应的HTTP状态码，非API错误返回0
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// CodeOf 返回错误对应的错误码，非API错误返回空串
func CodeOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}

// Client CrowdTrust API客户端
type Client struct {
	baseUrl string
	http    *http.Client

	mu        sync.RWMutex
	authToken string
	userId    string
}

// New 创建API客户端
func New(cfg config.ApiConfig) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseUrl: strings.TrimSuffix(cfg.BaseUrl, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetAuth 设置当前会话的令牌和用户ID
func (c *Client) SetAuth(token string, userId string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authToken = token
	c.userId = userId
}

// ClearAuth 清除会话，用于登出
func (c *Client) ClearAuth() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authToken = ""
	c.userId = ""
}

// UserId 当前登录用户ID，未登录返回空串
func (c *Client) UserId() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userId
}

// AuthToken 当前会话令牌
func (c *Client) AuthToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.authToken
}

// request 发起API请求并解析JSON响应，out为nil时丢弃响应体
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	reqUrl := fmt.Sprintf("%s/api/%s", c.baseUrl, strings.TrimPrefix(path, "/"))
	if len(query) > 0 {
		reqUrl += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqUrl, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.AuthToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return decodeError(res)
	}
	if out == nil {
		io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeError 解析错误响应体，无法解析时退化为状态码错误
func decodeError(res *http.Response) error {
	data, _ := io.ReadAll(res.Body)

	var body model.ErrorResponse
	if err := json.Unmarshal(data, &body); err == nil && body.Status != 0 {
		return &Error{Code: body.Code, Message: body.Message, Status: body.Status}
	}
	return &Error{
		Code:    "Unknown",
		Message: strings.TrimSpace(string(data)),
		Status:  res.StatusCode,
	}
}

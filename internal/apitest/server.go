package apitest

import (
	"fmt"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Server 进程内的CrowdTrust API测试替身。
// 实现客户端用到的资源路由和签名上传端点，状态保存在内存里。
type Server struct {
	engine *gin.Engine
	server *httptest.Server

	mu        sync.Mutex
	users     map[string]*model.User
	passwords map[string]string
	tokens    map[string]string
	projects  map[string]*model.Project
	pledges   map[string]*model.Pledge
	assets    map[string]*model.Asset
	storage   map[string][]byte

	// failUpdateStatus 非零时下一次项目更新请求返回该状态码，用于回滚路径测试
	failUpdateStatus int
}

// NewServer 启动测试服务器
func NewServer() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		engine:    gin.New(),
		users:     map[string]*model.User{},
		passwords: map[string]string{},
		tokens:    map[string]string{},
		projects:  map[string]*model.Project{},
		pledges:   map[string]*model.Pledge{},
		assets:    map[string]*model.Asset{},
		storage:   map[string][]byte{},
	}
	s.routes()
	s.server = httptest.NewServer(s.engine)
	return s
}

// URL 服务器基础地址
func (s *Server) URL() string {
	return s.server.URL
}

// Close 关闭服务器
func (s *Server) Close() {
	s.server.Close()
}

// FailNextProjectUpdate 让下一次项目更新请求失败
func (s *Server) FailNextProjectUpdate(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failUpdateStatus = status
}

// SeedUser 注入用户并返回登录令牌
func (s *Server) SeedUser(email, password string) (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	token := uuid.NewString()
	s.users[id] = &model.User{
		ID:             id,
		Email:          email,
		Name:           "Test User",
		EmailConfirmed: true,
		UserType:       model.UserTypeUser,
		UserStatus:     model.UserStatusActive,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	s.passwords[email] = password
	s.tokens[token] = id
	return id, token
}

// RemoveUser 移除用户，持有其令牌的后续请求将404
func (s *Server) RemoveUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

// SeedProject 注入项目
func (s *Server) SeedProject(project *model.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if project.Rewards == nil {
		project.Rewards = []model.Reward{}
	}
	if project.Assets == nil {
		project.Assets = []model.ProjectAssetRelation{}
	}
	s.projects[project.ID] = project
}

// SeedPledge 注入支持记录
func (s *Server) SeedPledge(pledge *model.Pledge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pledge.ID == "" {
		pledge.ID = uuid.NewString()
	}
	s.pledges[pledge.ID] = pledge
}

// Project 读取服务端项目状态
func (s *Server) Project(id string) *model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.projects[id]
}

// Asset 读取服务端资源状态
func (s *Server) Asset(id string) *model.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assets[id]
}

// StoredObject 读取存储对象字节
func (s *Server) StoredObject(id string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storage[id]
}

func abortError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, model.ErrorResponse{
		Code:    code,
		Message: message,
		Status:  status,
	})
}

// authRequired 校验Authorization头并把用户ID放进上下文
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
			abortError(c, 401, "Unauthorized", "Unauthorized")
			return
		}
		s.mu.Lock()
		userId, ok := s.tokens[header[len(prefix):]]
		s.mu.Unlock()
		if !ok {
			abortError(c, 401, "InvalidAuth", "Invalid auth token")
			return
		}
		c.Set("user_id", userId)
		c.Next()
	}
}

func (s *Server) routes() {
	// 签名上传端点，授权在URL签名里，不走认证中间件
	s.engine.PUT("/storage/:id", s.uploadObject)

	api := s.engine.Group("/api")
	{
		api.POST("/auth/logins", s.login)
		api.POST("/auth/logins/refresh", s.authRequired(), s.refreshAuth)

		api.GET("/users/:id", s.authRequired(), s.getUser)
		api.PATCH("/users/:id", s.authRequired(), s.updateUser)

		projects := api.Group("/projects")
		{
			projects.GET("", s.listProjects)
			projects.GET("/:id", s.getProject)
			projects.POST("", s.authRequired(), s.createProject)
			projects.PATCH("/:id", s.authRequired(), s.updateProject)
			projects.POST("/:id/actions/back", s.authRequired(), s.backProject)
			projects.POST("/:id/rewards", s.authRequired(), s.createReward)
		}

		api.PATCH("/rewards/:id", s.authRequired(), s.updateReward)
		api.DELETE("/rewards/:id", s.authRequired(), s.deleteReward)

		api.GET("/pledges", s.authRequired(), s.listPledges)
		api.GET("/pledges/:id", s.authRequired(), s.getPledge)

		api.POST("/project-assets", s.authRequired(), s.createProjectAsset)
		api.PATCH("/project-assets/:id", s.authRequired(), s.replaceAsset)
		api.POST("/project-assets/:id/actions/verify", s.authRequired(), s.verifyAsset)
		api.DELETE("/project-assets/:id", s.authRequired(), s.deleteAsset)

		api.POST("/reward-assets", s.authRequired(), s.createRewardAsset)
		api.POST("/reward-assets/:id/actions/verify", s.authRequired(), s.verifyAsset)
		api.DELETE("/reward-assets/:id", s.authRequired(), s.deleteAsset)
	}
}

func (s *Server) signedUrl(assetId string) string {
	expiry := time.Now().Add(600 * time.Second).Unix()
	return fmt.Sprintf("%s/storage/%s?expires=%d&signature=%s", s.server.URL, assetId, expiry, uuid.NewString())
}

package apitest

import (
	"io"
	"time"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) login(c *gin.Context) {
	var payload model.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortError(c, 400, "InvalidFormData", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	password, ok := s.passwords[payload.Email]
	if !ok || password != payload.Password {
		abortError(c, 401, "InvalidAuth", "Invalid email or password")
		return
	}
	var userId string
	for id, user := range s.users {
		if user.Email == payload.Email {
			userId = id
		}
	}
	token := uuid.NewString()
	s.tokens[token] = userId
	c.JSON(201, model.LoginResponse{AuthToken: token, UserID: userId})
}

func (s *Server) refreshAuth(c *gin.Context) {
	userId := c.GetString("user_id")

	s.mu.Lock()
	defer s.mu.Unlock()

	// 用户已不存在时返回404，客户端据此登出
	if _, ok := s.users[userId]; !ok {
		abortError(c, 404, "None", "Login not found")
		return
	}
	token := uuid.NewString()
	s.tokens[token] = userId
	c.JSON(201, model.LoginResponse{AuthToken: token, UserID: userId})
}

func (s *Server) getUser(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[c.Param("id")]
	if !ok {
		abortError(c, 404, "None", "User not found")
		return
	}
	c.JSON(200, user)
}

func (s *Server) updateUser(c *gin.Context) {
	var payload model.UpdateUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortError(c, 400, "InvalidFormData", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[c.Param("id")]
	if !ok {
		abortError(c, 404, "None", "User not found")
		return
	}
	if payload.Name != nil {
		user.Name = *payload.Name
	}
	if payload.Description != nil {
		user.Description = *payload.Description
	}
	if payload.Link != nil {
		user.Link = *payload.Link
	}
	if payload.Location != nil {
		user.Location = *payload.Location
	}
	if payload.Email != nil {
		user.Email = *payload.Email
	}
	if payload.EthAddress != nil {
		user.EthAddress = *payload.EthAddress
	}
	user.UpdatedAt = time.Now()
	c.JSON(200, user)
}

func (s *Server) listProjects(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userId := c.Query("user_id")
	results := []model.Project{}
	for _, project := range s.projects {
		if userId != "" && project.UserID != userId {
			continue
		}
		results = append(results, *project)
	}
	c.JSON(200, model.ListProjectsResponse{Total: int64(len(results)), Results: results})
}

func (s *Server) getProject(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[c.Param("id")]
	if !ok {
		abortError(c, 404, "None", "Project not found")
		return
	}
	c.JSON(200, project)
}

func (s *Server) createProject(c *gin.Context) {
	var payload model.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortError(c, 400, "InvalidFormData", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project := &model.Project{
		ID:               uuid.NewString(),
		UserID:           c.GetString("user_id"),
		Name:             payload.Name,
		Description:      payload.Description,
		Blurb:            payload.Blurb,
		Category:         payload.Category,
		FundingGoal:      payload.FundingGoal,
		StartTime:        payload.StartTime,
		Duration:         payload.Duration,
		BaseCurrency:     payload.BaseCurrency,
		PaymentAddress:   payload.PaymentAddress,
		TotalPledged:     "0",
		Status:           model.ProjectStatusInitial,
		BlockchainStatus: model.BlockchainStatusNone,
		Rewards:          []model.Reward{},
		RewardsOrder:     []string{},
		Assets:           []model.ProjectAssetRelation{},
		AssetsOrder:      []string{},
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	s.projects[project.ID] = project
	c.JSON(201, model.CreateProjectResponse{ID: project.ID})
}

func (s *Server) updateProject(c *gin.Context) {
	var payload model.UpdateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortError(c, 400, "InvalidFormData", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failUpdateStatus != 0 {
		status := s.failUpdateStatus
		s.failUpdateStatus = 0
		abortError(c, status, "RestrictedStatus", "Update rejected")
		return
	}

	project, ok := s.projects[c.Param("id")]
	if !ok {
		abortError(c, 404, "None", "Project not found")
		return
	}
	if project.UserID != c.GetString("user_id") {
		abortError(c, 403, "Unauthorized", "Forbidden")
		return
	}
	if payload.Name != nil {
		project.Name = *payload.Name
	}
	if payload.Description != nil {
		project.Description = *payload.Description
	}
	if payload.Blurb != nil {
		project.Blurb = *payload.Blurb
	}
	if payload.Status != nil {
		project.Status = *payload.Status
	}
	if payload.AssetsOrder != nil {
		project.AssetsOrder = payload.AssetsOrder
	}
	if payload.RewardsOrder != nil {
		project.RewardsOrder = payload.RewardsOrder
	}
	project.UpdatedAt = time.Now()
	c.JSON(200, project)
}

func (s *Server) backProject(c *gin.Context) {
	var payload model.BackProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortError(c, 400, "InvalidFormData", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[c.Param("id")]
	if !ok {
		abortError(c, 404, "None", "Project not found")
		return
	}

	pledge := &model.Pledge{
		ID:        uuid.NewString(),
		ProjectID: project.ID,
		UserID:    c.GetString("user_id"),
		Comment:   payload.Comment,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	for _, item := range payload.Rewards {
		found := false
		for _, reward := range project.Rewards {
			if reward.ID == item.RewardID {
				found = true
				pledge.Items = append(pledge.Items, model.PledgeItem{
					ID:               uuid.NewString(),
					PledgeID:         pledge.ID,
					RewardID:         item.RewardID,
					Quantity:         item.Quantity,
					PaidPrice:        reward.Price,
					PaidCurrency:     project.BaseCurrency,
					BlockchainStatus: model.BlockchainStatusPending,
					CreatedAt:        time.Now(),
					UpdatedAt:        time.Now(),
				})
			}
		}
		if !found {
			abortError(c, 400, "UnknownReward", "Pledge reward not found")
			return
		}
	}
	s.pledges[pledge.ID] = pledge
	project.BackerCount++
	c.JSON(201, model.BackProjectResponse{ID: pledge.ID})
}

func (s *Server) createReward(c *gin.Context) {
	var payload model.CreateRewardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortError(c, 400, "InvalidFormData", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[c.Param("id")]
	if !ok {
		abortError(c, 404, "None", "Project not found")
		return
	}
	reward := model.Reward{
		ID:           uuid.NewString(),
		Name:         payload.Name,
		Description:  payload.Description,
		DeliveryTime: payload.DeliveryTime,
		Price:        payload.Price,
		BackerLimit:  payload.BackerLimit,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	project.Rewards = append(project.Rewards, reward)
	c.JSON(201, model.CreateRewardResponse{ID: reward.ID})
}

func (s *Server) updateReward(c *gin.Context) {
	var payload model.UpdateRewardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortError(c, 400, "InvalidFormData", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	for _, project := range s.projects {
		for i := range project.Rewards {
			if project.Rewards[i].ID != id {
				continue
			}
			reward := &project.Rewards[i]
			if payload.Name != nil {
				reward.Name = *payload.Name
			}
			if payload.Description != nil {
				reward.Description = *payload.Description
			}
			if payload.DeliveryTime != nil {
				reward.DeliveryTime = *payload.DeliveryTime
			}
			if payload.Price != nil {
				reward.Price = *payload.Price
			}
			if payload.BackerLimit != nil {
				reward.BackerLimit = *payload.BackerLimit
			}
			reward.UpdatedAt = time.Now()
			c.JSON(200, reward)
			return
		}
	}
	abortError(c, 404, "None", "Reward not found")
}

func (s *Server) deleteReward(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	for _, project := range s.projects {
		for i := range project.Rewards {
			if project.Rewards[i].ID != id {
				continue
			}
			project.Rewards = append(project.Rewards[:i], project.Rewards[i+1:]...)
			c.Status(204)
			return
		}
	}
	abortError(c, 404, "None", "Reward not found")
}

func (s *Server) listPledges(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userId := c.Query("user_id")
	projectId := c.Query("project_id")
	results := []model.Pledge{}
	for _, pledge := range s.pledges {
		if userId != "" && pledge.UserID != userId {
			continue
		}
		if projectId != "" && pledge.ProjectID != projectId {
			continue
		}
		results = append(results, *pledge)
	}
	c.JSON(200, model.ListPledgesResponse{Total: int64(len(results)), Results: results})
}

func (s *Server) getPledge(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pledge, ok := s.pledges[c.Param("id")]
	if !ok {
		abortError(c, 404, "None", "Pledge not found")
		return
	}
	c.JSON(200, pledge)
}

func (s *Server) createProjectAsset(c *gin.Context) {
	var payload model.CreateAssetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortError(c, 400, "InvalidFormData", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[payload.ProjectID]; !ok {
		abortError(c, 400, "None", "Project does not exist")
		return
	}
	asset := &model.Asset{
		ID:              uuid.NewString(),
		Size:            payload.ContentSize,
		ContentType:     payload.ContentType,
		State:           model.AssetStateCreated,
		UserID:          c.GetString("user_id"),
		ProjectID:       payload.ProjectID,
		UploadExpiresAt: time.Now().Add(600 * time.Second),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	s.assets[asset.ID] = asset
	c.JSON(201, model.CreateAssetResponse{
		ID:          asset.ID,
		SignedURL:   s.signedUrl(asset.ID),
		ContentType: asset.ContentType,
		Size:        asset.Size,
		ProjectID:   asset.ProjectID,
	})
}

func (s *Server) createRewardAsset(c *gin.Context) {
	var payload model.CreateRewardAssetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortError(c, 400, "InvalidFormData", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	asset := &model.Asset{
		ID:              uuid.NewString(),
		Size:            payload.ContentSize,
		ContentType:     payload.ContentType,
		State:           model.AssetStateCreated,
		UserID:          c.GetString("user_id"),
		RewardID:        payload.RewardID,
		UploadExpiresAt: time.Now().Add(600 * time.Second),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	s.assets[asset.ID] = asset
	c.JSON(201, model.CreateAssetResponse{
		ID:          asset.ID,
		SignedURL:   s.signedUrl(asset.ID),
		ContentType: asset.ContentType,
		Size:        asset.Size,
		RewardID:    asset.RewardID,
	})
}

// replaceAsset 换发同一资源的签名上传地址并作废已有存储对象，
// 资源回到Created状态等待重新直传和校验
func (s *Server) replaceAsset(c *gin.Context) {
	var payload model.ReplaceAssetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortError(c, 400, "InvalidFormData", err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	asset, ok := s.assets[c.Param("id")]
	if !ok {
		abortError(c, 404, "None", "Asset not found")
		return
	}
	asset.Size = payload.ContentSize
	asset.ContentType = payload.ContentType
	asset.State = model.AssetStateCreated
	asset.UploadExpiresAt = time.Now().Add(600 * time.Second)
	asset.UpdatedAt = time.Now()
	delete(s.storage, asset.ID)
	c.JSON(200, model.CreateAssetResponse{
		ID:          asset.ID,
		SignedURL:   s.signedUrl(asset.ID),
		ContentType: asset.ContentType,
		Size:        asset.Size,
		ProjectID:   asset.ProjectID,
		RewardID:    asset.RewardID,
	})
}

// uploadObject 签名地址的直传目标，保存原始字节
func (s *Server) uploadObject(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abortError(c, 400, "InvalidFormData", "Failed to read body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	if _, ok := s.assets[id]; !ok {
		abortError(c, 404, "None", "Asset not found")
		return
	}
	s.storage[id] = data
	c.Status(200)
}

func (s *Server) verifyAsset(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, ok := s.assets[c.Param("id")]
	if !ok {
		abortError(c, 404, "None", "Asset not found")
		return
	}
	_, exists := s.storage[asset.ID]
	if exists {
		asset.State = model.AssetStateUploaded
	} else if time.Now().After(asset.UploadExpiresAt) {
		asset.State = model.AssetStateExpired
	}
	asset.UpdatedAt = time.Now()
	c.JSON(200, model.VerifyAssetResponse{Verified: exists})
}

func (s *Server) deleteAsset(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	if _, ok := s.assets[id]; !ok {
		abortError(c, 404, "None", "Asset not found")
		return
	}
	delete(s.assets, id)
	delete(s.storage, id)
	c.Status(204)
}

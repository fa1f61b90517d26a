package model

// SortDirection 排序方向
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ErrorResponse API错误响应体
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ListProjectsRequest 项目列表查询参数
type ListProjectsRequest struct {
	UserID    string          `json:"user_id,omitempty"`
	Statuses  []ProjectStatus `json:"statuses,omitempty"`
	Column    string          `json:"column,omitempty"`
	Direction SortDirection   `json:"direction,omitempty"`
	From      int             `json:"from,omitempty"`
	To        int             `json:"to,omitempty"`
}

// ListProjectsResponse 项目列表响应
type ListProjectsResponse struct {
	Total   int64     `json:"total"`
	Results []Project `json:"results"`
}

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Blurb          string          `json:"blurb"`
	Category       ProjectCategory `json:"category"`
	FundingGoal    string          `json:"funding_goal"`
	StartTime      int64           `json:"start_time"`
	Duration       int64           `json:"duration"`
	BaseCurrency   PaymentCurrency `json:"base_currency"`
	PaymentAddress string          `json:"payment_address"`
}

// CreateProjectResponse 创建项目响应
type CreateProjectResponse struct {
	ID string `json:"id"`
}

// UpdateProjectRequest 更新项目请求，零值字段不更新
type UpdateProjectRequest struct {
	Name             *string           `json:"name,omitempty"`
	Description      *string           `json:"description,omitempty"`
	Blurb            *string           `json:"blurb,omitempty"`
	Category         *ProjectCategory  `json:"category,omitempty"`
	FundingGoal      *string           `json:"funding_goal,omitempty"`
	StartTime        *int64            `json:"start_time,omitempty"`
	Duration         *int64            `json:"duration,omitempty"`
	Status           *ProjectStatus    `json:"status,omitempty"`
	BlockchainStatus *BlockchainStatus `json:"blockchain_status,omitempty"`
	TransactionHash  *string           `json:"transaction_hash,omitempty"`
	AssetsOrder      []string          `json:"assets_order,omitempty"`
	RewardsOrder     []string          `json:"rewards_order,omitempty"`
}

// CreateRewardRequest 创建回报请求
type CreateRewardRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	DeliveryTime int64  `json:"delivery_time"`
	Price        string `json:"price"`
	BackerLimit  int64  `json:"backer_limit"`
}

// CreateRewardResponse 创建回报响应
type CreateRewardResponse struct {
	ID string `json:"id"`
}

// UpdateRewardRequest 更新回报请求
type UpdateRewardRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	DeliveryTime *int64  `json:"delivery_time,omitempty"`
	Price        *string `json:"price,omitempty"`
	BackerLimit  *int64  `json:"backer_limit,omitempty"`
}

// ListPledgesRequest 支持记录列表查询参数
type ListPledgesRequest struct {
	UserID    string `json:"user_id,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
}

// ListPledgesResponse 支持记录列表响应
type ListPledgesResponse struct {
	Total   int64    `json:"total"`
	Results []Pledge `json:"results"`
}

// BackProjectReward 支持项目时选中的回报行项
type BackProjectReward struct {
	RewardID string `json:"reward_id"`
	Quantity int64  `json:"quantity"`
}

// BackProjectRequest 支持项目请求，服务端据此创建支持记录
type BackProjectRequest struct {
	Comment string              `json:"comment,omitempty"`
	Rewards []BackProjectReward `json:"rewards"`
}

// BackProjectResponse 支持项目响应
type BackProjectResponse struct {
	ID string `json:"id"`
}

// CreateAssetRequest 创建项目资源请求
type CreateAssetRequest struct {
	ContentSize int64            `json:"content_size"`
	ContentType AssetContentType `json:"content_type"`
	ProjectID   string           `json:"project_id"`
}

// CreateRewardAssetRequest 创建回报资源请求
type CreateRewardAssetRequest struct {
	ContentSize int64            `json:"content_size"`
	ContentType AssetContentType `json:"content_type"`
	RewardID    string           `json:"reward_id"`
}

// CreateAssetResponse 创建资源响应，包含限时签名上传地址
type CreateAssetResponse struct {
	ID          string           `json:"id"`
	SignedURL   string           `json:"signed_url"`
	ContentType AssetContentType `json:"content_type"`
	Size        int64            `json:"size"`
	ProjectID   string           `json:"project_id,omitempty"`
	RewardID    string           `json:"reward_id,omitempty"`
}

// VerifyAssetResponse 校验资源响应
type VerifyAssetResponse struct {
	Verified bool `json:"verified"`
}

// ReplaceAssetRequest 替换资源请求
type ReplaceAssetRequest struct {
	Name        string           `json:"name"`
	ContentSize int64            `json:"content_size"`
	ContentType AssetContentType `json:"content_type"`
}

// UpdateUserRequest 更新用户请求
type UpdateUserRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty"`
	Location    *string `json:"location,omitempty"`
	Email       *string `json:"email,omitempty"`
	EthAddress  *string `json:"eth_address,omitempty"`
	OldPassword *string `json:"old_password,omitempty"`
	NewPassword *string `json:"new_password,omitempty"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	AuthToken string `json:"auth_token"`
	UserID    string `json:"user_id"`
}

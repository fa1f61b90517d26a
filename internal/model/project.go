package model

import "time"

// ProjectStatus 项目状态
type ProjectStatus string

const (
	ProjectStatusInitial   ProjectStatus = "Initial"
	ProjectStatusReview    ProjectStatus = "Review"
	ProjectStatusApproved  ProjectStatus = "Approved"
	ProjectStatusDenied    ProjectStatus = "Denied"
	ProjectStatusPrelaunch ProjectStatus = "Prelaunch"
	ProjectStatusActive    ProjectStatus = "Active"
	ProjectStatusComplete  ProjectStatus = "Complete"
)

// BlockchainStatus 链上同步状态
type BlockchainStatus string

const (
	BlockchainStatusNone    BlockchainStatus = "None"
	BlockchainStatusPending BlockchainStatus = "Pending"
	BlockchainStatusError   BlockchainStatus = "Error"
	BlockchainStatusSuccess BlockchainStatus = "Success"
)

// PaymentCurrency 支付币种
type PaymentCurrency string

const (
	PaymentCurrencyEthereum PaymentCurrency = "Ethereum"
	PaymentCurrencyTsc      PaymentCurrency = "Tsc"
)

// ProjectCategory 项目分类
type ProjectCategory string

const (
	ProjectCategoryTechnology ProjectCategory = "Technology"
	ProjectCategoryDigital    ProjectCategory = "Digital"
	ProjectCategoryFashion    ProjectCategory = "Fashion"
	ProjectCategoryGames      ProjectCategory = "Games"
	ProjectCategoryArtDesign  ProjectCategory = "ArtDesign"
	ProjectCategoryMusic      ProjectCategory = "Music"
	ProjectCategoryMisc       ProjectCategory = "Misc"
)

// ProjectAssetRelation 项目资源关联信息
type ProjectAssetRelation struct {
	ID          string           `json:"id"`
	ContentType AssetContentType `json:"content_type"`
	Size        int64            `json:"size"`
	ProjectID   string           `json:"project_id"`
}

// Project 项目视图模型
//
// AssetsOrder 和 RewardsOrder 是展示顺序的唯一权威来源，
// Assets/Rewards 集合本身按 id 索引，无序。
type Project struct {
	ID               string                 `json:"id"`
	UserID           string                 `json:"user_id"`
	Name             string                 `json:"name"`
	Description      string                 `json:"description"`
	Blurb            string                 `json:"blurb"`
	ContractAddress  string                 `json:"contract_address"`
	PaymentAddress   string                 `json:"payment_address"`
	Category         ProjectCategory        `json:"category"`
	FundingGoal      string                 `json:"funding_goal"`
	StartTime        int64                  `json:"start_time"`
	Duration         int64                  `json:"duration"`
	TotalPledged     string                 `json:"total_pledged"`
	BackerCount      int64                  `json:"backer_count"`
	BaseCurrency     PaymentCurrency        `json:"base_currency"`
	Status           ProjectStatus          `json:"status"`
	BlockchainStatus BlockchainStatus       `json:"blockchain_status"`
	TransactionHash  string                 `json:"transaction_hash,omitempty"`
	Rewards          []Reward               `json:"rewards"`
	RewardsOrder     []string               `json:"rewards_order"`
	Assets           []ProjectAssetRelation `json:"assets"`
	AssetsOrder      []string               `json:"assets_order"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

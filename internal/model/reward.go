package model

import "time"

// Reward 回报档位视图模型
type Reward struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	DeliveryTime int64                `json:"delivery_time"`
	Price        string               `json:"price"`
	BackerLimit  int64                `json:"backer_limit"`
	BackerCount  int64                `json:"backer_count"`
	Image        *RewardAssetRelation `json:"image,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// RewardAssetRelation 回报资源关联信息
type RewardAssetRelation struct {
	ID          string           `json:"id"`
	ContentType AssetContentType `json:"content_type"`
	Size        int64            `json:"size"`
	RewardID    string           `json:"reward_id"`
}

package model

import "time"

// Pledge 支持记录视图模型，服务端数据，客户端只读
type Pledge struct {
	ID        string       `json:"id"`
	ProjectID string       `json:"project_id"`
	UserID    string       `json:"user_id"`
	Comment   string       `json:"comment"`
	Items     []PledgeItem `json:"pledge_items"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// PledgeItem 支持记录的回报行项
type PledgeItem struct {
	ID               string           `json:"id"`
	PledgeID         string           `json:"pledge_id"`
	RewardID         string           `json:"reward_id"`
	Quantity         int64            `json:"quantity"`
	PaidPrice        string           `json:"paid_price"`
	PaidCurrency     PaymentCurrency  `json:"paid_currency"`
	BlockchainStatus BlockchainStatus `json:"blockchain_status"`
	TransactionHash  string           `json:"transaction_hash,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

package model

import "time"

// UserType 用户类型
type UserType string

const (
	UserTypeUser  UserType = "User"
	UserTypeAdmin UserType = "Admin"
)

// UserStatus 用户状态
type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusBlocked  UserStatus = "Blocked"
	UserStatusRemoved  UserStatus = "Removed"
	UserStatusDisabled UserStatus = "Disabled"
)

// User 用户视图模型
type User struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Link           string     `json:"link"`
	Location       string     `json:"location"`
	Email          string     `json:"email"`
	EthAddress     string     `json:"eth_address"`
	EmailConfirmed bool       `json:"email_confirmed"`
	UserType       UserType   `json:"user_type"`
	UserStatus     UserStatus `json:"user_status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

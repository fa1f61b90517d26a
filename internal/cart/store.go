package cart

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/CrowdTrustApp/crowdtrust-app/internal/config"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/logger"
	"github.com/CrowdTrustApp/crowdtrust-app/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// CartItem 购物车行项
type CartItem struct {
	RewardID string `json:"rewardId"`
	Quantity int64  `json:"quantity"`
}

// ProjectCart 单个项目的回报选择，Items按插入顺序保存
type ProjectCart struct {
	Items []CartItem `json:"items"`
}

// CartState 全部购物车状态，整体序列化持久化
type CartState struct {
	Projects map[string]*ProjectCart `json:"projects"`
}

func cartInit() CartState {
	return CartState{Projects: map[string]*ProjectCart{}}
}

// storeEntry 持久化记录，按存储名+结构版本定位
type storeEntry struct {
	Name      string `gorm:"primaryKey"`
	Version   int
	Data      string
	UpdatedAt time.Time
}

func (storeEntry) TableName() string {
	return "store_entries"
}

// Store 本地购物车存储，跨页面会话保留用户的回报选择
type Store struct {
	db      *gorm.DB
	name    string
	version int

	mu    sync.Mutex
	state CartState
}

// NewStore 打开本地存储并加载购物车状态，
// 结构版本不匹配时丢弃旧数据并重新初始化
func NewStore(cfg config.CartConfig) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open cart database: %w", err)
	}

	if err := db.AutoMigrate(&storeEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate cart database: %w", err)
	}

	s := &Store{
		db:      db,
		name:    cfg.Name,
		version: cfg.Version,
		state:   cartInit(),
	}
	s.load()
	return s, nil
}

// load 读取持久化状态，版本不匹配或解析失败时保持空状态
func (s *Store) load() {
	var entry storeEntry
	err := s.db.First(&entry, "name = ?", s.name).Error
	if err != nil {
		return
	}
	if entry.Version != s.version {
		logger.Info("Cart store version changed (%d -> %d), resetting", entry.Version, s.version)
		s.db.Delete(&storeEntry{}, "name = ?", s.name)
		return
	}

	var state CartState
	if err := json.Unmarshal([]byte(entry.Data), &state); err != nil {
		logger.Warn("Failed to decode cart state, resetting: %v", err)
		return
	}
	if state.Projects == nil {
		state.Projects = map[string]*ProjectCart{}
	}
	s.state = state
}

// persist 将整个状态写回本地存储，失败记录日志不中断调用方
func (s *Store) persist() {
	data, err := json.Marshal(s.state)
	if err != nil {
		logger.Error("Failed to encode cart state: %v", err)
		return
	}
	entry := storeEntry{
		Name:      s.name,
		Version:   s.version,
		Data:      string(data),
		UpdatedAt: time.Now(),
	}
	if err := s.db.Save(&entry).Error; err != nil {
		logger.Error("Failed to persist cart state: %v", err)
	}
}

// ResetCart 清空所有项目购物车，登出时调用
func (s *Store) ResetCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = cartInit()
	s.persist()
}

// PopulateCart 当整个存储为空时，用服务端支持记录的行项初始化项目购物车；
// 已有任何项目购物车时不做任何事，避免覆盖本地未提交的选择
func (s *Store) PopulateCart(projectId string, items []model.PledgeItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.state.Projects) != 0 {
		return
	}
	project := &ProjectCart{Items: []CartItem{}}
	for _, item := range items {
		project.Items = append(project.Items, CartItem{
			RewardID: item.RewardID,
			Quantity: item.Quantity,
		})
	}
	s.state.Projects[projectId] = project
	s.persist()
}

// AddItem 向项目购物车追加行项，不按rewardId去重，
// 修改已有行项数量要用UpdateQuantity
func (s *Store) AddItem(projectId, rewardId string, quantity int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project := s.state.Projects[projectId]
	if project == nil {
		project = &ProjectCart{Items: []CartItem{}}
	}
	project.Items = append(project.Items, CartItem{RewardID: rewardId, Quantity: quantity})
	s.state.Projects[projectId] = project
	s.persist()
}

// UpdateQuantity 覆盖已有行项的数量，行项不存在时不创建
func (s *Store) UpdateQuantity(projectId, rewardId string, quantity int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project := s.state.Projects[projectId]
	if project == nil {
		project = &ProjectCart{Items: []CartItem{}}
	}
	for i := range project.Items {
		if project.Items[i].RewardID == rewardId {
			project.Items[i].Quantity = quantity
			break
		}
	}
	s.state.Projects[projectId] = project
	s.persist()
}

// RemoveItem 移除匹配的行项，不存在时静默返回
func (s *Store) RemoveItem(projectId, rewardId string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	project := s.state.Projects[projectId]
	if project == nil {
		project = &ProjectCart{Items: []CartItem{}}
	}
	items := project.Items[:0:0]
	for _, item := range project.Items {
		if item.RewardID != rewardId {
			items = append(items, item)
		}
	}
	project.Items = items
	s.state.Projects[projectId] = project
	s.persist()
}

// Items 返回项目购物车行项的副本
func (s *Store) Items(projectId string) []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	project := s.state.Projects[projectId]
	if project == nil {
		return nil
	}
	items := make([]CartItem, len(project.Items))
	copy(items, project.Items)
	return items
}

// IsEmpty 整个存储是否为空（没有任何项目购物车）
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Projects) == 0
}

// ProjectIds 当前持有购物车的项目ID列表
func (s *Store) ProjectIds() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.state.Projects))
	for id := range s.state.Projects {
		ids = append(ids, id)
	}
	return ids
}

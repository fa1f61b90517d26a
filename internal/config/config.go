package config

import (
	"github.com/CrowdTrustApp/crowdtrust-app/internal/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Api    ApiConfig    `mapstructure:"api"`
	Assets AssetConfig  `mapstructure:"assets"`
	Chain  ChainConfig  `mapstructure:"chain"`
	Cart   CartConfig   `mapstructure:"cart"`
	Task   TaskConfig   `mapstructure:"task"`
	Upload UploadConfig `mapstructure:"upload"`
	Log    LogConfig    `mapstructure:"log"`
}

// ApiConfig 平台API配置
type ApiConfig struct {
	BaseUrl string `mapstructure:"base_url"` // API服务地址
	Timeout int    `mapstructure:"timeout"`  // 请求超时（秒）
}

// AssetConfig 资源存储配置
type AssetConfig struct {
	ProjectBaseUrl string `mapstructure:"project_base_url"` // 项目资源公开地址
	RewardBaseUrl  string `mapstructure:"reward_base_url"`  // 回报资源公开地址
}

// ChainConfig 链配置
type ChainConfig struct {
	ChainId    int64  `mapstructure:"chain_id"`    // 链ID
	RpcUrl     string `mapstructure:"rpc_url"`     // RPC节点URL
	Contract   string `mapstructure:"contract"`    // CrowdTrust合约地址
	PrivateKey string `mapstructure:"private_key"` // 签名私钥
}

// CartConfig 本地购物车存储配置
type CartConfig struct {
	Path    string `mapstructure:"path"`    // sqlite数据库文件路径
	Name    string `mapstructure:"name"`    // 存储名称
	Version int    `mapstructure:"version"` // 持久化结构版本，不匹配时丢弃旧数据
}

// TaskConfig 后台任务配置
type TaskConfig struct {
	RefreshInterval int `mapstructure:"refresh_interval"` // 令牌刷新间隔（秒）
}

// UploadConfig 上传校验配置
type UploadConfig struct {
	MaxImageSize int64 `mapstructure:"max_image_size"` // 图片大小上限（字节）
	MaxVideoSize int64 `mapstructure:"max_video_size"` // 视频大小上限（字节）
	Concurrency  int   `mapstructure:"concurrency"`    // 批量上传并发数
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别: debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // 输出目标: stdout, stderr, file
	File   string `mapstructure:"file"`   // 日志文件路径（当output为file时使用）
}

// GetLevel 实现 logger.LogConfig 接口
func (l LogConfig) GetLevel() string {
	return l.Level
}

// GetOutput 实现 logger.LogConfig 接口
func (l LogConfig) GetOutput() string {
	return l.Output
}

// GetFile 实现 logger.LogConfig 接口
func (l LogConfig) GetFile() string {
	return l.File
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/crowdtrust")

	// 设置默认值
	viper.SetDefault("api.base_url", "http://localhost:3000")
	viper.SetDefault("api.timeout", 30)
	viper.SetDefault("assets.project_base_url", "")
	viper.SetDefault("assets.reward_base_url", "")
	viper.SetDefault("chain.chain_id", 1)
	viper.SetDefault("chain.rpc_url", "")
	viper.SetDefault("chain.contract", "")
	viper.SetDefault("cart.path", "crowdtrust.db")
	viper.SetDefault("cart.name", "cart")
	viper.SetDefault("cart.version", 3)
	viper.SetDefault("task.refresh_interval", 300)
	viper.SetDefault("upload.max_image_size", 16*1024*1024)
	viper.SetDefault("upload.max_video_size", 150*1024*1024)
	viper.SetDefault("upload.concurrency", 4)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	// 自动读取环境变量
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}

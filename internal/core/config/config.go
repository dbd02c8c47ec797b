package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}
type AdminHTTP struct {
	Host string
	Port int
}

type App struct {
	Name  string
	Env   string
	HTTP  HTTP
	Admin AdminHTTP
}

type Log struct {
	Level string
	JSON  bool
	File  LogFile
}

// LogFile 文件落盘 + 切割（可选）
type LogFile struct {
	Enable     bool
	Path       string
	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups"`
	MaxAgeDays int `mapstructure:"max_age_days"`
	Compress   bool
}

type JWT struct {
	Secret        string
	Issuer        string
	Audience      string
	ExpiryInHours int `mapstructure:"expiry_in_hours"`
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// 参考数据缓存 TTL（秒）
	RefDataTTLSec int `mapstructure:"refdata_ttl_sec"`
}

type DB struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	Seed               bool
	LogLevel           string
}

// LLM 外部生成式 AI 端点（OpenAI 兼容协议）
type LLM struct {
	BaseURL    string `mapstructure:"base_url"`
	APIKey     string `mapstructure:"api_key"`
	Model      string
	TimeoutSec int `mapstructure:"timeout_sec"`
}

// Affiliate 联盟商品匹配（当前为模拟目录）
type Affiliate struct {
	ShopeeCommissionRate float64 `mapstructure:"shopee_commission_rate"`
	LazadaCommissionRate float64 `mapstructure:"lazada_commission_rate"`
}

type Config struct {
	App       App
	Log       Log
	JWT       JWT
	DB        DB
	Redis     Redis     `mapstructure:"redis"`
	LLM       LLM       `mapstructure:"llm"`
	Affiliate Affiliate `mapstructure:"affiliate"`
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	if c.JWT.ExpiryInHours <= 0 {
		c.JWT.ExpiryInHours = 24
	}
	if c.LLM.TimeoutSec <= 0 {
		c.LLM.TimeoutSec = 60
	}
	if c.Redis.RefDataTTLSec <= 0 {
		c.Redis.RefDataTTLSec = 300
	}
	return &c
}

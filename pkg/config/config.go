package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Session SessionConfig
}

type ServerConfig struct {
	Address string
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     int
}

type SessionConfig struct {
	Secret string
}

// Load 載入應用程式配置
// 先套用預設值，再讀取 config.yaml（如果存在），最後由環境變數覆蓋
// 環境變數使用 LOGIN_ 前綴，例如 LOGIN_DB_PASSWORD
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./pkg/config")
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("server.address", ":5000")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.name", "login_demo")
	v.SetDefault("db.port", 5432)
	// 開發用密鑰，正式環境應透過 LOGIN_SESSION_SECRET 覆蓋
	v.SetDefault("session.secret", "dev-secret-key-change-in-production")

	v.SetEnvPrefix("LOGIN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// 找不到配置文件時使用預設值，其他錯誤（如格式錯誤）仍然回報
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

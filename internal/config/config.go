package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	DB      DBConfig
	Room    RoomConfig
}

type ServerConfig struct {
	Address string
}

type StorageConfig struct {
	Driver string // postgres 或 memory
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     int
}

type RoomConfig struct {
	// 參與者閒置超過此時間後會在讀取時被清除
	InactivityThreshold time.Duration `mapstructure:"inactivity_threshold"`
	// 房間自最後一次寫入起的保留時間
	RetentionWindow time.Duration `mapstructure:"retention_window"`
}

// Load 讀取配置文件與環境變數
// 找不到配置文件時使用預設值，環境變數以 POKER_ 為前綴
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("storage.driver", "memory")
	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.user", "postgres")
	viper.SetDefault("db.password", "")
	viper.SetDefault("db.name", "poker")
	viper.SetDefault("db.port", 5432)
	viper.SetDefault("room.inactivity_threshold", 5*time.Minute)
	viper.SetDefault("room.retention_window", 24*time.Hour)

	viper.SetEnvPrefix("POKER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultDatabasePath is used when DATABASE_PATH is not set.
	DefaultDatabasePath = "./booklist.db"
	// DefaultMediaPath holds uploaded book covers.
	DefaultMediaPath = "./media"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Media
		Auth
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Media struct {
		Path string
	}
	Auth struct {
		JWTSecret       string
		AccessTokenTTL  time.Duration
		RefreshTokenTTL time.Duration
		BcryptCost      int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("media_path", DefaultMediaPath)

	// Auth defaults
	v.SetDefault("jwt_secret", "")            // Auto-generated if empty
	v.SetDefault("access_token_ttl", "15m")   // Short-lived API credential
	v.SetDefault("refresh_token_ttl", "168h") // 7 days
	v.SetDefault("auth_bcrypt_cost", 12)      // bcrypt cost factor

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Media: Media{
			Path: v.GetString("MEDIA_PATH"),
		},
		Auth: Auth{
			JWTSecret:       v.GetString("JWT_SECRET"),
			AccessTokenTTL:  v.GetDuration("ACCESS_TOKEN_TTL"),
			RefreshTokenTTL: v.GetDuration("REFRESH_TOKEN_TTL"),
			BcryptCost:      v.GetInt("AUTH_BCRYPT_COST"),
		},
	}
}

package config

import (
	"os"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr              string
	DatabaseURL       string
	Redis             RedisConfig
	CartDataDir       string
	SessionSigningKey string
	SessionTTL        time.Duration
	AdminToken        string
}

// RedisConfig holds connection tuning for the remote cart mirror.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("CODEDRIP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	cartDataDir := os.Getenv("CART_DATA_DIR")
	if cartDataDir == "" {
		cartDataDir = "data/carts"
	}

	signingKey := os.Getenv("SESSION_SIGNING_KEY")
	if signingKey == "" {
		// Use a default for development - should be overridden in production
		signingKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:        addr,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		CartDataDir:       cartDataDir,
		SessionSigningKey: signingKey,
		SessionTTL:        7 * 24 * time.Hour,
		AdminToken:        os.Getenv("ADMIN_TOKEN"),
	}
}

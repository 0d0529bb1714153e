package config

import (
	"fmt"
	"sync"

	"timeweave/core/constants"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Email     EmailConfig
	GoogleAPI GoogleAPIConfig
	Storage   StorageConfig
	Admin     AdminConfig
}

type ServerConfig struct {
	Host    string
	Port    int
	Env     string
	BaseURL string // public base URL used in share links and emails
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessTTLHour int
}

type EmailConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	From         string
	TemplatesDir string
}

type GoogleAPIConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

type StorageConfig struct {
	Enabled         bool
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
}

type AdminConfig struct {
	APIKeyHash string // bcrypt hash of the X-Admin-Key value
}

var (
	instance *Config
	mu       sync.RWMutex
)

// Load reads .env (when present), then the environment, and caches the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 7070)
	v.SetDefault("SERVER_ENV", "production")
	v.SetDefault("SERVER_BASE_URL", "http://localhost:7070")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "timeweave")
	v.SetDefault("DB_SSLMODE", constants.DatabaseSSLMode)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ACCESS_TTL_HOURS", 720)

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 465)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "TimeWeave <no-reply@timeweave.app>")
	v.SetDefault("EMAIL_TEMPLATES_DIR", "templates")

	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REDIRECT_URI", "")

	v.SetDefault("STORAGE_ENABLED", false)
	v.SetDefault("STORAGE_ENDPOINT", "")
	v.SetDefault("STORAGE_REGION", "ap-southeast-1")
	v.SetDefault("STORAGE_BUCKET", "")
	v.SetDefault("STORAGE_ACCESS_KEY_ID", "")
	v.SetDefault("STORAGE_SECRET_ACCESS_KEY", "")

	v.SetDefault("ADMIN_API_KEY_HASH", "")

	cfg := &Config{
		Server: ServerConfig{
			Host:    v.GetString("SERVER_HOST"),
			Port:    v.GetInt("SERVER_PORT"),
			Env:     v.GetString("SERVER_ENV"),
			BaseURL: v.GetString("SERVER_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			AccessTTLHour: v.GetInt("JWT_ACCESS_TTL_HOURS"),
		},
		Email: EmailConfig{
			Host:         v.GetString("SMTP_HOST"),
			Port:         v.GetInt("SMTP_PORT"),
			Username:     v.GetString("SMTP_USERNAME"),
			Password:     v.GetString("SMTP_PASSWORD"),
			From:         v.GetString("SMTP_FROM"),
			TemplatesDir: v.GetString("EMAIL_TEMPLATES_DIR"),
		},
		GoogleAPI: GoogleAPIConfig{
			ClientID:     v.GetString("GOOGLE_CLIENT_ID"),
			ClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
			RedirectURI:  v.GetString("GOOGLE_REDIRECT_URI"),
		},
		Storage: StorageConfig{
			Enabled:         v.GetBool("STORAGE_ENABLED"),
			Endpoint:        v.GetString("STORAGE_ENDPOINT"),
			Region:          v.GetString("STORAGE_REGION"),
			Bucket:          v.GetString("STORAGE_BUCKET"),
			AccessKeyID:     v.GetString("STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("STORAGE_SECRET_ACCESS_KEY"),
		},
		Admin: AdminConfig{
			APIKeyHash: v.GetString("ADMIN_API_KEY_HASH"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	mu.Lock()
	instance = cfg
	mu.Unlock()

	return cfg, nil
}

// Get returns the loaded config. Panics when Load has not run; use GetSafe in
// paths that may execute before startup finishes.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("config: Load must be called before Get")
	}
	return instance
}

func GetSafe() (*Config, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		return nil, false
	}
	return instance, true
}

// Set replaces the cached config. Intended for tests.
func Set(cfg *Config) {
	mu.Lock()
	instance = cfg
	mu.Unlock()
}

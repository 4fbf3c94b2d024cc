package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort              string
	ServerReadHeaderTimeout time.Duration
	ServerWriteTimeout      time.Duration
	ServerIdleTimeout       time.Duration
	RequestTimeout          time.Duration
	LogLevel                slog.Level

	DatabaseURL string
	DBMaxConns  int32
	DBMinConns  int32

	AccessTokenSecret  string
	AccessTokenTTL     time.Duration
	RefreshTokenSecret string
	RefreshTokenTTL    time.Duration
	CookieSecure       bool

	CORSOrigins      []string
	RateLimitRPM     int
	AuthRateLimitRPM int

	MaxJSONBody   int64
	MaxUploadSize int64
	UploadTempDir string
	StaticDir     string

	S3Endpoint      string
	S3Region        string
	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3PublicBaseURL string
}

// TokenSettings is the subset of Config the token service is built from.
type TokenSettings struct {
	AccessSecret  string
	AccessTTL     time.Duration
	RefreshSecret string
	RefreshTTL    time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:              getEnv("SERVER_PORT", "8080"),
		ServerReadHeaderTimeout: getDuration("SERVER_READ_HEADER_TIMEOUT", 10*time.Second),
		ServerWriteTimeout:      getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		ServerIdleTimeout:       getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		RequestTimeout:          getDuration("REQUEST_TIMEOUT", 30*time.Second),
		LogLevel:                getLevel("LOG_LEVEL", slog.LevelInfo),
		DatabaseURL:             strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DBMaxConns:              int32(getInt("DB_MAX_CONNS", 10)),
		DBMinConns:              int32(getInt("DB_MIN_CONNS", 1)),
		AccessTokenSecret:       strings.TrimSpace(os.Getenv("ACCESS_TOKEN_SECRET")),
		AccessTokenTTL:          getDuration("ACCESS_TOKEN_EXPIRY", 15*time.Minute),
		RefreshTokenSecret:      strings.TrimSpace(os.Getenv("REFRESH_TOKEN_SECRET")),
		RefreshTokenTTL:         getDuration("REFRESH_TOKEN_EXPIRY", 240*time.Hour),
		CookieSecure:            getBool("COOKIE_SECURE", true),
		CORSOrigins:             splitCSV(getEnv("CORS_ORIGINS", "*")),
		RateLimitRPM:            getInt("RATE_LIMIT_RPM", 300),
		AuthRateLimitRPM:        getInt("AUTH_RATE_LIMIT_RPM", 20),
		MaxJSONBody:             getInt64("MAX_JSON_BODY", 16*1024),
		MaxUploadSize:           getInt64("MAX_UPLOAD_SIZE", 5*1024*1024),
		UploadTempDir:           getEnv("UPLOAD_TEMP_DIR", "./tmp/uploads"),
		StaticDir:               getEnv("STATIC_DIR", "./public"),
		S3Endpoint:              strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		S3Region:                getEnv("S3_REGION", "us-east-1"),
		S3AccessKey:             strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
		S3SecretKey:             strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),
		S3Bucket:                strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3PublicBaseURL:         strings.TrimSpace(os.Getenv("S3_PUBLIC_BASE_URL")),
	}

	if cfg.S3PublicBaseURL == "" {
		cfg.S3PublicBaseURL = cfg.S3Endpoint
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT cannot be empty")
	}

	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.DBMaxConns <= 0 || c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS/DB_MAX_CONNS are inconsistent")
	}

	if c.AccessTokenSecret == "" {
		return fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}

	if c.RefreshTokenSecret == "" {
		return fmt.Errorf("REFRESH_TOKEN_SECRET is required")
	}

	if c.AccessTokenSecret == c.RefreshTokenSecret {
		return fmt.Errorf("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must differ")
	}

	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("token expiry durations must be positive")
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}

	if c.MaxJSONBody <= 0 {
		return fmt.Errorf("MAX_JSON_BODY must be positive")
	}

	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive")
	}

	if strings.TrimSpace(c.UploadTempDir) == "" {
		return fmt.Errorf("UPLOAD_TEMP_DIR cannot be empty")
	}

	if c.StaticDir != "" && isWithin(c.StaticDir, c.UploadTempDir) {
		return fmt.Errorf("UPLOAD_TEMP_DIR must not be inside STATIC_DIR")
	}

	if c.S3Bucket == "" {
		return fmt.Errorf("S3_BUCKET is required")
	}

	return nil
}

func (c *Config) TokenSettings() TokenSettings {
	return TokenSettings{
		AccessSecret:  c.AccessTokenSecret,
		AccessTTL:     c.AccessTokenTTL,
		RefreshSecret: c.RefreshTokenSecret,
		RefreshTTL:    c.RefreshTokenTTL,
	}
}

// isWithin reports whether path is root or below it.
func isWithin(root string, path string) bool {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	pathAbs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(rootAbs, pathAbs)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func getEnv(key string, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}

	return v
}

func getInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return v
}

func getInt64(key string, fallback int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}

	return v
}

func getBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}

	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return v
}

func getLevel(key string, fallback slog.Level) slog.Level {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return fallback
	}

	return level
}

func splitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}

	return out
}

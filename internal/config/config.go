package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is read once at startup from environment variables. A .env file is
// loaded by main before this runs; production supplies real env vars.
type Config struct {
	Env      string // "dev" or "prod"
	HTTPAddr string
	BaseURL  string

	DBDSN string

	RedisURL string

	JWTSecret  []byte
	JWTTTL     time.Duration
	CookName   string
	CartSecret []byte

	CORSOrigins []string

	StorageDriver   string // "disk" or "s3"
	UploadDir       string
	UploadURLPrefix string
	S3Region        string
	S3Bucket        string
	S3Prefix        string
	S3PublicBaseURL string

	MailFrom     string
	MailFromName string
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string
	SMTPTLSMode  string // "", "tls" or "starttls"
}

func FromEnv() (Config, error) {
	cfg := Config{
		Env:      envOr("APP_ENV", "dev"),
		HTTPAddr: envOr("HTTP_ADDR", ":8080"),
		BaseURL:  envOr("BASE_URL", "http://localhost:8080"),
		DBDSN:    os.Getenv("DB_DSN"),
		RedisURL: envOr("REDIS_URL", "redis://localhost:6379"),
		CookName: envOr("AUTH_COOKIE_NAME", "mk_jwt"),
		JWTTTL:   envDurationOr("JWT_TTL", 30*24*time.Hour),

		StorageDriver:   envOr("STORAGE_DRIVER", "disk"),
		UploadDir:       envOr("UPLOAD_DIR", "./storage/uploads"),
		UploadURLPrefix: envOr("UPLOAD_URL_PREFIX", "/uploads"),
		S3Region:        os.Getenv("S3_REGION"),
		S3Bucket:        os.Getenv("S3_BUCKET"),
		S3Prefix:        envOr("S3_PREFIX", "uploads"),
		S3PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),

		MailFrom:     envOr("MAIL_FROM", "no-reply@modakart.local"),
		MailFromName: envOr("MAIL_FROM_NAME", "Modakart"),
		SMTPHost:     envOr("SMTP_HOST", "localhost"),
		SMTPPort:     envOr("SMTP_PORT", "1025"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPass:     os.Getenv("SMTP_PASS"),
		SMTPTLSMode:  os.Getenv("SMTP_TLS_MODE"),
	}

	if cfg.DBDSN == "" {
		return Config{}, fmt.Errorf("DB_DSN environment variable is required")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	cfg.JWTSecret = []byte(secret)

	cartSecret := envOr("CART_COOKIE_SECRET", secret)
	cfg.CartSecret = []byte(cartSecret)

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitCSV(origins)
	} else {
		cfg.CORSOrigins = []string{"http://localhost:5173"}
	}

	return cfg, nil
}

func (c Config) IsDev() bool { return c.Env != "prod" }

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envDurationOr(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Hour
	}
	return def
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

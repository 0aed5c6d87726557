package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"modakart.com/app/internal/config"
	apphttp "modakart.com/app/internal/http"
	"modakart.com/app/internal/mailer"
	"modakart.com/app/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	var logger *slog.Logger
	if cfg.IsDev() {
		logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)

	ctx := context.Background()
	st, err := storage.New(ctx, storage.Config{
		Driver:          cfg.StorageDriver,
		Dir:             cfg.UploadDir,
		URLPrefix:       cfg.UploadURLPrefix,
		S3Region:        cfg.S3Region,
		S3Bucket:        cfg.S3Bucket,
		S3Prefix:        cfg.S3Prefix,
		S3PublicBaseURL: cfg.S3PublicBaseURL,
	})
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}
	logger.Info("storage ready", "driver", cfg.StorageDriver)

	mail := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:    cfg.SMTPHost,
		Port:    cfg.SMTPPort,
		User:    cfg.SMTPUser,
		Pass:    cfg.SMTPPass,
		TLSMode: cfg.SMTPTLSMode,
	})

	r := apphttp.NewRouter(apphttp.RouterDeps{
		Cfg:     cfg,
		Logger:  logger,
		DB:      db,
		Redis:   rdb,
		Storage: st,
		Mailer:  mail,
	})

	logger.Info("listening", "addr", cfg.HTTPAddr, "env", cfg.Env)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}

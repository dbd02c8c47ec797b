package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Thaihung204/GENTRY-BE/internal/core/auth"
	"github.com/Thaihung204/GENTRY-BE/internal/core/cache"
	"github.com/Thaihung204/GENTRY-BE/internal/core/config"
	"github.com/Thaihung204/GENTRY-BE/internal/core/database"
	"github.com/Thaihung204/GENTRY-BE/internal/core/logger"
	"github.com/Thaihung204/GENTRY-BE/internal/core/server"
	"github.com/Thaihung204/GENTRY-BE/internal/repo"
	"github.com/Thaihung204/GENTRY-BE/internal/service"
	"github.com/Thaihung204/GENTRY-BE/internal/transport/http/router"
	"github.com/Thaihung204/GENTRY-BE/pkg/llm"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
		Enable:     cfg.Log.File.Enable,
		Filename:   cfg.Log.File.Path,
		MaxSizeMB:  cfg.Log.File.MaxSizeMB,
		MaxBackups: cfg.Log.File.MaxBackups,
		MaxAgeDays: cfg.Log.File.MaxAgeDays,
		Compress:   cfg.Log.File.Compress,
	})
	defer cleanup()

	// 数据库（失败会直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}
	if cfg.DB.Seed {
		if err := database.Seed(db); err != nil {
			log.Fatal("seed failed", zap.Error(err))
		}
		log.Info("reference data seeded")
	}

	// JWT
	jwter := &auth.JWTer{
		Secret:   []byte(cfg.JWT.Secret),
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
		TTL:      time.Duration(cfg.JWT.ExpiryInHours) * time.Hour,
	}

	// Redis 缓存（可选，地址为空则直查库）
	var cch *cache.Cache
	if cfg.Redis.Addr != "" {
		cch = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}

	// LLM 客户端
	completer, err := llm.NewClient(llm.Config{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: time.Duration(cfg.LLM.TimeoutSec) * time.Second,
	}, log)
	if err != nil {
		log.Fatal("llm client", zap.Error(err))
	}

	// 仓储
	userRepo := repo.NewUserRepo(db)
	itemRepo := repo.NewItemRepo(db)
	outfitRepo := repo.NewOutfitRepo(db)
	refRepo := repo.NewRefDataRepo(db)
	feedbackRepo := repo.NewFeedbackRepo(db)
	chatRepo := repo.NewChatHistoryRepo(db)

	// 服务
	affiliates := service.NewAffiliateService(
		cfg.Affiliate.ShopeeCommissionRate, cfg.Affiliate.LazadaCommissionRate, log)
	deps := router.Deps{
		Log:      log,
		JWTer:    jwter,
		Auth:     service.NewAuthService(userRepo, jwter, log),
		Wardrobe: service.NewWardrobeService(itemRepo, log),
		Outfits:  service.NewOutfitService(outfitRepo),
		RefData: service.NewRefDataService(refRepo, cch,
			time.Duration(cfg.Redis.RefDataTTLSec)*time.Second),
		Feedback: service.NewFeedbackService(feedbackRepo, log),
		Chats:    service.NewChatHistoryService(chatRepo, log),
		Stylist: service.NewStylistService(
			itemRepo, userRepo, outfitRepo, completer, affiliates, log),
	}

	r := router.NewAPIEngine(deps)

	// HTTP Server
	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
	)

	go func() {
		if err := server.StartHTTP(srv, log); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitfantasy/nimo-dms/internal/config"
	"github.com/bitfantasy/nimo-dms/internal/dms/handler"
	"github.com/bitfantasy/nimo-dms/internal/dms/seed"
	"github.com/bitfantasy/nimo-dms/internal/dms/service"
	"github.com/bitfantasy/nimo-dms/internal/dms/sse"
	"github.com/bitfantasy/nimo-dms/internal/dms/store"
	"github.com/bitfantasy/nimo-dms/internal/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

const apiPrefix = "/api/v1/dms"

func main() {
	publishOnly := flag.Bool("publish-seed", false, "write the builtin dataset to the configured database or redis seed source and exit")
	flag.Parse()

	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting nimo-dms service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	if *publishOnly {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := publishSeed(ctx, cfg.Seed, seed.BuiltinDataset()); err != nil {
			zapLogger.Fatal("Failed to publish seed data", zap.String("source", cfg.Seed.Source), zap.Error(err))
		}
		zapLogger.Info("Seed data published", zap.String("source", cfg.Seed.Source))
		return
	}

	policy, err := store.ParseMissingPolicy(cfg.Store.MissingPolicy)
	if err != nil {
		zapLogger.Fatal("Invalid store config", zap.Error(err))
	}

	// 种子数据源
	src, closeSource, err := initSeedSource(cfg.Seed)
	if err != nil {
		zapLogger.Fatal("Failed to init seed source", zap.String("source", cfg.Seed.Source), zap.Error(err))
	}

	services := service.NewServices(service.Options{Policy: policy}, zapLogger)
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = services.Seed(seedCtx, src)
	seedCancel()
	closeSource()
	if err != nil {
		zapLogger.Fatal("Failed to load seed data", zap.Error(err))
	}

	hub := sse.NewHub(zapLogger)
	handlers := handler.NewHandlers(services, hub)

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建路由
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{apiPrefix + "/events"})))

	// 注册路由
	registerRoutes(router, handlers, cfg, zapLogger)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: 0, // SSE 长连接，不设写超时
	}

	// 启动服务器
	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

// initSeedSource 按配置选择种子数据源，返回的 close 函数在加载完成后调用
func initSeedSource(cfg config.SeedConfig) (seed.Source, func(), error) {
	noop := func() {}
	switch cfg.Source {
	case "", seed.KindBuiltin:
		return seed.Builtin(), noop, nil
	case seed.KindFile:
		if cfg.File == "" {
			return nil, noop, fmt.Errorf("seed.file is required for file source")
		}
		return seed.NewFileSource(cfg.File), noop, nil
	case seed.KindDatabase:
		db, err := seed.OpenDatabase(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			return nil, noop, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return seed.NewDatabaseSource(db), closeDB, nil
	case seed.KindRedis:
		rdb := newRedisClient(cfg.Redis)
		return seed.NewRedisSource(rdb, cfg.Redis.KeyPrefix), func() { rdb.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("unknown seed source %q", cfg.Source)
	}
}

// publishSeed 将数据集写入配置的数据库或 Redis 种子源，供后续启动读取
func publishSeed(ctx context.Context, cfg config.SeedConfig, ds *seed.Dataset) error {
	switch cfg.Source {
	case seed.KindDatabase:
		db, err := seed.OpenDatabase(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		return seed.Store(ctx, db, ds)
	case seed.KindRedis:
		rdb := newRedisClient(cfg.Redis)
		defer rdb.Close()
		return seed.Publish(ctx, rdb, cfg.Redis.KeyPrefix, ds)
	default:
		return fmt.Errorf("seed source %q is not writable", cfg.Source)
	}
}

func newRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config, logger *zap.Logger) {
	// 健康检查
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 版本信息
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	// 未配置密钥时不启用认证
	if cfg.JWT.Secret == "" {
		logger.Warn("JWT secret not set, DMS API is unauthenticated")
		handler.RegisterRoutes(r.Group(apiPrefix), h)
		return
	}
	api := r.Group(apiPrefix, middleware.JWTAuth(cfg.JWT.Secret, cfg.JWT.Issuer))
	handler.RegisterRoutes(api, h, middleware.RequireRole(cfg.JWT.DeleteRole))
}

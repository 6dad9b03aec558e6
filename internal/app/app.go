package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"relationship_service/internal/config"
	"relationship_service/internal/controller"
	"relationship_service/internal/middleware"
	"relationship_service/internal/repository"
	"relationship_service/internal/service"
	"relationship_service/pkg/configwatcher"
	"relationship_service/pkg/database"
	"relationship_service/pkg/logger"
	"relationship_service/pkg/monitoring"
	"relationship_service/pkg/security"
	"relationship_service/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)

	// 后台协程（限流清理）的生命周期
	ctx    context.Context
	cancel context.CancelFunc
}

type repositories struct {
	relationshipType *repository.RelationshipTypeRepository
	userRelationship *repository.UserRelationshipRepository
}

type services struct {
	relationshipType *service.RelationshipTypeService
	userRelationship *service.UserRelationshipService
}

type controllers struct {
	relationshipType *controller.RelationshipTypeController
	userRelationship *controller.UserRelationshipController
	health           *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	return &repositories{
		relationshipType: repository.NewRelationshipTypeRepository(db, rdb, cfg.Redis.TTL()),
		userRelationship: repository.NewUserRelationshipRepository(db),
	}
}

func (a *App) initServices(repos *repositories) *services {
	return &services{
		relationshipType: service.NewRelationshipTypeService(repos.relationshipType, repos.userRelationship),
		userRelationship: service.NewUserRelationshipService(repos.userRelationship, repos.relationshipType),
	}
}

func (a *App) initControllers(s *services, cfg *config.Config) *controllers {
	return &controllers{
		relationshipType: controller.NewRelationshipTypeController(s.relationshipType),
		userRelationship: controller.NewUserRelationshipController(s.userRelationship, cfg.Pagination),
		health:           controller.NewHealthController(a.DB, a.Redis, cfg.Server),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(a.ctx, cfg.RateLimit))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// New 基于已建立的连接组装路由，rdb 可以为 nil
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		ctx:    ctx,
		cancel: cancel,
	}

	repos := app.initRepositories(db, rdb, cfg)
	services := app.initServices(repos)
	controllers := app.initControllers(services, cfg)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	// 配置热更新时同步日志级别
	app.RegisterConfigCallback(logger.SetLevel)

	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// release 模式下默认不自动迁移，可用 -migrate 强制
	if cfg.Server.Mode != gin.ReleaseMode || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
		if cfg.Database.SeedDefaults {
			if err := database.SeedDefaults(db); err != nil {
				logger.Log.Fatal("Failed to seed relationship types", zap.Error(err))
			}
		}
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled && !cfg.MigrateOnly {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	}

	app := New(cfg, db, rdb)

	if cfg.Tracing.Enabled && !cfg.MigrateOnly {
		tp, err := tracing.InitTracer(cfg.Server.ServiceName, cfg.Server.Version, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

func (a *App) watchConfig(ctx context.Context) {
	if !a.Config.Server.WatchConfig || a.Config.File == "" {
		return
	}

	go func() {
		err := configwatcher.WatchConfig(ctx, a.Config.File, func(newCfg *config.Config) {
			for _, callback := range a.configCallbacks {
				callback(newCfg)
			}
		})
		if err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	a.watchConfig(a.ctx)

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("listen failed", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(shutdownCtx)
	logger.Log.Info("Server exiting")
}

// Stop 结束后台协程，可重复调用
func (a *App) Stop() {
	a.cancel()
}

// Close 停止后台协程并释放追踪、Redis 和数据库连接
func (a *App) Close(ctx context.Context) {
	a.Stop()
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Log.Error("Failed to close database", zap.Error(err))
		}
	}
}

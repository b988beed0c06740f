package app

import (
	"context"
	"course_builder_backend/internal/config"
	"course_builder_backend/internal/controller"
	"course_builder_backend/internal/middleware"
	"course_builder_backend/internal/repository"
	"course_builder_backend/internal/service"
	"course_builder_backend/pkg/configwatcher"
	"course_builder_backend/pkg/database"
	"course_builder_backend/pkg/logger"
	"course_builder_backend/pkg/monitoring"
	"course_builder_backend/pkg/security"
	"course_builder_backend/pkg/tracing"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	shutdownTimeout = 5 * time.Second
	reloadDebounce  = 500 * time.Millisecond
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *gorm.DB
	Redis   *redis.Client
	Catalog *repository.CatalogRepository

	services *services
	tracer   *sdktrace.TracerProvider
}

type services struct {
	catalog    *service.CatalogService
	progress   *service.ProgressService
	enrollment *service.EnrollmentService
	assessment *service.AssessmentService
}

type controllers struct {
	course       *controller.CourseController
	assessment   *controller.AssessmentController
	user         *controller.UserController
	learningPath *controller.LearningPathController
	health       *controller.HealthController
}

func (a *App) initServices(cfg *config.Config, sink service.ProgressSink) *services {
	s := &services{}
	s.catalog = service.NewCatalogService(a.Catalog)
	s.progress = service.NewProgressService(a.Catalog, sink)
	s.enrollment = service.NewEnrollmentService(s.progress)
	s.assessment = service.NewAssessmentService(a.Catalog, cfg.Assessment.PassingScore)
	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		course:       controller.NewCourseController(s.catalog, s.enrollment),
		assessment:   controller.NewAssessmentController(s.assessment),
		user:         controller.NewUserController(s.catalog, s.progress),
		learningPath: controller.NewLearningPathController(s.catalog),
		health:       controller.NewHealthController(),
	}
}

// initProgressSink 按配置选择进度持久化方式，memory 时不持久化
func (a *App) initProgressSink(cfg *config.Config) (service.ProgressSink, error) {
	switch cfg.Progress.Sink {
	case config.SinkRedis:
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("init redis: %w", err)
		}
		a.Redis = rdb
		return repository.NewRedisProgressSink(rdb), nil
	case config.SinkMySQL:
		db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
		if err != nil {
			return nil, fmt.Errorf("init database: %w", err)
		}
		a.DB = db
		return repository.NewProgressStateRepository(db), nil
	default:
		return nil, nil
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.Recovery())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window()))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
	router.Use(middleware.RequestLogger())
}

// newApp 组装路由，不连接任何外部依赖
func newApp(cfg *config.Config, catalog *repository.CatalogRepository, sink service.ProgressSink) *App {
	app := &App{
		Config:  cfg,
		Catalog: catalog,
	}

	app.services = app.initServices(cfg, sink)
	controllers := app.initControllers(app.services)

	monitoring.Init()

	router := gin.New()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully",
		zap.String("mode", cfg.Server.Mode),
		zap.String("config", cfg.File),
	)

	setGinMode(cfg.Server.Mode)

	catalog := repository.NewCatalogRepository(cfg.Data.Dir)

	bootstrap := &App{}
	sink, err := bootstrap.initProgressSink(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize progress sink",
			zap.String("sink", cfg.Progress.Sink),
			zap.Error(err),
		)
	}

	app := newApp(cfg, catalog, sink)
	app.DB = bootstrap.DB
	app.Redis = bootstrap.Redis

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

func setGinMode(mode string) {
	if mode == config.ModeDebug {
		gin.SetMode(gin.DebugMode)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}

// startBackgroundTasks 开启数据目录监视，文件变化后重新加载目录快照
func (a *App) startBackgroundTasks(ctx context.Context) {
	if !a.Config.Data.Watch {
		return
	}

	go func() {
		err := configwatcher.Watch(ctx, a.Config.Data.Dir, reloadDebounce, a.services.catalog.Reload)
		if err != nil {
			logger.Log.Error("Data directory watcher stopped", zap.String("dir", a.Config.Data.Dir), zap.Error(err))
		}
	}()
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	a.startBackgroundTasks(ctx)

	// 启动服务器
	go func() {
		logger.Log.Info("Server running",
			zap.String("port", a.Config.Server.Port),
			zap.String("health", "http://localhost:"+a.Config.Server.Port+"/health"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen", zap.Error(err))
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.close(shutdownCtx)
	logger.Log.Info("Server exiting")
}

func (a *App) close(ctx context.Context) {
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
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"skillport_backend/internal/config"
	"skillport_backend/internal/controller"
	"skillport_backend/internal/repository"
	"skillport_backend/internal/service"
	"skillport_backend/pkg/database"
	"skillport_backend/pkg/logger"
	"skillport_backend/pkg/monitoring"
	"skillport_backend/pkg/security"
	"skillport_backend/pkg/tracing"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	question  *repository.QuestionRepository
	topic     *repository.TopicRepository
	catalog   *repository.CatalogRepository
	result    *repository.ResultRepository
	community *repository.CommunityRepository
}

type services struct {
	scoring        *service.ScoringService
	recommendation *service.RecommendationService
	assessment     *service.AssessmentService
	learningPath   *service.LearningPathService
	community      *service.CommunityService
	ai             *service.AIService
	chat           *service.ChatService
}

type controllers struct {
	assessment   *controller.AssessmentController
	learningPath *controller.LearningPathController
	community    *controller.CommunityController
	chat         *controller.ChatController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新入口，由 configwatcher 调用
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(rdb *redis.Client, cfg *config.Config) (*repositories, error) {
	// 题库和目录是静态配置，校验失败属于配置错误，启动即失败
	question, err := repository.NewQuestionRepository()
	if err != nil {
		return nil, err
	}
	catalog, err := repository.NewCatalogRepository()
	if err != nil {
		return nil, err
	}

	return &repositories{
		question:  question,
		topic:     repository.NewTopicRepository(),
		catalog:   catalog,
		result:    repository.NewResultRepository(rdb, cfg.Session.TTL),
		community: repository.NewCommunityRepository(),
	}, nil
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.scoring = service.NewScoringService(repos.question, repos.topic)
	s.recommendation = service.NewRecommendationService(repos.catalog)
	s.assessment = service.NewAssessmentService(s.scoring, repos.question, repos.topic, repos.result)
	s.learningPath = service.NewLearningPathService(
		repos.catalog,
		repos.result,
		s.scoring,
		s.recommendation,
		cfg.Recommend.DefaultLimit,
	)
	s.community = service.NewCommunityService(repos.community)
	s.ai = service.NewAIService(cfg.AI)
	s.chat = service.NewChatService(s.ai, repos.result, s.scoring)

	return s
}

func (a *App) initControllers(s *services, rdb *redis.Client) *controllers {
	return &controllers{
		assessment:   controller.NewAssessmentController(s.assessment),
		learningPath: controller.NewLearningPathController(s.learningPath, a.Config.Recommend.MaxLimit),
		community:    controller.NewCommunityController(s.community),
		chat:         controller.NewChatController(s.chat),
		health:       controller.NewHealthController(rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		Redis:  rdb,
	}

	repos, err := app.initRepositories(rdb, cfg)
	if err != nil {
		logger.Log.Fatal("Failed to load static configuration", zap.Error(err))
	}

	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("skillport", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if err := a.Redis.Close(); err != nil {
		logger.Log.Error("Failed to close redis client", zap.Error(err))
	}

	log.Println("Server exiting")
}

// @title MindFlow API
// @version 1.0
// @description Wellness companion API: onboarding assessment, jhana meditation, learning cards, pomodoro and routine builder.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8001
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "mindflow/cmd/api/docs"
	"mindflow/internal/adapter"
	"mindflow/internal/adapter/llm"
	"mindflow/internal/config"
	"mindflow/internal/database"
	"mindflow/internal/handler"
	"mindflow/internal/kv"
	"mindflow/internal/logger"
	"mindflow/internal/middleware"
	"mindflow/internal/repository"
	"mindflow/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// Connect to database
	mongoClient, err := database.ConnectMongo(ctx, cfg.Mongo)
	if err != nil {
		appLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			appLogger.Error("Failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	db := mongoClient.Database(cfg.Mongo.Database)
	appLogger.Info("Connected to MongoDB", zap.String("database", cfg.Mongo.Database))

	// Text generation
	generator, closeGenerator, err := llm.NewTextGenerator(ctx, cfg.LLM)
	if err != nil {
		appLogger.Warn("Text generator unavailable, assessments will use the fallback message",
			zap.String("provider", cfg.LLM.Provider), zap.Error(err))
		generator, closeGenerator = nil, func() error { return nil }
	} else if generator != nil {
		appLogger.Info("Text generator initialized", zap.String("provider", cfg.LLM.Provider), zap.String("model", cfg.LLM.Model))
	}
	defer func() { _ = closeGenerator() }()

	// Rate limiting
	limiter := service.NewNoopLimiter()
	if cfg.RateLimitEnabled() {
		redisClient, err := kv.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()
		limiter = service.NewFixedWindowLimiter(
			adapter.NewRedisCounterAdapter(redisClient),
			cfg.RateLimit.AssessmentPerWindow,
			cfg.RateLimit.Window,
		)
		appLogger.Info("Assessment rate limiting enabled",
			zap.Int("limit", cfg.RateLimit.AssessmentPerWindow),
			zap.Duration("window", cfg.RateLimit.Window))
	}

	// Initialize repositories
	userRepository := repository.NewMongoUserRepository(db)
	jhanaRepository := repository.NewMongoJhanaRepository(db)
	learningRepository := repository.NewMongoLearningRepository(db)
	routineRepository := repository.NewMongoRoutineRepository(db)

	// Initialize services
	messageGenerator := service.NewMessageGenerator(generator, cfg.LLM.Timeout)
	assessmentService := service.NewAssessmentService(userRepository, messageGenerator)
	jhanaService := service.NewJhanaService(jhanaRepository)
	learningService := service.NewLearningService(learningRepository)
	routineService := service.NewRoutineService(routineRepository)
	dashboardService := service.NewDashboardService(jhanaRepository, learningRepository, routineRepository)

	app := fiber.New(middleware.AppConfig(cfg.Server))

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handler.RegisterRoutes(app.Group("/api"), handler.Handlers{
		Assessment: handler.NewAssessmentHandler(assessmentService),
		Jhana:      handler.NewJhanaHandler(jhanaService),
		Learning:   handler.NewLearningHandler(learningService),
		Routine:    handler.NewRoutineHandler(routineService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
	}, limiter)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

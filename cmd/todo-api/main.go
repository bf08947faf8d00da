package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"todo-api/configs"
	"todo-api/docs"
	"todo-api/internal/application/controller"
	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/gateway/auth"
	"todo-api/internal/domain/gateway/cache"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/queue"
	authusecase "todo-api/internal/domain/usecase/auth"
	"todo-api/internal/domain/usecase/health"
	"todo-api/internal/domain/usecase/profile"
	"todo-api/internal/domain/usecase/settings"
	"todo-api/internal/domain/usecase/stats"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/internal/infra/aws"
	infracache "todo-api/internal/infra/cache"
	"todo-api/internal/infra/database/gorm"
	"todo-api/internal/infra/database/sqldb"
	httpclient "todo-api/pkg/http"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

// @title Todo API
// @version 1.0
// @description Todos with weighted subtasks, statistics and account settings.
// @BasePath /todo-api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loadConfiguration()
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	sqlDB, err := sqldb.OpenPostgres(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer sqlDB.Close()

	if resource.GetBool("app.db.migrate") {
		if err := sqldb.Migrate(ctx, sqlDB); err != nil {
			log.Fatalf("Failed to migrate the database: %v", err)
		}
	}

	gormDB, err := gorm.Open(ctx)
	if err != nil {
		log.Fatalf("Failed to connect gorm to the database: %v", err)
	}
	if gormSQL, err := gormDB.DB(); err == nil {
		defer gormSQL.Close()
	}

	redisClient, err := infracache.NewRedisClient(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	authClient := httpclient.NewHttpClient(resource.GetString("app.auth.url"), httpclient.ClientOptions{
		DefaultHeaders: map[string]string{"apikey": resource.GetString("app.auth.api-key")},
		ReadTimeout:    resource.GetDuration("app.auth.timeout"),
		Logger:         httpclient.ZapLogger{Name: "auth"},
	})

	// Init Gateways
	todoGateway := db.NewSQLXTodoGateway(sqlDB)
	profileGateway := db.NewGormProfileGateway(gormDB)
	authGateway := auth.NewGoTrueAuthGateway(authClient, auth.GoTrueConfig{
		URL:             resource.GetString("app.auth.url"),
		APIKey:          resource.GetString("app.auth.api-key"),
		EmailRedirectTo: resource.GetString("app.auth.email-redirect-to"),
	})
	statsCache := cache.NewRedisStatsCache(redisClient)
	signInLimiter, err := cache.NewRedisAttemptLimiter(redisClient, "sign-in",
		resource.GetInt("app.auth.sign-in.max-attempts"),
		resource.GetDuration("app.auth.sign-in.window"))
	if err != nil {
		log.Fatalf("Invalid sign-in limiter configuration: %v", err)
	}
	publisher, queueHealthGateway := newEventPublisher(ctx)

	// Init UseCase
	passwordMinLength := resource.GetInt("app.auth.password-min-length")
	healthUseCase := health.NewHealthUseCase(
		db.NewSQLXHealthDBGateway(sqlDB),
		db.NewGormHealthDBGateway(gormDB),
		cache.NewRedisHealthGateway(redisClient),
		queueHealthGateway,
	)
	todoUseCase := todo.NewTodoUseCase(todoGateway, statsCache, publisher)
	statsUseCase := stats.NewStatsUseCase(todoGateway, statsCache)
	authUseCase := authusecase.NewAuthUseCase(authGateway, signInLimiter, passwordMinLength)
	settingsUseCase := settings.NewSettingsUseCase(authGateway, todoGateway, statsCache, publisher, passwordMinLength)
	profileUseCase := profile.NewProfileUseCase(profileGateway, authGateway)

	// Init Server
	e := echo.New()
	e.HideBanner = true
	e.Validator = middleware.NewRequestValidator()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	middleware.SetupRequestLogger(e)
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: strings.Split(resource.GetString("app.server.allowed-origins"), ","),
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	contextPath := resource.GetString("app.server.context-path")
	docs.SwaggerInfo.BasePath = contextPath
	api := e.Group(contextPath)
	api.GET("/swagger/*", echoSwagger.WrapHandler)
	session := middleware.NewSessionAuth(resource.GetString("app.auth.jwt-secret"))

	// Init Controller
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewAuthController(api, authUseCase, session).InitAuthRoutes()
	controller.NewTodoController(api, todoUseCase, session).InitTodoRoutes()
	controller.NewStatsController(api, statsUseCase, session).InitStatsRoutes()
	controller.NewSettingsController(api, settingsUseCase, session).InitSettingsRoutes()
	controller.NewProfileController(api, profileUseCase, session).InitProfileRoutes()

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Graceful shutdown failed: %v", err)
	}
}

// loadConfiguration loads the bundled messages and properties, then the files named by the environment.
func loadConfiguration() {
	env := configs.LoadEnv()

	if err := msg.Load(configs.Messages); err != nil {
		log.Fatalf("Failed to load bundled messages: %v", err)
	}
	if env.MessagesFile != "" {
		if err := msg.Init(env.MessagesFile); err != nil {
			log.Fatalf("Failed to load messages from %s: %v", env.MessagesFile, err)
		}
	}

	if err := resource.Load(configs.Application); err != nil {
		log.Fatalf("Failed to load bundled properties: %v", err)
	}
	if env.PropertiesFile != "" {
		if err := resource.Init(env.PropertiesFile); err != nil {
			log.Fatalf("Failed to load properties from %s: %v", env.PropertiesFile, err)
		}
	} else {
		log.Info(msg.GetMessage("app.config.properties-fallback"))
	}
}

// newEventPublisher publishes to SQS when app.events.enabled is set and drops events otherwise.
func newEventPublisher(ctx context.Context) (queue.EventPublisher, *queue.QueueHealthGateway) {
	queueName := resource.GetString("app.events.queue")
	if !resource.GetBool("app.events.enabled") {
		return queue.NoopEventPublisher{}, queue.NewQueueHealthGateway(nil, queueName)
	}

	awsConfig, err := aws.NewConfig(ctx)
	if err != nil {
		log.Fatalf("Failed to configure AWS: %v", err)
	}
	sender := aws.NewSQSSender(awsConfig)
	return queue.NewSQSEventPublisher(sender, queueName), queue.NewQueueHealthGateway(sender, queueName)
}

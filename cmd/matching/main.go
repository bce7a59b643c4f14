package main

import (
	"context"
	"os"
	"time"

	"github.com/Juankcba/choapp-back/internal/pkg/config"
	"github.com/Juankcba/choapp-back/internal/pkg/database"
	"github.com/Juankcba/choapp-back/internal/pkg/email"
	"github.com/Juankcba/choapp-back/internal/pkg/health"
	"github.com/Juankcba/choapp-back/internal/pkg/logger"
	"github.com/Juankcba/choapp-back/internal/pkg/middleware"
	"github.com/Juankcba/choapp-back/internal/pkg/nats"
	"github.com/Juankcba/choapp-back/internal/pkg/nsq"
	"github.com/Juankcba/choapp-back/internal/pkg/payment"
	"github.com/Juankcba/choapp-back/internal/pkg/presence"
	"github.com/Juankcba/choapp-back/internal/pkg/retry"
	"github.com/Juankcba/choapp-back/internal/pkg/scheduler"
	"github.com/Juankcba/choapp-back/internal/pkg/server"
	"github.com/Juankcba/choapp-back/internal/pkg/tasks"
	"github.com/Juankcba/choapp-back/internal/pkg/websocket"
	chathandler "github.com/Juankcba/choapp-back/services/chat/handler"
	chatrepo "github.com/Juankcba/choapp-back/services/chat/repository"
	chatuc "github.com/Juankcba/choapp-back/services/chat/usecase"
	matchgw "github.com/Juankcba/choapp-back/services/match/gateway"
	matchhandler "github.com/Juankcba/choapp-back/services/match/handler"
	matchrepo "github.com/Juankcba/choapp-back/services/match/repository"
	matchuc "github.com/Juankcba/choapp-back/services/match/usecase"
	mailhandler "github.com/Juankcba/choapp-back/services/notification/handler/nsq"
	notificationuc "github.com/Juankcba/choapp-back/services/notification/usecase"
	paymenthandler "github.com/Juankcba/choapp-back/services/payment/handler"
	paymentrepo "github.com/Juankcba/choapp-back/services/payment/repository"
	paymentuc "github.com/Juankcba/choapp-back/services/payment/usecase"
	profilehandler "github.com/Juankcba/choapp-back/services/profile/handler"
	profilerepo "github.com/Juankcba/choapp-back/services/profile/repository"
	profileuc "github.com/Juankcba/choapp-back/services/profile/usecase"
	"github.com/labstack/echo/v4"
)

const backgroundTaskTimeout = 30 * time.Second

func main() {
	configPath := "config/matching.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		logger.Fatal("Failed to initialize logger", logger.Err(err))
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	appName := configs.App.Name
	logger.Info("Starting service",
		logger.String("app", appName),
		logger.String("environment", configs.App.Environment),
		logger.String("version", configs.App.Version))

	ctx := context.Background()
	startup := retry.New(retry.StartupConfig())
	sm := server.NewShutdownManager()

	// PostgreSQL
	postgresClient, err := retry.Connect(ctx, startup, "postgres", func() (*database.PostgresClient, error) {
		return database.NewPostgresClient(configs.Database)
	})
	if err != nil {
		logger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	sm.Register("postgres", func(context.Context) error { return postgresClient.Close() })

	if configs.Database.AutoMigrate {
		if err := database.Migrate(postgresClient.GetDB().DB); err != nil {
			logger.Fatal("Failed to run migrations", logger.Err(err))
		}
	}

	// Redis
	redisClient, err := retry.Connect(ctx, startup, "redis", func() (*database.RedisClient, error) {
		return database.NewRedisClient(configs.Redis)
	})
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	sm.Register("redis", func(context.Context) error { return redisClient.Close() })

	// MongoDB holds chat history; without it chat is disabled
	var mongoClient *database.MongoClient
	if configs.Mongo.URI != "" {
		mongoClient, err = retry.Connect(ctx, startup, "mongo", func() (*database.MongoClient, error) {
			return database.NewMongoClient(configs.Mongo)
		})
		if err != nil {
			logger.Fatal("Failed to connect to MongoDB", logger.Err(err))
		}
		sm.Register("mongo", mongoClient.Close)
	} else {
		logger.Warn("MONGO_URI not set, chat disabled")
	}

	// NATS and NSQ are optional; without them events and mail are dropped with a warning
	var events matchgw.EventPublisher
	natsClient, err := nats.NewClient(configs.NATS.URL, appName)
	if err != nil {
		logger.Warn("NATS unavailable, domain events disabled", logger.Err(err))
	} else {
		events = natsClient
		sm.Register("nats", func(context.Context) error { natsClient.Close(); return nil })
	}

	var mail matchgw.MailPublisher
	nsqProducer, err := nsq.NewProducer(configs.NSQ.NSQDAddress)
	if err != nil {
		logger.Warn("NSQ unavailable, mail disabled", logger.Err(err))
	} else {
		mail = nsqProducer
	}

	// Realtime channel and background work
	registry := presence.NewMemoryRegistry()
	wsManager := websocket.NewManager(configs.JWT, registry)

	taskCtx, cancelTasks := context.WithCancel(ctx)
	runner := tasks.NewRunner(taskCtx, backgroundTaskTimeout)

	// Repositories
	db := postgresClient.GetDB()
	matchRepository := matchrepo.NewMatchRepository(configs, db, redisClient)
	paymentRepository := paymentrepo.NewPaymentRepository(configs, db)
	profileRepository := profilerepo.NewProfileRepository(configs, db)

	// Gateways
	matchGateway := matchgw.NewMatchGW(configs, wsManager, mail, events)
	stripeClient := payment.NewStripeClient(configs.Payment)

	// Usecases
	paymentUseCase := paymentuc.NewPaymentUC(configs, paymentRepository, stripeClient, matchGateway)
	matchUseCase := matchuc.NewMatchUC(configs, matchRepository, matchGateway, paymentUseCase, runner)
	profileUseCase := profileuc.NewProfileUC(configs, profileRepository, wsManager)
	notificationUseCase := notificationuc.NewNotificationUC(configs, email.NewClient(configs.Email))

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(logger.NewAccessLogger(configs.Logger.Level, os.Stdout)))

	checks := map[string]health.CheckFunc{
		"postgres": postgresClient.Ping,
		"redis":    redisClient.Ping,
	}
	if natsClient != nil {
		checks["nats"] = natsClient.Ping
	}
	if nsqProducer != nil {
		checks["nsq"] = nsqProducer.Ping
	}
	if mongoClient != nil {
		checks["mongo"] = mongoClient.Ping
	}
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, checks)
	e.GET("/ws", wsManager.HandleConnection)

	paymentHandler := paymenthandler.NewHandler(paymentUseCase)
	paymentHandler.RegisterPublicRoutes(e)

	api := e.Group("", middleware.JWTAuthMiddleware(configs.JWT))
	matchhandler.NewHandler(matchUseCase, configs).RegisterRoutes(api)
	paymentHandler.RegisterRoutes(api)
	profilehandler.NewHandler(profileUseCase).RegisterRoutes(api)

	if mongoClient != nil {
		chatRepository := chatrepo.NewChatRepository(configs, db, mongoClient.Database())
		if err := chatRepository.EnsureIndexes(ctx); err != nil {
			logger.Warn("Chat index not created", logger.Err(err))
		}
		chatUseCase := chatuc.NewChatUC(configs, chatRepository, matchGateway)
		chathandler.NewHandler(chatUseCase).RegisterRoutes(api)
	}

	// Mail consumer
	if nsqProducer != nil {
		mailConsumer := mailhandler.NewMailHandler(notificationUseCase, configs)
		if err := mailConsumer.InitNSQConsumers(); err != nil {
			logger.Warn("Mail consumer not started", logger.Err(err))
		} else {
			sm.Register("mail-consumer", func(context.Context) error { mailConsumer.Stop(); return nil })
		}
		sm.Register("nsq-producer", func(context.Context) error { nsqProducer.Stop(); return nil })
	}

	// Background tasks drain before the consumers and connections close.
	// Whatever outlives the shutdown deadline is cancelled.
	sm.Register("tasks", func(ctx context.Context) error {
		err := runner.Drain(ctx)
		cancelTasks()
		if err != nil {
			logger.Warn("Background tasks cancelled at shutdown deadline", logger.Err(err))
			runner.Wait()
		}
		return err
	})

	// Re-matching sweep
	if configs.Match.SweepInterval > 0 {
		sweep := scheduler.New("pending-service-sweep", configs.Match.SweepInterval, func(ctx context.Context) error {
			result, err := matchUseCase.RecheckPendingServices(ctx)
			if err != nil {
				return err
			}
			logger.Info("Pending service sweep finished",
				logger.Int("checked", result.Checked),
				logger.Int("notified", result.Notified),
				logger.Int("failed", result.Failed))
			return nil
		})
		sweep.Start(ctx)
		sm.Register("sweep", func(context.Context) error { sweep.Stop(); return nil })
	}

	srv := server.NewGracefulServer(e, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second, sm)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server stopped with error", logger.Err(err))
	}
}

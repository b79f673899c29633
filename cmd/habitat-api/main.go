package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"habitat-api/configs"
	"habitat-api/docs"
	"habitat-api/internal/application/controller"
	"habitat-api/internal/application/middleware"
	"habitat-api/internal/application/processor"
	"habitat-api/internal/application/schedule"
	"habitat-api/internal/domain/gateway/cache"
	"habitat-api/internal/domain/gateway/db"
	"habitat-api/internal/domain/gateway/queue"
	"habitat-api/internal/domain/usecase/health"
	"habitat-api/internal/domain/usecase/location"
	"habitat-api/internal/domain/usecase/rating"
	infraaws "habitat-api/internal/infra/aws"
	gormdb "habitat-api/internal/infra/database/gorm"
	"habitat-api/internal/infra/database/sqlc"
	infraredis "habitat-api/internal/infra/redis"
	"habitat-api/pkg/log"
	"habitat-api/pkg/metrics"
	"habitat-api/pkg/msg"
	"habitat-api/pkg/redis"
	"habitat-api/pkg/resource"
	"habitat-api/pkg/sqs"
)

// @title Habitat API
// @version 1.0
// @description City, district and neighborhood lookups plus neighborhood ratings.
// @BasePath /api/v1
func main() {
	defer log.Sync()

	// .env is optional outside local development
	if err := godotenv.Load(); err == nil {
		log.SetLevel(os.Getenv("LOG_LEVEL"))
		if err := resource.Init(propertiesPath()); err != nil {
			log.Warn(msg.GetMessage("app.config.defaults", err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info(msg.GetMessage("app.start", configs.Env.ApplicationName))

	// Init infra
	ratingGateway, dbHealthGateway, closeDB := openDatabase(ctx)
	defer closeDB()

	redisClient := openRedis(ctx)
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Init Gateways
	var summaryCache cache.SummaryCache
	if redisClient != nil {
		summaryCache = cache.NewRedisSummaryCache(redisClient)
	}
	cacheHealthGateway := cache.NewRedisHealthGateway(redisClient)
	queueHealthGateway := queue.NewQueueHealthGateway()

	queueName := resource.GetString("app.queue.rating-events.name")
	var (
		sender    queue.Sender
		sqsClient *awssqs.Client
	)
	if resource.GetBool("app.queue.rating-events.enabled") {
		sqsClient = openSQS(ctx)
		sender = sqs.NewSender(sqsClient)
	} else {
		log.Info(msg.GetMessage("queue.disabled"))
		queueName = ""
	}

	// Init UseCase
	locationUseCase := location.NewLocationUseCase(location.Config{
		MinSearchLength: resource.GetInt("app.location.search.min-length"),
		SuggestLimit:    resource.GetInt("app.location.suggest.default-limit"),
	})
	ratingUseCase := rating.NewRatingUseCase(ratingGateway, summaryCache, sender, rating.Config{
		EventsQueue:     queueName,
		DefaultPageSize: resource.GetInt("app.rating.page.default-size"),
		MaxPageSize:     resource.GetInt("app.rating.page.max-size"),
	})
	healthUseCase := health.NewHealthUseCase(dbHealthGateway, cacheHealthGateway, queueHealthGateway)

	// Init Routes
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestID(e)
	middleware.SetupMetrics(e)
	middleware.SetupRequestLogger(e)

	contextPath := resource.GetString("app.server.context-path")
	api := e.Group(contextPath)
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewLocationController(api, locationUseCase).InitLocationRoutes()
	controller.NewRatingController(api, ratingUseCase).InitRatingRoutes()
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	if resource.GetBool("app.server.docs-enabled") {
		docs.SwaggerInfo.BasePath = contextPath
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	// Init Workers
	var workers sync.WaitGroup
	if sqsClient != nil {
		startRatingWorkers(ctx, &workers, sqsClient, queueName, ratingUseCase, queueHealthGateway)
	}

	// Init Schedule
	var scheduler *schedule.RatingScheduler
	if resource.GetBool("app.rating.warm-up.enabled") {
		var locker schedule.Locker
		if redisClient != nil {
			locker = schedule.RedisLocker{Client: redisClient}
		}
		scheduler = schedule.NewRatingScheduler(ratingUseCase, locker, schedule.RatingSchedulerConfig{
			CronExpression: resource.GetString("app.rating.warm-up.cron"),
			LockTTL:        resource.GetDuration("app.redis.lock.rating-warm-up.ttl"),
		})
		if err := scheduler.InitRatingScheduleTasks(ctx); err != nil {
			scheduler = nil
		}
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", configs.Env.ApplicationName, port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(err.Error())
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(err.Error())
	}
	if scheduler != nil {
		scheduler.Stop()
	}
	workers.Wait()
	log.Info(msg.GetMessage("app.stopped", configs.Env.ApplicationName))
}

func propertiesPath() string {
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		return value
	}
	return "configs/application.yml"
}

// openDatabase selects the rating gateway implementation from app.db.driver.
func openDatabase(ctx context.Context) (db.RatingGateway, db.HealthDBGateway, func()) {
	driver := resource.GetString("app.db.driver")
	settings := sqlc.SettingsFromProperties()
	migrate := resource.GetBool("app.db.auto-migrate")

	if driver == "gorm" {
		gormDB, err := gormdb.Open(ctx, settings)
		if err != nil {
			log.Fatal(msg.GetMessage("db.connect.error", driver, err))
		}
		if migrate {
			if err := gormdb.AutoMigrate(ctx, gormDB); err != nil {
				log.Fatal(msg.GetMessage("db.migrate.error", err))
			}
		}
		log.Info(msg.GetMessage("db.connect.success", driver))
		return db.NewGormRatingGateway(gormDB), db.NewGormHealthDBGateway(gormDB), closeGorm(gormDB)
	}

	sqlDB, err := sqlc.Open(ctx, settings)
	if err != nil {
		log.Fatal(msg.GetMessage("db.connect.error", driver, err))
	}
	if migrate {
		if err := sqlc.EnsureSchema(ctx, sqlDB); err != nil {
			log.Fatal(msg.GetMessage("db.migrate.error", err))
		}
	}
	log.Info(msg.GetMessage("db.connect.success", driver))
	return db.NewSQLCRatingGateway(sqlDB), db.NewSQLCHealthDBGateway(sqlDB), closeSQL(sqlDB)
}

func closeSQL(sqlDB *sql.DB) func() {
	return func() { _ = sqlDB.Close() }
}

func closeGorm(gormDB *gorm.DB) func() {
	return func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// openRedis returns nil when redis is unreachable; the service then runs without a cache
// and without the warm-up lock.
func openRedis(ctx context.Context) *redis.Client {
	config := infraredis.ConfigFromProperties()
	client, err := infraredis.Open(ctx, config)
	if err != nil {
		log.Warn(msg.GetMessage("redis.connect.error", config.Address, err))
		return nil
	}
	log.Info(msg.GetMessage("redis.connect.success", config.Address))
	return client
}

func openSQS(ctx context.Context) *awssqs.Client {
	settings := infraaws.SettingsFromProperties()
	cfg, err := infraaws.LoadConfig(ctx, settings)
	if err != nil {
		log.Fatal(err.Error())
	}
	return infraaws.NewSqsClient(cfg, settings)
}

func startRatingWorkers(ctx context.Context, workers *sync.WaitGroup, client sqs.WorkerAPI, queueName string,
	ratingUseCase rating.UseCase, healthGateway queue.HealthGateway) {
	worker, err := sqs.NewWorker(ctx, client, queueName, processor.NewRatingEventProcessor(ratingUseCase), &sqs.WorkerConfig{
		MaxNumberOfMessages: resource.GetInt32("app.queue.rating-events.max-messages"),
		WaitTimeSeconds:     resource.GetInt32("app.queue.rating-events.wait-seconds"),
		PoolSize:            resource.GetInt("app.queue.rating-events.workers"),
	})
	if err != nil {
		log.Error(msg.GetMessage("queue.worker.error", queueName, err))
		return
	}
	healthGateway.RegisterWorker(queueName, worker)

	workers.Add(1)
	go func() {
		defer workers.Done()
		worker.Start(ctx)
	}()
}

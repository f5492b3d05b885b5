package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	carthttp "github.com/samuraistore/backend/internal/cart/delivery/http"
	cartrepo "github.com/samuraistore/backend/internal/cart/repository"
	cartcommand "github.com/samuraistore/backend/internal/cart/usecase/command"
	cartquery "github.com/samuraistore/backend/internal/cart/usecase/query"
	favhttp "github.com/samuraistore/backend/internal/favorites/delivery/http"
	favdomain "github.com/samuraistore/backend/internal/favorites/domain"
	favrepo "github.com/samuraistore/backend/internal/favorites/repository"
	inquiryhttp "github.com/samuraistore/backend/internal/inquiry/delivery/http"
	inquiryrepo "github.com/samuraistore/backend/internal/inquiry/repository"
	inquirycommand "github.com/samuraistore/backend/internal/inquiry/usecase/command"
	inquiryquery "github.com/samuraistore/backend/internal/inquiry/usecase/query"
	producthttp "github.com/samuraistore/backend/internal/product/delivery/http"
	productdomain "github.com/samuraistore/backend/internal/product/domain"
	productrepo "github.com/samuraistore/backend/internal/product/repository"
	userhttp "github.com/samuraistore/backend/internal/user/delivery/http"
	userdomain "github.com/samuraistore/backend/internal/user/domain"
	userrepo "github.com/samuraistore/backend/internal/user/repository"
	"github.com/samuraistore/backend/kafka"
	"github.com/samuraistore/backend/pkg/database"
	"github.com/samuraistore/backend/pkg/logger"
	"github.com/samuraistore/backend/pkg/middleware"
	"github.com/samuraistore/backend/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "storefront")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting storefront")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "storedb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	gormSQLDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer gormSQLDB.Close()

	// Run migrations
	if err := db.AutoMigrate(&userdomain.User{}, &productdomain.Product{}, &favdomain.Favorite{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Separate database/sql pool for the raw SQL repositories and health checks
	sqlDB, err := database.NewPostgresConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open sql connection")
	}
	defer sqlDB.Close()

	logger.Logger.Info().Msg("Database initialized successfully")

	// Connect to Redis for cart storage
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
	}
	defer redisClient.Close()

	// Repositories with tracing decorators
	userRepo := userrepo.NewGormUserRepositoryWithTracing(db)
	productRepo := productrepo.NewGormProductRepositoryWithTracing(db)
	favoriteRepo := favrepo.NewGormFavoriteRepositoryWithTracing(db)
	cartRepo := cartrepo.NewRedisCartRepository(redisClient)

	inquiryRepo := inquiryrepo.NewPostgresInquiryRepository(sqlDB)
	if err := inquiryRepo.InitSchema(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create inquiry schema")
	}

	// Kafka: checkout publishes order-placed, the catalog consumes it to
	// keep sales counters current. The store works without a broker.
	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")

	var orderPublisher cartcommand.OrderEventPublisher
	publisher, err := kafka.NewPublisher(brokers)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka publisher unavailable, checkout events disabled")
	} else {
		orderPublisher = publisher
		defer publisher.Close()
	}

	// HTTP handlers
	userHandler := userhttp.NewUserHandler(userRepo)
	productHandler := producthttp.NewProductHandler(productRepo)
	favoriteHandler := favhttp.NewFavoriteHandler(favoriteRepo)
	cartHandler := carthttp.NewCartHandler(
		cartcommand.NewAddItemHandler(cartRepo, productRepo),
		cartcommand.NewRemoveItemHandler(cartRepo),
		cartcommand.NewCheckoutHandler(cartRepo, orderPublisher),
		cartquery.NewGetCartHandler(cartRepo),
	)
	inquiryHandler := inquiryhttp.NewInquiryHandler(
		inquirycommand.NewCreateInquiryHandler(inquiryRepo),
		inquiryquery.NewListInquiriesHandler(inquiryRepo),
	)

	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()

	consumer, err := kafka.NewConsumer(brokers, getEnv("KAFKA_GROUP_ID", "storefront"), []string{kafka.TopicOrderPlaced})
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Kafka consumer unavailable, sales ranking will not update")
	} else {
		consumer.RegisterHandler(kafka.EventTypeOrderPlaced, func(ctx context.Context, event kafka.OrderPlacedEvent) error {
			return productHandler.RecordSale(event.ProductID, event.Quantity)
		})
		if err := consumer.Start(consumerCtx); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to start Kafka consumer")
		}
		defer consumer.Close()
	}

	// Setup router
	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware)
	router.Use(func(next http.Handler) http.Handler {
		return middleware.TracingMiddleware("http-request", next)
	})
	userHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	favoriteHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	inquiryHandler.RegisterRoutes(router)

	// Health check endpoint
	userHandler.RegisterHealthCheck(router, sqlDB)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8080")
	server := &http.Server{
		Addr:    ":" + httpPort,
		Handler: c.Handler(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/index.html").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
	stopConsumer()
	shutdownServer(server)
}

func shutdownServer(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

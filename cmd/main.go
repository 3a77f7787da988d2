package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"appointment-booking-api/internal/handlers"
	"appointment-booking-api/internal/jwt"
	"appointment-booking-api/internal/logger"
	"appointment-booking-api/internal/middlewares"
	"appointment-booking-api/internal/repositories"
	"appointment-booking-api/internal/services"

	"appointment-booking-api/internal/facades"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title appointment-booking-api
// @version 1.0.0
// @description Multi-tenant appointment booking service with conflict detection and version history
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		logLevel,
		jwtAccessSecret, jwtRefreshSecret,
		jwtAccessExpSecond, jwtRefreshExpSecond,
		userCacheExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		logLevel,
		jwtAccessSecret, jwtRefreshSecret,
		jwtAccessExpSecond, jwtRefreshExpSecond,
		userCacheExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	logLevel string,
	jwtAccessSecret, jwtRefreshSecret string,
	jwtAccessExpSecond, jwtRefreshExpSecond int,
	userCacheExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "appointments")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if userCacheExpSecond, err = strconv.Atoi(getEnv("USER_CACHE_EXP_SECOND", "300")); err != nil {
		return
	}

	// Kafka config; empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "appointment-events")

	// JWT config
	jwtAccessSecret = getEnv("JWT_ACCESS_SECRET_KEY", "my_super_secret_key")
	jwtRefreshSecret = getEnv("JWT_REFRESH_SECRET_KEY", "my_other_secret_key")
	if jwtAccessExpSecond, err = strconv.Atoi(getEnv("JWT_ACCESS_EXP_SECOND", "900")); err != nil {
		return
	}
	if jwtRefreshExpSecond, err = strconv.Atoi(getEnv("JWT_REFRESH_EXP_SECOND", "604800")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	logLevel string,
	jwtAccessSecret, jwtRefreshSecret string,
	jwtAccessExpSecond, jwtRefreshExpSecond int,
	userCacheExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply migrations
	if migration, err := os.ReadFile("migrations/001_init.sql"); err != nil {
		logger.Log.Infof("migration file not found, skipping: %v", err)
	} else if _, err := db.ExecContext(ctx, string(migration)); err != nil {
		logger.Log.Errorw("migration warning", "error", err)
	} else {
		logger.Log.Info("migration applied")
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for appointment events; nil disables publishing
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwtAccessSecret, jwtRefreshSecret,
		time.Duration(jwtAccessExpSecond)*time.Second,
		time.Duration(jwtRefreshExpSecond)*time.Second,
	)

	// Initialize repositories and facades
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	orgReadRepo := repositories.NewOrganizationReadRepository(db)
	orgWriteRepo := repositories.NewOrganizationWriteRepository(db, middlewares.GetTxFromContext)
	aptReadRepo := repositories.NewAppointmentReadRepository(db)
	aptWriteRepo := repositories.NewAppointmentWriteRepository(db, middlewares.GetTxFromContext)
	versionReadRepo := repositories.NewAppointmentVersionReadRepository(db)
	versionWriteRepo := repositories.NewAppointmentVersionWriteRepository(db, middlewares.GetTxFromContext)
	userCache := facades.NewUserCacheFacade(rdb, time.Duration(userCacheExpSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, userCache, tokens)
	orgService := services.NewOrganizationService(orgReadRepo, orgWriteRepo, aptReadRepo)
	aptService := services.NewAppointmentService(aptReadRepo, aptWriteRepo, versionReadRepo, versionWriteRepo, orgReadRepo, kafkaWriter)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := db.PingContext(req.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	rl := middlewares.NewRateLimiter(5, 10)

	r.Group(func(r chi.Router) {
		r.Use(middlewares.RateLimitMiddleware(rl))
		r.Use(middlewares.TxMiddleware(db))

		// Public routes
		r.Post("/users/signup", handlers.NewSignupHandler(authService))
		r.Post("/users/login", handlers.NewLoginHandler(authService))
		r.Post("/users/refresh", handlers.NewRefreshHandler(authService))

		// Protected routes with bearer-token middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens, authService))

			r.Get("/users/me", handlers.NewMeHandler())

			r.Post("/appointments/", handlers.NewCreateAppointmentHandler(aptService))
			r.Get("/appointments/", handlers.NewListAppointmentsHandler(aptService))
			r.Get("/appointments/{appointmentID}", handlers.NewGetAppointmentHandler(aptService))
			r.Put("/appointments/{appointmentID}", handlers.NewUpdateAppointmentHandler(aptService))
			r.Delete("/appointments/{appointmentID}", handlers.NewDeleteAppointmentHandler(aptService))
			r.Get("/appointments/{appointmentID}/previous_versions", handlers.NewListAppointmentVersionsHandler(aptService))

			r.Post("/organizations/", handlers.NewCreateOrganizationHandler(orgService))
			r.Get("/organizations/", handlers.NewListOrganizationsHandler(orgService))
			r.Get("/organizations/{organizationID}", handlers.NewGetOrganizationHandler(orgService))
			r.Put("/organizations/{organizationID}", handlers.NewUpdateOrganizationHandler(orgService))
			r.Delete("/organizations/{organizationID}", handlers.NewDeleteOrganizationHandler(orgService))
			r.Get("/organizations/{organizationID}/appointments", handlers.NewListOrganizationAppointmentsHandler(orgService))
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

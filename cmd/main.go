package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/keuzekompas/docs"

	"github.com/sbilibin2017/keuzekompas/internal/database"
	"github.com/sbilibin2017/keuzekompas/internal/facades"
	"github.com/sbilibin2017/keuzekompas/internal/handlers"
	"github.com/sbilibin2017/keuzekompas/internal/health"
	"github.com/sbilibin2017/keuzekompas/internal/jwt"
	"github.com/sbilibin2017/keuzekompas/internal/logger"
	"github.com/sbilibin2017/keuzekompas/internal/metrics"
	"github.com/sbilibin2017/keuzekompas/internal/middlewares"
	"github.com/sbilibin2017/keuzekompas/internal/repositories"
	"github.com/sbilibin2017/keuzekompas/internal/security"
	"github.com/sbilibin2017/keuzekompas/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything the service reads from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	JWTSecretKey string
	JWTExpSecond int
	JWTIssuer    string

	KafkaBrokers []string
	KafkaTopic   string

	GRPCPort            string
	HealthCheckInterval time.Duration

	CORSAllowedOrigins []string
	AuthRatePerMinute  int
	AuthRateBurst      int
	AdminEmails        []string
}

// @title KeuzeKompas API
// @version 1.0.0
// @description Course module catalog with favorites and JWT authentication
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath, healthcheck := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if healthcheck {
		if err := checkHealth(context.Background(), net.JoinHostPort("localhost", cfg.GRPCPort)); err != nil {
			log.Fatalf("healthcheck failed: %v", err)
		}
		fmt.Println("SERVING")
		return
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path and
// whether the process should only probe a running instance.
func parseFlags() (string, bool) {
	c := flag.String("c", "config.env", "Path to configuration file")
	hc := flag.Bool("healthcheck", false, "Query the gRPC health endpoint of a running instance and exit")
	flag.Parse()
	return *c, *hc
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, gRPC, logging and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "keuzekompas")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.RedisExpSecond, err = getInt("REDIS_EXP_SECOND", "60"); err != nil {
		return
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWTIssuer = getEnv("JWT_ISSUER", "keuzekompas")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "86400"); err != nil {
		return
	}

	// Kafka config; no brokers disables publishing
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "catalog-events")

	// gRPC health config
	cfg.GRPCPort = getEnv("GRPC_PORT", "50051")
	if cfg.HealthCheckInterval, err = time.ParseDuration(getEnv("HEALTH_CHECK_INTERVAL", "10s")); err != nil {
		err = fmt.Errorf("HEALTH_CHECK_INTERVAL: %w", err)
		return
	}

	// HTTP edge config
	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:4200"))
	if cfg.AuthRatePerMinute, err = getInt("AUTH_RATE_PER_MINUTE", "10"); err != nil {
		return
	}
	if cfg.AuthRateBurst, err = getInt("AUTH_RATE_BURST", "5"); err != nil {
		return
	}
	cfg.AdminEmails = splitList(getEnv("ADMIN_EMAILS", ""))

	return
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// checkHealth asks a running instance whether the catalog service is serving.
func checkHealth(ctx context.Context, addr string) error {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	ok, err := facades.NewHealthGRPCFacade(healthpb.NewHealthClient(conn)).IsServing(ctx, health.ServiceName)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("service is not serving")
	}
	return nil
}

// run initializes the logger, database, Redis, Kafka writer, gRPC health
// server and HTTP server. It blocks until a shutdown signal arrives.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Apply migrations
	if err := database.RunMigrations(database.MigrationURL(cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Database migrations applied")

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for catalog events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		log.Infof("Publishing catalog events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
		jwt.WithIssuer(cfg.JWTIssuer),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	moduleReadRepo := repositories.NewModuleReadRepository(db)
	moduleWriteRepo := repositories.NewModuleWriteRepository(db, middlewares.GetTxFromContext)
	moduleCacheRepo := repositories.NewModuleCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)
	favoriteReadRepo := repositories.NewFavoriteReadRepository(db)
	favoriteWriteRepo := repositories.NewFavoriteWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, kafkaWriter,
		services.WithAdminEmails(cfg.AdminEmails...))
	afterCommit := services.WithAfterCommit(middlewares.AfterCommit)
	moduleService := services.NewModuleService(moduleReadRepo, moduleWriteRepo, moduleCacheRepo,
		security.NewSanitizer(), kafkaWriter, afterCommit)
	favoriteService := services.NewFavoriteService(favoriteReadRepo, favoriteWriteRepo, kafkaWriter, afterCommit)
	userService := services.NewUserService(userReadRepo, userWriteRepo)

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	authLimiter := middlewares.NewRateLimiter(cfg.AuthRatePerMinute, cfg.AuthRateBurst, 10*time.Minute, collector)
	defer authLimiter.Stop()

	router := handlers.NewRouter(&handlers.RouterDeps{
		Tokener:            tokens,
		DB:                 db,
		Metrics:            collector,
		MetricsHandler:     metrics.Handler(reg),
		AuthLimiter:        authLimiter,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Auth:               authService,
		Modules:            moduleService,
		Favorites:          favoriteService,
		Users:              userService,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// gRPC health server
	healthServer := health.NewServer(cfg.HealthCheckInterval, 2*time.Second,
		health.Probe{Name: "postgres", Check: db.PingContext},
		health.Probe{Name: "redis", Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
	)
	grpcServer := grpc.NewServer()
	healthServer.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("grpc listen error: %w", err)
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go healthServer.Run(ctxShutdown)

	go func() {
		log.Infof("gRPC health server listening on %s", lis.Addr())
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		grpcServer.Stop()
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}
	grpcServer.GracefulStop()

	log.Info("Servers stopped gracefully")
	return nil
}

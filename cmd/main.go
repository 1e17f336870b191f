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
	"strings"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/bookmarker/docs"
	"github.com/sbilibin2017/bookmarker/internal/handlers"
	"github.com/sbilibin2017/bookmarker/internal/jwt"
	"github.com/sbilibin2017/bookmarker/internal/logger"
	"github.com/sbilibin2017/bookmarker/internal/middlewares"
	"github.com/sbilibin2017/bookmarker/internal/repositories"
	"github.com/sbilibin2017/bookmarker/internal/router"
	"github.com/sbilibin2017/bookmarker/internal/services"
	"github.com/sbilibin2017/bookmarker/internal/shortcode"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	LogFormat string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	JWTSecretKey     string
	JWTAccessExpSec  int
	JWTRefreshExpSec int

	ShortCodeMaxAttempts int

	KafkaBrokers []string
	KafkaTopic   string
}

// @title bookmarker API
// @version 1.0.0
// @description URL bookmarking service with 3-character short redirect codes
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, logging, JWT and Kafka configuration.
// Variables already set in the process environment win over the file.
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
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", logger.FormatJSON)

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTAccessExpSec, err = getInt("JWT_ACCESS_EXP_SECOND", "900"); err != nil {
		return
	}
	if cfg.JWTRefreshExpSec, err = getInt("JWT_REFRESH_EXP_SECOND", "2592000"); err != nil {
		return
	}

	// Short code config
	if cfg.ShortCodeMaxAttempts, err = getInt("SHORTCODE_MAX_ATTEMPTS", strconv.Itoa(shortcode.DefaultMaxAttempts)); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "bookmark-events")

	return
}

// run initializes the logger, database, Kafka writer and HTTP server.
// It applies migrations, wires the layers and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.Migrate(ctx, db.DB); err != nil {
		return err
	}
	logger.Log.Info("Database migrations applied")

	// Kafka writer, optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			Async:                  true,
			AllowAutoTopicCreation: true,
		}
		defer func() {
			if err := w.Close(); err != nil {
				logger.Log.Errorw("failed to close Kafka writer", "error", err)
			}
		}()
		kafkaWriter = w
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithAccessExpiration(time.Duration(cfg.JWTAccessExpSec)*time.Second),
		jwt.WithRefreshExpiration(time.Duration(cfg.JWTRefreshExpSec)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	bookmarkReadRepo := repositories.NewBookmarkReadRepository(db, middlewares.GetTxFromContext)
	bookmarkWriteRepo := repositories.NewBookmarkWriteRepository(db, middlewares.GetTxFromContext)

	codes, err := shortcode.New(bookmarkReadRepo, shortcode.WithMaxAttempts(cfg.ShortCodeMaxAttempts))
	if err != nil {
		return err
	}

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	publishAfterCommit := services.WithCommitHook(middlewares.AfterCommit)
	bookmarkService := services.NewBookmarkService(bookmarkReadRepo, bookmarkWriteRepo, codes, kafkaWriter, publishAfterCommit)
	redirectService := services.NewRedirectService(bookmarkWriteRepo, kafkaWriter, publishAfterCommit)

	// Setup router
	r := router.New(router.Deps{
		DB:        db,
		Tokens:    tokens,
		Auth:      authService,
		Bookmarks: bookmarkService,
		Redirects: redirectService,
		Build: handlers.BuildInfo{
			Version:   buildVersion,
			Commit:    buildCommit,
			BuildDate: buildDate,
		},
		StartTime:  time.Now(),
		SwaggerURL: fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

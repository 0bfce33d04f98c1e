package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/segmentio/kafka-go"

	"github.com/YanWittmann/launch-anything/internal/config"
	"github.com/YanWittmann/launch-anything/internal/handlers"
	"github.com/YanWittmann/launch-anything/internal/logger"
	"github.com/YanWittmann/launch-anything/internal/middlewares"
	"github.com/YanWittmann/launch-anything/internal/migrations"
	"github.com/YanWittmann/launch-anything/internal/repositories"
	"github.com/YanWittmann/launch-anything/internal/services"

	_ "github.com/YanWittmann/launch-anything/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title launch-anything cloud API
// @version 1.0.0
// @description Backend for the tile launcher cloud sync: per-user tiles behind username/password authentication
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// run initializes the logger, database, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PostgresHost, cfg.PostgresPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Apply migrations
	if err := migrations.Up(db); err != nil {
		logger.Log.Errorw("failed to apply migrations", "error", err)
		return err
	}

	// Kafka writer for audit events, optional
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Audit events published to topic %s", cfg.KafkaTopic)
	} else {
		logger.Log.Info("No Kafka brokers configured, audit events disabled")
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	tileReadRepo := repositories.NewTileReadRepository(db)
	tileWriteRepo := repositories.NewTileWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo)
	userService := services.NewUserService(userReadRepo, userWriteRepo, authService, kafkaWriter)
	tileService := services.NewTileService(tileReadRepo, tileWriteRepo, authService, kafkaWriter)

	// Initialize handlers
	createUserHandler := handlers.NewCreateUserHandler(userService)
	renameUserHandler := handlers.NewRenameUserHandler(userService)
	changePasswordHandler := handlers.NewChangePasswordHandler(userService)
	deleteUserHandler := handlers.NewDeleteUserHandler(userService)
	createOrModifyTileHandler := handlers.NewCreateOrModifyTileHandler(tileService)
	removeTileHandler := handlers.NewRemoveTileHandler(tileService)
	listTilesHandler := handlers.NewListTilesHandler(tileService)
	pingHandler := handlers.NewPingHandler(db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		// Read-only routes
		r.Post("/tiles", listTilesHandler)

		// Mutating routes run inside a per-request transaction
		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(db))
			r.Post("/user", createUserHandler)
			r.Post("/user/rename", renameUserHandler)
			r.Post("/user/password", changePasswordHandler)
			r.Post("/user/remove", deleteUserHandler)
			r.Post("/tile", createOrModifyTileHandler)
			r.Post("/tile/remove", removeTileHandler)
		})
	})

	r.Get("/ping", pingHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

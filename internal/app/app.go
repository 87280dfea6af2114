package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/redis/go-redis/v9"

	"github.com/inboxwarm/inboxwarm/config"
	"github.com/inboxwarm/inboxwarm/internal/database"
	"github.com/inboxwarm/inboxwarm/internal/domain"
	httpHandler "github.com/inboxwarm/inboxwarm/internal/http"
	"github.com/inboxwarm/inboxwarm/internal/repository"
	"github.com/inboxwarm/inboxwarm/internal/service"
	"github.com/inboxwarm/inboxwarm/pkg/logger"
)

// App encapsulates the worker's dependencies and lifecycle: the two
// background loops, the operator HTTP surface, and the connections
// they share.
type App struct {
	config *config.Config
	logger logger.Logger

	db    *sql.DB
	redis *redis.Client

	// Repositories
	credentialRepo domain.CredentialRepository
	logRepo        domain.WarmupLogRepository
	cooldownStore  domain.CooldownStore
	queue          domain.WarmupQueue

	// Services
	credentialService *service.CredentialService
	dispatcher        *service.DispatcherService
	rescuer           *service.RescuerService
	ingest            *service.IngestService
	batch             *service.BatchProcessor

	// HTTP
	mux    *http.ServeMux
	server *http.Server

	// Loop lifecycle
	loopCtx    context.Context
	loopCancel context.CancelFunc
	loopWg     sync.WaitGroup
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// WithMockDB configures the app to use a mock database
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithMockQueue configures the app to use a mock warmup queue
func WithMockQueue(q domain.WarmupQueue) AppOption {
	return func(a *App) {
		a.queue = q
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	loopCtx, loopCancel := context.WithCancel(context.Background())

	app := &App{
		config:     cfg,
		logger:     logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:        http.NewServeMux(),
		loopCtx:    loopCtx,
		loopCancel: loopCancel,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitDB initializes the database connection and schema
func (a *App) InitDB() error {
	if a.db != nil {
		return nil
	}

	a.logger.Info(fmt.Sprintf("Connecting to database %s:%d, user %s, sslmode %s, dbname: %s",
		a.config.Database.Host, a.config.Database.Port, a.config.Database.User,
		a.config.Database.SSLMode, a.config.Database.DBName))

	db, err := database.Connect(&a.config.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.EnsureSchema(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	a.db = db
	return nil
}

// InitRedis initializes the Redis connection
func (a *App) InitRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr:     a.config.Redis.Addr,
		Password: a.config.Redis.Password,
		DB:       a.config.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	a.redis = client
	return nil
}

// InitQueue initializes the SQS-backed warmup queue
func (a *App) InitQueue() error {
	if a.queue != nil {
		return nil
	}

	awsConfig := aws.NewConfig().WithRegion(a.config.Queue.Region)
	if a.config.Queue.AccessKeyID != "" {
		awsConfig = awsConfig.WithCredentials(credentials.NewStaticCredentials(
			a.config.Queue.AccessKeyID, a.config.Queue.SecretAccessKey, ""))
	}
	if a.config.Queue.Endpoint != "" {
		awsConfig = awsConfig.WithEndpoint(a.config.Queue.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return fmt.Errorf("failed to create AWS session: %w", err)
	}

	a.queue = repository.NewSQSWarmupQueue(sqs.New(sess), a.config.Queue.URL, a.logger)
	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database must be initialized before repositories")
	}
	if a.redis == nil {
		return fmt.Errorf("redis must be initialized before repositories")
	}

	a.credentialRepo = repository.NewCredentialPostgresRepository(a.db)
	a.logRepo = repository.NewWarmupLogPostgresRepository(a.db)
	a.cooldownStore = repository.NewRedisCooldownStore(a.redis, a.logger)

	return nil
}

// InitServices initializes all application services
func (a *App) InitServices() error {
	a.credentialService = service.NewCredentialService(
		a.credentialRepo,
		a.config.Security.SecretKeyBytes,
		a.logger,
	)

	a.dispatcher = service.NewDispatcherService(
		a.credentialService,
		a.config.OAuth.ClientID,
		a.config.OAuth.ClientSecret,
		a.logger,
	)

	a.rescuer = service.NewRescuerService(
		a.credentialService,
		a.config.OAuth.ClientID,
		a.config.OAuth.ClientSecret,
		a.logger,
	)

	a.ingest = service.NewIngestService(a.queue, a.cooldownStore, a.logger)

	a.batch = service.NewBatchProcessor(
		a.cooldownStore,
		a.queue,
		a.dispatcher,
		a.rescuer,
		a.logRepo,
		a.logger,
	)
	a.batch.SetMaxConcurrent(a.config.Worker.MaxConcurrentSenders)

	return nil
}

// InitHandlers initializes the HTTP handlers and routes
func (a *App) InitHandlers() error {
	a.mux = http.NewServeMux()

	oauthHandler := httpHandler.NewOAuthHandler(
		a.credentialRepo,
		a.credentialService,
		a.config.Security.SecretKeyBytes,
		a.config.OAuth,
		a.config.Version,
		a.logger,
	)
	oauthHandler.RegisterRoutes(a.mux)

	return nil
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting warmup worker")

	if err := a.InitDB(); err != nil {
		return err
	}

	if err := a.InitRedis(); err != nil {
		return err
	}

	if err := a.InitQueue(); err != nil {
		return err
	}

	if err := a.InitRepositories(); err != nil {
		return err
	}

	if err := a.InitServices(); err != nil {
		return err
	}

	if err := a.InitHandlers(); err != nil {
		return err
	}

	a.logger.Info("Application successfully initialized")
	return nil
}

// Start launches the ingest and batch loops and serves HTTP until the
// server is shut down.
func (a *App) Start() error {
	a.loopWg.Add(2)
	go func() {
		defer a.loopWg.Done()
		a.ingest.Start(a.loopCtx)
	}()
	go func() {
		defer a.loopWg.Done()
		a.batch.Start(a.loopCtx)
	}()

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).Info(fmt.Sprintf("Server starting on %s", addr))

	a.server = &http.Server{
		Addr:    addr,
		Handler: a.mux,
	}

	return a.server.ListenAndServe()
}

// Shutdown gracefully stops the loops, the HTTP server and the shared
// connections. In-flight queue messages are left to visibility timeout.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")

	a.loopCancel()

	loopsDone := make(chan struct{})
	go func() {
		a.loopWg.Wait()
		close(loopsDone)
	}()
	select {
	case <-loopsDone:
		a.logger.Info("Background loops stopped")
	case <-ctx.Done():
		a.logger.Warn("Shutdown timeout reached while waiting for loops")
	}

	var shutdownErr error
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			a.logger.WithField("error", err).Error("Error shutting down HTTP server")
			shutdownErr = err
		}
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.WithField("error", err).Error("Error closing redis connection")
			if shutdownErr == nil {
				shutdownErr = err
			}
		}
	}

	if a.db != nil {
		a.logger.Info("Closing database connection")
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err).Error("Error closing database connection")
			if shutdownErr == nil {
				shutdownErr = err
			}
		}
	}

	if shutdownErr == nil {
		a.logger.Info("Graceful shutdown completed successfully")
	}
	return shutdownErr
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app's logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetMux returns the app's HTTP multiplexer
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the app's database connection
func (a *App) GetDB() *sql.DB {
	return a.db
}

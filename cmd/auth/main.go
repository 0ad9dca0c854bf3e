package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/awslabs/aws-lambda-go-api-proxy/gorillamux"
	"golang.org/x/sync/errgroup"

	appConfig "github.com/iqbal-singh-1/ideathon/internal/config"
	"github.com/iqbal-singh-1/ideathon/internal/core"
	"github.com/iqbal-singh-1/ideathon/internal/database"
	applog "github.com/iqbal-singh-1/ideathon/internal/logger"
)

func openStore(ctx context.Context, cfg *appConfig.Config, logger *slog.Logger) (core.Database, func(), error) {
	noop := func() {}

	switch cfg.UserStore {
	case appConfig.StoreDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, noop, fmt.Errorf("load aws config: %w", err)
		}
		logger.Info("using dynamodb user store", "table", cfg.UsersTable)
		return database.New(dynamodb.NewFromConfig(awsCfg), cfg.UsersTable), noop, nil

	case appConfig.StorePostgres:
		db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("database connection failed: %w", err)
		}
		if err := database.RunMigrations(db); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("migration failed: %w", err)
		}
		logger.Info("using postgres user store")
		return database.NewPostgres(db), func() { db.Close() }, nil

	default:
		logger.Warn("using in-memory user store; users are lost on restart")
		return database.NewMemory(), noop, nil
	}
}

func run() error {
	ctx := context.Background()

	cfg := appConfig.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger := applog.New(os.Stdout, cfg.Env, cfg.LogLevel)

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := core.NewService(store, cfg.JWTSecret, logger)
	handler := core.NewHandler(svc, logger)
	router := core.NewRouter(handler, core.RouterConfig{
		JWTSecret:       cfg.JWTSecret,
		MetricsUsername: cfg.MetricsUsername,
		MetricsPassword: cfg.MetricsPassword,
	})

	if appConfig.InLambda() {
		logger.Info("starting lambda handler")
		lambda.Start(gorillamux.New(router).ProxyWithContext)
		return nil
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(sigCtx)
	g.Go(func() error {
		logger.Info("server started", "address", server.Addr, "env", cfg.Env, "store", cfg.UserStore)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received, draining connections")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("graceful shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

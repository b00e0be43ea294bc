// Agent run coordinator server — provides the orchestration HTTP API,
// manages queue workers, and hands runs to the external interpreter.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/agentforge/arc/pkg/api"
	"github.com/agentforge/arc/pkg/cleanup"
	"github.com/agentforge/arc/pkg/config"
	"github.com/agentforge/arc/pkg/database"
	"github.com/agentforge/arc/pkg/graph"
	"github.com/agentforge/arc/pkg/interpreter"
	"github.com/agentforge/arc/pkg/queue"
	"github.com/agentforge/arc/pkg/services"
	"github.com/agentforge/arc/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting arc",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Interpreter client
	// Note: grpc.NewClient uses lazy dialing; actual connection happens on
	// the first RPC call.
	var interp interpreter.Client
	if cfg.Interpreter.UseStub {
		interp = interpreter.NewStub()
		slog.Warn("Using in-process interpreter stub")
	} else {
		addr := cfg.Interpreter.GRPCAddr
		if addr == "" {
			addr = getEnv("INTERPRETER_SERVICE_ADDR", "localhost:50051")
		}
		grpcInterp, err := interpreter.NewGRPCClient(addr)
		if err != nil {
			slog.Error("Failed to initialize interpreter client", "addr", addr, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := grpcInterp.Close(); err != nil {
				slog.Error("Error closing interpreter client", "error", err)
			}
		}()
		interp = grpcInterp
		slog.Info("Interpreter client initialized", "addr", addr)
	}

	// 4. Domain services
	identityService := services.NewIdentityService(dbClient.Client, true)
	policyService := services.NewPolicyService(dbClient.Client, cfg.PolicyDefaults)
	runService := services.NewRunService(dbClient.Client, identityService)
	joinService := services.NewJoinService(dbClient.Client, cfg.Features)
	cancelService := services.NewCancelService(dbClient.Client, cfg.Features)
	validator := graph.NewValidator(dbClient.Client, cfg.Features, policyService)
	slog.Info("Services initialized")

	// 5. Worker pool (before the HTTP server, so background launches have
	// somewhere to land)
	executor := queue.NewInterpreterExecutor(dbClient.Client, interp, cfg.Queue)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	spawnService := services.NewSpawnService(
		dbClient.Client, identityService, policyService, cfg.Features, workerPool)

	// 6. Retention loop: token registry sweep and terminal run pruning
	cleanupService := cleanup.NewService(cfg.Retention, identityService, runService)
	cleanupService.Start(ctx)

	// 7. HTTP server
	router := gin.New()
	router.Use(gin.Recovery())
	httpServer := api.NewServer(
		dbClient, runService, spawnService, joinService, cancelService, validator, workerPool)
	httpServer.RegisterRoutes(router)

	server := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("arc started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount)

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: workers first (they finish their runs), then
	// the HTTP server.
	cleanupService.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — interrupted runs stay claimable by status")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := server.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/config"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain/memory"
	logpkg "github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/logger"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/metrics"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/repository/memstore"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/tool"
	chiTransport "github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/transport/chi"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/transport/stdio"
	healthuc "github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/usecase/health"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/usecase/memnote"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/usecase/memsearch"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting dealdesk tool server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("business_root", cfg.Memory.BusinessRoot),
		zap.String("legacy_root", cfg.Memory.LegacyRoot),
		zap.Bool("http_enabled", cfg.HTTP.Enabled),
	)

	// Roots are fixed configuration: resolved once here, never re-resolved
	// per call. A missing root is a normal empty collection.
	store := memstore.New(memstore.Config{
		BusinessRoot: cfg.Memory.BusinessRoot,
		LegacyRoot:   cfg.Memory.LegacyRoot,
	})

	// Create use case services
	searchSvc := memsearch.New(store)
	noteSvc := memnote.New(store)
	healthSvc := healthuc.New(store, []memory.Collection{memory.Business, memory.Legacy})

	metrics.RegisterToolMetrics()

	registry := tool.DefaultRegistry(searchSvc, noteSvc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional HTTP surface
	var srv *http.Server
	if cfg.HTTP.Enabled {
		httpServer := chiTransport.NewServer(registry, healthSvc, logger)

		addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
		srv = &http.Server{
			Addr:         addr,
			Handler:      jsonRecoverer(logger)(httpServer.Routes()),
			ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
			WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
		}

		go func() {
			logger.Info("Starting HTTP server", zap.String("addr", addr))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Fatal("HTTP server error", zap.Error(err))
			}
		}()
	}

	// Stdio protocol server: runs until the host closes stdin.
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- stdio.NewServer(registry, os.Stdin, os.Stdout, logger).Serve(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveDone:
		if err != nil {
			logger.Error("Stdio server error", zap.Error(err))
		} else {
			logger.Info("Stdin closed")
		}
	case <-quit:
		logger.Info("Received shutdown signal")
		cancel()
	}

	if srv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(
			context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error during shutdown", zap.Error(err))
		}
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Leganyst/wellness-catalog/internal/catalog"
	"github.com/Leganyst/wellness-catalog/internal/config"
	"github.com/Leganyst/wellness-catalog/internal/health"
	"github.com/Leganyst/wellness-catalog/internal/httpapi"
	"github.com/Leganyst/wellness-catalog/internal/model"
	"github.com/Leganyst/wellness-catalog/internal/persist"
	"github.com/Leganyst/wellness-catalog/internal/static"
)

func main() {
	// 1. .env опционален, переменные окружения важнее.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Удалённая БД: решаем один раз при старте.
	conn := catalog.Connect(cfg.Remote)
	src := static.NewDirSource(cfg.BasePath)

	switch c := conn.(type) {
	case catalog.Unconfigured:
		logger.Warn("remote catalog not configured, serving static data", "reason", c.Reason)
	case catalog.Remote:
		sqlDB, err := c.DB.DB()
		if err != nil {
			logger.Error("sql DB", "err", err)
			os.Exit(1)
		}
		defer sqlDB.Close()

		// 3. Миграции и начальное наполнение по флагам.
		if cfg.AutoMigrate {
			if err := model.AutoMigrate(c.DB); err != nil {
				logger.Error("auto migrate", "err", err)
				os.Exit(1)
			}
		}
		if cfg.SeedFromStatic {
			if _, err := catalog.SeedRemote(ctx, conn, src, logger); err != nil {
				logger.Error("seed remote catalog", "err", err)
			}
		}
	}

	// 4. Каталог: статический снапшот нужен и как запасной вариант для чтения.
	fallback, err := src.Services(ctx)
	if err != nil {
		logger.Warn("load fallback services", "err", err)
	}

	var writer catalog.SnapshotWriter = persist.Nop{}
	if cfg.WriteEndpoint != "" {
		writer = persist.NewWriter(cfg.WriteEndpoint)
	}

	remote := catalog.NewRemoteSource(conn, fallback, logger)
	manager := catalog.NewManager(remote, src, writer, logger)
	if err := manager.Initialize(ctx); err != nil {
		logger.Error("initialize catalog", "err", err)
		os.Exit(1)
	}

	// 5. HTTP API.
	gin.SetMode(gin.ReleaseMode)
	router, err := httpapi.NewRouter(httpapi.NewHandler(manager, static.NewStore(cfg.BasePath), logger))
	if err != nil {
		logger.Error("init router", "err", err)
		os.Exit(1)
	}
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("catalog HTTP server listening", "addr", cfg.HTTPAddr, "backend", manager.Backend())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "err", err)
			stop()
		}
	}()

	// 6. gRPC health + reflection.
	healthServer := health.NewServer()
	healthServer.Update(manager)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("listen", "addr", cfg.GRPCAddr, "err", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("catalog gRPC health server listening", "addr", cfg.GRPCAddr)
		if err := healthServer.GRPC().Serve(lis); err != nil {
			logger.Error("grpc serve", "err", err)
			stop()
		}
	}()

	// 7. Грейсфул-шатдаун по сигналу.
	<-ctx.Done()
	logger.Info("shutting down servers...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", "err", err)
	}
	healthServer.Shutdown()
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/detailing-scheduler/internal/audit"
	"github.com/BruksfildServices01/detailing-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/detailing-scheduler/internal/db"
	"github.com/BruksfildServices01/detailing-scheduler/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/detailing-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/detailing-scheduler/internal/logger"
	"github.com/BruksfildServices01/detailing-scheduler/internal/metrics"
	"github.com/BruksfildServices01/detailing-scheduler/internal/middleware"
	"github.com/BruksfildServices01/detailing-scheduler/internal/routes"
	ucAuth "github.com/BruksfildServices01/detailing-scheduler/internal/usecase/auth"
	"github.com/BruksfildServices01/detailing-scheduler/internal/validators"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := dbpkg.NewDB(cfg, zlog)
	if err != nil {
		zlog.Fatal("database unavailable", zap.Error(err))
	}

	rdb, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		zlog.Warn("redis unavailable, availability cache disabled", zap.Error(err))
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
	}

	if err := validators.RegisterBindings(); err != nil {
		zlog.Fatal("register validators", zap.Error(err))
	}

	authSvc := ucAuth.NewService(infraRepo.NewUserGormRepository(db), cfg.JWTSecret, cfg.JWTExpiration)
	if err := authSvc.EnsureAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		zlog.Fatal("ensure admin user", zap.Error(err))
	}

	auditLogger := audit.New(db)
	dispatcher := audit.NewDispatcher(auditLogger, zlog, 100)
	m := metrics.New()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Recovery(zlog),
		middleware.RequestLogger(zlog),
		middleware.CORSMiddleware(cfg.AllowedOrigins),
	)
	if cfg.MetricsEnabled {
		r.Use(middleware.Metrics(m))
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg, routes.Infra{
		DB:          db,
		Redis:       rdb,
		Log:         zlog,
		Metrics:     m,
		AuditLogger: auditLogger,
		Audit:       dispatcher,
		Auth:        authSvc,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server running", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("server shutdown", zap.Error(err))
	}
	if err := dispatcher.Close(ctx); err != nil {
		zlog.Warn("audit queue not drained", zap.Error(err))
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/config"
	"github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/repository/mongodb"
	"github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/repository/sheets"
	"github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/scheduler"
	"github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/server/handlers"
	"github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/server/router"
	auditsvc "github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/service/audit"
	snapshotsvc "github.com/stevebarrettsrha-ops/Asset-Dashboard/internal/service/snapshot"
	"github.com/stevebarrettsrha-ops/Asset-Dashboard/pkg/clients/notify"
	"github.com/stevebarrettsrha-ops/Asset-Dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
	if err != nil {
		baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
	}

	var archiver auditsvc.Archiver
	var snapshotStore snapshotsvc.Store
	if cfg.MongoDB.Enabled() {
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		archiver = mongoRepo
		snapshotStore = mongoRepo
		baseLogger.Info("mongodb archive store enabled")
	} else {
		baseLogger.Warn("mongodb uri missing, deleted-entry archive and snapshots disabled")
	}

	var notifier auditsvc.Notifier
	if cfg.Notify.Enabled() {
		notifier = notify.NewClient(cfg.Notify)
		baseLogger.Info("webhook notifier enabled")
	}

	auditGateway := auditsvc.NewService(sheetsRepo, archiver, notifier, baseLogger.Named("svc.audit"))
	auditHandler := handlers.NewAuditHandler(auditGateway, baseLogger.Named("handlers.audit"))
	engine := router.New(auditHandler, baseLogger.Named("router"))

	if snapshotStore != nil {
		snapshotSvc := snapshotsvc.NewService(auditGateway, snapshotStore, baseLogger.Named("svc.snapshot"))
		sched := scheduler.NewScheduler(cfg.Snapshot, snapshotSvc, baseLogger.Named("scheduler"))
		sched.Start()
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

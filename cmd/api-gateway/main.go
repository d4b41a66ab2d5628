package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/scottwatt/ITGportal-sub000/internal/handler"
	"github.com/scottwatt/ITGportal-sub000/internal/middleware"
	"github.com/scottwatt/ITGportal-sub000/internal/repository"
	"github.com/scottwatt/ITGportal-sub000/internal/service"
	"github.com/scottwatt/ITGportal-sub000/pkg/cache"
	"github.com/scottwatt/ITGportal-sub000/pkg/config"
	"github.com/scottwatt/ITGportal-sub000/pkg/database"
	"github.com/scottwatt/ITGportal-sub000/pkg/jobs"
	"github.com/scottwatt/ITGportal-sub000/pkg/logger"
	corsmiddleware "github.com/scottwatt/ITGportal-sub000/pkg/middleware/cors"
	reqidmiddleware "github.com/scottwatt/ITGportal-sub000/pkg/middleware/requestid"
	"github.com/scottwatt/ITGportal-sub000/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Board.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, board cache disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Board.CacheTTL, logr, true)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	clientRepo := repository.NewClientRepository(db)
	coachRepo := repository.NewCoachRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)
	requestRepo := repository.NewSessionRequestRepository(db)

	catalog := service.DefaultSlotCatalog()
	validate := validator.New()
	gate := service.NewCoachGate(coachRepo)
	checker := service.NewConflictChecker(logr,
		service.NewAssignmentConflictSource(assignmentRepo, catalog),
		service.NewTrainingConflictSource(trainingRepo),
		service.NewRequestConflictSource(requestRepo),
	)

	availabilitySvc := service.NewAvailabilityService(clientRepo, assignmentRepo, cacheSvc, logr)
	bookingSvc := service.NewBookingService(clientRepo, assignmentRepo, gate, checker, catalog, validate, cacheSvc, metricsSvc, logr)
	replicatorSvc := service.NewReplicatorService(assignmentRepo, clientRepo, coachRepo, gate, catalog, validate, cacheSvc, metricsSvc, logr)
	exportSvc := service.NewExportService(replicatorSvc, logr)
	coachSvc := service.NewCoachService(coachRepo, cacheSvc, logr)

	var exportJobSvc *service.ExportJobService
	if cfg.Exports.Enabled {
		archive, err := storage.NewExportArchive(cfg.Exports.Dir)
		if err != nil {
			logr.Sugar().Fatalw("failed to init export archive", "error", err)
		}
		signer := storage.NewDownloadSigner(cfg.JWT.Secret, cfg.Exports.DownloadTTL)
		exportJobSvc = service.NewExportJobService(exportSvc, archive, signer, jobs.Options{Workers: cfg.Exports.Workers}, logr)
		exportJobSvc.Start(context.Background(), cfg.Exports.ArchiveTTL)
		defer exportJobSvc.Stop()
	}

	schedulerHandler := handler.NewSchedulerHandler(availabilitySvc, bookingSvc)
	replicatorHandler := handler.NewReplicatorHandler(replicatorSvc)
	exportHandler := handler.NewExportHandler(exportSvc, exportJobSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)
	coachHandler := handler.NewCoachHandler(coachSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	api.GET("/timeslots", schedulerHandler.ListTimeSlots)
	api.GET("/days/:date/board", schedulerHandler.DayBoard)
	api.GET("/days/:date/assignments", schedulerHandler.ListAssignments)
	api.GET("/days/:date/classification", schedulerHandler.Classify)
	api.GET("/coaches", coachHandler.ListCoaches)
	api.GET("/metrics/summary", metricsHandler.Summary)
	if cfg.Exports.Enabled {
		api.GET("/days/:date/export", exportHandler.ExportDay)
		api.GET("/exports/:id", exportHandler.ExportJobStatus)
		api.GET("/exports/download", exportHandler.DownloadExport)
	}

	protected := api.Group("")
	protected.Use(middleware.JWT(cfg.JWT.Secret))
	protected.POST("/assignments", schedulerHandler.Book)
	protected.DELETE("/assignments/:id", schedulerHandler.Unassign)
	protected.POST("/days/:date/copy", replicatorHandler.CopyDay)
	protected.POST("/days/paste-preview", replicatorHandler.PastePreview)
	protected.POST("/days/paste", replicatorHandler.ApplyPaste)
	protected.PUT("/coaches/:id/availability", coachHandler.SetAvailability)
	if cfg.Exports.Enabled {
		protected.POST("/exports", exportHandler.CreateExportJob)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

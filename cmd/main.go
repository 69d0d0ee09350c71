package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nutritrack/config"
	"nutritrack/controllers"
	"nutritrack/logger"
	"nutritrack/routes"
	"nutritrack/services"
	"nutritrack/stores"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Env))
	defer func() { _ = baseLogger.Sync() }()
	zap.ReplaceGlobals(baseLogger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	loc, err := cfg.Location()
	if err != nil {
		baseLogger.Fatal("invalid timezone", zap.Error(err))
	}

	db, err := config.InitDB(cfg, logger.Named(baseLogger, "db"))
	if err != nil {
		baseLogger.Fatal("failed to init database", zap.Error(err))
	}

	userStore := stores.NewUserStore(db)
	mealStore := stores.NewMealLogStore(db)
	dayStore := stores.NewDayGoalStore(db)
	shoppingStore := stores.NewShoppingListStore(db)

	hub := services.NewRealtimeHub(logger.Named(baseLogger, "realtime"))
	userSvc := services.NewUserService(userStore, logger.Named(baseLogger, "svc.users"))
	goalSvc := services.NewGoalService(userStore, dayStore, hub, loc, logger.Named(baseLogger, "svc.goals"))
	mealSvc := services.NewMealLogService(mealStore, logger.Named(baseLogger, "svc.meals"))
	reportSvc := services.NewReportService(mealStore, dayStore, loc, logger.Named(baseLogger, "svc.reports"))
	shoppingSvc := services.NewShoppingListService(shoppingStore, mealStore, logger.Named(baseLogger, "svc.shopping"))

	var publisher services.ReportPublisher
	if cfg.AWS.ReportTopicARN != "" {
		p, err := services.NewSNSReportPublisher(context.Background(), cfg.AWS.Region, cfg.AWS.ReportTopicARN, logger.Named(baseLogger, "publisher.sns"))
		if err != nil {
			baseLogger.Fatal("failed to init sns publisher", zap.Error(err))
		}
		publisher = p
		baseLogger.Info("sns report publishing enabled", zap.String("topic", cfg.AWS.ReportTopicARN))
	} else {
		baseLogger.Warn("SNS_REPORT_TOPIC_ARN missing, weekly reports go to realtime listeners only")
	}

	sched := services.NewReportScheduler(cfg.Reporting.CronSchedule, userStore, reportSvc, hub, publisher, logger.Named(baseLogger, "scheduler"))
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}

	engine := routes.SetupRouter(routes.Controllers{
		Users:    controllers.NewUserController(userSvc, logger.Named(baseLogger, "handlers.users")),
		Goals:    controllers.NewGoalController(goalSvc, loc, logger.Named(baseLogger, "handlers.goals")),
		Meals:    controllers.NewMealLogController(mealSvc, loc, logger.Named(baseLogger, "handlers.meals")),
		Reports:  controllers.NewReportController(reportSvc, logger.Named(baseLogger, "handlers.reports")),
		Shopping: controllers.NewShoppingListController(shoppingSvc, loc, logger.Named(baseLogger, "handlers.shopping")),
		Realtime: controllers.NewRealtimeController(hub, logger.Named(baseLogger, "handlers.realtime")),
	}, cfg.CORSOrigins, logger.Named(baseLogger, "router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Port))
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
	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		baseLogger.Warn("weekly digest still running at shutdown")
	}
}

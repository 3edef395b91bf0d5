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

	"github.com/sitepay-hq/sitepay-backend-go/internal/config"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/payroll"
	appHTTP "github.com/sitepay-hq/sitepay-backend-go/internal/handler/http"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/database"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/jwt"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/sse"
	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/storage"
	"github.com/sitepay-hq/sitepay-backend-go/internal/repository/postgresql"
	authService "github.com/sitepay-hq/sitepay-backend-go/internal/service/auth"
	notificationService "github.com/sitepay-hq/sitepay-backend-go/internal/service/notification"
	payrollService "github.com/sitepay-hq/sitepay-backend-go/internal/service/payroll"
	projectService "github.com/sitepay-hq/sitepay-backend-go/internal/service/project"
	reportService "github.com/sitepay-hq/sitepay-backend-go/internal/service/report"
	siteTimesheetService "github.com/sitepay-hq/sitepay-backend-go/internal/service/sitetimesheet"
	timesheetService "github.com/sitepay-hq/sitepay-backend-go/internal/service/timesheet"
	workerService "github.com/sitepay-hq/sitepay-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	siteTimesheetRepo := postgresql.NewSiteTimesheetRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	engineConfig := payroll.DefaultEngineConfig()
	engineConfig.StandardHoursPerPeriod = cfg.Payroll.StandardHoursPerPeriod
	engineConfig.OvertimeMultiplier = cfg.Payroll.OvertimeMultiplier
	engineConfig.SuperRate = cfg.Payroll.SuperRate
	if err := engineConfig.Validate(); err != nil {
		log.Fatal("Invalid payroll engine configuration: ", err)
	}

	authSvc := authService.NewAuthService(userRepo, jwtService)
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub, logger)
	workerSvc := workerService.NewWorkerService(workerRepo)
	projectSvc := projectService.NewProjectService(projectRepo, userRepo)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetRepo, workerRepo, notificationSvc)
	siteTimesheetSvc := siteTimesheetService.NewSiteTimesheetService(siteTimesheetRepo, projectRepo, notificationSvc, hub)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, workerRepo, timesheetRepo, notificationSvc, hub, fileStorage, engineConfig, logger)
	reportSvc := reportService.NewReportService(projectRepo, siteTimesheetRepo, timesheetRepo, payrollRepo)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:           jwtService,
		AuthHandler:          appHTTP.NewAuthHandler(authSvc, jwtService),
		WorkerHandler:        appHTTP.NewWorkerHandler(workerSvc),
		ProjectHandler:       appHTTP.NewProjectHandler(projectSvc),
		TimesheetHandler:     appHTTP.NewTimesheetHandler(timesheetSvc),
		SiteTimesheetHandler: appHTTP.NewSiteTimesheetHandler(siteTimesheetSvc),
		PayrollHandler:       appHTTP.NewPayrollHandler(payrollSvc),
		ReportHandler:        appHTTP.NewReportHandler(reportSvc),
		NotificationHandler:  appHTTP.NewNotificationHandler(notificationSvc),
		EventHandler:         appHTTP.NewEventHandler(jwtService, hub),
		AllowedOrigins:       cfg.App.AllowedOrigins,
		Environment:          cfg.App.Env,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mariasoturna/AssistenteVirtual/config"
	_ "github.com/mariasoturna/AssistenteVirtual/docs" // Swagger docs
	"github.com/mariasoturna/AssistenteVirtual/internal/httpserver"
	interpUsecase "github.com/mariasoturna/AssistenteVirtual/internal/interpreter/usecase"
	"github.com/mariasoturna/AssistenteVirtual/internal/middleware"
	"github.com/mariasoturna/AssistenteVirtual/internal/task"
	gcalRepo "github.com/mariasoturna/AssistenteVirtual/internal/task/repository/gcal"
	taskUsecase "github.com/mariasoturna/AssistenteVirtual/internal/task/usecase"
	"github.com/mariasoturna/AssistenteVirtual/pkg/datemath"
	"github.com/mariasoturna/AssistenteVirtual/pkg/gcalendar"
	"github.com/mariasoturna/AssistenteVirtual/pkg/log"
	"github.com/mariasoturna/AssistenteVirtual/pkg/nlptag"
)

// @title       Assistente Virtual API
// @description Portuguese natural-language assistant for task and meeting management backed by Google Calendar.
// @version     1
// @host        localhost:8080
// @BasePath    /
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Assistente Virtual...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Language pipeline and date parser
	pipeline, err := nlptag.NewPipeline()
	if err != nil {
		logger.Error(ctx, "Failed to build language pipeline: ", err)
		return
	}

	dateMathParser, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Assistant.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Google Calendar — the only event store, so it is required.
	if cfg.GoogleCalendar.CredentialsPath == "" {
		logger.Error(ctx, "google_calendar.credentials_path is required")
		return
	}
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Google Calendar client: ", err)
		logger.Warn(ctx, "→ Check credentials.json and token.json next to it")
		return
	}
	logger.Info(ctx, "Google Calendar initialized")

	taskRepo := gcalRepo.New(logger, calendarClient, cfg.GoogleCalendar.CalendarID, cfg.Assistant.Timezone)

	// 5. UseCases
	interpUC := interpUsecase.New(logger, pipeline, dateMathParser, nil)
	taskUC := taskUsecase.New(logger, interpUC, taskRepo, dateMathParser, task.Settings{
		WorkdayStartHour: cfg.Assistant.WorkdayStartHour,
		WorkdayEndHour:   cfg.Assistant.WorkdayEndHour,
		MeetingDuration:  time.Duration(cfg.Assistant.MeetingDurationMinutes) * time.Minute,
		CacheTTL:         cfg.Assistant.CacheTTL,
	})

	// 6. HTTP Server
	mw := middleware.New(logger, cfg.HTTPServer.RateLimitPerMin)
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		Middleware:         mw,
		TaskUseCase:        taskUC,
		InterpreterUseCase: interpUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

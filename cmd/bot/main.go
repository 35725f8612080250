package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/app"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/config"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/controller"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/repository"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/schedule"
	"github.com/Velasco-A/Sistema-de-tutorias-UGR-mediante-Telegram/internal/service"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting tutoring bot",
		zap.String("environment", cfg.Environment),
		zap.String("timezone", cfg.Timezone))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to reach database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Fatal("Failed to load timezone",
			zap.String("timezone", cfg.Timezone),
			zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(pool)
	requestRepo := repository.NewAccessRequestRepository(pool)
	scheduleRepo := repository.NewScheduleRepository(userRepo, logger)

	// Services
	userService := service.NewUserService(userRepo, logger)
	scheduleService := service.NewScheduleService(
		scheduleRepo,
		schedule.NewEvaluator(location),
		logger,
	)
	accessService := service.NewAccessService(requestRepo, userRepo, scheduleService, logger)

	botInstance, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(
		botInstance,
		userService,
		scheduleService,
		accessService,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	janitor := app.NewJanitor(botController.StateManager(), logger)
	janitor.Start(ctx)
	defer janitor.Stop()

	if err := botController.Start(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Bot shut down")
}

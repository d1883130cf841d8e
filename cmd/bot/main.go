package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"

	gainpulse "github.com/koffi-dev/gainpulse"
	"github.com/koffi-dev/gainpulse/internal/config"
	"github.com/koffi-dev/gainpulse/internal/handler"
	"github.com/koffi-dev/gainpulse/internal/middleware"
	"github.com/koffi-dev/gainpulse/internal/repository"
	"github.com/koffi-dev/gainpulse/internal/service"
	"github.com/koffi-dev/gainpulse/internal/telegram"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(gainpulse.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	store := repository.NewStore(pool)
	userService := service.NewUserService(store)
	bonusService := service.NewBonusService(store)

	// Handler pointer for use in default handler closure
	var h *handler.Handler

	// Telegram only delivers chat_join_request when asked for explicitly.
	allowedUpdates := []string{"message", "callback_query", "chat_join_request"}

	// Create bot
	opts := []bot.Option{
		bot.WithAllowedUpdates(allowedUpdates),
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.UserLoader(userService),
		),
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if h == nil {
				return
			}
			h.HandleDefault(ctx, b, update)
		}),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	// Get bot info
	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}
	slog.Info("bot info retrieved", "id", me.ID, "username", me.Username)

	// Bot-backed collaborators
	notifier := telegram.NewNotifier(b, cfg, me.Username)
	membershipService := service.NewMembershipService(b, cfg.RequiredChannels)
	withdrawService := service.NewWithdrawService(store, notifier)
	taskService := service.NewTaskService(store, membershipService)

	// Initialize handler
	h = handler.New(handler.Deps{
		Bot:         b,
		Cfg:         cfg,
		Users:       userService,
		Bonus:       bonusService,
		Withdraw:    withdrawService,
		Tasks:       taskService,
		Membership:  membershipService,
		BotUsername: me.Username,
	})
	h.Register()

	if cfg.IsProduction() {
		if _, err := b.SetWebhook(ctx, &bot.SetWebhookParams{
			URL:            cfg.WebhookURL,
			AllowedUpdates: allowedUpdates,
		}); err != nil {
			slog.Error("failed to set webhook", "error", err)
			os.Exit(1)
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: b.WebhookHandler(),
		}
		go func() {
			<-ctx.Done()
			srv.Close()
		}()
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Error("webhook server failed", "error", err)
				stop()
			}
		}()

		slog.Info("starting bot via webhook", "username", me.Username, "port", cfg.Port)
		b.StartWebhook(ctx)
	} else {
		slog.Info("starting bot via long polling", "username", me.Username, "id", me.ID)
		b.Start(ctx)
	}

	slog.Info("bot stopped gracefully")
}

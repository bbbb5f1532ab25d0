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

	"servdash/internal/adapters/rest"
	"servdash/internal/adapters/scheduler"
	"servdash/internal/adapters/webhook"
	"servdash/internal/application"
	"servdash/internal/config"
	"servdash/internal/infrastructure/database"
	"servdash/internal/infrastructure/database/sqlc_generated"
	"servdash/internal/infrastructure/i18n"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
	log.Println("👋 Arrêt terminé")
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return err
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	translator, err := i18n.NewTranslator(cfg.DefaultLocale)
	if err != nil {
		return err
	}

	q := sqlc_generated.New(pool)
	eventRepo := database.NewEventRepository(pool, q)
	participantRepo := database.NewParticipantRepository(pool, q)
	reminderRepo := database.NewReminderRepository(q)
	serverRepo := database.NewServerRepository(q)
	profileRepo := database.NewProfileRepository(q)

	notifier := webhook.NewDispatcher(cfg.BotWebhookURL, cfg.BotSecret, cfg.WebhookTimeout, nil)
	reminderScheduler := application.NewReminderScheduler(eventRepo, participantRepo, notifier, cfg.ReminderWindow)
	runner := scheduler.NewRunner(reminderScheduler, cfg.ReminderInterval)

	api := rest.NewServer(rest.Deps{
		Events:       application.NewEventService(eventRepo, serverRepo),
		Participants: application.NewParticipantService(participantRepo, eventRepo),
		Reminders:    application.NewReminderService(reminderRepo, eventRepo),
		Profiles:     application.NewProfileService(profileRepo),
		Auth:         rest.NewAuthenticator(cfg.BotAPIKey, cfg.JWTRefreshSecret),
		Translator:   translator,
		Ping:         pool.Ping,
	})
	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("✅ API en écoute sur %s", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return runner.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("🛑 Arrêt en cours...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

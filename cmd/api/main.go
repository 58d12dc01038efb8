package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shared-calendar/config"
	_ "shared-calendar/docs" // Swagger docs
	"shared-calendar/internal/calendar/repository"
	googleRepo "shared-calendar/internal/calendar/repository/google"
	restRepo "shared-calendar/internal/calendar/repository/rest"
	"shared-calendar/internal/eventcache"
	"shared-calendar/internal/httpserver"
	"shared-calendar/internal/prefs"
	"shared-calendar/internal/revalidate"
	"shared-calendar/internal/session"
	calendarSync "shared-calendar/internal/sync"
	"shared-calendar/pkg/calendarapi"
	"shared-calendar/pkg/gcalendar"
	"shared-calendar/pkg/log"
)

// @title       Shared Calendar API
// @description Calendar gateway with a cached multi-calendar event stream, overlap layout and visibility filters.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
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

	logger.Info(ctx, "Starting Shared Calendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	loc, _ := time.LoadLocation(cfg.Calendar.Timezone)

	// 3. Event source
	repo, err := newRepository(ctx, cfg, loc, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize event source: ", err)
		return
	}

	// 4. Sessions
	sessions := session.NewManager(logger, repo, prefs.NewStore(cfg.Prefs.Dir), session.Config{
		Capacity: cfg.Session.Capacity,
		IdleTTL:  cfg.Session.IdleTTL,
		Cache: eventcache.Options{
			TTL:         cfg.Cache.TTL,
			Concurrency: cfg.Cache.FetchConcurrency,
		},
	})

	// 5. Background revalidation of stale caches
	if cfg.Revalidate.Enabled {
		revalidator, rErr := revalidate.New(logger, sessions, cfg.Revalidate.Schedule)
		if rErr != nil {
			logger.Error(ctx, "Failed to schedule revalidation: ", rErr)
			return
		}
		revalidator.Start()
		defer revalidator.Stop(context.Background())
		logger.Infof(ctx, "Revalidation scheduled %q", cfg.Revalidate.Schedule)
	}

	// 6. Change notifications
	srvCfg := httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Sessions:    sessions,
		Location:    loc,
	}
	if cfg.Webhook.Enabled {
		srvCfg.WebhookHandler = calendarSync.NewWebhookHandler(sessions, calendarSync.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, logger)
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// newRepository builds the backing store selected by source.kind. The Google
// source reads one account, so every user of the gateway sees its calendars.
func newRepository(ctx context.Context, cfg *config.Config, loc *time.Location, logger log.Logger) (repository.Repository, error) {
	switch cfg.Source.Kind {
	case config.SourceGoogle:
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.Source.GoogleCredentialsPath, cfg.Source.GoogleTokenPath)
		if err != nil {
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			return nil, err
		}
		logger.Info(ctx, "Google Calendar source initialized")
		return googleRepo.New(client, googleRepo.Options{
			LookBack:  cfg.Source.LookBack,
			LookAhead: cfg.Source.LookAhead,
			Location:  loc,
		}, logger), nil
	default:
		client := calendarapi.NewClient(cfg.Backend.URL,
			calendarapi.WithTimeout(cfg.Backend.Timeout),
			calendarapi.WithRateLimit(cfg.Backend.RatePerSec, cfg.Backend.Burst),
		)
		logger.Infof(ctx, "Calendar backend: %s", cfg.Backend.URL)
		return restRepo.New(client, logger), nil
	}
}

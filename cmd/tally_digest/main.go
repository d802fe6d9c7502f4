package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"thumbs_up/configs"
	"thumbs_up/internal/announce"
	"thumbs_up/internal/db"
	"thumbs_up/internal/db/models"
	"thumbs_up/internal/db/repositories"
	"thumbs_up/internal/di"
	"thumbs_up/internal/registry"
	"thumbs_up/internal/services"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

var errNoAnnouncer = errors.New("neither telegram nor discord is configured")

func main() {
	s := gocron.NewScheduler(time.UTC)

	config, err := configs.LoadTallyDigestConfig()
	logger := di.NewLogger(config.Logger, config.App)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	mode, err := services.ParseCountingMode(config.Voting.CountingMode)
	if err != nil {
		logger.Fatalw("failed to parse counting mode", "error", err)
	}

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, config.Voting, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	announcer, err := newAnnouncer(config)
	if err != nil {
		logger.Fatalw("failed to create announcer", "error", err)
	}

	logger.Info("initializing repositories and services")
	voteRepository := repositories.NewVoteRepository(database)
	entityRepository := repositories.NewEntityRepository(database)

	kinds := registry.New()
	if err := kinds.Register(digestKind(config.Digest, entityRepository)); err != nil {
		logger.Fatalw("failed to register digest kind", "error", err)
	}

	announceService := announce.NewService(
		announcer,
		services.NewVoterService(voteRepository, mode, logger),
		services.NewVoteableService(voteRepository, kinds, mode, logger),
		kinds,
		logger,
	)

	go func() {
		logger.Info("setting up health check server")
		settingUpHealthCheckServer(config.Digest.HealthCheckAddr, logger)
	}()

	_, err = s.Cron(config.Digest.Schedule).Do(func() {
		from, to := digestWindow(time.Now().UTC(), config.Digest.WindowDays)

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		announced, err := announceService.AnnounceDigest(ctx, config.Digest.Kind, from, to, config.Digest.Size)
		if err != nil {
			logger.Errorw("failed to announce digest", "error", err)
			return
		}

		logger.Infow("digest announced", "kind", config.Digest.Kind, "entries", announced)
	})
	if err != nil {
		logger.Fatalw("failed to schedule digest", "schedule", config.Digest.Schedule, "error", err)
	}

	s.StartBlocking()
}

func newAnnouncer(config configs.TallyDigestConfig) (announce.Announcer, error) {
	var announcers []announce.Announcer

	if config.Bot.Enabled() {
		telegram, err := announce.NewTelegramAnnouncer(config.Bot)
		if err != nil {
			return nil, err
		}
		announcers = append(announcers, telegram)
	}

	if config.Discord.Enabled() {
		discord, err := announce.NewDiscordAnnouncer(config.Discord)
		if err != nil {
			return nil, err
		}
		announcers = append(announcers, discord)
	}

	switch len(announcers) {
	case 0:
		return nil, errNoAnnouncer
	case 1:
		return announcers[0], nil
	}
	return announce.Multi(announcers...), nil
}

func digestKind(config configs.Digest, entityRepository repositories.EntityRepository) registry.Kind {
	kind := registry.Kind{Name: config.Kind, Table: config.Table}

	if config.LabelColumn != "" {
		kind.Resolve = func(ctx context.Context, ids []int64) ([]models.Entity, error) {
			return entityRepository.GetLabels(ctx, config.Kind, config.Table, config.LabelColumn, ids)
		}
	}

	return kind
}

// digestWindow covers the last days days up to now. Non-positive days mean all time.
func digestWindow(now time.Time, days int) (time.Time, time.Time) {
	if days <= 0 {
		return time.Time{}, time.Time{}
	}
	return now.AddDate(0, 0, -days), now
}

func settingUpHealthCheckServer(addr string, logger *zap.SugaredLogger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tally-digest/healthcheck", healthCheckHandler)

	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		<-stop

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Errorw("failed to shutdown http server", "error", err)
			return
		}

		logger.Info("shutting down")
		os.Exit(0)
	}()

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Errorw("failed to start http server", "error", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("I'm alive"))
}

package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/keepnote/core/infrastructure/metrics"
	"github.com/keepnote/core/infrastructure/tracing"
	"github.com/keepnote/core/internal/app/dispatcher"
	"github.com/keepnote/core/internal/config"
	reminders_repo "github.com/keepnote/core/internal/repository/reminders"
	"github.com/keepnote/core/internal/service/kafka"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	metrics.Init()
	metrics.StartMetricsServer(cfg.MetricsAddr)

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open postgres connection")
	}

	if err = runMigrations(cfg.DSN()); err != nil {
		log.Fatal().Err(err).Msg("migration error")
	}

	_, cleanup, err := tracing.InitTracing(cfg.TracingConfig.Endpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init tracing")
	}
	defer cleanup()

	broker, err := kafka.New(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.Topic,
		cfg.KafkaConfig.GroupID, 1, 1, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize kafka")
	}
	defer broker.Close()

	dispatcherImpl := dispatcher.New(reminders_repo.NewDefaultRepository(db), broker, log)
	dispatcherImpl.Start(context.Background())
}

func runMigrations(dbURL string) error {
	m, err := migrate.New(
		"file://migrations",
		dbURL,
	)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}

	if err = m.Up(); !errors.Is(err, migrate.ErrNoChange) && err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}

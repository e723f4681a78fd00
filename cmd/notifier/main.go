package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/keepnote/core/internal/app/notifier"
	"github.com/keepnote/core/internal/config"
	users_repo "github.com/keepnote/core/internal/repository/users"
	"github.com/keepnote/core/internal/service/kafka"
	users_serv "github.com/keepnote/core/internal/service/users"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"gopkg.in/telebot.v3"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.TelegramConfig.TokenNotifyBot == "" {
		log.Fatal().Msg("TOKEN_NOTIFY_BOT is required")
	}

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.TelegramConfig.TokenNotifyBot,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot")
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open postgres connection")
	}

	broker, err := kafka.New(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.Topic,
		cfg.KafkaConfig.GroupID, 1, 1, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize kafka")
	}
	defer broker.Close()

	usersServ := users_serv.NewDefaultService(users_repo.NewDefaultRepository(db), log)

	notifierImpl := notifier.New(bot, usersServ, broker, log)
	notifierImpl.Start(context.Background())
}

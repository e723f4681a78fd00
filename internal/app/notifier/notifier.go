package notifier

import (
	"context"
	"errors"

	"github.com/keepnote/core/infrastructure/metrics"
	"github.com/keepnote/core/internal/model"
	"github.com/keepnote/core/internal/service/kafka"
	"github.com/keepnote/core/internal/service/users"
	"github.com/rs/zerolog"
	"gopkg.in/telebot.v3"
)

// Notifier consumes dispatched reminders from the broker and delivers them
// to the owner's Telegram chat. Users without a chat id are skipped.
type Notifier struct {
	bot    *telebot.Bot
	users  users.Service
	broker kafka.MessageBroker
	log    zerolog.Logger
}

func New(bot *telebot.Bot, usersServ users.Service, broker kafka.MessageBroker, log zerolog.Logger) *Notifier {
	return &Notifier{
		bot:    bot,
		users:  usersServ,
		broker: broker,
		log:    log,
	}
}

func (n *Notifier) Start(ctx context.Context) {
	n.log.Info().Msg("notifier started")

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		key, value, err := n.broker.ReadMessage(ctx)
		if err != nil {
			n.log.Error().Err(err).Msg("error reading message from kafka")
			continue
		}

		if err = n.deliver(ctx, model.UserID(key), string(value)); err != nil {
			n.log.Error().Err(err).Str("user_id", string(key)).Msg("error delivering notification")
		}
	}
}

func (n *Notifier) deliver(ctx context.Context, userID model.UserID, message string) error {
	user, err := n.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			n.log.Warn().Str("user_id", string(userID)).Msg("reminder owner no longer exists")
			return nil
		}
		return err
	}

	if user.ChatID == 0 {
		n.log.Debug().Str("user_id", string(userID)).Msg("user has no chat configured")
		return nil
	}

	if _, err = n.bot.Send(&telebot.User{ID: user.ChatID}, message); err != nil {
		return err
	}

	metrics.NotificationSent()
	n.log.Info().Str("user_id", string(userID)).Str("message", message).Msg("notification sent")
	return nil
}

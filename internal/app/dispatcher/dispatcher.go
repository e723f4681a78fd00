package dispatcher

import (
	"context"
	"fmt"
	"time"

	"github.com/keepnote/core/infrastructure/metrics"
	"github.com/keepnote/core/internal/repository/reminders"
	"github.com/keepnote/core/internal/service/kafka"
	"github.com/rs/zerolog"
)

const (
	checkInterval = time.Minute
)

// Dispatcher periodically collects reminders that are due and hands them to
// the message broker, keyed by the owning user.
type Dispatcher struct {
	reminders reminders.Repository
	broker    kafka.MessageBroker
	log       zerolog.Logger
}

func New(remindersRepo reminders.Repository, broker kafka.MessageBroker, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		reminders: remindersRepo,
		broker:    broker,
		log:       log,
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	d.log.Info().Msg("dispatcher started")

	if err := d.dispatchDue(ctx); err != nil {
		d.log.Error().Err(err).Msg("error dispatching reminders")
	}

	ticker := time.NewTicker(checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := d.dispatchDue(ctx); err != nil {
				d.log.Error().Err(err).Msg("error dispatching reminders")
			}
		}
	}
}

func (d *Dispatcher) dispatchDue(ctx context.Context) error {
	start := time.Now().Truncate(checkInterval)
	end := start.Add(checkInterval)

	due, err := d.reminders.DueBetween(ctx, start, end)
	if err != nil {
		return err
	}

	for _, reminder := range due {
		message := fmt.Sprintf("%s (id %d)", reminder.Name, reminder.ID)

		if err = d.broker.SendMessage(ctx, []byte(reminder.CreatedBy), []byte(message)); err != nil {
			return fmt.Errorf("failed to publish reminder %d: %w", reminder.ID, err)
		}

		metrics.ReminderDispatched()
		d.log.Info().
			Int64("reminder_id", int64(reminder.ID)).
			Str("user_id", string(reminder.CreatedBy)).
			Msg("reminder dispatched")
	}

	return nil
}

package reminders

import (
	"context"
	"time"

	"github.com/keepnote/core/internal/model"
)

type (
	Repository interface {
		Create(ctx context.Context, reminder model.Reminder) (model.ReminderID, error)
		GetByID(ctx context.Context, reminderID model.ReminderID) (*model.Reminder, error)
		Update(ctx context.Context, reminder model.Reminder) error
		Delete(ctx context.Context, reminderID model.ReminderID) (bool, error)
		ListByUser(ctx context.Context, userID model.UserID) ([]model.Reminder, error)
		DueBetween(ctx context.Context, startTime, endTime time.Time) ([]model.Reminder, error)
	}
)

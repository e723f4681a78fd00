package reminders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/keepnote/core/internal/model"
	_ "github.com/lib/pq"

	"github.com/Masterminds/squirrel"
)

type DefaultRepository struct {
	db *sql.DB
}

func NewDefaultRepository(pg *sql.DB) *DefaultRepository {
	return &DefaultRepository{pg}
}

func (d *DefaultRepository) Create(ctx context.Context, reminder model.Reminder) (model.ReminderID, error) {
	query := `
		INSERT INTO reminders (name, description, type, remind_at, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id
	`

	var reminderID model.ReminderID
	err := d.db.QueryRowContext(ctx, query,
		reminder.Name, reminder.Description, reminder.Type, reminder.RemindAt, reminder.CreatedBy).
		Scan(&reminderID)
	if err != nil {
		return 0, fmt.Errorf("failed to create reminder: %w", err)
	}

	return reminderID, nil
}

func (d *DefaultRepository) GetByID(ctx context.Context, reminderID model.ReminderID) (*model.Reminder, error) {
	reminder := &model.Reminder{}
	query := `SELECT id, name, description, type, remind_at, created_by, created_at FROM reminders WHERE id = $1`
	err := d.db.QueryRowContext(ctx, query, reminderID).
		Scan(&reminder.ID, &reminder.Name, &reminder.Description, &reminder.Type,
			&reminder.RemindAt, &reminder.CreatedBy, &reminder.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrReminderNotFound
		}
		return nil, fmt.Errorf("failed to get reminder '%d': %w", reminderID, err)
	}
	return reminder, nil
}

func (d *DefaultRepository) Update(ctx context.Context, reminder model.Reminder) error {
	if _, err := d.GetByID(ctx, reminder.ID); err != nil {
		return err
	}

	query := `UPDATE reminders SET name = $2, description = $3, type = $4, remind_at = $5 WHERE id = $1`
	_, err := d.db.ExecContext(ctx, query,
		reminder.ID, reminder.Name, reminder.Description, reminder.Type, reminder.RemindAt)
	if err != nil {
		return fmt.Errorf("failed to update reminder '%d': %w", reminder.ID, err)
	}

	return nil
}

func (d *DefaultRepository) Delete(ctx context.Context, reminderID model.ReminderID) (bool, error) {
	if _, err := d.GetByID(ctx, reminderID); err != nil {
		if errors.Is(err, model.ErrReminderNotFound) {
			return false, nil
		}
		return false, err
	}

	if _, err := d.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = $1`, reminderID); err != nil {
		return false, fmt.Errorf("failed to delete reminder '%d': %w", reminderID, err)
	}

	return true, nil
}

func (d *DefaultRepository) ListByUser(ctx context.Context, userID model.UserID) ([]model.Reminder, error) {
	queryBuilder := squirrel.
		Select("id",
			"name",
			"description",
			"type",
			"remind_at",
			"created_by",
			"created_at").
		From("reminders").
		Where(squirrel.Eq{"created_by": userID}).
		PlaceholderFormat(squirrel.Dollar)

	return d.queryReminders(ctx, queryBuilder)
}

func (d *DefaultRepository) DueBetween(ctx context.Context, startTime, endTime time.Time) ([]model.Reminder, error) {
	queryBuilder := squirrel.
		Select("id",
			"name",
			"description",
			"type",
			"remind_at",
			"created_by",
			"created_at").
		From("reminders").
		Where("remind_at >= ? AND remind_at < ?", startTime, endTime).
		OrderBy("remind_at").
		PlaceholderFormat(squirrel.Dollar)

	return d.queryReminders(ctx, queryBuilder)
}

func (d *DefaultRepository) queryReminders(ctx context.Context, queryBuilder squirrel.SelectBuilder) ([]model.Reminder, error) {
	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		var reminder model.Reminder
		if err = rows.Scan(&reminder.ID, &reminder.Name, &reminder.Description, &reminder.Type,
			&reminder.RemindAt, &reminder.CreatedBy, &reminder.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, reminder)
	}

	return reminders, nil
}

package reminders

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/keepnote/core/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock
}

func TestCreate(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	remindAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reminders")).
		WithArgs("standup", "daily call", "recurring", remindAt, "u1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	repo := NewDefaultRepository(db)
	reminderID, err := repo.Create(context.Background(), model.Reminder{
		Name:        "standup",
		Description: "daily call",
		Type:        "recurring",
		RemindAt:    remindAt,
		CreatedBy:   "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ReminderID(5), reminderID)
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description, type, remind_at, created_by, created_at FROM reminders")).
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	repo := NewDefaultRepository(db)
	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, model.ErrReminderNotFound)
}

func TestDueBetween(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reminders WHERE remind_at >= $1 AND remind_at < $2 ORDER BY remind_at")).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "description", "type", "remind_at", "created_by", "created_at"}).
			AddRow(int64(5), "standup", "daily call", "recurring", start, "u1", start))

	repo := NewDefaultRepository(db)
	due, err := repo.DueBetween(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, model.ReminderID(5), due[0].ID)
	assert.Equal(t, model.UserID("u1"), due[0].CreatedBy)
}

func TestListByUser_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM reminders WHERE created_by = $1")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "name", "description", "type", "remind_at", "created_by", "created_at"}))

	repo := NewDefaultRepository(db)
	reminders, err := repo.ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, reminders)
}

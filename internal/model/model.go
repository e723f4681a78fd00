package model

import "time"

type (
	UserID     string
	CategoryID int64
	ReminderID int64
	NoteID     int64
)

type (
	// User is identified by a caller-assigned id, never store-generated.
	// Password carries the plaintext credential on the way in only; the
	// repository persists a salted hash and never reads the plaintext back.
	User struct {
		ID       UserID
		Name     string
		Mobile   string
		ChatID   int64
		Password string
		AddedAt  time.Time
	}

	Category struct {
		ID          CategoryID
		Name        string
		Description string
		CreatedBy   UserID
		CreatedAt   time.Time
	}

	Reminder struct {
		ID          ReminderID
		Name        string
		Description string
		Type        string
		RemindAt    time.Time
		CreatedBy   UserID
		CreatedAt   time.Time
	}

	Note struct {
		ID         NoteID
		Title      string
		Content    string
		Status     string
		CategoryID *CategoryID
		ReminderID *ReminderID
		CreatedBy  UserID
		CreatedAt  time.Time
	}
)

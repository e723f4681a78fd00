package model

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrReminderNotFound  = errors.New("reminder not found")
	ErrNoteNotFound      = errors.New("note not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

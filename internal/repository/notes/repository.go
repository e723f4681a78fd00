package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/keepnote/core/infrastructure/tracing"
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

func (d *DefaultRepository) Create(ctx context.Context, note model.Note) (model.NoteID, error) {
	query := `
		INSERT INTO notes (title, content, status, category_id, reminder_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id
	`

	var noteID model.NoteID
	err := d.db.QueryRowContext(ctx, query,
		note.Title, note.Content, note.Status, note.CategoryID, note.ReminderID, note.CreatedBy).
		Scan(&noteID)
	if err != nil {
		return 0, fmt.Errorf("failed to create note: %w", err)
	}

	return noteID, nil
}

func (d *DefaultRepository) GetByID(ctx context.Context, noteID model.NoteID) (*model.Note, error) {
	note := &model.Note{}
	query := `
		SELECT id, title, content, status, category_id, reminder_id, created_by, created_at
		FROM notes WHERE id = $1
	`
	err := d.db.QueryRowContext(ctx, query, noteID).
		Scan(&note.ID, &note.Title, &note.Content, &note.Status,
			&note.CategoryID, &note.ReminderID, &note.CreatedBy, &note.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note '%d': %w", noteID, err)
	}
	return note, nil
}

// Update replaces the mutable fields only, created_at stays as written at insert.
func (d *DefaultRepository) Update(ctx context.Context, note model.Note) error {
	if _, err := d.GetByID(ctx, note.ID); err != nil {
		return err
	}

	query := `
		UPDATE notes SET title = $2, content = $3, status = $4, category_id = $5, reminder_id = $6
		WHERE id = $1
	`
	_, err := d.db.ExecContext(ctx, query,
		note.ID, note.Title, note.Content, note.Status, note.CategoryID, note.ReminderID)
	if err != nil {
		return fmt.Errorf("failed to update note '%d': %w", note.ID, err)
	}

	return nil
}

func (d *DefaultRepository) Delete(ctx context.Context, noteID model.NoteID) (bool, error) {
	if _, err := d.GetByID(ctx, noteID); err != nil {
		if errors.Is(err, model.ErrNoteNotFound) {
			return false, nil
		}
		return false, err
	}

	if _, err := d.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, noteID); err != nil {
		return false, fmt.Errorf("failed to delete note '%d': %w", noteID, err)
	}

	return true, nil
}

func (d *DefaultRepository) ListByUser(ctx context.Context, userID model.UserID) ([]model.Note, error) {
	ctx, span := tracing.StartSpan(ctx, "ListNotes_repo")
	defer span.End()

	queryBuilder := squirrel.
		Select("id",
			"title",
			"content",
			"status",
			"category_id",
			"reminder_id",
			"created_by",
			"created_at").
		From("notes").
		Where(squirrel.Eq{"created_by": userID}).
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var note model.Note
		if err = rows.Scan(&note.ID, &note.Title, &note.Content, &note.Status,
			&note.CategoryID, &note.ReminderID, &note.CreatedBy, &note.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	return notes, nil
}

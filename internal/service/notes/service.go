package notes

import (
	"context"

	"github.com/keepnote/core/internal/model"
	"github.com/keepnote/core/internal/repository/categories"
	"github.com/keepnote/core/internal/repository/notes"
	"github.com/keepnote/core/internal/repository/reminders"
	"github.com/rs/zerolog"
)

type DefaultService struct {
	notes      notes.Repository
	categories categories.Repository
	reminders  reminders.Repository
	log        zerolog.Logger
}

func NewDefaultService(
	notesRepo notes.Repository,
	categoriesRepo categories.Repository,
	remindersRepo reminders.Repository,
	log zerolog.Logger,
) *DefaultService {
	return &DefaultService{
		notes:      notesRepo,
		categories: categoriesRepo,
		reminders:  remindersRepo,
		log:        log,
	}
}

// Create persists a new note after confirming its category and reminder
// references point at existing rows. Either check failing aborts the
// creation, nothing is written.
func (d *DefaultService) Create(ctx context.Context, note model.Note) (model.NoteID, error) {
	if err := d.checkReferences(ctx, note); err != nil {
		return 0, err
	}

	return d.notes.Create(ctx, note)
}

func (d *DefaultService) Get(ctx context.Context, noteID model.NoteID) (*model.Note, error) {
	return d.notes.GetByID(ctx, noteID)
}

// Update requires the note to already exist and runs the same referential
// checks as Create. CreatedAt of the stored row is kept as is.
func (d *DefaultService) Update(ctx context.Context, note model.Note, noteID model.NoteID) (*model.Note, error) {
	existing, err := d.notes.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	if err = d.checkReferences(ctx, note); err != nil {
		return nil, err
	}

	note.ID = noteID
	note.CreatedAt = existing.CreatedAt

	if err = d.notes.Update(ctx, note); err != nil {
		return nil, err
	}

	return &note, nil
}

// Delete reports false for an absent note instead of failing.
func (d *DefaultService) Delete(ctx context.Context, noteID model.NoteID) (bool, error) {
	deleted, err := d.notes.Delete(ctx, noteID)
	if err != nil {
		return false, err
	}

	if !deleted {
		d.log.Debug().Int64("note_id", int64(noteID)).Msg("delete skipped, note not found")
	}

	return deleted, nil
}

func (d *DefaultService) ListByUser(ctx context.Context, userID model.UserID) ([]model.Note, error) {
	return d.notes.ListByUser(ctx, userID)
}

func (d *DefaultService) checkReferences(ctx context.Context, note model.Note) error {
	if note.CategoryID != nil {
		if _, err := d.categories.GetByID(ctx, *note.CategoryID); err != nil {
			return err
		}
	}

	if note.ReminderID != nil {
		if _, err := d.reminders.GetByID(ctx, *note.ReminderID); err != nil {
			return err
		}
	}

	return nil
}

package notes

import (
	"context"

	"github.com/keepnote/core/internal/model"
)

type (
	Repository interface {
		Create(ctx context.Context, note model.Note) (model.NoteID, error)
		GetByID(ctx context.Context, noteID model.NoteID) (*model.Note, error)
		Update(ctx context.Context, note model.Note) error
		Delete(ctx context.Context, noteID model.NoteID) (bool, error)
		ListByUser(ctx context.Context, userID model.UserID) ([]model.Note, error)
	}
)

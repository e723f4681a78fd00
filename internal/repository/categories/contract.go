package categories

import (
	"context"

	"github.com/keepnote/core/internal/model"
)

type (
	Repository interface {
		Create(ctx context.Context, category model.Category) (model.CategoryID, error)
		GetByID(ctx context.Context, categoryID model.CategoryID) (*model.Category, error)
		Update(ctx context.Context, category model.Category) error
		Delete(ctx context.Context, categoryID model.CategoryID) (bool, error)
		ListByUser(ctx context.Context, userID model.UserID) ([]model.Category, error)
	}
)

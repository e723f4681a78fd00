package users

import (
	"context"

	"github.com/keepnote/core/internal/model"
)

type (
	Repository interface {
		Create(ctx context.Context, user model.User) error
		GetByID(ctx context.Context, userID model.UserID) (*model.User, error)
		Update(ctx context.Context, user model.User) error
		Delete(ctx context.Context, userID model.UserID) (bool, error)
		Validate(ctx context.Context, userID model.UserID, password string) (bool, error)
	}
)

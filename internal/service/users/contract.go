package users

import (
	"context"

	"github.com/keepnote/core/internal/model"
)

type (
	Service interface {
		Register(ctx context.Context, user model.User) error
		Get(ctx context.Context, userID model.UserID) (*model.User, error)
		Update(ctx context.Context, user model.User, userID model.UserID) (*model.User, error)
		Validate(ctx context.Context, userID model.UserID, password string) (bool, error)
		Delete(ctx context.Context, userID model.UserID) (bool, error)
	}
)

package users

import (
	"context"

	"github.com/keepnote/core/internal/model"
	"github.com/keepnote/core/internal/repository/users"
	"github.com/rs/zerolog"
)

type DefaultService struct {
	repo users.Repository
	log  zerolog.Logger
}

func NewDefaultService(repo users.Repository, log zerolog.Logger) *DefaultService {
	return &DefaultService{repo: repo, log: log}
}

// Register fails with model.ErrUserAlreadyExists when the id is occupied;
// ids are caller-assigned and never regenerated.
func (d *DefaultService) Register(ctx context.Context, user model.User) error {
	return d.repo.Create(ctx, user)
}

func (d *DefaultService) Get(ctx context.Context, userID model.UserID) (*model.User, error) {
	return d.repo.GetByID(ctx, userID)
}

// Update persists the user and re-fetches it to confirm the write took.
func (d *DefaultService) Update(ctx context.Context, user model.User, userID model.UserID) (*model.User, error) {
	user.ID = userID

	if err := d.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if _, err := d.repo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return &user, nil
}

// Validate surfaces model.ErrUserNotFound both for an unknown user and for a
// password mismatch, so callers cannot tell the two apart. The mismatch case
// is still visible in the debug log.
func (d *DefaultService) Validate(ctx context.Context, userID model.UserID, password string) (bool, error) {
	valid, err := d.repo.Validate(ctx, userID, password)
	if err != nil {
		return false, err
	}

	if !valid {
		d.log.Debug().Str("user_id", string(userID)).Msg("password mismatch")
		return false, model.ErrUserNotFound
	}

	return true, nil
}

func (d *DefaultService) Delete(ctx context.Context, userID model.UserID) (bool, error) {
	return d.repo.Delete(ctx, userID)
}

package users

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"

	"github.com/keepnote/core/internal/model"
	"github.com/lib/pq"
)

const saltLen = 32

type DefaultRepository struct {
	db *sql.DB
}

func NewDefaultRepository(pg *sql.DB) *DefaultRepository {
	return &DefaultRepository{pg}
}

func (d *DefaultRepository) Create(ctx context.Context, user model.User) error {
	salt, err := newSalt()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (id, name, mobile, chat_id, password_hash, salt, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	_, err = d.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Mobile, user.ChatID, hashPassword(salt, user.Password), salt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pq.ErrorCode("23505") {
			return model.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user '%s': %w", user.ID, err)
	}

	return nil
}

func (d *DefaultRepository) GetByID(ctx context.Context, userID model.UserID) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, name, mobile, chat_id, added_at FROM users WHERE id = $1`
	err := d.db.QueryRowContext(ctx, query, userID).
		Scan(&user.ID, &user.Name, &user.Mobile, &user.ChatID, &user.AddedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user '%s': %w", userID, err)
	}
	return user, nil
}

func (d *DefaultRepository) Update(ctx context.Context, user model.User) error {
	if _, err := d.GetByID(ctx, user.ID); err != nil {
		return err
	}

	salt, err := newSalt()
	if err != nil {
		return err
	}

	query := `
		UPDATE users SET name = $2, mobile = $3, chat_id = $4, password_hash = $5, salt = $6
		WHERE id = $1
	`

	_, err = d.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Mobile, user.ChatID, hashPassword(salt, user.Password), salt)
	if err != nil {
		return fmt.Errorf("failed to update user '%s': %w", user.ID, err)
	}

	return nil
}

func (d *DefaultRepository) Delete(ctx context.Context, userID model.UserID) (bool, error) {
	if _, err := d.GetByID(ctx, userID); err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	if _, err := d.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		return false, fmt.Errorf("failed to delete user '%s': %w", userID, err)
	}

	return true, nil
}

func (d *DefaultRepository) Validate(ctx context.Context, userID model.UserID, password string) (bool, error) {
	var hash, salt []byte
	query := `SELECT password_hash, salt FROM users WHERE id = $1`
	err := d.db.QueryRowContext(ctx, query, userID).Scan(&hash, &salt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, model.ErrUserNotFound
		}
		return false, fmt.Errorf("failed to validate user '%s': %w", userID, err)
	}

	return subtle.ConstantTimeCompare(hash, hashPassword(salt, password)) == 1, nil
}

func newSalt() ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}

func hashPassword(salt []byte, password string) []byte {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(password))
	return h.Sum(nil)
}

package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/keepnote/core/internal/model"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock
}

func TestCreate(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("u1", "Alice", "555-0101", int64(0), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewDefaultRepository(db)
	err := repo.Create(context.Background(), model.User{
		ID:       "u1",
		Name:     "Alice",
		Mobile:   "555-0101",
		Password: "pw",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateID(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: "23505"})

	repo := NewDefaultRepository(db)
	err := repo.Create(context.Background(), model.User{ID: "u1", Password: "pw"})
	assert.ErrorIs(t, err, model.ErrUserAlreadyExists)
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, mobile, chat_id, added_at FROM users")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewDefaultRepository(db)
	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestValidate(t *testing.T) {
	salt := []byte("0123456789abcdef0123456789abcdef")
	hash := hashPassword(salt, "pw")

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"matching password", "pw", true},
		{"wrong password", "wrong", false},
		{"case sensitive", "PW", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			defer db.Close()

			mock.ExpectQuery(regexp.QuoteMeta("SELECT password_hash, salt FROM users")).
				WithArgs("u1").
				WillReturnRows(sqlmock.NewRows([]string{"password_hash", "salt"}).AddRow(hash, salt))

			repo := NewDefaultRepository(db)
			valid, err := repo.Validate(context.Background(), "u1", tt.password)
			require.NoError(t, err)
			assert.Equal(t, tt.want, valid)
		})
	}
}

func TestValidate_UserAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT password_hash, salt FROM users")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewDefaultRepository(db)
	_, err := repo.Validate(context.Background(), "missing", "pw")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestDelete_Absent(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, mobile, chat_id, added_at FROM users")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewDefaultRepository(db)
	deleted, err := repo.Delete(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, deleted)
	// no DELETE statement was expected, absence must be a pure no-op
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_InfraFailure(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, mobile, chat_id, added_at FROM users")).
		WithArgs("u1").
		WillReturnError(errors.New("connection refused"))

	repo := NewDefaultRepository(db)
	_, err := repo.Delete(context.Background(), "u1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrUserNotFound)
}

func TestUpdate_Absent(t *testing.T) {
	db, mock := newMockDB(t)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, mobile, chat_id, added_at FROM users")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewDefaultRepository(db)
	err := repo.Update(context.Background(), model.User{ID: "missing", Password: "pw"})
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

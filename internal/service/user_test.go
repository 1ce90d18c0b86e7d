package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/storefront/internal/apierror"
	"github.com/dtroode/storefront/internal/mocks"
	"github.com/dtroode/storefront/internal/model"
	"github.com/dtroode/storefront/internal/testutil"
)

func TestRoleFromRequest(t *testing.T) {
	tests := []struct {
		in   string
		want model.Role
	}{
		{"admin", model.RoleAdmin},
		{"user", model.RoleUser},
		{"", model.RoleUser},
		{"Admin", model.RoleUser},
		{"superuser", model.RoleUser},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, roleFromRequest(tt.in))
		})
	}
}

func TestUser_Create(t *testing.T) {
	t.Parallel()

	t.Run("admin role", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewUserStore(t)
		hasher := mocks.NewPasswordHasher(t)
		users.On("GetByEmail", mock.Anything, "root@example.com").Return(model.User{}, model.ErrNotFound)
		hasher.On("Hash", "secret1").Return("hash", nil)
		users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
			return u.Role == model.RoleAdmin && u.PasswordHash == "hash"
		})).Return(func(_ context.Context, u model.User) (model.User, error) { return u, nil })

		got, err := NewUser(users, hasher, testutil.MakeNoopLogger()).Create(context.Background(), model.UserInput{
			Name: "Root", Email: "root@example.com", Password: "secret1", Role: "admin",
		})
		require.NoError(t, err)
		assert.True(t, got.Role.IsAdmin())
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewUserStore(t)
		users.On("GetByEmail", mock.Anything, "root@example.com").Return(model.User{ID: uuid.New()}, nil)

		_, err := NewUser(users, mocks.NewPasswordHasher(t), testutil.MakeNoopLogger()).Create(context.Background(), model.UserInput{
			Name: "Root", Email: "root@example.com", Password: "secret1",
		})
		requireKind(t, err, apierror.KindConflict)
	})

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()

		_, err := NewUser(mocks.NewUserStore(t), mocks.NewPasswordHasher(t), testutil.MakeNoopLogger()).Create(context.Background(), model.UserInput{
			Name: "Root", Email: "root", Password: "secret1",
		})
		requireKind(t, err, apierror.KindValidation)
	})
}

func TestUser_Update(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	current := model.User{ID: id, Name: "Bob", Email: "bob@example.com", PasswordHash: "old", Role: model.RoleAdmin}

	t.Run("keeps password when empty and demotes on unknown role", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewUserStore(t)
		users.On("GetByID", mock.Anything, id).Return(current, nil)
		users.On("GetByEmail", mock.Anything, "bobby@example.com").Return(model.User{}, model.ErrNotFound)
		users.On("Update", mock.Anything, mock.Anything).Return(func(_ context.Context, u model.User) (model.User, error) { return u, nil })

		got, err := NewUser(users, mocks.NewPasswordHasher(t), testutil.MakeNoopLogger()).Update(context.Background(), id, model.UserInput{
			Name: "Bobby", Email: "bobby@example.com", Role: "root",
		})
		require.NoError(t, err)
		assert.Equal(t, "old", got.PasswordHash)
		assert.Equal(t, model.RoleUser, got.Role)
	})

	t.Run("rehashes a new password", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewUserStore(t)
		hasher := mocks.NewPasswordHasher(t)
		users.On("GetByID", mock.Anything, id).Return(current, nil)
		users.On("GetByEmail", mock.Anything, "bob@example.com").Return(current, nil)
		hasher.On("Hash", "newsecret").Return("new", nil)
		users.On("Update", mock.Anything, mock.Anything).Return(func(_ context.Context, u model.User) (model.User, error) { return u, nil })

		got, err := NewUser(users, hasher, testutil.MakeNoopLogger()).Update(context.Background(), id, model.UserInput{
			Name: "Bob", Email: "bob@example.com", Password: "newsecret", Role: "admin",
		})
		require.NoError(t, err)
		assert.Equal(t, "new", got.PasswordHash)
	})

	t.Run("email of another user", func(t *testing.T) {
		t.Parallel()

		users := mocks.NewUserStore(t)
		users.On("GetByID", mock.Anything, id).Return(current, nil)
		users.On("GetByEmail", mock.Anything, "alice@example.com").Return(model.User{ID: uuid.New()}, nil)

		_, err := NewUser(users, mocks.NewPasswordHasher(t), testutil.MakeNoopLogger()).Update(context.Background(), id, model.UserInput{
			Name: "Bob", Email: "alice@example.com",
		})
		requireKind(t, err, apierror.KindConflict)
	})
}

func TestUser_Delete(t *testing.T) {
	t.Parallel()

	admin := uuid.New()

	t.Run("self", func(t *testing.T) {
		t.Parallel()

		err := NewUser(mocks.NewUserStore(t), mocks.NewPasswordHasher(t), testutil.MakeNoopLogger()).Delete(context.Background(), admin, admin)
		apiErr := requireKind(t, err, apierror.KindValidation)
		assert.Equal(t, "you cannot delete your own account", apiErr.Message)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		target := uuid.New()
		users := mocks.NewUserStore(t)
		users.On("Delete", mock.Anything, target).Return(model.ErrNotFound)

		err := NewUser(users, mocks.NewPasswordHasher(t), testutil.MakeNoopLogger()).Delete(context.Background(), admin, target)
		requireKind(t, err, apierror.KindNotFound)
	})

	t.Run("other user", func(t *testing.T) {
		t.Parallel()

		target := uuid.New()
		users := mocks.NewUserStore(t)
		users.On("Delete", mock.Anything, target).Return(nil)

		err := NewUser(users, mocks.NewPasswordHasher(t), testutil.MakeNoopLogger()).Delete(context.Background(), admin, target)
		assert.NoError(t, err)
	})
}

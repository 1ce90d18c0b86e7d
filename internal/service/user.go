package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/apierror"
	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

// User is the admin-facing account management service.
type User struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	logger    *logger.Logger
	now       func() time.Time
}

func NewUser(userStore model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
		now:       time.Now,
	}
}

// roleFromRequest grants admin only for the exact string "admin".
func roleFromRequest(role string) model.Role {
	if role == model.RoleAdmin.String() {
		return model.RoleAdmin
	}
	return model.RoleUser
}

func (s *User) List(ctx context.Context, search string) ([]model.User, error) {
	users, err := s.userStore.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *User) Get(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierror.NewErrNotFound("user")
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *User) Create(ctx context.Context, in model.UserInput) (model.User, error) {
	if err := checkInput(in, newAccountMessages); err != nil {
		return model.User{}, err
	}

	if err := ensureEmailFree(ctx, s.userStore, in.Email, uuid.Nil); err != nil {
		return model.User{}, err
	}

	hash, err := hashPassword(s.hasher, in.Password)
	if err != nil {
		return model.User{}, err
	}

	now := s.now()
	saved, err := s.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         roleFromRequest(in.Role),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, model.ErrConflict) {
		return model.User{}, apierror.NewErrEmailIsTaken()
	}
	if err != nil {
		s.logger.Error("User service: failed to create user",
			"email", in.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created",
		"user_id", saved.ID,
		"role", saved.Role.String())

	return saved, nil
}

func (s *User) Update(ctx context.Context, id uuid.UUID, in model.UserInput) (model.User, error) {
	var skip []string
	if in.Password == "" {
		skip = append(skip, "Password")
	}
	if err := checkInput(in, accountUpdateMessages, skip...); err != nil {
		return model.User{}, err
	}

	user, err := s.Get(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	if err := ensureEmailFree(ctx, s.userStore, in.Email, id); err != nil {
		return model.User{}, err
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Role = roleFromRequest(in.Role)
	if in.Password != "" {
		hash, err := hashPassword(s.hasher, in.Password)
		if err != nil {
			return model.User{}, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = s.now()

	saved, err := s.userStore.Update(ctx, user)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.User{}, apierror.NewErrNotFound("user")
	case errors.Is(err, model.ErrConflict):
		return model.User{}, apierror.NewErrEmailIsTaken()
	case err != nil:
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated",
		"user_id", saved.ID,
		"role", saved.Role.String())

	return saved, nil
}

// Delete removes a user. actorID is the admin performing the call, who may
// not delete their own account.
func (s *User) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return apierror.NewErrCannotDeleteSelf()
	}

	err := s.userStore.Delete(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewErrNotFound("user")
	}
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted",
		"user_id", id,
		"by", actorID)

	return nil
}

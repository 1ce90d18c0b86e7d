package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/apierror"
	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

// Profile lets signed-in users manage their own account.
type Profile struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	logger    *logger.Logger
	now       func() time.Time
}

func NewProfile(userStore model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *Profile {
	return &Profile{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Profile) Get(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierror.NewErrNotFound("user")
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *Profile) Update(ctx context.Context, id uuid.UUID, in model.ProfileInput) (model.User, error) {
	if err := checkInput(in, accountUpdateMessages); err != nil {
		return model.User{}, err
	}

	user, err := s.Get(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	if in.Email != user.Email {
		if err := ensureEmailFree(ctx, s.userStore, in.Email, id); err != nil {
			return model.User{}, err
		}
	}

	if in.CurrentPassword != "" && in.NewPassword != "" {
		if err := s.hasher.Compare(user.PasswordHash, in.CurrentPassword); err != nil {
			if errors.Is(err, model.ErrPasswordMismatch) {
				return model.User{}, apierror.NewErrValidation("current password is incorrect")
			}
			return model.User{}, fmt.Errorf("failed to compare password: %w", err)
		}
		if !validPassword(in.NewPassword) {
			return model.User{}, apierror.NewErrValidation("new password must be at least 6 characters")
		}
		hash, err := hashPassword(s.hasher, in.NewPassword)
		if err != nil {
			return model.User{}, err
		}
		user.PasswordHash = hash
		s.logger.Info("Profile service: password changed",
			"user_id", id)
	}

	user.Name = in.Name
	user.Email = in.Email
	user.UpdatedAt = s.now()

	saved, err := s.userStore.Update(ctx, user)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.User{}, apierror.NewErrNotFound("user")
	case errors.Is(err, model.ErrConflict):
		return model.User{}, apierror.NewErrEmailIsTaken()
	case err != nil:
		return model.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return saved, nil
}

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

// Auth verifies credentials and registers new accounts.
type Auth struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	logger    *logger.Logger
	now       func() time.Time
}

func NewAuth(userStore model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *Auth {
	return &Auth{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
		now:       time.Now,
	}
}

// Authenticate checks an email and password pair. Unknown emails and wrong
// passwords both return an *model.AuthError so callers can only tell them
// apart in logs.
func (a *Auth) Authenticate(ctx context.Context, email, password string) (model.SessionClaim, error) {
	if err := checkInput(credentials{Email: email, Password: password}, messages{
		"required": "email and password are required",
	}); err != nil {
		return model.SessionClaim{}, err
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: sign-in for unknown email",
			"email", email)
		return model.SessionClaim{}, fmt.Errorf("failed to authenticate: %w", &model.AuthError{Reason: model.AuthFailureNotFound})
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.SessionClaim{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := a.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, model.ErrPasswordMismatch) {
			a.logger.Info("Auth service: sign-in with wrong password",
				"user_id", user.ID)
			return model.SessionClaim{}, fmt.Errorf("failed to authenticate: %w", &model.AuthError{Reason: model.AuthFailureBadPassword})
		}
		return model.SessionClaim{}, fmt.Errorf("failed to compare password: %w", err)
	}

	a.logger.Info("Auth service: user signed in",
		"user_id", user.ID,
		"role", user.Role.String())

	return model.SessionClaim{
		UserID: user.ID,
		Role:   user.Role,
	}, nil
}

// Register creates a regular user account.
func (a *Auth) Register(ctx context.Context, name, email, password string) (model.User, error) {
	if err := checkInput(model.UserInput{Name: name, Email: email, Password: password}, newAccountMessages); err != nil {
		return model.User{}, err
	}

	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	if err := ensureEmailFree(ctx, a.userStore, email, uuid.Nil); err != nil {
		return model.User{}, err
	}

	hash, err := hashPassword(a.hasher, password)
	if err != nil {
		return model.User{}, err
	}

	now := a.now()
	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, model.ErrConflict) {
		return model.User{}, apierror.NewErrEmailIsTaken()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", user.ID)

	return user, nil
}

// CurrentUser loads the account behind a session.
func (a *Auth) CurrentUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierror.NewErrNotFound("user")
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// ensureEmailFree returns a conflict when email belongs to a user other than self.
func ensureEmailFree(ctx context.Context, store model.UserStore, email string, self uuid.UUID) error {
	existing, err := store.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to get user by email: %w", err)
	case existing.ID != self:
		return apierror.NewErrEmailIsTaken()
	}
	return nil
}

func hashPassword(hasher model.PasswordHasher, password string) (string, error) {
	hash, err := hasher.Hash(password)
	if errors.Is(err, model.ErrPasswordTooLong) {
		return "", apierror.NewErrValidation("password is too long")
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

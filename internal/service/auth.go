package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskhub/server/internal/apierr"
	"github.com/taskhub/server/internal/logger"
	"github.com/taskhub/server/internal/model"
	"github.com/taskhub/server/internal/password"
)

// Session bundles an account with a freshly issued session token.
type Session struct {
	User  model.User
	Token string
}

// Auth owns the signup and login flows: field validation, email
// normalization, the password hashing boundary, and token issuance.
type Auth struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	hasher       *password.Hasher
	logger       *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(
	userStore model.UserStore,
	tokenManager model.TokenManager,
	hasher *password.Hasher,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenManager: tokenManager,
		hasher:       hasher,
		logger:       logger,
	}
}

// SignUp creates a new account and issues its first session token.
// Duplicate emails fail with a conflict; the database uniqueness constraint
// is the authoritative signal, the lookup before it only short-circuits the
// common case.
func (a *Auth) SignUp(ctx context.Context, email, plaintext, name string) (Session, error) {
	if email == "" || plaintext == "" {
		return Session{}, apierr.NewErrValidation("Email and password required")
	}

	email = normalizeEmail(email)

	a.logger.Debug("Auth service: starting signup",
		"email", email)

	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: signup rejected, user already exists",
			"email", email)
		return Session{}, apierr.NewErrEmailTaken()
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to check existing user",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(plaintext)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}

	savedUser, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			// Lost a check-then-insert race; the constraint decides.
			a.logger.Info("Auth service: signup rejected by uniqueness constraint",
				"email", email)
			return Session{}, apierr.NewErrEmailTaken()
		}
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, err := a.tokenManager.Generate(savedUser.ID, savedUser.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to generate token",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to generate token: %w", err)
	}

	a.logger.Info("Auth service: signup completed",
		"email", email,
		"user_id", savedUser.ID)

	return Session{User: savedUser, Token: tokenString}, nil
}

// Login verifies credentials and issues a new session token. Unknown
// accounts and wrong passwords return the same error so responses never
// reveal whether an email is registered.
func (a *Auth) Login(ctx context.Context, email, plaintext string) (Session, error) {
	if email == "" || plaintext == "" {
		return Session{}, apierr.NewErrValidation("Email and password required")
	}

	email = normalizeEmail(email)

	a.logger.Debug("Auth service: starting login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Debug("Auth service: login failed, user not found",
				"email", email)
			return Session{}, apierr.NewErrInvalidCredentials()
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Compare(user.PasswordHash, plaintext) {
		a.logger.Debug("Auth service: login failed, password mismatch",
			"email", email)
		return Session{}, apierr.NewErrInvalidCredentials()
	}

	tokenString, err := a.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to generate token",
			"email", email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to generate token: %w", err)
	}

	a.logger.Info("Auth service: login completed",
		"email", email,
		"user_id", user.ID)

	return Session{User: user, Token: tokenString}, nil
}

// Profile loads the account behind an authenticated request.
func (a *Auth) Profile(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, apierr.NewErrUserNotFound()
		}
		a.logger.Error("Auth service: failed to get user by id",
			"user_id", userID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

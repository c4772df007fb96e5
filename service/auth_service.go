package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gatehouse/gatehouse/core"
	"github.com/gatehouse/gatehouse/ports"
)

// DefaultTokenTTL is the validity window of issued tokens
const DefaultTokenTTL = 7 * 24 * time.Hour

// AuthService handles the credential-for-token exchange and per-request
// token validation. It holds no cross-request mutable state: token
// validity is proven purely by signature, expiry and a fresh directory
// lookup, so there is no session store to synchronize.
type AuthService struct {
	directory ports.UserDirectory
	hasher    ports.PasswordHasher
	tokenizer ports.Tokenizer
	eventPub  ports.EventPublisher
	logger    *zap.Logger

	tokenTTL time.Duration
}

// LoginResult is returned on a successful credential exchange
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	UserID    string
}

// NewAuthService creates a new authentication service. A non-positive
// tokenTTL falls back to DefaultTokenTTL.
func NewAuthService(
	directory ports.UserDirectory,
	hasher ports.PasswordHasher,
	tokenizer ports.Tokenizer,
	eventPub ports.EventPublisher,
	logger *zap.Logger,
	tokenTTL time.Duration,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &AuthService{
		directory: directory,
		hasher:    hasher,
		tokenizer: tokenizer,
		eventPub:  eventPub,
		logger:    logger,
		tokenTTL:  tokenTTL,
	}
}

// Login exchanges credentials for a signed token. An unknown username
// and a password mismatch both come back as core.ErrInvalidCredentials;
// only directory faults surface differently.
func (s *AuthService) Login(ctx context.Context, creds core.Credentials) (LoginResult, error) {
	user, err := s.directory.GetByUsername(ctx, creds.Username)
	if errors.Is(err, core.ErrUserNotFound) {
		return LoginResult{}, core.ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, fmt.Errorf("lookup user: %w", err)
	}

	ok, err := s.hasher.Verify(creds.Password, user.PasswordHash)
	if err != nil {
		return LoginResult{}, fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return LoginResult{}, core.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenizer.Issue(user.ID, s.tokenTTL)
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}

	// Audit event is fire-and-forget: the token is already issued and a
	// broker hiccup must not fail the login.
	if s.eventPub != nil {
		if err := s.eventPub.PublishLogin(ctx, user.ID, user.Username); err != nil {
			s.logger.Warn("failed to publish login event",
				zap.String("user_id", user.ID), zap.Error(err))
		}
	}

	return LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    user.ID,
	}, nil
}

// Authenticate validates a token and resolves the identity behind it.
// The subject is re-resolved against the directory on every call, so
// deleting a user invalidates all of their outstanding tokens without a
// blocklist.
func (s *AuthService) Authenticate(ctx context.Context, token string) (core.Identity, error) {
	claims, err := s.tokenizer.Verify(token)
	if err != nil {
		return core.Identity{}, err
	}

	user, err := s.directory.GetByID(ctx, claims.Subject)
	if errors.Is(err, core.ErrUserNotFound) {
		return core.Identity{}, fmt.Errorf("stale token: user removed: %w", err)
	}
	if err != nil {
		return core.Identity{}, fmt.Errorf("resolve subject: %w", err)
	}

	return core.Identity{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

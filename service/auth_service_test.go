package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/gatehouse/gatehouse/adapters/directory"
	"github.com/gatehouse/gatehouse/adapters/hasher"
	"github.com/gatehouse/gatehouse/adapters/tokenizer"
	"github.com/gatehouse/gatehouse/core"
	"github.com/gatehouse/gatehouse/ports"
)

type capturePublisher struct {
	userIDs []string
	err     error
}

func (p *capturePublisher) PublishLogin(_ context.Context, userID, _ string) error {
	p.userIDs = append(p.userIDs, userID)
	return p.err
}

type failingDirectory struct{}

func (failingDirectory) GetByUsername(context.Context, string) (core.User, error) {
	return core.User{}, core.ErrDirectoryUnavailable
}

func (failingDirectory) GetByID(context.Context, string) (core.User, error) {
	return core.User{}, core.ErrDirectoryUnavailable
}

func newTestService(t *testing.T, dir ports.UserDirectory, pub ports.EventPublisher) *AuthService {
	t.Helper()
	return NewAuthService(
		dir,
		hasher.NewBcryptHasher(bcrypt.MinCost),
		tokenizer.NewJWTTokenizer([]byte("test-secret")),
		pub,
		zap.NewNop(),
		0,
	)
}

func seedUser(t *testing.T, dir *directory.MemoryDirectory, username, password string) core.User {
	t.Helper()
	hashed, err := hasher.NewBcryptHasher(bcrypt.MinCost).Hash(password)
	require.NoError(t, err)

	user := core.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hashed,
	}
	dir.Put(user)
	return user
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	dir := directory.NewMemoryDirectory()
	pub := &capturePublisher{}
	svc := newTestService(t, dir, pub)

	user := seedUser(t, dir, "alice", "wonderland")

	result, err := svc.Login(ctx, core.Credentials{Username: "alice", Password: "wonderland"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, user.ID, result.UserID)
	assert.WithinDuration(t, time.Now().Add(DefaultTokenTTL), result.ExpiresAt, 5*time.Second)
	assert.Equal(t, []string{user.ID}, pub.userIDs)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()
	dir := directory.NewMemoryDirectory()
	svc := newTestService(t, dir, nil)

	seedUser(t, dir, "alice", "wonderland")

	_, wrongPassword := svc.Login(ctx, core.Credentials{Username: "alice", Password: "rabbit-hole"})
	_, unknownUser := svc.Login(ctx, core.Credentials{Username: "bob", Password: "wonderland"})

	assert.ErrorIs(t, wrongPassword, core.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, core.ErrInvalidCredentials)
	// Same failure shape for both: no hint which case occurred
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestAuthService_LoginDirectoryFault(t *testing.T) {
	svc := newTestService(t, failingDirectory{}, nil)

	_, err := svc.Login(context.Background(), core.Credentials{Username: "alice", Password: "wonderland"})
	assert.ErrorIs(t, err, core.ErrDirectoryUnavailable)
	assert.NotErrorIs(t, err, core.ErrInvalidCredentials)
}

func TestAuthService_LoginSurvivesPublishFailure(t *testing.T) {
	ctx := context.Background()
	dir := directory.NewMemoryDirectory()
	pub := &capturePublisher{err: errors.New("broker down")}
	svc := newTestService(t, dir, pub)

	seedUser(t, dir, "alice", "wonderland")

	result, err := svc.Login(ctx, core.Credentials{Username: "alice", Password: "wonderland"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	dir := directory.NewMemoryDirectory()
	svc := newTestService(t, dir, nil)

	user := seedUser(t, dir, "alice", "wonderland")

	result, err := svc.Login(ctx, core.Credentials{Username: "alice", Password: "wonderland"})
	require.NoError(t, err)

	identity, err := svc.Authenticate(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, core.Identity{ID: user.ID, Username: "alice"}, identity)
}

func TestAuthService_AuthenticateRejectsRemovedUser(t *testing.T) {
	ctx := context.Background()
	dir := directory.NewMemoryDirectory()
	svc := newTestService(t, dir, nil)

	user := seedUser(t, dir, "alice", "wonderland")

	result, err := svc.Login(ctx, core.Credentials{Username: "alice", Password: "wonderland"})
	require.NoError(t, err)

	// The token is structurally valid and unexpired, but deleting the
	// user must invalidate it on its next use.
	dir.Remove(user.ID)

	_, err = svc.Authenticate(ctx, result.Token)
	assert.ErrorIs(t, err, core.ErrUserNotFound)
}

func TestAuthService_AuthenticateRejectsExpiredToken(t *testing.T) {
	ctx := context.Background()
	dir := directory.NewMemoryDirectory()
	svc := newTestService(t, dir, nil)

	user := seedUser(t, dir, "alice", "wonderland")

	expired, _, err := tokenizer.NewJWTTokenizer([]byte("test-secret")).Issue(user.ID, -time.Second)
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, expired)
	assert.ErrorIs(t, err, core.ErrTokenExpired)
}

func TestAuthService_AuthenticateDirectoryFault(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, failingDirectory{}, nil)

	token, _, err := tokenizer.NewJWTTokenizer([]byte("test-secret")).Issue("user-1", time.Hour)
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, core.ErrDirectoryUnavailable)
}

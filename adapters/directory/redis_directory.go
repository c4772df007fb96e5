package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gatehouse/gatehouse/core"
	"github.com/gatehouse/gatehouse/ports"
)

// RedisDirectory is a read-only UserDirectory adapter over the user
// records maintained in Redis by the registration service.
//
// Layout: "gatehouse:user:<id>" is a hash with fields id, username and
// password_hash; "gatehouse:username:<username>" maps to the id.
type RedisDirectory struct {
	client *redis.Client
	prefix string
}

// NewRedisDirectory creates a new Redis-backed directory
func NewRedisDirectory(client *redis.Client) ports.UserDirectory {
	return &RedisDirectory{
		client: client,
		prefix: "gatehouse:",
	}
}

// GetByUsername resolves a user by username, case-sensitive
func (d *RedisDirectory) GetByUsername(ctx context.Context, username string) (core.User, error) {
	id, err := d.client.Get(ctx, d.prefix+"username:"+username).Result()
	if errors.Is(err, redis.Nil) {
		return core.User{}, core.ErrUserNotFound
	}
	if err != nil {
		return core.User{}, fmt.Errorf("%w: %v", core.ErrDirectoryUnavailable, err)
	}

	return d.GetByID(ctx, id)
}

// GetByID resolves a user by identifier
func (d *RedisDirectory) GetByID(ctx context.Context, id string) (core.User, error) {
	fields, err := d.client.HGetAll(ctx, d.prefix+"user:"+id).Result()
	if err != nil {
		return core.User{}, fmt.Errorf("%w: %v", core.ErrDirectoryUnavailable, err)
	}
	// HGETALL returns an empty map for a missing key
	if len(fields) == 0 {
		return core.User{}, core.ErrUserNotFound
	}

	return core.User{
		ID:           fields["id"],
		Username:     fields["username"],
		PasswordHash: fields["password_hash"],
	}, nil
}

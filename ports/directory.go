package ports

import (
	"context"

	"github.com/gatehouse/gatehouse/core"
)

// UserDirectory resolves user records. It is an external collaborator:
// this service never creates or mutates users through it.
//
// Implementations return core.ErrUserNotFound when no record matches
// and wrap core.ErrDirectoryUnavailable on infrastructure faults.
type UserDirectory interface {
	GetByUsername(ctx context.Context, username string) (core.User, error)
	GetByID(ctx context.Context, id string) (core.User, error)
}

package directory

import (
	"context"
	"sync"

	"github.com/gatehouse/gatehouse/core"
	"github.com/gatehouse/gatehouse/ports"
)

// MemoryDirectory is an in-memory implementation of the UserDirectory
// port, primarily intended for tests and single-binary demos.
type MemoryDirectory struct {
	byID   map[string]core.User
	byName map[string]string // username -> id
	mu     sync.RWMutex
}

// NewMemoryDirectory creates an empty in-memory directory
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		byID:   make(map[string]core.User),
		byName: make(map[string]string),
	}
}

// Put adds or replaces a user record. It stands in for the out-of-scope
// registration flow that owns user creation.
func (d *MemoryDirectory) Put(user core.User) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.byID[user.ID] = user
	d.byName[user.Username] = user.ID
}

// Remove deletes a user record. Outstanding tokens for the user become
// invalid on their next use.
func (d *MemoryDirectory) Remove(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	user, ok := d.byID[id]
	if !ok {
		return
	}
	delete(d.byID, id)
	delete(d.byName, user.Username)
}

// GetByUsername resolves a user by username, case-sensitive
func (d *MemoryDirectory) GetByUsername(ctx context.Context, username string) (core.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	id, ok := d.byName[username]
	if !ok {
		return core.User{}, core.ErrUserNotFound
	}
	return d.byID[id], nil
}

// GetByID resolves a user by identifier
func (d *MemoryDirectory) GetByID(ctx context.Context, id string) (core.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.byID[id]
	if !ok {
		return core.User{}, core.ErrUserNotFound
	}
	return user, nil
}

var _ ports.UserDirectory = (*MemoryDirectory)(nil)

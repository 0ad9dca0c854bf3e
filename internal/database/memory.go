package database

import (
	"context"
	"sync"

	"github.com/iqbal-singh-1/ideathon/internal/models"
)

// Memory is a process-local user store for development and tests.
type Memory struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemory() *Memory {
	return &Memory{users: make(map[string]models.User)}
}

func (m *Memory) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.UID]; ok {
		return ErrUserExists
	}
	m.users[user.UID] = *user
	return nil
}

func (m *Memory) GetUserByUID(_ context.Context, uid string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[uid]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

package auth

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"login-backend/pkg/config"
	"login-backend/pkg/database"
	"login-backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testAccessSecret  = "access-secret"
	testRefreshSecret = "refresh-secret"
	testPassword      = "correct horse battery staple"
)

// memoryUsers is an in-memory database.UserRepository.
type memoryUsers struct {
	mu      sync.Mutex
	byEmail map[string]*database.User
	findErr error
	saveErr error
	saves   int
	creates int
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byEmail: map[string]*database.User{}}
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*database.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findErr != nil {
		return nil, m.findErr
	}
	user, ok := m.byEmail[email]
	if !ok {
		return nil, database.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (m *memoryUsers) Create(_ context.Context, user *database.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byEmail[user.Email]; ok {
		return database.ErrUserExists
	}
	m.creates++
	clone := *user
	m.byEmail[user.Email] = &clone
	return nil
}

func (m *memoryUsers) SaveRefreshToken(_ context.Context, userID string, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveErr != nil {
		return m.saveErr
	}
	for _, user := range m.byEmail {
		if user.ID == userID {
			m.saves++
			tok := token
			user.RefreshToken = &tok
			return nil
		}
	}
	return database.ErrUserNotFound
}

func (m *memoryUsers) storedRefreshToken(email string) *string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byEmail[email].RefreshToken
}

func (m *memoryUsers) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func seedUser(t *testing.T, users *memoryUsers, id, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), &database.User{
		ID:       id,
		Email:    email,
		Password: string(hash),
	}))
}

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:               logger.DEBUG,
		DatabaseDriver:         "mysql",
		SaltRounds:             bcrypt.MinCost,
		AccessTokenSecret:      testAccessSecret,
		RefreshTokenSecret:     testRefreshSecret,
		AccessTokenExpiration:  60 * 60,
		RefreshTokenExpiration: 60 * 60 * 24 * 7,
	}
}

func testLogger() *logger.Logger {
	return logger.NewLogger(&bytes.Buffer{}, "Auth", logger.DEBUG, "test")
}

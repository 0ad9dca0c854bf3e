package core

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iqbal-singh-1/ideathon/internal/database"
	"github.com/iqbal-singh-1/ideathon/internal/middleware"
	"github.com/iqbal-singh-1/ideathon/internal/models"
	"github.com/iqbal-singh-1/ideathon/internal/validation"
)

type MockDB struct {
	GetUserByUIDFunc func(uid string) (*models.User, error)
	CreateUserFunc   func(user *models.User) error
}

func (m *MockDB) GetUserByUID(_ context.Context, uid string) (*models.User, error) {
	if m.GetUserByUIDFunc != nil {
		return m.GetUserByUIDFunc(uid)
	}
	return nil, nil
}

func (m *MockDB) CreateUser(_ context.Context, user *models.User) error {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(user)
	}
	return nil
}

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func signupRequest() models.SignupRequest {
	return models.SignupRequest{
		FullName: "Asha Verma",
		UID:      "PB-10422",
		Phone:    "9876543210",
		Password: "secret1",
	}
}

func TestSignupService(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful Signup", func(t *testing.T) {
		var stored *models.User
		mockDB := &MockDB{
			CreateUserFunc: func(user *models.User) error {
				stored = user
				return nil
			},
		}
		svc := NewService(mockDB, "secret", testLogger)

		user, err := svc.Signup(ctx, signupRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "PB-10422", user.UID)
		assert.Same(t, stored, user)
		assert.NotEqual(t, "secret1", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret1")))
	})

	t.Run("Validation Runs First", func(t *testing.T) {
		mockDB := &MockDB{
			GetUserByUIDFunc: func(uid string) (*models.User, error) {
				t.Fatal("database must not be queried")
				return nil, nil
			},
		}
		svc := NewService(mockDB, "secret", testLogger)

		req := signupRequest()
		req.Phone = "5123456789"
		_, err := svc.Signup(ctx, req)
		assert.ErrorIs(t, err, validation.ErrInvalidPhone)
	})

	t.Run("UID Already Registered", func(t *testing.T) {
		mockDB := &MockDB{
			GetUserByUIDFunc: func(uid string) (*models.User, error) {
				return &models.User{UID: uid}, nil
			},
		}
		svc := NewService(mockDB, "secret", testLogger)

		_, err := svc.Signup(ctx, signupRequest())
		assert.ErrorIs(t, err, ErrUIDTaken)
	})

	t.Run("Concurrent Duplicate", func(t *testing.T) {
		mockDB := &MockDB{
			CreateUserFunc: func(user *models.User) error {
				return database.ErrUserExists
			},
		}
		svc := NewService(mockDB, "secret", testLogger)

		_, err := svc.Signup(ctx, signupRequest())
		assert.ErrorIs(t, err, ErrUIDTaken)
	})

	t.Run("Database Error on Lookup", func(t *testing.T) {
		mockDB := &MockDB{
			GetUserByUIDFunc: func(uid string) (*models.User, error) {
				return nil, errors.New("database error")
			},
		}
		svc := NewService(mockDB, "secret", testLogger)

		_, err := svc.Signup(ctx, signupRequest())
		assert.EqualError(t, err, "failed to check existing user: database error")
	})

	t.Run("Database Error on CreateUser", func(t *testing.T) {
		mockDB := &MockDB{
			CreateUserFunc: func(user *models.User) error {
				return errors.New("database error")
			},
		}
		svc := NewService(mockDB, "secret", testLogger)

		_, err := svc.Signup(ctx, signupRequest())
		assert.EqualError(t, err, "failed to create user: database error")
	})
}

func TestLoginService(t *testing.T) {
	ctx := context.Background()
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	storedUser := func(uid string) (*models.User, error) {
		return &models.User{
			ID:       "user-1",
			UID:      uid,
			Password: string(hashedPassword),
		}, nil
	}

	t.Run("Successful Login", func(t *testing.T) {
		svc := NewService(&MockDB{GetUserByUIDFunc: storedUser}, "secret", testLogger)

		resp, err := svc.Login(ctx, "PB-10422", "secret1")
		require.NoError(t, err)

		claims, err := middleware.VerifyToken(resp.AccessToken, []byte("secret"))
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "PB-10422", claims.UID)
	})

	t.Run("User Not Found", func(t *testing.T) {
		svc := NewService(&MockDB{}, "secret", testLogger)

		_, err := svc.Login(ctx, "PB-10422", "secret1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Invalid Password", func(t *testing.T) {
		svc := NewService(&MockDB{GetUserByUIDFunc: storedUser}, "secret", testLogger)

		_, err := svc.Login(ctx, "PB-10422", "wrong_password")
		assert.EqualError(t, err, "invalid credentials")
	})

	t.Run("Database Error", func(t *testing.T) {
		mockDB := &MockDB{
			GetUserByUIDFunc: func(uid string) (*models.User, error) {
				return nil, errors.New("database error")
			},
		}
		svc := NewService(mockDB, "secret", testLogger)

		_, err := svc.Login(ctx, "PB-10422", "secret1")
		assert.EqualError(t, err, "database error")
	})
}

func TestMeService(t *testing.T) {
	ctx := context.Background()

	svc := NewService(&MockDB{}, "secret", testLogger)
	_, err := svc.Me(ctx, "PB-10422")
	assert.ErrorIs(t, err, ErrUserNotFound)

	svc = NewService(&MockDB{GetUserByUIDFunc: func(uid string) (*models.User, error) {
		return &models.User{UID: uid, FullName: "Asha Verma"}, nil
	}}, "secret", testLogger)
	user, err := svc.Me(ctx, "PB-10422")
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", user.FullName)
}

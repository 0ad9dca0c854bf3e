package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/iqbal-singh-1/ideathon/internal/database"
	"github.com/iqbal-singh-1/ideathon/internal/metrics"
	"github.com/iqbal-singh-1/ideathon/internal/middleware"
	"github.com/iqbal-singh-1/ideathon/internal/models"
	"github.com/iqbal-singh-1/ideathon/internal/validation"
)

const accessTokenTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUIDTaken           = errors.New("uid already registered")
)

type Database interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUID(ctx context.Context, uid string) (*models.User, error)
}

type ServiceImpl struct {
	db        Database
	validator *validation.Validator
	jwtSecret []byte
	logger    *slog.Logger
}

func NewService(db Database, jwtSecret string, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		db:        db,
		validator: validation.New(),
		jwtSecret: []byte(jwtSecret),
		logger:    logger,
	}
}

func (s *ServiceImpl) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	if err := s.validator.Signup(req); err != nil {
		metrics.SignupsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, err
	}

	s.logger.Info("starting signup", "uid", req.UID)

	existing, err := s.db.GetUserByUID(ctx, req.UID)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		metrics.SignupsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, ErrUIDTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:        uuid.New().String(),
		UID:       req.UID,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Password:  string(hashedPassword),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.db.CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent signup for the same UID.
		if errors.Is(err, database.ErrUserExists) {
			metrics.SignupsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
			return nil, ErrUIDTaken
		}
		metrics.SignupsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created", "uid", user.UID, "id", user.ID)
	metrics.SignupsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return user, nil
}

func (s *ServiceImpl) Login(ctx context.Context, uid, password string) (*models.AuthResponse, error) {
	user, err := s.db.GetUserByUID(ctx, uid)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, err
	}
	if user == nil {
		metrics.LoginsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		metrics.LoginsTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, ErrInvalidCredentials
	}

	accessToken, err := middleware.CreateToken(user.ID, user.UID, s.jwtSecret, accessTokenTTL)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return &models.AuthResponse{
		User:        user,
		AccessToken: accessToken,
	}, nil
}

func (s *ServiceImpl) Me(ctx context.Context, uid string) (*models.User, error) {
	user, err := s.db.GetUserByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

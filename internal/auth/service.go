package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"thesis-portal/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Users interface {
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindByID(ctx context.Context, id uint) (models.User, error)
}

type Sessions interface {
	Create(ctx context.Context, s *models.Session) error
	Find(ctx context.Context, id string) (models.Session, error)
	Delete(ctx context.Context, id string) error
}

// Service — жизненный цикл сессии: создаётся при входе, проверяется на каждом
// запросе, удаляется по выходу или по истечении TTL.
type Service struct {
	users    Users
	sessions Sessions
	ttl      time.Duration
	now      func() time.Time
}

func NewService(users Users, sessions Sessions, ttl time.Duration) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
	}
}

// WithClock подменяет часы (для тестов).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Login(ctx context.Context, username, password string) (models.Session, models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.Session{}, models.User{}, ErrInvalidCredentials
		}
		return models.Session{}, models.User{}, fmt.Errorf("auth.Login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.Session{}, models.User{}, ErrInvalidCredentials
	}

	now := s.now().UTC()
	sess := models.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		IsAuth:    true,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, &sess); err != nil {
		return models.Session{}, models.User{}, fmt.Errorf("auth.Login: %w", err)
	}
	return sess, user, nil
}

// Validate возвращает владельца живой сессии. Просроченная сессия удаляется.
func (s *Service) Validate(ctx context.Context, id string) (models.User, error) {
	if id == "" {
		return models.User{}, ErrSessionNotFound
	}

	sess, err := s.sessions.Find(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.User{}, ErrSessionNotFound
		}
		return models.User{}, fmt.Errorf("auth.Validate: %w", err)
	}

	if !sess.IsAuth || sess.Expired(s.now().UTC()) {
		_ = s.sessions.Delete(ctx, id)
		return models.User{}, ErrSessionExpired
	}

	user, err := s.users.FindByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// пользователя удалили — сессия больше не нужна
			_ = s.sessions.Delete(ctx, id)
			return models.User{}, ErrSessionNotFound
		}
		return models.User{}, fmt.Errorf("auth.Validate: %w", err)
	}
	return user, nil
}

func (s *Service) Logout(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, id); err != nil && !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("auth.Logout: %w", err)
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

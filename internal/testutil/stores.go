package testutil

import (
	"context"
	"sync"
	"testing"

	"thesis-portal/internal/models"

	"golang.org/x/crypto/bcrypt"
)

type UserStore struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: map[uint]models.User{}}
}

// Add хеширует пароль с минимальной стоимостью, чтобы тесты не тормозили.
func (s *UserStore) Add(t *testing.T, username, password string, role models.Role) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("UserStore.Add() failed: %v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	u := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	u.ID = s.nextID
	s.users[u.ID] = u
	return u
}

func (s *UserStore) Remove(id uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, models.ErrNotFound
}

func (s *UserStore) FindByID(_ context.Context, id uint) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, models.ErrNotFound
	}
	return u, nil
}

type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: map[string]models.Session{}}
}

func (s *SessionStore) Create(_ context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = *sess
	return nil
}

func (s *SessionStore) Find(_ context.Context, id string) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return models.Session{}, models.ErrNotFound
	}
	return sess, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

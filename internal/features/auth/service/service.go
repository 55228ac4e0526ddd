package service

import (
	"context"
	"strings"
	"sync"

	apperrors "supermercado-backend/internal/common/errors"
	usermodels "supermercado-backend/internal/features/user/models"
	userrepo "supermercado-backend/internal/features/user/repository"
)

// Service is the demo login gate: a user authenticates by presenting an
// email and name that match an existing account, case-insensitively. One
// session exists per process; there is no token and no expiry. This only
// guards the attribution label on the employee UI, not the CRUD operations.
type Service interface {
	Login(ctx context.Context, email, name string) (*usermodels.User, error)
	Logout()
	Current() (*usermodels.User, bool)
}

type authService struct {
	users userrepo.Repository

	mu      sync.RWMutex
	session *usermodels.User
}

func New(users userrepo.Repository) Service {
	return &authService{users: users}
}

func (s *authService) Login(ctx context.Context, email, name string) (*usermodels.User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" {
		return nil, apperrors.Unauthorized("email and name are required")
	}

	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if strings.EqualFold(user.Email, email) && strings.EqualFold(user.Name, name) {
			s.mu.Lock()
			s.session = user
			s.mu.Unlock()
			return user, nil
		}
	}

	return nil, apperrors.Unauthorized("invalid credentials")
}

func (s *authService) Logout() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
}

func (s *authService) Current() (*usermodels.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil, false
	}
	session := *s.session
	return &session, true
}

package memory

import (
	"context"
	"strings"
	"sync"

	apperrors "supermercado-backend/internal/common/errors"
	"supermercado-backend/internal/features/user/models"
	"supermercado-backend/internal/features/user/repository"
)

// Repository is the in-memory user store. All methods copy records on the
// way in and out so callers can only mutate persisted state through Update.
type Repository struct {
	mu     sync.RWMutex
	users  []*models.User
	nextID int
}

func New() *Repository {
	r := &Repository{nextID: 1}
	r.seed()
	return r
}

// seed loads the sample accounts the system ships with.
func (r *Repository) seed() {
	samples := []*models.User{
		{Name: "Cesar Ortiz", Email: "brccesar@gmail.com", Phone: "+57 3057515403", Address: "Calle 123 #45-67, Bogotá"},
		{Name: "María García", Email: "maria.garcia@email.com", Phone: "+57 301 234 5678", Address: "Carrera 89 #12-34, Medellín"},
		{Name: "Carlos López", Email: "carlos.lopez@email.com", Phone: "+57 302 345 6789", Address: "Avenida 56 #78-90, Cali"},
	}
	for _, u := range samples {
		u.ID = r.nextID
		r.nextID++
		r.users = append(r.users, u)
	}
}

func (r *Repository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID != 0 {
		for _, existing := range r.users {
			if existing.ID == user.ID {
				return nil, apperrors.Conflict("user", user.ID)
			}
		}
	}

	stored := *user
	if stored.ID == 0 {
		stored.ID = r.nextID
		r.nextID++
	} else if stored.ID >= r.nextID {
		r.nextID = stored.ID + 1
	}

	r.users = append(r.users, &stored)

	result := stored
	return &result, nil
}

func (r *Repository) GetByID(_ context.Context, id int) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			result := *u
			return &result, nil
		}
	}
	return nil, apperrors.NotFound("user", id)
}

// GetAll returns a snapshot of every user in insertion order.
func (r *Repository) GetAll(_ context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		copied := *u
		result = append(result, &copied)
	}
	return result, nil
}

// Update replaces the full record matching the id.
func (r *Repository) Update(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.users {
		if existing.ID == user.ID {
			stored := *user
			r.users[i] = &stored
			result := stored
			return &result, nil
		}
	}
	return nil, apperrors.NotFound("user", user.ID)
}

// Delete removes the user unconditionally; ids are never reused afterwards.
func (r *Repository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return apperrors.NotFound("user", id)
}

// SearchByName does a case-insensitive substring match over names.
func (r *Repository) SearchByName(_ context.Context, name string) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	term := strings.ToLower(name)
	var result []*models.User
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.Name), term) {
			copied := *u
			result = append(result, &copied)
		}
	}
	return result, nil
}

var _ repository.Repository = (*Repository)(nil)

package memstore

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"boutique-storefront/internal/models"
)

var ErrEmailExists = errors.New("email already exists")

// UserStore holds the back-office users.
type UserStore struct {
	mu    sync.RWMutex
	users []models.User
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

// Create adds a user with a bcrypt-hashed password.
func (s *UserStore) Create(fullName, email, password, role string, approved bool) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return models.User{}, ErrEmailExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
		Role:         role,
		IsApproved:   approved,
		CreatedAt:    time.Now().UTC(),
	}
	s.users = append(s.users, user)
	return user, nil
}

// Authenticate checks the credentials and returns the matching user.
func (s *UserStore) Authenticate(email, password string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
				return models.User{}, errors.New("invalid credentials")
			}
			return u, nil
		}
	}
	return models.User{}, errors.New("invalid credentials")
}

func (s *UserStore) List() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users
}

func (s *UserStore) Get(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// Update applies a partial update.
func (s *UserStore) Update(id string, update *models.AdminUserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID != id {
			continue
		}
		if update.FullName != nil {
			u.FullName = *update.FullName
		}
		if update.Email != nil {
			u.Email = *update.Email
		}
		if update.Role != nil {
			u.Role = *update.Role
		}
		if update.IsApproved != nil {
			u.IsApproved = *update.IsApproved
		}
		s.users[i] = u
		return u, nil
	}
	return models.User{}, ErrNotFound
}

// Approve marks a user as approved.
func (s *UserStore) Approve(id string) (models.User, error) {
	approved := true
	return s.Update(id, &models.AdminUserUpdate{IsApproved: &approved})
}

func (s *UserStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

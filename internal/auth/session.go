package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"boutique-storefront/internal/models"
	"boutique-storefront/internal/store"
)

// Session holds the signed-in user's token and profile, mirrored to the
// persistence adapter under independent keys so a restart keeps the user
// signed in.
type Session struct {
	storage store.Storage
	token   string
	user    *models.User
}

func NewSession(storage store.Storage) *Session {
	s := &Session{storage: storage}
	s.rehydrate()
	return s
}

func (s *Session) rehydrate() {
	if data, err := s.storage.Load(store.KeyToken); err == nil {
		s.token = string(data)
	}
	if data, err := s.storage.Load(store.KeyUserInfo); err == nil {
		var user models.User
		if err := json.Unmarshal(data, &user); err == nil {
			s.user = &user
		}
	}
}

// SignIn stores the credential exchange result.
func (s *Session) SignIn(resp models.AuthResponse) error {
	if err := s.storage.Save(store.KeyToken, []byte(resp.Token)); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	data, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("failed to encode user profile: %w", err)
	}
	if err := s.storage.Save(store.KeyUserInfo, data); err != nil {
		return fmt.Errorf("failed to persist user profile: %w", err)
	}
	s.token = resp.Token
	user := resp.User
	s.user = &user
	return nil
}

// SignOut purges the token and profile. Also invoked on any 401 response.
func (s *Session) SignOut() error {
	s.token = ""
	s.user = nil
	err := s.storage.Delete(store.KeyToken)
	if err2 := s.storage.Delete(store.KeyUserInfo); err == nil {
		err = err2
	}
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Token returns the current bearer token, empty when signed out.
func (s *Session) Token() string {
	return s.token
}

// User returns the signed-in profile, or an error when signed out.
func (s *Session) User() (models.User, error) {
	if s.user == nil {
		return models.User{}, errors.New("not signed in")
	}
	return *s.user, nil
}

// Valid reports whether a token is present and not past its expiry claim.
func (s *Session) Valid() bool {
	if s.token == "" {
		return false
	}
	expiry, err := TokenExpiry(s.token)
	if err != nil {
		return false
	}
	return expiry.IsZero() || time.Now().Before(expiry)
}
